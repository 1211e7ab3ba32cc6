// Package packet implements just enough OpenPGP framing to hand a signature
// packet's body to the signature decoder: RFC 4880 packet headers in both the
// old and new format, and the variable-length framing used by signature
// subpackets. It deliberately does not multiplex or interpret packet bodies.
package packet

import (
	"github.com/fepitre/qubes-rpm-oxide/openpgp/buffer"
	"github.com/fepitre/qubes-rpm-oxide/openpgp/errors"
)

// TagSignature is the packet tag of a signature packet (RFC 4880, section
// 5.2), the only tag the signature decoder accepts.
const TagSignature = 2

// A Packet is one framed OpenPGP packet: its tag and its body, borrowed from
// the reader's buffer.
type Packet struct {
	tag      byte
	contents []byte
}

// Tag returns the packet's tag value.
func (p *Packet) Tag() byte {
	return p.tag
}

// Contents returns the packet body. The slice aliases the input buffer.
func (p *Packet) Contents() []byte {
	return p.contents
}

// Next frames the next packet from r, returning (nil, nil) at end of input.
// Both header formats are accepted. Indefinite lengths (old format) and
// partial body lengths (new format) never occur on signature packets and are
// rejected as malformed.
func Next(r *buffer.Reader) (*Packet, error) {
	if r.Empty() {
		return nil, nil
	}
	header, err := r.Byte()
	if err != nil {
		return nil, err
	}
	if header&0x80 == 0 {
		return nil, errors.StructuralError("no header bit in packet tag byte")
	}
	var tag byte
	var length uint32
	if header&0x40 == 0 {
		// Old format: tag in bits 5..2, length type in bits 1..0.
		tag = header >> 2 & 0x0f
		switch header & 0x03 {
		case 0:
			b, err := r.Byte()
			if err != nil {
				return nil, err
			}
			length = uint32(b)
		case 1:
			l, err := r.Uint16()
			if err != nil {
				return nil, err
			}
			length = uint32(l)
		case 2:
			length, err = r.Uint32()
			if err != nil {
				return nil, err
			}
		default:
			return nil, errors.StructuralError("indefinite-length packet")
		}
	} else {
		// New format: tag in bits 5..0, self-describing length.
		tag = header & 0x3f
		b, err := r.Byte()
		if err != nil {
			return nil, err
		}
		switch {
		case b < 192:
			length = uint32(b)
		case b < 224:
			b2, err := r.Byte()
			if err != nil {
				return nil, err
			}
			length = (uint32(b)-192)<<8 + uint32(b2) + 192
		case b == 255:
			length, err = r.Uint32()
			if err != nil {
				return nil, err
			}
		default:
			return nil, errors.StructuralError("partial-length packet")
		}
	}
	if tag == 0 {
		return nil, errors.StructuralError("reserved packet tag 0")
	}
	contents, err := r.Bytes(int(length))
	if err != nil {
		return nil, err
	}
	return &Packet{tag: tag, contents: contents}, nil
}

// NextSubpacket consumes the next length-framed signature subpacket from r
// and returns it (tag byte plus body) as a slice aliasing the input buffer.
// The length prefix uses the subpacket encoding of RFC 4880, section 5.2.3.1.
func NextSubpacket(r *buffer.Reader) ([]byte, error) {
	b, err := r.Byte()
	if err != nil {
		return nil, err
	}
	var length uint32
	switch {
	case b < 192:
		length = uint32(b)
	case b < 255:
		b2, err := r.Byte()
		if err != nil {
			return nil, err
		}
		length = (uint32(b)-192)<<8 + uint32(b2) + 192
	default:
		length, err = r.Uint32()
		if err != nil {
			return nil, err
		}
	}
	return r.Bytes(int(length))
}
