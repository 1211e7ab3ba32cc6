// Package signature decodes OpenPGP binary-document signature packets
// without touching any cryptographic material. It extracts signer metadata
// (key id, fingerprint, algorithms, validity window) and rejects anything
// malformed, ambiguous, duplicated, or disallowed by the caller's algorithm
// policy, so a verifier never sees a degenerate signature. The signature
// values themselves (the MPIs) are checked for structure only and then
// discarded; digest computation and verification belong to the caller.
package signature

import (
	"encoding/binary"

	"github.com/fepitre/qubes-rpm-oxide/openpgp/buffer"
	"github.com/fepitre/qubes-rpm-oxide/openpgp/errors"
	"github.com/fepitre/qubes-rpm-oxide/openpgp/packet"
)

// sigTypeBinary is the signature type of a binary document signature, the
// only type this decoder accepts. See RFC 4880, section 5.2.1.
const sigTypeBinary = 0

// SigInfo is the signer metadata extracted from one signature packet. It is
// only produced once every structural and policy check has passed; a failed
// parse never exposes a partial SigInfo.
type SigInfo struct {
	// Hash is the hash algorithm code.
	Hash HashAlgorithm
	// PubKeyAlgo is the public-key algorithm code.
	PubKeyAlgo PublicKeyAlgorithm
	// KeyId identifies the signing key.
	KeyId uint64
	// Fingerprint is the 20-byte fingerprint of the signing key, nil when
	// the signature did not carry one. When present, its trailing 8 bytes
	// always equal KeyId.
	Fingerprint []byte
	// CreationTime is the signature creation time in seconds since the
	// Unix epoch.
	CreationTime uint32
	// ExpirationTime is the value of the expiration subpacket, nil when the
	// signature carried none. It is stored as found on the wire.
	ExpirationTime *uint32
}

// Parse decodes data as exactly one signature packet. Bytes after the packet
// fail with errors.ErrTrailingData. time is a reference timestamp checked
// against the signature's creation and expiration times, 0 disabling the
// check. allowWeakHashes additionally admits the SHA-1, SHA-224 and MD5
// digests.
func Parse(data []byte, time uint32, allowWeakHashes bool) (*SigInfo, error) {
	var si *SigInfo
	err := buffer.ReadAll(data, func(r *buffer.Reader) error {
		var err error
		si, err = ReadSignature(r, time, allowWeakHashes)
		return err
	})
	if err != nil {
		return nil, err
	}
	return si, nil
}

// ReadSignature frames the next packet from r, which must be a signature
// packet, and decodes it as Parse does. Bytes following the packet are left
// unconsumed for the caller.
func ReadSignature(r *buffer.Reader, time uint32, allowWeakHashes bool) (*SigInfo, error) {
	p, err := packet.Next(r)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.ErrPrematureEOF
	}
	if p.Tag() != packet.TagSignature {
		return nil, errors.StructuralError("not a signature packet")
	}
	var si *SigInfo
	err = buffer.ReadAll(p.Contents(), func(r *buffer.Reader) error {
		var err error
		si, err = parseSignatureBody(r, time, allowWeakHashes)
		return err
	})
	if err != nil {
		return nil, err
	}
	return si, nil
}

func parseSignatureBody(r *buffer.Reader, time uint32, allowWeakHashes bool) (*SigInfo, error) {
	version, err := r.Byte()
	if err != nil {
		return nil, err
	}
	var (
		acc     sigAccumulator
		pkeyAlg PublicKeyAlgorithm
		hashAlg HashAlgorithm
		keyID   uint64
	)
	switch version {
	case 3:
		// Fixed legacy layout: a literal length-of-hashed-material byte
		// (always 5), the signature type, then creation time, key id and
		// the algorithm codes. No subpacket area exists.
		b, err := r.Byte()
		if err != nil {
			return nil, err
		}
		if b != 5 {
			return nil, errors.StructuralError("v3 hashed material length must be 5")
		}
		if b, err = r.Byte(); err != nil {
			return nil, err
		}
		if b != sigTypeBinary {
			return nil, errors.StructuralError("not a binary document signature")
		}
		t, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		acc.creationTime = &t
		if keyID, err = r.Uint64(); err != nil {
			return nil, err
		}
		if b, err = r.Byte(); err != nil {
			return nil, err
		}
		pkeyAlg = PublicKeyAlgorithm(b)
		if b, err = r.Byte(); err != nil {
			return nil, err
		}
		hashAlg = HashAlgorithm(b)
	case 4:
		b, err := r.Byte()
		if err != nil {
			return nil, err
		}
		if b != sigTypeBinary {
			return nil, errors.StructuralError("not a binary document signature")
		}
		if b, err = r.Byte(); err != nil {
			return nil, err
		}
		pkeyAlg = PublicKeyAlgorithm(b)
		if b, err = r.Byte(); err != nil {
			return nil, err
		}
		hashAlg = HashAlgorithm(b)
		hashedLen, err := r.Uint16()
		if err != nil {
			return nil, err
		}
		// The hashed area is the only subpacket region covered by the
		// digest, so it is the only region trusted for policy fields.
		err = r.ReadExact(int(hashedLen), func(r *buffer.Reader) error {
			for !r.Empty() {
				sub, err := packet.NextSubpacket(r)
				if err != nil {
					return err
				}
				err = buffer.ReadAll(sub, func(r *buffer.Reader) error {
					tag, err := r.Byte()
					if err != nil {
						return err
					}
					return processSubpacket(r, time, tag&0x7f, &acc)
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		// The unhashed area is unauthenticated, so only one shape is
		// tolerated: a single issuer key id record, and only if the hashed
		// area did not already provide one. Anything else has been used to
		// smuggle data past verifiers.
		if acc.keyID == nil {
			prefix, err := r.Bytes(4)
			if err != nil {
				return nil, err
			}
			if prefix[0] != 0 || prefix[1] != 10 || prefix[2] != 9 || prefix[3] != subpacketIssuerKeyID {
				return nil, errors.StructuralError("malformed unhashed area")
			}
			if keyID, err = r.Uint64(); err != nil {
				return nil, err
			}
		} else {
			n, err := r.Uint16()
			if err != nil {
				return nil, err
			}
			if n != 0 {
				return nil, errors.StructuralError("malformed unhashed area")
			}
			keyID = *acc.keyID
		}
		if acc.fingerprint != nil && binary.BigEndian.Uint64(acc.fingerprint[12:]) != keyID {
			return nil, errors.StructuralError("fingerprint does not match key id")
		}
	default:
		return nil, errors.StructuralError("unsupported signature packet version")
	}
	mpis, err := SignatureMPIs(pkeyAlg, version)
	if err != nil {
		return nil, err
	}
	if _, err := HashLength(hashAlg, allowWeakHashes); err != nil {
		return nil, err
	}
	if acc.creationTime == nil {
		return nil, errors.ErrNoCreationTime
	}
	// The next two bytes preview the digest as a fast-reject hint for
	// verifiers; nothing to validate here.
	if _, err := r.Bytes(2); err != nil {
		return nil, err
	}
	for i := 0; i < mpis; i++ {
		if _, err := ReadMPI(r); err != nil {
			return nil, err
		}
	}
	return &SigInfo{
		Hash:           hashAlg,
		PubKeyAlgo:     pkeyAlg,
		KeyId:          keyID,
		Fingerprint:    acc.fingerprint,
		CreationTime:   *acc.creationTime,
		ExpirationTime: acc.expirationTime,
	}, nil
}
