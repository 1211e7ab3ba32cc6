// Package buffer implements the bounded cursor the OpenPGP decoder reads
// wire data through. A Reader is a non-owning view of a byte slice: every
// read is bounds checked against the bytes that remain, and slices handed
// out alias the underlying buffer rather than copying it.
package buffer

import (
	"encoding/binary"

	"github.com/fepitre/qubes-rpm-oxide/openpgp/errors"
)

// Reader is a sequential cursor over a byte slice. Requesting more bytes
// than remain fails with errors.ErrPrematureEOF and consumes nothing.
type Reader struct {
	data []byte
}

// New returns a Reader over data. The Reader borrows data; it never copies.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unconsumed bytes.
func (r *Reader) Len() int {
	return len(r.data)
}

// Empty reports whether all bytes have been consumed.
func (r *Reader) Empty() bool {
	return len(r.data) == 0
}

// Bytes consumes and returns the next n bytes. The result aliases the
// underlying buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > len(r.data) {
		return nil, errors.ErrPrematureEOF
	}
	b := r.data[:n:n]
	r.data = r.data[n:]
	return b, nil
}

// Byte consumes and returns the next byte.
func (r *Reader) Byte() (byte, error) {
	if len(r.data) == 0 {
		return 0, errors.ErrPrematureEOF
	}
	b := r.data[0]
	r.data = r.data[1:]
	return b, nil
}

// Uint16 consumes a big-endian 16-bit integer.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// Uint32 consumes a big-endian 32-bit integer.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Uint64 consumes a big-endian 64-bit integer.
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadExact runs parse over exactly the next n bytes. parse must consume all
// of them; leftover bytes fail with errors.ErrTrailingData.
func (r *Reader) ReadExact(n int, parse func(*Reader) error) error {
	b, err := r.Bytes(n)
	if err != nil {
		return err
	}
	return ReadAll(b, parse)
}

// ReadAll runs parse over the whole of data and fails with
// errors.ErrTrailingData if parse leaves any byte unconsumed.
func ReadAll(data []byte, parse func(*Reader) error) error {
	r := New(data)
	if err := parse(r); err != nil {
		return err
	}
	if !r.Empty() {
		return errors.ErrTrailingData
	}
	return nil
}
