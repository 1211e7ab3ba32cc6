package signature

import (
	"bytes"
	"testing"

	"github.com/fepitre/qubes-rpm-oxide/openpgp/buffer"
	"github.com/fepitre/qubes-rpm-oxide/openpgp/errors"
)

func TestReadMPI(t *testing.T) {
	// 16-bit value with the top bit set.
	r := buffer.New([]byte{0x00, 0x10, 0x80, 0x01, 0xff})
	mpi, err := ReadMPI(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(mpi, []byte{0x80, 0x01}) {
		t.Errorf("got %v", mpi)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 byte left, got %d", r.Len())
	}

	// 15-bit value: first byte has exactly one leading zero bit.
	mpi, err = ReadMPI(buffer.New([]byte{0x00, 0x0f, 0x40, 0x00}))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(mpi, []byte{0x40, 0x00}) {
		t.Errorf("got %v", mpi)
	}

	// 1-bit value.
	if _, err := ReadMPI(buffer.New([]byte{0x00, 0x01, 0x01})); err != nil {
		t.Fatal(err)
	}
}

func TestReadMPIZeroLength(t *testing.T) {
	mpi, err := ReadMPI(buffer.New([]byte{0x00, 0x00}))
	if err != nil {
		t.Fatal(err)
	}
	if len(mpi) != 0 {
		t.Errorf("expected empty magnitude, got %v", mpi)
	}
}

func TestReadMPIRejectsPadding(t *testing.T) {
	// Declared 16 bits but the top bit is clear.
	if _, err := ReadMPI(buffer.New([]byte{0x00, 0x10, 0x7f, 0xff})); err != errors.ErrBadMPI {
		t.Errorf("expected ErrBadMPI, got %v", err)
	}
	// Declared 8 bits but only one bit used: a superfluous leading zero
	// byte in disguise.
	if _, err := ReadMPI(buffer.New([]byte{0x00, 0x08, 0x01})); err != errors.ErrBadMPI {
		t.Errorf("expected ErrBadMPI, got %v", err)
	}
	// Declared 9 bits with a zero first byte.
	if _, err := ReadMPI(buffer.New([]byte{0x00, 0x09, 0x00, 0xff})); err != errors.ErrBadMPI {
		t.Errorf("expected ErrBadMPI, got %v", err)
	}
}

func TestReadMPITruncated(t *testing.T) {
	for _, data := range [][]byte{
		{},
		{0x00},
		{0x00, 0x10, 0x80},
	} {
		if _, err := ReadMPI(buffer.New(data)); err != errors.ErrPrematureEOF {
			t.Errorf("ReadMPI(%v): expected ErrPrematureEOF, got %v", data, err)
		}
	}
}
