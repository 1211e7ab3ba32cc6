package signature

import (
	"math/bits"

	"github.com/fepitre/qubes-rpm-oxide/openpgp/buffer"
	"github.com/fepitre/qubes-rpm-oxide/openpgp/errors"
)

// ReadMPI reads one multiprecision integer from r and returns its magnitude
// bytes, aliasing r's buffer. The encoding must be canonical: the declared
// bit length has to put the most significant set bit in the first byte, so a
// value can never carry a superfluous leading zero byte. A zero-length MPI
// is valid and yields an empty slice. Encrypted MPIs are exempt from the
// canonical-form rule, but this package only ever reads signature MPIs.
func ReadMPI(r *buffer.Reader) ([]byte, error) {
	declared, err := r.Uint16()
	if err != nil {
		return nil, err
	}
	bitLen := 7 + int(declared)
	mpi, err := r.Bytes(bitLen >> 3)
	if err != nil {
		return nil, err
	}
	if len(mpi) > 0 && bits.LeadingZeros8(mpi[0])+(bitLen&7) != 7 {
		return nil, errors.ErrBadMPI
	}
	return mpi, nil
}
