// Package errors contains the closed set of error types returned by the
// signature decoder. Every parse failure maps onto exactly one of these, so
// a caller can tell reject reasons apart with a type switch or an equality
// check against the exported sentinels.
package errors

import "strconv"

// A StructuralError is returned when signature data is syntactically invalid:
// a wrong literal field, a duplicated subpacket, a subpacket kind that never
// occurs on a binary document signature, or a malformed unhashed area.
type StructuralError string

func (s StructuralError) Error() string {
	return "openpgp: invalid data: " + string(s)
}

// A SignatureVersionError is returned for a signature wire version other
// than 3 or 4.
type SignatureVersionError byte

func (v SignatureVersionError) Error() string {
	return "openpgp: unsupported signature version " + strconv.Itoa(int(v))
}

// An UnsupportedSubpacketError is returned for any subpacket kind the decoder
// does not explicitly handle, whether or not its critical bit is set. Unknown
// extensions are never silently skipped.
type UnsupportedSubpacketError byte

func (t UnsupportedSubpacketError) Error() string {
	return "openpgp: unsupported subpacket type " + strconv.Itoa(int(t))
}

// An InvalidPublicKeyAlgorithmError is returned for a public-key algorithm
// that can never produce a signature, such as an encryption-only algorithm.
type InvalidPublicKeyAlgorithmError byte

func (alg InvalidPublicKeyAlgorithmError) Error() string {
	return "openpgp: public-key algorithm " + strconv.Itoa(int(alg)) + " cannot sign"
}

// An UnsupportedPublicKeyAlgorithmError is returned for a signing algorithm
// the decoder knows of but does not accept.
type UnsupportedPublicKeyAlgorithmError byte

func (alg UnsupportedPublicKeyAlgorithmError) Error() string {
	return "openpgp: unsupported public-key algorithm " + strconv.Itoa(int(alg))
}

// A PublicKeyAlgorithmV4RequiredError is returned when an algorithm is only
// defined for version 4 signatures but appeared in a version 3 signature.
type PublicKeyAlgorithmV4RequiredError byte

func (alg PublicKeyAlgorithmV4RequiredError) Error() string {
	return "openpgp: public-key algorithm " + strconv.Itoa(int(alg)) + " requires a v4 signature"
}

// An UnknownPublicKeyAlgorithmError is returned for a public-key algorithm
// code outside the known range.
type UnknownPublicKeyAlgorithmError byte

func (alg UnknownPublicKeyAlgorithmError) Error() string {
	return "openpgp: unknown public-key algorithm " + strconv.Itoa(int(alg))
}

// An InsecureHashAlgorithmError is returned for a hash algorithm that is
// known but too weak to accept under the current policy.
type InsecureHashAlgorithmError byte

func (hash InsecureHashAlgorithmError) Error() string {
	return "openpgp: insecure hash algorithm " + strconv.Itoa(int(hash))
}

// An UnsupportedHashAlgorithmError is returned for an experimental or unknown
// hash algorithm code.
type UnsupportedHashAlgorithmError byte

func (hash UnsupportedHashAlgorithmError) Error() string {
	return "openpgp: unsupported hash algorithm " + strconv.Itoa(int(hash))
}

type prematureEOFError int

func (prematureEOFError) Error() string {
	return "openpgp: premature end of data"
}

// ErrPrematureEOF is returned when fewer bytes remain than a field requires.
var ErrPrematureEOF error = prematureEOFError(0)

type trailingDataError int

func (trailingDataError) Error() string {
	return "openpgp: trailing data after packet"
}

// ErrTrailingData is returned when bytes are left over in a region that had
// to be consumed completely.
var ErrTrailingData error = trailingDataError(0)

type badMPIError int

func (badMPIError) Error() string {
	return "openpgp: MPI encoding is not canonical"
}

// ErrBadMPI is returned for a multiprecision integer whose declared bit
// length does not match its most significant set bit.
var ErrBadMPI error = badMPIError(0)

type signatureExpiredError int

func (signatureExpiredError) Error() string {
	return "openpgp: signature expired"
}

// ErrSignatureExpired is returned when a signature's expiration time is at or
// after the caller's reference time.
var ErrSignatureExpired error = signatureExpiredError(0)

type signatureNotYetValidError int

func (signatureNotYetValidError) Error() string {
	return "openpgp: signature not yet valid"
}

// ErrSignatureNotYetValid is returned when a signature's creation time is
// before the caller's reference time.
var ErrSignatureNotYetValid error = signatureNotYetValidError(0)

type noCreationTimeError int

func (noCreationTimeError) Error() string {
	return "openpgp: signature has no creation time"
}

// ErrNoCreationTime is returned for a signature that carries no creation
// time at all.
var ErrNoCreationTime error = noCreationTimeError(0)
