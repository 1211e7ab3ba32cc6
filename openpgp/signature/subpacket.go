package signature

import (
	"encoding/binary"

	"github.com/fepitre/qubes-rpm-oxide/openpgp/buffer"
	"github.com/fepitre/qubes-rpm-oxide/openpgp/errors"
)

// Signature subpacket type codes. See RFC 4880, section 5.2.3.1.
const (
	subpacketCreationTime         = 2
	subpacketSigExpirationTime    = 3
	subpacketExportable           = 4
	subpacketTrustSig             = 5
	subpacketRegex                = 6
	subpacketRevocable            = 7
	subpacketKeyExpirationTime    = 9
	subpacketPlaceholder          = 10
	subpacketPreferredSymmetric   = 11
	subpacketRevocationKey        = 12
	subpacketIssuerKeyID          = 16
	subpacketNotation             = 20
	subpacketPreferredHash        = 21
	subpacketPreferredCompression = 22
	subpacketKeyServerPrefs       = 23
	subpacketPreferredKeyServers  = 24
	subpacketPrimaryUserID        = 25
	subpacketPolicyURI            = 26
	subpacketKeyFlags             = 27
	subpacketSignerUserID         = 28
	subpacketRevocationReason     = 29
	subpacketFeatures             = 30
	subpacketSignatureTarget      = 31
	subpacketEmbeddedSignature    = 32
	subpacketIssuerFingerprint    = 33
)

// sigAccumulator collects the subpacket-provided fields of one signature
// while its hashed area is scanned. Each field may be set at most once; a
// second occurrence of the same subpacket kind is a hard parse error.
type sigAccumulator struct {
	keyID          *uint64
	fingerprint    []byte
	creationTime   *uint32
	expirationTime *uint32
}

// processSubpacket folds one subpacket body into acc. tag has already had
// its critical bit stripped: a subpacket kind this decoder does not handle
// is rejected whether marked critical or not. time is the caller's reference
// time, 0 meaning no time policy is enforced.
func processSubpacket(r *buffer.Reader, time uint32, tag byte, acc *sigAccumulator) error {
	switch tag {
	case
		// Only meaningful on self-signatures.
		subpacketKeyExpirationTime,
		subpacketPreferredSymmetric,
		subpacketPreferredHash,
		subpacketPreferredCompression,
		subpacketKeyServerPrefs,
		subpacketPrimaryUserID,
		subpacketPreferredKeyServers,
		subpacketFeatures,
		// Only meaningful on certifications.
		subpacketExportable,
		subpacketTrustSig,
		subpacketRegex,
		subpacketRevocationKey,
		subpacketRevocable,
		// Only meaningful on certifications or self-signatures.
		subpacketKeyFlags,
		// Only meaningful on revocations.
		subpacketRevocationReason,
		// Never on a document signature.
		subpacketSignatureTarget,
		// Only meaningful on subkey binding signatures.
		subpacketEmbeddedSignature,
		// Defined but never generated.
		subpacketPlaceholder:
		return errors.StructuralError("subpacket not valid on a document signature")
	case subpacketSigExpirationTime:
		t, err := r.Uint32()
		if err != nil {
			return err
		}
		if time != 0 && t >= time {
			return errors.ErrSignatureExpired
		}
		if acc.expirationTime != nil {
			return errors.StructuralError("duplicate expiration time subpacket")
		}
		acc.expirationTime = &t
		return nil
	case subpacketCreationTime:
		t, err := r.Uint32()
		if err != nil {
			return err
		}
		if time != 0 && t < time {
			return errors.ErrSignatureNotYetValid
		}
		if acc.creationTime != nil {
			return errors.StructuralError("duplicate creation time subpacket")
		}
		acc.creationTime = &t
		return nil
	case subpacketIssuerKeyID:
		if acc.keyID != nil {
			return errors.StructuralError("duplicate issuer subpacket")
		}
		b, err := r.Bytes(8)
		if err != nil {
			return err
		}
		id := binary.BigEndian.Uint64(b)
		acc.keyID = &id
		return nil
	case subpacketIssuerFingerprint:
		b, err := r.Bytes(21)
		if err != nil {
			return err
		}
		if b[0] != 4 || acc.fingerprint != nil {
			return errors.StructuralError("bad issuer fingerprint subpacket")
		}
		acc.fingerprint = b[1:]
		return nil
	default:
		// Deny by default. Notation data, policy URIs, signer user ids and
		// every code this decoder has never heard of are rejected alike, so
		// no unauthenticated extension ever slips past a verifier.
		return errors.UnsupportedSubpacketError(tag)
	}
}
