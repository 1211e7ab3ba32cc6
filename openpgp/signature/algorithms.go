package signature

import (
	"strconv"

	"github.com/fepitre/qubes-rpm-oxide/openpgp/errors"
)

// PublicKeyAlgorithm is an OpenPGP public-key algorithm code. See RFC 4880,
// section 9.1.
type PublicKeyAlgorithm uint8

const (
	PubKeyAlgoRSA                PublicKeyAlgorithm = 1
	PubKeyAlgoRSAEncryptOnly     PublicKeyAlgorithm = 2
	PubKeyAlgoRSASignOnly        PublicKeyAlgorithm = 3
	PubKeyAlgoElGamal            PublicKeyAlgorithm = 16
	PubKeyAlgoDSA                PublicKeyAlgorithm = 17
	PubKeyAlgoECDH               PublicKeyAlgorithm = 18
	PubKeyAlgoECDSA              PublicKeyAlgorithm = 19
	PubKeyAlgoElGamalSignEncrypt PublicKeyAlgorithm = 20
	PubKeyAlgoDH                 PublicKeyAlgorithm = 21
	PubKeyAlgoEdDSA              PublicKeyAlgorithm = 22
)

func (alg PublicKeyAlgorithm) String() string {
	switch alg {
	case PubKeyAlgoRSA:
		return "RSA"
	case PubKeyAlgoRSAEncryptOnly:
		return "RSA (encrypt only)"
	case PubKeyAlgoRSASignOnly:
		return "RSA (sign only)"
	case PubKeyAlgoElGamal:
		return "ElGamal (encrypt only)"
	case PubKeyAlgoDSA:
		return "DSA"
	case PubKeyAlgoECDH:
		return "ECDH"
	case PubKeyAlgoECDSA:
		return "ECDSA"
	case PubKeyAlgoElGamalSignEncrypt:
		return "ElGamal (sign and encrypt)"
	case PubKeyAlgoDH:
		return "Diffie-Hellman"
	case PubKeyAlgoEdDSA:
		return "EdDSA"
	}
	return "unknown algorithm " + strconv.Itoa(int(alg))
}

// HashAlgorithm is an OpenPGP hash algorithm code. See RFC 4880, section 9.4.
type HashAlgorithm uint8

const (
	HashAlgoMD5       HashAlgorithm = 1
	HashAlgoSHA1      HashAlgorithm = 2
	HashAlgoRIPEMD160 HashAlgorithm = 3
	HashAlgoDoubleSHA HashAlgorithm = 4
	HashAlgoMD2       HashAlgorithm = 5
	HashAlgoTiger192  HashAlgorithm = 6
	HashAlgoHaval     HashAlgorithm = 7
	HashAlgoSHA256    HashAlgorithm = 8
	HashAlgoSHA384    HashAlgorithm = 9
	HashAlgoSHA512    HashAlgorithm = 10
	HashAlgoSHA224    HashAlgorithm = 11
)

func (hash HashAlgorithm) String() string {
	switch hash {
	case HashAlgoMD5:
		return "MD5"
	case HashAlgoSHA1:
		return "SHA-1"
	case HashAlgoRIPEMD160:
		return "RIPEMD-160"
	case HashAlgoDoubleSHA:
		return "double-width SHA (experimental)"
	case HashAlgoMD2:
		return "MD2"
	case HashAlgoTiger192:
		return "TIGER/192"
	case HashAlgoHaval:
		return "HAVAL-5-160"
	case HashAlgoSHA256:
		return "SHA-256"
	case HashAlgoSHA384:
		return "SHA-384"
	case HashAlgoSHA512:
		return "SHA-512"
	case HashAlgoSHA224:
		return "SHA-224"
	}
	return "unknown algorithm " + strconv.Itoa(int(hash))
}

// SignatureMPIs returns the number of MPIs a signature made by alg carries,
// checking alg against the signature wire version. Encryption-only and
// hybrid algorithms can never sign, and EdDSA signatures are only defined
// for version 4 packets.
func SignatureMPIs(alg PublicKeyAlgorithm, version byte) (int, error) {
	var v4 bool
	switch version {
	case 3:
		v4 = false
	case 4:
		v4 = true
	default:
		return 0, errors.SignatureVersionError(version)
	}
	switch alg {
	case PubKeyAlgoRSAEncryptOnly, PubKeyAlgoElGamal, PubKeyAlgoElGamalSignEncrypt,
		PubKeyAlgoECDH, PubKeyAlgoDH:
		return 0, errors.InvalidPublicKeyAlgorithmError(alg)
	case PubKeyAlgoRSA, PubKeyAlgoRSASignOnly:
		return 1, nil
	case PubKeyAlgoDSA:
		return 2, nil
	case PubKeyAlgoEdDSA:
		if v4 {
			return 2, nil
		}
		return 0, errors.PublicKeyAlgorithmV4RequiredError(alg)
	case PubKeyAlgoECDSA:
		if v4 {
			return 0, errors.UnsupportedPublicKeyAlgorithmError(alg)
		}
		return 0, errors.PublicKeyAlgorithmV4RequiredError(alg)
	default:
		return 0, errors.UnknownPublicKeyAlgorithmError(alg)
	}
}

// HashLength checks hash against the weak-hash policy and returns the length
// in bytes of the digest it produces. SHA-1, SHA-224 and MD5 are only
// accepted when allowWeak is set.
func HashLength(hash HashAlgorithm, allowWeak bool) (int, error) {
	switch hash {
	case HashAlgoSHA256:
		return 32, nil
	case HashAlgoSHA384:
		return 48, nil
	case HashAlgoSHA512:
		return 64, nil
	case HashAlgoSHA224:
		if allowWeak {
			return 28, nil
		}
		return 0, errors.InsecureHashAlgorithmError(hash)
	case HashAlgoSHA1:
		if allowWeak {
			return 20, nil
		}
		return 0, errors.InsecureHashAlgorithmError(hash)
	case HashAlgoMD5:
		// MD5 is only an algorithm at all under the weak-hash policy;
		// without it, it ranks with the unsupported codes.
		if allowWeak {
			return 16, nil
		}
		return 0, errors.UnsupportedHashAlgorithmError(hash)
	case HashAlgoRIPEMD160, HashAlgoMD2, HashAlgoTiger192, HashAlgoHaval:
		return 0, errors.InsecureHashAlgorithmError(hash)
	default:
		// Includes the experimental double-width SHA code.
		return 0, errors.UnsupportedHashAlgorithmError(hash)
	}
}
