package crypto

import (
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"

	"walletcore/internal/util/memzero"
)

// X25519KeySize is the length of X25519 public and private keys.
const X25519KeySize = 32

// ConvertPublicKey maps an Ed25519 public key to its X25519 (Montgomery u)
// representation via the birational map u = (1+y)/(1-y).
func ConvertPublicKey(pub PublicKey) ([X25519KeySize]byte, error) {
	var out [X25519KeySize]byte
	p, err := new(edwards25519.Point).SetBytes(pub[:])
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrCurveConversionFailed, err)
	}
	copy(out[:], p.BytesMontgomery())
	return out, nil
}

// ConvertSecretKey maps an Ed25519 seed to the X25519 scalar it signs with:
// the clamped low half of SHA-512(seed), per RFC 8032 §5.1.5.
func ConvertSecretKey(secret SecretKey) [X25519KeySize]byte {
	h := sha512.Sum512(secret.seed[:])
	defer memzero.Zero(h[:])

	var out [X25519KeySize]byte
	copy(out[:], h[:X25519KeySize])
	clamp(&out)
	return out
}

// clamp applies the RFC 7748 scalar clamping.
func clamp(k *[X25519KeySize]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
