package crypto

import (
	"crypto/ed25519"
	"fmt"

	"walletcore/internal/address"
	"walletcore/internal/util/memzero"
)

const (
	// SeedSize is the length of a secret key (an Ed25519 seed).
	SeedSize = ed25519.SeedSize
	// PublicKeySize is the length of an Ed25519 public key.
	PublicKeySize = ed25519.PublicKeySize
	// SignatureSize is the length of a detached Ed25519 signature.
	SignatureSize = ed25519.SignatureSize
)

// SecretKey is a 32-byte Ed25519 seed.
type SecretKey struct {
	seed [SeedSize]byte
}

// SecretKeyFromBytes copies b into a SecretKey. b must be exactly 32 bytes.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	if len(b) != SeedSize {
		return SecretKey{}, fmt.Errorf("%w: secret key wants %d bytes, got %d", ErrInvalidKeyLength, SeedSize, len(b))
	}
	var k SecretKey
	copy(k.seed[:], b)
	return k, nil
}

// SecretKeyFromHex decodes a 64-character hex seed.
func SecretKeyFromHex(s string) (SecretKey, error) {
	b, err := DecodeHex(s, SeedSize)
	if err != nil {
		return SecretKey{}, err
	}
	defer memzero.Zero(b)
	return SecretKeyFromBytes(b)
}

// PublicKey derives the matching Ed25519 public key.
func (k SecretKey) PublicKey() PublicKey {
	priv := k.expand()
	defer memzero.Zero(priv)

	var pub PublicKey
	copy(pub[:], priv[SeedSize:])
	return pub
}

// Sign returns the deterministic Ed25519 signature of message.
func (k SecretKey) Sign(message []byte) Signature {
	priv := k.expand()
	defer memzero.Zero(priv)

	var sig Signature
	copy(sig[:], ed25519.Sign(priv, message))
	return sig
}

// Bytes returns a copy of the seed. Callers own the copy and should wipe it.
func (k SecretKey) Bytes() []byte {
	out := make([]byte, SeedSize)
	copy(out, k.seed[:])
	return out
}

// Hex exports the seed as lowercase hex.
func (k SecretKey) Hex() string { return EncodeHex(k.seed[:]) }

// String never reveals key material.
func (k SecretKey) String() string { return "SecretKey(redacted)" }

// GoString keeps %#v from printing the seed.
func (k SecretKey) GoString() string { return k.String() }

// Wipe zeroes the seed in place.
func (k *SecretKey) Wipe() { memzero.Zero(k.seed[:]) }

// expand returns the 64-byte Ed25519 private key (seed || public key).
func (k SecretKey) expand() ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(k.seed[:])
}

// PublicKey is a 32-byte Ed25519 public key.
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes copies b into a PublicKey. b must be exactly 32 bytes.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pub PublicKey
	if len(b) != PublicKeySize {
		return pub, fmt.Errorf("%w: public key wants %d bytes, got %d", ErrInvalidKeyLength, PublicKeySize, len(b))
	}
	copy(pub[:], b)
	return pub, nil
}

// PublicKeyFromHex decodes a 64-character hex public key.
func PublicKeyFromHex(s string) (PublicKey, error) {
	b, err := DecodeHex(s, PublicKeySize)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKeyFromBytes(b)
}

// Verify reports whether sig is a valid signature of message by this key.
// It returns false for a signature of the wrong length and never panics.
func (p PublicKey) Verify(message, sig []byte) (ok bool) {
	if len(sig) != SignatureSize {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return ed25519.Verify(ed25519.PublicKey(p[:]), message, sig)
}

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// Hex returns the key as lowercase hex.
func (p PublicKey) Hex() string { return EncodeHex(p[:]) }

// String implements fmt.Stringer.
func (p PublicKey) String() string { return p.Hex() }

// ToAddress renders the key as an account address with the given prefix.
func (p PublicKey) ToAddress(hrp string) (address.Address, error) {
	return address.FromPubKey(p[:], hrp)
}

// Address is ToAddress with the default prefix.
func (p PublicKey) Address() address.Address {
	a, _ := address.FromPubKey(p[:], address.DefaultHRP)
	return a
}

// Signature is a detached 64-byte Ed25519 signature.
type Signature [SignatureSize]byte

// SignatureFromBytes copies b into a Signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, fmt.Errorf("%w: signature wants %d bytes, got %d", ErrInvalidKeyLength, SignatureSize, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// SignatureFromHex decodes a 128-character hex signature.
func SignatureFromHex(s string) (Signature, error) {
	b, err := DecodeHex(s, SignatureSize)
	if err != nil {
		return Signature{}, err
	}
	return SignatureFromBytes(b)
}

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// Hex returns the signature as lowercase hex.
func (s Signature) Hex() string { return EncodeHex(s[:]) }
