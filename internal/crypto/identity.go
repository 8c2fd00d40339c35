package crypto

import (
	"crypto/ed25519"
	"io"

	"walletcore/internal/util/memzero"
)

// KeyPair carries a secret key together with its derived public key.
type KeyPair struct {
	Secret SecretKey
	Public PublicKey
}

// GenerateKeyPair returns a fresh Ed25519 key pair. A nil rand uses
// crypto/rand; tests pass a deterministic reader instead.
func GenerateKeyPair(rand io.Reader) (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return KeyPair{}, err
	}
	defer memzero.Zero(priv)

	var kp KeyPair
	copy(kp.Secret.seed[:], priv.Seed())
	copy(kp.Public[:], pub)
	return kp, nil
}

// KeyPairFromSecret completes a key pair from its secret half.
func KeyPairFromSecret(secret SecretKey) KeyPair {
	return KeyPair{Secret: secret, Public: secret.PublicKey()}
}

// Wipe zeroes the secret half.
func (kp *KeyPair) Wipe() { kp.Secret.Wipe() }
