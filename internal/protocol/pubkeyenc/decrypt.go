package pubkeyenc

import (
	"fmt"

	"golang.org/x/crypto/nacl/box"

	"walletcore/internal/crypto"
	"walletcore/internal/util/memzero"
)

// Decrypt opens an envelope addressed to recipient.
//
// The originator signature is checked before the box is opened; a forged or
// re-signed ciphertext never reaches the cipher.
func Decrypt(env *Envelope, recipient crypto.SecretKey) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrInvalidEnvelope)
	}
	d, err := env.decode()
	if err != nil {
		return nil, err
	}
	if d.recipient != recipient.PublicKey() {
		return nil, ErrRecipientMismatch
	}
	if !d.verifyOrigin() {
		return nil, ErrOriginatorAuthFailed
	}

	ephemeralX, err := crypto.ConvertPublicKey(d.ephemeral)
	if err != nil {
		return nil, err
	}
	recipientX := crypto.ConvertSecretKey(recipient)
	defer memzero.Zero(recipientX[:])

	plaintext, ok := box.Open(nil, d.ciphertext, &d.nonce, &ephemeralX, &recipientX)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// DecryptFrom is Decrypt plus a check that the envelope was produced by the
// expected originator.
func DecryptFrom(env *Envelope, recipient crypto.SecretKey, originator crypto.PublicKey) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrInvalidEnvelope)
	}
	claimed, err := env.Originator()
	if err != nil {
		return nil, err
	}
	if claimed != originator {
		return nil, fmt.Errorf("%w: unexpected originator %s", ErrOriginatorAuthFailed, claimed.Hex())
	}
	return Decrypt(env, recipient)
}
