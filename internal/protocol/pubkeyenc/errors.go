package pubkeyenc

import "errors"

var (
	// ErrEncryptionFailed wraps any failure inside the encryption path.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned when the box cannot be opened.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidEnvelope is returned for malformed envelopes: bad JSON,
	// missing fields, bad hex or wrong field sizes.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrUnsupportedVersion is returned for an unknown envelope version.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")

	// ErrUnsupportedCipher is returned for an unknown cipher identifier.
	ErrUnsupportedCipher = errors.New("unsupported cipher")

	// ErrRecipientMismatch is returned when the envelope is addressed to a
	// different public key than the one decrypting.
	ErrRecipientMismatch = errors.New("envelope addressed to another recipient")

	// ErrOriginatorAuthFailed is returned when the originator signature over
	// the ciphertext and ephemeral key does not verify.
	ErrOriginatorAuthFailed = errors.New("originator signature verification failed")
)
