package pubkeyenc

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"walletcore/internal/crypto"
	"walletcore/internal/util/memzero"
)

// Option configures an Encryptor.
type Option func(*Encryptor)

// WithRandom sets the source of ephemeral keys. A nil reader means
// crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(e *Encryptor) { e.rand = r }
}

// Encryptor seals payloads to recipients. It holds no per-call state and is
// safe for concurrent use when its reader is.
type Encryptor struct {
	rand io.Reader
}

// NewEncryptor returns an Encryptor configured by opts.
func NewEncryptor(opts ...Option) *Encryptor {
	e := &Encryptor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEncryptor = NewEncryptor()

// Encrypt seals data to recipient and signs the result with sender, drawing
// the ephemeral key from crypto/rand.
func Encrypt(data []byte, recipient crypto.PublicKey, sender crypto.SecretKey) (*Envelope, error) {
	return defaultEncryptor.Encrypt(data, recipient, sender)
}

// Encrypt seals data to recipient and signs the result with sender.
//
// The returned envelope carries the ephemeral public key, and the sender's
// public key as originator. Errors wrap crypto.ErrCurveConversionFailed when
// the recipient key is not a curve point, and ErrEncryptionFailed otherwise.
func (e *Encryptor) Encrypt(data []byte, recipient crypto.PublicKey, sender crypto.SecretKey) (*Envelope, error) {
	ephemeral, err := crypto.GenerateKeyPair(e.rand)
	if err != nil {
		return nil, fmt.Errorf("%w: ephemeral key: %v", ErrEncryptionFailed, err)
	}
	defer ephemeral.Wipe()

	recipientX, err := crypto.ConvertPublicKey(recipient)
	if err != nil {
		return nil, err
	}
	ephemeralX := crypto.ConvertSecretKey(ephemeral.Secret)
	defer memzero.Zero(ephemeralX[:])

	nonce := deriveNonce(data)
	ciphertext := box.Seal(nil, data, &nonce, &recipientX, &ephemeralX)
	if len(ciphertext) != len(data)+box.Overhead {
		return nil, fmt.Errorf("%w: unexpected ciphertext length %d", ErrEncryptionFailed, len(ciphertext))
	}

	hash := authHash(ciphertext, ephemeral.Public)
	mac := sender.Sign(hash[:])

	return &Envelope{
		Version:    Version,
		Nonce:      crypto.EncodeHex(nonce[:]),
		Cipher:     Cipher,
		Ciphertext: crypto.EncodeHex(ciphertext),
		MAC:        mac.Hex(),
		Identities: Identities{
			Recipient:        recipient.Hex(),
			EphemeralPubKey:  ephemeral.Public.Hex(),
			OriginatorPubKey: sender.PublicKey().Hex(),
		},
	}, nil
}

// deriveNonce returns the first 24 bytes of SHA-256(data).
func deriveNonce(data []byte) [NonceSize]byte {
	sum := sha256.Sum256(data)
	var nonce [NonceSize]byte
	copy(nonce[:], sum[:NonceSize])
	return nonce
}

