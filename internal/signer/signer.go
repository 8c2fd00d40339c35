package signer

import (
	"errors"
	"log/slog"

	"walletcore/internal/address"
	"walletcore/internal/crypto"
)

// ErrSigningFailed matches every error returned by Signer.Sign.
var ErrSigningFailed = errors.New("signing failed")

// Signable is implemented by payloads that can be signed.
type Signable interface {
	// SerializeForSigning returns the canonical bytes to sign.
	SerializeForSigning() ([]byte, error)
	// ApplySignature stores the computed signature on the payload.
	ApplySignature(sig crypto.Signature) error
}

// SecretKeySource yields a raw account secret key. Keystore files and PEM
// blocks implement it.
type SecretKeySource interface {
	SecretKey() (crypto.SecretKey, error)
}

// SigningError reports why signing failed. It matches ErrSigningFailed
// with errors.Is; the underlying cause is available from Cause but is not
// exposed through Unwrap.
type SigningError struct {
	cause error
}

func (e *SigningError) Error() string {
	if e.cause == nil {
		return ErrSigningFailed.Error()
	}
	return ErrSigningFailed.Error() + ": " + e.cause.Error()
}

// Is lets errors.Is(err, ErrSigningFailed) succeed.
func (e *SigningError) Is(target error) bool { return target == ErrSigningFailed }

// Cause returns the error that made signing fail.
func (e *SigningError) Cause() error { return e.cause }

// Option configures a Signer.
type Option func(*Signer)

// WithLogger sets the logger used for signing events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Signer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHRP sets the address prefix returned by Address.
func WithHRP(hrp string) Option {
	return func(s *Signer) { s.hrp = hrp }
}

// Signer signs payloads with one account key.
type Signer struct {
	secret crypto.SecretKey
	public crypto.PublicKey
	hrp    string
	logger *slog.Logger
}

// New returns a Signer for secret.
func New(secret crypto.SecretKey, opts ...Option) *Signer {
	s := &Signer{
		secret: secret,
		public: secret.PublicKey(),
		hrp:    address.DefaultHRP,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromSecretKeySource loads the secret key from src and returns a Signer.
func FromSecretKeySource(src SecretKeySource, opts ...Option) (*Signer, error) {
	secret, err := src.SecretKey()
	if err != nil {
		return nil, err
	}
	return New(secret, opts...), nil
}

// Sign serializes s, signs the bytes and applies the signature back onto s.
// Any failure is returned as a *SigningError.
func (s *Signer) Sign(payload Signable) error {
	if payload == nil {
		return &SigningError{cause: errors.New("nil payload")}
	}
	data, err := payload.SerializeForSigning()
	if err != nil {
		s.logger.Warn("serialize for signing failed", "component", "signer", "signer", s.public.Hex(), "error", err)
		return &SigningError{cause: err}
	}
	sig := s.secret.Sign(data)
	if err := payload.ApplySignature(sig); err != nil {
		s.logger.Warn("apply signature failed", "component", "signer", "signer", s.public.Hex(), "error", err)
		return &SigningError{cause: err}
	}
	s.logger.Debug("payload signed", "component", "signer", "signer", s.public.Hex(), "bytes", len(data))
	return nil
}

// SignBytes signs raw bytes without a payload wrapper.
func (s *Signer) SignBytes(data []byte) crypto.Signature { return s.secret.Sign(data) }

// PublicKey returns the signer's public key.
func (s *Signer) PublicKey() crypto.PublicKey { return s.public }

// Address returns the signer's account address.
func (s *Signer) Address() (address.Address, error) { return s.public.ToAddress(s.hrp) }

// Verifier checks payload signatures against one public key.
type Verifier struct {
	public crypto.PublicKey
}

// NewVerifier returns a Verifier for pub.
func NewVerifier(pub crypto.PublicKey) *Verifier { return &Verifier{public: pub} }

// Verify reports whether sig is valid over the payload's signing bytes.
// A payload that fails to serialize does not verify.
func (v *Verifier) Verify(payload Signable, sig crypto.Signature) bool {
	if payload == nil {
		return false
	}
	data, err := payload.SerializeForSigning()
	if err != nil {
		return false
	}
	return v.public.Verify(data, sig[:])
}
