package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key, seed or signature buffer
	// (or its hex form) has the wrong length.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrCurveConversionFailed is returned when an Ed25519 public key does
	// not decode to a point on the curve and so has no X25519 twin.
	ErrCurveConversionFailed = errors.New("could not convert ed25519 public key to x25519")
)
