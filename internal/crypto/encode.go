package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHex decodes a lowercase or uppercase hex string that must hold
// exactly size bytes. Length problems and malformed hex both wrap
// ErrInvalidKeyLength.
func DecodeHex(s string, size int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) != hex.EncodedLen(size) {
		return nil, fmt.Errorf("%w: want %d hex chars, got %d", ErrInvalidKeyLength, hex.EncodedLen(size), len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyLength, err)
	}
	return b, nil
}

// EncodeHex returns lowercase hex without prefix.
func EncodeHex(b []byte) string { return hex.EncodeToString(b) }
