package address

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// PubKeySize is the length of the public key behind every address.
	PubKeySize = 32

	// DefaultHRP is the human-readable prefix used when none is configured.
	DefaultHRP = "erd"
)

var (
	// ErrInvalidAddress is returned when an address string cannot be decoded.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrWrongHRP is returned when a bech32 address carries an unexpected prefix.
	ErrWrongHRP = errors.New("unexpected address prefix")
)

// Address identifies an account by its 32-byte public key.
type Address struct {
	pubkey [PubKeySize]byte
	hrp    string
}

// FromPubKey wraps raw public-key bytes. hrp may be empty, in which case
// DefaultHRP is used.
func FromPubKey(pubkey []byte, hrp string) (Address, error) {
	if len(pubkey) != PubKeySize {
		return Address{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidAddress, PubKeySize, len(pubkey))
	}
	var a Address
	copy(a.pubkey[:], pubkey)
	a.hrp = normalizeHRP(hrp)
	return a, nil
}

// FromHex parses a hex-encoded public key.
func FromHex(value, hrp string) (Address, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return FromPubKey(raw, hrp)
}

// FromBech32 parses a bech32 address. When hrp is non-empty the decoded
// prefix must match it.
func FromBech32(value, hrp string) (Address, error) {
	decodedHRP, data, err := bech32.Decode(strings.TrimSpace(value))
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if hrp != "" && decodedHRP != hrp {
		return Address{}, fmt.Errorf("%w: want %q, got %q", ErrWrongHRP, hrp, decodedHRP)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return FromPubKey(raw, decodedHRP)
}

// Parse accepts either a bech32 address or a 64-character hex public key.
func Parse(value, hrp string) (Address, error) {
	value = strings.TrimSpace(value)
	if len(value) == hex.EncodedLen(PubKeySize) {
		if a, err := FromHex(value, hrp); err == nil {
			return a, nil
		}
	}
	return FromBech32(value, hrp)
}

// PubKey returns a copy of the public-key bytes.
func (a Address) PubKey() []byte {
	out := make([]byte, PubKeySize)
	copy(out, a.pubkey[:])
	return out
}

// HRP returns the human-readable prefix used by Bech32.
func (a Address) HRP() string { return normalizeHRP(a.hrp) }

// Hex returns the public key as lowercase hex.
func (a Address) Hex() string { return hex.EncodeToString(a.pubkey[:]) }

// Bech32 renders the address with its prefix. It panics only if the bech32
// encoder rejects a 32-byte payload, which cannot happen for a valid HRP.
func (a Address) Bech32() string {
	s, err := a.encode()
	if err != nil {
		panic(err)
	}
	return s
}

// String implements fmt.Stringer using the bech32 form.
func (a Address) String() string { return a.Bech32() }

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool { return a.pubkey == [PubKeySize]byte{} }

// Equal compares the underlying public keys and ignores the prefix.
func (a Address) Equal(other Address) bool { return a.pubkey == other.pubkey }

func (a Address) encode() (string, error) {
	conv, err := bech32.ConvertBits(a.pubkey[:], 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(a.HRP(), conv)
}

func normalizeHRP(hrp string) string {
	hrp = strings.ToLower(strings.TrimSpace(hrp))
	if hrp == "" {
		return DefaultHRP
	}
	return hrp
}
