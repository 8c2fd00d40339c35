package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"

	"walletcore/internal/crypto"
	"walletcore/internal/util/memzero"
)

// Strength is the entropy, in bits, of generated phrases (24 words).
const Strength = 256

var (
	// ErrInvalidMnemonic is returned when a phrase is empty, uses unknown
	// words, or fails the BIP-39 checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidDerivationIndex is returned for an account index outside
	// [0, 2^31).
	ErrInvalidDerivationIndex = errors.New("invalid derivation index")
)

// Mnemonic is a validated, immutable BIP-39 phrase.
type Mnemonic struct {
	text string
}

// Generate creates a new 24-word phrase from crypto/rand entropy.
func Generate() (*Mnemonic, error) {
	entropy, err := bip39.NewEntropy(Strength)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(entropy)

	text, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, err
	}
	return &Mnemonic{text: text}, nil
}

// FromString validates text and wraps it. Surrounding and repeated
// whitespace is normalised to single spaces.
func FromString(text string) (*Mnemonic, error) {
	text = normalize(text)
	if err := Validate(text); err != nil {
		return nil, err
	}
	return &Mnemonic{text: text}, nil
}

// Validate checks that text is a well-formed BIP-39 phrase.
func Validate(text string) error {
	text = normalize(text)
	if text == "" {
		return fmt.Errorf("%w: empty phrase", ErrInvalidMnemonic)
	}
	if !bip39.IsMnemonicValid(text) {
		return ErrInvalidMnemonic
	}
	return nil
}

// Words returns the phrase split into words.
func (m *Mnemonic) Words() []string { return strings.Split(m.text, " ") }

// String returns the phrase text. Treat it as secret.
func (m *Mnemonic) String() string { return m.text }

// Seed returns the 64-byte BIP-39 master seed for passphrase. The
// passphrase is NFKD-normalised first, so canonically equal inputs give the
// same seed.
func (m *Mnemonic) Seed(passphrase string) []byte {
	return bip39.NewSeed(m.text, norm.NFKD.String(passphrase))
}

// DeriveKey derives the secret key for accountIndex along the default path.
func (m *Mnemonic) DeriveKey(accountIndex int, passphrase string) (crypto.SecretKey, error) {
	master := m.Seed(passphrase)
	defer memzero.Zero(master)

	seed, err := DeriveAccountSeed(master, accountIndex)
	if err != nil {
		return crypto.SecretKey{}, err
	}
	defer memzero.Zero(seed)
	return crypto.SecretKeyFromBytes(seed)
}

// SeedFromMnemonic validates words and returns its 64-byte master seed.
func SeedFromMnemonic(words, passphrase string) ([]byte, error) {
	m, err := FromString(words)
	if err != nil {
		return nil, err
	}
	return m.Seed(passphrase), nil
}

func normalize(text string) string {
	return strings.Join(strings.Fields(norm.NFKD.String(text)), " ")
}
