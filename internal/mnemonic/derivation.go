package mnemonic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anyproto/go-slip10"

	"walletcore/internal/crypto"
	"walletcore/internal/util/memzero"
)

const (
	// DerivationPrefix is the account path before the per-account index.
	DerivationPrefix = "m/44'/508'/0'/0'"

	// HardenedOffset marks a hardened path segment.
	HardenedOffset uint32 = 0x80000000

	minMasterSeed = 16
	maxMasterSeed = 64
)

// AccountPath returns the full derivation path for accountIndex.
func AccountPath(accountIndex int) string {
	return fmt.Sprintf("%s/%d'", DerivationPrefix, accountIndex)
}

// DeriveAccountSeed derives the 32-byte account seed at
// m/44'/508'/0'/0'/{accountIndex}' from a master seed.
func DeriveAccountSeed(masterSeed []byte, accountIndex int) ([]byte, error) {
	if accountIndex < 0 || int64(accountIndex) >= int64(HardenedOffset) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDerivationIndex, accountIndex)
	}
	return derive(masterSeed, AccountPath(accountIndex))
}

// DerivePath derives the 32-byte seed at an arbitrary hardened path such as
// "m/44'/508'/1'/0'/3'".
func DerivePath(masterSeed []byte, path string) ([]byte, error) {
	segments, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return derive(masterSeed, formatPath(segments))
}

// ParsePath parses "m/a'/b'/..." into segment indices (without the hardened
// offset). There must be at least one segment and every one is hardened.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if parts[0] != "m" || len(parts) < 2 {
		return nil, fmt.Errorf("%w: path must look like m/a'/...: %q", ErrInvalidDerivationIndex, path)
	}
	out := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if !strings.HasSuffix(p, "'") {
			return nil, fmt.Errorf("%w: segment %q is not hardened", ErrInvalidDerivationIndex, p)
		}
		n, err := strconv.ParseUint(strings.TrimSuffix(p, "'"), 10, 32)
		if err != nil || uint32(n) >= HardenedOffset {
			return nil, fmt.Errorf("%w: segment %q", ErrInvalidDerivationIndex, p)
		}
		out = append(out, uint32(n))
	}
	return out, nil
}

func formatPath(segments []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, s := range segments {
		fmt.Fprintf(&b, "/%d'", s)
	}
	return b.String()
}

// derive runs SLIP-0010 Ed25519 derivation along a canonical hardened path.
func derive(masterSeed []byte, path string) ([]byte, error) {
	if len(masterSeed) < minMasterSeed || len(masterSeed) > maxMasterSeed {
		return nil, fmt.Errorf("%w: master seed wants %d..%d bytes, got %d",
			crypto.ErrInvalidKeyLength, minMasterSeed, maxMasterSeed, len(masterSeed))
	}
	node, err := slip10.DeriveForPath(path, masterSeed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDerivationIndex, err)
	}
	_, priv := node.Keypair()
	defer memzero.Zero(priv)
	return priv.Seed(), nil
}
