package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	fingerprintBytes = 10
	fingerprintGroup = 4
)

// Fingerprint returns a short display form of pub: the first 10 bytes of
// SHA-256(pub) as hex, in dash-separated groups of four characters.
func Fingerprint(pub PublicKey) string {
	sum := sha256.Sum256(pub[:])
	digits := hex.EncodeToString(sum[:fingerprintBytes])

	var b strings.Builder
	for i := 0; i < len(digits); i += fingerprintGroup {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(digits[i : i+fingerprintGroup])
	}
	return b.String()
}

// Fingerprint is shorthand for Fingerprint(p).
func (p PublicKey) Fingerprint() string { return Fingerprint(p) }
