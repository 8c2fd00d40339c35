package pubkeyenc

const (
	// Version is the envelope format version.
	Version = 1

	// Cipher identifies NaCl box in the envelope.
	Cipher = "x25519-xsalsa20-poly1305"

	// NonceSize is the length of the box nonce.
	NonceSize = 24

	// TagSize is the Poly1305 overhead added to every ciphertext.
	TagSize = 16
)
