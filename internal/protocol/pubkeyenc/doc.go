// Package pubkeyenc encrypts a payload to an account's Ed25519 public key
// and binds the result to the sender's long-term signing identity.
//
// # Scheme
//
// Encrypt generates a fresh Ed25519 key pair per call, converts it and the
// recipient key to X25519, and seals the payload with NaCl box
// (X25519 + XSalsa20-Poly1305). The box tag only authenticates the
// ephemeral key, which the recipient has never seen, so the sender also
// signs SHA-256(ciphertext || ephemeralPubKey) with its own Ed25519 key.
// That signature travels as the envelope "mac".
//
// The 24-byte nonce is the first 24 bytes of SHA-256(plaintext). Each call
// uses a new ephemeral key, so a (key, nonce) pair never repeats.
//
// # Decryption
//
// Decrypt checks the envelope shape, then the originator signature, and
// only then opens the box:
//
//	env, err := pubkeyenc.ParseEnvelope(raw)
//	if err != nil {
//	    return err
//	}
//	plaintext, err := pubkeyenc.Decrypt(env, mySecretKey)
//
// # Randomness
//
// The package-level Encrypt draws ephemeral keys from crypto/rand. Tests
// build an Encryptor with WithRandom to inject a deterministic reader
// instead of touching global state.
package pubkeyenc
