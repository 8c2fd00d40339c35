// Package crypto exposes the key primitives used by walletcore.
//
// Contents
//
//   - Ed25519 secret keys (32-byte seeds), public keys and detached
//     signatures (SecretKey, PublicKey, Signature, KeyPair)
//   - Conversion of Ed25519 keys to their X25519 twins for Diffie–Hellman
//     (ConvertPublicKey, ConvertSecretKey)
//   - Fixed-length hex decoding (DecodeHex)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Keys are fixed-size values validated at construction; a SecretKey or
// PublicKey that exists always has the right length. Signing is
// deterministic: the same seed and message always yield the same signature.
// Verification never returns an error, malformed input simply does not
// verify. SecretKey never prints its bytes; use Hex explicitly to export it.
package crypto
