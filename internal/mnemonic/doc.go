// Package mnemonic turns BIP-39 phrases into account secret keys.
//
// A phrase is stretched into a 64-byte master seed (PBKDF2-HMAC-SHA512,
// 2048 rounds, optional passphrase) and then walked down the fixed path
// m/44'/508'/0'/0'/{index}' using SLIP-0010 Ed25519 derivation. Every path
// segment is hardened; Ed25519 has no public derivation.
//
// Validation happens up front: FromString and SeedFromMnemonic reject a
// phrase whose checksum does not match before any key material is produced.
package mnemonic
