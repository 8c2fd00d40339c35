// Package identity manages the wallet's key material.
//
// It creates or imports a BIP-39 mnemonic, derives accounts from it, seals
// every secret in a password-protected keystore and records accounts in the
// local index. Signers for an account are loaded from its keystore.
package identity
