// Package store provides file-based persistence for wallet data.
//
// It contains the keystore and PEM codecs along with concrete
// implementations of the domain storage interfaces, serialising data as
// JSON on disk. Stores are concurrency-safe via internal locking and write
// files atomically with owner-only permissions. Files live under the
// configured home directory:
//   - <home>/wallets/<name>.json: keystore files (WalletFileStore)
//   - <home>/accounts.json: the account index (AccountFileStore)
package store
