// Package commands defines the walletcore CLI and wires dependencies for subcommands.
//
// Commands
//
//   - mnemonic new|check    Generate or validate a BIP-39 phrase
//   - derive                Print addresses derived from a phrase
//   - keystore new          Create a wallet (mnemonic or random key)
//   - keystore import       Import a mnemonic or PEM key into a keystore
//   - keystore derive       Save another account from the stored mnemonic
//   - keystore export-pem   Export an account key as PEM
//   - accounts              List stored accounts
//   - address               Convert between hex public keys and bech32
//   - sign-message          Sign a message with an account
//   - verify-message        Verify a message signature
//   - sign-tx               Sign a transaction
//   - encrypt / decrypt     Seal or open a payload for an account
//
// # Implementation
//
// The root command loads Config (defaults, YAML file, environment, then
// flags) and builds the dependency graph before any subcommand runs, so
// handlers share one set of stores, services and logger.
package commands
