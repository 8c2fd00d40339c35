// Package address encodes 32-byte account public keys as human-readable
// account identifiers.
//
// An Address is a thin wrapper around the raw public key. It renders either
// as lowercase hex or as bech32 with a human-readable prefix (HRP). The
// default prefix is "erd".
package address
