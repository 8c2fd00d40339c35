// Package message encrypts, decrypts and signs payloads for local accounts.
//
// Keys are loaded per call through the identity service and wiped once the
// operation completes.
package message
