// Package signer binds an account secret key to payloads that know how to
// serialize themselves for signing.
//
// A payload implements Signable: it produces the exact bytes to sign and
// accepts the resulting signature. Signer never inspects the payload
// beyond that contract, so each payload type (transaction, message, ...)
// owns its own canonical form.
package signer
