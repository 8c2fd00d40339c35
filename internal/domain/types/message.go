package types

import (
	"strconv"

	"golang.org/x/crypto/sha3"

	"walletcore/internal/crypto"
)

// MessagePrefix is prepended to signed messages so they can never be
// mistaken for transactions.
const MessagePrefix = "\x17Elrond Signed Message:\n"

// SignableMessage is an arbitrary message signed by an account.
type SignableMessage struct {
	Message []byte

	signature crypto.Signature
	signed    bool
}

// NewSignableMessage wraps message.
func NewSignableMessage(message []byte) *SignableMessage {
	return &SignableMessage{Message: append([]byte(nil), message...)}
}

// SerializeForSigning returns Keccak-256(prefix || len(message) || message).
func (m *SignableMessage) SerializeForSigning() ([]byte, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(MessagePrefix))
	h.Write([]byte(strconv.Itoa(len(m.Message))))
	h.Write(m.Message)
	return h.Sum(nil), nil
}

// ApplySignature stores sig on the message.
func (m *SignableMessage) ApplySignature(sig crypto.Signature) error {
	m.signature = sig
	m.signed = true
	return nil
}

// Signature returns the applied signature and whether one was applied.
func (m *SignableMessage) Signature() (crypto.Signature, bool) {
	return m.signature, m.signed
}
