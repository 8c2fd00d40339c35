package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"walletcore/internal/address"
	"walletcore/internal/crypto"
)

// ErrInvalidTransaction is returned when a transaction cannot be serialized.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Transaction is a value transfer or contract call.
type Transaction struct {
	Nonce    uint64
	Value    string
	Receiver address.Address
	Sender   address.Address
	GasPrice uint64
	GasLimit uint64
	Data     []byte
	ChainID  string
	Version  uint32
	Options  uint32

	signature crypto.Signature
	signed    bool
}

// txWire fixes field order and names of the signing form.
type txWire struct {
	Nonce     uint64 `json:"nonce"`
	Value     string `json:"value"`
	Receiver  string `json:"receiver"`
	Sender    string `json:"sender"`
	GasPrice  uint64 `json:"gasPrice"`
	GasLimit  uint64 `json:"gasLimit"`
	Data      []byte `json:"data,omitempty"`
	ChainID   string `json:"chainID"`
	Version   uint32 `json:"version"`
	Options   uint32 `json:"options,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// SerializeForSigning returns the canonical JSON without the signature.
func (tx *Transaction) SerializeForSigning() ([]byte, error) {
	w, err := tx.wire()
	if err != nil {
		return nil, err
	}
	return w.marshal()
}

// ApplySignature stores sig on the transaction.
func (tx *Transaction) ApplySignature(sig crypto.Signature) error {
	tx.signature = sig
	tx.signed = true
	return nil
}

// Signature returns the applied signature and whether one was applied.
func (tx *Transaction) Signature() (crypto.Signature, bool) {
	return tx.signature, tx.signed
}

// MarshalJSON returns the broadcast form, including the signature when set.
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	w, err := tx.wire()
	if err != nil {
		return nil, err
	}
	if tx.signed {
		w.Signature = tx.signature.Hex()
	}
	return w.marshal()
}

// marshal encodes w without HTML escaping, matching JSON.stringify.
func (w txWire) marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (tx *Transaction) wire() (txWire, error) {
	value := strings.TrimSpace(tx.Value)
	if value == "" {
		value = "0"
	}
	v, ok := new(big.Int).SetString(value, 10)
	if !ok || v.Sign() < 0 {
		return txWire{}, fmt.Errorf("%w: value %q is not a non-negative integer", ErrInvalidTransaction, tx.Value)
	}
	if tx.Receiver.IsZero() || tx.Sender.IsZero() {
		return txWire{}, fmt.Errorf("%w: sender and receiver are required", ErrInvalidTransaction)
	}
	if strings.TrimSpace(tx.ChainID) == "" {
		return txWire{}, fmt.Errorf("%w: chain id is required", ErrInvalidTransaction)
	}
	if tx.Version == 0 {
		return txWire{}, fmt.Errorf("%w: version must be at least 1", ErrInvalidTransaction)
	}
	return txWire{
		Nonce:    tx.Nonce,
		Value:    v.String(),
		Receiver: tx.Receiver.Bech32(),
		Sender:   tx.Sender.Bech32(),
		GasPrice: tx.GasPrice,
		GasLimit: tx.GasLimit,
		Data:     tx.Data,
		ChainID:  tx.ChainID,
		Version:  tx.Version,
		Options:  tx.Options,
	}, nil
}
