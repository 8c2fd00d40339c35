package types_test

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"walletcore/internal/address"
	"walletcore/internal/crypto"
	"walletcore/internal/domain/types"
)

const (
	aliceBech32 = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	bobBech32   = "erd1spyavw0956vq68xj8y4tenjpq2wd5a9p2c6j8gsz7ztyrnpxrruqzu66jx"
)

func mustAddr(t *testing.T, s string) address.Address {
	t.Helper()
	a, err := address.FromBech32(s, "erd")
	if err != nil {
		t.Fatalf("address %s: %v", s, err)
	}
	return a
}

func sampleTx(t *testing.T) *types.Transaction {
	return &types.Transaction{
		Nonce:    7,
		Value:    "1000000000000000000",
		Receiver: mustAddr(t, bobBech32),
		Sender:   mustAddr(t, aliceBech32),
		GasPrice: 1000000000,
		GasLimit: 50000,
		Data:     []byte("hello"),
		ChainID:  "D",
		Version:  1,
	}
}

func TestTransaction_SerializeForSigning(t *testing.T) {
	got, err := sampleTx(t).SerializeForSigning()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := `{"nonce":7,"value":"1000000000000000000","receiver":"` + bobBech32 +
		`","sender":"` + aliceBech32 +
		`","gasPrice":1000000000,"gasLimit":50000,"data":"aGVsbG8=","chainID":"D","version":1}`
	if string(got) != want {
		t.Fatalf("serialized\n got %s\nwant %s", got, want)
	}
}

func TestTransaction_ChainIDNotHTMLEscaped(t *testing.T) {
	tx := sampleTx(t)
	tx.ChainID = "a<b>&c"

	got, err := tx.SerializeForSigning()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.Contains(string(got), `"chainID":"a<b>&c"`) {
		t.Fatalf("chain id escaped: %s", got)
	}
	if strings.HasSuffix(string(got), "\n") {
		t.Fatal("trailing newline in signing bytes")
	}

	broadcast, err := tx.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(broadcast), `"chainID":"a<b>&c"`) {
		t.Fatalf("broadcast form escaped: %s", broadcast)
	}
}

func TestTransaction_OptionalFields(t *testing.T) {
	tx := sampleTx(t)
	tx.Data = nil
	tx.Value = ""
	tx.Options = 1
	got, err := tx.SerializeForSigning()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := `{"nonce":7,"value":"0","receiver":"` + bobBech32 +
		`","sender":"` + aliceBech32 +
		`","gasPrice":1000000000,"gasLimit":50000,"chainID":"D","version":1,"options":1}`
	if string(got) != want {
		t.Fatalf("serialized\n got %s\nwant %s", got, want)
	}
}

func TestTransaction_Invalid(t *testing.T) {
	cases := map[string]func(tx *types.Transaction){
		"negative value": func(tx *types.Transaction) { tx.Value = "-1" },
		"decimal value":  func(tx *types.Transaction) { tx.Value = "1.5" },
		"no sender":      func(tx *types.Transaction) { tx.Sender = address.Address{} },
		"no receiver":    func(tx *types.Transaction) { tx.Receiver = address.Address{} },
		"no chain":       func(tx *types.Transaction) { tx.ChainID = " " },
		"no version":     func(tx *types.Transaction) { tx.Version = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tx := sampleTx(t)
			mutate(tx)
			if _, err := tx.SerializeForSigning(); !errors.Is(err, types.ErrInvalidTransaction) {
				t.Fatalf("err = %v, want ErrInvalidTransaction", err)
			}
		})
	}
}

func TestTransaction_MarshalIncludesSignature(t *testing.T) {
	tx := sampleTx(t)
	if _, ok := tx.Signature(); ok {
		t.Fatal("fresh transaction reports a signature")
	}

	var sig crypto.Signature
	sig[0] = 0xab
	if err := tx.ApplySignature(sig); err != nil {
		t.Fatalf("apply: %v", err)
	}
	b, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["signature"] != sig.Hex() {
		t.Fatalf("signature field = %v", out["signature"])
	}

	unsigned, err := tx.SerializeForSigning()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	var signingForm map[string]any
	_ = json.Unmarshal(unsigned, &signingForm)
	if _, ok := signingForm["signature"]; ok {
		t.Fatal("signing form contains the signature")
	}
}

func TestSignableMessage_Hash(t *testing.T) {
	cases := []struct {
		msg  string
		want string
	}{
		{"hello", "999194090cc45ebbb30c1d41c27ba10e4d7335d052b17fbc334a2a21736c535a"},
		{"", "e0bf747d0cbde73d5ba53a2982680267a49cb2acc7edcd799de07b7afa31930a"},
	}
	for _, tc := range cases {
		got, err := types.NewSignableMessage([]byte(tc.msg)).SerializeForSigning()
		if err != nil {
			t.Fatalf("serialize %q: %v", tc.msg, err)
		}
		if hex.EncodeToString(got) != tc.want {
			t.Fatalf("hash(%q) = %x, want %s", tc.msg, got, tc.want)
		}
	}
}

func TestSignableMessage_CopiesInput(t *testing.T) {
	buf := []byte("hello")
	m := types.NewSignableMessage(buf)
	buf[0] = 'j'
	if string(m.Message) != "hello" {
		t.Fatalf("message aliased caller buffer: %q", m.Message)
	}
}
