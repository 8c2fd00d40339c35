package address_test

import (
	"errors"
	"testing"

	"walletcore/internal/address"
)

const (
	aliceHex    = "0139472eff6886771a982f3083da5d421f24c29181e63888228dc81ca60d69e1"
	aliceBech32 = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	bobHex      = "8049d639e5a6980d1cd2392abcce41029cda74a1563523a202f09641cc2618f8"
	bobBech32   = "erd1spyavw0956vq68xj8y4tenjpq2wd5a9p2c6j8gsz7ztyrnpxrruqzu66jx"
)

func TestAddress_HexToBech32(t *testing.T) {
	cases := []struct {
		hex, bech string
	}{
		{aliceHex, aliceBech32},
		{bobHex, bobBech32},
	}
	for _, tc := range cases {
		a, err := address.FromHex(tc.hex, "")
		if err != nil {
			t.Fatalf("FromHex(%s): %v", tc.hex, err)
		}
		if got := a.Bech32(); got != tc.bech {
			t.Fatalf("bech32 mismatch: want %s, got %s", tc.bech, got)
		}
	}
}

func TestAddress_Bech32RoundTrip(t *testing.T) {
	a, err := address.FromBech32(aliceBech32, address.DefaultHRP)
	if err != nil {
		t.Fatalf("FromBech32: %v", err)
	}
	if a.Hex() != aliceHex {
		t.Fatalf("hex mismatch: got %s", a.Hex())
	}
	if a.HRP() != "erd" {
		t.Fatalf("hrp mismatch: got %s", a.HRP())
	}
}

func TestAddress_WrongHRP(t *testing.T) {
	_, err := address.FromBech32(aliceBech32, "test")
	if !errors.Is(err, address.ErrWrongHRP) {
		t.Fatalf("want ErrWrongHRP, got %v", err)
	}
}

func TestAddress_CustomHRP(t *testing.T) {
	a, err := address.FromHex(aliceHex, "test")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	back, err := address.FromBech32(a.Bech32(), "test")
	if err != nil {
		t.Fatalf("FromBech32: %v", err)
	}
	if !back.Equal(a) {
		t.Fatal("custom prefix round trip lost the public key")
	}
}

func TestAddress_Parse(t *testing.T) {
	for _, in := range []string{aliceHex, aliceBech32, "  " + aliceBech32 + "\n"} {
		a, err := address.Parse(in, "")
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if a.Hex() != aliceHex {
			t.Fatalf("Parse(%q) = %s", in, a.Hex())
		}
	}
}

func TestAddress_InvalidInputs(t *testing.T) {
	if _, err := address.FromPubKey(make([]byte, 31), ""); !errors.Is(err, address.ErrInvalidAddress) {
		t.Fatalf("31 bytes: want ErrInvalidAddress, got %v", err)
	}
	if _, err := address.FromHex("zz", ""); !errors.Is(err, address.ErrInvalidAddress) {
		t.Fatalf("bad hex: want ErrInvalidAddress, got %v", err)
	}
	if _, err := address.Parse("erd1notanaddress", ""); err == nil {
		t.Fatal("expected error for garbage bech32")
	}
}
