package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/crypto/curve25519"

	"walletcore/internal/crypto"
)

func TestConvert_SecretAndPublicAgree(t *testing.T) {
	for i := 0; i < 8; i++ {
		kp, err := crypto.GenerateKeyPair(nil)
		if err != nil {
			t.Fatal(err)
		}
		xPriv := crypto.ConvertSecretKey(kp.Secret)
		xPub, err := crypto.ConvertPublicKey(kp.Public)
		if err != nil {
			t.Fatalf("ConvertPublicKey: %v", err)
		}
		derived, err := curve25519.X25519(xPriv[:], curve25519.Basepoint)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(derived, xPub[:]) {
			t.Fatalf("x25519(convert(secret)) != convert(public)")
		}
	}
}

func TestConvert_SharedSecretSymmetric(t *testing.T) {
	a, _ := crypto.GenerateKeyPair(nil)
	b, _ := crypto.GenerateKeyPair(nil)

	aPriv, bPriv := crypto.ConvertSecretKey(a.Secret), crypto.ConvertSecretKey(b.Secret)
	aPub, _ := crypto.ConvertPublicKey(a.Public)
	bPub, _ := crypto.ConvertPublicKey(b.Public)

	ab, err := curve25519.X25519(aPriv[:], bPub[:])
	if err != nil {
		t.Fatal(err)
	}
	ba, err := curve25519.X25519(bPriv[:], aPub[:])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ab, ba) {
		t.Fatal("shared secrets differ")
	}
}

func TestConvertPublicKey_RejectsOffCurve(t *testing.T) {
	// Roughly half of all y-coordinates have no matching x; scan until one
	// is rejected.
	failures := 0
	for i := 0; i < 256; i++ {
		var pub crypto.PublicKey
		pub[0] = byte(i)
		pub[1] = 0x5a
		if _, err := crypto.ConvertPublicKey(pub); err != nil {
			if !errors.Is(err, crypto.ErrCurveConversionFailed) {
				t.Fatalf("want ErrCurveConversionFailed, got %v", err)
			}
			failures++
		}
	}
	if failures == 0 {
		t.Fatal("no off-curve encoding was rejected")
	}
}

func TestConvertSecretKey_Clamped(t *testing.T) {
	kp, _ := crypto.GenerateKeyPair(nil)
	x := crypto.ConvertSecretKey(kp.Secret)
	if x[0]&7 != 0 || x[31]&128 != 0 || x[31]&64 == 0 {
		t.Fatalf("scalar not clamped: %x", x)
	}
}
