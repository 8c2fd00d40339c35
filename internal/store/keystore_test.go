package store_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"walletcore/internal/crypto"
	"walletcore/internal/domain"
	"walletcore/internal/mnemonic"
	"walletcore/internal/store"
)

const (
	fixtureMnemonic = "moral volcano peasant pass circle pen over picture flat shop clap goat never lyrics gather prepare woman film husband gravity behind test tiger improve"
	aliceSecretHex  = "413f42575f7f26fad3317a778771212fdb80245850981e48b58a4f25e344e8f9"
	aliceBech32     = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
)

// fastCodec keeps scrypt cheap in tests.
func fastCodec() *store.KeystoreCodec {
	return store.NewKeystoreCodec(store.ScryptParams{N: 16, R: 8, P: 1})
}

func alice(t *testing.T) crypto.SecretKey {
	t.Helper()
	sk, err := crypto.SecretKeyFromHex(aliceSecretHex)
	if err != nil {
		t.Fatalf("secret: %v", err)
	}
	return sk
}

func TestKeystore_SecretKeyRoundTrip(t *testing.T) {
	sk := alice(t)
	file, err := fastCodec().EncryptSecretKey(sk, "password", "erd")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if file.Version != store.KeystoreVersion || file.Kind != domain.KeystoreKindSecretKey {
		t.Fatalf("header = v%d %q", file.Version, file.Kind)
	}
	if file.Bech32 != aliceBech32 {
		t.Fatalf("bech32 = %s", file.Bech32)
	}
	if file.Address != sk.PublicKey().Hex() {
		t.Fatalf("address = %s", file.Address)
	}
	if file.Crypto.Cipher != "aes-128-ctr" || file.Crypto.KDF != "scrypt" || file.Crypto.KDFParams.DKLen != 32 {
		t.Fatalf("crypto params = %+v", file.Crypto)
	}
	if salt, _ := hex.DecodeString(file.Crypto.KDFParams.Salt); len(salt) != 32 {
		t.Fatalf("salt length = %d", len(salt))
	}
	if iv, _ := hex.DecodeString(file.Crypto.CipherParams.IV); len(iv) != 16 {
		t.Fatalf("iv length = %d", len(iv))
	}
	if ct, _ := hex.DecodeString(file.Crypto.Ciphertext); len(ct) != 64 {
		t.Fatalf("ciphertext length = %d", len(ct))
	}
	if len(file.ID) != 36 {
		t.Fatalf("id = %q", file.ID)
	}

	got, err := store.DecryptSecretKey(file, "password")
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if got.Hex() != aliceSecretHex {
		t.Fatalf("secret mismatch")
	}

	addr, err := store.KeystoreAddress(file, "erd")
	if err != nil || addr.Bech32() != aliceBech32 {
		t.Fatalf("KeystoreAddress = %v, %v", addr, err)
	}
}

func TestKeystore_DefaultParams(t *testing.T) {
	file, err := store.NewKeystoreCodec(store.ScryptParams{}).EncryptSecretKey(alice(t), "pw", "")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	kp := file.Crypto.KDFParams
	if kp.N != 4096 || kp.R != 8 || kp.P != 1 {
		t.Fatalf("kdf params = %+v", kp)
	}
}

func TestKeystore_WrongPassword(t *testing.T) {
	file, err := fastCodec().EncryptSecretKey(alice(t), "correct", "erd")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := store.DecryptSecretKey(file, "wrong"); !errors.Is(err, store.ErrWrongPassword) {
		t.Fatalf("err = %v, want ErrWrongPassword", err)
	}
}

func TestKeystore_TamperedCiphertext(t *testing.T) {
	file, err := fastCodec().EncryptSecretKey(alice(t), "pw", "erd")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	ct, _ := hex.DecodeString(file.Crypto.Ciphertext)
	ct[0] ^= 1
	file.Crypto.Ciphertext = hex.EncodeToString(ct)
	if _, err := store.DecryptSecretKey(file, "pw"); !errors.Is(err, store.ErrWrongPassword) {
		t.Fatalf("err = %v, want ErrWrongPassword", err)
	}
}

func TestKeystore_MnemonicRoundTrip(t *testing.T) {
	m, err := mnemonic.FromString(fixtureMnemonic)
	if err != nil {
		t.Fatalf("mnemonic: %v", err)
	}
	file, err := fastCodec().EncryptMnemonic(m, "pw")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if file.Kind != domain.KeystoreKindMnemonic || file.Address != "" {
		t.Fatalf("mnemonic keystore header = %q %q", file.Kind, file.Address)
	}

	got, err := store.DecryptMnemonic(file, "pw")
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if got.String() != fixtureMnemonic {
		t.Fatalf("phrase mismatch")
	}

	if _, err := store.DecryptSecretKey(file, "pw"); !errors.Is(err, store.ErrInvalidKeystore) {
		t.Fatalf("kind confusion err = %v", err)
	}
}

func TestKeystore_InvalidSchema(t *testing.T) {
	good, err := fastCodec().EncryptSecretKey(alice(t), "pw", "erd")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	cases := map[string]func(f *domain.KeystoreFile){
		"version":       func(f *domain.KeystoreFile) { f.Version = 3 },
		"cipher":        func(f *domain.KeystoreFile) { f.Crypto.Cipher = "aes-256-gcm" },
		"kdf":           func(f *domain.KeystoreFile) { f.Crypto.KDF = "pbkdf2" },
		"dklen":         func(f *domain.KeystoreFile) { f.Crypto.KDFParams.DKLen = 16 },
		"salt":          func(f *domain.KeystoreFile) { f.Crypto.KDFParams.Salt = "zz" },
		"iv":            func(f *domain.KeystoreFile) { f.Crypto.CipherParams.IV = "00" },
		"mac":           func(f *domain.KeystoreFile) { f.Crypto.MAC = "not-hex" },
		"address":       func(f *domain.KeystoreFile) { f.Address = "00" + f.Address[2:] },
		"scrypt n":      func(f *domain.KeystoreFile) { f.Crypto.KDFParams.N = 3 },
		"scrypt n huge": func(f *domain.KeystoreFile) { f.Crypto.KDFParams.N = 1 << 30 },
		"scrypt r huge": func(f *domain.KeystoreFile) { f.Crypto.KDFParams.R = 1 << 20 },
		"scrypt p huge": func(f *domain.KeystoreFile) { f.Crypto.KDFParams.P = 1 << 20 },
		"scrypt r zero": func(f *domain.KeystoreFile) { f.Crypto.KDFParams.R = 0 },
		"scrypt memory": func(f *domain.KeystoreFile) { f.Crypto.KDFParams.N, f.Crypto.KDFParams.R = 1<<20, 16 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := good
			mutate(&f)
			if _, err := store.DecryptSecretKey(f, "pw"); !errors.Is(err, store.ErrInvalidKeystore) {
				t.Fatalf("err = %v, want ErrInvalidKeystore", err)
			}
		})
	}
}

func TestKeystore_FreshSaltAndID(t *testing.T) {
	c := fastCodec()
	a, err := c.EncryptSecretKey(alice(t), "pw", "erd")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	b, err := c.EncryptSecretKey(alice(t), "pw", "erd")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if a.ID == b.ID || a.Crypto.KDFParams.Salt == b.Crypto.KDFParams.Salt || a.Crypto.Ciphertext == b.Crypto.Ciphertext {
		t.Fatal("two seals share randomness")
	}
}
