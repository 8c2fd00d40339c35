package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"walletcore/internal/domain"
	"walletcore/internal/store"
)

func TestWalletStore_SaveLoadList(t *testing.T) {
	home := t.TempDir()
	var wallets domain.WalletStore = store.NewWalletFileStore(home)

	file, err := fastCodec().EncryptSecretKey(alice(t), "pw", "erd")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	path, err := wallets.SaveKeystore(aliceBech32, file)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if want := filepath.Join(home, "wallets", aliceBech32+".json"); path != want {
		t.Fatalf("path = %s, want %s", path, want)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v", info.Mode().Perm())
	}

	got, err := wallets.LoadKeystore(aliceBech32)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, file) {
		t.Fatalf("loaded keystore differs")
	}
	if _, err := store.DecryptSecretKey(got, "pw"); err != nil {
		t.Fatalf("decrypt loaded: %v", err)
	}

	if _, err := wallets.SaveKeystore("mnemonic", file); err != nil {
		t.Fatalf("save second: %v", err)
	}
	names, err := wallets.ListKeystores()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(names, []string{aliceBech32, "mnemonic"}) {
		t.Fatalf("names = %v", names)
	}
}

func TestWalletStore_Missing(t *testing.T) {
	wallets := store.NewWalletFileStore(t.TempDir())
	if _, err := wallets.LoadKeystore("nobody"); !errors.Is(err, store.ErrKeystoreNotFound) {
		t.Fatalf("err = %v", err)
	}
	names, err := wallets.ListKeystores()
	if err != nil || len(names) != 0 {
		t.Fatalf("list on empty home = %v, %v", names, err)
	}
}

func TestWalletStore_RejectsPathNames(t *testing.T) {
	wallets := store.NewWalletFileStore(t.TempDir())
	for _, name := range []string{"", "../escape", "a/b", ".hidden"} {
		if _, err := wallets.SaveKeystore(name, domain.KeystoreFile{}); err == nil {
			t.Fatalf("name %q accepted", name)
		}
	}
}

func TestAccountStore_SaveLoadList(t *testing.T) {
	var accounts domain.AccountStore = store.NewAccountFileStore(t.TempDir())

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	bob := domain.Account{Label: "bob", Address: "erd1b", Index: 1, Source: "mnemonic", CreatedAt: now}
	alice := domain.Account{Label: "alice", Address: aliceBech32, Index: 0, Source: "mnemonic", CreatedAt: now}
	for _, a := range []domain.Account{bob, alice} {
		if err := accounts.SaveAccount(a); err != nil {
			t.Fatalf("save %s: %v", a.Label, err)
		}
	}

	got, ok, err := accounts.LoadAccount("alice")
	if err != nil || !ok {
		t.Fatalf("load alice = %v, %v", ok, err)
	}
	if !reflect.DeepEqual(got, alice) {
		t.Fatalf("alice = %+v", got)
	}
	if _, ok, err := accounts.LoadAccount("carol"); err != nil || ok {
		t.Fatalf("load missing = %v, %v", ok, err)
	}

	list, err := accounts.ListAccounts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Label != "alice" || list[1].Label != "bob" {
		t.Fatalf("list = %+v", list)
	}

	bob.Index = 7
	if err := accounts.SaveAccount(bob); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = accounts.LoadAccount("bob")
	if got.Index != 7 {
		t.Fatalf("overwrite lost: %+v", got)
	}
}
