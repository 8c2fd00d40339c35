package memzero_test

import (
	"bytes"
	"testing"

	"walletcore/internal/util/memzero"
)

func TestZero(t *testing.T) {
	a := []byte{1, 2, 3}
	b := bytes.Repeat([]byte{0xff}, 64)
	memzero.Zero(a, nil, b)
	if !bytes.Equal(a, make([]byte, 3)) || !bytes.Equal(b, make([]byte, 64)) {
		t.Fatalf("buffers not cleared: %v %v", a, b)
	}
}
