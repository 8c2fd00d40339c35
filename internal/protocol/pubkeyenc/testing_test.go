package pubkeyenc_test

import (
	"crypto/sha256"
	"encoding/binary"
)

// counterReader is a deterministic byte stream: SHA-256(seed || counter)
// blocks concatenated. Tests inject it instead of crypto/rand.
type counterReader struct {
	seed    []byte
	counter uint64
	buf     []byte
}

func newCounterReader(seed string) *counterReader {
	return &counterReader{seed: []byte(seed)}
}

func (r *counterReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			block := make([]byte, 0, len(r.seed)+8)
			block = append(block, r.seed...)
			block = binary.BigEndian.AppendUint64(block, r.counter)
			sum := sha256.Sum256(block)
			r.buf = sum[:]
			r.counter++
		}
		c := copy(p[n:], r.buf)
		r.buf = r.buf[c:]
		n += c
	}
	return n, nil
}
