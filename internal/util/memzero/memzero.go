// Package memzero clears secret buffers once they are no longer needed.
package memzero

import "runtime"

// Zero overwrites every buffer with zeros.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
		runtime.KeepAlive(b)
	}
}
