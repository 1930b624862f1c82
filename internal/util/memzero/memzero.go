// Package memzero wipes secret material held in byte slices.
package memzero

import "runtime"

// Bytes overwrites b with zeros. Callers must not use b afterwards.
func Bytes(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
