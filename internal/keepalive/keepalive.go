// Package keepalive escapes allocations to process lifetime.
//
// The native XComponent runtime retains the callback table's address after
// OH_NativeXComponent_RegisterCallback returns and dereferences it later,
// from its own threads. Any table handed to it must therefore stay valid,
// at a stable address, for the rest of the process. Escape makes that
// permanent: the value is pinned against the garbage collector and held in
// a package-level registry that is never drained. There is deliberately no
// way to release an escaped value.
package keepalive

import (
	"runtime"
	"sync"
)

var (
	mu      sync.Mutex
	escaped []any
	pinner  runtime.Pinner
)

// Escape pins v and keeps it reachable for the remaining process lifetime.
// v must be a pointer. The pointee's address can be passed to native code
// that uses it beyond the current call.
//
// Thread-safe.
func Escape(v any) {
	mu.Lock()
	defer mu.Unlock()
	pinner.Pin(v)
	escaped = append(escaped, v)
}

// Count returns the number of escaped values. Useful in tests to verify
// that registration escaped a table and never reclaimed it.
//
// Thread-safe.
func Count() int {
	mu.Lock()
	defer mu.Unlock()
	return len(escaped)
}
