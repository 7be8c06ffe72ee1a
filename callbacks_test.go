//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package xcomp

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/obinnaokechukwu/xcomp/internal/keepalive"
)

// stubLoaded makes the registration paths skip real library loading.
func stubLoaded(t *testing.T) {
	t.Helper()
	prevLoad, prevNapi := ensureLoaded, ensureNapiLoaded
	ensureLoaded = func() error { return nil }
	ensureNapiLoaded = func() error { return nil }
	t.Cleanup(func() {
		ensureLoaded = prevLoad
		ensureNapiLoaded = prevNapi
	})
}

func TestRegisterCallbacks(t *testing.T) {
	stubLoaded(t)
	xc := mustHandle(t)

	var recorded unsafe.Pointer
	prev := nativeRegister
	nativeRegister = func(component, callback unsafe.Pointer) int32 {
		recorded = callback
		return 0
	}
	t.Cleanup(func() { nativeRegister = prev })

	before := keepalive.Count()
	err := xc.RegisterCallbacks(Callbacks{
		OnSurfaceCreated:   func(component, window unsafe.Pointer) {},
		DispatchTouchEvent: func(component, window unsafe.Pointer) {},
	})
	if err != nil {
		t.Fatalf("RegisterCallbacks failed: %v", err)
	}
	if recorded == nil {
		t.Fatal("native registration never received a table address")
	}
	if keepalive.Count() != before+1 {
		t.Errorf("registration should escape exactly one table, count went %d -> %d", before, keepalive.Count())
	}

	// The runtime dereferences the table address after the registering call
	// returns, possibly much later. Collect aggressively and confirm the
	// recorded address still reads back the same table.
	runtime.GC()
	runtime.GC()

	table := (*rawCallbacks)(recorded)
	if table.onSurfaceCreated == 0 || table.dispatchTouchEvent == 0 {
		t.Error("populated slots must be non-null function pointers")
	}
	if table.onSurfaceChanged != 0 || table.onSurfaceDestroyed != 0 {
		t.Error("nil slots must be null function pointers")
	}
}

func TestRegisterCallbacksFailure(t *testing.T) {
	stubLoaded(t)
	xc := mustHandle(t)

	prev := nativeRegister
	nativeRegister = func(component, callback unsafe.Pointer) int32 {
		return 1003
	}
	t.Cleanup(func() { nativeRegister = prev })

	err := xc.RegisterCallbacks(Callbacks{})
	if err == nil {
		t.Fatal("RegisterCallbacks should fail on non-zero status")
	}
	if Code(err) != 1003 {
		t.Errorf("Code = %d, want 1003", Code(err))
	}
}

func TestRegisterCallbacksRetries(t *testing.T) {
	stubLoaded(t)
	xc := mustHandle(t)

	var calls int
	prev := nativeRegister
	nativeRegister = func(component, callback unsafe.Pointer) int32 {
		calls++
		if calls == 1 {
			return 7
		}
		return 0
	}
	t.Cleanup(func() { nativeRegister = prev })

	if err := xc.RegisterCallbacks(Callbacks{}); err == nil {
		t.Fatal("first registration should fail")
	}
	if err := xc.RegisterCallbacks(Callbacks{}); err != nil {
		t.Fatalf("retry after failure should reach the native call: %v", err)
	}
	if calls != 2 {
		t.Errorf("native registration called %d times, want 2", calls)
	}
}

func TestRegisterCallbacksNotLoaded(t *testing.T) {
	xc := mustHandle(t)

	prevLoad := ensureLoaded
	ensureLoaded = func() error { return ErrNotLoaded }
	t.Cleanup(func() { ensureLoaded = prevLoad })

	before := keepalive.Count()
	if err := xc.RegisterCallbacks(Callbacks{}); err != ErrNotLoaded {
		t.Fatalf("err = %v, want ErrNotLoaded", err)
	}
	if keepalive.Count() != before {
		t.Error("no table should escape when loading fails")
	}
}

func TestTrampolineSlots(t *testing.T) {
	// purego callbacks are only invocable through a foreign call, so the
	// unit boundary here is pointer production: populated slots get their
	// own non-null C function pointers.
	first := trampoline(func(component, window unsafe.Pointer) {})
	second := trampoline(func(component, window unsafe.Pointer) {})
	if first == 0 || second == 0 {
		t.Fatal("trampoline returned null function pointer for populated slot")
	}
	if first == second {
		t.Error("each slot should get its own callback pointer")
	}
}

func TestTrampolineNilSlot(t *testing.T) {
	if ptr := trampoline(nil); ptr != 0 {
		t.Errorf("nil slot should map to null function pointer, got %#x", ptr)
	}
}
