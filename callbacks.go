//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package xcomp

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/xcomp/internal/keepalive"
)

// SurfaceFunc is a lifecycle callback slot. The native runtime invokes it
// with the raw component and window pointers, on a thread of its choosing;
// wrap them with New before use. Callback bodies must be safe to call from
// non-Go-managed threads.
type SurfaceFunc func(component, window unsafe.Pointer)

// Callbacks is the lifecycle callback table for an XComponent. Every slot
// is optional; nil slots are passed to the native runtime as null function
// pointers.
type Callbacks struct {
	// OnSurfaceCreated is invoked when the surface is created.
	OnSurfaceCreated SurfaceFunc
	// OnSurfaceChanged is invoked when the surface changes, including size
	// changes.
	OnSurfaceChanged SurfaceFunc
	// OnSurfaceDestroyed is invoked when the surface is destroyed.
	OnSurfaceDestroyed SurfaceFunc
	// DispatchTouchEvent is invoked when a touch event arrives; fetch the
	// event with (*XComponent).TouchEvent from inside it.
	DispatchTouchEvent SurfaceFunc
}

// rawCallbacks mirrors OH_NativeXComponent_Callback: four C function
// pointers, in declaration order.
type rawCallbacks struct {
	onSurfaceCreated   uintptr
	onSurfaceChanged   uintptr
	onSurfaceDestroyed uintptr
	dispatchTouchEvent uintptr
}

// escapeTable builds the native table for cbs and escapes it to process
// lifetime. OH_NativeXComponent_RegisterCallback is documented to consume
// the table synchronously, but the runtime retains the address and
// dereferences it later from its own threads, so the table must outlive the
// registering call unconditionally. There is no unregister call in the NDK,
// hence no way to ever reclaim it.
func escapeTable(cbs Callbacks) *rawCallbacks {
	raw := &rawCallbacks{
		onSurfaceCreated:   trampoline(cbs.OnSurfaceCreated),
		onSurfaceChanged:   trampoline(cbs.OnSurfaceChanged),
		onSurfaceDestroyed: trampoline(cbs.OnSurfaceDestroyed),
		dispatchTouchEvent: trampoline(cbs.DispatchTouchEvent),
	}
	keepalive.Escape(raw)
	return raw
}

// trampoline wraps a Go callback slot as a C function pointer. purego
// callbacks are themselves permanent, which matches the table's lifetime.
func trampoline(fn SurfaceFunc) uintptr {
	if fn == nil {
		return 0
	}
	return purego.NewCallback(func(component, window unsafe.Pointer) {
		fn(component, window)
	})
}

// RegisterCallbacks hands the callback table to the native runtime for this
// XComponent. The table is copied into a process-lifetime allocation before
// the native call; that allocation is deliberately never freed (see
// escapeTable), so registration is irreversible and each attempt costs one
// permanent table.
//
// A non-zero native status comes back as an *Error and leaves nothing
// registered; the caller may retry, with this or another table. The core
// imposes no one-shot guard beyond what the native ABI itself enforces.
func (x *XComponent) RegisterCallbacks(cbs Callbacks) error {
	if err := ensureLoaded(); err != nil {
		return err
	}
	raw := escapeTable(cbs)
	res := nativeRegister(x.component, unsafe.Pointer(raw))
	if res != 0 {
		logf(LevelError, "OH_NativeXComponent_RegisterCallback failed with status %d", res)
		return NewError(res, "OH_NativeXComponent_RegisterCallback")
	}
	return nil
}
