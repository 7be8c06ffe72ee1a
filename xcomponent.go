//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package xcomp

import (
	"fmt"
	"unsafe"

	"github.com/obinnaokechukwu/xcomp/internal/bindings"
)

// Native entry points, held as function variables so tests can substitute
// fakes at the ABI boundary.
var (
	nativeGetSize    = bindings.GetXComponentSize
	nativeGetTouch   = bindings.GetTouchEvent
	nativeGetID      = bindings.GetXComponentID
	nativeRegister   = bindings.RegisterCallback
	nativeGetNamed   = bindings.GetNamedProperty
	nativeUnwrap     = bindings.Unwrap
	ensureLoaded     = bindings.Load
	ensureNapiLoaded = bindings.LoadNAPI
)

// Size is the pixel size of an XComponent surface.
type Size struct {
	Width  uint64
	Height uint64
}

// XComponent is a validated, non-owning view over the two raw pointers the
// native runtime passes to lifecycle callbacks. Both pointers are non-nil
// for the life of the value; the native runtime owns the pointees and only
// guarantees them for the duration of the callback invocation that supplied
// them, so do not retain an XComponent past that call.
type XComponent struct {
	component unsafe.Pointer
	window    unsafe.Pointer
}

// New validates the raw component and window pointers and wraps them.
// Returns (nil, false) if either pointer is nil; a nil pointer is the only
// failure mode and the caller already holds both inputs, so there is no
// error detail to add. Every other operation requires a handle from New,
// which keeps nil checks out of the call paths.
func New(component, window unsafe.Pointer) (*XComponent, bool) {
	if component == nil || window == nil {
		return nil, false
	}
	return &XComponent{component: component, window: window}, true
}

// Size returns the current pixel size of the surface.
//
// The platform documents OH_NativeXComponent_GetXComponentSize as succeeding
// for any live component/window pair, and there is no meaningful partial
// size, so a non-zero status here is an invariant violation and panics
// rather than returning undefined data.
func (x *XComponent) Size() Size {
	var width, height uint64
	res := nativeGetSize(x.component, x.window, &width, &height)
	if res != 0 {
		panic(fmt.Sprintf("xcomp: OH_NativeXComponent_GetXComponentSize failed with status %d", res))
	}
	return Size{Width: width, Height: height}
}

// TouchEvent fetches the pending touch event for the surface.
//
// The out-record is written in place by the native side and is only
// returned once the call reports success; on a non-zero status the record
// is never surfaced and the raw status code comes back as an *Error.
// Repeated calls are independent; nothing mutates the handle.
func (x *XComponent) TouchEvent() (TouchEvent, error) {
	var event TouchEvent
	res := nativeGetTouch(x.component, x.window, unsafe.Pointer(&event))
	if res != 0 {
		logf(LevelError, "OH_NativeXComponent_GetTouchEvent failed with status %d", res)
		return TouchEvent{}, NewError(res, "OH_NativeXComponent_GetTouchEvent")
	}
	return event, nil
}

// idBufLen is OH_XCOMPONENT_ID_LEN_MAX plus the NUL terminator.
const idBufLen = 128 + 1

// ID returns the id string the XComponent was declared with on the ArkUI
// side. A non-zero status comes back as an *Error.
func (x *XComponent) ID() (string, error) {
	var buf [idBufLen]byte
	size := uint64(len(buf) - 1)
	res := nativeGetID(x.component, &buf[0], &size)
	if res != 0 {
		logf(LevelError, "OH_NativeXComponent_GetXComponentId failed with status %d", res)
		return "", NewError(res, "OH_NativeXComponent_GetXComponentId")
	}
	if size > uint64(len(buf)) {
		size = uint64(len(buf))
	}
	return string(buf[:size]), nil
}
