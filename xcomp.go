//go:build (darwin || freebsd || linux) && (amd64 || arm64)

// Package xcomp provides safe bindings to the OpenHarmony OH_NativeXComponent
// surface without CGO, using purego.
//
// An XComponent is handed to native code as two raw pointers inside ArkUI
// lifecycle callbacks. This package wraps that surface in a validated handle
// with three checked operations: querying the surface size, fetching the
// pending touch event, and registering the lifecycle callback table with
// the native runtime.
//
//	func onSurfaceCreated(component, window unsafe.Pointer) {
//		xc, ok := xcomp.New(component, window)
//		if !ok {
//			return
//		}
//		size := xc.Size()
//		// render into the surface ...
//	}
//
// Handles are non-owning views. The native runtime owns both pointers and
// only guarantees them for the duration of the callback invocation that
// supplied them, so a handle must not be stored past that call.
package xcomp

import (
	"github.com/obinnaokechukwu/xcomp/internal/bindings"
)

// Init loads the native XComponent library. This is called automatically by
// the registration entry points, but can be called explicitly to check for
// errors. It is safe to call multiple times.
func Init() error {
	return bindings.Load()
}

// IsLoaded returns true if the native XComponent library has been
// successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}
