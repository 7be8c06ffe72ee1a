//go:build (darwin || freebsd || linux) && (amd64 || arm64)

// Package bindings handles loading the OpenHarmony ACE system libraries and
// registering function bindings using purego.
package bindings

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/xcomp/internal/platform"
)

// ErrNotLoaded is returned when native functions are needed before Load().
var ErrNotLoaded = errors.New("xcomp: ACE libraries not loaded; call xcomp.Init() first")

// ErrLibraryNotFound is returned when a required system library cannot be found.
var ErrLibraryNotFound = errors.New("xcomp: library not found")

// Library handles
var (
	libAceNDK  uintptr
	libAceNapi uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error

	napiLoaded   bool
	napiLoadOnce sync.Once
	napiLoadErr  error
)

// Function bindings - registered by Load / LoadNAPI.
var (
	getXComponentSize func(component, window unsafe.Pointer, width, height *uint64) int32
	getTouchEvent     func(component, window, event unsafe.Pointer) int32
	registerCallback  func(component, callback unsafe.Pointer) int32
	getXComponentID   func(component unsafe.Pointer, id *byte, size *uint64) int32

	napiGetNamedProperty func(env, object unsafe.Pointer, name string, result *unsafe.Pointer) int32
	napiUnwrap           func(env, jsObject unsafe.Pointer, result *unsafe.Pointer) int32
)

// IsLoaded returns true if the XComponent library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// IsNAPILoaded returns true if the NAPI library has been successfully loaded.
func IsNAPILoaded() bool {
	return napiLoaded
}

// Load loads libace_ndk.z.so and registers the XComponent function bindings.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error
	libAceNDK, err = loadLibrary("libace_ndk.z.so")
	if err != nil {
		if !platform.IsOpenHarmony() {
			return fmt.Errorf("loading libace_ndk: %w (host does not look like an OpenHarmony device)", err)
		}
		return fmt.Errorf("loading libace_ndk: %w", err)
	}

	purego.RegisterLibFunc(&getXComponentSize, libAceNDK, "OH_NativeXComponent_GetXComponentSize")
	purego.RegisterLibFunc(&getTouchEvent, libAceNDK, "OH_NativeXComponent_GetTouchEvent")
	purego.RegisterLibFunc(&registerCallback, libAceNDK, "OH_NativeXComponent_RegisterCallback")
	purego.RegisterLibFunc(&getXComponentID, libAceNDK, "OH_NativeXComponent_GetXComponentId")

	return nil
}

// LoadNAPI loads libace_napi.z.so and registers the NAPI bindings used by
// the exports-object registration path. Programs that never register through
// an exports object never need it, so it is loaded separately from Load.
// Safe to call multiple times.
func LoadNAPI() error {
	napiLoadOnce.Do(func() {
		napiLoadErr = doLoadNAPI()
		if napiLoadErr == nil {
			napiLoaded = true
		}
	})
	return napiLoadErr
}

func doLoadNAPI() error {
	var err error
	libAceNapi, err = loadLibrary("libace_napi.z.so")
	if err != nil {
		return fmt.Errorf("loading libace_napi: %w", err)
	}

	purego.RegisterLibFunc(&napiGetNamedProperty, libAceNapi, "napi_get_named_property")
	purego.RegisterLibFunc(&napiUnwrap, libAceNapi, "napi_unwrap")

	return nil
}

// loadLibrary attempts to open name from the platform search paths, falling
// back to the bare name so the dynamic linker can resolve it.
func loadLibrary(name string) (uintptr, error) {
	for _, dir := range platform.LibrarySearchPaths() {
		lib, err := tryOpen(filepath.Join(dir, name))
		if err == nil {
			return lib, nil
		}
	}
	lib, err := tryOpen(name)
	if err == nil {
		return lib, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
// RTLD_GLOBAL matters: libace_napi resolves symbols against libace_ndk.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// The wrappers below panic with ErrNotLoaded when called before a
// successful Load; a native pointer can only have come from a loaded
// runtime, so reaching them unloaded is caller misuse.

// GetXComponentSize calls OH_NativeXComponent_GetXComponentSize.
func GetXComponentSize(component, window unsafe.Pointer, width, height *uint64) int32 {
	if getXComponentSize == nil {
		panic(ErrNotLoaded)
	}
	return getXComponentSize(component, window, width, height)
}

// GetTouchEvent calls OH_NativeXComponent_GetTouchEvent. event must point at
// storage with the native touch event layout.
func GetTouchEvent(component, window, event unsafe.Pointer) int32 {
	if getTouchEvent == nil {
		panic(ErrNotLoaded)
	}
	return getTouchEvent(component, window, event)
}

// RegisterCallback calls OH_NativeXComponent_RegisterCallback. callback must
// point at a table whose address stays valid for the process lifetime.
func RegisterCallback(component, callback unsafe.Pointer) int32 {
	if registerCallback == nil {
		panic(ErrNotLoaded)
	}
	return registerCallback(component, callback)
}

// GetXComponentID calls OH_NativeXComponent_GetXComponentId. id must point
// at a buffer of at least *size bytes; on success *size holds the id length.
func GetXComponentID(component unsafe.Pointer, id *byte, size *uint64) int32 {
	if getXComponentID == nil {
		panic(ErrNotLoaded)
	}
	return getXComponentID(component, id, size)
}

// GetNamedProperty calls napi_get_named_property.
func GetNamedProperty(env, object unsafe.Pointer, name string, result *unsafe.Pointer) int32 {
	if napiGetNamedProperty == nil {
		panic(ErrNotLoaded)
	}
	return napiGetNamedProperty(env, object, name, result)
}

// Unwrap calls napi_unwrap, recovering the native pointer wrapped inside a
// JS object.
func Unwrap(env, jsObject unsafe.Pointer, result *unsafe.Pointer) int32 {
	if napiUnwrap == nil {
		panic(ErrNotLoaded)
	}
	return napiUnwrap(env, jsObject, result)
}
