//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package xcomp

import (
	"unsafe"
)

// XComponentProperty is the name ArkUI uses for the native XComponent
// object on a module's exports object.
const XComponentProperty = "__NATIVE_XCOMPONENT_OBJ"

// RegisterFromExports registers cbs for the XComponent reachable through a
// NAPI module's exports object. env and exports are the raw napi_env and
// napi_value the runtime passes to the module Init hook.
//
// The steps run in order and stop at the first failure, each reported as a
// *RegisterError tagged with its step: look up the XComponentProperty
// property on exports, unwrap it into the raw native component pointer,
// then register the table exactly as RegisterCallbacks does, with the same
// process-lifetime table escape.
func RegisterFromExports(env, exports unsafe.Pointer, cbs Callbacks) error {
	if err := ensureLoaded(); err != nil {
		return err
	}
	if err := ensureNapiLoaded(); err != nil {
		return err
	}

	var obj unsafe.Pointer
	if res := nativeGetNamed(env, exports, XComponentProperty, &obj); res != 0 || obj == nil {
		// NAPI reports an absent property as undefined with status 0, so a
		// nil result is the same miss as a lookup failure.
		logf(LevelError, "exports object has no %s property (status %d)", XComponentProperty, res)
		return &RegisterError{
			Step:   StepPropertyLookup,
			Status: res,
			Msg:    "exports object has no " + XComponentProperty + " property",
		}
	}

	var component unsafe.Pointer
	if res := nativeUnwrap(env, obj, &component); res != 0 {
		logf(LevelError, "napi_unwrap failed with status %d", res)
		return &RegisterError{
			Step:   StepUnwrap,
			Status: res,
			Msg:    "napi_unwrap of " + XComponentProperty + " did not yield a native XComponent",
		}
	}

	raw := escapeTable(cbs)
	if res := nativeRegister(component, unsafe.Pointer(raw)); res != 0 {
		logf(LevelError, "OH_NativeXComponent_RegisterCallback failed with status %d", res)
		return &RegisterError{
			Step:   StepRegister,
			Status: res,
			Msg:    "OH_NativeXComponent_RegisterCallback rejected the callback table",
		}
	}
	return nil
}
