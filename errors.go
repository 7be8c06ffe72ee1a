//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package xcomp

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/xcomp/internal/bindings"
)

// ErrNotLoaded indicates the native XComponent library is not loaded.
var ErrNotLoaded = bindings.ErrNotLoaded

// ErrLibraryNotFound indicates a required system library cannot be found.
var ErrLibraryNotFound = bindings.ErrLibraryNotFound

// Error is a failure reported by a native XComponent call.
// It carries the raw platform status code unchanged; zero never appears here.
type Error struct {
	Code int32  // Raw status code from the native call
	Op   string // Native entry point that failed
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("xcomp: %s failed with status %d", e.Op, e.Code)
}

// NewError creates an Error from a native status code.
// Returns nil if code is 0.
func NewError(code int32, op string) error {
	if code == 0 {
		return nil
	}
	return &Error{Code: code, Op: op}
}

// Code returns the native status code from an error, or 0 if err does not
// carry one.
func Code(err error) int32 {
	var xcErr *Error
	if errors.As(err, &xcErr) {
		return xcErr.Code
	}
	var regErr *RegisterError
	if errors.As(err, &regErr) {
		return regErr.Status
	}
	return 0
}

// RegisterStep identifies the stage of exports-object registration that failed.
type RegisterStep int

const (
	// StepPropertyLookup failed to find the native XComponent property on
	// the exports object.
	StepPropertyLookup RegisterStep = iota
	// StepUnwrap failed to unwrap the property's JS object into the raw
	// native component pointer.
	StepUnwrap
	// StepRegister is the native OH_NativeXComponent_RegisterCallback call
	// itself failing.
	StepRegister
)

// String returns the step name.
func (s RegisterStep) String() string {
	switch s {
	case StepPropertyLookup:
		return "property lookup"
	case StepUnwrap:
		return "unwrap"
	case StepRegister:
		return "register callback"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// RegisterError is a failure from RegisterFromExports. Step says which stage
// failed; Status carries the raw NAPI or XComponent status code and is 0
// only for StepPropertyLookup when the property was simply absent.
type RegisterError struct {
	Step   RegisterStep
	Status int32
	Msg    string
}

// Error implements the error interface.
func (e *RegisterError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("xcomp: %s failed with status %d: %s", e.Step, e.Status, e.Msg)
	}
	return fmt.Sprintf("xcomp: %s failed: %s", e.Step, e.Msg)
}

// IsPropertyMissing returns true if err means the exports object had no
// native XComponent property, i.e. the host object model is wrong rather
// than a native call having failed.
func IsPropertyMissing(err error) bool {
	var regErr *RegisterError
	return errors.As(err, &regErr) && regErr.Step == StepPropertyLookup
}
