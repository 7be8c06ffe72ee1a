// Package platform provides host detection for xcomp.
// It answers whether the process looks like an OpenHarmony device and where
// the ACE system libraries are expected to live.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"unsafe"
)

// Is64Bit indicates whether the platform is 64-bit.
// xcomp only supports 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// systemLibDirs are the directories OpenHarmony installs its system
// libraries into, most specific first.
var systemLibDirs = []string{
	"/system/lib64/platformsdk",
	"/system/lib64/ndk",
	"/system/lib64",
	"/system/lib/platformsdk",
	"/system/lib",
}

// IsOpenHarmony reports whether the host filesystem looks like an
// OpenHarmony device image. Useful for diagnostics when library loading
// fails on a development machine.
func IsOpenHarmony() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	for _, dir := range systemLibDirs {
		if _, err := os.Stat(dir); err == nil {
			return true
		}
	}
	return false
}

// LibrarySearchPaths returns the directories to probe for ACE system
// libraries, in order. LD_LIBRARY_PATH entries come first so test and
// development environments can override the device paths.
func LibrarySearchPaths() []string {
	var paths []string
	if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
		paths = append(paths, filepath.SplitList(ldPath)...)
	}
	paths = append(paths, systemLibDirs...)
	return paths
}
