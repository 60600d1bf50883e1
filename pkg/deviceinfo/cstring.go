// Package deviceinfo provides information about the local device on OpenHarmony.
//
// It queries the device type, model and build metadata as well as version
// information about the OS through the native deviceinfo NDK. On builds without
// the native facility (anything but ohos with cgo) every query yields no value.
//
// Required system capability: SystemCapability.Startup.SystemInfo
package deviceinfo

import (
	"unicode/utf8"
	"unsafe"
)

// staticString converts a NUL-terminated C string owned by the native layer into
// a Go string without copying it.
//
// The caller must pass either nil or a pointer to an immutable, NUL-terminated
// buffer that stays valid for the rest of the process. Only nil, encoding and
// emptiness are checked here; lifetime and termination are trusted.
func staticString(p unsafe.Pointer) (string, bool) {
	if p == nil {
		return "", false
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	if n == 0 {
		return "", false
	}
	s := unsafe.String((*byte)(p), n)
	if !utf8.ValidString(s) {
		return "", false
	}
	return s, true
}

// apiVersion maps a native version number to uint32. Negative values mean the
// platform could not provide one and become 0.
func apiVersion(raw int32) uint32 {
	if raw < 0 {
		return 0
	}
	return uint32(raw)
}
