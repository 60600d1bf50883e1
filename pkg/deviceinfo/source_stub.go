//go:build !(ohos && cgo)

package deviceinfo

import "unsafe"

// Supported reports whether the native deviceinfo facility is compiled in.
const Supported = false

var native nativeSource = stubSource{}

// stubSource stands in for the native facility on every other platform.
type stubSource struct{}

func (stubSource) text(Query) unsafe.Pointer { return nil }

func (stubSource) number(Query) int32 { return 0 }
