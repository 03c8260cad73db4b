package glimpse

import (
	"runtime"

	"github.com/oliverbestmann/rcore/rcore"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

var _ rcore.Platform = (*Window)(nil)
