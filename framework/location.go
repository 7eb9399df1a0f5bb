package framework

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	frameworkPackagePrefix = "github.com/launchdarkly/unit-test-harness/framework."
	testifyPackagePrefix   = "github.com/stretchr/testify/"
	runtimePackagePrefix   = "runtime."
)

// Location identifies the source line that reported a failure.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Caller returns the Location of the function that is skip frames above the caller of
// Caller, as in runtime.Caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???"}
	}
	return Location{File: filepath.Base(file), Line: line}
}

// callerOutsideFramework finds the innermost stack frame that does not belong to this
// package, testify or the runtime, so that failures reported through require.TestingT or
// caused by a panic point at the test code.
func callerOutsideFramework() Location {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if strings.HasSuffix(f.File, "_test.go") ||
			(!strings.HasPrefix(f.Function, frameworkPackagePrefix) &&
				!strings.HasPrefix(f.Function, testifyPackagePrefix) &&
				!strings.HasPrefix(f.Function, runtimePackagePrefix)) {
			return Location{File: filepath.Base(f.File), Line: f.Line}
		}
		if !more {
			return Location{File: "???"}
		}
	}
}
