package flare

import (
	"runtime"
	"strings"
)

// CallSite identifies the source location of a log statement: the file, the
// enclosing function's bare name, and the line number. It describes the log
// call expression itself, never the emitter's internals.
type CallSite struct {
	Function string
	File     string
	Line     int
}

// Capture records the call site skip+1 frames above Capture itself, so
// Capture(0) describes Capture's direct caller.
func Capture(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{Function: "unknown", File: "unknown"}
	}

	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = bareFunction(fn.Name())
	}

	return CallSite{Function: function, File: file, Line: line}
}

// bareFunction reduces a runtime function name to its bare identifier,
// stripping the import path and any receiver qualifier.
// "github.com/xdg/flare.(*Emitter).Log" becomes "Log".
func bareFunction(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
