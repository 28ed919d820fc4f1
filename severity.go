package flare

import (
	"fmt"
	"strings"
)

// Severity represents the importance of a log message. Higher values are
// more severe, so severities compare meaningfully with < and >=.
type Severity int

const (
	// Debug is for verbose diagnostic detail.
	Debug Severity = iota
	// Info is for normal operational events.
	Info
	// Warn is for unexpected conditions that don't prevent operation.
	Warn
	// Error is for failures; under the escalation policy these may
	// terminate the process.
	Error
)

// String returns the lowercase name of the severity, which is also the
// label text used in emitted lines.
func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name (case-insensitive). It accepts the
// canonical names plus the common aliases "warning" and "err".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error", "err":
		return Error, nil
	default:
		return Debug, fmt.Errorf("unknown severity %q", s)
	}
}
