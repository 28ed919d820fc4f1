package flare

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/xdg/flare/escalate"
	"github.com/xdg/flare/timefmt"
)

// Emitter formats and routes leveled log lines. The zero value is not ready
// for use; construct one with New. An Emitter holds only scalar
// configuration, so assigning it to another variable yields an independent
// copy.
type Emitter struct {
	threshold     Severity // minimum severity to emit
	timeFormat    string
	messageFormat string // empty means the built-in default template
	coloured      bool
	promptOnError bool
	abortOnError  bool

	out    io.Writer // receives lines below Warn
	errOut io.Writer // receives Warn and Error lines
	gate   escalate.Gate
	exit   func(int)
}

// New returns an Emitter with the default configuration: threshold Warn,
// minutes:seconds.milliseconds timestamps, colour enabled, and error-level
// entries prompting on a terminal before aborting the process.
func New() Emitter {
	return Emitter{
		threshold:     Warn,
		timeFormat:    timefmt.Default,
		coloured:      true,
		promptOnError: true,
		abortOnError:  true,
		out:           os.Stdout,
		errOut:        os.Stderr,
		gate:          escalate.NewTerminalGate(),
		exit:          os.Exit,
	}
}

// SetThreshold sets the minimum severity the emitter will render.
func (e *Emitter) SetThreshold(s Severity) {
	e.threshold = s
}

// SetTimeFormat replaces the timestamp layout (see package timefmt).
// The layout is not validated: unrecognized tokens pass through literally.
func (e *Emitter) SetTimeFormat(spec string) {
	e.timeFormat = spec
}

// SetMessageFormat sets the message template. The template may reference the
// positional placeholders {0} time, {1} level label, {2} function,
// {3} file, {4} line, {5} message text.
func (e *Emitter) SetMessageFormat(spec string) {
	e.messageFormat = spec
}

// ClearMessageFormat restores the built-in default message template.
func (e *Emitter) ClearMessageFormat() {
	e.messageFormat = ""
}

// SetAbortOnError controls whether an Error-level entry may terminate the
// process.
func (e *Emitter) SetAbortOnError(abort bool) {
	e.abortOnError = abort
}

// SetPromptOnError controls whether an aborting Error-level entry first asks
// the user to continue. When disabled, the process terminates without a
// prompt.
func (e *Emitter) SetPromptOnError(prompt bool) {
	e.promptOnError = prompt
}

// SetColoured enables or disables ANSI styling of emitted lines.
func (e *Emitter) SetColoured(coloured bool) {
	e.coloured = coloured
}

// SetOutput sets the writer for lines below Warn. Pass nil to restore
// os.Stdout.
func (e *Emitter) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	e.out = w
}

// SetErrOutput sets the writer for Warn and Error lines. Pass nil to restore
// os.Stderr.
func (e *Emitter) SetErrOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	e.errOut = w
}

// SetGate replaces the escalation gate consulted before an Error-level entry
// terminates the process.
func (e *Emitter) SetGate(g escalate.Gate) {
	e.gate = g
}

// Log renders and emits one message at the given severity, capturing the
// call site of the Log expression itself. Messages below the threshold are
// dropped before any formatting or I/O. A format/argument mismatch panics
// with *FormattingError.
func (e *Emitter) Log(level Severity, format string, args ...any) {
	if level < e.threshold {
		return
	}
	e.LogAt(level, Capture(1), format, args...)
}

// LogAt is Log with an explicit call site, for callers that capture their
// own location (wrappers, deterministic tests).
func (e *Emitter) LogAt(level Severity, site CallSite, format string, args ...any) {
	if level < e.threshold {
		return
	}

	msg := render(format, args...)

	template := e.messageFormat
	if template == "" {
		if e.coloured {
			template = colouredTemplate
		} else {
			template = plainTemplate
		}
	}

	timeStr := timefmt.Format(e.timeFormat, time.Now())
	line := expand(template, site, timeStr, label(level, e.coloured), msg)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	w := e.out
	if level >= Warn {
		w = e.errOut
	}
	_, _ = io.WriteString(w, line)

	// Warn shares the error stream above but only Error is fatal.
	if level == Error && e.abortOnError {
		if !e.promptOnError || !e.gate.Confirm() {
			e.exit(1)
		}
	}
}

// Debugf logs a debug message, capturing the caller's location.
func (e *Emitter) Debugf(format string, args ...any) {
	if Debug < e.threshold {
		return
	}
	e.LogAt(Debug, Capture(1), format, args...)
}

// Infof logs an informational message, capturing the caller's location.
func (e *Emitter) Infof(format string, args ...any) {
	if Info < e.threshold {
		return
	}
	e.LogAt(Info, Capture(1), format, args...)
}

// Warnf logs a warning message, capturing the caller's location.
func (e *Emitter) Warnf(format string, args ...any) {
	if Warn < e.threshold {
		return
	}
	e.LogAt(Warn, Capture(1), format, args...)
}

// Errorf logs an error message, capturing the caller's location. Subject to
// the escalation policy like any other Error-level entry.
func (e *Emitter) Errorf(format string, args ...any) {
	if Error < e.threshold {
		return
	}
	e.LogAt(Error, Capture(1), format, args...)
}
