package flare

import (
	"fmt"
	"strconv"
	"strings"
)

// Per-severity label text, indexed by Severity. The coloured variants wrap
// the lowercase name in a bold ANSI colour: cyan for debug, green for info,
// yellow for warn, red for error. Process-wide constant data.
var (
	colouredLabels = [...]string{
		Debug: "\033[1;36mdebug\033[0;0;0m",
		Info:  "\033[1;32minfo\033[0;0;0m",
		Warn:  "\033[1;33mwarn\033[0;0;0m",
		Error: "\033[1;31merror\033[0;0;0m",
	}
	plainLabels = [...]string{
		Debug: "debug",
		Info:  "info",
		Warn:  "warn",
		Error: "error",
	}
)

// Built-in message templates. The six positional placeholders are, in order:
// {0} formatted time, {1} level label, {2} function name, {3} file name,
// {4} line number, {5} rendered message text. The coloured variant styles
// the function name bold, the file:line dim, and the message body bold.
const (
	colouredTemplate = "[{0} {1} at \033[1m{2}\033[0m( \033[1;30m{3}:{4}\033[0;0m )]: \033[1m{5}\033[0m\n"
	plainTemplate    = "[{0} {1} at {2}( {3}:{4} )]: {5}\n"
)

// label returns the label text for a severity, styled or plain. Severities
// outside the known range fall back to their unstyled String form.
func label(level Severity, coloured bool) string {
	if level < Debug || level > Error {
		return level.String()
	}
	if coloured {
		return colouredLabels[level]
	}
	return plainLabels[level]
}

// FormattingError reports a mismatch between a log call's format string and
// its arguments. It is delivered by panic: a malformed log call is a
// programming defect, not a runtime condition to recover from.
type FormattingError struct {
	Format   string
	Rendered string
}

func (e *FormattingError) Error() string {
	return fmt.Sprintf("flare: format %q does not match its arguments: %s", e.Format, e.Rendered)
}

// render substitutes args into format. It panics with *FormattingError when
// fmt flags a verb/operand mismatch, which fmt marks with a "%!" sequence
// in its output.
func render(format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if strings.Contains(msg, "%!") {
		panic(&FormattingError{Format: format, Rendered: msg})
	}
	return msg
}

// expand substitutes the six positional values into a message template.
// Unrecognized brace sequences pass through unchanged.
func expand(template string, site CallSite, timeStr, label, msg string) string {
	r := strings.NewReplacer(
		"{0}", timeStr,
		"{1}", label,
		"{2}", site.Function,
		"{3}", site.File,
		"{4}", strconv.Itoa(site.Line),
		"{5}", msg,
	)
	return r.Replace(template)
}
