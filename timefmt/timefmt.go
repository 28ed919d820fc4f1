// Package timefmt renders timestamps from a small token mini-language.
//
// Recognized tokens:
//   - %MS: milliseconds, three digits, zero-padded
//   - %S:  seconds, two digits, zero-padded
//   - %M:  minutes, two digits, zero-padded
//   - %H:  hours, two digits, zero-padded
//   - %D:  calendar date as year-month-day
//
// Anything else, including a lone trailing '%' or an unrecognized %x
// sequence, is copied through literally. Tokens are matched longest prefix
// first, so %MS is tried before %M or %S.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// Default is the out-of-the-box layout: minutes, seconds and milliseconds,
// e.g. "03:07.482".
const Default = "%M:%S.%MS"

// Format renders now according to spec. It is a pure function of its
// arguments; callers wanting wall-clock output pass time.Now().
func Format(spec string, now time.Time) string {
	var b strings.Builder
	b.Grow(len(spec) + 8)

	for len(spec) > 0 {
		switch {
		case strings.HasPrefix(spec, "%MS"):
			fmt.Fprintf(&b, "%03d", now.Nanosecond()/int(time.Millisecond))
			spec = spec[3:]
		case strings.HasPrefix(spec, "%S"):
			fmt.Fprintf(&b, "%02d", now.Second())
			spec = spec[2:]
		case strings.HasPrefix(spec, "%M"):
			fmt.Fprintf(&b, "%02d", now.Minute())
			spec = spec[2:]
		case strings.HasPrefix(spec, "%H"):
			fmt.Fprintf(&b, "%02d", now.Hour())
			spec = spec[2:]
		case strings.HasPrefix(spec, "%D"):
			b.WriteString(now.Format("2006-01-02"))
			spec = spec[2:]
		default:
			b.WriteByte(spec[0])
			spec = spec[1:]
		}
	}

	return b.String()
}
