package flare

import (
	"strings"
	"testing"
)

func TestExpand(t *testing.T) {
	site := CallSite{Function: "foo", File: "a.cc", Line: 10}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			"all placeholders",
			"[{0} {1} {2} {3}:{4}] >> {5}",
			"[T warn foo a.cc:10] >> hi 1",
		},
		{
			"unknown braces pass through",
			"{9} {5} {x}",
			"{9} hi 1 {x}",
		},
		{
			"no placeholders",
			"static text",
			"static text",
		},
		{
			"repeated placeholder",
			"{5}{5}",
			"hi 1hi 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expand(tt.template, site, "T", "warn", "hi 1")
			if got != tt.want {
				t.Errorf("expand(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	if got := render("hi %d", 1); got != "hi 1" {
		t.Errorf("render() = %q, want %q", got, "hi 1")
	}
	if got := render("no verbs"); got != "no verbs" {
		t.Errorf("render() = %q, want %q", got, "no verbs")
	}
}

func TestRender_MismatchPanics(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
	}{
		{"wrong type", "%d", []any{"not a number"}},
		{"missing argument", "%s %s", []any{"only one"}},
		{"extra argument", "%s", []any{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("render(%q, %v) did not panic", tt.format, tt.args)
				}
				ferr, ok := r.(*FormattingError)
				if !ok {
					t.Fatalf("panic value = %T, want *FormattingError", r)
				}
				if ferr.Format != tt.format {
					t.Errorf("FormattingError.Format = %q, want %q", ferr.Format, tt.format)
				}
				if !strings.Contains(ferr.Error(), tt.format) {
					t.Errorf("Error() = %q, missing format string", ferr.Error())
				}
			}()
			render(tt.format, tt.args...)
		})
	}
}

func TestLabel(t *testing.T) {
	if got := label(Warn, false); got != "warn" {
		t.Errorf("label(Warn, false) = %q, want %q", got, "warn")
	}
	if got := label(Warn, true); !strings.Contains(got, "warn") || !strings.Contains(got, "\033[1;33m") {
		t.Errorf("label(Warn, true) = %q, want yellow bold 'warn'", got)
	}
	if got := label(Severity(99), true); got != "unknown" {
		t.Errorf("label(Severity(99), true) = %q, want %q", got, "unknown")
	}
}
