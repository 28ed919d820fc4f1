package flare

import (
	"strings"
	"testing"
)

func TestCapture(t *testing.T) {
	site := Capture(0)

	if site.Function != "TestCapture" {
		t.Errorf("Function = %q, want %q", site.Function, "TestCapture")
	}
	if !strings.HasSuffix(site.File, "callsite_test.go") {
		t.Errorf("File = %q, want suffix %q", site.File, "callsite_test.go")
	}
	if site.Line <= 0 {
		t.Errorf("Line = %d, want > 0", site.Line)
	}
}

func TestBareFunction(t *testing.T) {
	tests := []struct {
		name string
		full string
		want string
	}{
		{"plain function", "main.main", "main"},
		{"package path", "github.com/xdg/flare.Capture", "Capture"},
		{"pointer method", "github.com/xdg/flare.(*Emitter).Log", "Log"},
		{"value method", "github.com/xdg/flare.CallSite.String", "String"},
		{"no qualifier", "f", "f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bareFunction(tt.full); got != tt.want {
				t.Errorf("bareFunction(%q) = %q, want %q", tt.full, got, tt.want)
			}
		})
	}
}
