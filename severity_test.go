package flare

import "testing"

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Debug, "debug"},
		{Info, "info"},
		{Warn, "warn"},
		{Error, "error"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverity_Ordering(t *testing.T) {
	if !(Debug < Info && Info < Warn && Warn < Error) {
		t.Errorf("severities not ordered low-to-high: %d %d %d %d", Debug, Info, Warn, Error)
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
	}{
		{"debug", Debug},
		{"DEBUG", Debug},
		{"Debug", Debug},
		{"info", Info},
		{"INFO", Info},
		{"warn", Warn},
		{"warning", Warn},
		{"WARN", Warn},
		{"error", Error},
		{"err", Error},
		{"ERROR", Error},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if err != nil {
				t.Fatalf("ParseSeverity(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSeverity_Invalid(t *testing.T) {
	for _, input := range []string{"", "loud", "warnn"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseSeverity(input); err == nil {
				t.Errorf("ParseSeverity(%q) expected error, got nil", input)
			}
		})
	}
}
