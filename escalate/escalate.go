// Package escalate provides the continuation gate consulted before an
// error-level log entry terminates the process, with a terminal
// implementation and a mock for tests.
package escalate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Gate decides whether execution may continue after an error-level log
// entry. Returning false means the caller should terminate.
type Gate interface {
	Confirm() bool
}

// TerminalGate implements Gate by prompting the user on a real terminal.
// When In is not a terminal it declines immediately, so non-interactive
// runs fail safe instead of blocking on a read that can never be answered.
type TerminalGate struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalGate returns a TerminalGate wired to os.Stdin and os.Stderr.
func NewTerminalGate() *TerminalGate {
	return &TerminalGate{In: os.Stdin, Out: os.Stderr}
}

// Confirm prompts the user to continue and reads their answer. Empty input
// and 'n' decline; 'y' accepts; anything else prints a short guidance
// message and asks again.
func (g *TerminalGate) Confirm() bool {
	if !term.IsTerminal(int(g.In.Fd())) {
		return false
	}
	return confirm(g.In, g.Out)
}

// confirm runs the prompt loop against arbitrary streams. Split from
// Confirm so the y/N handling is testable without a terminal.
func confirm(r io.Reader, w io.Writer) bool {
	reader := bufio.NewReader(r)
	for {
		_, _ = fmt.Fprint(w, "An error has occurred, do you want to continue? [y/N] ")

		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return false
		}

		switch line[0] {
		case 'y', 'Y':
			return true
		case 'n', 'N':
			return false
		}

		_, _ = fmt.Fprintln(w, "Please enter y or n.")
		if err != nil {
			// Input is exhausted; treat it like an empty answer.
			return false
		}
	}
}

// MockGate implements Gate for testing, replaying pre-configured answers.
type MockGate struct {
	// Responses is a queue of answers to return for successive calls.
	// When the queue runs out, Confirm returns false.
	Responses []bool
	// Calls counts how many times Confirm was invoked.
	Calls int
}

// NewMockGate creates a MockGate with the given answers.
func NewMockGate(responses ...bool) *MockGate {
	return &MockGate{Responses: responses}
}

// Confirm returns the next pre-configured answer, or false when none remain.
func (m *MockGate) Confirm() bool {
	idx := m.Calls
	m.Calls++
	if idx < len(m.Responses) {
		return m.Responses[idx]
	}
	return false
}
