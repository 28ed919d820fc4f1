// Package flare formats and emits severity-leveled log lines to the
// standard output streams.
//
// Severities:
//   - Debug: verbose diagnostic detail
//   - Info: normal operational events
//   - Warn: unexpected conditions that don't prevent operation
//   - Error: failures, optionally fatal under the escalation policy
//
// Output destinations:
//   - Stdout: Debug and Info
//   - Stderr: Warn and Error, plus continuation prompts
//
// An Emitter is a plain value owned by its caller; assigning one to another
// variable duplicates its configuration, and the two copies evolve
// independently. Emitters do not serialize concurrent writers: if several
// goroutines share one, byte-level interleaving of output is the caller's
// responsibility.
package flare
