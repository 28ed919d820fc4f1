package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/flare"
	"github.com/xdg/flare/timefmt"
)

var (
	emitLevel     string
	emitThreshold string
	emitTimeSpec  string
	emitTemplate  string
	emitNoColour  bool
	emitNoAbort   bool
	emitNoPrompt  bool
)

var emitCmd = &cobra.Command{
	Use:   "emit [flags] FORMAT [ARG...]",
	Short: "Format and emit a single log line",
	Long: `Emit one log line at the given severity. FORMAT is a printf-style format
string; any remaining arguments are substituted into it as strings.

Debug and info lines go to stdout, warn and error lines to stderr. With
the default policy an error-level line prompts to continue when stdin is a
terminal and otherwise terminates with exit status 1, after the line has
been written.`,
	Example: `  flare emit "starting up"
  flare emit --level warn "disk %s is %s full" /dev/sda1 91%
  flare emit --level error --no-abort "lost connection to %s" db1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().StringVar(&emitLevel, "level", "info", "severity of the message (debug|info|warn|error)")
	emitCmd.Flags().StringVar(&emitThreshold, "threshold", "debug", "minimum severity to emit")
	emitCmd.Flags().StringVar(&emitTimeSpec, "time-format", timefmt.Default, "timestamp layout (%MS, %S, %M, %H, %D)")
	emitCmd.Flags().StringVar(&emitTemplate, "format", "", "message template with {0}..{5} placeholders")
	emitCmd.Flags().BoolVar(&emitNoColour, "no-colour", false, "disable ANSI colour")
	emitCmd.Flags().BoolVar(&emitNoAbort, "no-abort", false, "do not terminate after an error-level line")
	emitCmd.Flags().BoolVar(&emitNoPrompt, "no-prompt", false, "never prompt to continue; abort outright on error")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) (err error) {
	level, err := flare.ParseSeverity(emitLevel)
	if err != nil {
		return fmt.Errorf("invalid --level: %w", err)
	}
	threshold, err := flare.ParseSeverity(emitThreshold)
	if err != nil {
		return fmt.Errorf("invalid --threshold: %w", err)
	}

	em := flare.New()
	em.SetThreshold(threshold)
	em.SetTimeFormat(emitTimeSpec)
	em.SetColoured(!emitNoColour)
	em.SetAbortOnError(!emitNoAbort)
	em.SetPromptOnError(!emitNoPrompt)
	em.SetOutput(cmd.OutOrStdout())
	em.SetErrOutput(cmd.ErrOrStderr())
	if emitTemplate != "" {
		em.SetMessageFormat(emitTemplate)
	}

	// A bad FORMAT is user input here, not a programming bug, so surface
	// the formatting panic as an ordinary command error.
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ferr, ok := r.(*flare.FormattingError); ok {
			err = ferr
			return
		}
		panic(r)
	}()

	fmtArgs := make([]any, 0, len(args)-1)
	for _, a := range args[1:] {
		fmtArgs = append(fmtArgs, a)
	}
	em.Log(level, args[0], fmtArgs...)

	return nil
}
