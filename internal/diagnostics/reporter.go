package diagnostics

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

// ColorMode controls whether Reporter emits ANSI color codes around the
// `Error:` tag in its otherwise-unchanged one-line output.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Reporter formats Errors to an io.Writer. It never changes the one-line
// `[line N] Error: MESSAGE` text spec §6 mandates; coloring only wraps the
// `Error:` tag in ANSI escapes. ColorAlways always colors, ColorNever never
// does, and ColorAuto colors only when the destination is a terminal,
// mirroring how CLIs in the wild gate coloring on isatty detection rather
// than always coloring piped output.
type Reporter struct {
	Color ColorMode
}

func NewReporter(mode ColorMode) *Reporter {
	return &Reporter{Color: mode}
}

func (r *Reporter) shouldColor(w io.Writer) bool {
	switch r.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

func (r *Reporter) write(w io.Writer, e *Error) {
	if r.shouldColor(w) {
		fmt.Fprintf(w, "[line %d] \x1b[31mError:\x1b[0m %s\n", e.Line, e.Message)
		return
	}
	fmt.Fprintln(w, e.Error())
}

// NewDebugLogger builds the sub-debug slog.Logger the CLI uses to trace the
// start and end of a run; Debug records are emitted only when enabled.
// Every record carries a run_id so a test harness running many `.lox`
// files as parallel subprocesses can tell their logs apart; this never
// touches the user-visible error contract above.
func NewDebugLogger(w io.Writer, enabled bool) *slog.Logger {
	level := slog.LevelInfo
	if enabled {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run_id", uuid.NewString())
}
