package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// styles holds color formatters for human output
type styles struct {
	canonical *color.Color
	count     *color.Color
	yes       *color.Color
	no        *color.Color
	index     *color.Color
	problem   *color.Color
}

// newStyles creates color formatters for human output
// enabled=false respects --color=never and NO_COLOR
func newStyles(enabled bool) *styles {
	s := &styles{
		canonical: color.New(color.Bold, color.FgHiWhite),
		count:     color.New(color.FgHiBlue),
		yes:       color.New(color.FgHiGreen),
		no:        color.New(color.FgRed),
		index:     color.New(color.Bold, color.FgYellow),
		problem:   color.New(color.FgRed),
	}

	if !enabled {
		s.canonical.DisableColor()
		s.count.DisableColor()
		s.yes.DisableColor()
		s.no.DisableColor()
		s.index.DisableColor()
		s.problem.DisableColor()
	}

	return s
}

// applyColorMode sets color.NoColor from the --color flag.
func applyColorMode(mode string) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		// Check if stdout is a TTY and NO_COLOR is not set
		color.NoColor = !isTerminal(os.Stdout) || os.Getenv("NO_COLOR") != ""
	default:
		return fmt.Errorf("unknown color mode: %s", mode)
	}
	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
