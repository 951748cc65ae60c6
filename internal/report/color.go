package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode selects the --color policy (spec.md §6).
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses the --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("report: unknown color mode %q", s)
	}
}

// sprintf is the shape of a color-or-plain formatting function.
type sprintf func(format string, a ...any) string

// Palette is the set of formatting functions the text reporter colors its
// output with, resolved once from the ColorMode.
type Palette struct {
	Regressed sprintf
	Improved  sprintf
	Warning   sprintf
	Header    sprintf
}

func identity(format string, a ...any) string { return fmt.Sprintf(format, a...) }

// NewPalette resolves mode against the output stream: Auto colors only
// when stdout is a terminal (golang.org/x/term.IsTerminal), Always and
// Never are unconditional.
func NewPalette(mode ColorMode) Palette {
	enabled := mode == ColorAlways || (mode == ColorAuto && term.IsTerminal(int(os.Stdout.Fd())))
	if !enabled {
		return Palette{Regressed: identity, Improved: identity, Warning: identity, Header: identity}
	}
	return Palette{
		Regressed: color.New(color.FgRed, color.Bold).SprintfFunc(),
		Improved:  color.New(color.FgGreen, color.Bold).SprintfFunc(),
		Warning:   color.New(color.FgYellow).SprintfFunc(),
		Header:    color.New(color.FgCyan, color.Bold).SprintfFunc(),
	}
}
