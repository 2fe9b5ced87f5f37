package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Colorizer decorates a chart cell for one job. It is chosen once at
// startup; rendering code never branches on platform or mode itself.
type Colorizer func(text string, job int) string

// Plain renders cells without any decoration.
func Plain(text string, job int) string {
	return text
}

// ANSI colors a cell with one of six bright colors cycled by job id.
func ANSI(text string, job int) string {
	return fmt.Sprintf("\033[1;%dm%s\033[0m", 31+job%6, text)
}

// ColorMode selects how chart cells are decorated.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ForMode resolves a color mode against an output writer: "always"
// and "never" are unconditional, "auto" enables color only when the
// writer is a terminal.
func ForMode(mode ColorMode, w io.Writer) (Colorizer, error) {
	switch mode {
	case ColorAlways:
		return ANSI, nil
	case ColorNever:
		return Plain, nil
	case ColorAuto, "":
		if f, ok := w.(*os.File); ok &&
			(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return ANSI, nil
		}
		return Plain, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q (want auto, always, or never)", mode)
	}
}
