// Package output formats feedctl results for the terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Printer writes status lines to out and problems to errOut.
type Printer struct {
	out       io.Writer
	errOut    io.Writer
	useColors bool
}

func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors honours NO_COLOR and dumb terminals in auto mode.
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return os.Getenv("TERM") != "dumb"
	}
}

func NewPrinter(out, errOut io.Writer, useColors bool) *Printer {
	return &Printer{out: out, errOut: errOut, useColors: useColors}
}

func (p *Printer) Out() io.Writer { return p.out }

func (p *Printer) Info(format string, args ...any) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
}

func (p *Printer) Warning(format string, args ...any) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.errOut, "⚠ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.errOut, "[WARN] "+format+"\n", args...)
}

func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.errOut, "✗ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.errOut, "[ERROR] "+format+"\n", args...)
}

// Header prints an underlined section title.
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		color.New(color.FgWhite).Fprintf(p.out, "%s\n", repeatChar('─', len(title)))
		return
	}
	fmt.Fprintf(p.out, "\n%s\n%s\n", title, repeatChar('-', len(title)))
}

func repeatChar(char rune, count int) string {
	result := make([]rune, count)
	for i := range result {
		result[i] = char
	}
	return string(result)
}
