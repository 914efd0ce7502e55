// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console prints user-facing status notices as small boxed panels.
// Notices are for people reading a terminal; they are not a stable format.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// Printer writes panels to an io.Writer. Color is applied only when the
// writer is a terminal and color has not been disabled.
type Printer struct {
	w     io.Writer
	info  *color.Color
	err   *color.Color
	ok    *color.Color
	plain *color.Color
}

// New returns a Printer for w. Passing noColor, or a w that is not a
// terminal, disables ANSI colors.
func New(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:     w,
		info:  color.New(color.FgCyan),
		err:   color.New(color.FgRed),
		ok:    color.New(color.FgGreen),
		plain: color.New(color.Reset),
	}
	if noColor || !isTerminal(w) {
		for _, c := range []*color.Color{p.info, p.err, p.ok, p.plain} {
			c.DisableColor()
		}
	} else {
		for _, c := range []*color.Color{p.info, p.err, p.ok, p.plain} {
			c.EnableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Info prints a cyan progress notice.
func (p *Printer) Info(format string, args ...any) {
	p.panel(p.info, fmt.Sprintf(format, args...))
}

// Error prints a red failure notice.
func (p *Printer) Error(format string, args ...any) {
	p.panel(p.err, fmt.Sprintf(format, args...))
}

// Success prints a green completion notice.
func (p *Printer) Success(format string, args ...any) {
	p.panel(p.ok, fmt.Sprintf(format, args...))
}

// Plain prints an uncolored notice.
func (p *Printer) Plain(format string, args ...any) {
	p.panel(p.plain, fmt.Sprintf(format, args...))
}

func (p *Printer) panel(c *color.Color, msg string) {
	c.Fprint(p.w, Panel(msg))
}

// Panel draws msg inside a box sized to its widest line.
func Panel(msg string) string {
	lines := strings.Split(msg, "\n")
	width := 0
	for _, l := range lines {
		if n := runewidth.StringWidth(l); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("╭" + strings.Repeat("─", width+2) + "╮\n")
	for _, l := range lines {
		pad := width - runewidth.StringWidth(l)
		b.WriteString("│ " + l + strings.Repeat(" ", pad) + " │\n")
	}
	b.WriteString("╰" + strings.Repeat("─", width+2) + "╯\n")
	return b.String()
}
