package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Status markers.
const (
	MarkOK   = "✓"
	MarkWarn = "⚠"
	MarkFail = "✗"
)

// ShouldUseColor reports whether ANSI colors should be used for f.
// NO_COLOR disables color, CLICOLOR_FORCE=1 forces it, CLICOLOR=0
// disables it; otherwise color is used when f is a terminal.
func ShouldUseColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR_FORCE")) == "1" {
		return true
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR")) == "0" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Printer writes human-oriented status lines.
type Printer struct {
	w     io.Writer
	ok    *color.Color
	warn  *color.Color
	fail  *color.Color
	title *color.Color
}

// NewPrinter creates a printer writing to w. Colors are used only when
// useColor is true.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:     w,
		ok:    color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed),
		title: color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.ok, p.warn, p.fail, p.title} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// OK prints a success line.
func (p *Printer) OK(format string, args ...any) {
	p.line(p.ok, MarkOK, format, args...)
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.warn, MarkWarn, format, args...)
}

// Fail prints a failure line.
func (p *Printer) Fail(format string, args ...any) {
	p.line(p.fail, MarkFail, format, args...)
}

// Println prints a plain line.
func (p *Printer) Println(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Section prints a heading followed by a rule.
func (p *Printer) Section(title string) {
	p.title.Fprintln(p.w, title)
	fmt.Fprintln(p.w, strings.Repeat("-", 80))
}

// Banner prints a framed heading.
func (p *Printer) Banner(lines ...string) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(p.w, rule)
	for _, l := range lines {
		pad := (80 - len([]rune(l))) / 2
		if pad < 0 {
			pad = 0
		}
		p.title.Fprintln(p.w, strings.Repeat(" ", pad)+l)
	}
	fmt.Fprintln(p.w, rule)
}

func (p *Printer) line(c *color.Color, mark, format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", c.Sprint(mark), fmt.Sprintf(format, args...))
}
