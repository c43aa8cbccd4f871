// Package terminal renders CLI output with color when attached to a
// terminal and as plain bytes otherwise, so piped output carries no escape
// codes.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Colors for terminal output.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Red   = "\033[31m"
	Green = "\033[32m"
)

// Printer writes prefixed lines to one stream.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter wraps w, enabling color only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, color: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Okf prints an "ok:" line, green on terminals.
func (p *Printer) Okf(format string, args ...any) {
	p.prefixed(Green, "ok:", format, args...)
}

// Errorf prints an "error:" line, red on terminals.
func (p *Printer) Errorf(format string, args ...any) {
	p.prefixed(Red, "error:", format, args...)
}

// Plainf prints without prefix or color.
func (p *Printer) Plainf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) prefixed(color, prefix, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.color {
		fmt.Fprintf(p.w, "%s%s%s%s %s\n", Bold, color, prefix, Reset, msg)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", prefix, msg)
}
