package cli

import (
	"fmt"
	"io"
)

// IO wraps stdout/stderr for command execution. It also satisfies
// datamodel.Printer, so the property façade can write straight to it.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// WriteString implements datamodel.Printer, writing to stdout.
func (o *IO) WriteString(s string) (int, error) {
	return fmt.Fprint(o.out, s)
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}
