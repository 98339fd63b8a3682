// Package diag prints build-time diagnostics in compiler style.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/seitarof/gen-shape/internal/resolver"
)

// Printer renders resolver errors as "file:line:col: error[code]: msg".
type Printer struct {
	w        io.Writer
	location *color.Color
	severity *color.Color
	code     *color.Color
}

// NewPrinter returns a Printer writing to w. Colors are disabled when noColor
// is set.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:        w,
		location: color.New(color.Bold),
		severity: color.New(color.FgRed, color.Bold),
		code:     color.New(color.FgYellow),
	}
	if noColor {
		p.location.DisableColor()
		p.severity.DisableColor()
		p.code.DisableColor()
	} else {
		p.location.EnableColor()
		p.severity.EnableColor()
		p.code.EnableColor()
	}
	return p
}

func (p *Printer) Print(err *resolver.Error) {
	fmt.Fprintf(p.w, "%s: %s%s: %s\n",
		p.location.Sprint(err.Pos.String()),
		p.severity.Sprint("error"),
		p.code.Sprintf("[%s]", err.Code),
		err.Msg,
	)
}

// PrintAll prints errs in order and returns how many were printed.
func (p *Printer) PrintAll(errs []*resolver.Error) int {
	for _, err := range errs {
		p.Print(err)
	}
	return len(errs)
}
