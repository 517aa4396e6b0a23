package codegen

import (
	"fmt"
	"strings"
)

// writer accumulates indented Go source. The result is run through
// go/format, so indentation only matters for readability of failures.
type writer struct {
	sb     strings.Builder
	indent int
}

func (w *writer) ln(format string, args ...any) {
	w.sb.WriteString(strings.Repeat("\t", w.indent))
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

// open writes a line ending in an opening brace and indents.
func (w *writer) open(format string, args ...any) {
	w.ln(format+" {", args...)
	w.indent++
}

func (w *writer) close() {
	w.indent--
	w.ln("}")
}

// reopen closes the current block and opens the next on one line, as in
// "} else {".
func (w *writer) reopen(format string, args ...any) {
	w.indent--
	w.ln("} "+format+" {", args...)
	w.indent++
}

func (w *writer) blank() {
	w.sb.WriteByte('\n')
}

// check writes the usual error check for a call that assigns err.
func (w *writer) check(format string, args ...any) {
	w.open("if "+format+"; err != nil", args...)
	w.ln("return")
	w.close()
}

func (w *writer) String() string {
	return w.sb.String()
}
