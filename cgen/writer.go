// Package cgen emits the resource graph of a GL context as C source:
// one block of GL calls per object, in the order the caller visits them.
//
// Blocks declare every object with the name its kind and handle imply
// (buffer3, image1, renderbuffer2, framebuffer1, ...) so later blocks can
// reference earlier ones. Pixel and vertex uploads read from an unnamed
// data pointer the replay harness provides.
package cgen

import (
	"fmt"
	"strings"

	"github.com/gogpu/glexport/glsym"
)

// Writer accumulates emitted C statements.
//
// Writer is not safe for concurrent use.
type Writer struct {
	out strings.Builder

	misses []glsym.Miss
	missed map[glsym.Miss]bool
}

// New returns an empty writer.
func New() *Writer {
	return &Writer{missed: make(map[glsym.Miss]bool)}
}

// line appends one newline-terminated statement.
func (w *Writer) line(format string, args ...any) {
	fmt.Fprintf(&w.out, format, args...)
	w.out.WriteByte('\n')
}

// EndBlock terminates the current block with an empty line.
func (w *Writer) EndBlock() {
	w.out.WriteByte('\n')
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.out.String()
}

// Misses returns the codes that had no symbol, in first-seen order.
func (w *Writer) Misses() []glsym.Miss {
	return w.misses
}

// sym resolves code in domain d. Unknown codes render empty and are
// remembered.
func (w *Writer) sym(d glsym.Domain, code uint32) string {
	name := glsym.Lookup(d, code)
	if name == "" {
		m := glsym.Miss{Domain: d, Code: code}
		if !w.missed[m] {
			w.missed[m] = true
			w.misses = append(w.misses, m)
		}
	}
	return name
}

func boolean(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func toggle(v bool) string {
	if v {
		return "glEnable"
	}
	return "glDisable"
}
