// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"io"
	"strings"
)

// A Printer writes the human-readable representation of a node tree. Each
// primitive value is written on a single line of the form
//
//	name: TYPE value
//
// Constructed values open a block that is indented by one level:
//
//	name: SEQUENCE {
//	  field: INTEGER 5
//	}
//
// The first write error is retained and returned by all subsequent calls.
type Printer struct {
	w      io.Writer
	indent string
	depth  int
	tag    string // annotation for the next line
	err    error
}

// NewPrinter returns a Printer writing to w. Each nesting level is indented by
// indent.
func NewPrinter(w io.Writer, indent string) *Printer {
	return &Printer{w: w, indent: indent}
}

// Value writes a single line for a primitive value. If value is empty, only
// the type is written.
func (p *Printer) Value(name, typ, value string) error {
	if value == "" {
		return p.line(name, typ)
	}
	return p.line(name, typ+" "+value)
}

// Begin writes the first line of a constructed value and increases the
// indentation level.
func (p *Printer) Begin(name, typ string) error {
	err := p.line(name, typ+" {")
	p.depth++
	return err
}

// End decreases the indentation level and closes the block opened by the
// last call to [Printer.Begin].
func (p *Printer) End() error {
	p.depth = max(p.depth-1, 0)
	return p.line("", "}")
}

// annotate prefixes the type of the next line with s. Tagging nodes use this
// to show the tag of the node they wrap.
func (p *Printer) annotate(s string) {
	p.tag += s + " "
}

func (p *Printer) line(name, s string) error {
	if p.err != nil {
		return p.err
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(p.indent, p.depth))
	if name != "" {
		b.WriteString(name)
		b.WriteString(": ")
	}
	if s != "}" {
		b.WriteString(p.tag)
		p.tag = ""
	}
	b.WriteString(s)
	b.WriteByte('\n')
	_, p.err = io.WriteString(p.w, b.String())
	return p.err
}
