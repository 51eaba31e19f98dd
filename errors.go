// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import "fmt"

// ParseError is the single error kind raised by this package. Callers
// are not meant to match on Text; inspect Line/Column/Offset instead.
type ParseError struct {
	Position
	Filename, Text string
}

func (e *ParseError) Error() string {
	prefix := ""
	if e.Filename != "" {
		prefix = e.Filename + ":"
	}
	return fmt.Sprintf("%s%d:%d: %s", prefix, e.Line, e.Column, e.Text)
}

// errAt builds a *ParseError positioned at pos, resolved against the
// parser's line index. Every call site returns the result immediately,
// so the parser never needs to track "the" current error separately:
// the first one built is the only one that ever escapes.
func (p *parser) errAt(pos Pos, format string, a ...any) *ParseError {
	return &ParseError{
		Position: p.lines.resolve(pos),
		Filename: p.name,
		Text:     fmt.Sprintf(format, a...),
	}
}

// curErr reports an error at the parser's current position.
func (p *parser) curErr(format string, a ...any) *ParseError {
	return p.errAt(p.pos(), format, a...)
}
