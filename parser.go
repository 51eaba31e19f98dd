// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// ParseFloat converts the exact lexical form of a TOML float (sign
// preserved, underscores already stripped) into the caller's numeric
// representation of choice. It must never return a *Table or *Array;
// doing so is reported back to the caller as a usage error.
type ParseFloat func(lexeme string) (any, error)

func defaultParseFloat(lexeme string) (any, error) {
	return strconv.ParseFloat(lexeme, 64)
}

// Option configures a Parse or ParseBytes call.
type Option func(*parser)

// WithParseFloat overrides the float conversion hook. The default
// produces a float64.
func WithParseFloat(fn ParseFloat) Option {
	return func(p *parser) { p.parseFloat = fn }
}

// WithName attaches a name to the document, used only to prefix error
// messages (e.g. a file path).
func WithName(name string) Option {
	return func(p *parser) { p.name = name }
}

type parser struct {
	src   []byte
	name  string
	off   int // current 0-based byte offset into src
	lines *lineIndex

	parseFloat ParseFloat
}

func newParser(src []byte, opts []Option) *parser {
	p := &parser{
		src:        src,
		lines:      newLineIndex(),
		parseFloat: defaultParseFloat,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *parser) pos() Pos { return Pos(p.off + 1) }

func (p *parser) eof() bool { return p.off >= len(p.src) }

func (p *parser) peek() byte { return byteAt(p.src, p.off) }

func (p *parser) peekAt(delta int) byte { return byteAt(p.src, p.off+delta) }

// ParseBytes decodes src as UTF-8 and parses it as a TOML document. A
// leading byte-order mark is rejected, since TOML has none.
func ParseBytes(src []byte, opts ...Option) (*Table, error) {
	if !utf8.Valid(src) {
		return nil, &ParseError{Text: "source is not valid UTF-8"}
	}
	if bytes.HasPrefix(src, []byte{0xEF, 0xBB, 0xBF}) {
		return nil, &ParseError{Text: "source must not begin with a byte-order mark"}
	}
	return Parse(string(src), opts...)
}

// Parse parses a TOML document already decoded to text.
func Parse(src string, opts ...Option) (*Table, error) {
	normalized, perr := normalizeNewlines(src)
	if perr != nil {
		return nil, perr
	}
	p := newParser(normalized, opts)
	root := newTable()
	if err := p.parseDocument(root); err != nil {
		return nil, err
	}
	return root, nil
}

// normalizeNewlines collapses every CRLF pair to a single LF and rejects
// any other lone CR, as well as any NUL byte, before scanning begins.
// Once this returns cleanly, the rest of the parser never needs to
// think about CR at all.
func normalizeNewlines(src string) ([]byte, *ParseError) {
	if !bytes.ContainsAny([]byte(src), "\r\x00") {
		return []byte(src), nil
	}
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		b := src[i]
		switch b {
		case 0:
			return nil, newlinePassError(out, "illegal NUL byte in source")
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				out = append(out, '\n')
				i++
				continue
			}
			return nil, newlinePassError(out, "carriage return not followed by line feed")
		default:
			out = append(out, b)
		}
	}
	return out, nil
}

func newlinePassError(consumedSoFar []byte, msg string) *ParseError {
	line := 1 + bytes.Count(consumedSoFar, []byte{'\n'})
	col := len(consumedSoFar) + 1
	if i := bytes.LastIndexByte(consumedSoFar, '\n'); i >= 0 {
		col = len(consumedSoFar) - i
	}
	return &ParseError{
		Position: Position{Line: line, Column: col, Offset: len(consumedSoFar)},
		Text:     msg,
	}
}

// parseDocument drives the top-level loop: repeatedly consume a table
// header, an array-of-tables header, or a key/value line, updating the
// current-namespace pointer into root.
func (p *parser) parseDocument(root *Table) error {
	current := root
	for {
		p.off = skipSpaceTab(p.src, p.off)
		if p.eof() {
			return nil
		}
		switch p.peek() {
		case '\n':
			p.off++
			p.lines.noteLine(p.off)
			continue
		case '#':
			newOff, serr := skipComment(p.src, p.off)
			if serr != nil {
				return p.curErr("%s", serr.Error())
			}
			p.off = newOff
			continue
		case '[':
			var err error
			current, err = p.parseHeader(root)
			if err != nil {
				return err
			}
		default:
			if err := p.parseKeyValueLine(current); err != nil {
				return err
			}
		}
		if err := p.requireLineEnd(); err != nil {
			return err
		}
	}
}

// requireLineEnd consumes optional trailing spaces/tabs and a comment,
// then requires a newline or EOF.
func (p *parser) requireLineEnd() error {
	p.off = skipSpaceTab(p.src, p.off)
	if p.eof() {
		return nil
	}
	if p.peek() == '#' {
		newOff, serr := skipComment(p.src, p.off)
		if serr != nil {
			return p.curErr("%s", serr.Error())
		}
		p.off = newOff
	}
	if p.eof() {
		return nil
	}
	if p.peek() != '\n' {
		return p.curErr("expected newline, got %q", p.peek())
	}
	p.off++
	p.lines.noteLine(p.off)
	return nil
}

// parseHeader consumes a '[' or '[[' header line and returns the table
// that subsequent key/value lines should populate.
func (p *parser) parseHeader(root *Table) (*Table, error) {
	startPos := p.pos()
	isArray := p.peekAt(1) == '['
	p.off++
	if isArray {
		p.off++
	}
	p.off = skipSpaceTab(p.src, p.off)
	parts, err := p.parseKeyPath()
	if err != nil {
		return nil, err
	}
	p.off = skipSpaceTab(p.src, p.off)
	if isArray {
		if p.peek() != ']' || p.peekAt(1) != ']' {
			return nil, p.curErr("expected ]] to close array-of-tables header")
		}
		p.off += 2
	} else {
		if p.peek() != ']' {
			return nil, p.curErr("expected ] to close table header")
		}
		p.off++
	}

	owner, err := p.headerDescend(root, parts[:len(parts)-1])
	if err != nil {
		return nil, err
	}
	last := parts[len(parts)-1]

	existing, has := owner.get(last)
	if !isArray {
		if !has {
			t := newTable()
			t.explicit = true
			owner.set(last, t)
			return t, nil
		}
		switch x := existing.(type) {
		case *Table:
			if x.frozen {
				return nil, p.errAt(startPos, "table %q is frozen and cannot be reopened", last)
			}
			if x.explicit {
				return nil, p.errAt(startPos, "table %q redefined", last)
			}
			if x.implicitFromKV {
				return nil, p.errAt(startPos, "table %q was implicitly created by a key/value line and cannot be reopened with a header", last)
			}
			x.explicit = true
			return x, nil
		case *Array:
			return nil, p.errAt(startPos, "table %q was previously defined as an array of tables", last)
		default:
			return nil, p.errAt(startPos, "key %q is not a table", last)
		}
	}

	// [[header]]: append a fresh, mutable table to an array of tables.
	if !has {
		arr := newArray()
		arr.tableArray = true
		owner.set(last, arr)
		t := newTable()
		t.arrayMember = true
		arr.elems = append(arr.elems, t)
		return t, nil
	}
	switch x := existing.(type) {
	case *Array:
		if !x.tableArray {
			return nil, p.errAt(startPos, "key %q is an array, not an array of tables", last)
		}
		t := newTable()
		t.arrayMember = true
		x.elems = append(x.elems, t)
		return t, nil
	case *Table:
		return nil, p.errAt(startPos, "key %q was previously defined as a static table", last)
	default:
		return nil, p.errAt(startPos, "key %q is not a table", last)
	}
}

// parseKeyValueLine consumes `key = value` and assigns value into
// current, creating any missing intermediate tables implicitly.
func (p *parser) parseKeyValueLine(current *Table) error {
	parts, err := p.parseKeyPath()
	if err != nil {
		return err
	}
	p.off = skipSpaceTab(p.src, p.off)
	if p.peek() != '=' {
		return p.curErr("expected '=' after key")
	}
	p.off++
	p.off = skipSpaceTab(p.src, p.off)

	valPos := p.pos()
	val, err := p.parseValue()
	if err != nil {
		return err
	}

	owner, err := p.kvDescend(current, parts[:len(parts)-1])
	if err != nil {
		return err
	}
	last := parts[len(parts)-1]
	if _, exists := owner.get(last); exists {
		return p.errAt(valPos, "key %q already defined", last)
	}
	owner.set(last, val)
	return nil
}

// headerDescend walks all but the final segment of a [header] or
// [[header]] key path from root, creating missing intermediate tables
// (never marked implicitFromKV, since header-created tables remain
// openable) and descending into the last element when it meets an
// array of tables mid-path.
func (p *parser) headerDescend(root *Table, parts []string) (*Table, error) {
	cur := root
	for _, part := range parts {
		v, ok := cur.get(part)
		if !ok {
			child := newTable()
			cur.set(part, child)
			cur = child
			continue
		}
		switch x := v.(type) {
		case *Table:
			if x.frozen {
				return nil, p.curErr("table %q is frozen and cannot be extended", part)
			}
			cur = x
		case *Array:
			if !x.tableArray || len(x.elems) == 0 {
				return nil, p.curErr("key %q is not a table", part)
			}
			cur = x.elems[len(x.elems)-1].(*Table)
		default:
			return nil, p.curErr("key %q is not a table", part)
		}
	}
	return cur, nil
}

// kvDescend walks all but the final segment of a key/value line's key
// path, creating missing intermediate tables marked implicitFromKV.
func (p *parser) kvDescend(current *Table, parts []string) (*Table, error) {
	cur := current
	for _, part := range parts {
		v, ok := cur.get(part)
		if !ok {
			child := newTable()
			child.implicitFromKV = true
			cur.set(part, child)
			cur = child
			continue
		}
		switch x := v.(type) {
		case *Table:
			if x.frozen {
				return nil, p.curErr("table %q is frozen and cannot be extended", part)
			}
			cur = x
		default:
			return nil, p.curErr("key %q is not a table", part)
		}
	}
	return cur, nil
}

// freezeTable recursively marks t and every sub-table reachable through
// it as frozen, implementing the "sealing" step for inline-table
// literals and array-of-table-valued literal array elements.
func freezeTable(t *Table) {
	if t.frozen {
		return
	}
	t.frozen = true
	for _, k := range t.keys {
		switch v := t.vals[k].(type) {
		case *Table:
			freezeTable(v)
		case *Array:
			freezeArray(v)
		}
	}
}

func freezeArray(a *Array) {
	if a.frozen {
		return
	}
	a.frozen = true
	for _, v := range a.elems {
		switch v := v.(type) {
		case *Table:
			freezeTable(v)
		case *Array:
			freezeArray(v)
		}
	}
}
