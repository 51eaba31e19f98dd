// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

// parseValue consumes one TOML value: a string, array, inline table,
// boolean, number or date/time. It is the single entry point every
// value-bearing context (key/value lines, array elements, inline-table
// pairs) calls through.
func (p *parser) parseValue() (any, error) {
	startPos := p.pos()
	if p.eof() {
		return nil, p.curErr("expected a value, found end of document")
	}
	switch b := p.peek(); {
	case b == '"' || b == '\'':
		return p.parseStringValue()
	case b == '[':
		return p.parseArray()
	case b == '{':
		return p.parseInlineTable()
	case b == 't' && hasKeyword(p.src, p.off, "true"):
		p.off += 4
		return true, nil
	case b == 'f' && hasKeyword(p.src, p.off, "false"):
		p.off += 5
		return false, nil
	case b == 'i' && hasKeyword(p.src, p.off, "inf"):
		p.off += 3
		return p.convertFloat(startPos, "inf")
	case b == 'n' && hasKeyword(p.src, p.off, "nan"):
		p.off += 3
		return p.convertFloat(startPos, "nan")
	case isDigit(b):
		if p.looksLikeDateTime() {
			return p.parseDateTime(startPos)
		}
		return p.parseNumber(startPos)
	case b == '+' || b == '-':
		return p.parseNumber(startPos)
	default:
		return nil, p.curErr("unexpected character %q, expected a value", b)
	}
}

// parseArray consumes a [ ... ] literal array. Whitespace, newlines and
// comments are permitted around elements and commas; a trailing comma
// before the closing ']' is allowed. The array is frozen the instant
// its closing bracket is reached: there is no TOML syntax that ever
// appends to a literal array afterwards.
func (p *parser) parseArray() (*Array, error) {
	startPos := p.pos()
	p.off++ // '['
	arr := newArray()
	for {
		if err := p.skipCommentsAndArrayWS(); err != nil {
			return nil, err
		}
		if p.eof() {
			return nil, p.errAt(startPos, "unterminated array")
		}
		if p.peek() == ']' {
			p.off++
			freezeArray(arr)
			return arr, nil
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.elems = append(arr.elems, val)

		if err := p.skipCommentsAndArrayWS(); err != nil {
			return nil, err
		}
		if p.eof() {
			return nil, p.errAt(startPos, "unterminated array")
		}
		switch p.peek() {
		case ',':
			p.off++
			continue
		case ']':
			p.off++
			freezeArray(arr)
			return arr, nil
		default:
			return nil, p.curErr("expected ',' or ']' in array")
		}
	}
}

// parseInlineTable consumes a { ... } literal. Dotted keys are allowed
// within it, newlines and comments are not, and a trailing comma before
// the closing '}' is rejected. The resulting table, and every
// sub-table its dotted keys created, is frozen as soon as the closing
// '}' is reached.
func (p *parser) parseInlineTable() (*Table, error) {
	startPos := p.pos()
	p.off++ // '{'
	t := newTable()
	p.off = skipSpaceTab(p.src, p.off)
	if p.peek() == '}' {
		p.off++
		freezeTable(t)
		return t, nil
	}
	for {
		p.off = skipSpaceTab(p.src, p.off)
		if p.eof() {
			return nil, p.errAt(startPos, "unterminated inline table")
		}
		parts, err := p.parseKeyPath()
		if err != nil {
			return nil, err
		}
		p.off = skipSpaceTab(p.src, p.off)
		if p.peek() != '=' {
			return nil, p.curErr("expected '=' after key")
		}
		p.off++
		p.off = skipSpaceTab(p.src, p.off)

		valPos := p.pos()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		owner, err := p.inlineDescend(t, parts[:len(parts)-1])
		if err != nil {
			return nil, err
		}
		last := parts[len(parts)-1]
		if _, exists := owner.get(last); exists {
			return nil, p.errAt(valPos, "key %q already defined", last)
		}
		owner.set(last, val)

		p.off = skipSpaceTab(p.src, p.off)
		switch p.peek() {
		case ',':
			p.off++
			continue
		case '}':
			p.off++
			freezeTable(t)
			return t, nil
		default:
			return nil, p.curErr("expected ',' or '}' in inline table")
		}
	}
}

// inlineDescend walks all but the final segment of an inline-table
// pair's dotted key, creating missing intermediate tables. Unlike
// headerDescend, it never meets an array of tables (TOML forbids
// defining one inside an inline table), so the only failure modes are
// a frozen table (e.g. the value side of an earlier pair in the same
// inline table) or a non-table value.
func (p *parser) inlineDescend(owner *Table, parts []string) (*Table, error) {
	cur := owner
	for _, part := range parts {
		v, ok := cur.get(part)
		if !ok {
			child := newTable()
			cur.set(part, child)
			cur = child
			continue
		}
		x, ok := v.(*Table)
		if !ok {
			return nil, p.curErr("key %q is not a table", part)
		}
		if x.frozen {
			return nil, p.curErr("key %q is frozen and cannot be extended", part)
		}
		cur = x
	}
	return cur, nil
}
