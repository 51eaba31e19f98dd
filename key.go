// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

// parseKeyPath consumes a dotted key path: one or more bare or quoted
// key segments joined by '.', with optional spaces/tabs (never
// newlines) around each dot. It is shared verbatim by table headers,
// array-of-table headers, key/value lines and inline-table pairs; the
// differences between those four contexts live entirely in how the
// caller resolves the resulting []string against a *Table.
func (p *parser) parseKeyPath() ([]string, error) {
	first, err := p.parseKeySegment()
	if err != nil {
		return nil, err
	}
	parts := []string{first}
	for {
		save := p.off
		p.off = skipSpaceTab(p.src, p.off)
		if p.peek() != '.' {
			p.off = save
			return parts, nil
		}
		p.off++
		p.off = skipSpaceTab(p.src, p.off)
		seg, err := p.parseKeySegment()
		if err != nil {
			return nil, err
		}
		parts = append(parts, seg)
	}
}

// parseKeySegment consumes a single bare or quoted key segment. Quoted
// segments reuse the basic/literal single-line string lexers; a
// triple-quoted opening is rejected, since TOML keys are never
// multi-line strings.
func (p *parser) parseKeySegment() (string, error) {
	switch p.peek() {
	case '"':
		if bytesHavePrefixAt(p.src, p.off, `"""`) {
			return "", p.curErr("a key cannot be a multi-line string")
		}
		return p.parseBasicString()
	case '\'':
		if bytesHavePrefixAt(p.src, p.off, "'''") {
			return "", p.curErr("a key cannot be a multi-line string")
		}
		return p.parseLiteralString()
	default:
		b := p.peek()
		if !isBareKeyByte(b) {
			if p.eof() {
				return "", p.curErr("expected a key, found end of document")
			}
			return "", p.curErr("expected a key, found %q", b)
		}
		start := p.off
		p.off = skipChars(p.src, p.off, isBareKeyByte)
		return string(p.src[start:p.off]), nil
	}
}
