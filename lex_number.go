// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"strconv"
	"strings"
)

// parseNumber consumes an integer or float literal (decimal, or a
// 0x/0o/0b-prefixed integer), applying TOML's underscore-placement and
// leading-zero rules, and converts the result through strconv or the
// pluggable ParseFloat hook.
func (p *parser) parseNumber(startPos Pos) (any, error) {
	start := p.off
	signed := false
	if b := p.peek(); b == '+' || b == '-' {
		signed = true
		p.off++
	}
	if hasKeyword(p.src, p.off, "inf") {
		p.off += 3
		return p.convertFloat(startPos, string(p.src[start:p.off]))
	}
	if hasKeyword(p.src, p.off, "nan") {
		p.off += 3
		return p.convertFloat(startPos, string(p.src[start:p.off]))
	}

	if !signed && p.peek() == '0' {
		switch p.peekAt(1) {
		case 'x':
			return p.parsePrefixedInt(startPos, 16, isHexDigit)
		case 'o':
			return p.parsePrefixedInt(startPos, 8, isOctDigit)
		case 'b':
			return p.parsePrefixedInt(startPos, 2, isBinDigit)
		}
	}

	if p.peek() == '0' {
		p.off++
		if isDigit(p.peek()) {
			return nil, p.errAt(startPos, "leading zeros are not allowed in decimal numbers")
		}
	} else if isDigit(p.peek()) {
		if err := p.consumeDigitRun(startPos); err != nil {
			return nil, err
		}
	} else {
		return nil, p.errAt(startPos, "invalid number")
	}

	isFloat := false
	if p.peek() == '.' {
		isFloat = true
		p.off++
		if !isDigit(p.peek()) {
			return nil, p.errAt(startPos, "expected a digit after the decimal point")
		}
		if err := p.consumeDigitRun(startPos); err != nil {
			return nil, err
		}
	}
	if b := p.peek(); b == 'e' || b == 'E' {
		isFloat = true
		p.off++
		if b := p.peek(); b == '+' || b == '-' {
			p.off++
		}
		if !isDigit(p.peek()) {
			return nil, p.errAt(startPos, "expected a digit in the exponent")
		}
		if err := p.consumeDigitRun(startPos); err != nil {
			return nil, err
		}
	}

	lexeme := stripUnderscores(string(p.src[start:p.off]))
	if isFloat {
		return p.convertFloat(startPos, lexeme)
	}
	return p.convertInt(startPos, lexeme)
}

// consumeDigitRun advances over a run of digits that may contain single
// underscores between digits (never leading, trailing, or doubled).
func (p *parser) consumeDigitRun(startPos Pos) error {
	if !isDigit(p.peek()) {
		return p.errAt(startPos, "expected a digit")
	}
	lastWasDigit := false
	for {
		switch b := p.peek(); {
		case isDigit(b):
			p.off++
			lastWasDigit = true
		case b == '_':
			if !lastWasDigit || !isDigit(p.peekAt(1)) {
				return p.errAt(startPos, "illegal underscore placement")
			}
			p.off++
			lastWasDigit = false
		default:
			return nil
		}
	}
}

// parsePrefixedInt consumes a 0x/0o/0b-prefixed integer literal and
// interprets its digits as the bit pattern of a 64-bit integer, so e.g.
// 0xFFFFFFFFFFFFFFFF parses as -1.
func (p *parser) parsePrefixedInt(startPos Pos, base int, digit func(byte) bool) (any, error) {
	p.off += 2 // "0x" / "0o" / "0b"
	digStart := p.off
	if !digit(p.peek()) {
		return nil, p.errAt(startPos, "expected a digit after the numeric prefix")
	}
	lastWasDigit := false
	for {
		switch b := p.peek(); {
		case digit(b):
			p.off++
			lastWasDigit = true
		case b == '_':
			if !lastWasDigit || !digit(p.peekAt(1)) {
				return nil, p.errAt(startPos, "illegal underscore placement")
			}
			p.off++
			lastWasDigit = false
		default:
			goto done
		}
	}
done:
	digits := stripUnderscores(string(p.src[digStart:p.off]))
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return nil, p.errAt(startPos, "integer literal out of range for a 64-bit integer")
	}
	return int64(v), nil
}

func (p *parser) convertInt(startPos Pos, lexeme string) (any, error) {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, p.errAt(startPos, "integer literal %q out of range for a 64-bit signed integer", lexeme)
	}
	return v, nil
}

// convertFloat runs lexeme through the parser's ParseFloat hook and
// rejects a *Table or *Array result, per the hook's documented contract.
func (p *parser) convertFloat(startPos Pos, lexeme string) (any, error) {
	v, err := p.parseFloat(lexeme)
	if err != nil {
		return nil, p.errAt(startPos, "invalid float %q: %s", lexeme, err)
	}
	switch v.(type) {
	case *Table, *Array:
		return nil, p.errAt(startPos, "parse_float must not return a table or array")
	}
	return v, nil
}

func stripUnderscores(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

// hasKeyword reports whether src[i:] begins with kw and the byte right
// after it (if any) cannot extend a bare key, so "infinity" is not
// mistaken for "inf" followed by garbage.
func hasKeyword(src []byte, i int, kw string) bool {
	if i+len(kw) > len(src) || string(src[i:i+len(kw)]) != kw {
		return false
	}
	return !isBareKeyByte(byteAt(src, i+len(kw)))
}
