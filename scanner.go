// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

// This file holds the scanner primitives: position-tracking inspection
// of the source bytes, with no I/O. The plain functions take (src, pos)
// and return pos' or a bool; skipCommentsAndArrayWS is the one parser
// method here, and it advances the parser's offset and line index.

func isBareKeyByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }

func isBinDigit(b byte) bool { return b == '0' || b == '1' }

// isControl reports whether b is a control character illegal inside a
// TOML string body, i.e. every C0 control plus DEL except the ones the
// caller explicitly allows (callers pass allowTab for contexts where \t
// is legal verbatim).
func isControl(b byte, allowTab bool) bool {
	if b == '\t' && allowTab {
		return false
	}
	return b < 0x20 || b == 0x7f
}

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

// byteAt returns the byte at i, or 0 (never a valid TOML byte on its
// own) when i runs past the end of src.
func byteAt(src []byte, i int) byte {
	if i < 0 || i >= len(src) {
		return 0
	}
	return src[i]
}

// skipChars advances pos while the byte at pos is in the given set,
// returning the new position.
func skipChars(src []byte, pos int, in func(byte) bool) int {
	for pos < len(src) && in(src[pos]) {
		pos++
	}
	return pos
}

// skipSpaceTab advances over runs of ' ' and '\t' only (never newlines);
// used between tokens on a single logical line (header brackets, '=',
// dots in a key path, inline-table commas).
func skipSpaceTab(src []byte, pos int) int {
	return skipChars(src, pos, isSpaceOrTab)
}

// This package normalizes CRLF to LF up front (see normalizeNewlines),
// so by the time the scanner runs, a newline is always exactly one '\n'
// byte; skipComment and skipCommentsAndArrayWS below rely on that.

// skipComment consumes a '#' comment through, but not including, the
// terminating newline (or EOF). It rejects control bytes other than
// '\t' appearing inside the comment body.
func skipComment(src []byte, pos int) (int, error) {
	if pos >= len(src) || src[pos] != '#' {
		return pos, nil
	}
	pos++
	newPos, ok := skipUntil(src, pos, '\n', func(b byte) bool { return isControl(b, true) })
	if !ok && newPos < len(src) {
		return newPos, errIllegalControlChar
	}
	return newPos, nil
}

var errIllegalControlChar = &sentinelErr{"illegal control character in comment"}

// sentinelErr lets scanner primitives signal a specific failure reason
// without depending on the parser (and its position/name) to build a
// *ParseError; callers that have a *parser promote it with curErr/errAt.
type sentinelErr struct{ msg string }

func (e *sentinelErr) Error() string { return e.msg }

// skipCommentsAndArrayWS skips whitespace, newlines and '#' comments,
// in any mixture and any number of times; legal between array elements
// and around inline-table-free array brackets. It does not recurse into
// inline tables or nested arrays, since the caller calls it between
// calls to parseValue.
func (p *parser) skipCommentsAndArrayWS() error {
	for {
		start := p.off
		for p.off < len(p.src) {
			switch p.src[p.off] {
			case ' ', '\t', '\r':
				p.off++
			case '\n':
				p.off++
				p.lines.noteLine(p.off)
			default:
				goto afterWS
			}
		}
	afterWS:
		if p.off < len(p.src) && p.src[p.off] == '#' {
			newOff, err := skipComment(p.src, p.off)
			if err != nil {
				return p.curErr("%s", err.Error())
			}
			p.off = newOff
			continue
		}
		if p.off == start {
			return nil
		}
	}
}

// skipUntil advances until the expect byte is found, stopping short (at
// the offending byte) if any errOn byte is seen first; the caller tells
// the two failure shapes apart by checking whether the returned
// position reached len(src) (ran out of input, not an error here) or
// stopped earlier (an errOn byte was hit). Used by skipComment to scan
// a comment body to its terminating newline without a second pass to
// classify why it stopped short.
func skipUntil(src []byte, pos int, expect byte, errOn func(byte) bool) (int, bool) {
	for pos < len(src) {
		b := src[pos]
		if b == expect {
			return pos, true
		}
		if errOn != nil && errOn(b) {
			return pos, false
		}
		pos++
	}
	return pos, false
}
