// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import "strconv"

// isNDigits reports whether src[i:i+n] exists and is entirely digits.
func isNDigits(src []byte, i, n int) bool {
	if i < 0 || i+n > len(src) {
		return false
	}
	for k := 0; k < n; k++ {
		if !isDigit(src[i+k]) {
			return false
		}
	}
	return true
}

// looksLikeDateTime reports whether the current position begins a
// date/time value rather than a plain number: either a YYYY-MM-DD date
// part or a bare HH:MM local-time part.
func (p *parser) looksLikeDateTime() bool {
	src, i := p.src, p.off
	if isNDigits(src, i, 4) && byteAt(src, i+4) == '-' &&
		isNDigits(src, i+5, 2) && byteAt(src, i+7) == '-' &&
		isNDigits(src, i+8, 2) {
		return true
	}
	return isNDigits(src, i, 2) && byteAt(src, i+2) == ':' && isNDigits(src, i+3, 2)
}

// parseDateTime consumes one of LocalDate, LocalTime, LocalDateTime or
// OffsetDateTime, dispatching on whether a date part, a time part, or
// both separated by 'T'/'t'/' ' are present.
func (p *parser) parseDateTime(startPos Pos) (any, error) {
	if isNDigits(p.src, p.off, 4) && byteAt(p.src, p.off+4) == '-' {
		date, err := p.parseLocalDatePart(startPos)
		if err != nil {
			return nil, err
		}
		sep := p.peek()
		hasTime := sep == 'T' || sep == 't' ||
			(sep == ' ' && isNDigits(p.src, p.off+1, 2) && byteAt(p.src, p.off+3) == ':')
		if !hasTime {
			return date, nil
		}
		p.off++
		timePart, err := p.parseLocalTimePart(startPos)
		if err != nil {
			return nil, err
		}
		ldt := LocalDateTime{Date: date, Time: timePart}

		switch p.peek() {
		case 'Z', 'z':
			p.off++
			return OffsetDateTime{LocalDateTime: ldt, OffsetZ: true}, nil
		case '+', '-':
			offMin, err := p.parseOffset(startPos)
			if err != nil {
				return nil, err
			}
			return OffsetDateTime{LocalDateTime: ldt, OffsetMinutes: offMin}, nil
		default:
			return ldt, nil
		}
	}

	return p.parseLocalTimePart(startPos)
}

func (p *parser) readDigits(n int) int {
	v := 0
	for i := 0; i < n; i++ {
		v = v*10 + int(p.src[p.off]-'0')
		p.off++
	}
	return v
}

func (p *parser) parseLocalDatePart(startPos Pos) (LocalDate, error) {
	year := p.readDigits(4)
	p.off++ // '-'
	month := p.readDigits(2)
	p.off++ // '-'
	day := p.readDigits(2)
	if !validDate(year, month, day) {
		return LocalDate{}, p.errAt(startPos, "invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return LocalDate{Year: year, Month: month, Day: day}, nil
}

func (p *parser) parseLocalTimePart(startPos Pos) (LocalTime, error) {
	if !isNDigits(p.src, p.off, 2) || byteAt(p.src, p.off+2) != ':' || !isNDigits(p.src, p.off+3, 2) {
		return LocalTime{}, p.errAt(startPos, "invalid time of day")
	}
	hour := p.readDigits(2)
	p.off++ // ':'
	minute := p.readDigits(2)
	if p.peek() != ':' || !isNDigits(p.src, p.off+1, 2) {
		return LocalTime{}, p.errAt(startPos, "invalid time of day: seconds are required")
	}
	p.off++ // ':'
	second := p.readDigits(2)
	nsec := 0
	if p.peek() == '.' {
		p.off++
		fracStart := p.off
		for isDigit(p.peek()) {
			p.off++
		}
		if p.off == fracStart {
			return LocalTime{}, p.errAt(startPos, "expected digits after the decimal point in a time")
		}
		nsec = fracToNanosTruncatedToMicros(string(p.src[fracStart:p.off]))
	}
	if !validTime(hour, minute, second) {
		return LocalTime{}, p.errAt(startPos, "invalid time %02d:%02d:%02d", hour, minute, second)
	}
	return LocalTime{Hour: hour, Minute: minute, Second: second, Nanosecond: nsec}, nil
}

func (p *parser) parseOffset(startPos Pos) (int, error) {
	sign := 1
	if p.peek() == '-' {
		sign = -1
	}
	p.off++
	if !isNDigits(p.src, p.off, 2) || byteAt(p.src, p.off+2) != ':' || !isNDigits(p.src, p.off+3, 2) {
		return 0, p.errAt(startPos, "invalid UTC offset")
	}
	hh := p.readDigits(2)
	p.off++ // ':'
	mm := p.readDigits(2)
	if hh > 23 || mm > 59 {
		return 0, p.errAt(startPos, "invalid UTC offset")
	}
	return sign * (hh*60 + mm), nil
}

func validDate(y, m, d int) bool {
	if m < 1 || m > 12 || d < 1 {
		return false
	}
	return d <= daysInMonth(y, m)
}

func daysInMonth(y, m int) int {
	switch m {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(y) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(y int) bool { return y%4 == 0 && (y%100 != 0 || y%400 == 0) }

// validTime allows a leap second (60) in the seconds place, as TOML's
// ABNF does, without attempting to confirm an actual leap second.
func validTime(h, m, s int) bool { return h <= 23 && m <= 59 && s <= 60 }

// fracToNanosTruncatedToMicros converts a run of fractional-second
// digits to nanoseconds, discarding anything finer than a microsecond.
func fracToNanosTruncatedToMicros(frac string) int {
	digits := frac
	if len(digits) > 9 {
		digits = digits[:9]
	}
	for len(digits) < 9 {
		digits += "0"
	}
	n, _ := strconv.Atoi(digits)
	return (n / 1000) * 1000
}
