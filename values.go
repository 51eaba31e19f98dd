// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import "fmt"

// Table is a TOML table: an insertion-ordered mapping from key to value.
// Values are one of *Table, *Array, string, int64, the ParseFloat
// result type (float64 by default), bool, OffsetDateTime, LocalDateTime,
// LocalDate or LocalTime.
//
// The zero value is not usable; Tables are only produced by Parse and
// ParseBytes. Provenance bookkeeping (explicit, frozen, arrayMember,
// implicitFromKV) is unexported: it drives the document assembler's
// redefinition and freezing rules but is never part of the public shape.
type Table struct {
	keys []string
	vals map[string]any

	explicit       bool
	frozen         bool
	arrayMember    bool
	implicitFromKV bool
}

func newTable() *Table {
	return &Table{vals: make(map[string]any)}
}

// Keys returns the table's direct keys in the order they were first
// assigned.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Get returns the value directly held at key, if any.
func (t *Table) Get(key string) (any, bool) {
	v, ok := t.vals[key]
	return v, ok
}

// Len reports the number of direct keys in the table.
func (t *Table) Len() int { return len(t.keys) }

func (t *Table) get(key string) (any, bool) {
	v, ok := t.vals[key]
	return v, ok
}

// set records a brand new key; callers must have already checked that
// the key does not exist (direct-assignment duplicate detection happens
// at the call site, since the error message differs by context).
func (t *Table) set(key string, v any) {
	if _, exists := t.vals[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = v
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(%d keys)", len(t.keys))
}

// Array is a TOML array: an ordered, possibly heterogeneous sequence of
// values. An Array that backs an array-of-tables (created by repeated
// [[header]] lines) reports tableArray true and stays open to further
// appends from later [[header]] lines; a literal array ([1, 2, 3]) is
// frozen the moment its closing ']' is reached.
type Array struct {
	elems      []any
	frozen     bool
	tableArray bool
}

func newArray() *Array {
	return &Array{}
}

// Values returns the array's elements, in order.
func (a *Array) Values() []any {
	out := make([]any, len(a.elems))
	copy(out, a.elems)
	return out
}

// Len reports the number of elements in the array.
func (a *Array) Len() int { return len(a.elems) }

func (a *Array) String() string {
	return fmt.Sprintf("Array(%d elems)", len(a.elems))
}

// LocalDate is a calendar date with no time-of-day or offset component,
// e.g. 1979-05-27.
type LocalDate struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LocalTime is a time-of-day with no date or offset component, e.g.
// 07:32:00.999999. Nanosecond is truncated to microsecond precision by
// the parser, per spec.
type LocalTime struct {
	Hour, Minute, Second, Nanosecond int
}

func (t LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond > 0 {
		s += fmt.Sprintf(".%06d", t.Nanosecond/1000)
	}
	return s
}

// LocalDateTime combines LocalDate and LocalTime with no offset, e.g.
// 1979-05-27T07:32:00.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

func (dt LocalDateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

// OffsetDateTime combines LocalDateTime with a UTC offset, e.g.
// 1979-05-27T07:32:00-07:00 or 1979-05-27T07:32:00Z.
type OffsetDateTime struct {
	LocalDateTime
	// OffsetMinutes is the offset from UTC in minutes, e.g. -420 for
	// -07:00. OffsetZ is true when the document spelled the offset "Z"
	// or "z" rather than a numeric +-HH:MM form (both mean zero offset).
	OffsetMinutes int
	OffsetZ       bool
}

func (dt OffsetDateTime) String() string {
	if dt.OffsetZ {
		return dt.LocalDateTime.String() + "Z"
	}
	sign := byte('+')
	m := dt.OffsetMinutes
	if m < 0 {
		sign, m = '-', -m
	}
	return fmt.Sprintf("%s%c%02d:%02d", dt.LocalDateTime.String(), sign, m/60, m%60)
}
