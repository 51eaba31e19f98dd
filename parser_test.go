// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package toml

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestParseScalars(t *testing.T) {
	t.Parallel()
	tests := [...]struct {
		in   string
		key  string
		want any
	}{
		{"a = 1\n", "a", int64(1)},
		{"a = -17\n", "a", int64(-17)},
		{"a = 1_000_000\n", "a", int64(1000000)},
		{"a = 0xDEAD_BEEF\n", "a", int64(0xDEADBEEF)},
		{"a = 0o17\n", "a", int64(15)},
		{"a = 0b1010\n", "a", int64(10)},
		{"a = true\n", "a", true},
		{"a = false\n", "a", false},
		{`a = "hi"` + "\n", "a", "hi"},
		{`a = 'hi\n'` + "\n", "a", `hi\n`},
		{"a = 1979-05-27\n", "a", LocalDate{1979, 5, 27}},
		{"a = 07:32:00\n", "a", LocalTime{7, 32, 0, 0}},
	}
	for _, test := range tests {
		test := test
		t.Run("", func(t *testing.T) {
			t.Parallel()
			c := qt.New(t)
			doc, err := Parse(test.in)
			c.Assert(err, qt.IsNil)
			got, ok := doc.Get(test.key)
			c.Assert(ok, qt.IsTrue)
			c.Assert(got, qt.Equals, test.want)
		})
	}
}

func TestParseFloats(t *testing.T) {
	t.Parallel()
	tests := [...]struct {
		in   string
		want float64
	}{
		{"a = 3.14\n", 3.14},
		{"a = -0.01\n", -0.01},
		{"a = 5e+22\n", 5e22},
		{"a = 1e6\n", 1e6},
		{"a = 6.626e-34\n", 6.626e-34},
	}
	for _, test := range tests {
		test := test
		t.Run("", func(t *testing.T) {
			t.Parallel()
			c := qt.New(t)
			doc, err := Parse(test.in)
			c.Assert(err, qt.IsNil)
			got, _ := doc.Get("a")
			c.Assert(got, qt.Equals, test.want)
		})
	}
}

func TestParseStringForms(t *testing.T) {
	t.Parallel()
	tests := [...]struct {
		in   string
		want string
	}{
		{`a = "hi\tthere"` + "\n", "hi\tthere"},
		{`a = "é"` + "\n", "é"},
		{"a = \"\"\"\nhi\nthere\"\"\"\n", "hi\nthere"},
		{"a = \"\"\"hi \\\n   there\"\"\"\n", "hi there"},
		{"a = '''raw\\nstring'''\n", `raw\nstring`},
	}
	for _, test := range tests {
		test := test
		t.Run("", func(t *testing.T) {
			t.Parallel()
			c := qt.New(t)
			doc, err := Parse(test.in)
			c.Assert(err, qt.IsNil)
			got, _ := doc.Get("a")
			c.Assert(got, qt.Equals, test.want)
		})
	}
}

func TestParseTables(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	doc, err := Parse("[a.b]\nc = 1\n\n[a]\nd = 2\n")
	c.Assert(err, qt.IsNil)

	a, ok := doc.Get("a")
	c.Assert(ok, qt.IsTrue)
	aTable := a.(*Table)
	d, _ := aTable.Get("d")
	c.Assert(d, qt.Equals, int64(2))

	b, _ := aTable.Get("b")
	bTable := b.(*Table)
	cVal, _ := bTable.Get("c")
	c.Assert(cVal, qt.Equals, int64(1))
}

func TestParseArrayOfTables(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	doc, err := Parse("[[fruit]]\nname = \"apple\"\n\n[[fruit]]\nname = \"banana\"\n")
	c.Assert(err, qt.IsNil)

	fruit, ok := doc.Get("fruit")
	c.Assert(ok, qt.IsTrue)
	arr := fruit.(*Array)
	c.Assert(arr.Len(), qt.Equals, 2)

	first := arr.Values()[0].(*Table)
	name, _ := first.Get("name")
	c.Assert(name, qt.Equals, "apple")
}

func TestParseInlineTableAndArray(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	doc, err := Parse(`point = { x = 1, y = 2 }` + "\n" + `nums = [1, 2, 3]` + "\n")
	c.Assert(err, qt.IsNil)

	point, _ := doc.Get("point")
	pTable := point.(*Table)
	x, _ := pTable.Get("x")
	c.Assert(x, qt.Equals, int64(1))

	nums, _ := doc.Get("nums")
	arr := nums.(*Array)
	c.Assert(arr.Values(), qt.DeepEquals, []any{int64(1), int64(2), int64(3)})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := [...]struct {
		in      string
		wantErr string
	}{
		{"a = 1\na = 2\n", `.*key "a" already defined.*`},
		{"[a]\n[a]\n", `.*table "a" redefined.*`},
		{"a = 01\n", `.*leading zeros.*`},
		{"a = 1__0\n", `.*underscore.*`},
		{"a = 1979-13-01\n", `.*invalid calendar date.*`},
		{"a = \"unterminated\n", `.*newline in single-line string.*`},
		{"key\n", `.*expected '='.*`},
	}
	for _, test := range tests {
		test := test
		t.Run("", func(t *testing.T) {
			t.Parallel()
			c := qt.New(t)
			_, err := Parse(test.in)
			c.Assert(err, qt.ErrorMatches, test.wantErr)
		})
	}
}

func TestRedefinitionOfImplicitKVTable(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	_, err := Parse("a.b = 1\n[a]\n")
	c.Assert(err, qt.ErrorMatches, `.*implicitly created by a key/value line.*`)
}

func TestFrozenInlineTableRejectsDottedExtension(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	_, err := Parse("a = { b = 1 }\na.c = 2\n")
	c.Assert(err, qt.ErrorMatches, `.*frozen.*`)
}

func TestParseBytesRejectsBOM(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	_, err := ParseBytes([]byte("\xEF\xBB\xBFa = 1\n"))
	c.Assert(err, qt.ErrorMatches, ".*byte-order mark.*")
}

func TestWithParseFloat(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	doc, err := Parse("a = 3.5\n", WithParseFloat(func(lexeme string) (any, error) {
		return "float:" + lexeme, nil
	}))
	c.Assert(err, qt.IsNil)
	got, _ := doc.Get("a")
	c.Assert(got, qt.Equals, "float:3.5")
}

func TestWithParseFloatRejectsTableOrArray(t *testing.T) {
	t.Parallel()
	c := qt.New(t)
	_, err := Parse("a = 3.5\n", WithParseFloat(func(lexeme string) (any, error) {
		return newTable(), nil
	}))
	c.Assert(err, qt.ErrorMatches, ".*parse_float must not return a table or array.*")
}
