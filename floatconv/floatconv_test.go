// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package floatconv

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/shopspring/decimal"

	toml "github.com/hukkin/tomlgo"
)

func TestDecimalViaParser(t *testing.T) {
	c := qt.New(t)
	doc, err := toml.Parse("x = 3.140\ny = -12\n", toml.WithParseFloat(Decimal))
	c.Assert(err, qt.IsNil)

	x, _ := doc.Get("x")
	c.Assert(x.(decimal.Decimal).String(), qt.Equals, "3.14")

	// integers are untouched by the ParseFloat hook.
	y, _ := doc.Get("y")
	c.Assert(y, qt.Equals, int64(-12))
}

func TestDecimalRejectsInfAndNaN(t *testing.T) {
	c := qt.New(t)
	_, err := toml.Parse("x = inf\n", toml.WithParseFloat(Decimal))
	c.Assert(err, qt.ErrorMatches, ".*no exact decimal representation.*")
}
