// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package floatconv provides a toml.ParseFloat implementation backed by
// github.com/shopspring/decimal, for callers that want exact decimal
// arithmetic on TOML floats instead of the default float64 rounding.
package floatconv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal parses lexeme as a github.com/shopspring/decimal.Decimal. It
// implements the toml.ParseFloat signature, so it's meant to be passed
// to toml.WithParseFloat.
//
// inf and nan have no decimal representation; Decimal rejects them
// with an error rather than silently rounding to zero or a sentinel.
func Decimal(lexeme string) (any, error) {
	switch strings.TrimLeft(lexeme, "+-") {
	case "inf", "nan":
		return nil, &unrepresentableError{lexeme}
	}
	return decimal.NewFromString(lexeme)
}

type unrepresentableError struct{ lexeme string }

func (e *unrepresentableError) Error() string {
	return "decimal: " + e.lexeme + " has no exact decimal representation"
}
