// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package toml implements a parser for TOML v1.0.0 documents.
//
// The two public entry points are Parse and ParseBytes. Both decode a
// document into a root *Table: a tree of nested tables, arrays, strings,
// integers, floats, booleans and date/time values. Neither preserves
// comments, whitespace or key order beyond what is needed for Table's
// own deterministic Keys() ordering, and neither supports writing TOML
// back out; this package only reads.
package toml
