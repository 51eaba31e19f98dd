// Copyright (c) 2025, Ville Skyttä <ville.skytta@iki.fi>
// See LICENSE for licensing information

package fileutil

import (
	"io/fs"
	"testing"
)

func TestHasBOM(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   []byte
		want bool
	}{
		{[]byte("\xEF\xBB\xBFa = 1"), true},
		{[]byte("a = 1"), false},
		{[]byte("\xEF\xBB"), false},
		{[]byte(""), false},
	}
	for _, test := range tests {
		if got := HasBOM(test.in); got != test.want {
			t.Fatalf("HasBOM(%q): want %v, got %v", test.in, test.want, got)
		}
	}
}

type fakeDirEntry struct {
	name  string
	isDir bool
}

func (e fakeDirEntry) Name() string               { return e.name }
func (e fakeDirEntry) IsDir() bool                 { return e.isDir }
func (e fakeDirEntry) Type() fs.FileMode           { return 0 }
func (e fakeDirEntry) Info() (fs.FileInfo, error)  { return nil, nil }

func TestCouldBeDocument(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want DocumentConfidence
	}{
		{"config.toml", ConfIsDocument},
		{"Cargo.toml", ConfIsDocument},
		{".hidden.toml", ConfNotDocument},
		{"README.md", ConfNotDocument},
		{"Makefile", ConfMaybeDocument},
	}
	for _, test := range tests {
		got := CouldBeDocument(fakeDirEntry{name: test.name})
		if got != test.want {
			t.Fatalf("CouldBeDocument(%q): want %v, got %v", test.name, test.want, got)
		}
	}
}
