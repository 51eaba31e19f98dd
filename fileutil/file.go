// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// Package fileutil contains code to work with TOML documents on disk,
// as opposed to the in-memory bytes or text the parser itself takes.
package fileutil

import (
	"io/fs"
	"os"
	"strings"
)

// bom is the three-byte UTF-8 byte-order mark. TOML documents must not
// begin with one.
var bom = []byte{0xEF, 0xBB, 0xBF}

// HasBOM reports whether bs begins with a UTF-8 byte-order mark.
func HasBOM(bs []byte) bool {
	return len(bs) >= len(bom) && bs[0] == bom[0] && bs[1] == bom[1] && bs[2] == bom[2]
}

// DocumentConfidence describes how likely a path is to hold a TOML
// document, from complete certainty that it does not to complete
// certainty that it does.
type DocumentConfidence int

const (
	// ConfNotDocument describes paths which are definitely not TOML
	// documents, such as directories or files with an unrelated extension.
	ConfNotDocument DocumentConfidence = iota

	// ConfMaybeDocument describes files with no extension at all; a
	// caller that wants a final answer has to sniff the file's contents
	// for a byte-order mark or read it in full.
	ConfMaybeDocument

	// ConfIsDocument describes files with the ".toml" extension.
	ConfIsDocument
)

// CouldBeDocument reports how likely a directory entry is to be a TOML
// document. It discards directories, symlinks, hidden files and files
// with a non-".toml" extension.
func CouldBeDocument(entry fs.DirEntry) DocumentConfidence {
	name := entry.Name()
	switch {
	case entry.IsDir(), strings.HasPrefix(name, "."):
		return ConfNotDocument
	case entry.Type()&os.ModeSymlink != 0:
		return ConfNotDocument
	case strings.HasSuffix(name, ".toml"):
		return ConfIsDocument
	case strings.LastIndexByte(name, '.') > 0:
		return ConfNotDocument // different extension
	default:
		return ConfMaybeDocument
	}
}
