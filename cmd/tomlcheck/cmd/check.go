// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	toml "github.com/hukkin/tomlgo"
	"github.com/hukkin/tomlgo/fileutil"
)

var strict bool

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Parse each path and report the first error found, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"."}
		}
		paths, err := collectDocuments(args)
		if err != nil {
			return err
		}
		width := 0
		for _, p := range paths {
			if w := runewidth.StringWidth(p); w > width {
				width = w
			}
		}

		var failures int
		for _, p := range paths {
			log.WithField("path", p).Debug("checking")
			if err := checkOne(p); err != nil {
				failures++
				pad := strings.Repeat(" ", width-runewidth.StringWidth(p))
				fmt.Printf("%s%s  FAIL  %s\n", p, pad, err)
			} else if verbose {
				pad := strings.Repeat(" ", width-runewidth.StringWidth(p))
				fmt.Printf("%s%s  OK\n", p, pad)
			}
		}
		if failures > 0 {
			return errors.Errorf("%d of %d documents failed to parse", failures, len(paths))
		}
		return nil
	},
}

func checkOne(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read")
	}
	if fileutil.HasBOM(data) && strict {
		return errors.New("document begins with a byte-order mark")
	}
	_, err = toml.ParseBytes(data, toml.WithName(path))
	return err
}

// collectDocuments expands paths into a flat list of files: a
// directory argument is walked recursively for files
// fileutil.CouldBeDocument reports as ConfIsDocument (a ".toml"
// extension; extensionless ConfMaybeDocument files are skipped), a file
// argument is taken as-is regardless of its extension.
func collectDocuments(paths []string) ([]string, error) {
	var out []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if fileutil.CouldBeDocument(d) == fileutil.ConfIsDocument {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
