// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	toml "github.com/hukkin/tomlgo"
)

var fmtErrorsCmd = &cobra.Command{
	Use:   "fmt-errors <path>",
	Short: "Annotate a document in place with a comment at its first parse error",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return annotateErrors(args[0])
	},
}

// annotateErrors inserts a "# ERROR: ..." comment on the line before
// the first parse error in path, and rewrites the file atomically. A
// document that already parses cleanly is left untouched.
func annotateErrors(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read")
	}

	_, parseErr := toml.ParseBytes(data, toml.WithName(path))
	var perr *toml.ParseError
	if parseErr == nil {
		log.WithField("path", path).Debug("no errors to annotate")
		return nil
	}
	if !stderrors.As(parseErr, &perr) {
		return parseErr
	}

	lines := strings.Split(string(data), "\n")
	idx := perr.Line - 1
	if idx < 0 || idx > len(lines) {
		return errors.Errorf("reported line %d is out of range for %s", perr.Line, path)
	}
	annotation := fmt.Sprintf("# ERROR: %s", perr.Text)
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:idx]...)
	out = append(out, annotation)
	out = append(out, lines[idx:]...)

	return renameio.WriteFile(path, []byte(strings.Join(out, "\n")), 0o644)
}
