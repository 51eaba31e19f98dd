// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

// tomlcheck validates TOML documents and reports parse errors.
package main

import (
	"fmt"
	"os"

	"github.com/hukkin/tomlgo/cmd/tomlcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
