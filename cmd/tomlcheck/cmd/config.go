// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings tomlcheck reads from a --config YAML file,
// layered underneath whatever the command-line flags set.
type Config struct {
	Verbose bool `yaml:"verbose"`
	Strict  bool `yaml:"strict"`
}

// loadConfig reads path as YAML, or returns the zero Config if path is
// empty. A missing or malformed file is an error: an explicit --config
// flag is a promise that the file is there.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyConfig layers cfg under the already-parsed flags. Config values
// can only switch a setting on: verbose is enabled when either the
// --verbose flag or the config file sets it (an explicit --verbose=false
// does not override a config value of true), and strict, which has no
// command-line flag, is enabled when the config file sets it.
func applyConfig(cfg Config) {
	if cfg.Verbose && !verbose {
		verbose = true
		log.SetLevel(logrus.DebugLevel)
	}
	if cfg.Strict {
		strict = true
	}
}
