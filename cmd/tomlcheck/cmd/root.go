// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "tomlcheck",
		Short:        "tomlcheck",
		SilenceUsage: true,
		Long:         `tomlcheck validates TOML documents and points at the first parse error in each.`,
	}

	configPath string
	verbose    bool

	log = logrus.New()
)

// Execute runs the tomlcheck command tree.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each file as it is checked")

	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.WithError(err).Fatal("could not load config")
		}
		applyConfig(cfg)
	})

	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtErrorsCmd)
}
