// File: root.go
// Title: Root Command
// Description: Root cobra command carrying global configuration and
//              logging flags shared by every subcommand.
// Version: v0.1.0
// Created: 2025-11-18

package main

import (
	"os"

	"github.com/spf13/cobra"

	lokaconfig "github.com/lokascript/semantic-go/core/config"
	lokalog "github.com/lokascript/semantic-go/core/log"
)

// version is overridden at build time via -ldflags
var version = "0.1.0"

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	config *lokaconfig.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lokascript",
		Short: "Multilingual command parser and template scanner",
		Long: `lokascript resolves scripting commands written in natural languages
into language-independent command records, and scans template files
for script usage.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (TOML or YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format (json, text, console)")

	cmd.AddCommand(
		newParseCmd(opts),
		newTokenizeCmd(opts),
		newScanCmd(opts),
		newLanguagesCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

// setup loads the config file and configures the process logger
func (o *rootOptions) setup() error {
	if o.configPath != "" {
		cfg, err := lokaconfig.Load(o.configPath)
		if err != nil {
			return err
		}
		o.config = cfg

		if o.logLevel == "info" {
			o.logLevel = cfg.GetString("log.level", "info")
		}
		if o.logFormat == "console" {
			o.logFormat = cfg.GetString("log.format", "console")
		}
	}

	level, err := lokalog.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	format, err := lokalog.ParseFormat(o.logFormat)
	if err != nil {
		return err
	}
	logger := lokalog.GetDefault().
		WithLevel(level).
		WithFormat(format).
		WithOutput(os.Stderr)
	lokalog.SetDefault(logger)
	return nil
}

// getString reads a config key, preferring the flag value when the
// flag was changed
func (o *rootOptions) getString(key, fallback string) string {
	if o.config != nil {
		return o.config.GetString(key, fallback)
	}
	return fallback
}
