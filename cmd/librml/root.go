package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"slub/librml/pkg/cli"
	"slub/librml/pkg/config"
	"slub/librml/pkg/telemetry/logging"
	"slub/librml/pkg/telemetry/metrics"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Set up by the root command before any subcommand runs.
	appConfig *config.Config
	logger    *logging.Logger
	collector *metrics.Collector
)

var rootCmd = &cobra.Command{
	Use:   "librml",
	Short: "librml - LibRML rights expressions for library items",
	Long: `librml reads, writes and checks LibRML documents.

A LibRML document states which actions (read, download, print, ...) are
permitted on a library item and under which restrictions (dates, counts,
locations, user groups, ...). Documents can be stored as JSON, YAML, CBOR
or LibRML XML markup, and new documents can be rendered from templates.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return exportMetrics()
	},
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (defaults and LIBRML_* environment only if empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// setup loads the configuration and builds the logger and metrics collector.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("--config", err.Error())
	}

	logCfg := logging.Config{
		Level:     cfg.Telemetry.Logging.Level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
		Writer:    cmd.ErrOrStderr(),
	}
	if verbose {
		logCfg.Level = "debug"
	}
	log, err := logging.New(logCfg)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	appConfig = cfg
	logger = log.With("command", cmd.Name())
	collector = metrics.NewCollector(&cfg.Telemetry.Metrics, prometheus.NewRegistry())
	return nil
}

// exportMetrics writes collected metrics when a textfile path is configured.
func exportMetrics() error {
	if appConfig == nil || !appConfig.Telemetry.Metrics.Enabled {
		return nil
	}
	path := appConfig.Telemetry.Metrics.TextfilePath
	if path == "" {
		return nil
	}
	if err := collector.WriteTextfile(path); err != nil {
		logger.Warn("Failed to write metrics textfile", "path", path, "error", err)
		return nil
	}
	logger.Debug("Metrics written", "path", path)
	return nil
}
