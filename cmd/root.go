/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/depwalk/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "depwalk",
	Short: "Infers producer/consumer relationships from a contracts directory tree.",
	Long: `Depwalk walks a directory tree laid out as group/artifact[/version]/consumer,
finds the producers (directories holding a build descriptor such as pom.xml or
build.gradle) and writes one parent/child record per consumer directory, ready
to be drawn as a dependency graph.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		logCloser = nil
		if logfile != "" {
			closer, err := logger.OpenLogFile(logfile)
			if err != nil {
				return err
			}
			logCloser = closer
		}
		return nil
	},
}

var logfile string
var verbose bool
var configPath string
var logCloser io.Closer

func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and closes the --logfile handle whether or
// not the command failed. Cobra skips post-run hooks after a RunE error.
func execute() error {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./depwalk.yaml)")
}
