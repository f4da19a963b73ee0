/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/depwalk/core/generator"
	"github.com/tristendillon/depwalk/core/logger"
)

var walkOpts walkOptions

var walkCmd = &cobra.Command{
	Use:   "walk [root]",
	Short: "Writes the producer/consumer relationships found under root",
	Long: `Walks root (default from config, else the working directory) once and
writes the relationships as a JSON array of {"parent", "child"} objects.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("walk called")
		cfg, err := walkOpts.load(cmd, args)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		generator, err := generator.NewGraphGenerator(cfg, logger.Default())
		if err != nil {
			return err
		}
		if _, err := generator.Generate(logger.INFO); err != nil {
			return fmt.Errorf("failed to generate relationships: %w", err)
		}
		return nil
	},
}

func init() {
	walkOpts.register(walkCmd)
	rootCmd.AddCommand(walkCmd)
}
