/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tristendillon/depwalk/core/generator"
	"github.com/tristendillon/depwalk/core/logger"
	"github.com/tristendillon/depwalk/core/output"
	"github.com/tristendillon/depwalk/core/watcher"
)

var (
	watchOpts walkOptions
	debounce  time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Rewrites the relationships whenever the tree under root changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("watch called")
		cfg, err := watchOpts.load(cmd, args)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("debounce") {
			cfg.Watch.Debounce = debounce
		}

		root, err := filepath.Abs(cfg.Root)
		if err != nil {
			return fmt.Errorf("failed to resolve root %s: %w", cfg.Root, err)
		}
		cfg.Root = root
		if cfg.Output.Path != output.Stdout {
			out, err := filepath.Abs(cfg.Output.Path)
			if err != nil {
				return fmt.Errorf("failed to resolve output %s: %w", cfg.Output.Path, err)
			}
			cfg.Output.Path = out
		}

		generator, err := generator.NewGraphGenerator(cfg, logger.Default())
		if err != nil {
			return err
		}
		// The first walk must succeed; later failures are logged and retried on
		// the next change.
		if _, err := generator.Generate(logger.INFO); err != nil {
			return fmt.Errorf("failed to generate relationships: %w", err)
		}

		exclude := cfg.Exclude
		if rel, err := filepath.Rel(root, cfg.Output.Path); err == nil && filepath.IsLocal(rel) {
			exclude = append(exclude, filepath.ToSlash(rel))
		}

		fw, err := watcher.NewFileWatcher(root, exclude, cfg.Watch.Debounce)
		if err != nil {
			return err
		}
		defer fw.Close()

		var mu sync.Mutex
		fw.FileWatcher.AddOnChangeFunc(func() error {
			mu.Lock()
			defer mu.Unlock()
			_, err := generator.Generate(logger.DEBUG)
			return err
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Watching %s for changes", root)
		return fw.Watch(ctx)
	},
}

func init() {
	watchOpts.register(watchCmd)
	watchCmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Delay before walking again after a change")
	rootCmd.AddCommand(watchCmd)
}
