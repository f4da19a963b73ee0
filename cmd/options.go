package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tristendillon/depwalk/core/config"
)

// walkOptions are the flags shared by walk and watch. Set flags override the
// config file.
type walkOptions struct {
	output      string
	format      string
	appendMode  bool
	descriptors []string
	exclude     []string
}

func (o *walkOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", `Output file, "-" for stdout (default relationships.json)`)
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format: json, yaml or dot (default json)")
	cmd.Flags().BoolVar(&o.appendMode, "append", false, "Append to the existing output instead of overwriting it")
	cmd.Flags().StringSliceVar(&o.descriptors, "descriptor", nil, "Build descriptor file names marking a producer (default pom.xml,build.gradle)")
	cmd.Flags().StringSliceVar(&o.exclude, "exclude", nil, "Doublestar patterns of directories to skip")
}

func (o *walkOptions) load(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Root = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Path = o.output
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("append") {
		cfg.Output.Append = o.appendMode
	}
	if flags.Changed("descriptor") {
		cfg.Descriptors = o.descriptors
	}
	if flags.Changed("exclude") {
		cfg.Exclude = o.exclude
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
