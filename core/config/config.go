package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tristendillon/depwalk/core/logger"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Root        string   `yaml:"root"`
	Descriptors []string `yaml:"descriptors"`
	Exclude     []string `yaml:"exclude"`
	Output      Output   `yaml:"output"`
	Watch       Watch    `yaml:"watch"`
}

type Output struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Append bool   `yaml:"append"`
}

type Watch struct {
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultDescriptors are the Maven and Gradle build files.
var DefaultDescriptors = []string{"pom.xml", "build.gradle"}

func Default() *Config {
	return &Config{
		Root:        ".",
		Descriptors: append([]string(nil), DefaultDescriptors...),
		Exclude:     []string{".git", "**/.git"},
		Output: Output{
			Path:   "relationships.json",
			Format: "json",
		},
		Watch: Watch{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Load reads the config at path. An empty path looks for depwalk.yaml or
// depwalk.yml in the working directory and falls back to Default when
// neither exists.
func Load(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot determine working dir: %w", err)
		}
		path = find(wd)
		if path == "" {
			logger.Debug("No config file found, using default config")
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	logger.Debug("Config file found: %s", path)
	logger.Debug("Config: %+v", *cfg)

	return cfg, nil
}

// Parse decodes yaml on top of Default, so omitted keys keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Descriptors) == 0 {
		return fmt.Errorf("descriptors must name at least one build file")
	}
	for _, d := range c.Descriptors {
		if d == "" || filepath.Base(d) != d {
			return fmt.Errorf("descriptor %q must be a plain file name", d)
		}
	}
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	switch c.Output.Format {
	case "json", "yaml", "dot":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.Append && c.Output.Format == "dot" {
		return fmt.Errorf("append is not supported for dot output")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative")
	}
	return nil
}

func find(dir string) string {
	for _, name := range []string{"depwalk.yaml", "depwalk.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
