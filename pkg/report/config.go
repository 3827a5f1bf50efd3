// File: pkg/report/config.go
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultOutputName is the report written at the root of the project.
	DefaultOutputName = "repocat.md"
	// ConfigFileName is the optional per-project configuration file.
	ConfigFileName = ".repocat.yaml"
	// GitIgnoreFileName is the ignore file loaded from the project root.
	GitIgnoreFileName = ".gitignore"
	// VCSPrefix excludes every path starting with it.
	VCSPrefix = ".git"
)

// DefaultDenylist lists substrings that exclude any path containing them.
var DefaultDenylist = []string{
	".config.json",
	".config.ts",
	".config.js",
	".gitignore",
	"package.json",
	"package-lock.json",
	"yarn.lock",
	"bun.lockb",
	"bun.lock",
	"LICENSE",
	"CONTRIBUTING",
	"CODE_OF_CONDUCT",
	".svg",
	"tsconfig.",
	DefaultOutputName,
	"node_modules",
}

// Config holds the options for a single report run.
type Config struct {
	Root             string   // Project directory to snapshot.
	OutputName       string   // Report file name, relative to Root.
	Denylist         []string // Substrings excluding a path anywhere they occur.
	RequireGitignore bool     // Abort when Root has no .gitignore.
	CopyToClipboard  bool     // Copy the finished report to the clipboard.
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	denylist := make([]string, len(DefaultDenylist))
	copy(denylist, DefaultDenylist)
	return Config{
		Root:             ".",
		OutputName:       DefaultOutputName,
		Denylist:         denylist,
		RequireGitignore: true,
	}
}

// effectiveDenylist returns the denylist with the output name appended, so a
// renamed report never ends up inside the next one.
func (c Config) effectiveDenylist() []string {
	denylist := make([]string, 0, len(c.Denylist)+1)
	seen := make(map[string]struct{}, len(c.Denylist)+1)
	for _, entry := range append(append([]string{}, c.Denylist...), c.OutputName) {
		if entry == "" {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		denylist = append(denylist, entry)
	}
	return denylist
}

// fileConfig mirrors the keys accepted in .repocat.yaml.
type fileConfig struct {
	Output           string   `mapstructure:"output"`
	Denylist         []string `mapstructure:"denylist"`
	ExtraDenylist    []string `mapstructure:"extra_denylist"`
	RequireGitignore *bool    `mapstructure:"require_gitignore"`
	Copy             *bool    `mapstructure:"copy"`
}

// LoadConfig applies the configuration file on top of base. explicitPath, when
// set, must exist; otherwise <root>/.repocat.yaml is read if present.
func LoadConfig(base Config, explicitPath string) (Config, error) {
	configPath := explicitPath
	if configPath == "" {
		configPath = filepath.Join(base.Root, ConfigFileName)
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return base, nil
			}
			return base, fmt.Errorf("stat configuration %s: %w", configPath, err)
		}
	}

	reader := viper.New()
	reader.SetConfigFile(configPath)
	if filepath.Ext(configPath) == "" {
		reader.SetConfigType("yaml")
	}
	if err := reader.ReadInConfig(); err != nil {
		return base, fmt.Errorf("read configuration from %s: %w", configPath, err)
	}

	var fc fileConfig
	if err := reader.Unmarshal(&fc); err != nil {
		return base, fmt.Errorf("decode configuration from %s: %w", configPath, err)
	}
	return fc.apply(base), nil
}

func (fc fileConfig) apply(base Config) Config {
	result := base
	if fc.Output != "" {
		result.OutputName = fc.Output
	}
	denylist := base.Denylist
	if fc.Denylist != nil {
		denylist = fc.Denylist
	}
	result.Denylist = append(append([]string{}, denylist...), fc.ExtraDenylist...)
	if fc.RequireGitignore != nil {
		result.RequireGitignore = *fc.RequireGitignore
	}
	if fc.Copy != nil {
		result.CopyToClipboard = *fc.Copy
	}
	return result
}
