// Package config loads Grove's project configuration (grove.yml or
// grove.toml): the agent launch commands, Scheduler interval overrides, and
// the dedicated tmux socket name (spec §6, SPEC_FULL §10.3).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/core/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	yamlFileName = "grove.yml"
	tomlFileName = "grove.toml"
)

// coreConfigKeys are the top-level keys owned by the Config struct; any
// other top-level key in a TOML file is captured into Extensions (YAML
// achieves the same via the inline map tag).
var coreConfigKeys = map[string]bool{
	"version":   true,
	"agents":    true,
	"scheduler": true,
	"tmux":      true,
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := unmarshalConfig(path, data)
	if err != nil {
		return nil, errors.ConfigInvalid(err.Error())
	}
	cfg.SetDefaults()
	return cfg, nil
}

// LoadFrom searches startDir and its ancestors for a grove.yml/grove.toml
// and loads the first one found. If none is found, a default config is
// returned (no error) so callers can run without a project config.
func LoadFrom(startDir string) (*Config, error) {
	path, err := FindConfigFile(startDir)
	if err != nil {
		cfg := &Config{}
		cfg.SetDefaults()
		return cfg, nil
	}
	return Load(path)
}

// LoadDefault loads the config for the current working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// FindConfigFile walks startDir and its parents looking for grove.yml or
// grove.toml, stopping at the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range []string{yamlFileName, tomlFileName} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ConfigNotFound(filepath.Join(startDir, yamlFileName))
		}
		dir = parent
	}
}

// unmarshalConfig parses config data based on file extension (TOML or
// YAML), capturing unrecognised top-level keys into Extensions.
func unmarshalConfig(path string, data []byte) (*Config, error) {
	var cfg Config

	if strings.HasSuffix(path, ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		var raw map[string]interface{}
		if err := toml.Unmarshal(data, &raw); err == nil {
			extensions := make(map[string]interface{})
			for k, v := range raw {
				if !coreConfigKeys[k] {
					extensions[k] = v
				}
			}
			if len(extensions) > 0 {
				cfg.Extensions = extensions
			}
		}
		return &cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge overlays non-zero fields from overlay onto a copy of base and
// returns the result; base and overlay are left untouched.
func Merge(base, overlay *Config) *Config {
	merged := *base
	if overlay == nil {
		return &merged
	}
	if overlay.Version != "" {
		merged.Version = overlay.Version
	}
	if overlay.Agents.Claude.Command != "" {
		merged.Agents.Claude = overlay.Agents.Claude
	}
	if overlay.Agents.Codex.Command != "" {
		merged.Agents.Codex = overlay.Agents.Codex
	}
	if overlay.Tmux.Socket != "" {
		merged.Tmux.Socket = overlay.Tmux.Socket
	}
	merged.Scheduler = mergeScheduler(base.Scheduler, overlay.Scheduler)
	if len(overlay.Extensions) > 0 {
		if merged.Extensions == nil {
			merged.Extensions = make(map[string]interface{}, len(overlay.Extensions))
		}
		for k, v := range overlay.Extensions {
			merged.Extensions[k] = v
		}
	}
	return &merged
}

func mergeScheduler(base, overlay SchedulerConfig) SchedulerConfig {
	merged := base
	if overlay.InteractiveFastMS != 0 {
		merged.InteractiveFastMS = overlay.InteractiveFastMS
	}
	if overlay.InteractiveMediumMS != 0 {
		merged.InteractiveMediumMS = overlay.InteractiveMediumMS
	}
	if overlay.InteractiveSlowMS != 0 {
		merged.InteractiveSlowMS = overlay.InteractiveSlowMS
	}
	if overlay.SelectedActiveMS != 0 {
		merged.SelectedActiveMS = overlay.SelectedActiveMS
	}
	if overlay.SelectedWaitingMS != 0 {
		merged.SelectedWaitingMS = overlay.SelectedWaitingMS
	}
	if overlay.BackgroundLiveMS != 0 {
		merged.BackgroundLiveMS = overlay.BackgroundLiveMS
	}
	if overlay.TerminalMS != 0 {
		merged.TerminalMS = overlay.TerminalMS
	}
	if overlay.DebounceMS != 0 {
		merged.DebounceMS = overlay.DebounceMS
	}
	return merged
}

// DecodeExtension decodes the Extensions entry at key into out, for
// tooling-specific configuration this package doesn't model directly
// (e.g. a sibling tool's settings block living in the same grove.yml).
func (c *Config) DecodeExtension(key string, out interface{}) error {
	raw, ok := c.Extensions[key]
	if !ok {
		return nil
	}
	return mapstructure.Decode(raw, out)
}

// AgentCommand resolves the launch command for kind, applying the
// GROVE_CLAUDE_CMD / GROVE_CODEX_CMD environment overrides (spec §6). An
// empty or whitespace-only override is rejected and the config/default
// value is used instead.
func (c *Config) AgentCommand(kind string) (string, []string) {
	launch := c.Agents.Claude
	envVar := "GROVE_CLAUDE_CMD"
	if kind == "codex" {
		launch = c.Agents.Codex
		envVar = "GROVE_CODEX_CMD"
	}

	if override := os.Getenv(envVar); strings.TrimSpace(override) != "" {
		return strings.TrimSpace(override), nil
	}

	if launch.Command == "" {
		return kind, nil
	}
	return launch.Command, launch.Args
}
