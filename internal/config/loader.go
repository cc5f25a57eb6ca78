package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.config/go-pairs/config.yaml -> built-in defaults.
// A missing file at the default location is not an error; a custom path that
// cannot be read is.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return fillDefaults(cfg), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", userPath, err)
			}
			return fillDefaults(cfg), nil
		}
	}

	return cfg, nil
}

func userConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "go-pairs", "config.yaml")
}

// fillDefaults replaces empty theme fields with the built-in values so a
// partial config file stays usable.
func fillDefaults(cfg Config) Config {
	def := Default()
	if cfg.Theme.HiddenGlyph == "" {
		cfg.Theme.HiddenGlyph = def.Theme.HiddenGlyph
	}
	if cfg.Theme.RevealedMarker == "" {
		cfg.Theme.RevealedMarker = def.Theme.RevealedMarker
	}
	if cfg.Theme.ErrorColor == "" {
		cfg.Theme.ErrorColor = def.Theme.ErrorColor
	}
	if cfg.Theme.ScoreColor == "" {
		cfg.Theme.ScoreColor = def.Theme.ScoreColor
	}
	if cfg.Theme.BoardColor == "" {
		cfg.Theme.BoardColor = def.Theme.BoardColor
	}
	if cfg.Theme.PromptColor == "" {
		cfg.Theme.PromptColor = def.Theme.PromptColor
	}
	return cfg
}
