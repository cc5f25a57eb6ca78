// Package config provides YAML-based configuration for the seed and the
// rendering theme.
package config

// Config is the full application configuration.
type Config struct {
	// Seed for the board shuffler. 0 means seed from the current time.
	Seed  int64 `yaml:"seed"`
	Theme Theme `yaml:"theme"`
}

// Theme controls the glyphs and colors used by the renderers. Colors are
// ANSI color codes as understood by lipgloss.
type Theme struct {
	HiddenGlyph    string `yaml:"hidden_glyph"`
	RevealedMarker string `yaml:"revealed_marker"`
	ErrorColor     string `yaml:"error_color"`
	ScoreColor     string `yaml:"score_color"`
	BoardColor     string `yaml:"board_color"`
	PromptColor    string `yaml:"prompt_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed: 0,
		Theme: Theme{
			HiddenGlyph:    "█",
			RevealedMarker: "<",
			ErrorColor:     "9",
			ScoreColor:     "11",
			BoardColor:     "7",
			PromptColor:    "10",
		},
	}
}
