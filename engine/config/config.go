package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides the config path
const EnvPath = "PANG_CONFIG"

// DefaultPath is read when EnvPath is unset
const DefaultPath = "config/pang.toml"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Game    GameConfig    `toml:"game"`
	Input   InputConfig   `toml:"input"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	TargetTPS int    `toml:"target_tps"`
	VSync     bool   `toml:"vsync"`
	Resizable bool   `toml:"resizable"`
}

type GameConfig struct {
	WallThickness float64 `toml:"wall_thickness"`
	Stage         string  `toml:"stage"` // YAML stage file; empty uses the built-in stage
}

// InputConfig holds ebiten key names per action
type InputConfig struct {
	Left    []string `toml:"left"`
	Right   []string `toml:"right"`
	Up      []string `toml:"up"`
	Down    []string `toml:"down"`
	Fire    []string `toml:"fire"`
	Pause   []string `toml:"pause"`
	Confirm []string `toml:"confirm"`
	Quit    []string `toml:"quit"`
}

// Actions returns the bindings keyed by action name
func (c InputConfig) Actions() map[string][]string {
	return map[string][]string{
		"left":    c.Left,
		"right":   c.Right,
		"up":      c.Up,
		"down":    c.Down,
		"fire":    c.Fire,
		"pause":   c.Pause,
		"confirm": c.Confirm,
		"quit":    c.Quit,
	}
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// Load reads the TOML file at path over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by PANG_CONFIG, or DefaultPath. A missing
// default file yields the defaults; a missing explicit file is an error.
func LoadFromEnv() (*Config, string, error) {
	path := os.Getenv(EnvPath)
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	cfg, err := Load(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults(), "", nil
	}
	return cfg, DefaultPath, err
}

// Default returns the built-in configuration
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Pang",
			TargetTPS: 60,
			VSync:     true,
		},
		Game: GameConfig{
			WallThickness: 20,
		},
		Input: InputConfig{
			Left:    []string{"ArrowLeft", "A"},
			Right:   []string{"ArrowRight", "D"},
			Up:      []string{"ArrowUp", "W"},
			Down:    []string{"ArrowDown", "S"},
			Fire:    []string{"Space"},
			Pause:   []string{"Escape"},
			Confirm: []string{"Enter"},
			Quit:    []string{"F10"},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports every invalid setting
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetTPS <= 0 {
		errs = append(errs, fmt.Errorf("target_tps %d must be positive", c.Window.TargetTPS))
	}
	if c.Game.WallThickness <= 0 {
		errs = append(errs, fmt.Errorf("wall_thickness %g must be positive", c.Game.WallThickness))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %g out of range [0,1]", c.Audio.Volume))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging format %q must be console or json", c.Logging.Format))
	}
	return errors.Join(errs...)
}
