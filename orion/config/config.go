package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oliverbestmann/rcore/rcore"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config describes the window and frame loop of a game
type Config struct {
	Window  Window  `yaml:"window"`
	Input   Input   `yaml:"input"`
	Time    Time    `yaml:"time"`
	Storage Storage `yaml:"storage"`

	// complete is set for configs based on the defaults
	complete bool
}

type Window struct {
	Title  string            `yaml:"title"`
	Width  int               `yaml:"width"`
	Height int               `yaml:"height"`
	Flags  rcore.ConfigFlags `yaml:"flags"`

	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`

	// EventWaiting blocks the frame loop until an input event arrives
	EventWaiting bool `yaml:"event_waiting"`
}

type Input struct {
	ExitKey       rcore.Key `yaml:"exit_key"`
	FullscreenKey rcore.Key `yaml:"fullscreen_key"`
	BorderlessKey rcore.Key `yaml:"borderless_key"`

	// DebugKey writes frame statistics to the log
	DebugKey rcore.Key `yaml:"debug_key"`
}

type Time struct {
	// TargetFPS limits the frame rate, 0 disables the limit
	TargetFPS int `yaml:"target_fps"`
}

type Storage struct {
	// BasePath defaults to the working directory
	BasePath string `yaml:"base_path"`

	// RememberPlacement restores the window position of the previous run
	RememberPlacement bool `yaml:"remember_placement"`
}

// Default returns the built in configuration
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("parse embedded default config: %s", err))
	}

	cfg.complete = true

	return cfg
}

// Complete reports whether the config is based on Default, either directly
// or through Parse or Load. Zero values in a complete config are intended,
// e.g. a zero target_fps disables the frame limit.
func (c Config) Complete() bool {
	return c.complete
}

// Parse reads a configuration from yaml. Values missing in the
// input keep their default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the configuration. Search order: customPath, the user
// config file (see UserPath), built in defaults.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", customPath, err)
		}

		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", customPath, err)
		}

		return cfg, nil
	}

	if userPath := UserPath(); userPath != "" {
		data, err := os.ReadFile(userPath)

		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to the defaults

		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", userPath, err)

		default:
			cfg, err := Parse(data)
			if err != nil {
				return Config{}, fmt.Errorf("config %s: %w", userPath, err)
			}

			return cfg, nil
		}
	}

	return Default(), nil
}

// UserPath returns the path of the per user config file,
// or an empty string if there is no user config directory.
func UserPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "rcore", "config.yaml")
}

func (c Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative: %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Window.MaxWidth > 0 && c.Window.MinWidth > c.Window.MaxWidth {
		return fmt.Errorf("min_width %d exceeds max_width %d", c.Window.MinWidth, c.Window.MaxWidth)
	}

	if c.Window.MaxHeight > 0 && c.Window.MinHeight > c.Window.MaxHeight {
		return fmt.Errorf("min_height %d exceeds max_height %d", c.Window.MinHeight, c.Window.MaxHeight)
	}

	if c.Time.TargetFPS < 0 {
		return fmt.Errorf("target_fps must not be negative: %d", c.Time.TargetFPS)
	}

	return nil
}

// Marshal encodes the configuration as yaml
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
