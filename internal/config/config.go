package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"pageswipe/internal/carousel"
)

// Config represents the application configuration
type Config struct {
	Gesture GestureSettings `mapstructure:"gesture"`
	Pages   PageSettings    `mapstructure:"pages"`
	Log     LogSettings     `mapstructure:"log"`
	UI      UISettings      `mapstructure:"ui"`
	Session SessionSettings `mapstructure:"session"`
}

// GestureSettings tunes swipe detection
type GestureSettings struct {
	Damping          float64 `mapstructure:"damping"`
	ThresholdDivisor float64 `mapstructure:"threshold_divisor"`
	BeginPolicy      string  `mapstructure:"begin_policy"` // "ignore" or "replace"
}

// PageSettings says where pages come from
type PageSettings struct {
	Dir     string `mapstructure:"dir"`
	Pattern string `mapstructure:"pattern"`
	Watch   bool   `mapstructure:"watch"`
}

// LogSettings configures the log file
type LogSettings struct {
	File   string `mapstructure:"file"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse   bool `mapstructure:"mouse"`
	Animate bool `mapstructure:"animate"`
}

// SessionSettings controls focus restore between runs
type SessionSettings struct {
	File    string `mapstructure:"file"`
	Restore bool   `mapstructure:"restore"`
}

const envPrefix = "PAGESWIPE"

// Load reads configuration from path (or the default location) and the
// environment. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultConfigDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case path == "" && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	p := carousel.DefaultParams()
	return &Config{
		Gesture: GestureSettings{
			Damping:          p.Damping,
			ThresholdDivisor: p.ThresholdDivisor,
			BeginPolicy:      p.BeginPolicy.String(),
		},
		Pages: PageSettings{
			Dir:     ".",
			Pattern: "*.md",
			Watch:   true,
		},
		Log: LogSettings{
			File:   filepath.Join(defaultStateDir(), "pageswipe.log"),
			Level:  "info",
			Format: "text",
		},
		UI: UISettings{
			Mouse:   true,
			Animate: true,
		},
		Session: SessionSettings{
			File:    filepath.Join(defaultStateDir(), "session.toml"),
			Restore: true,
		},
	}
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if _, err := c.CarouselParams(); err != nil {
		return fmt.Errorf("gesture config: %w", err)
	}
	if strings.TrimSpace(c.Pages.Pattern) == "" {
		return errors.New("pages config: pattern is empty")
	}
	if _, err := filepath.Match(c.Pages.Pattern, ""); err != nil {
		return fmt.Errorf("pages config: bad pattern %q: %w", c.Pages.Pattern, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log config: unknown format %q", c.Log.Format)
	}
	return nil
}

// CarouselParams converts the gesture section into carousel parameters
func (c *Config) CarouselParams() (carousel.Params, error) {
	policy, err := carousel.ParseBeginPolicy(c.Gesture.BeginPolicy)
	if err != nil {
		return carousel.Params{}, err
	}
	p := carousel.Params{
		Damping:          c.Gesture.Damping,
		ThresholdDivisor: c.Gesture.ThresholdDivisor,
		BeginPolicy:      policy,
	}
	return p, p.Validate()
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("gesture.damping", d.Gesture.Damping)
	v.SetDefault("gesture.threshold_divisor", d.Gesture.ThresholdDivisor)
	v.SetDefault("gesture.begin_policy", d.Gesture.BeginPolicy)
	v.SetDefault("pages.dir", d.Pages.Dir)
	v.SetDefault("pages.pattern", d.Pages.Pattern)
	v.SetDefault("pages.watch", d.Pages.Watch)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.animate", d.UI.Animate)
	v.SetDefault("session.file", d.Session.File)
	v.SetDefault("session.restore", d.Session.Restore)
}

func defaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "pageswipe")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", "pageswipe")
}
