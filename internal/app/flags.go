package app

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Scene    string
	Seed     int64
	TPS      int
	Width    int
	Height   int
	LogLevel string
	LogFile  string
	Sound    bool
	Volume   float64
	Settings string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Scene:    "reef",
		TPS:      60,
		Width:    960,
		Height:   600,
		LogLevel: "info",
		Sound:    true,
		Volume:   0.6,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene preset name or path to a preset YAML file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scene population (0 uses the preset seed)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play audio cues")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "audio cue volume in [0, 1]")
	fs.StringVar(&c.Settings, "config", c.Settings, "optional settings file (yaml, json or toml)")
}

// LoadSettings layers the settings file and DEEPSEA_* environment variables
// under the flags. Flags given explicitly on the command line win.
func (c *Config) LoadSettings(fs *flag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix("DEEPSEA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("scene", c.Scene)
	v.SetDefault("seed", c.Seed)
	v.SetDefault("tps", c.TPS)
	v.SetDefault("width", c.Width)
	v.SetDefault("height", c.Height)
	v.SetDefault("log-level", c.LogLevel)
	v.SetDefault("log-file", c.LogFile)
	v.SetDefault("sound", c.Sound)
	v.SetDefault("volume", c.Volume)

	if c.Settings != "" {
		v.SetConfigFile(c.Settings)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read settings %s: %w", c.Settings, err)
		}
	}

	explicit := make(map[string]bool)
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	}
	str := func(key string, dst *string) {
		if !explicit[key] {
			*dst = v.GetString(key)
		}
	}
	num := func(key string, dst *int) {
		if !explicit[key] {
			*dst = v.GetInt(key)
		}
	}

	str("scene", &c.Scene)
	str("log-level", &c.LogLevel)
	str("log-file", &c.LogFile)
	num("tps", &c.TPS)
	num("width", &c.Width)
	num("height", &c.Height)
	if !explicit["seed"] {
		c.Seed = v.GetInt64("seed")
	}
	if !explicit["sound"] {
		c.Sound = v.GetBool("sound")
	}
	if !explicit["volume"] {
		c.Volume = v.GetFloat64("volume")
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be in [0, 1], got %g", c.Volume)
	}
	return nil
}
