// Package config holds startup configuration read through viper (flags,
// environment, config file) and the user settings persisted in Fyne
// preferences.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Viper keys
const (
	KeyCatalog         = "catalog"
	KeyLogLevel        = "log_level"
	KeyLogConsole      = "log_console"
	KeyFFmpeg          = "ffmpeg"
	KeyProbeTimeout    = "probe_timeout"
	KeyPlayer          = "player"
	KeyYouTubePlaylist = "youtube_playlist"
	KeyImportTimeout   = "import_timeout"
)

// EnvPrefix is prepended to environment overrides, e.g. SAMPLE_CHOOSER_PLAYER
const EnvPrefix = "SAMPLE_CHOOSER"

// Config is the startup configuration
type Config struct {
	Catalog         string        `mapstructure:"catalog"`
	LogLevel        string        `mapstructure:"log_level"`
	LogConsole      bool          `mapstructure:"log_console"`
	FFmpeg          string        `mapstructure:"ffmpeg"`
	ProbeTimeout    time.Duration `mapstructure:"probe_timeout"`
	Player          string        `mapstructure:"player"`
	YouTubePlaylist string        `mapstructure:"youtube_playlist"`
	ImportTimeout   time.Duration `mapstructure:"import_timeout"`
}

// Defaults returns the configuration used when nothing is set
func Defaults() Config {
	return Config{
		LogLevel:      "info",
		LogConsole:    true,
		FFmpeg:        "ffmpeg",
		ProbeTimeout:  5 * time.Second,
		ImportTimeout: 60 * time.Second,
	}
}

// SetDefaults registers Defaults() on v
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyCatalog, d.Catalog)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogConsole, d.LogConsole)
	v.SetDefault(KeyFFmpeg, d.FFmpeg)
	v.SetDefault(KeyProbeTimeout, d.ProbeTimeout)
	v.SetDefault(KeyPlayer, d.Player)
	v.SetDefault(KeyYouTubePlaylist, d.YouTubePlaylist)
	v.SetDefault(KeyImportTimeout, d.ImportTimeout)
}

// BindEnv enables SAMPLE_CHOOSER_* overrides for every key
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals and validates the configuration held by v
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.ProbeTimeout < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyProbeTimeout, c.ProbeTimeout)
	}
	if c.ImportTimeout < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyImportTimeout, c.ImportTimeout)
	}
	if strings.TrimSpace(c.FFmpeg) == "" {
		return fmt.Errorf("%s must not be empty", KeyFFmpeg)
	}
	return nil
}
