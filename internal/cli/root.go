// Package cli wires configuration, logging and services together and starts
// the chooser window.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/sample-chooser/internal/catalog"
	"github.com/ytget/sample-chooser/internal/config"
	applog "github.com/ytget/sample-chooser/internal/log"
	"github.com/ytget/sample-chooser/internal/platform"
	"github.com/ytget/sample-chooser/internal/playback"
	"github.com/ytget/sample-chooser/internal/ui"
)

const (
	AppID   = "com.ytget.sample-chooser"
	AppName = "Sample Chooser"
)

var (
	version   = "dev"
	cfgFile   string
	configErr error
)

var rootCmd = &cobra.Command{
	Use:     "sample-chooser",
	Short:   "Pick a media sample and hand it to a player",
	Long:    `A sample chooser that lists preset streams grouped by category and launches the selected one, or any typed URL, in an external player.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/sample-chooser/config.yaml)")
	rootCmd.Flags().String("catalog", "",
		"YAML catalog file replacing the built-in samples")
	rootCmd.Flags().String("log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.Flags().String("ffmpeg", "",
		"ffmpeg binary used to probe decoders")
	rootCmd.Flags().Duration("probe-timeout", 0,
		"timeout for the decoder probe")
	rootCmd.Flags().StringP("player", "p", "",
		"player command template, e.g. \"mpv {uri}\"")
	rootCmd.Flags().String("youtube-playlist", "",
		"YouTube playlist URL imported as an extra group")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyCatalog, rootCmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.Flags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyFFmpeg, rootCmd.Flags().Lookup("ffmpeg"))
	_ = viper.BindPFlag(config.KeyProbeTimeout, rootCmd.Flags().Lookup("probe-timeout"))
	_ = viper.BindPFlag(config.KeyPlayer, rootCmd.Flags().Lookup("player"))
	_ = viper.BindPFlag(config.KeyYouTubePlaylist, rootCmd.Flags().Lookup("youtube-playlist"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())
	config.BindEnv(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "sample-chooser"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("read config: %w", err)
		}
	}
}

func runApp(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	applog.Configure(applog.Config{Level: cfg.LogLevel, Console: cfg.LogConsole})
	logger := applog.WithComponent("cli")
	logger.Info().
		Str("version", version).
		Str("config", viper.ConfigFileUsed()).
		Msg("Sample Chooser starting")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	importer := platform.NewPlaylistImporter()
	importer.SetTimeout(cfg.ImportTimeout)

	cat, err := loadCatalog(ctx, cfg, importer, logger)
	if err != nil {
		return err
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewChooserTheme())
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	} else {
		logger.Debug().Err(err).Msg("App icon not loaded")
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	opener := platform.NewStreamOpener(resolvePlayerTemplate(cfg.Player, settings.GetPlayerTemplate()))
	launcher := playback.NewService(opener, applog.WithComponent("playback"))
	launcher.SetLaunchCallback(rememberTypedURL(settings))

	probe := platform.NewFFmpegDecoderProbe(cfg.FFmpeg)
	probe.SetTimeout(cfg.ProbeTimeout)
	decoders := platform.NewDecoderCapability(probe, applog.WithComponent("decoder"))

	// Create and setup UI
	chooser := ui.NewSampleChooser(ctx, myWindow, settings, cat, decoders, launcher)
	chooser.SetSettingsCallback(func() {
		opener.SetPlayerTemplate(resolvePlayerTemplate(cfg.Player, settings.GetPlayerTemplate()))
	})
	chooser.Install()

	myWindow.ShowAndRun()
	return nil
}

type playlistImporter interface {
	Import(ctx context.Context, url string) (catalog.Group, error)
}

// loadCatalog returns the configured catalog plus the imported playlist
// group. A failed import is logged and skipped.
func loadCatalog(ctx context.Context, cfg config.Config, importer playlistImporter, logger zerolog.Logger) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if cfg.Catalog != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
		logger.Info().Str("path", cfg.Catalog).Int("samples", cat.SampleCount()).Msg("Catalog loaded")
	}

	if cfg.YouTubePlaylist == "" {
		return cat, nil
	}

	group, err := importer.Import(ctx, cfg.YouTubePlaylist)
	if err != nil {
		logger.Error().Err(err).Str("url", cfg.YouTubePlaylist).Msg("Playlist import failed")
		return cat, nil
	}
	if _, exists := cat.Group(group.Name); exists {
		logger.Warn().Str("group", group.Name).Msg("Catalog already has a group with this name, playlist skipped")
		return cat, nil
	}
	logger.Info().Str("group", group.Name).Int("samples", len(group.Samples)).Msg("Playlist imported")
	return cat.Append(group), nil
}

// rememberTypedURL stores the locator of each typed URL that started
// successfully, so the chooser can prefill it next time.
func rememberTypedURL(settings *config.Settings) func(playback.Request) {
	return func(req playback.Request) {
		if req.AdHoc && req.URI != nil {
			settings.SetLastStreamURL(req.URI.String())
		}
	}
}

// resolvePlayerTemplate prefers the startup override over the saved setting
func resolvePlayerTemplate(override, saved string) string {
	if override != "" {
		return override
	}
	return saved
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
