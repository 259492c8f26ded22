package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestPlayerTemplate(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetPlayerTemplate(); got != DefaultPlayerTemplate {
		t.Errorf("Expected default player template %q, got %q", DefaultPlayerTemplate, got)
	}

	settings.SetPlayerTemplate("  mpv --force-media-title={name} {uri}  ")
	if got := settings.GetPlayerTemplate(); got != "mpv --force-media-title={name} {uri}" {
		t.Errorf("Expected trimmed template, got %q", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("Expected language 'pt', got %s", got)
	}
}

func TestLastStreamURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetRememberURL() {
		t.Fatal("Remembering the URL should be on by default")
	}
	if got := settings.GetLastStreamURL(); got != "" {
		t.Errorf("Expected no stored URL, got %q", got)
	}

	settings.SetLastStreamURL("http://example.com/stream.m3u8")
	if got := settings.GetLastStreamURL(); got != "http://example.com/stream.m3u8" {
		t.Errorf("Expected stored URL, got %q", got)
	}

	settings.SetRememberURL(false)
	if got := settings.GetLastStreamURL(); got != "" {
		t.Errorf("Expected URL to be forgotten, got %q", got)
	}

	settings.SetLastStreamURL("http://example.com/other.m3u8")
	settings.SetRememberURL(true)
	if got := settings.GetLastStreamURL(); got != "" {
		t.Errorf("URL must not be stored while remembering is off, got %q", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
