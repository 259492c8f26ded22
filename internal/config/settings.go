package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyPlayerTemplate = "player_template"
	KeyLanguage       = "app_language"
	KeyLastStreamURL  = "last_stream_url"
	KeyRememberURL    = "remember_stream_url"
)

// Default values
const (
	DefaultPlayerTemplate = ""
	DefaultLanguage       = "system"
	DefaultRememberURL    = true
)

// Settings holds the user preferences edited from the chooser
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetPlayerTemplate returns the external player command template; empty
// means the OS default handler.
func (s *Settings) GetPlayerTemplate() string {
	return s.app.Preferences().StringWithFallback(KeyPlayerTemplate, DefaultPlayerTemplate)
}

// SetPlayerTemplate sets the external player command template
func (s *Settings) SetPlayerTemplate(template string) {
	s.app.Preferences().SetString(KeyPlayerTemplate, strings.TrimSpace(template))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRememberURL returns whether the last typed stream URL is kept
func (s *Settings) GetRememberURL() bool {
	return s.app.Preferences().BoolWithFallback(KeyRememberURL, DefaultRememberURL)
}

// SetRememberURL sets whether the last typed stream URL is kept. Turning
// it off forgets the stored URL.
func (s *Settings) SetRememberURL(remember bool) {
	s.app.Preferences().SetBool(KeyRememberURL, remember)
	if !remember {
		s.app.Preferences().RemoveValue(KeyLastStreamURL)
	}
}

// GetLastStreamURL returns the last URL started from the text field
func (s *Settings) GetLastStreamURL() string {
	if !s.GetRememberURL() {
		return ""
	}
	return s.app.Preferences().String(KeyLastStreamURL)
}

// SetLastStreamURL stores the last URL started from the text field
func (s *Settings) SetLastStreamURL(url string) {
	if !s.GetRememberURL() {
		return
	}
	s.app.Preferences().SetString(KeyLastStreamURL, url)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
