package ui

import "strings"

// fallbackLanguage is used for unknown languages and missing keys
const fallbackLanguage = "en"

// Localization resolves UI strings for the selected language
type Localization struct {
	lang string
}

// Message keys
const (
	KeyAppTitle          = "app_title"
	KeyStartStream       = "start_stream"
	KeyEnterURL          = "enter_url"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyURIUnparsable     = "uri_unparsable"
	KeyPlaybackFailed    = "playback_failed"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyPlayerCommand     = "player_command"
	KeyPlayerCommandHint = "player_command_hint"
	KeyRememberURL       = "remember_url"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization returns a localization set to English
func NewLocalization() *Localization {
	return &Localization{lang: fallbackLanguage}
}

// SetLanguage switches language. "system" means English, region suffixes
// such as "pt-BR" are dropped, and unsupported languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if lang == "system" {
		lang = fallbackLanguage
	}
	if _, ok := translations[lang]; ok {
		l.lang = lang
	}
}

// GetText returns the text for key, falling back to English and then to
// the key itself.
func (l *Localization) GetText(key string) string {
	if text, ok := lookup(l.lang, key); ok {
		return text
	}
	if text, ok := lookup(fallbackLanguage, key); ok {
		return text
	}
	return key
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.lang
}

// GetAvailableLanguages maps language codes to their native names
func (l *Localization) GetAvailableLanguages() map[string]string {
	names := make(map[string]string, len(translations))
	for code, texts := range translations {
		names[code] = texts[keyLanguageName]
	}
	return names
}

func lookup(lang, key string) (string, bool) {
	text, ok := translations[lang][key]
	return text, ok && text != ""
}

// keyLanguageName holds each language's own name
const keyLanguageName = "language_name"

var translations = map[string]map[string]string{
	"en": {
		keyLanguageName:      "English",
		KeyAppTitle:          "Sample Chooser",
		KeyStartStream:       "Start stream",
		KeyEnterURL:          "Stream URL (http://.../playlist.m3u8)",
		KeyPleaseEnterURL:    "Please enter a url 1st",
		KeyURIUnparsable:     "URI Maybe unparsable: ",
		KeyPlaybackFailed:    "Playback failed: ",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyPlayerCommand:     "Player command",
		KeyPlayerCommandHint: "e.g. mpv {uri}; empty uses the system player",
		KeyRememberURL:       "Remember last stream URL",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved",
	},
	"ru": {
		keyLanguageName:      "Русский",
		KeyAppTitle:          "Выбор примеров",
		KeyStartStream:       "Запустить поток",
		KeyEnterURL:          "URL потока (http://.../playlist.m3u8)",
		KeyPleaseEnterURL:    "Сначала введите URL",
		KeyURIUnparsable:     "URI, возможно, некорректен: ",
		KeyPlaybackFailed:    "Не удалось начать воспроизведение: ",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyPlayerCommand:     "Команда плеера",
		KeyPlayerCommandHint: "например mpv {uri}; пусто - системный плеер",
		KeyRememberURL:       "Запоминать последний URL",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки сохранены",
	},
	"pt": {
		keyLanguageName:      "Português",
		KeyAppTitle:          "Seletor de Amostras",
		KeyStartStream:       "Iniciar stream",
		KeyEnterURL:          "URL do stream (http://.../playlist.m3u8)",
		KeyPleaseEnterURL:    "Digite uma URL primeiro",
		KeyURIUnparsable:     "URI talvez inválida: ",
		KeyPlaybackFailed:    "Falha na reprodução: ",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyPlayerCommand:     "Comando do player",
		KeyPlayerCommandHint: "ex. mpv {uri}; vazio usa o player do sistema",
		KeyRememberURL:       "Lembrar a última URL",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas",
	},
}
