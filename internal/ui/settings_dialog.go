package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sample-chooser/internal/config"
)

// SettingsDialog edits the persisted player command, URL memory and language
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	loc      *Localization
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	playerEntry    *widget.Entry
	rememberCheck  *widget.Check
	languageSelect *widget.Select
	languageCodes  map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been written back to settings.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, loc *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		loc:      loc,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.playerEntry = widget.NewEntry()
	sd.playerEntry.SetPlaceHolder("mpv {uri}")

	sd.rememberCheck = widget.NewCheck(sd.loc.GetText(KeyRememberURL), nil)

	sd.languageSelect = widget.NewSelect(sd.languageNames(), nil)
	sd.languageSelect.PlaceHolder = sd.loc.GetText(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(sd.loc.GetText(KeyPlayerCommand)+":"),
		sd.playerEntry,
		widget.NewLabelWithStyle(sd.loc.GetText(KeyPlayerCommandHint), fyne.TextAlignLeading, fyne.TextStyle{Italic: true}),
		sd.rememberCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// languageNames lists display names ordered by language code and fills the
// reverse lookup used on save.
func (sd *SettingsDialog) languageNames() []string {
	options := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	sd.languageCodes = make(map[string]string, len(codes))
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, options[code])
		sd.languageCodes[options[code]] = code
	}
	return names
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.playerEntry.SetText(sd.settings.GetPlayerTemplate())
	sd.rememberCheck.SetChecked(sd.settings.GetRememberURL())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
}

// apply writes the form values to settings
func (sd *SettingsDialog) apply() {
	sd.settings.SetPlayerTemplate(sd.playerEntry.Text)
	sd.settings.SetRememberURL(sd.rememberCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
