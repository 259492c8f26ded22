package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/sample-chooser/internal/catalog"
	"github.com/ytget/sample-chooser/internal/config"
	applog "github.com/ytget/sample-chooser/internal/log"
	"github.com/ytget/sample-chooser/internal/model"
	"github.com/ytget/sample-chooser/internal/playback"
)

// SampleChooser is the main screen: a URL entry with a start button above
// the list of catalog samples grouped under section headers.
type SampleChooser struct {
	window   fyne.Window
	settings *config.Settings
	loc      *Localization
	mobile   *MobileUI
	logger   zerolog.Logger

	launcher playback.Launcher
	notifier Notifier
	entries  model.DisplayList

	list     *widget.List
	urlEntry *widget.Entry
	startBtn *widget.Button
	urlBar   *fyne.Container
	content  fyne.CanvasObject

	settingsDialog  *SettingsDialog
	onSettingsSaved func()
}

// NewSampleChooser builds the display list from cat and creates the screen.
// Groups that need a decoder are shown only if decoders reports support.
func NewSampleChooser(
	ctx context.Context,
	window fyne.Window,
	settings *config.Settings,
	cat *catalog.Catalog,
	decoders catalog.DecoderChecker,
	launcher playback.Launcher,
) *SampleChooser {
	c := &SampleChooser{
		window:   window,
		settings: settings,
		loc:      NewLocalization(),
		mobile:   NewMobileUI(),
		logger:   applog.WithComponent("chooser"),
		launcher: launcher,
		notifier: NewToastNotifier(window.Canvas()),
		entries:  catalog.BuildDisplayList(ctx, cat, decoders),
	}
	c.loc.SetLanguage(settings.GetLanguage())

	c.logger.Info().
		Int("rows", c.entries.Len()).
		Int("samples", len(c.entries.Samples())).
		Strs("groups", c.entries.Headers()).
		Msg("Display list built")

	c.createUI()
	return c
}

// SetNotifier replaces the toast notifier
func (c *SampleChooser) SetNotifier(n Notifier) {
	c.notifier = n
}

// SetSettingsCallback registers a function run after settings are saved
func (c *SampleChooser) SetSettingsCallback(callback func()) {
	c.onSettingsSaved = callback
}

// Entries returns the rows shown by the list
func (c *SampleChooser) Entries() model.DisplayList {
	return c.entries
}

// Content returns the root canvas object of the screen
func (c *SampleChooser) Content() fyne.CanvasObject {
	return c.content
}

// Install puts the screen into its window
func (c *SampleChooser) Install() {
	c.window.SetTitle(c.loc.GetText(KeyAppTitle))
	c.window.SetMainMenu(c.createMainMenu())
	c.window.SetContent(c.content)
}

func (c *SampleChooser) createUI() {
	adapter := displayListAdapter{entries: c.entries}
	c.list = widget.NewList(adapter.Length, adapter.CreateItem, adapter.UpdateItem)
	c.list.OnSelected = c.onRowSelected

	c.urlEntry = c.mobile.CreateMobileEntry(c.loc.GetText(KeyEnterURL))
	c.urlEntry.SetText(c.settings.GetLastStreamURL())
	c.urlEntry.OnSubmitted = func(string) { c.onStartStream() }

	c.startBtn = c.mobile.CreateMobileButton(c.loc.GetText(KeyStartStream), c.onStartStream)

	pad := c.mobile.GetMobilePadding()
	c.urlBar = container.New(
		layout.NewCustomPaddedLayout(pad, pad, pad, pad),
		container.NewBorder(nil, nil, nil, c.startBtn, c.urlEntry),
	)
	c.content = container.NewBorder(c.urlBar, nil, nil, nil, c.list)

	c.settingsDialog = NewSettingsDialog(c.settings, c.window, c.loc, c.applySettings)
}

func (c *SampleChooser) createMainMenu() *fyne.MainMenu {
	settingsItem := fyne.NewMenuItem(c.loc.GetText(KeySettings), c.ShowSettings)
	return fyne.NewMainMenu(fyne.NewMenu(c.loc.GetText(KeyFile), settingsItem))
}

// ShowSettings opens the settings dialog
func (c *SampleChooser) ShowSettings() {
	c.settingsDialog.Show()
}

func (c *SampleChooser) applySettings() {
	c.loc.SetLanguage(c.settings.GetLanguage())
	c.refreshTexts()

	if c.onSettingsSaved != nil {
		c.onSettingsSaved()
	}
	c.notifier.Notify(c.loc.GetText(KeySettingsSaved))
}

func (c *SampleChooser) refreshTexts() {
	c.startBtn.SetText(c.loc.GetText(KeyStartStream))
	c.urlEntry.SetPlaceHolder(c.loc.GetText(KeyEnterURL))
	c.window.SetTitle(c.loc.GetText(KeyAppTitle))
	c.window.SetMainMenu(c.createMainMenu())

	// Dialog labels are fixed at creation.
	c.settingsDialog = NewSettingsDialog(c.settings, c.window, c.loc, c.applySettings)
}

// onRowSelected launches the tapped sample. Header rows do nothing.
func (c *SampleChooser) onRowSelected(id widget.ListItemID) {
	c.list.Unselect(id)

	entry, ok := c.entries.At(id)
	if !ok || !entry.IsSample() {
		return
	}

	if err := c.launchPlayback(entry.Sample); err != nil {
		c.logger.Error().
			Err(err).
			Str("sample", entry.Sample.GetDisplayTitle()).
			Msg("Playback launch failed")
		c.notifier.Notify(c.loc.GetText(KeyPlaybackFailed) + err.Error())
	}
}

// onStartStream launches the typed URL as an ad-hoc HLS sample. Launch
// errors are reported as a notice and never propagated.
func (c *SampleChooser) onStartStream() {
	text := c.urlEntry.Text
	if strings.TrimSpace(text) == "" {
		c.notifier.Notify(c.loc.GetText(KeyPleaseEnterURL))
		return
	}

	if err := c.launchPlayback(model.NewAdHocSample(text)); err != nil {
		c.logger.Warn().Err(err).Str("uri", text).Msg("Ad-hoc stream rejected")
		c.notifier.Notify(c.loc.GetText(KeyURIUnparsable) + err.Error())
	}
}

func (c *SampleChooser) launchPlayback(sample model.Sample) error {
	c.logger.Debug().
		Str("name", sample.Name).
		Str("uri", sample.URI).
		Str("content_id", sample.ContentID).
		Str("type", sample.Type.String()).
		Msg("Launching playback")
	return c.launcher.Launch(sample)
}
