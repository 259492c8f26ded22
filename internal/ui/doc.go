// Package ui contains the Fyne-based sample chooser: the screen that lists
// catalog samples under section headers, the row adapter that renders them,
// transient notices, and the settings dialog. All UI strings are localized
// via Localization.
package ui
