package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MobileUI adapts widget sizing when running on a phone or tablet
type MobileUI struct {
	mobile bool
}

// NewMobileUI creates a helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{mobile: fyne.CurrentDevice().IsMobile()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.mobile
}

// CreateMobileButton creates a button sized for touch on mobile
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.HighImportance

	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileRowButtonHeight))
	}

	return btn
}

// CreateMobileEntry creates a single-line URL entry that never wraps
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.Wrapping = fyne.TextWrapOff
	return entry
}

// GetMobilePadding returns the padding around the URL bar
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 12
	}
	return 6
}
