package ui

import "time"

// Layout sizing
const (
	WindowWidth  float32 = 480
	WindowHeight float32 = 720

	// Mobile-specific sizing
	MobileButtonWidth     float32 = 60
	MobileRowButtonHeight float32 = 52
)

// Toast notification sizing and behavior
const (
	ToastMargin   float32 = 24
	ToastAutoHide         = 2 * time.Second // matches a short platform toast
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 260
)
