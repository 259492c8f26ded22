package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Notifier shows a short, non-blocking notice to the user
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

// Notify implements Notifier
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// ToastNotifier displays notices as a transient popup anchored to the bottom
// of the window. A new notice replaces the one on screen.
type ToastNotifier struct {
	canvas   fyne.Canvas
	duration time.Duration

	mu      sync.Mutex
	current *widget.PopUp
	timer   *time.Timer
}

// NewToastNotifier creates a notifier drawing on the given canvas
func NewToastNotifier(canvas fyne.Canvas) *ToastNotifier {
	return &ToastNotifier{
		canvas:   canvas,
		duration: ToastAutoHide,
	}
}

// SetDuration overrides how long a toast stays visible
func (n *ToastNotifier) SetDuration(d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.duration = d
}

// Notify shows message and schedules it to hide. Must be called on the UI goroutine.
func (n *ToastNotifier) Notify(message string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	label.Alignment = fyne.TextAlignCenter

	popup := widget.NewPopUp(container.NewPadded(label), n.canvas)

	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	if n.current != nil {
		n.current.Hide()
	}
	n.current = popup
	duration := n.duration
	n.mu.Unlock()

	canvasSize := n.canvas.Size()
	size := popup.MinSize()
	if maxWidth := canvasSize.Width - 2*ToastMargin; maxWidth > 0 && size.Width > maxWidth {
		size.Width = maxWidth
	}
	popup.Resize(size)
	popup.ShowAtPosition(fyne.NewPos(
		(canvasSize.Width-size.Width)/2,
		canvasSize.Height-size.Height-ToastMargin,
	))

	n.mu.Lock()
	n.timer = time.AfterFunc(duration, func() {
		fyne.Do(func() { n.hide(popup) })
	})
	n.mu.Unlock()
}

// Current returns the popup on screen, if any
func (n *ToastNotifier) Current() *widget.PopUp {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *ToastNotifier) hide(popup *widget.PopUp) {
	n.mu.Lock()
	defer n.mu.Unlock()

	popup.Hide()
	if n.current == popup {
		n.current = nil
	}
}
