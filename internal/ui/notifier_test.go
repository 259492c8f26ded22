package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestToast(t *testing.T) *ToastNotifier {
	t.Helper()

	test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	n := NewToastNotifier(window.Canvas())
	n.SetDuration(time.Hour)
	return n
}

func toastText(t *testing.T, popup *widget.PopUp) string {
	t.Helper()

	padded, ok := popup.Content.(*fyne.Container)
	require.True(t, ok)
	require.NotEmpty(t, padded.Objects)
	label, ok := padded.Objects[0].(*widget.Label)
	require.True(t, ok)
	return label.Text
}

func TestToastNotifier_Show(t *testing.T) {
	n := newTestToast(t)

	n.Notify("Please enter a url 1st")

	popup := n.Current()
	require.NotNil(t, popup)
	assert.True(t, popup.Visible())
	assert.Equal(t, "Please enter a url 1st", toastText(t, popup))
}

func TestToastNotifier_Replaces(t *testing.T) {
	n := newTestToast(t)

	n.Notify("first")
	first := n.Current()
	n.Notify("second")
	second := n.Current()

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.False(t, first.Visible())
	assert.True(t, second.Visible())
	assert.Equal(t, "second", toastText(t, second))
}

func TestToastNotifier_Hide(t *testing.T) {
	n := newTestToast(t)

	n.Notify("bye")
	popup := n.Current()
	n.hide(popup)

	assert.Nil(t, n.Current())
	assert.False(t, popup.Visible())
}

func TestNotifierFunc(t *testing.T) {
	var got string
	var n Notifier = NotifierFunc(func(m string) { got = m })
	n.Notify("hello")
	assert.Equal(t, "hello", got)
}
