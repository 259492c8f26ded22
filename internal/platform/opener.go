package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/ytget/sample-chooser/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	// rundll32 hands the URL to the registered protocol handler without a
	// shell, so "&" and "%" in query strings are passed through untouched.
	RundllCommand  = "rundll32"
	URLHandlerArg  = "url.dll,FileProtocolHandler"
	AndroidAM      = "am"
)

// Android intent parameters, mirroring the player's extras
const (
	AndroidActionView     = "android.intent.action.VIEW"
	AndroidExtraContentID = "content_id"
	AndroidExtraType      = "content_type"
)

// Player command template placeholders
const (
	PlaceholderURI       = "{uri}"
	PlaceholderContentID = "{content_id}"
	PlaceholderType      = "{type}"
	PlaceholderName      = "{name}"
)

// ErrEmptyCommand is returned when a player template expands to nothing
var ErrEmptyCommand = errors.New("player command is empty")

// startFunc starts a process without waiting for it
type startFunc func(name string, args ...string) error

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

// StreamOpener hands streams to an external player. With a player template
// set it runs that command, otherwise the OS default handler for the URI.
type StreamOpener struct {
	template string
	goos     string
	start    startFunc
}

// NewStreamOpener creates an opener. playerTemplate may be empty, e.g.
// "mpv --force-media-title={name} {uri}".
func NewStreamOpener(playerTemplate string) *StreamOpener {
	return &StreamOpener{
		template: strings.TrimSpace(playerTemplate),
		goos:     runtime.GOOS,
		start:    startDetached,
	}
}

// SetPlayerTemplate replaces the player command template
func (o *StreamOpener) SetPlayerTemplate(template string) {
	o.template = strings.TrimSpace(template)
}

// PlayerTemplate returns the configured template
func (o *StreamOpener) PlayerTemplate() string {
	return o.template
}

// OpenStream starts playback and returns once the process is spawned
func (o *StreamOpener) OpenStream(uri *url.URL, contentID string, streamType model.StreamType, name string) error {
	if uri == nil {
		return errors.New("nil stream uri")
	}

	name, args, err := o.command(uri.String(), contentID, streamType, name)
	if err != nil {
		return err
	}
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}

func (o *StreamOpener) command(uri, contentID string, streamType model.StreamType, title string) (string, []string, error) {
	if o.template != "" {
		return expandTemplate(o.template, uri, contentID, streamType, title)
	}

	switch o.goos {
	case OSDarwin:
		return OpenCommand, []string{uri}, nil
	case OSWindows:
		return RundllCommand, []string{URLHandlerArg, uri}, nil
	case OSLinux:
		return XDGOpenCommand, []string{uri}, nil
	case OSAndroid:
		return AndroidAM, []string{
			"start", "-a", AndroidActionView,
			"-d", uri,
			"-t", streamType.MimeType(),
			"--es", AndroidExtraContentID, contentID,
			"--es", AndroidExtraType, streamType.String(),
		}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// expandTemplate splits the template on whitespace and substitutes
// placeholders per argument, so a substituted value never splits. The URI is
// appended when the template does not mention it.
func expandTemplate(template, uri, contentID string, streamType model.StreamType, title string) (string, []string, error) {
	fields := strings.Fields(template)
	if len(fields) == 0 {
		return "", nil, ErrEmptyCommand
	}

	r := strings.NewReplacer(
		PlaceholderURI, uri,
		PlaceholderContentID, contentID,
		PlaceholderType, streamType.String(),
		PlaceholderName, title,
	)

	hasURI := false
	args := make([]string, 0, len(fields))
	for _, f := range fields[1:] {
		if strings.Contains(f, PlaceholderURI) {
			hasURI = true
		}
		args = append(args, r.Replace(f))
	}
	if !hasURI {
		args = append(args, uri)
	}
	return fields[0], args, nil
}
