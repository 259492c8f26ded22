package playback

import (
	"net/url"

	"github.com/ytget/sample-chooser/internal/model"
)

// Launcher starts playback of a sample. It does not wait for playback to
// finish.
type Launcher interface {
	Launch(sample model.Sample) error
}

// Opener spawns the process that plays a stream
type Opener interface {
	OpenStream(uri *url.URL, contentID string, streamType model.StreamType, name string) error
}

// LauncherFunc adapts a function to Launcher
type LauncherFunc func(sample model.Sample) error

// Launch calls f
func (f LauncherFunc) Launch(sample model.Sample) error {
	return f(sample)
}
