// Package catalog holds the sample groups offered by the chooser and turns
// them into the display list. Groups can require a decoder; those are only
// shown when the host reports the capability.
package catalog

import (
	"github.com/ytget/sample-chooser/internal/model"
)

// Group names of the built-in catalog, in display order
const (
	GroupYouTubeDASH     = "YouTube DASH"
	GroupWidevineGTS     = "Widevine GTS DASH"
	GroupSmoothStreaming = "SmoothStreaming"
	GroupHLS             = "HLS"
	GroupMisc            = "Misc"
	GroupYouTubeWebM     = "YouTube WebM DASH (Experimental)"
)

// MimeVP9 is the codec identifier the WebM group depends on
const MimeVP9 = "video/x-vnd.on2.vp9"

// Group is a named, ordered run of samples
type Group struct {
	Name    string
	Samples []model.Sample

	// RequiresDecoder, when set, is the MIME type of a non-secure decoder
	// that must be available for the group to be listed.
	RequiresDecoder string
}

// Catalog is an ordered list of groups
type Catalog struct {
	Groups []Group
}

// Default returns the built-in catalog
func Default() *Catalog {
	return &Catalog{
		Groups: []Group{
			{Name: GroupYouTubeDASH, Samples: youtubeDashMP4()},
			{Name: GroupWidevineGTS, Samples: widevineGTS()},
			{Name: GroupSmoothStreaming, Samples: smoothStreaming()},
			{Name: GroupHLS, Samples: hls()},
			{Name: GroupMisc, Samples: misc()},
			{Name: GroupYouTubeWebM, Samples: youtubeDashWebM(), RequiresDecoder: MimeVP9},
		},
	}
}

// Append returns a new catalog with g added after the existing groups
func (c *Catalog) Append(g Group) *Catalog {
	groups := make([]Group, 0, len(c.Groups)+1)
	groups = append(groups, c.Groups...)
	groups = append(groups, g)
	return &Catalog{Groups: groups}
}

// Group returns the group with the given name
func (c *Catalog) Group(name string) (Group, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// SampleCount returns the number of samples across all groups
func (c *Catalog) SampleCount() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Samples)
	}
	return n
}
