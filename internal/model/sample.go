package model

import (
	"strings"
	"unicode"
)

// AdHocSampleName is the display name given to streams typed in by the user
const AdHocSampleName = "HLS Test"

// Sample describes one playable media source
type Sample struct {
	Name      string     // display name
	URI       string     // locator, parsed only when launched
	ContentID string     // opaque identifier forwarded to the player
	Type      StreamType // protocol family
}

// NewSample creates a sample whose content ID is derived from its URI:
// lowercased with all whitespace removed.
func NewSample(name, uri string, streamType StreamType) Sample {
	return NewSampleWithContentID(name, ContentIDFromURI(uri), uri, streamType)
}

// NewSampleWithContentID creates a sample with an explicit content ID
func NewSampleWithContentID(name, contentID, uri string, streamType StreamType) Sample {
	return Sample{
		Name:      name,
		URI:       uri,
		ContentID: contentID,
		Type:      streamType,
	}
}

// NewAdHocSample wraps user-entered text. The text is kept verbatim; the
// content ID is empty and the type is always HLS.
func NewAdHocSample(uri string) Sample {
	return Sample{
		Name:      AdHocSampleName,
		URI:       uri,
		ContentID: "",
		Type:      StreamTypeHLS,
	}
}

// IsAdHoc reports whether s was built from user-entered text by NewAdHocSample
func (s Sample) IsAdHoc() bool {
	return s.Name == AdHocSampleName && s.ContentID == "" && s.Type == StreamTypeHLS
}

// ContentIDFromURI returns the content ID the catalog assigns to samples
// that do not carry one.
func ContentIDFromURI(uri string) string {
	var b strings.Builder
	b.Grow(len(uri))
	for _, r := range strings.ToLower(uri) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// GetDisplayTitle returns the name, falling back to the URI
func (s Sample) GetDisplayTitle() string {
	if strings.TrimSpace(s.Name) != "" {
		return s.Name
	}
	return s.URI
}
