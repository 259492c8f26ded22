package model

import (
	"fmt"
	"strings"
)

// StreamType identifies the protocol family of a sample
type StreamType string

const (
	// StreamTypeDASH is MPEG-DASH (including Widevine protected manifests)
	StreamTypeDASH StreamType = "dash"

	// StreamTypeSmoothStreaming is Microsoft SmoothStreaming
	StreamTypeSmoothStreaming StreamType = "smoothstreaming"

	// StreamTypeHLS is HTTP Live Streaming
	StreamTypeHLS StreamType = "hls"

	// StreamTypeOther is a plain progressive file (mp4, mp3, aac, ...)
	StreamTypeOther StreamType = "other"
)

// MIME hints handed to platform openers
const (
	MimeDASH            = "application/dash+xml"
	MimeSmoothStreaming = "application/vnd.ms-sstr+xml"
	MimeHLS             = "application/vnd.apple.mpegurl"
	MimeAnyVideo        = "video/*"
)

// String returns the string representation of StreamType
func (st StreamType) String() string {
	return string(st)
}

// IsAdaptive returns true for manifest based stream types
func (st StreamType) IsAdaptive() bool {
	return st == StreamTypeDASH || st == StreamTypeSmoothStreaming || st == StreamTypeHLS
}

// MimeType returns the MIME type used when asking the OS to open the stream
func (st StreamType) MimeType() string {
	switch st {
	case StreamTypeDASH:
		return MimeDASH
	case StreamTypeSmoothStreaming:
		return MimeSmoothStreaming
	case StreamTypeHLS:
		return MimeHLS
	default:
		return MimeAnyVideo
	}
}

// ParseStreamType converts a catalog or CLI value into a StreamType.
// Matching is case-insensitive; "ss" and "mp4" are accepted aliases.
func ParseStreamType(s string) (StreamType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dash":
		return StreamTypeDASH, nil
	case "smoothstreaming", "ss":
		return StreamTypeSmoothStreaming, nil
	case "hls":
		return StreamTypeHLS, nil
	case "other", "mp4", "":
		return StreamTypeOther, nil
	default:
		return "", fmt.Errorf("unknown stream type: %q", s)
	}
}
