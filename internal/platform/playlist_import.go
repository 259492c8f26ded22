package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/sample-chooser/internal/catalog"
	"github.com/ytget/sample-chooser/internal/model"
)

// Timeout constants
const (
	DefaultImportTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// ImportedGroupName names the group holding an imported playlist
const ImportedGroupName = "YouTube Playlist"

// PlaylistItem is one video of a remote playlist
type PlaylistItem struct {
	VideoID string
	Title   string
}

// playlistFetcher lists the items of a playlist by ID
type playlistFetcher func(ctx context.Context, playlistID string) ([]PlaylistItem, error)

func fetchWithYTDLP(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		out = append(out, PlaylistItem{VideoID: it.VideoID, Title: it.Title})
	}
	return out, nil
}

// PlaylistImporter turns a YouTube playlist into a catalog group
type PlaylistImporter struct {
	timeout time.Duration
	fetch   playlistFetcher
}

// NewPlaylistImporter creates a new importer backed by ytdlp
func NewPlaylistImporter() *PlaylistImporter {
	return &PlaylistImporter{
		timeout: DefaultImportTimeout,
		fetch:   fetchWithYTDLP,
	}
}

// SetTimeout sets the timeout for import operations
func (p *PlaylistImporter) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Import fetches the playlist behind url. Videos become samples of type
// other with content ID equal to the video ID; untitled videos use the ID.
func (p *PlaylistImporter) Import(ctx context.Context, url string) (catalog.Group, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return catalog.Group{}, fmt.Errorf("invalid playlist URL: %s", url)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	items, err := p.fetch(ctx, playlistID)
	if err != nil {
		return catalog.Group{}, fmt.Errorf("failed to get playlist items: %w", err)
	}

	group := catalog.Group{
		Name:    ImportedGroupName,
		Samples: make([]model.Sample, 0, len(items)),
	}
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		title := strings.TrimSpace(it.Title)
		if title == "" {
			title = it.VideoID
		}
		group.Samples = append(group.Samples, model.NewSampleWithContentID(
			title, it.VideoID, fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID), model.StreamTypeOther))
	}
	return group, nil
}

// ExtractPlaylistID extracts the playlist ID from a URL's list= parameter
func ExtractPlaylistID(url string) string {
	_, after, found := strings.Cut(url, PlaylistParam)
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(after, ParamSeparator)
	return strings.TrimSpace(id)
}
