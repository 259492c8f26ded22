package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/sample-chooser/internal/model"
)

type countingChecker struct {
	available map[string]bool
	calls     map[string]int
}

func newCountingChecker(available map[string]bool) *countingChecker {
	return &countingChecker{available: available, calls: make(map[string]int)}
}

func (c *countingChecker) Supports(_ context.Context, mimeType string) bool {
	c.calls[mimeType]++
	return c.available[mimeType]
}

// expectedRows flattens groups the way the chooser lays them out
func expectedRows(groups ...Group) []model.Entry {
	var rows []model.Entry
	for _, g := range groups {
		rows = append(rows, model.HeaderEntry(g.Name))
		for _, s := range g.Samples {
			rows = append(rows, model.SampleEntry(s))
		}
	}
	return rows
}

func TestBuildDisplayList_WithDecoder(t *testing.T) {
	c := Default()
	checker := newCountingChecker(map[string]bool{MimeVP9: true})

	list := BuildDisplayList(context.Background(), c, checker)

	assert.Equal(t, expectedRows(c.Groups...), list.Entries())
	assert.Equal(t, 1, checker.calls[MimeVP9])
	assert.Equal(t, []string{
		GroupYouTubeDASH, GroupWidevineGTS, GroupSmoothStreaming, GroupHLS, GroupMisc, GroupYouTubeWebM,
	}, list.Headers())
}

func TestBuildDisplayList_WithoutDecoder(t *testing.T) {
	c := Default()
	checker := newCountingChecker(nil)

	list := BuildDisplayList(context.Background(), c, checker)

	assert.Equal(t, expectedRows(c.Groups[:5]...), list.Entries())
	assert.NotContains(t, list.Headers(), GroupYouTubeWebM)
	assert.Equal(t, 1, checker.calls[MimeVP9])
}

func TestBuildDisplayList_NilChecker(t *testing.T) {
	c := Default()
	list := BuildDisplayList(context.Background(), c, nil)
	assert.NotContains(t, list.Headers(), GroupYouTubeWebM)
}

func TestBuildDisplayList_WebMEntriesMatchCatalog(t *testing.T) {
	c := Default()
	list := BuildDisplayList(context.Background(), c, DecoderCheckerFunc(func(context.Context, string) bool { return true }))

	webm, ok := c.Group(GroupYouTubeWebM)
	require.True(t, ok)

	entries := list.Entries()
	var start int
	for i, e := range entries {
		if e.Kind == model.EntryHeader && e.Header.Name == GroupYouTubeWebM {
			start = i + 1
		}
	}
	require.NotZero(t, start)

	var got []model.Sample
	for _, e := range entries[start:] {
		require.True(t, e.IsSample())
		got = append(got, e.Sample)
	}
	assert.Equal(t, webm.Samples, got)
}

func TestBuildDisplayList_CachesPerDecoder(t *testing.T) {
	c := &Catalog{Groups: []Group{
		{Name: "A", RequiresDecoder: "video/av01", Samples: []model.Sample{model.NewSample("a", "http://a", model.StreamTypeOther)}},
		{Name: "B", RequiresDecoder: "video/av01"},
		{Name: "C", RequiresDecoder: MimeVP9},
		{Name: "D"},
	}}
	checker := newCountingChecker(map[string]bool{"video/av01": true})

	list := BuildDisplayList(context.Background(), c, checker)

	assert.Equal(t, []string{"A", "B", "D"}, list.Headers())
	assert.Equal(t, 1, checker.calls["video/av01"])
	assert.Equal(t, 1, checker.calls[MimeVP9])
}

func TestBuildDisplayList_NilCatalog(t *testing.T) {
	list := BuildDisplayList(context.Background(), nil, nil)
	assert.Zero(t, list.Len())
}
