package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/sample-chooser/internal/model"
)

const validCatalog = `
groups:
  - name: HLS
    samples:
      - name: Apple master playlist
        uri: https://example.com/master.m3u8
        type: hls
      - name: Custom ID
        uri: https://example.com/Other.m3u8
        content_id: my-id
        type: HLS
  - name: WebM
    requires_decoder: video/x-vnd.on2.vp9
    samples:
      - name: Glass
        uri: https://example.com/glass.mpd
        type: dash
`

func TestParse_Valid(t *testing.T) {
	c, err := Parse(strings.NewReader(validCatalog))
	require.NoError(t, err)
	require.Len(t, c.Groups, 2)

	hls := c.Groups[0]
	assert.Equal(t, "HLS", hls.Name)
	assert.Empty(t, hls.RequiresDecoder)
	require.Len(t, hls.Samples, 2)
	assert.Equal(t, model.StreamTypeHLS, hls.Samples[0].Type)
	assert.Equal(t, "https://example.com/master.m3u8", hls.Samples[0].ContentID)
	assert.Equal(t, "my-id", hls.Samples[1].ContentID)

	webm := c.Groups[1]
	assert.Equal(t, "video/x-vnd.on2.vp9", webm.RequiresDecoder)
	assert.Equal(t, model.StreamTypeDASH, webm.Samples[0].Type)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		group   int
		sample  int
		wantVal bool
	}{
		{
			name:    "empty document",
			input:   "",
			group:   -1,
			sample:  -1,
			wantVal: true,
		},
		{
			name:    "no groups",
			input:   "groups: []",
			group:   -1,
			sample:  -1,
			wantVal: true,
		},
		{
			name:    "empty group name",
			input:   "groups:\n  - name: ''\n",
			group:   0,
			sample:  -1,
			wantVal: true,
		},
		{
			name:    "unknown stream type",
			input:   "groups:\n  - name: A\n    samples:\n      - {name: x, uri: 'http://x', type: rtmp}\n",
			group:   0,
			sample:  0,
			wantVal: true,
		},
		{
			name:    "missing uri",
			input:   "groups:\n  - name: A\n  - name: B\n    samples:\n      - {name: x, type: hls}\n",
			group:   1,
			sample:  0,
			wantVal: true,
		},
		{
			name:  "unknown field",
			input: "groups:\n  - name: A\n    colour: red\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)

			var verr *ValidationError
			if !tt.wantVal {
				assert.False(t, errors.As(err, &verr))
				return
			}
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.group, verr.Group)
			assert.Equal(t, tt.sample, verr.Sample)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.SampleCount())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "catalog: no groups defined", (&ValidationError{Group: -1, Sample: -1, Reason: "no groups defined"}).Error())
	assert.Equal(t, "catalog: group 2: bad", (&ValidationError{Group: 2, Sample: -1, Reason: "bad"}).Error())
	assert.Equal(t, "catalog: group 1 sample 3: bad", (&ValidationError{Group: 1, Sample: 3, Reason: "bad"}).Error())
}
