package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/sample-chooser/internal/model"
)

// ValidationError reports a malformed catalog file entry
type ValidationError struct {
	Group  int // group index, -1 for file level problems
	Sample int // sample index within the group, -1 for group level problems
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Group < 0:
		return "catalog: " + e.Reason
	case e.Sample < 0:
		return fmt.Sprintf("catalog: group %d: %s", e.Group, e.Reason)
	default:
		return fmt.Sprintf("catalog: group %d sample %d: %s", e.Group, e.Sample, e.Reason)
	}
}

type fileSample struct {
	Name      string `yaml:"name"`
	URI       string `yaml:"uri"`
	ContentID string `yaml:"content_id"`
	Type      string `yaml:"type"`
}

type fileGroup struct {
	Name            string       `yaml:"name"`
	RequiresDecoder string       `yaml:"requires_decoder"`
	Samples         []fileSample `yaml:"samples"`
}

type fileCatalog struct {
	Groups []fileGroup `yaml:"groups"`
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. Samples without content_id get one derived
// from their URI.
func Parse(r io.Reader) (*Catalog, error) {
	var fc fileCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Group: -1, Sample: -1, Reason: "empty catalog"}
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(fc.Groups) == 0 {
		return nil, &ValidationError{Group: -1, Sample: -1, Reason: "no groups defined"}
	}

	c := &Catalog{Groups: make([]Group, 0, len(fc.Groups))}
	for gi, fg := range fc.Groups {
		if strings.TrimSpace(fg.Name) == "" {
			return nil, &ValidationError{Group: gi, Sample: -1, Reason: "group name is empty"}
		}
		g := Group{
			Name:            fg.Name,
			RequiresDecoder: strings.TrimSpace(fg.RequiresDecoder),
			Samples:         make([]model.Sample, 0, len(fg.Samples)),
		}
		for si, fs := range fg.Samples {
			s, err := fs.toSample()
			if err != nil {
				return nil, &ValidationError{Group: gi, Sample: si, Reason: err.Error()}
			}
			g.Samples = append(g.Samples, s)
		}
		c.Groups = append(c.Groups, g)
	}
	return c, nil
}

func (fs fileSample) toSample() (model.Sample, error) {
	if strings.TrimSpace(fs.Name) == "" {
		return model.Sample{}, errors.New("sample name is empty")
	}
	if strings.TrimSpace(fs.URI) == "" {
		return model.Sample{}, errors.New("sample uri is empty")
	}
	st, err := model.ParseStreamType(fs.Type)
	if err != nil {
		return model.Sample{}, err
	}
	if fs.ContentID == "" {
		return model.NewSample(fs.Name, fs.URI, st), nil
	}
	return model.NewSampleWithContentID(fs.Name, fs.ContentID, fs.URI, st), nil
}
