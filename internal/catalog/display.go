package catalog

import (
	"context"

	"github.com/ytget/sample-chooser/internal/model"
)

// DecoderChecker answers whether a non-secure decoder for a MIME type is
// usable on this host. Implementations swallow and log their own failures.
type DecoderChecker interface {
	Supports(ctx context.Context, mimeType string) bool
}

// DecoderCheckerFunc adapts a function to DecoderChecker
type DecoderCheckerFunc func(ctx context.Context, mimeType string) bool

// Supports calls f
func (f DecoderCheckerFunc) Supports(ctx context.Context, mimeType string) bool {
	return f(ctx, mimeType)
}

// BuildDisplayList lays the catalog out as header/sample rows. Each group is
// a header followed by its samples in catalog order. Groups that require a
// decoder are skipped when checker is nil or reports it unavailable; each
// decoder is asked about at most once.
func BuildDisplayList(ctx context.Context, c *Catalog, checker DecoderChecker) model.DisplayList {
	if c == nil {
		return model.NewDisplayList(nil)
	}

	supported := make(map[string]bool)
	entries := make([]model.Entry, 0, len(c.Groups)+c.SampleCount())
	for _, g := range c.Groups {
		if g.RequiresDecoder != "" {
			ok, asked := supported[g.RequiresDecoder]
			if !asked {
				ok = checker != nil && checker.Supports(ctx, g.RequiresDecoder)
				supported[g.RequiresDecoder] = ok
			}
			if !ok {
				continue
			}
		}

		entries = append(entries, model.HeaderEntry(g.Name))
		for _, s := range g.Samples {
			entries = append(entries, model.SampleEntry(s))
		}
	}
	return model.NewDisplayList(entries)
}
