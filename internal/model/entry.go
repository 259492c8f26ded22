package model

import "fmt"

// Header is a non-interactive label grouping the samples that follow it
type Header struct {
	Name string
}

// EntryKind discriminates the two variants a display list can hold
type EntryKind int

const (
	EntryHeader EntryKind = iota
	EntrySample
)

func (k EntryKind) String() string {
	switch k {
	case EntryHeader:
		return "header"
	case EntrySample:
		return "sample"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// RowKind selects the row template used to render an entry
type RowKind int

const (
	RowKindHeader RowKind = iota
	RowKindItem

	// RowKindCount is the number of distinct row templates
	RowKindCount = 2
)

func (k RowKind) String() string {
	switch k {
	case RowKindHeader:
		return "header"
	case RowKindItem:
		return "item"
	default:
		return fmt.Sprintf("RowKind(%d)", int(k))
	}
}

// Entry is either a Header or a Sample. Only the field matching Kind is set.
type Entry struct {
	Kind   EntryKind
	Header Header
	Sample Sample
}

// HeaderEntry wraps a section label
func HeaderEntry(name string) Entry {
	return Entry{Kind: EntryHeader, Header: Header{Name: name}}
}

// SampleEntry wraps a sample
func SampleEntry(s Sample) Entry {
	return Entry{Kind: EntrySample, Sample: s}
}

// IsSample reports whether the entry is selectable
func (e Entry) IsSample() bool {
	return e.Kind == EntrySample
}

// RowKind maps the variant to its row template
func (e Entry) RowKind() RowKind {
	switch e.Kind {
	case EntrySample:
		return RowKindItem
	default:
		return RowKindHeader
	}
}

// Label returns the text shown on the entry's row
func (e Entry) Label() string {
	switch e.Kind {
	case EntrySample:
		return e.Sample.Name
	default:
		return e.Header.Name
	}
}
