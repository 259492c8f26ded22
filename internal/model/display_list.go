package model

// DisplayList is the ordered sequence rendered by the chooser.
// It is built once and never mutated.
type DisplayList struct {
	entries []Entry
}

// NewDisplayList copies entries into a new list
func NewDisplayList(entries []Entry) DisplayList {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return DisplayList{entries: cp}
}

// Len returns the number of rows
func (l DisplayList) Len() int {
	return len(l.entries)
}

// At returns the entry at index i and whether i is in range
func (l DisplayList) At(i int) (Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Entries returns a copy of all entries
func (l DisplayList) Entries() []Entry {
	cp := make([]Entry, len(l.entries))
	copy(cp, l.entries)
	return cp
}

// Samples returns the sample entries in display order
func (l DisplayList) Samples() []Sample {
	var samples []Sample
	for _, e := range l.entries {
		if e.IsSample() {
			samples = append(samples, e.Sample)
		}
	}
	return samples
}

// Headers returns the header labels in display order
func (l DisplayList) Headers() []string {
	var headers []string
	for _, e := range l.entries {
		if e.Kind == EntryHeader {
			headers = append(headers, e.Header.Name)
		}
	}
	return headers
}
