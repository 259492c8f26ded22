package model

import "testing"

func TestEntry_RowKind(t *testing.T) {
	sample := NewSample("Dizzy", "http://example.com/dizzy.mp4", StreamTypeOther)

	tests := []struct {
		entry    Entry
		expected RowKind
	}{
		{HeaderEntry("HLS"), RowKindHeader},
		{HeaderEntry(""), RowKindHeader},
		{SampleEntry(sample), RowKindItem},
		{SampleEntry(Sample{}), RowKindItem},
	}

	for _, test := range tests {
		if got := test.entry.RowKind(); got != test.expected {
			t.Errorf("Entry(%s).RowKind() = %s, expected %s", test.entry.Kind, got, test.expected)
		}
	}
}

func TestEntry_Label(t *testing.T) {
	header := HeaderEntry("Misc")
	if got := header.Label(); got != "Misc" {
		t.Errorf("header Label() = %q, expected Misc", got)
	}

	item := SampleEntry(NewSample("Dizzy", "http://example.com/dizzy.mp4", StreamTypeOther))
	if got := item.Label(); got != "Dizzy" {
		t.Errorf("sample Label() = %q, expected Dizzy", got)
	}
}

func TestEntry_IsSample(t *testing.T) {
	if HeaderEntry("x").IsSample() {
		t.Error("header entry must not be selectable")
	}
	if !SampleEntry(Sample{Name: "x"}).IsSample() {
		t.Error("sample entry must be selectable")
	}
}

func TestRowKindCount(t *testing.T) {
	if RowKindCount != 2 {
		t.Errorf("expected exactly two row kinds, got %d", RowKindCount)
	}
}

func TestDisplayList(t *testing.T) {
	a := NewSample("A", "http://example.com/a", StreamTypeHLS)
	b := NewSample("B", "http://example.com/b", StreamTypeHLS)
	entries := []Entry{HeaderEntry("HLS"), SampleEntry(a), SampleEntry(b)}

	list := NewDisplayList(entries)
	entries[0] = HeaderEntry("mutated")

	if list.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", list.Len())
	}

	first, ok := list.At(0)
	if !ok || first.Header.Name != "HLS" {
		t.Errorf("list must not alias the input slice, got %+v", first)
	}

	if _, ok := list.At(3); ok {
		t.Error("At() out of range should report false")
	}
	if _, ok := list.At(-1); ok {
		t.Error("At(-1) should report false")
	}

	samples := list.Samples()
	if len(samples) != 2 || samples[0] != a || samples[1] != b {
		t.Errorf("unexpected samples: %+v", samples)
	}

	headers := list.Headers()
	if len(headers) != 1 || headers[0] != "HLS" {
		t.Errorf("unexpected headers: %v", headers)
	}

	copied := list.Entries()
	copied[1] = HeaderEntry("x")
	if e, _ := list.At(1); !e.IsSample() {
		t.Error("Entries() must return a copy")
	}
}
