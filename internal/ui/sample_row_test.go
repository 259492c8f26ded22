package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/sample-chooser/internal/model"
)

func TestSampleRow_Bind(t *testing.T) {
	test.NewApp()

	row := NewSampleRow()
	sample := model.NewSample("Apple 16x9 basic stream", "https://example.com/bipbop.m3u8", model.StreamTypeHLS)

	row.Bind(model.HeaderEntry("HLS"))
	if row.boundKind() != model.RowKindHeader {
		t.Errorf("Expected header kind, got %v", row.boundKind())
	}
	if row.visibleText() != "HLS" {
		t.Errorf("Expected header text %q, got %q", "HLS", row.visibleText())
	}
	if !row.header.Visible() || row.item.Visible() {
		t.Error("Header row should show only the header label")
	}

	// Recycled template switches back to an item row.
	row.Bind(model.SampleEntry(sample))
	if row.boundKind() != model.RowKindItem {
		t.Errorf("Expected item kind, got %v", row.boundKind())
	}
	if row.visibleText() != sample.GetDisplayTitle() {
		t.Errorf("Expected item text %q, got %q", sample.GetDisplayTitle(), row.visibleText())
	}
	if row.header.Visible() || !row.item.Visible() {
		t.Error("Item row should show only the item label")
	}
}

func TestDisplayListAdapter(t *testing.T) {
	test.NewApp()

	sample := model.NewSample("Dizzy", "https://example.com/dizzy.mp4", model.StreamTypeOther)
	adapter := displayListAdapter{entries: model.NewDisplayList([]model.Entry{
		model.HeaderEntry("Misc"),
		model.SampleEntry(sample),
	})}

	if adapter.Length() != 2 {
		t.Fatalf("Expected length 2, got %d", adapter.Length())
	}

	obj := adapter.CreateItem()
	row, ok := obj.(*SampleRow)
	if !ok {
		t.Fatalf("Expected *SampleRow, got %T", obj)
	}

	adapter.UpdateItem(0, row)
	if row.boundKind() != model.RowKindHeader || row.visibleText() != "Misc" {
		t.Errorf("Row 0: got kind %v text %q", row.boundKind(), row.visibleText())
	}

	adapter.UpdateItem(1, row)
	if row.boundKind() != model.RowKindItem || row.visibleText() != "Dizzy" {
		t.Errorf("Row 1: got kind %v text %q", row.boundKind(), row.visibleText())
	}

	// Out of range ids leave the row untouched.
	adapter.UpdateItem(5, row)
	if row.visibleText() != "Dizzy" {
		t.Errorf("Out of range update changed row to %q", row.visibleText())
	}
}
