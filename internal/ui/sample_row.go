package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sample-chooser/internal/model"
)

// SampleRow renders one display-list entry. widget.List recycles a single
// template, so the row carries both layouts and shows the one matching the
// bound entry's row kind.
type SampleRow struct {
	widget.BaseWidget

	background *canvas.Rectangle
	header     *widget.Label
	item       *widget.Label
	kind       model.RowKind
}

// NewSampleRow creates an unbound row
func NewSampleRow() *SampleRow {
	r := &SampleRow{
		background: canvas.NewRectangle(theme.Color(theme.ColorNameHeaderBackground)),
		header:     widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		item:       widget.NewLabel(""),
		kind:       model.RowKindItem,
	}
	r.header.Importance = widget.HighImportance
	r.item.Truncation = fyne.TextTruncateEllipsis
	r.background.Hide()
	r.header.Hide()

	r.ExtendBaseWidget(r)
	return r
}

// Bind shows entry in the row
func (r *SampleRow) Bind(entry model.Entry) {
	r.kind = entry.RowKind()

	switch r.kind {
	case model.RowKindHeader:
		r.header.SetText(entry.Label())
		r.item.Hide()
		r.background.Show()
		r.header.Show()
	default:
		r.item.SetText(entry.Label())
		r.background.Hide()
		r.header.Hide()
		r.item.Show()
	}
}

func (r *SampleRow) boundKind() model.RowKind {
	return r.kind
}

func (r *SampleRow) visibleText() string {
	if r.kind == model.RowKindHeader {
		return r.header.Text
	}
	return r.item.Text
}

// CreateRenderer implements fyne.Widget
func (r *SampleRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(r.background, r.header, r.item))
}

// displayListAdapter feeds a DisplayList to widget.List
type displayListAdapter struct {
	entries model.DisplayList
}

func (a displayListAdapter) Length() int {
	return a.entries.Len()
}

func (a displayListAdapter) CreateItem() fyne.CanvasObject {
	return NewSampleRow()
}

func (a displayListAdapter) UpdateItem(id widget.ListItemID, obj fyne.CanvasObject) {
	entry, ok := a.entries.At(id)
	if !ok {
		return
	}
	if row, ok := obj.(*SampleRow); ok {
		row.Bind(entry)
	}
}
