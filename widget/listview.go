// Package widget provides a tcell-backed list-view control: columns, rows
// with permanent ids, single selection, header-click sorting, and the
// multi-phase custom-draw notification stream a color dispatcher subscribes
// to. The widget never resolves colors itself; it asks its draw hook and
// honors the returned codes.
package widget

import (
	"sort"

	"github.com/lixenwraith/lvtint/color"
	"github.com/lixenwraith/lvtint/notify"
)

// Align specifies text alignment within a column
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column describes one list-view column
type Column struct {
	Title string
	Width int // Cells, minimum 3
	Align Align
}

// Palette holds the control's baseline colors
type Palette struct {
	Bg       color.Value
	Fg       color.Value
	SelBg    color.Value
	SelFg    color.Value
	HeaderBg color.Value
	HeaderFg color.Value
}

// DefaultPalette provides reasonable defaults for a dark terminal
func DefaultPalette() Palette {
	return Palette{
		Bg:       color.New(20, 20, 30),
		Fg:       color.New(200, 200, 200),
		SelBg:    color.New(40, 60, 90),
		SelFg:    color.New(255, 255, 255),
		HeaderBg: color.New(40, 60, 90),
		HeaderFg: color.New(255, 255, 255),
	}
}

type row struct {
	id    int
	cells []string
}

// handleSeq hands out control handles. The UI runs on one goroutine, so a
// plain counter is enough
var handleSeq notify.Handle

func newHandle() notify.Handle {
	handleSeq++
	return handleSeq
}

// ListView is a tabular list control. Zero value is not usable; create
// with New
type ListView struct {
	handle notify.Handle
	header notify.Handle

	cols    []Column
	rows    []row
	nextID  int
	palette Palette

	selected int // 0-based display index, -1 none
	scroll   int
	sortCol  int // 1-based, 0 = unsorted
	sortAsc  bool

	doubleBuffered bool
	resizeLocked   bool
	elevated       bool
	dirty          bool

	hook notify.DrawHook
}

// New creates an empty list view with the given columns
func New(cols ...Column) *ListView {
	lv := &ListView{
		handle:   newHandle(),
		header:   newHandle(),
		palette:  DefaultPalette(),
		selected: -1,
		dirty:    true,
	}
	for _, c := range cols {
		if c.Width < 3 {
			c.Width = 3
		}
		lv.cols = append(lv.cols, c)
	}
	return lv
}

// SetPalette replaces the baseline colors
func (lv *ListView) SetPalette(p Palette) {
	lv.palette = p
	lv.dirty = true
}

// InsertRow appends a row and returns its permanent id. The id never
// changes, no matter how the display order shuffles
func (lv *ListView) InsertRow(cells ...string) int {
	lv.nextID++
	lv.rows = append(lv.rows, row{id: lv.nextID, cells: cells})
	lv.dirty = true
	return lv.nextID
}

// RowCount returns the number of rows
func (lv *ListView) RowCount() int {
	return len(lv.rows)
}

// ColumnCount returns the number of columns
func (lv *ListView) ColumnCount() int {
	return len(lv.cols)
}

// CellText returns the text at a 1-based position and column
func (lv *ListView) CellText(pos, col int) string {
	if pos < 1 || pos > len(lv.rows) || col < 1 {
		return ""
	}
	cells := lv.rows[pos-1].cells
	if col > len(cells) {
		return ""
	}
	return cells[col-1]
}

// Select moves the selection to a 1-based position; 0 clears it
func (lv *ListView) Select(pos int) {
	if pos < 1 || pos > len(lv.rows) {
		lv.selected = -1
	} else {
		lv.selected = pos - 1
	}
	lv.dirty = true
}

// Selected returns the 1-based selected position, 0 when none
func (lv *ListView) Selected() int {
	return lv.selected + 1
}

// MoveSelection shifts the selection, clamped to the row range
func (lv *ListView) MoveSelection(delta int) {
	if len(lv.rows) == 0 {
		return
	}
	pos := lv.selected
	if pos < 0 {
		pos = 0
	} else {
		pos += delta
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(lv.rows) {
		pos = len(lv.rows) - 1
	}
	lv.selected = pos
	lv.dirty = true
}

// EnsureVisible scrolls so the selection fits into viewH data rows
func (lv *ListView) EnsureVisible(viewH int) {
	if lv.selected < 0 || viewH < 1 {
		return
	}
	if lv.selected < lv.scroll {
		lv.scroll = lv.selected
	}
	if lv.selected >= lv.scroll+viewH {
		lv.scroll = lv.selected - viewH + 1
	}
}

// HeaderClick delivers a header-click notification and, unless a
// subscriber consumed it, sorts by the 1-based column. Returns true when
// the sort happened
func (lv *ListView) HeaderClick(col int) bool {
	if col < 1 || col > len(lv.cols) {
		return false
	}
	var out notify.Paint
	code := lv.emit(notify.Notification{
		Source:  lv.header,
		Kind:    notify.KindHeaderClick,
		SubItem: col,
	}, &out)
	if code == notify.CodeHandled {
		return false
	}
	lv.sortBy(col)
	return true
}

func (lv *ListView) sortBy(col int) {
	if col == lv.sortCol {
		lv.sortAsc = !lv.sortAsc
	} else {
		lv.sortCol = col
		lv.sortAsc = true
	}
	idx := col - 1
	sort.SliceStable(lv.rows, func(i, j int) bool {
		var a, b string
		if idx < len(lv.rows[i].cells) {
			a = lv.rows[i].cells[idx]
		}
		if idx < len(lv.rows[j].cells) {
			b = lv.rows[j].cells[idx]
		}
		if lv.sortAsc {
			return a < b
		}
		return a > b
	})
	lv.dirty = true
}

// ResizeColumn grows or shrinks a 1-based column. The resize-begin
// notification runs first; a lock suppresses the whole operation
func (lv *ListView) ResizeColumn(col, delta int) bool {
	if col < 1 || col > len(lv.cols) {
		return false
	}
	if lv.resizeLocked {
		return false
	}
	var out notify.Paint
	code := lv.emit(notify.Notification{
		Source:  lv.header,
		Kind:    notify.KindResizeBegin,
		SubItem: col,
	}, &out)
	if code == notify.CodeHandled {
		return false
	}
	w := lv.cols[col-1].Width + delta
	if w < 3 {
		w = 3
	}
	lv.cols[col-1].Width = w
	lv.dirty = true
	return true
}

func (lv *ListView) emit(n notify.Notification, out *notify.Paint) notify.Code {
	if lv.hook == nil {
		return notify.CodeNotHandled
	}
	return lv.hook(&n, out)
}

// The methods below form the control façade the dispatcher consumes.

// Handle identifies this control in notifications
func (lv *ListView) Handle() notify.Handle {
	return lv.handle
}

// HeaderHandle identifies the header sub-control
func (lv *ListView) HeaderHandle() notify.Handle {
	return lv.header
}

// Colors returns the baseline and selected-state colors
func (lv *ListView) Colors() (bg, fg, selBg, selFg color.Value) {
	return lv.palette.Bg, lv.palette.Fg, lv.palette.SelBg, lv.palette.SelFg
}

// IsSelected reports whether the 1-based position is the selected row
func (lv *ListView) IsSelected(pos int) bool {
	return pos >= 1 && pos-1 == lv.selected
}

// ItemID returns the permanent id at a 1-based position, 0 when out of
// range
func (lv *ListView) ItemID(pos int) int {
	if pos < 1 || pos > len(lv.rows) {
		return 0
	}
	return lv.rows[pos-1].id
}

// SetDoubleBuffered toggles flicker-free drawing. The tcell backend
// batches into its own cell buffer either way; the flag is kept so a
// subscriber's contract holds against any backend
func (lv *ListView) SetDoubleBuffered(on bool) {
	lv.doubleBuffered = on
}

// SetHeaderResizeLock toggles the header's no-resize bit
func (lv *ListView) SetHeaderResizeLock(locked bool) {
	lv.resizeLocked = locked
}

// SetElevatedDraw asks the event loop not to dispatch input between the
// stages of one paint pass; Elevated exposes it to the loop
func (lv *ListView) SetElevatedDraw(on bool) {
	lv.elevated = on
}

// Elevated reports whether paint passes must run uninterrupted
func (lv *ListView) Elevated() bool {
	return lv.elevated
}

// SetDrawHook subscribes to the notification stream; nil unsubscribes
func (lv *ListView) SetDrawHook(hook notify.DrawHook) {
	lv.hook = hook
	lv.dirty = true
}

// Redraw marks the control for a full repaint
func (lv *ListView) Redraw() {
	lv.dirty = true
}

// NeedsRedraw reports and clears the repaint flag; the render loop calls
// it once per frame
func (lv *ListView) NeedsRedraw() bool {
	d := lv.dirty
	lv.dirty = false
	return d
}
