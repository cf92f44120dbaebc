package dispatch

import (
	"sort"

	"github.com/lixenwraith/lvtint/color"
	"github.com/lixenwraith/lvtint/notify"
)

// fakeControl stands in for the list-view widget so dispatch tests run
// without a terminal. Rows live in display order; each keeps the permanent
// id it was born with, so re-sorting models the real control's behavior
type fakeControl struct {
	handle notify.Handle
	header notify.Handle

	defBg, defFg   color.Value
	selBg, selFg   color.Value
	rows           []fakeRow
	hook           notify.DrawHook
	doubleBuffered bool
	resizeLocked   bool
	elevated       bool
	redraws        int
}

type fakeRow struct {
	id       int
	selected bool
	cells    []string
}

func newFakeControl(rowCount int) *fakeControl {
	fc := &fakeControl{
		handle: 100,
		header: 101,
		defBg:  0xFFFFFF,
		defFg:  0x000000,
		selBg:  0x800000,
		selFg:  0xFFFFFF,
	}
	for i := 0; i < rowCount; i++ {
		fc.rows = append(fc.rows, fakeRow{id: i + 1})
	}
	return fc
}

func (fc *fakeControl) Handle() notify.Handle       { return fc.handle }
func (fc *fakeControl) HeaderHandle() notify.Handle { return fc.header }

func (fc *fakeControl) Colors() (bg, fg, selBg, selFg color.Value) {
	return fc.defBg, fc.defFg, fc.selBg, fc.selFg
}

func (fc *fakeControl) IsSelected(pos int) bool {
	if pos < 1 || pos > len(fc.rows) {
		return false
	}
	return fc.rows[pos-1].selected
}

func (fc *fakeControl) ItemID(pos int) int {
	if pos < 1 || pos > len(fc.rows) {
		return 0
	}
	return fc.rows[pos-1].id
}

func (fc *fakeControl) SetDoubleBuffered(on bool)      { fc.doubleBuffered = on }
func (fc *fakeControl) SetHeaderResizeLock(locked bool) { fc.resizeLocked = locked }
func (fc *fakeControl) SetElevatedDraw(on bool)        { fc.elevated = on }
func (fc *fakeControl) SetDrawHook(hook notify.DrawHook) { fc.hook = hook }
func (fc *fakeControl) Redraw()                        { fc.redraws++ }

// sortByFirstCell re-sorts display order like a header click would,
// permanent ids travel with their rows
func (fc *fakeControl) sortByFirstCell() {
	sort.SliceStable(fc.rows, func(i, j int) bool {
		var a, b string
		if len(fc.rows[i].cells) > 0 {
			a = fc.rows[i].cells[0]
		}
		if len(fc.rows[j].cells) > 0 {
			b = fc.rows[j].cells[0]
		}
		return a < b
	})
}

// cellPaint is what the fake host would draw for one cell
type cellPaint struct {
	bg, fg color.Value
}

// send delivers one notification through the hook
func (fc *fakeControl) send(n notify.Notification) (notify.Paint, notify.Code) {
	var out notify.Paint
	if fc.hook == nil {
		return out, notify.CodeNotHandled
	}
	code := fc.hook(&n, &out)
	return out, code
}

// paintPass replays the host's full custom-draw sequence: one prepaint,
// one item prepaint per row, and sub-item prepaints when requested.
// Returns the colors each cell would be drawn with
func (fc *fakeControl) paintPass(cols int) [][]cellPaint {
	result := make([][]cellPaint, len(fc.rows))

	_, code := fc.send(notify.Notification{
		Source: fc.handle,
		Kind:   notify.KindCustomDraw,
		Stage:  notify.StagePrepaint,
	})
	perItem := code == notify.CodeNotifyItem

	for i := range fc.rows {
		pos := i + 1
		row := fc.rows[i]

		// Host baseline: defaults, or selected-state colors
		bg, fg := fc.defBg, fc.defFg
		var state notify.State
		if row.selected {
			state = notify.StateSelected
			bg, fg = fc.selBg, fc.selFg
		}

		subItems := false
		highlight := row.selected
		if perItem {
			out, itemCode := fc.send(notify.Notification{
				Source: fc.handle,
				Kind:   notify.KindCustomDraw,
				Stage:  notify.StageItemPrepaint,
				Item:   pos,
				State:  state,
			})
			if out.HasColors {
				bg, fg = out.Bg, out.Fg
			}
			// The host paints its own selection highlight over any custom
			// colors unless the subscriber cleared the selected state bit
			if out.ClearState&notify.StateSelected != 0 {
				highlight = false
			}
			if highlight {
				bg, fg = fc.selBg, fc.selFg
			}
			subItems = itemCode == notify.CodeNotifySubItem
		}

		result[i] = make([]cellPaint, cols)
		for c := 0; c < cols; c++ {
			col := c + 1
			cellBg, cellFg := bg, fg
			if subItems {
				out, _ := fc.send(notify.Notification{
					Source:  fc.handle,
					Kind:    notify.KindCustomDraw,
					Stage:   notify.StageSubItemPrepaint,
					Item:    pos,
					SubItem: col,
					State:   state,
				})
				if out.HasColors {
					cellBg, cellFg = out.Bg, out.Fg
				}
				if highlight {
					cellBg, cellFg = fc.selBg, fc.selFg
				}
			}
			result[i][c] = cellPaint{bg: cellBg, fg: cellFg}
		}
	}
	return result
}
