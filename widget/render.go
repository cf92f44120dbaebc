package widget

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/lvtint/color"
	"github.com/lixenwraith/lvtint/notify"
)

// toTcell converts a packed color into a tcell RGB color
func toTcell(v color.Value) tcell.Color {
	r, g, b := v.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Render draws the list view into the given screen rectangle, driving one
// full custom-draw pass through the subscribed hook: a global prepaint,
// one item prepaint per visible row, and sub-item prepaints whenever the
// item stage asks for them
func (lv *ListView) Render(s tcell.Screen, x, y, w, h int) {
	if w < 1 || h < 1 || len(lv.cols) == 0 {
		return
	}

	lv.renderHeader(s, x, y, w)
	if h < 2 {
		return
	}
	viewH := h - 1
	lv.EnsureVisible(viewH)

	var out notify.Paint
	code := lv.emit(notify.Notification{
		Source: lv.handle,
		Kind:   notify.KindCustomDraw,
		Stage:  notify.StagePrepaint,
	}, &out)
	perItem := code == notify.CodeNotifyItem

	for vy := 0; vy < viewH; vy++ {
		idx := lv.scroll + vy
		if idx >= len(lv.rows) {
			lv.fillRow(s, x, y+1+vy, w, lv.palette.Bg)
			continue
		}
		lv.renderRow(s, x, y+1+vy, w, idx+1, perItem)
	}

	if perItem {
		lv.emit(notify.Notification{
			Source: lv.handle,
			Kind:   notify.KindCustomDraw,
			Stage:  notify.StagePostpaint,
		}, &out)
	}
}

func (lv *ListView) renderRow(s tcell.Screen, x, y, w, pos int, perItem bool) {
	selected := lv.IsSelected(pos)

	// Host baseline for the whole row
	bg, fg := lv.palette.Bg, lv.palette.Fg
	var state notify.State
	if selected {
		state = notify.StateSelected
		bg, fg = lv.palette.SelBg, lv.palette.SelFg
	}

	subItems := false
	highlight := selected
	if perItem {
		var out notify.Paint
		code := lv.emit(notify.Notification{
			Source: lv.handle,
			Kind:   notify.KindCustomDraw,
			Stage:  notify.StageItemPrepaint,
			Item:   pos,
			State:  state,
		}, &out)
		if out.HasColors {
			bg, fg = out.Bg, out.Fg
		}
		// Selection highlight wins over custom colors unless the
		// subscriber cleared the selected state bit
		if out.ClearState&notify.StateSelected != 0 {
			highlight = false
		}
		if highlight {
			bg, fg = lv.palette.SelBg, lv.palette.SelFg
		}
		subItems = code == notify.CodeNotifySubItem
	}

	lv.fillRow(s, x, y, w, bg)

	cx := x
	for c, col := range lv.cols {
		if cx >= x+w {
			break
		}
		cellBg, cellFg := bg, fg
		if subItems {
			var out notify.Paint
			lv.emit(notify.Notification{
				Source:  lv.handle,
				Kind:    notify.KindCustomDraw,
				Stage:   notify.StageSubItemPrepaint,
				Item:    pos,
				SubItem: c + 1,
				State:   state,
			}, &out)
			if out.HasColors {
				cellBg, cellFg = out.Bg, out.Fg
			}
			if highlight {
				cellBg, cellFg = lv.palette.SelBg, lv.palette.SelFg
			}
		}

		cw := col.Width
		if cx+cw > x+w {
			cw = x + w - cx
		}
		lv.renderCell(s, cx, y, cw, lv.CellText(pos, c+1), col.Align, cellBg, cellFg)
		cx += col.Width + 1
	}
}

func (lv *ListView) renderHeader(s tcell.Screen, x, y, w int) {
	style := tcell.StyleDefault.
		Foreground(toTcell(lv.palette.HeaderFg)).
		Background(toTcell(lv.palette.HeaderBg)).
		Bold(true)

	for i := 0; i < w; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}

	cx := x
	for c, col := range lv.cols {
		if cx >= x+w {
			break
		}
		title := col.Title
		if lv.sortCol == c+1 {
			if lv.sortAsc {
				title += " ^"
			} else {
				title += " v"
			}
		}
		cw := col.Width
		if cx+cw > x+w {
			cw = x + w - cx
		}
		drawText(s, cx, y, cw, title, col.Align, style)
		cx += col.Width + 1
	}
}

func (lv *ListView) renderCell(s tcell.Screen, x, y, w int, text string, align Align, bg, fg color.Value) {
	style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
	for i := 0; i < w; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
	drawText(s, x, y, w, text, align, style)
}

func (lv *ListView) fillRow(s tcell.Screen, x, y, w int, bg color.Value) {
	style := tcell.StyleDefault.Foreground(toTcell(lv.palette.Fg)).Background(toTcell(bg))
	for i := 0; i < w; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

// drawText renders aligned text clipped to w cells, accounting for
// wide runes
func drawText(s tcell.Screen, x, y, w int, text string, align Align, style tcell.Style) {
	if w < 1 {
		return
	}
	if runewidth.StringWidth(text) > w {
		text = runewidth.Truncate(text, w, "…")
	}

	tw := runewidth.StringWidth(text)
	var startX int
	switch align {
	case AlignRight:
		startX = x + w - tw
	case AlignCenter:
		startX = x + (w-tw)/2
	default:
		startX = x
	}

	cx := startX
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cx+cw > x+w {
			break
		}
		s.SetContent(cx, y, ch, nil, style)
		cx += cw
	}
}
