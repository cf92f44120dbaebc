package dispatch

import (
	"github.com/lixenwraith/lvtint/color"
	"github.com/lixenwraith/lvtint/store"
)

// rowColors is the item-level resolution, cached for the row's paint pass
// so sub-item stages can fall back to it
type rowColors struct {
	bg, fg    color.Value
	selection bool // selection recoloring applied; host state bits must drop
}

// resolveItem resolves the whole-row colors. Precedence: selection (when
// enabled and the row is selected), then the explicit row pair field by
// field, then row alternation on even 1-based positions, then control
// defaults. Pure: reads the store, touches nothing
func resolveItem(s *store.Store, id store.Identity, pos int, selected bool) rowColors {
	def := s.Defaults()

	if s.Sel.Enabled && selected {
		// Unset selection fields keep the control's own selected-state
		// colors, not the defaults
		return rowColors{
			bg:        s.Sel.Bg.Or(def.SelBg),
			fg:        s.Sel.Fg.Or(def.SelFg),
			selection: true,
		}
	}

	bg, fg := def.Bg, def.Fg
	if s.AltRows.Enabled && pos&1 == 0 {
		bg, fg = s.AltRows.Bg, s.AltRows.Fg
	}
	if pair, ok := s.Row(id); ok {
		if pair.Bg.Valid {
			bg = pair.Bg.Value
		}
		if pair.Fg.Valid {
			fg = pair.Fg.Value
		}
	}
	return rowColors{bg: bg, fg: fg}
}

// resolveSubItem resolves one cell. Precedence: the explicit cell pair
// field by field, then column alternation on even 1-based columns, then the
// cached row-level colors
func resolveSubItem(s *store.Store, id store.Identity, col int, row rowColors) (bg, fg color.Value) {
	bg, fg = row.bg, row.fg
	if s.AltCols.Enabled && col&1 == 0 {
		bg, fg = s.AltCols.Bg, s.AltCols.Fg
	}
	pair := s.Cell(id, col)
	if pair.Bg.Valid {
		bg = pair.Bg.Value
	}
	if pair.Fg.Valid {
		fg = pair.Fg.Value
	}
	return bg, fg
}

// wantSubItems decides the item stage's continuation code: sub-item
// notifications are requested whenever column alternation is on or the row
// carries any cell override. This deliberately over-requests for columns
// with no override; the sub-item fallback reproduces the row colors
// exactly, so the host never sees a partial repaint
func wantSubItems(s *store.Store, id store.Identity) bool {
	return s.AltCols.Enabled || s.HasCellOverrides(id)
}
