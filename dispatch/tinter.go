package dispatch

import (
	"github.com/lixenwraith/lvtint/notify"
	"github.com/lixenwraith/lvtint/store"
)

// State is the dispatcher's lifecycle state
type State uint8

const (
	// StateIdle: detached, terminal for the instance
	StateIdle State = iota

	// StateActive: attached and intercepting notifications
	StateActive

	// StateSuspended: attached but passing notifications through, used
	// while coloring is disabled during bulk updates
	StateSuspended
)

// Options configures an attachment
type Options struct {
	// Static keys colors to permanent row ids instead of display
	// positions, so they follow content across re-sorts
	Static bool

	// LockSort suppresses the host's header-click sorting
	LockSort bool

	// LockResize suppresses column resizing
	LockResize bool

	// Elevated asks the host to finish one paint pass without
	// interleaving other message handling. Trade-off: a long pass keeps
	// the whole UI thread busy
	Elevated bool
}

// DefaultOptions returns the historical attach defaults: dynamic
// identities with sorting and column resizing locked
func DefaultOptions() Options {
	return Options{LockSort: true, LockResize: true}
}

// Tinter attaches row/cell color overrides to one list-view control. All
// methods run on the host's message-processing goroutine; none block
type Tinter struct {
	mgr    *Manager
	ctl    Control
	handle notify.Handle
	header notify.Handle
	opts   Options

	state      State
	lockSort   bool
	lockResize bool
	store      *store.Store

	// Item-level resolution cached between the item stage and its
	// sub-item stages
	curID  store.Identity
	curRow rowColors
}

func newTinter(m *Manager, ctl Control, opts Options) *Tinter {
	bg, fg, selBg, selFg := ctl.Colors()
	t := &Tinter{
		mgr:        m,
		ctl:        ctl,
		handle:     ctl.Handle(),
		header:     ctl.HeaderHandle(),
		opts:       opts,
		state:      StateActive,
		lockSort:   opts.LockSort,
		lockResize: opts.LockResize,
		store: store.New(store.Defaults{
			Bg: bg, Fg: fg, SelBg: selBg, SelFg: selFg,
		}),
	}

	// Double buffering prevents paint artifacts from the interception
	ctl.SetDoubleBuffered(true)
	if opts.LockResize {
		ctl.SetHeaderResizeLock(true)
	}
	if opts.Elevated {
		ctl.SetElevatedDraw(true)
	}
	ctl.SetDrawHook(t.handleNotification)
	return t
}

// State returns the current lifecycle state
func (t *Tinter) State() State {
	return t.state
}

// Detach unsubscribes, restores the control, and forces a redraw so no
// stale colors persist. Idempotent
func (t *Tinter) Detach() {
	if t.state == StateIdle {
		return
	}
	t.state = StateIdle
	t.ctl.SetDrawHook(nil)
	if t.lockResize {
		t.ctl.SetHeaderResizeLock(false)
	}
	if t.opts.Elevated {
		t.ctl.SetElevatedDraw(false)
	}
	t.mgr.remove(t.handle)
	t.ctl.Redraw()
}

// Row sets or clears the colors of the row at a 1-based display position.
// Returns false when a supplied color fails validation; the tables stay
// untouched
func (t *Tinter) Row(pos int, bg, fg any) bool {
	if t.state == StateIdle {
		return false
	}
	return t.store.SetRow(t.identity(pos), bg, fg)
}

// Cell sets or clears the colors of one cell
func (t *Tinter) Cell(pos, col int, bg, fg any) bool {
	if t.state == StateIdle {
		return false
	}
	return t.store.SetCell(t.identity(pos), col, bg, fg)
}

// AlternateRows colors every other row; both arguments empty disables it
func (t *Tinter) AlternateRows(bg, fg any) bool {
	if t.state == StateIdle {
		return false
	}
	return t.store.SetAlternateRows(bg, fg)
}

// AlternateCols colors every other column; both arguments empty disables it
func (t *Tinter) AlternateCols(bg, fg any) bool {
	if t.state == StateIdle {
		return false
	}
	return t.store.SetAlternateCols(bg, fg)
}

// SelectionColors recolors selected rows. Fields left empty keep the
// control's own selected-state color
func (t *Tinter) SelectionColors(bg, fg any) bool {
	if t.state == StateIdle {
		return false
	}
	return t.store.SetSelectionColors(bg, fg)
}

// Clear empties both color tables, optionally resetting alternation per axis
func (t *Tinter) Clear(resetAltRows, resetAltCols bool) bool {
	if t.state == StateIdle {
		return false
	}
	t.store.ClearAll(resetAltRows, resetAltCols)
	return true
}

// LockSort blocks or unblocks the host's header-click sorting
func (t *Tinter) LockSort(locked bool) bool {
	if t.state == StateIdle {
		return false
	}
	t.lockSort = locked
	return true
}

// LockResize blocks or unblocks column resizing
func (t *Tinter) LockResize(locked bool) bool {
	if t.state == StateIdle {
		return false
	}
	t.lockResize = locked
	t.ctl.SetHeaderResizeLock(locked)
	return true
}

// SetIntercepting suspends or resumes notification handling and always
// triggers a redraw so the display matches the new mode
func (t *Tinter) SetIntercepting(on bool) bool {
	if t.state == StateIdle {
		return false
	}
	if on {
		t.state = StateActive
	} else {
		t.state = StateSuspended
	}
	t.ctl.Redraw()
	return true
}

// identity maps a 1-based display position to the row's store key. Dynamic
// mode is the identity function; static mode asks the control for the
// permanent id so colors follow content across re-sorts
func (t *Tinter) identity(pos int) store.Identity {
	if !t.opts.Static {
		return store.Identity(pos)
	}
	return store.Identity(t.ctl.ItemID(pos))
}

// handleNotification is the subscribed hook. The live-state check runs
// first: a notification in flight across a detach must not touch instance
// state
func (t *Tinter) handleNotification(n *notify.Notification, out *notify.Paint) notify.Code {
	if t.state != StateActive {
		return notify.CodeNotHandled
	}
	if n == nil || out == nil {
		return notify.CodeNotHandled
	}
	if n.Source != t.handle && n.Source != t.header {
		return notify.CodeNotHandled
	}

	switch n.Kind {
	case notify.KindCustomDraw:
		return t.handleDraw(n, out)
	case notify.KindHeaderClick:
		if t.lockSort {
			return notify.CodeHandled
		}
		return notify.CodeNotHandled
	case notify.KindResizeBegin:
		if t.lockResize {
			return notify.CodeHandled
		}
		return notify.CodeNotHandled
	}
	return notify.CodeNotHandled
}

func (t *Tinter) handleDraw(n *notify.Notification, out *notify.Paint) notify.Code {
	switch n.Stage {
	case notify.StagePrepaint:
		return notify.CodeNotifyItem

	case notify.StageItemPrepaint:
		if n.Item < 1 {
			return notify.CodeDoDefault
		}
		// One identity query per item; sub-item stages reuse it
		t.curID = t.identity(n.Item)
		t.curRow = resolveItem(t.store, t.curID, n.Item, t.ctl.IsSelected(n.Item))

		out.Bg, out.Fg = t.curRow.bg, t.curRow.fg
		out.HasColors = true
		if t.curRow.selection {
			// Drop the host's own selection highlight so it cannot
			// paint over the resolved colors
			out.ClearState = notify.StateSelected | notify.StateFocused
			return notify.CodeNewFont
		}
		if wantSubItems(t.store, t.curID) {
			return notify.CodeNotifySubItem
		}
		return notify.CodeNewFont

	case notify.StageSubItemPrepaint:
		if n.Item < 1 || n.SubItem < 1 {
			return notify.CodeDoDefault
		}
		out.Bg, out.Fg = resolveSubItem(t.store, t.curID, n.SubItem, t.curRow)
		out.HasColors = true
		return notify.CodeNewFont
	}
	return notify.CodeDoDefault
}
