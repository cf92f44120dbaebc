// Package dispatch drives color resolution for one attached list-view
// control. It owns the notification state machine, the identity mapping
// between display positions and stable row ids, and the process-wide
// registry that enforces one engine instance per control handle.
package dispatch

import (
	"errors"

	"github.com/lixenwraith/lvtint/color"
	"github.com/lixenwraith/lvtint/notify"
)

// Attach failures. Returned, never panicked: attach runs during host setup
// where a crash would take the whole UI down
var (
	ErrNilControl      = errors.New("dispatch: nil control")
	ErrInvalidHandle   = errors.New("dispatch: control has no handle")
	ErrAlreadyAttached = errors.New("dispatch: control already has an attached tinter")
)

// Control is the façade over the host list-view widget. All methods are
// synchronous and must not emit paint notifications themselves, so calls
// from inside a notification callback cannot re-enter the dispatcher
type Control interface {
	// Handle identifies the control; HeaderHandle its header sub-control
	Handle() notify.Handle
	HeaderHandle() notify.Handle

	// Colors returns the control's baseline and selected-state colors,
	// read once at attach time
	Colors() (bg, fg, selBg, selFg color.Value)

	// IsSelected reports whether the row at a 1-based display position is
	// currently selected
	IsSelected(pos int) bool

	// ItemID returns the permanent id of the row at a 1-based display
	// position. O(1); queried once per item-level notification
	ItemID(pos int) int

	// SetDoubleBuffered toggles flicker-free rendering; enabled at attach
	SetDoubleBuffered(on bool)

	// SetHeaderResizeLock toggles the header's no-resize style bit
	SetHeaderResizeLock(locked bool)

	// SetElevatedDraw asks the host not to interleave other message
	// handling inside one paint pass
	SetElevatedDraw(on bool)

	// SetDrawHook subscribes the dispatcher to the notification stream;
	// nil unsubscribes
	SetDrawHook(hook notify.DrawHook)

	// Redraw requests a full repaint
	Redraw()
}
