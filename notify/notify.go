// Package notify defines the paint-notification protocol between a list-view
// host control and a color dispatcher. Notifications are a tagged union over
// (Kind, Stage); the dispatcher answers each with a Code telling the host
// whether to keep drawing itself, notify again at finer granularity, or stop.
package notify

import "github.com/lixenwraith/lvtint/color"

// Handle identifies one host control or sub-control instance
type Handle uint64

// Kind is the notification family
type Kind uint8

const (
	// KindCustomDraw carries one stage of the multi-phase paint sequence
	// Emitted: once per pass, once per item, optionally once per sub-item
	KindCustomDraw Kind = iota

	// KindHeaderClick fires when a header column is clicked (sort trigger)
	// Source: the header sub-control handle
	KindHeaderClick

	// KindResizeBegin fires when a column-divider drag starts
	// Source: the header sub-control handle
	KindResizeBegin
)

// Stage is the granularity of a custom-draw notification
type Stage uint8

const (
	// StageNone for non-draw notifications
	StageNone Stage = iota

	// StagePrepaint opens a whole paint pass
	StagePrepaint

	// StageItemPrepaint precedes one row's drawing
	StageItemPrepaint

	// StageSubItemPrepaint precedes one cell's drawing, nested inside the
	// owning item's stage
	StageSubItemPrepaint

	// StagePostpaint closes a paint pass
	StagePostpaint

	// StageItemPostpaint follows one row's drawing
	StageItemPostpaint
)

// Code is the dispatcher's answer to one notification
type Code uint8

const (
	// CodeNotHandled: not ours, let other subscribers process it
	CodeNotHandled Code = iota

	// CodeDoDefault: ours, but the host should draw normally
	CodeDoDefault

	// CodeNotifyItem: send StageItemPrepaint for every item in this pass
	CodeNotifyItem

	// CodeNotifySubItem: send StageSubItemPrepaint for every cell of this item
	CodeNotifySubItem

	// CodeNewFont: colors written into the output, stop at this granularity
	CodeNewFont

	// CodeHandled: consumed entirely, suppress the host's default handling
	CodeHandled
)

// State holds an item's visual-state bits as the host reports them
type State uint8

const (
	StateSelected State = 1 << iota
	StateFocused
)

// Notification is one event from the host. Item and SubItem are 1-based
// display coordinates; zero means not applicable for this stage
type Notification struct {
	Source  Handle
	Kind    Kind
	Stage   Stage
	Item    int
	SubItem int
	State   State
}

// Paint is the dispatcher's output for prepaint stages. The host copies it
// into its draw parameters; keeping it a plain value struct leaves the
// resolver testable without host-owned memory
type Paint struct {
	Bg, Fg     color.Value
	HasColors  bool
	ClearState State
}

// DrawHook is the subscription signature a host control exposes
type DrawHook func(n *Notification, out *Paint) Code
