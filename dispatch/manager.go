package dispatch

import "github.com/lixenwraith/lvtint/notify"

// Manager tracks which control handles carry an attached tinter. The host
// application owns one manager; entries insert on attach and remove on
// detach, so a second attach to the same handle fails instead of stacking
// two subscribers on one notification stream
type Manager struct {
	attached map[notify.Handle]*Tinter
}

// NewManager creates an empty registry
func NewManager() *Manager {
	return &Manager{attached: make(map[notify.Handle]*Tinter)}
}

// Attached returns the tinter bound to a handle, or nil
func (m *Manager) Attached(h notify.Handle) *Tinter {
	return m.attached[h]
}

// Count returns the number of live attachments
func (m *Manager) Count() int {
	return len(m.attached)
}

// Attach binds a new tinter to a control. Fails on a nil control, a zero
// handle, or a handle that already has a tinter
func (m *Manager) Attach(ctl Control, opts Options) (*Tinter, error) {
	if ctl == nil {
		return nil, ErrNilControl
	}
	h := ctl.Handle()
	if h == 0 {
		return nil, ErrInvalidHandle
	}
	if _, ok := m.attached[h]; ok {
		return nil, ErrAlreadyAttached
	}

	t := newTinter(m, ctl, opts)
	m.attached[h] = t
	return t, nil
}

func (m *Manager) remove(h notify.Handle) {
	delete(m.attached, h)
}
