// Package store owns the color tables one attached control carries: per-row
// overrides, per-cell overrides, and the alternation/selection settings.
// All access happens on the host's message-processing goroutine, so the
// tables are plain maps with no locking.
package store

import "github.com/lixenwraith/lvtint/color"

// Identity is a stable row key. In dynamic mode it equals the 1-based
// display position; in static mode it is the control's permanent item id
type Identity int

// Defaults are the control's baseline colors, captured once at attach
type Defaults struct {
	Bg    color.Value
	Fg    color.Value
	SelBg color.Value
	SelFg color.Value
}

// Alternation colors every other row or column when no more specific
// override exists. Colors are concrete: fields the caller left unset are
// filled from the control defaults at set time
type Alternation struct {
	Enabled bool
	Bg      color.Value
	Fg      color.Value
}

// Selection recolors selected rows. Fields are optional: an unset field
// keeps the control's own selected-state color
type Selection struct {
	Enabled bool
	Bg      color.Optional
	Fg      color.Optional
}

// Store holds all color state for one attached control
type Store struct {
	defaults Defaults
	rows     map[Identity]color.Pair
	cells    map[Identity]map[int]color.Pair

	AltRows Alternation
	AltCols Alternation
	Sel     Selection
}

// New creates an empty store around the control's captured defaults
func New(defaults Defaults) *Store {
	return &Store{
		defaults: defaults,
		rows:     make(map[Identity]color.Pair),
		cells:    make(map[Identity]map[int]color.Pair),
	}
}

// Defaults returns the captured control defaults
func (s *Store) Defaults() Defaults {
	return s.defaults
}

// parsePair validates both inputs before anything mutates. A failed parse
// of either field rejects the whole call
func parsePair(bg, fg any) (color.Pair, bool) {
	bgOpt, ok := color.ParseOptional(bg)
	if !ok {
		return color.Pair{}, false
	}
	fgOpt, ok := color.ParseOptional(fg)
	if !ok {
		return color.Pair{}, false
	}
	return color.Pair{Bg: bgOpt, Fg: fgOpt}, true
}

// SetRow sets or clears one row's color pair. An all-unset pair clears the
// entry rather than storing it
func (s *Store) SetRow(id Identity, bg, fg any) bool {
	pair, ok := parsePair(bg, fg)
	if !ok {
		return false
	}
	if pair.Empty() {
		delete(s.rows, id)
		return true
	}
	s.rows[id] = pair
	return true
}

// ClearRow removes one row's entry
func (s *Store) ClearRow(id Identity) {
	delete(s.rows, id)
}

// Row looks up a row override; ok is false when none exists
func (s *Store) Row(id Identity) (color.Pair, bool) {
	pair, ok := s.rows[id]
	return pair, ok
}

// SetCell sets or clears one cell's color pair
func (s *Store) SetCell(id Identity, col int, bg, fg any) bool {
	pair, ok := parsePair(bg, fg)
	if !ok {
		return false
	}
	if pair.Empty() {
		s.ClearCell(id, col)
		return true
	}
	cols := s.cells[id]
	if cols == nil {
		cols = make(map[int]color.Pair)
		s.cells[id] = cols
	}
	cols[col] = pair
	return true
}

// ClearCell removes one cell's entry, pruning the row's inner map when it
// empties
func (s *Store) ClearCell(id Identity, col int) {
	cols, ok := s.cells[id]
	if !ok {
		return
	}
	delete(cols, col)
	if len(cols) == 0 {
		delete(s.cells, id)
	}
}

// Cell looks up a cell override. A miss is an all-unset pair, never an error
func (s *Store) Cell(id Identity, col int) color.Pair {
	return s.cells[id][col]
}

// HasCellOverrides reports whether any cell of this row carries an override.
// Drives the "request sub-item notifications" decision
func (s *Store) HasCellOverrides(id Identity) bool {
	return len(s.cells[id]) > 0
}

// SetAlternateRows configures row alternation. Both inputs empty disables
// it; a single set field pairs with the matching control default
func (s *Store) SetAlternateRows(bg, fg any) bool {
	alt, ok := s.parseAlternation(bg, fg)
	if !ok {
		return false
	}
	s.AltRows = alt
	return true
}

// SetAlternateCols configures column alternation, same rules as rows
func (s *Store) SetAlternateCols(bg, fg any) bool {
	alt, ok := s.parseAlternation(bg, fg)
	if !ok {
		return false
	}
	s.AltCols = alt
	return true
}

func (s *Store) parseAlternation(bg, fg any) (Alternation, bool) {
	pair, ok := parsePair(bg, fg)
	if !ok {
		return Alternation{}, false
	}
	if pair.Empty() {
		return Alternation{}, true
	}
	return Alternation{
		Enabled: true,
		Bg:      pair.Bg.Or(s.defaults.Bg),
		Fg:      pair.Fg.Or(s.defaults.Fg),
	}, true
}

// SetSelectionColors configures selection recoloring. Both inputs empty
// disables it; unset fields stay unset so resolution keeps the control's
// own selected-state color for them
func (s *Store) SetSelectionColors(bg, fg any) bool {
	pair, ok := parsePair(bg, fg)
	if !ok {
		return false
	}
	if pair.Empty() {
		s.Sel = Selection{}
		return true
	}
	s.Sel = Selection{Enabled: true, Bg: pair.Bg, Fg: pair.Fg}
	return true
}

// ClearAll empties both tables, optionally resetting alternation per axis
func (s *Store) ClearAll(resetAltRows, resetAltCols bool) {
	s.rows = make(map[Identity]color.Pair)
	s.cells = make(map[Identity]map[int]color.Pair)
	if resetAltRows {
		s.AltRows = Alternation{}
	}
	if resetAltCols {
		s.AltCols = Alternation{}
	}
}
