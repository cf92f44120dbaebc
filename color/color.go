// Package color holds the 24-bit color model shared by the store, the
// dispatcher, and the list-view widget, decoupled from any render backend.
package color

// Value is a 24-bit color packed 0x00BBGGRR, the component order the
// list-view paint protocol carries on the wire
type Value uint32

// MaxValue is the largest packed 24-bit color
const MaxValue Value = 0xFFFFFF

// New packs 8-bit channels into a Value
func New(r, g, b uint8) Value {
	return Value(b)<<16 | Value(g)<<8 | Value(r)
}

// RGB unpacks the channels
func (v Value) RGB() (r, g, b uint8) {
	return uint8(v), uint8(v >> 8), uint8(v >> 16)
}

// Equal returns true if both values name the same color
func (v Value) Equal(other Value) bool {
	return v == other
}

// Optional is a Value that may be absent. Absent is distinct from black:
// an unset field falls through to the next precedence level
type Optional struct {
	Value Value
	Valid bool
}

// Some wraps a concrete color
func Some(v Value) Optional {
	return Optional{Value: v, Valid: true}
}

// None is the absent color
func None() Optional {
	return Optional{}
}

// Or returns the wrapped value, or def when absent
func (o Optional) Or(def Value) Value {
	if o.Valid {
		return o.Value
	}
	return def
}

// Pair bundles the background/foreground overrides for one row or cell
type Pair struct {
	Bg Optional
	Fg Optional
}

// Empty returns true if neither field is set; empty pairs are never stored
func (p Pair) Empty() bool {
	return !p.Bg.Valid && !p.Fg.Valid
}
