package color

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// The 16 HTML color names the setters recognize, case-insensitive.
// Values are packed in wire order via New.
var names = map[string]Value{
	"aqua":    New(0x00, 0xFF, 0xFF),
	"black":   New(0x00, 0x00, 0x00),
	"blue":    New(0x00, 0x00, 0xFF),
	"fuchsia": New(0xFF, 0x00, 0xFF),
	"gray":    New(0x80, 0x80, 0x80),
	"green":   New(0x00, 0x80, 0x00),
	"lime":    New(0x00, 0xFF, 0x00),
	"maroon":  New(0x80, 0x00, 0x00),
	"navy":    New(0x00, 0x00, 0x80),
	"olive":   New(0x80, 0x80, 0x00),
	"purple":  New(0x80, 0x00, 0x80),
	"red":     New(0xFF, 0x00, 0x00),
	"silver":  New(0xC0, 0xC0, 0xC0),
	"teal":    New(0x00, 0x80, 0x80),
	"white":   New(0xFF, 0xFF, 0xFF),
	"yellow":  New(0xFF, 0xFF, 0x00),
}

// Parse converts a caller-supplied color into a Value. Accepted inputs:
// any integer type holding a packed 24-bit value, a recognized color name,
// or a hex string ("#RRGGBB" or "RRGGBB"). Returns false for anything else;
// parsing never panics
func Parse(input any) (Value, bool) {
	switch v := input.(type) {
	case Value:
		return v, v <= MaxValue
	case int:
		return fromInt(int64(v))
	case int32:
		return fromInt(int64(v))
	case int64:
		return fromInt(v)
	case uint32:
		return Value(v), Value(v) <= MaxValue
	case uint64:
		if v > uint64(MaxValue) {
			return 0, false
		}
		return Value(v), true
	case string:
		return parseString(v)
	}
	return 0, false
}

// ParseOptional is Parse with an explicit "leave unset" input: nil and the
// empty string produce None. Used by the setters so a single argument list
// can mix set, unset, and invalid fields
func ParseOptional(input any) (Optional, bool) {
	if input == nil {
		return None(), true
	}
	if s, ok := input.(string); ok && s == "" {
		return None(), true
	}
	v, ok := Parse(input)
	if !ok {
		return None(), false
	}
	return Some(v), true
}

func fromInt(v int64) (Value, bool) {
	if v < 0 || v > int64(MaxValue) {
		return 0, false
	}
	return Value(v), true
}

func parseString(s string) (Value, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if v, ok := names[lower]; ok {
		return v, true
	}

	// Hex form, with or without the leading #
	hex := lower
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 {
		return 0, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, false
	}
	r, g, b := c.RGB255()
	return New(r, g, b), true
}
