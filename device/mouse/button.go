// Package mouse simulates mouse button events through the host's synthetic input facility.
package mouse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alia5/synthmouse/device"
)

// ErrUnknownButton is returned for names or values outside the MouseButton set.
var ErrUnknownButton = errors.New("unknown mouse button")

// MouseButton identifies a physical mouse button. Double* variants map to the
// same event flags and auxiliary data as their base button.
type MouseButton uint8

const (
	Left MouseButton = iota
	Right
	Middle
	Side
	Extra
	DoubleLeft
	DoubleRight
	DoubleMiddle
	DoubleSide
	DoubleExtra

	buttonCount
)

// Adding a variant without updating the mapping tables must not compile.
// Re-check the tables in mapper.go and extend this block when it fails.
func _() {
	var x [1]struct{}
	_ = x[Left-0]
	_ = x[Right-1]
	_ = x[Middle-2]
	_ = x[Side-3]
	_ = x[Extra-4]
	_ = x[DoubleLeft-5]
	_ = x[DoubleRight-6]
	_ = x[DoubleMiddle-7]
	_ = x[DoubleSide-8]
	_ = x[DoubleExtra-9]
	_ = x[buttonCount-10]
}

var buttonNames = [buttonCount]string{
	Left:         "left",
	Right:        "right",
	Middle:       "middle",
	Side:         "side",
	Extra:        "extra",
	DoubleLeft:   "double-left",
	DoubleRight:  "double-right",
	DoubleMiddle: "double-middle",
	DoubleSide:   "double-side",
	DoubleExtra:  "double-extra",
}

var _ device.Button = Left

// Buttons returns every MouseButton in declaration order.
func Buttons() []MouseButton {
	out := make([]MouseButton, buttonCount)
	for i := range out {
		out[i] = MouseButton(i)
	}
	return out
}

// Valid reports whether b is one of the declared variants.
func (b MouseButton) Valid() bool {
	return b < buttonCount
}

func (b MouseButton) String() string {
	if !b.Valid() {
		return fmt.Sprintf("MouseButton(%d)", uint8(b))
	}
	return buttonNames[b]
}

// ParseMouseButton resolves a button name. Matching ignores case, dashes and
// underscores, so "DoubleLeft", "double_left" and "double-left" are equal.
func ParseMouseButton(s string) (MouseButton, error) {
	key := normalizeName(s)
	for i, name := range buttonNames {
		if normalizeName(name) == key {
			return MouseButton(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownButton, s)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

// MarshalText implements encoding.TextMarshaler.
func (b MouseButton) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownButton, uint8(b))
	}
	return []byte(buttonNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *MouseButton) UnmarshalText(text []byte) error {
	v, err := ParseMouseButton(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Press injects the combined press event for b through the default Mouse.
func (b MouseButton) Press() { Default().Press(b) }

// Click injects the click event for b through the default Mouse.
func (b MouseButton) Click() { Default().Click(b) }

// Release injects the release event for b through the default Mouse.
func (b MouseButton) Release() { Default().Release(b) }
