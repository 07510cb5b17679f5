// Package shapes defines the shape kinds both shape games are played with,
// the events their engines emit, and the random source the engines draw from.
package shapes

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/shape-arcade/internal/core"
)

// Kind identifies a geometric shape. It is both the type of a falling
// obstacle and the identity of a correct answer.
type Kind int

const (
	Rectangle Kind = iota
	Circle
	Triangle
	Trapezoid
	Pentagon
	Hexagon
)

type kindInfo struct {
	name  string
	key   rune
	glyph rune
	color core.Color
}

var kinds = [...]kindInfo{
	Rectangle: {"Rectangle", 'r', '■', core.ColorBlue},
	Circle:    {"Circle", 'c', '●', core.ColorRed},
	Triangle:  {"Triangle", 't', '▲', core.ColorGreen},
	Trapezoid: {"Trapezoid", 'y', '▰', core.ColorYellow},
	Pentagon:  {"Pentagon", 'p', '⬟', core.ColorMagenta},
	Hexagon:   {"Hexagon", 'h', '⬢', core.ColorCyan},
}

// All returns every kind in declaration order.
func All() []Kind {
	return []Kind{Rectangle, Circle, Triangle, Trapezoid, Pentagon, Hexagon}
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	return k >= Rectangle && k <= Hexagon
}

// String returns the canonical display name, e.g. "Circle".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Key returns the lowercase key that guesses this kind.
func (k Kind) Key() rune {
	if !k.Valid() {
		return 0
	}
	return kinds[k].key
}

// Glyph returns the rune used to draw this kind.
func (k Kind) Glyph() rune {
	if !k.Valid() {
		return '?'
	}
	return kinds[k].glyph
}

// Color returns the color used to draw this kind.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return kinds[k].color
}

// Matches reports whether the kind's name equals name, ignoring case.
func (k Kind) Matches(name string) bool {
	return k.Valid() && strings.EqualFold(kinds[k].name, name)
}

// ParseKind resolves a shape name, ignoring case and surrounding space.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for _, k := range All() {
		if k.Matches(name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("shapes: unknown shape %q", name)
}

// ParseKinds resolves a list of shape names.
func ParseKinds(names []string) ([]Kind, error) {
	out := make([]Kind, 0, len(names))
	for _, n := range names {
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Names returns the display names of ks.
func Names(ks []Kind) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}

// FromAction maps a guess action to its kind.
func FromAction(a core.Action) (Kind, bool) {
	switch a {
	case core.ActionGuessRectangle:
		return Rectangle, true
	case core.ActionGuessCircle:
		return Circle, true
	case core.ActionGuessTriangle:
		return Triangle, true
	case core.ActionGuessTrapezoid:
		return Trapezoid, true
	case core.ActionGuessPentagon:
		return Pentagon, true
	case core.ActionGuessHexagon:
		return Hexagon, true
	}
	return 0, false
}

// MarshalText encodes the kind by name so configs stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("shapes: cannot encode %s", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
