// Package input models the button pad of a handheld console and tracks
// button state across frames.
package input

import "strings"

// Button is a set of pad buttons.
type Button uint16

const (
	A Button = 1 << iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
	R
	L

	None Button = 0
	All         = A | B | Select | Start | Right | Left | Up | Down | R | L
)

var buttonNames = []struct {
	button Button
	name   string
}{
	{A, "A"}, {B, "B"}, {Select, "Select"}, {Start, "Start"},
	{Right, "Right"}, {Left, "Left"}, {Up, "Up"}, {Down, "Down"},
	{R, "R"}, {L, "L"},
}

// Has reports whether every button in o is in b.
func (b Button) Has(o Button) bool {
	return o != None && b&o == o
}

func (b Button) String() string {
	if b == None {
		return "None"
	}
	var names []string
	for _, bn := range buttonNames {
		if b&bn.button != 0 {
			names = append(names, bn.name)
		}
	}
	return strings.Join(names, "|")
}

// Tri is a tri-state axis value.
type Tri int8

const (
	Negative Tri = -1
	Zero     Tri = 0
	Positive Tri = 1
)

// Int returns the axis as -1, 0 or 1.
func (t Tri) Int() int {
	return int(t)
}

// triFrom resolves a pair of opposing buttons. Holding both cancels out.
func triFrom(state, negative, positive Button) Tri {
	n := state.Has(negative)
	p := state.Has(positive)
	switch {
	case p && !n:
		return Positive
	case n && !p:
		return Negative
	default:
		return Zero
	}
}
