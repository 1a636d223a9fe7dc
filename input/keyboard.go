package input

import "github.com/hajimehoshi/ebiten/v2"

// DefaultKeymap maps keyboard keys onto the pad.
var DefaultKeymap = map[ebiten.Key]Button{
	ebiten.KeyArrowLeft:  Left,
	ebiten.KeyArrowRight: Right,
	ebiten.KeyArrowUp:    Up,
	ebiten.KeyArrowDown:  Down,
	ebiten.KeyZ:          A,
	ebiten.KeyX:          B,
	ebiten.KeyEnter:      Start,
	ebiten.KeyBackspace:  Select,
	ebiten.KeyA:          L,
	ebiten.KeyS:          R,
}

// Keyboard reads the pad from ebiten's keyboard state. It is only valid
// while an ebiten game is running.
type Keyboard struct {
	Keymap map[ebiten.Key]Button
}

// NewKeyboard returns a Keyboard using DefaultKeymap.
func NewKeyboard() *Keyboard {
	return &Keyboard{Keymap: DefaultKeymap}
}

func (k *Keyboard) Buttons() Button {
	var state Button
	for key, button := range k.Keymap {
		if ebiten.IsKeyPressed(key) {
			state |= button
		}
	}
	return state
}
