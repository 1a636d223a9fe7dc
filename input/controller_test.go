package input_test

import (
	"testing"

	"github.com/plus3/pong/input"
	"github.com/stretchr/testify/assert"
)

func TestTriAxes(t *testing.T) {
	tests := []struct {
		name  string
		state input.Button
		x, y  input.Tri
	}{
		{"idle", input.None, input.Zero, input.Zero},
		{"left", input.Left, input.Negative, input.Zero},
		{"right down", input.Right | input.Down, input.Positive, input.Positive},
		{"up", input.Up, input.Zero, input.Negative},
		{"left and right cancel", input.Left | input.Right | input.Up, input.Zero, input.Negative},
		{"up and down cancel", input.Up | input.Down, input.Zero, input.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := input.NewButtonController(input.NewScript(tt.state))
			c.Update()
			assert.Equal(t, tt.x, c.XTri())
			assert.Equal(t, tt.y, c.YTri())
		})
	}
}

func TestEdges(t *testing.T) {
	script := input.NewScript(input.None, input.A, input.A|input.B, input.B, input.None)
	c := input.NewButtonController(script)

	c.Update() // None
	assert.False(t, c.IsPressed(input.A))
	assert.True(t, c.IsReleased(input.A))

	c.Update() // A
	assert.True(t, c.IsPressed(input.A))
	assert.True(t, c.IsJustPressed(input.A))

	c.Update() // A|B
	assert.True(t, c.IsPressed(input.A|input.B))
	assert.False(t, c.IsJustPressed(input.A))
	assert.True(t, c.IsJustPressed(input.B))

	c.Update() // B
	assert.True(t, c.IsJustReleased(input.A))
	assert.False(t, c.IsJustReleased(input.B))

	c.Update() // None
	assert.True(t, c.IsJustReleased(input.B))
	assert.Equal(t, input.None, c.State())
}

func TestJustPressedTri(t *testing.T) {
	c := input.NewButtonController(input.NewScript(input.Left, input.Left|input.Down))

	c.Update()
	assert.Equal(t, input.Negative, c.JustPressedXTri())

	c.Update()
	assert.Equal(t, input.Zero, c.JustPressedXTri())
	assert.Equal(t, input.Positive, c.JustPressedYTri())
	assert.Equal(t, input.Negative, c.XTri())
}

func TestNilSource(t *testing.T) {
	c := input.NewButtonController(nil)
	c.Update()
	assert.Equal(t, input.None, c.State())
}

func TestFuncSourceMasksUnknownBits(t *testing.T) {
	c := input.NewButtonController(input.Func(func() input.Button {
		return input.A | 1<<15
	}))
	c.Update()
	assert.Equal(t, input.A, c.State())
}

func TestScript(t *testing.T) {
	s := input.NewScript().Hold(input.Up, 2).Hold(input.Down, 1)

	assert.Equal(t, input.Up, s.Buttons())
	assert.Equal(t, input.Up, s.Buttons())
	assert.Equal(t, input.Down, s.Buttons())
	assert.Equal(t, input.Down, s.Buttons(), "last frame repeats")

	s.Loop = true
	assert.Equal(t, input.Up, s.Buttons())

	s.Rewind()
	s.Loop = false
	assert.Equal(t, input.Up, s.Buttons())

	assert.Equal(t, input.None, input.NewScript().Buttons())
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "None", input.None.String())
	assert.Equal(t, "A|Left", (input.Left | input.A).String())
	assert.True(t, input.All.Has(input.R|input.L))
	assert.False(t, input.A.Has(input.None))
}
