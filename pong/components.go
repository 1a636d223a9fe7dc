package pong

import (
	"github.com/plus3/pong/fixed"
	"github.com/plus3/pong/input"
)

// Position is the top-left corner of an entity, in pixels.
type Position struct {
	fixed.Vector2D[fixed.Num]
}

// Velocity is the per-frame displacement of an entity, in pixels.
type Velocity struct {
	fixed.Vector2D[fixed.Num]
}

// Ball marks the ball entity.
type Ball struct{}

// Side identifies which end of the court a paddle guards.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Paddle marks a paddle entity.
type Paddle struct {
	Side  Side
	Hflip bool
}

// PlayerControlled paddles follow the D-pad.
type PlayerControlled struct{}

// CPUControlled paddles chase the ball.
type CPUControlled struct{}

// Settings is the singleton carrying the World's configuration to systems.
type Settings struct {
	Config   Config
	Features Features
}

// Controller is the singleton pad shared by every system.
type Controller struct {
	*input.ButtonController
}

// Score is the singleton point tally.
type Score struct {
	Left, Right int
}

func ballBox(pos fixed.Vector2D[fixed.Num]) fixed.Rect[int32] {
	return fixed.NewRect(fixed.Floor(pos), fixed.Vec[int32](SpriteSize, SpriteSize))
}

func paddleBox(pos fixed.Vector2D[fixed.Num]) fixed.Rect[int32] {
	return fixed.NewRect(fixed.Floor(pos), fixed.Vec[int32](PaddleWidth, PaddleHeight))
}
