package pong

import (
	"cmp"
	"slices"
)

// SpriteID names a 16x16 sprite in the sprite sheet.
type SpriteID int

const (
	SpriteBall SpriteID = iota
	SpritePaddleEnd
	SpritePaddleMid
)

// Object is one sprite placed on screen for the current frame.
type Object struct {
	Sprite SpriteID
	X, Y   int32
	HFlip  bool
	VFlip  bool
}

// DrawList is the singleton holding the objects to show this frame, in
// drawing order.
type DrawList struct {
	Objects []Object
}

// paddleObjects splits a paddle into its three sprites: the end cap, the
// middle and the end cap mirrored vertically.
func paddleObjects(x, y int32, hflip bool) []Object {
	return []Object{
		{Sprite: SpritePaddleEnd, X: x, Y: y, HFlip: hflip},
		{Sprite: SpritePaddleMid, X: x, Y: y + SpriteSize, HFlip: hflip},
		{Sprite: SpritePaddleEnd, X: x, Y: y + 2*SpriteSize, HFlip: hflip, VFlip: true},
	}
}

type paddleView struct {
	*Position
	*Paddle
}

func sortPaddles(paddles []paddleView) {
	slices.SortFunc(paddles, func(a, b paddleView) int {
		return cmp.Compare(a.Paddle.Side, b.Paddle.Side)
	})
}
