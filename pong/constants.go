package pong

// Screen and sprite geometry, in pixels.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
	SpriteSize   = 16

	PaddleWidth  = SpriteSize
	PaddleHeight = 3 * SpriteSize
	PaddleMargin = 8

	TileSize  = 8
	MapWidth  = ScreenWidth / TileSize
	MapHeight = ScreenHeight / TileSize
)

// Frame timing. Every stage advances one frame per Step regardless of wall
// clock, like the hardware it imitates.
const (
	FramesPerSecond = 60
	FrameTime       = 1.0 / FramesPerSecond
)

const (
	ballMaxX   = ScreenWidth - SpriteSize
	ballMaxY   = ScreenHeight - SpriteSize
	paddleMaxY = ScreenHeight - PaddleHeight

	leftPaddleX  = PaddleMargin
	rightPaddleX = ScreenWidth - PaddleWidth - PaddleMargin

	// hitOffsetDivisor scales the distance between ball and paddle centres
	// into a vertical velocity on fixed-point paddle hits.
	hitOffsetDivisor = 16
)
