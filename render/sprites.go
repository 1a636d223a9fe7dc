// Package render draws a pong World with ebiten. The sprite sheet and tile
// set are rasterised at start-up, so the game ships without image assets.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pong/pong"
)

// Palette used for sprites and tiles.
var (
	BackgroundColor = color.RGBA{0x10, 0x18, 0x20, 0xff}
	BallColor       = color.RGBA{0xf8, 0xf8, 0xf8, 0xff}
	PaddleColor     = color.RGBA{0x58, 0xb0, 0xf8, 0xff}
	PaddleTrim      = color.RGBA{0xf8, 0xc8, 0x40, 0xff}
	WallColor       = color.RGBA{0x38, 0x48, 0x58, 0xff}
	NetColor        = color.RGBA{0x80, 0x90, 0xa0, 0xff}
)

// newSprites rasterises one 16x16 image per sprite id. Paddle pieces are
// drawn facing right; the trim marks the inside edge so flips are visible.
func newSprites() map[pong.SpriteID]*ebiten.Image {
	const size = pong.SpriteSize

	ball := ebiten.NewImage(size, size)
	vector.DrawFilledCircle(ball, size/2, size/2, size/2-2, BallColor, true)

	end := ebiten.NewImage(size, size)
	vector.DrawFilledRect(end, 4, 4, 8, size-4, PaddleColor, false)
	vector.DrawFilledRect(end, 6, 2, 4, 2, PaddleColor, false)
	vector.DrawFilledRect(end, 10, 4, 2, size-4, PaddleTrim, false)

	mid := ebiten.NewImage(size, size)
	vector.DrawFilledRect(mid, 4, 0, 8, size, PaddleColor, false)
	vector.DrawFilledRect(mid, 10, 0, 2, size, PaddleTrim, false)

	return map[pong.SpriteID]*ebiten.Image{
		pong.SpriteBall:      ball,
		pong.SpritePaddleEnd: end,
		pong.SpritePaddleMid: mid,
	}
}

func newTiles() map[pong.Tile]*ebiten.Image {
	const size = pong.TileSize

	wall := ebiten.NewImage(size, size)
	wall.Fill(WallColor)
	vector.StrokeRect(wall, 0, 0, size, size, 1, BackgroundColor, false)

	net := ebiten.NewImage(size, size)
	vector.DrawFilledRect(net, 0, 1, 2, size-2, NetColor, false)

	return map[pong.Tile]*ebiten.Image{
		pong.TileWall: wall,
		pong.TileNet:  net,
	}
}
