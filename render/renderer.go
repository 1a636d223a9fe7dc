package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/pong/pong"
)

// Renderer draws the background, sprites and score of a World onto a
// ScreenWidth x ScreenHeight image.
type Renderer struct {
	sprites map[pong.SpriteID]*ebiten.Image
	tiles   map[pong.Tile]*ebiten.Image
	// tileCache holds the background once drawn; the map never changes
	// while a stage runs.
	tileCache *ebiten.Image
	cachedFor *pong.Background
	opts      ebiten.DrawImageOptions
}

// NewRenderer rasterises the sprite sheet and tile set. It must be called
// after ebiten is able to create images.
func NewRenderer() *Renderer {
	return &Renderer{
		sprites: newSprites(),
		tiles:   newTiles(),
	}
}

// Draw renders one frame of w onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, w *pong.World) {
	dst.Fill(BackgroundColor)

	if bg := w.Background(); bg != nil {
		r.drawBackground(dst, bg)
	}

	for _, obj := range w.Objects() {
		r.drawObject(dst, obj)
	}

	if w.Features().Scoring {
		score := w.Score()
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d", score.Left), pong.ScreenWidth/2-24, pong.TileSize+2)
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d", score.Right), pong.ScreenWidth/2+18, pong.TileSize+2)
	}
}

func (r *Renderer) drawBackground(dst *ebiten.Image, bg *pong.Background) {
	if r.tileCache == nil || r.cachedFor != bg {
		r.tileCache = ebiten.NewImage(pong.ScreenWidth, pong.ScreenHeight)
		for y := range pong.MapHeight {
			for x := range pong.MapWidth {
				tile, ok := r.tiles[bg.At(x, y)]
				if !ok {
					continue
				}
				r.opts.GeoM.Reset()
				r.opts.GeoM.Translate(float64(x*pong.TileSize), float64(y*pong.TileSize))
				r.tileCache.DrawImage(tile, &r.opts)
			}
		}
		r.cachedFor = bg
	}

	r.opts.GeoM.Reset()
	dst.DrawImage(r.tileCache, &r.opts)
}

func (r *Renderer) drawObject(dst *ebiten.Image, obj pong.Object) {
	img, ok := r.sprites[obj.Sprite]
	if !ok {
		return
	}

	r.opts.GeoM.Reset()
	r.opts.GeoM.Concat(objectTransform(obj))
	dst.DrawImage(img, &r.opts)
}

// objectTransform places a 16x16 sprite at obj's position, mirroring it in
// place for HFlip and VFlip.
func objectTransform(obj pong.Object) ebiten.GeoM {
	var m ebiten.GeoM
	sx, sy := 1.0, 1.0
	var tx, ty float64
	if obj.HFlip {
		sx, tx = -1, pong.SpriteSize
	}
	if obj.VFlip {
		sy, ty = -1, pong.SpriteSize
	}
	m.Scale(sx, sy)
	m.Translate(tx+float64(obj.X), ty+float64(obj.Y))
	return m
}
