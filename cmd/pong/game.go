package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/pong/ecs"
	debugui_ebiten "github.com/plus3/pong/ecs/debugui/ebiten"
	"github.com/plus3/pong/pong"
	"github.com/plus3/pong/render"
)

// Game adapts a pong.World to ebiten. The world is drawn at its native
// resolution into screen and scaled up to the window.
type Game struct {
	world    *pong.World
	renderer *render.Renderer
	screen   *ebiten.Image

	// nil unless the debug overlay is enabled.
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset()
	}

	if g.imguiBackend != nil {
		g.imguiBackend.Get().BeginFrame()
		g.world.Step()
		g.imguiBackend.Get().EndFrame()
		return nil
	}

	g.world.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		g.renderer = render.NewRenderer()
		g.screen = ebiten.NewImage(pong.ScreenWidth, pong.ScreenHeight)
	}
	g.renderer.Draw(g.screen, g.world)

	var op ebiten.DrawImageOptions
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := min(float64(sw)/pong.ScreenWidth, float64(sh)/pong.ScreenHeight)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(sw)-pong.ScreenWidth*scale)/2, (float64(sh)-pong.ScreenHeight*scale)/2)
	screen.DrawImage(g.screen, &op)

	if g.imguiBackend != nil {
		g.imguiBackend.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
