package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/ecs/debugui"
	debugui_ebiten "github.com/plus3/pong/ecs/debugui/ebiten"
	"github.com/plus3/pong/input"
	"github.com/plus3/pong/pong"
)

func main() {
	stage := pong.StageFixed
	flag.Var(&stage, "stage", "Demo stage to run: input, velocity, paddle or fixed (or 1-4).")
	scale := flag.Int("scale", 3, "Integer window scale applied to the 240x160 screen.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	if err := run(stage, *scale, *debug); err != nil {
		log.Fatalf("pong: %v", err)
	}
}

func run(stage pong.Stage, scale int, debug bool) error {
	if scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", scale)
	}

	world, err := pong.NewWorld(pong.DefaultConfig(stage), input.NewKeyboard())
	if err != nil {
		return fmt.Errorf("building stage %s: %w", stage, err)
	}

	width, height := pong.ScreenWidth*scale, pong.ScreenHeight*scale
	title := fmt.Sprintf("Pong - %s", stage)

	game := &Game{world: world}

	if debug {
		backend := debugui_ebiten.NewImguiBackend(title, width*2, height*2)
		imgui.CurrentIO().SetIniFilename("")

		debugui.RegisterDebugUIComponents(world.Registry)
		debugui.SpawnDebugUI(world.Storage)
		spawnWorldInspector(world)

		world.Scheduler.Register(&debugui.ImguiSystem{})
		world.Scheduler.Register(&debugui.PerformanceStatsSystem{Scheduler: world.Scheduler})

		game.imguiBackend = ecs.NewSingleton(world.Storage, backend)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}

	log.Printf("running stage %s at %dx%d", stage, width, height)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
