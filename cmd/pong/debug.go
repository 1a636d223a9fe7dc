package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs/debugui"
	"github.com/plus3/pong/pong"
)

// spawnWorldInspector adds a window showing the ball, both paddles and the
// score.
func spawnWorldInspector(world *pong.World) {
	world.Storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(280, 200), imgui.CondOnce)

			if !imgui.BeginV("Pong", nil, 0) {
				imgui.End()
				return
			}

			cfg := world.Config()
			imgui.Text(fmt.Sprintf("Stage: %s", cfg.Stage))
			imgui.Separator()

			ball := world.Ball()
			imgui.Text(fmt.Sprintf("Ball pos: (%s, %s)", ball.Position.X, ball.Position.Y))
			imgui.Text(fmt.Sprintf("Ball vel: (%s, %s)", ball.Velocity.X, ball.Velocity.Y))

			for _, side := range []pong.Side{pong.SideLeft, pong.SideRight} {
				paddle := world.Paddle(side)
				imgui.Text(fmt.Sprintf("%s paddle: (%s, %s)", side, paddle.Position.X, paddle.Position.Y))
			}

			if world.Features().Scoring {
				imgui.Separator()
				score := world.Score()
				imgui.Text(fmt.Sprintf("Score: %d - %d", score.Left, score.Right))
			}

			imgui.End()
		},
	})
}
