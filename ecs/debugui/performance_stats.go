package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *PerformanceStatsComponent) Render(storage *ecs.Storage, scheduler *ecs.SchedulerStats, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := storage.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Component Types: %d", stats.ComponentTypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if scheduler != nil && imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, system := range scheduler.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(system.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Components") {
		for _, component := range stats.ComponentBreakdown {
			imgui.BulletText(fmt.Sprintf("%s: %d", component.Type, component.Count))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// PerformanceStatsSystem renders every PerformanceStatsComponent once per
// frame. Scheduler is optional; without it the systems table is hidden.
type PerformanceStatsSystem struct {
	Windows   ecs.Query[struct{ *PerformanceStatsComponent }]
	Timer     ecs.Singleton[FrameTimer]
	Scheduler *ecs.Scheduler
}

func (s *PerformanceStatsSystem) Execute(frame *ecs.UpdateFrame) {
	timer := s.Timer.Get()
	if timer == nil {
		return
	}
	dt := timer.GetDeltaTime()

	var schedulerStats *ecs.SchedulerStats
	if s.Scheduler != nil {
		schedulerStats = s.Scheduler.GetStats()
	}

	for window := range s.Windows.Values() {
		stats := window.PerformanceStatsComponent
		frame.Commands.Defer(func() {
			stats.Render(frame.Storage, schedulerStats, dt)
		})
	}
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
