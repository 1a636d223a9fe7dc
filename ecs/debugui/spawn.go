package debugui

import "github.com/plus3/pong/ecs"

// SpawnDebugUI adds the performance window and the frame timer it reads.
func SpawnDebugUI(storage *ecs.Storage) {
	storage.Spawn(NewPerformanceStatsComponent(120))
	storage.AddSingleton(NewFrameTimer())
	storage.AddSingleton(ImguiInputState{})
}

func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[PerformanceStatsComponent](registry)
}
