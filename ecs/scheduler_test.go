package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities     ecs.Query[struct{ *Health }]
	Total        ecs.Singleton[Score]
	ExecuteCount int
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	total := s.Total.Get()
	*total = 0
	for item := range s.Entities.Values() {
		*total += Score(item.Health.Current)
	}
}

type SpawnerSystem struct {
	Spawned []uint64
}

func (s *SpawnerSystem) Execute(frame *ecs.UpdateFrame) {
	s.Spawned = append(s.Spawned, frame.Tick)
	frame.Commands.Spawn(Health{Current: 1, Max: 1})
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("system execution order and field initialization", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		ecs.NewSingleton[Score](storage)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		health := &HealthSystem{}
		scheduler.Register(movement)
		scheduler.Register(health)

		id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})
		storage.Spawn(Health{Current: 100, Max: 100})

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, 2, health.ExecuteCount)
		assert.Equal(t, &Position{X: 2, Y: 4}, ecs.ReadComponent[Position](storage, id))
		assert.Equal(t, Score(100), *health.Total.Get())
	})

	t.Run("commands flush after every system ran", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		ecs.NewSingleton[Score](storage)
		scheduler := ecs.NewScheduler(storage)

		spawner := &SpawnerSystem{}
		health := &HealthSystem{}
		scheduler.Register(spawner)
		scheduler.Register(health)

		scheduler.Once(0)
		assert.Equal(t, Score(0), *health.Total.Get())
		assert.Equal(t, 1, storage.EntityCount())

		scheduler.Once(0)
		assert.Equal(t, Score(1), *health.Total.Get())
		assert.Equal(t, []uint64{1, 2}, spawner.Spawned)
	})

	t.Run("run stops on context cancellation", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancellation")
		}
		require.Greater(t, movement.ExecuteCount, 0)
		assert.Equal(t, uint64(movement.ExecuteCount), scheduler.GetStats().Ticks)
	})
}
