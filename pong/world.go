package pong

import (
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/fixed"
	"github.com/plus3/pong/input"
)

// World owns the ECS storage and scheduler for one running stage.
type World struct {
	Registry  *ecs.ComponentRegistry
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler

	config   Config
	features Features

	drawList   *ecs.Singleton[DrawList]
	score      *ecs.Singleton[Score]
	background *ecs.Singleton[Background]
	balls      *ecs.View[ballView]
	paddles    *ecs.View[paddleView]
}

type ballView struct {
	*Ball
	*Position
	*Velocity
}

// BallState is a snapshot of the ball.
type BallState struct {
	Position fixed.Vector2D[fixed.Num]
	Velocity fixed.Vector2D[fixed.Num]
}

// Box returns the ball's collision box in whole pixels.
func (b BallState) Box() fixed.Rect[int32] {
	return ballBox(b.Position)
}

// PaddleState is a snapshot of a paddle.
type PaddleState struct {
	Side     Side
	Position fixed.Vector2D[fixed.Num]
	Hflip    bool
}

// Box returns the paddle's collision box in whole pixels.
func (p PaddleState) Box() fixed.Rect[int32] {
	return paddleBox(p.Position)
}

// NewWorld builds the storage, singletons, entities and systems for
// cfg.Stage. source feeds the pad; nil means no buttons are ever pressed.
func NewWorld(cfg Config, source input.Source) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Ball](registry)
	ecs.RegisterComponent[Paddle](registry)
	ecs.RegisterComponent[PlayerControlled](registry)
	ecs.RegisterComponent[CPUControlled](registry)

	storage := ecs.NewStorage(registry)
	features := cfg.Stage.Features()

	w := &World{
		Registry:  registry,
		Storage:   storage,
		Scheduler: ecs.NewScheduler(storage),
		config:    cfg,
		features:  features,
		balls:     ecs.NewView[ballView](storage),
		paddles:   ecs.NewView[paddleView](storage),
	}

	ecs.NewSingleton(storage, Settings{Config: cfg, Features: features})
	ecs.NewSingleton(storage, Controller{ButtonController: input.NewButtonController(source)})
	w.drawList = ecs.NewSingleton[DrawList](storage)
	w.score = ecs.NewSingleton[Score](storage)
	if features.Background {
		w.background = ecs.NewSingleton(storage, NewCourt())
	}

	w.spawn()
	w.registerSystems()
	return w, nil
}

func (w *World) registerSystems() {
	f := w.features

	w.Scheduler.Register(&InputSystem{})
	if f.PlayerPaddle {
		w.Scheduler.Register(&PaddleControlSystem{})
	}
	if f.CPUPaddle {
		w.Scheduler.Register(&CPUPaddleSystem{})
	}
	w.Scheduler.Register(&BallMovementSystem{})
	if f.Steering {
		w.Scheduler.Register(&SteerSystem{})
	}
	if f.EdgeBounce {
		w.Scheduler.Register(&WallBounceSystem{})
	}
	if f.PaddleCollision {
		w.Scheduler.Register(&PaddleCollisionSystem{})
	}
	w.Scheduler.Register(&SpriteSystem{})
}

func (w *World) spawn() {
	w.Storage.Spawn(
		Ball{},
		Position{w.config.BallStart},
		Velocity{w.config.BallVelocity},
	)

	paddleY := PaddleMargin
	if w.features.CenteredPaddles {
		paddleY = paddleMaxY / 2
	}

	left := []any{
		Paddle{Side: SideLeft},
		Position{fixed.NumVec(leftPaddleX, paddleY)},
	}
	if w.features.PlayerPaddle {
		left = append(left, PlayerControlled{})
	}
	w.Storage.Spawn(left...)

	right := []any{
		Paddle{Side: SideRight, Hflip: true},
		Position{fixed.NumVec(rightPaddleX, paddleY)},
	}
	if w.features.CPUPaddle {
		right = append(right, CPUControlled{})
	}
	w.Storage.Spawn(right...)
}

// Step advances the world by one frame.
func (w *World) Step() {
	w.Scheduler.Once(FrameTime)
}

// Reset puts the ball and paddles back where they started and clears the
// score. Call it between frames, never from inside a system.
func (w *World) Reset() {
	for id := range w.balls.Iter() {
		w.Storage.Delete(id)
	}
	for id := range w.paddles.Iter() {
		w.Storage.Delete(id)
	}
	*w.score.Get() = Score{}
	w.spawn()
}

func (w *World) Config() Config {
	return w.config
}

func (w *World) Features() Features {
	return w.features
}

// Ball returns the current ball state.
func (w *World) Ball() BallState {
	for ball := range w.balls.Values() {
		return BallState{Position: ball.Position.Vector2D, Velocity: ball.Velocity.Vector2D}
	}
	return BallState{}
}

// Paddle returns the state of the paddle on side.
func (w *World) Paddle(side Side) PaddleState {
	for paddle := range w.paddles.Values() {
		if paddle.Paddle.Side == side {
			return PaddleState{Side: side, Position: paddle.Position.Vector2D, Hflip: paddle.Paddle.Hflip}
		}
	}
	return PaddleState{Side: side}
}

// Score returns the current score.
func (w *World) Score() Score {
	return *w.score.Get()
}

// Objects returns the sprites built by the last Step. The slice is reused
// by the next Step.
func (w *World) Objects() []Object {
	return w.drawList.Get().Objects
}

// Background returns the tile map, or nil when the stage has none.
func (w *World) Background() *Background {
	if w.background == nil {
		return nil
	}
	return w.background.Get()
}

// Stats reports per-system timings.
func (w *World) Stats() *ecs.SchedulerStats {
	return w.Scheduler.GetStats()
}
