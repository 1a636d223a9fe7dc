package pong

import (
	"fmt"

	"github.com/plus3/pong/fixed"
)

// Config holds the tunables of a World.
type Config struct {
	Stage Stage

	BallStart    fixed.Vector2D[fixed.Num]
	BallVelocity fixed.Vector2D[fixed.Num]
	// BallSpeed is the horizontal speed restored after an angled paddle hit.
	BallSpeed fixed.Num

	PaddleSpeed fixed.Num
	CPUSpeed    fixed.Num
	// Boost multiplies ball steering and paddle speed while A is held.
	Boost int
}

// DefaultConfig returns the settings each stage shipped with.
func DefaultConfig(stage Stage) Config {
	cfg := Config{
		Stage:       stage,
		BallStart:   fixed.NumVec(50, 50),
		BallSpeed:   fixed.Int(1),
		PaddleSpeed: fixed.Int(1),
		CPUSpeed:    fixed.Int(1),
		Boost:       2,
	}

	switch stage {
	case StageInput:
	case StageVelocity, StagePaddle:
		cfg.BallVelocity = fixed.NumVec(1, 1)
	case StageFixed:
		cfg.BallSpeed = fixed.FromFloat(1.5)
		cfg.BallVelocity = fixed.Vector2D[fixed.Num]{X: cfg.BallSpeed, Y: fixed.FromFloat(0.5)}
	}
	return cfg
}

// Validate checks that the config can drive a World.
func (c Config) Validate() error {
	if !c.Stage.Valid() {
		return fmt.Errorf("invalid stage %s", c.Stage)
	}
	if c.Boost < 1 {
		return fmt.Errorf("boost must be at least 1, got %d", c.Boost)
	}
	if c.PaddleSpeed < 0 || c.CPUSpeed < 0 || c.BallSpeed < 0 {
		return fmt.Errorf("speeds must not be negative")
	}
	return nil
}
