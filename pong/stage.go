package pong

import (
	"fmt"
	"strconv"
)

// Stage selects one of the incremental versions of the demo. Each stage
// adds features on top of the previous one.
type Stage int

const (
	// StageInput steers the ball with the D-pad. Paddles are drawn but inert.
	StageInput Stage = iota + 1
	// StageVelocity gives the ball its own velocity and bounces it off the
	// screen edges.
	StageVelocity
	// StagePaddle lets the player move the left paddle and bounces the ball
	// off both paddles.
	StagePaddle
	// StageFixed moves everything in fixed point, angles paddle hits, adds a
	// computer paddle, scoring and a tile background.
	StageFixed
)

var stageNames = map[Stage]string{
	StageInput:    "input",
	StageVelocity: "velocity",
	StagePaddle:   "paddle",
	StageFixed:    "fixed",
}

// Stages lists every stage in order.
func Stages() []Stage {
	return []Stage{StageInput, StageVelocity, StagePaddle, StageFixed}
}

// ParseStage accepts a stage name ("input", "velocity", "paddle", "fixed")
// or its number (1-4).
func ParseStage(s string) (Stage, error) {
	for stage, name := range stageNames {
		if name == s {
			return stage, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Stage(n).Valid() {
		return Stage(n), nil
	}
	return 0, fmt.Errorf("unknown stage %q (want input, velocity, paddle, fixed or 1-4)", s)
}

func (s Stage) Valid() bool {
	_, ok := stageNames[s]
	return ok
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "Stage(" + strconv.Itoa(int(s)) + ")"
}

// Set implements flag.Value.
func (s *Stage) Set(value string) error {
	stage, err := ParseStage(value)
	if err != nil {
		return err
	}
	*s = stage
	return nil
}

// Features are the switches a stage turns on.
type Features struct {
	// Steering sets the ball velocity from the D-pad every frame.
	Steering bool
	// EdgeBounce reflects the ball off the screen edges.
	EdgeBounce bool
	// PlayerPaddle moves the left paddle from the D-pad.
	PlayerPaddle bool
	// PaddleCollision reflects the ball off paddles.
	PaddleCollision bool
	// AngledHits derives the vertical velocity from where the ball struck
	// the paddle. Needs fractional velocities.
	AngledHits bool
	// CPUPaddle drives the right paddle towards the ball.
	CPUPaddle bool
	// Scoring awards a point when the ball reaches a side edge.
	Scoring bool
	// Background draws the tile map.
	Background bool
	// CenteredPaddles starts the paddles halfway down the screen.
	CenteredPaddles bool
}

func (s Stage) Features() Features {
	var f Features
	switch s {
	case StageInput:
		f.Steering = true
	case StageVelocity:
		f.EdgeBounce = true
	case StagePaddle:
		f.EdgeBounce = true
		f.PlayerPaddle = true
		f.PaddleCollision = true
		f.CenteredPaddles = true
	case StageFixed:
		f.EdgeBounce = true
		f.PlayerPaddle = true
		f.PaddleCollision = true
		f.CenteredPaddles = true
		f.AngledHits = true
		f.CPUPaddle = true
		f.Scoring = true
		f.Background = true
	}
	return f
}
