package pong_test

import (
	"flag"
	"testing"

	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		in      string
		want    pong.Stage
		wantErr bool
	}{
		{"input", pong.StageInput, false},
		{"velocity", pong.StageVelocity, false},
		{"paddle", pong.StagePaddle, false},
		{"fixed", pong.StageFixed, false},
		{"3", pong.StagePaddle, false},
		{"0", 0, true},
		{"5", 0, true},
		{"tiles", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := pong.ParseStage(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStageFlag(t *testing.T) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	stage := pong.StageInput
	fs.Var(&stage, "stage", "")

	require.NoError(t, fs.Parse([]string{"-stage", "fixed"}))
	assert.Equal(t, pong.StageFixed, stage)
	assert.Equal(t, "fixed", stage.String())
	assert.Equal(t, "Stage(7)", pong.Stage(7).String())
}

func TestStageFeaturesAreCumulative(t *testing.T) {
	velocity := pong.StageVelocity.Features()
	paddle := pong.StagePaddle.Features()
	fixed := pong.StageFixed.Features()

	assert.True(t, pong.StageInput.Features().Steering)
	assert.False(t, velocity.Steering)
	assert.True(t, velocity.EdgeBounce)
	assert.True(t, paddle.EdgeBounce && paddle.PaddleCollision && paddle.PlayerPaddle)
	assert.False(t, paddle.Background)
	assert.True(t, fixed.EdgeBounce && fixed.PaddleCollision && fixed.PlayerPaddle)
	assert.True(t, fixed.AngledHits && fixed.CPUPaddle && fixed.Scoring && fixed.Background)
}

func TestConfigValidate(t *testing.T) {
	for _, stage := range pong.Stages() {
		assert.NoError(t, pong.DefaultConfig(stage).Validate(), stage.String())
	}

	cfg := pong.DefaultConfig(pong.StagePaddle)
	cfg.Boost = 0
	assert.Error(t, cfg.Validate())

	_, err := pong.NewWorld(pong.Config{Stage: 9, Boost: 1}, nil)
	assert.Error(t, err)
}
