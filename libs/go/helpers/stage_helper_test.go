package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		wantStage string
		wantValid bool
	}{
		{"unset defaults to local", "", StageLocal, true},
		{"prod", "prod", StageProd, true},
		{"dev", "dev", StageDev, true},
		{"unknown", "staging", "staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STAGE", tt.env)

			stage, valid := StageFromEnv()

			assert.Equal(t, tt.wantStage, stage)
			assert.Equal(t, tt.wantValid, valid)
		})
	}
}

func TestIsDeployedStage(t *testing.T) {
	assert.True(t, IsDeployedStage(StageProd))
	assert.True(t, IsDeployedStage(StageDev))
	assert.False(t, IsDeployedStage(StageLocal))
	assert.False(t, IsDeployedStage(StageTest))
}
