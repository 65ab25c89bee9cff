package helpers

import (
	"os"

	"github.com/cyphera/cyphera-expense/libs/go/constants"
)

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = constants.LocalEnvironment
	StageTest  = constants.TestEnvironment
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal, StageTest:
		return true
	default:
		return false
	}
}

// StageFromEnv reads STAGE, defaulting to local. The second result is false
// when the variable holds an unknown stage.
func StageFromEnv() (string, bool) {
	stage := os.Getenv(constants.EnvStage)
	if stage == "" {
		return StageLocal, true
	}
	return stage, IsValidStage(stage)
}

// IsDeployedStage reports whether the stage runs on AWS rather than locally
func IsDeployedStage(stage string) bool {
	return stage == StageProd || stage == StageDev
}
