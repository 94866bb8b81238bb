package utils

import (
	"os"

	"github.com/unicsmcr/activity_board/environment"
	"go.uber.org/zap"
)

// NewLogger creates the application logger. The production preset is used when
// ENVIRONMENT is prod, the development one otherwise.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv(environment.Environment) == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment(zap.AddStacktrace(zap.DPanicLevel))
}
