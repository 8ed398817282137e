package logger

import (
	"log"

	"go.uber.org/zap"
)

// New builds the process-wide sugared logger. Production config is used for
// any env except "development".
func New(env string) *zap.SugaredLogger {
	var (
		l   *zap.Logger
		err error
	)

	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}

	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	return l.Sugar()
}
