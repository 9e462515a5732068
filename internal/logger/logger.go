// Package logger provides structured logging using Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment. "prod" uses
// the JSON encoder; anything else gets the human-readable console encoder.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if env == "prod" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}

		if err != nil {
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development logger
// if Init has not been called.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("dev")
	}
	return sugar
}

// Sync flushes buffered entries. Call before exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
