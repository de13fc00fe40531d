package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
	debug    bool
)

// SetDebug must be called before the first Get. It switches the logger
// to a human-readable development config at debug level.
func SetDebug(enabled bool) {
	debug = enabled
}

func Get() *zap.Logger {
	once.Do(func() {
		var cfg zap.Config
		if debug {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
		}
		cfg.OutputPaths = []string{"stdout"}
		l, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = l
	})
	return instance
}

// Sync flushes buffered log entries. Safe to call on exit.
func Sync() {
	if instance != nil {
		_ = instance.Sync()
	}
}
