package logger

import (
	"go.uber.org/zap"
)

var (
	// Log is the structured logger used by services.
	Log = zap.NewNop()
	// SLog is the sugared variant for startup and job messages.
	SLog = Log.Sugar()
)

// Init builds the global loggers for the given environment.
func Init(production bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if production {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	Log = l
	SLog = l.Sugar()
	return l, nil
}

// Sync flushes buffered entries; call before exit.
func Sync() {
	_ = Log.Sync()
}
