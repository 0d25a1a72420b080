package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds a production zap logger at level and installs it as the
// global logger.
func NewLogger(level string) (*zap.Logger, error) {
	// convert the text logging level to zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	log, err := config.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(log)
	return log, nil
}
