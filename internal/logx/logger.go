package logx

import (
	"go.uber.org/zap"
)

// L is the process logger. It discards everything until Init runs.
var L = zap.NewNop()

func Init(env string) {
	cfg := zap.NewProductionConfig()

	// Local dev readability
	if env != "prod" {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	L = logger
}

// Sync flushes buffered entries, ignoring the EINVAL stderr returns on some terminals.
func Sync() {
	_ = L.Sync()
}
