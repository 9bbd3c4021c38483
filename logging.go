package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var debugLog = zap.NewNop().Sugar()

// EnableDebugLogging routes debug output to a file in the temp dir. The
// logger stays a nop otherwise so nothing ever writes to the terminal the
// TUI is drawing on.
func EnableDebugLogging(enabled bool) {
	if !enabled {
		debugLog = zap.NewNop().Sugar()
		return
	}
	path := filepath.Join(os.TempDir(), "blocktui-debug.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(file),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	debugLog = zap.New(core).Sugar()
}

func DebugLogf(format string, args ...any) {
	debugLog.Debugf(format, args...)
}
