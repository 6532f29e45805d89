// Package diag writes load-time fatal diagnostics straight to the process
// stderr. No higher-level logging facility is guaranteed to exist while a
// library load is still in flight, so every write is synced immediately.
package diag

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.New(zapcore.NewCore(
	zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
	zapcore.Lock(os.Stderr),
	zapcore.ErrorLevel,
))

// Fatalf reports a condition that aborts the current library load.
func Fatalf(format string, args ...any) {
	logger.Sugar().Errorf("FATAL: "+format, args...)
	_ = logger.Sync()
}
