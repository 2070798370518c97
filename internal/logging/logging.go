// Package logging builds the zap logger shared by every component of a run.
package logging

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w. Debug lowers the level to
// debug, quiet raises it to warn. Each logger is tagged with a fresh run id.
// Error entries carry a stack trace.
func New(w io.Writer, debug, quiet bool) *zap.Logger {
	level := zapcore.InfoLevel
	switch {
	case debug:
		level = zapcore.DebugLevel
	case quiet:
		level = zapcore.WarnLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("run_id", uuid.NewString()))
}
