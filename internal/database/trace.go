package database

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapTracer forwards pgx trace events to a zap logger.
type ZapTracer struct {
	logger *zap.Logger
}

func NewZapTracer(l *zap.Logger) *ZapTracer {
	return &ZapTracer{logger: l.Named("pgx")}
}

func (t *ZapTracer) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	fields := make([]zap.Field, 0, 4)
	for _, k := range []string{"sql", "args", "time"} {
		if v, ok := data[k]; ok {
			fields = append(fields, zap.Any(k, v))
		}
	}
	if err, ok := data["err"].(error); ok {
		fields = append(fields, zap.Error(err))
	}

	if ce := t.logger.Check(zapLevel(level), msg); ce != nil {
		ce.Write(fields...)
	}
}

func zapLevel(level tracelog.LogLevel) zapcore.Level {
	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		return zapcore.DebugLevel
	case tracelog.LogLevelInfo:
		return zapcore.InfoLevel
	case tracelog.LogLevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// TraceLevel maps a LOG_LEVEL value to the pgx trace level.
func TraceLevel(s string) tracelog.LogLevel {
	if s == "debug" {
		return tracelog.LogLevelDebug
	}
	return tracelog.LogLevelWarn
}
