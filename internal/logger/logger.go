package logger

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Component names used with Named().
const (
	ComponentScheduler  = "scheduler"
	ComponentRecorder   = "recorder"
	ComponentRecovery   = "recovery"
	ComponentCollectors = "collectors"
	ComponentService    = "service"
)

// Rotation limits for the diagnostic file sink.
const (
	diagMaxSizeMB  = 5
	diagMaxBackups = 3
	diagMaxAgeDays = 28
)

func getLogLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// timeEncoder encodes the time as a human-readable timestamp.
func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "component",
		CallerKey:        "caller",
		FunctionKey:      zapcore.OmitKey,
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       timeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " | ",
	}
}

// New builds the process logger. Console output goes to stderr; when
// diagPath is set the same entries are written as JSON to a size-rotated file.
func New(level, diagPath string) *zap.Logger {
	atom := zap.NewAtomicLevelAt(getLogLevel(level))
	cfg := encoderConfig()

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), atom),
	}

	if diagPath != "" {
		sink := &lumberjack.Logger{
			Filename:   diagPath,
			MaxSize:    diagMaxSizeMB,
			MaxBackups: diagMaxBackups,
			MaxAge:     diagMaxAgeDays,
		}
		jsonCfg := cfg
		jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), zapcore.AddSync(sink), atom))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}
