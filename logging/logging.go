package logging

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	baseConfig = NewConfig()
	baseLogger = zap.Must(baseConfig.Build())
)

type contextKey int

const (
	contextFieldsKey contextKey = iota
)

// NewConfig builds the zap config used by all loggers in this module. The
// default is JSON to stdout at info level; setting LOG_FORMAT=development
// switches to a colorized console encoder at debug level, and LOG_LEVEL
// overrides the level in either mode.
func NewConfig() zap.Config {
	var config zap.Config

	if os.Getenv("LOG_FORMAT") == "development" {
		config = newDevelopmentConfig()
	} else {
		config = newProductionConfig()
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if lvl, err := zap.ParseAtomicLevel(level); err == nil {
			config.Level = lvl
		}
	}

	return config
}

func newDevelopmentConfig() zap.Config {
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(zap.DebugLevel),
		Development:       true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     newDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
	}
}

func newProductionConfig() zap.Config {
	return zap.Config{
		Level:       zap.NewAtomicLevelAt(zap.InfoLevel),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:      "json",
		EncoderConfig: newProductionEncoderConfig(),
		OutputPaths:   []string{"stdout"},
	}
}

func newDevelopmentEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := newProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.NameKey = ""
	return encoderConfig
}

func newProductionEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New creates a named logger so log lines identify their source package.
func New(name string) *zap.Logger {
	return baseLogger.Named(name)
}

// GetFields returns the log fields accumulated on ctx, if any.
func GetFields(ctx context.Context) []zap.Field {
	f := ctx.Value(contextFieldsKey)
	if f == nil {
		return []zap.Field{}
	}
	return f.([]zap.Field)
}

// AddFields returns a child context carrying the given fields in addition to
// any already present.
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	f := GetFields(ctx)
	f = append(f, fields...)
	return context.WithValue(ctx, contextFieldsKey, f)
}

// LevelHandler exposes the base log level over HTTP for runtime adjustment.
func LevelHandler(w http.ResponseWriter, r *http.Request) {
	baseConfig.Level.ServeHTTP(w, r)
}
