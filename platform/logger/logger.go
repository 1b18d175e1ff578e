package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type options struct {
	filePath string
	console  bool
	level    zapcore.Level
}

// Option customizes the logger built by New
type Option func(*options)

// WithFile also writes the log lines to a rotated file
func WithFile(path string) Option {
	return func(o *options) {
		o.filePath = path
	}
}

// WithConsole turns the stdout sink on or off, it is on by default
func WithConsole(enabled bool) Option {
	return func(o *options) {
		o.console = enabled
	}
}

// WithLevel sets the minimum enabled level, info by default
func WithLevel(level zapcore.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// New builds a json logger tagged with the service name
func New(service string, opts ...Option) (*zap.SugaredLogger, error) {
	o := options{console: true, level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	var cores []zapcore.Core
	if o.console {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), o.level))
	}
	if o.filePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   o.filePath,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), o.level))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).
		With(zap.String("service", service))

	return log.Sugar(), nil
}
