package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Init replaces the global zap logger. Development gets the human readable
// console encoder, every other environment logs JSON.
func Init(environment string) error {
	var conf zap.Config
	if environment == "development" {
		conf = zap.NewDevelopmentConfig()
		level.SetLevel(zap.DebugLevel)
	} else {
		conf = zap.NewProductionConfig()
		conf.EncoderConfig.TimeKey = "time"
		conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	conf.Level = level

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("conf.Build -> %w", err)
	}
	zap.ReplaceGlobals(l)

	return nil
}

// SetLevel changes the level of the global logger at runtime.
func SetLevel(text string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(text)); err != nil {
		return fmt.Errorf("invalid log level %q -> %w", text, err)
	}
	level.SetLevel(l)

	return nil
}

func Sync() {
	_ = zap.L().Sync()
}
