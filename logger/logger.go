// Package logger builds the zap logger used across the binaries
// The game owns the terminal, so its log goes to a rotated file; console output is for headless tools
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFmt = "2006/01/02 15:04:05.000"

// Config selects level and sinks
type Config struct {
	Level   string `yaml:"level"`
	App     string `yaml:"app"`
	Dir     string `yaml:"dir"`
	File    bool   `yaml:"file"`    // rotated file under Dir
	Console bool   `yaml:"console"` // stderr
}

// DefaultConfig logs nothing until a sink is enabled
func DefaultConfig() Config {
	return Config{
		Level: "info",
		App:   "reel",
		Dir:   "logs",
	}
}

// New creates a logger from cfg; with no sink enabled it returns a no-op logger
// An unparsable level falls back to debug with a note on stderr
func New(cfg Config) (*zap.Logger, error) {
	if cfg.App == "" {
		cfg.App = "reel"
	}

	lv := zap.NewAtomicLevel()
	if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
		_ = lv.UnmarshalText([]byte("debug"))
		_, _ = fmt.Fprintf(os.Stderr, "logger: invalid log level %q, defaulting to DEBUG\n", cfg.Level)
	}

	var cores []zapcore.Core
	if cfg.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg(false)),
			zapcore.Lock(os.Stderr),
			lv,
		))
	}
	if cfg.File {
		if cfg.Dir != "" {
			if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		name := filepath.Join(cfg.Dir, cfg.App)
		cores = append(cores, fileCore(name+".log", lv))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// Path returns the log file path cfg writes to
func Path(cfg Config) string {
	app := cfg.App
	if app == "" {
		app = "reel"
	}
	return filepath.Join(cfg.Dir, app+".log")
}

func fileCore(file string, lv zapcore.LevelEnabler) zapcore.Core {
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    20,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg(true)),
		zapcore.AddSync(w),
		lv,
	)
}

func encCfg(file bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	cfg.ConsoleSeparator = " "
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	if file {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
