// Package config reads settings from the environment, after loading an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fsmkit/internal/render"
)

const (
	EnvLogLevel     = "FSM_LOG_LEVEL"
	EnvLogFormat    = "FSM_LOG_FORMAT"
	EnvGraphFont    = "FSM_GRAPH_FONT"
	EnvGraphRankDir = "FSM_GRAPH_RANKDIR"
	EnvGraphFormat  = "FSM_GRAPH_FORMAT"
)

type LogFormat string

const (
	Console LogFormat = "console"
	JSON    LogFormat = "json"
)

type Config struct {
	LogLevel  zapcore.Level
	LogFormat LogFormat
	Graph     render.Config
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds a Config from it. Missing files are
// skipped; variables already set take precedence over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment alone.
func FromEnv() (*Config, error) {
	level, err := zapcore.ParseLevel(lookup(EnvLogLevel, "info"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	cfg := &Config{
		LogLevel:  level,
		LogFormat: LogFormat(lookup(EnvLogFormat, string(Console))),
		Graph: render.Config{
			Font:    render.Font(lookup(EnvGraphFont, string(render.Helvetica))),
			RankDir: render.RankDir(lookup(EnvGraphRankDir, string(render.LeftToRight))),
			Format:  render.Format(lookup(EnvGraphFormat, string(render.SVG))),
		},
	}

	switch cfg.LogFormat {
	case Console, JSON:
	default:
		return nil, fmt.Errorf("%s: unknown log format %q", EnvLogFormat, cfg.LogFormat)
	}
	switch cfg.Graph.RankDir {
	case render.LeftToRight, render.RightToLeft, render.TopToBottom, render.BottomToTop:
	default:
		return nil, fmt.Errorf("%s: unknown rank direction %q", EnvGraphRankDir, cfg.Graph.RankDir)
	}
	switch cfg.Graph.Format {
	case render.DOT, render.SVG, render.PNG, render.JPG:
	default:
		return nil, fmt.Errorf("%s: unknown graph format %q", EnvGraphFormat, cfg.Graph.Format)
	}
	return cfg, nil
}

// NewLogger builds a development (console) or production (json) zap logger
// at the configured level.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.LogFormat == JSON {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zc.Build()
}

func lookup(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
