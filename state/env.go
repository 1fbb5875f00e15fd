// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cssfold/config"
	"cssfold/css"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by minify subcommand
	Pretty    bool
	Strict    bool
	Overwrite bool
	Stats     Stats

	start         time.Time
	restoreStdLog func()
}

// Stats accumulates processing totals for the final report line.
type Stats struct {
	Files    int
	Failed   int
	Warnings int
	BytesIn  int64
	BytesOut int64
}

// Add accounts for one processed stylesheet.
func (s *Stats) Add(in, out int64, warnings int) {
	s.Files++
	s.Warnings += warnings
	s.BytesIn += in
	s.BytesOut += out
}

// Saved returns the fraction of input bytes removed, 0 when nothing was read.
func (s *Stats) Saved() float64 {
	if s.BytesIn == 0 {
		return 0
	}
	return 1 - float64(s.BytesOut)/float64(s.BytesIn)
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// NewParser returns stylesheet parser configured from command line and
// configuration.
func (e *LocalEnv) NewParser() *css.Parser {
	strict := e.Strict
	if e.Cfg != nil {
		strict = strict || e.Cfg.Output.Strict
	}
	return css.NewParser(e.Log, css.WithStrict(strict))
}

// PrintOptions returns stylesheet output options.
func (e *LocalEnv) PrintOptions() css.PrintOptions {
	if e.Cfg == nil {
		return css.PrintOptions{Minify: !e.Pretty}
	}
	return e.Cfg.Output.PrintOptions(e.Pretty)
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
