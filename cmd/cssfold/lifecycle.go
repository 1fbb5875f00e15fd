package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssfold/config"
	"cssfold/misc"
	"cssfold/state"
)

// lifecycle sets up and tears down the environment around a subcommand.
// Subcommands return plain errors, cli.Exit is not used.
type lifecycle struct {
	errLogged bool
}

// before loads configuration and opens the report and the log once the
// command line is known to request work.
func (lc *lifecycle) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		return ctx, nil
	}
	env := state.EnvFromContext(ctx)

	var err error
	cfgPath := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(cfgPath); err != nil {
		return ctx, fmt.Errorf("loading configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("opening debug report: %w", err)
		}
		if cfgPath != "" {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData("config/"+filepath.Base(cfgPath), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("opening log: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Started",
		zap.Strings("args", os.Args),
		zap.String("ver", misc.GetVersion()),
		zap.String("runtime", runtime.Version()),
		zap.String("hash", misc.GetGitHash()))
	if env.Rpt != nil {
		env.Log.Info("Collecting debug report", zap.String("location", env.Rpt.Name()))
	}
	if cfgPath == "" {
		env.Log.Debug("No configuration file, embedded defaults in effect")
	}
	return ctx, nil
}

// after closes the log and the report. Errors from here on go to stderr only.
func (lc *lifecycle) after(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Debug("Finished", zap.Duration("elapsed", env.Uptime()), zap.Strings("args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()

	var err error
	if env.Rpt != nil {
		if e := env.Rpt.Close(); e != nil {
			err = multierr.Append(err, fmt.Errorf("closing debug report: %w", e))
		}
	}
	if env.Cfg != nil && env.Cfg.Logging.FileLogger.Destination != "" {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		err = multierr.Append(err, removeIfEmpty(env.Cfg.Logging.PanicLogName()))
	}
	return err
}

// removeIfEmpty drops the crash log when nothing crashed.
func removeIfEmpty(name string) error {
	fi, err := os.Stat(name)
	if err != nil || fi.Size() != 0 {
		return nil
	}
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("removing empty crash log '%s': %w", name, err)
	}
	return nil
}

// logExitError runs before after, while the log is still open.
func (lc *lifecycle) logExitError(ctx context.Context, _ *cli.Command, err error) {
	if env := state.EnvFromContext(ctx); env.Log != nil {
		env.Log.Error("Failed", zap.Error(err))
		lc.errLogged = true
	}
}

func (lc *lifecycle) unknownCommand(ctx context.Context, _ *cli.Command, name string) {
	if env := state.EnvFromContext(ctx); env.Log != nil {
		env.Log.Warn("Unknown command ignored", zap.String("command", name))
	}
}

// passUsageError leaves reporting to logExitError or main.
func passUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}
