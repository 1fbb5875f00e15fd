package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssfold/config"
	"cssfold/state"
)

func dumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Extra destinations ignored", zap.Strings("args", cmd.Args().Slice()[1:]))
	}

	kind := "merged"
	if cmd.Bool("default") {
		kind = "default"
	}

	dst := cmd.Args().Get(0)
	if dst == "" {
		env.Log.Info("Writing configuration", zap.String("kind", kind), zap.String("to", "STDOUT"))
		return writeConfig(os.Stdout, env.Cfg, kind == "default")
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating '%s': %w", dst, err)
	}
	env.Log.Info("Writing configuration", zap.String("kind", kind), zap.String("to", dst))
	if err := writeConfig(f, env.Cfg, kind == "default"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeConfig renders either the embedded defaults or cfg as YAML.
func writeConfig(w io.Writer, cfg *config.Config, defaults bool) error {
	var (
		data []byte
		err  error
	)
	if defaults {
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(cfg)
	}
	if err != nil {
		return fmt.Errorf("rendering configuration: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	return nil
}
