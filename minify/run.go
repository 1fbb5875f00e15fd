// Package minify implements the minify command: stylesheets are parsed,
// their declaration blocks folded and the result printed.
package minify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssfold/archive"
	"cssfold/state"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	// file log may be appended to by many runs
	log := env.Log.Named("minify").With(zap.Stringer("run", uuid.New()))

	sources := cmd.Args().Slice()
	if len(sources) == 0 {
		return errors.New("no input source has been specified")
	}
	env.Pretty, env.Strict, env.Overwrite = cmd.Bool("pretty"), cmd.Bool("strict"), cmd.Bool("overwrite")
	dst := cmd.String("out")

	log.Info("Processing starting", zap.Strings("sources", sources), zap.String("destination", dst),
		zap.Bool("pretty", env.Pretty), zap.Bool("strict", env.Strict || env.Cfg.Output.Strict))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)),
			zap.Int("files", env.Stats.Files), zap.Int("failed", env.Stats.Failed), zap.Int("warnings", env.Stats.Warnings),
			zap.Int64("in", env.Stats.BytesIn), zap.Int64("out", env.Stats.BytesOut),
			zap.String("saved", fmt.Sprintf("%.1f%%", env.Stats.Saved()*100)))
	}(time.Now())

	return process(ctx, sources, dst, log)
}

// process handles the core logic independently of CLI framework.
func process(ctx context.Context, sources []string, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	jobs, err := collect(ctx, sources, log)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		log.Warn("Nothing to process")
		return nil
	}

	single := len(jobs) == 1 && jobs[0].archive == "" && (jobs[0].isStdin() || !isDir(sources[0]))
	for i, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		out := buildOutputPath(j, dst, &env.Cfg.Output, single)
		if err := processStylesheet(ctx, i, j, out, log); err != nil {
			env.Stats.Failed++
			log.Error("Unable to process stylesheet", zap.String("file", j.path), zap.Error(err))
		}
	}
	if env.Stats.Failed > 0 {
		return fmt.Errorf("%d of %d stylesheet(s) failed", env.Stats.Failed, len(jobs))
	}
	return nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// collect expands sources into the list of stylesheets. Directories are
// walked recursively and their files processed in natural name order.
func collect(ctx context.Context, sources []string, log *zap.Logger) ([]job, error) {
	env := state.EnvFromContext(ctx)

	var jobs []job
	for _, src := range sources {
		if src == stdio {
			jobs = append(jobs, job{path: stdio, rel: "stdin.css"})
			continue
		}
		fi, err := os.Stat(src)
		if err != nil {
			return nil, fmt.Errorf("input source was not found (%s): %w", src, err)
		}
		if !fi.IsDir() {
			found, err := collectArchive(ctx, src)
			if err != nil {
				return nil, err
			}
			if found == nil {
				jobs = append(jobs, job{path: src, rel: filepath.Base(src)})
				continue
			}
			if len(found) == 0 {
				log.Debug("Nothing to process", zap.String("archive", src))
			}
			jobs = append(jobs, found...)
			continue
		}

		var found []job
		err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err != nil {
				log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !env.Cfg.Output.Accepts(d.Name()) || isOutput(d.Name(), env.Cfg.Output.Suffix) {
				log.Debug("Skipping file", zap.String("file", path))
				return nil
			}
			rel, err := filepath.Rel(src, path)
			if err != nil {
				return err
			}
			found = append(found, job{path: path, rel: rel})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("unable to walk directory (%s): %w", src, err)
		}
		if len(found) == 0 {
			log.Debug("Nothing to process", zap.String("dir", src))
		}
		sortJobs(found)
		jobs = append(jobs, found...)
	}
	return jobs, nil
}

// collectArchive returns stylesheets stored in zip archive or nil when src is
// not an archive.
func collectArchive(ctx context.Context, src string) ([]job, error) {
	env := state.EnvFromContext(ctx)

	ok, err := archive.IsArchive(src)
	if err != nil {
		return nil, fmt.Errorf("unable to check archive type (%s): %w", src, err)
	}
	if !ok {
		return nil, nil
	}
	members, err := archive.ReadMembers(src, "", func(name string) bool {
		return env.Cfg.Output.Accepts(name) && !isOutput(name, env.Cfg.Output.Suffix)
	})
	if err != nil {
		return nil, fmt.Errorf("unable to process archive (%s): %w", src, err)
	}
	found := make([]job, 0, len(members))
	for _, m := range members {
		found = append(found, job{
			path:    src + "/" + m.Name,
			rel:     filepath.FromSlash(m.Name),
			archive: src,
			data:    m.Data,
		})
	}
	sortJobs(found)
	return found, nil
}

func sortJobs(jobs []job) {
	sort.SliceStable(jobs, func(i, k int) bool {
		return natural.Less(filepath.ToSlash(jobs[i].rel), filepath.ToSlash(jobs[k].rel))
	})
}

// processStylesheet parses, folds and prints a single stylesheet. Empty out
// means standard output.
func processStylesheet(ctx context.Context, n int, j job, out string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	log.Debug("Minification starting", zap.String("from", j.path))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Minification ended with panic",
				zap.Any("panic", r), zap.String("from", j.path), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("minification panic: %v", r)
			return
		}
		log.Debug("Minification completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outName(out)))
	}(time.Now())

	var (
		data []byte
		err  error
	)
	switch {
	case j.data != nil:
		data = j.data
	case j.isStdin():
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(j.path)
	}
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}
	if env.Rpt != nil {
		if j.isStdin() || j.archive != "" {
			env.Rpt.StoreData(fmt.Sprintf("source-%d/%s", n, filepath.ToSlash(j.rel)), data)
		} else if err := env.Rpt.StoreCopy(fmt.Sprintf("source-%d", n), j.path); err != nil {
			log.Warn("Unable to store source in report", zap.String("file", j.path), zap.Error(err))
		}
	}

	sheet, err := env.NewParser().Parse(data, j.path)
	if err != nil {
		return err
	}
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet problem", zap.String("detail", w))
	}
	if env.Rpt != nil {
		// how declarations were understood before folding
		env.Rpt.StoreData(fmt.Sprintf("tree-%d.txt", n), []byte(sheet.Dump()))
	}
	sheet.Minify()

	var buf bytes.Buffer
	if _, err := sheet.Print(&buf, env.PrintOptions()); err != nil {
		return fmt.Errorf("unable to print stylesheet: %w", err)
	}

	if err := write(out, buf.Bytes(), env.Overwrite, log); err != nil {
		return err
	}
	env.Stats.Add(int64(len(data)), int64(buf.Len()), len(sheet.Warnings))

	if env.Rpt != nil && out != "" {
		env.Rpt.Store(fmt.Sprintf("result-%d%s", n, filepath.Ext(out)), out)
	}
	return nil
}

func outName(out string) string {
	if out == "" {
		return "STDOUT"
	}
	return out
}

func write(out string, data []byte, overwrite bool, log *zap.Logger) error {
	if out == "" {
		_, err := stdout.Write(data)
		return err
	}

	if _, err := os.Stat(out); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", out)
		}
		log.Warn("Overwriting existing file", zap.String("file", out))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
