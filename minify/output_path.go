package minify

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"cssfold/config"
)

const stdio = "-"

// job is a single stylesheet to process. For files found while walking a
// directory or an archive rel is the path relative to its root, otherwise it
// is the base file name. Archive members are read in advance.
type job struct {
	path    string
	rel     string
	archive string
	data    []byte
}

func (j job) isStdin() bool {
	return j.path == stdio
}

// suffixed inserts suffix before the file extension: site.css -> site.min.css.
func suffixed(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + suffix + ext
}

// isOutput reports whether the file looks like something we produced, so
// repeated runs over the same directory do not minify outputs again.
func isOutput(name, suffix string) bool {
	if suffix == "" {
		return false
	}
	return strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), suffix)
}

// cleanSegment transliterates a single path element keeping its extension.
func cleanSegment(segment string, transliterate bool) string {
	if !transliterate {
		return segment
	}
	ext := filepath.Ext(segment)
	if base := slug.Make(strings.TrimSuffix(segment, ext)); base != "" {
		return base + ext
	}
	return segment
}

func cleanPath(rel string, transliterate bool) string {
	if !transliterate {
		return rel
	}
	segments := strings.Split(filepath.Clean(rel), string(filepath.Separator))
	for i := range segments {
		segments[i] = cleanSegment(segments[i], true)
	}
	return filepath.Join(segments...)
}

// buildOutputPath decides where the result for j goes. An empty result means
// standard output.
//
//   - no destination: next to the source with suffix added, stdin goes to stdout,
//     archive members go to directory named after archive
//   - "-": standard output
//   - single input and destination which is not an existing directory: that file
//   - otherwise: destination directory keeping relative source structure
//
// Names we make up are transliterated when configured, explicit destination
// is used as is.
func buildOutputPath(j job, dst string, conf *config.OutputConfig, single bool) string {
	tr := conf.Transliterate
	switch {
	case dst == stdio:
		return ""
	case dst == "":
		if j.isStdin() {
			return ""
		}
		if j.archive != "" {
			base := filepath.Base(j.archive)
			root := cleanSegment(strings.TrimSuffix(base, filepath.Ext(base)), tr)
			return filepath.Join(filepath.Dir(j.archive), root, suffixed(cleanPath(j.rel, tr), conf.Suffix))
		}
		return filepath.Join(filepath.Dir(j.path), suffixed(cleanSegment(filepath.Base(j.path), tr), conf.Suffix))
	}

	if single {
		if fi, err := os.Stat(dst); err != nil || !fi.IsDir() {
			return dst
		}
	}
	return filepath.Join(dst, cleanPath(j.rel, tr))
}
