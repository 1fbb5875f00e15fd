package minify

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"cssfold/config"
	"cssfold/state"
)

const sample = `body {
  font-family: Georgia, serif;
  font-size: 16px;
  font-style: normal;
  font-weight: normal;
  font-stretch: normal;
  line-height: 1.5;
  font-variant-caps: normal;
  margin-top: 0;
  margin-right: auto;
  margin-bottom: 0;
  margin-left: auto;
}
`

const sampleMinified = "body{font:16px/1.5 Georgia,serif;margin:0 auto}"

func newContext(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t)
	env.Cfg = &config.Config{
		Version: 1,
		Output: config.OutputConfig{
			Minify:     true,
			Indent:     2,
			Extensions: []string{".css"},
			Suffix:     ".min",
		},
	}
	return ctx, env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unable to read %s: %v", path, err)
	}
	return string(data)
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func TestProcess_SingleFile(t *testing.T) {
	ctx, env := newContext(t)
	src := filepath.Join(t.TempDir(), "site.css")
	writeFile(t, src, sample)

	if err := process(ctx, []string{src}, "", env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	if got := readFile(t, strings.TrimSuffix(src, ".css")+".min.css"); got != sampleMinified {
		t.Errorf("expected %q, got %q", sampleMinified, got)
	}
	if env.Stats.Files != 1 || env.Stats.BytesIn != int64(len(sample)) || env.Stats.BytesOut != int64(len(sampleMinified)) {
		t.Errorf("unexpected stats %+v", env.Stats)
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, env := newContext(t)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "styles")
	writeFile(t, filepath.Join(src, "a10.css"), "p { margin-top: 10px }")
	writeFile(t, filepath.Join(src, "a2.css"), "p { margin-top: 2px }")
	writeFile(t, filepath.Join(src, "nested", "b.css"), "p { padding: 1px 1px }")
	writeFile(t, filepath.Join(src, "a2.min.css"), "previous output")
	writeFile(t, filepath.Join(src, "readme.txt"), "not a stylesheet")

	out := captureStdout(t)
	if err := process(ctx, []string{src}, stdio, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	want := "p{margin-top:2px}p{margin-top:10px}p{padding:1px}"
	if out.String() != want {
		t.Errorf("expected natural order output %q, got %q", want, out.String())
	}
	if env.Stats.Files != 3 {
		t.Errorf("expected 3 files, got %d", env.Stats.Files)
	}

	dst := filepath.Join(tmp, "out")
	env.Stats = state.Stats{}
	if err := process(ctx, []string{src}, dst, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if got := readFile(t, filepath.Join(dst, "nested", "b.css")); got != "p{padding:1px}" {
		t.Errorf("unexpected nested output %q", got)
	}
	if _, err := os.Stat(filepath.Join(dst, "readme.txt")); !os.IsNotExist(err) {
		t.Error("non stylesheet file must be skipped")
	}
}

func TestProcess_Stdin(t *testing.T) {
	ctx, env := newContext(t)
	env.Pretty = true

	old := stdin
	stdin = strings.NewReader("h1{margin:0;margin-left:1px}")
	t.Cleanup(func() { stdin = old })
	out := captureStdout(t)

	if err := process(ctx, []string{stdio}, "", env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	want := "h1 {\n  margin: 0 0 0 1px;\n}\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestProcess_Overwrite(t *testing.T) {
	ctx, env := newContext(t)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "site.css")
	dst := filepath.Join(tmp, "result.css")
	writeFile(t, src, sample)
	writeFile(t, dst, "old")

	if err := process(ctx, []string{src}, dst, env.Log); err == nil {
		t.Fatal("expected error for existing output")
	}
	if env.Stats.Failed != 1 {
		t.Errorf("expected failure to be counted, got %+v", env.Stats)
	}
	if got := readFile(t, dst); got != "old" {
		t.Errorf("existing output must be kept, got %q", got)
	}

	env.Overwrite = true
	env.Stats = state.Stats{}
	if err := process(ctx, []string{src}, dst, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if got := readFile(t, dst); got != sampleMinified {
		t.Errorf("expected %q, got %q", sampleMinified, got)
	}
}

func TestProcess_Strict(t *testing.T) {
	ctx, env := newContext(t)
	tmp := t.TempDir()
	bad := filepath.Join(tmp, "bad.css")
	good := filepath.Join(tmp, "good.css")
	writeFile(t, bad, "p { font-weight: heavy }")
	writeFile(t, good, "p { font-weight: bold }")

	env.Strict = true
	err := process(ctx, []string{bad, good}, "", env.Log)
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("expected summary error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "bad.min.css")); !os.IsNotExist(err) {
		t.Error("no output expected for failed stylesheet")
	}
	if got := readFile(t, filepath.Join(tmp, "good.min.css")); got != "p{font-weight:700}" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestProcess_Lenient(t *testing.T) {
	ctx, env := newContext(t)
	src := filepath.Join(t.TempDir(), "bad.css")
	writeFile(t, src, "p { font-weight: heavy; margin: 0 }")

	out := captureStdout(t)
	if err := process(ctx, []string{src}, stdio, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if out.String() != "p{font-weight:heavy;margin:0}" {
		t.Errorf("unexpected output %q", out.String())
	}
	if env.Stats.Warnings != 1 {
		t.Errorf("expected 1 warning, got %d", env.Stats.Warnings)
	}
}

func TestProcess_MissingSource(t *testing.T) {
	ctx, env := newContext(t)
	if err := process(ctx, []string{filepath.Join(t.TempDir(), "absent.css")}, "", env.Log); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestProcess_Cancelled(t *testing.T) {
	ctx, env := newContext(t)
	src := filepath.Join(t.TempDir(), "site.css")
	writeFile(t, src, sample)

	ctx, cancel := context.WithCancel(ctx)
	cancel()
	if err := process(ctx, []string{src}, "", env.Log); err == nil {
		t.Error("expected cancellation error")
	}
}

func TestProcess_Report(t *testing.T) {
	ctx, env := newContext(t)
	tmp := t.TempDir()
	src := filepath.Join(tmp, "site.css")
	writeFile(t, src, sample)

	rc := config.ReporterConfig{Destination: filepath.Join(tmp, "report.zip")}
	rpt, err := rc.Prepare()
	if err != nil {
		t.Fatal(err)
	}
	env.Rpt = rpt

	if err := process(ctx, []string{src}, "", env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(rc.Destination)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"MANIFEST", "source-0/site.css", "tree-0.txt", "result-0.css"} {
		if !names[want] {
			t.Errorf("report lacks %s: %v", want, names)
		}
	}
}

func TestProcess_Archive(t *testing.T) {
	ctx, env := newContext(t)
	tmp := t.TempDir()
	zipPath := filepath.Join(tmp, "themes.zip")

	f, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(f)
	for _, m := range [][2]string{
		{"dark/site10.css", "p { margin-left: 10px }"},
		{"dark/site9.css", "p { margin-left: 9px }"},
		{"dark/site9.min.css", "old"},
		{"logo.svg", "<svg/>"},
	} {
		fw, err := w.Create(m[0])
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(m[1])); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if err := process(ctx, []string{zipPath}, "", env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if env.Stats.Files != 2 {
		t.Errorf("expected 2 stylesheets, got %d", env.Stats.Files)
	}
	if got := readFile(t, filepath.Join(tmp, "themes", "dark", "site9.min.css")); got != "p{margin-left:9px}" {
		t.Errorf("unexpected output %q", got)
	}

	out := captureStdout(t)
	if err := process(ctx, []string{zipPath}, stdio, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if want := "p{margin-left:9px}p{margin-left:10px}"; out.String() != want {
		t.Errorf("expected natural order %q, got %q", want, out.String())
	}
}
