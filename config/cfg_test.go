package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
	"go.uber.org/zap"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if !cfg.Output.Minify || cfg.Output.Strict {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Output.Indent != 2 {
		t.Errorf("Indent = %d, want 2", cfg.Output.Indent)
	}
	if len(cfg.Output.Extensions) != 1 || cfg.Output.Extensions[0] != ".css" {
		t.Errorf("Extensions = %v, want [.css]", cfg.Output.Extensions)
	}
	if cfg.Output.Suffix != ".min" || cfg.Output.Transliterate {
		t.Errorf("unexpected naming defaults: %+v", cfg.Output)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !strings.HasSuffix(cfg.Logging.FileLogger.Destination, "cssfold.log") {
		t.Errorf("template was not expanded: %s", cfg.Logging.FileLogger.Destination)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
output:
  minify: false
  strict: true
  indent: 4
  extensions: [".css", ".scss"]
  transliterate: true
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "logs", "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Minify || !cfg.Output.Strict {
		t.Errorf("output flags not loaded: %+v", cfg.Output)
	}
	if cfg.Output.Indent != 4 {
		t.Errorf("Indent = %d, want 4", cfg.Output.Indent)
	}
	if len(cfg.Output.Extensions) != 2 {
		t.Errorf("Extensions = %v", cfg.Output.Extensions)
	}
	// not in the file, taken from defaults
	if cfg.Output.Suffix != ".min" {
		t.Errorf("Suffix = %q, want default .min", cfg.Output.Suffix)
	}
	if !cfg.Output.Transliterate {
		t.Error("Transliterate not loaded")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Mode = %s, want append", cfg.Logging.FileLogger.Mode)
	}
	// sanitizer creates directory for the log file
	if _, err := os.Stat(filepath.Join(tmpDir, "logs")); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\noutput:\n  minify: true\n  invalid indent\n"},
		{"unknown field", "version: 1\noutput:\n  compress: true\n"},
		{"wrong version", "version: 2\n"},
		{"indent out of range", "version: 1\noutput:\n  indent: 20\n"},
		{"bad extension", "version: 1\noutput:\n  extensions: [\"css\"]\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}
	if _, err := LoadConfiguration("", option); err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if strings.Contains(string(data), "{{") {
		t.Error("Prepare() left template actions unexpanded")
	}

	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Output.Indent = 3

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Output.Indent != 3 || cfg2.Version != cfg.Version {
		t.Errorf("mismatch after dump/load: %+v", cfg2.Output)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestOutputConfig(t *testing.T) {
	conf := OutputConfig{Minify: true, Indent: 4, Extensions: []string{".css", ".CSS3"}}

	if opts := conf.PrintOptions(false); !opts.Minify || opts.IndentWidth != 4 {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts := conf.PrintOptions(true); opts.Minify {
		t.Error("pretty must disable minification")
	}

	tests := []struct {
		name string
		want bool
	}{
		{"site.css", true},
		{"SITE.CSS", true},
		{"theme.css3", true},
		{"site.css.map", false},
		{"readme", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := conf.Accepts(tt.name); got != tt.want {
				t.Errorf("Accepts(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLoggingConfig_Prepare(t *testing.T) {
	tmpDir := t.TempDir()
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger: LoggerConfig{
			Level:       "normal",
			Destination: filepath.Join(tmpDir, "test.log"),
			Mode:        "overwrite",
		},
	}

	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hidden message")
	log.Info("visible message", zap.String("key", "value"))
	if err := log.Sync(); err != nil {
		t.Logf("sync: %v", err)
	}

	data, err := os.ReadFile(conf.FileLogger.Destination)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "visible message") {
		t.Errorf("info message missing from log:\n%s", data)
	}
	if strings.Contains(string(data), "hidden message") {
		t.Errorf("debug message must be filtered at normal level:\n%s", data)
	}
}

func TestLoggingConfig_PrepareNone(t *testing.T) {
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if log.Core().Enabled(zap.ErrorLevel) {
		t.Error("expected all output disabled")
	}
}
