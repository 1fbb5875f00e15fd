package minify

import (
	"os"
	"path/filepath"
	"testing"

	"cssfold/config"
)

func TestSuffixed(t *testing.T) {
	tests := []struct {
		in, suffix, want string
	}{
		{"site.css", ".min", "site.min.css"},
		{"dir/site.css", ".min", "dir/site.min.css"},
		{"noext", ".min", "noext.min"},
		{"site.css", "", "site.css"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := suffixed(tt.in, tt.suffix); got != tt.want {
				t.Errorf("suffixed(%q, %q) = %q, want %q", tt.in, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestIsOutput(t *testing.T) {
	tests := []struct {
		name, suffix string
		want         bool
	}{
		{"site.min.css", ".min", true},
		{"site.css", ".min", false},
		{"admin.css", ".min", false},
		{"site.min.css", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isOutput(tt.name, tt.suffix); got != tt.want {
				t.Errorf("isOutput(%q, %q) = %v, want %v", tt.name, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestBuildOutputPath(t *testing.T) {
	tmp := t.TempDir()
	existing := filepath.Join(tmp, "out")
	if err := os.Mkdir(existing, 0755); err != nil {
		t.Fatal(err)
	}

	file := job{path: filepath.Join(tmp, "src", "site.css"), rel: "site.css"}
	nested := job{path: filepath.Join(tmp, "src", "a", "b.css"), rel: filepath.Join("a", "b.css")}
	in := job{path: stdio, rel: "stdin.css"}
	member := job{path: filepath.Join(tmp, "themes.zip") + "/dark/site.css", rel: filepath.Join("dark", "site.css"), archive: filepath.Join(tmp, "themes.zip")}

	tests := []struct {
		name   string
		j      job
		dst    string
		single bool
		want   string
	}{
		{"next to source", file, "", true, filepath.Join(tmp, "src", "site.min.css")},
		{"stdin to stdout", in, "", true, ""},
		{"explicit stdout", file, stdio, true, ""},
		{"single to file", file, filepath.Join(tmp, "result.css"), true, filepath.Join(tmp, "result.css")},
		{"single to directory", file, existing, true, filepath.Join(existing, "site.css")},
		{"stdin to file", in, filepath.Join(tmp, "result.css"), true, filepath.Join(tmp, "result.css")},
		{"archive member next to archive", member, "", false, filepath.Join(tmp, "themes", "dark", "site.min.css")},
		{"archive member to directory", member, existing, false, filepath.Join(existing, "dark", "site.css")},
		{"many keep structure", nested, filepath.Join(tmp, "new"), false, filepath.Join(tmp, "new", "a", "b.css")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildOutputPath(tt.j, tt.dst, &config.OutputConfig{Suffix: ".min"}, tt.single); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildOutputPath_Transliterate(t *testing.T) {
	tmp := t.TempDir()
	conf := &config.OutputConfig{Suffix: ".min", Transliterate: true}

	file := job{path: filepath.Join(tmp, "My Site.css"), rel: "My Site.css"}
	member := job{
		path:    filepath.Join(tmp, "Dark Themes.zip") + "/Main Theme/My Site.css",
		rel:     filepath.Join("Main Theme", "My Site.css"),
		archive: filepath.Join(tmp, "Dark Themes.zip"),
	}

	tests := []struct {
		name   string
		j      job
		dst    string
		single bool
		want   string
	}{
		{"next to source", file, "", true, filepath.Join(tmp, "my-site.min.css")},
		{"archive member", member, "", false, filepath.Join(tmp, "dark-themes", "main-theme", "my-site.min.css")},
		{"destination directory", member, filepath.Join(tmp, "out"), false, filepath.Join(tmp, "out", "main-theme", "my-site.css")},
		{"explicit file kept", file, filepath.Join(tmp, "Result File.css"), true, filepath.Join(tmp, "Result File.css")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildOutputPath(tt.j, tt.dst, conf, tt.single); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
