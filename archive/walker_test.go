package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func createZip(t *testing.T, files [][2]string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, f := range files {
		fw, err := w.Create(f[0])
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", f[0], err)
		}
		if _, err := fw.Write([]byte(f[1])); err != nil {
			t.Fatalf("Failed to write content for %s: %v", f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := createZip(t, [][2]string{
		{"css/site.css", "p{}"},
		{"css/print.css", "h1{}"},
		{"img/logo.png", "png"},
		{"readme.txt", "text"},
		{"css/", ""},
	})

	tests := []struct {
		prefix string
		want   int
	}{
		{"css/", 2},
		{"img/", 1},
		{"nonexistent/", 0},
		{"", 4},
	}
	for _, tt := range tests {
		t.Run("prefix "+tt.prefix, func(t *testing.T) {
			var visited []string
			err := Walk(zipPath, tt.prefix, func(archive string, file *zip.File) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Errorf("Walk() error = %v", err)
			}
			if len(visited) != tt.want {
				t.Errorf("visited %v, want %d files", visited, tt.want)
			}
		})
	}

	t.Run("walkFn returns error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		err := Walk(zipPath, "css/", func(string, *zip.File) error {
			return expectedErr
		})
		if !errors.Is(err, expectedErr) {
			t.Errorf("Walk() error = %v, want %v", err, expectedErr)
		}
	})
}

func TestWalk_InvalidArchive(t *testing.T) {
	if err := Walk("/nonexistent/file.zip", "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for nonexistent archive")
	}

	notZip := filepath.Join(t.TempDir(), "plain.css")
	if err := os.WriteFile(notZip, []byte("p{margin:0}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(notZip, "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for non zip file")
	}
}

func TestWalk_UnsafePath(t *testing.T) {
	zipPath := createZip(t, [][2]string{{"../evil.css", "p{}"}})
	err := Walk(zipPath, "", func(string, *zip.File) error { return nil })
	if err == nil {
		t.Error("expected unsafe path error")
	}
}

func TestReadMembers(t *testing.T) {
	zipPath := createZip(t, [][2]string{
		{"b.css", "b"},
		{"nested/a.css", "a"},
		{"notes.txt", "skip"},
	})

	members, err := ReadMembers(zipPath, "", func(name string) bool {
		return strings.HasSuffix(name, ".css")
	})
	if err != nil {
		t.Fatalf("ReadMembers() error = %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Name != "b.css" || string(members[0].Data) != "b" {
		t.Errorf("unexpected first member %+v", members[0])
	}
	if members[1].Name != "nested/a.css" || string(members[1].Data) != "a" {
		t.Errorf("unexpected second member %+v", members[1])
	}

	all, err := ReadMembers(zipPath, "nested/", nil)
	if err != nil || len(all) != 1 {
		t.Errorf("expected single member under prefix, got %v, %v", all, err)
	}
}

func TestIsArchive(t *testing.T) {
	zipPath := createZip(t, [][2]string{{"a.css", "p{}"}})
	if ok, err := IsArchive(zipPath); err != nil || !ok {
		t.Errorf("IsArchive(zip) = %v, %v", ok, err)
	}

	plain := filepath.Join(t.TempDir(), "a.css")
	if err := os.WriteFile(plain, []byte("p { margin: 0 }"), 0644); err != nil {
		t.Fatal(err)
	}
	if ok, err := IsArchive(plain); err != nil || ok {
		t.Errorf("IsArchive(css) = %v, %v", ok, err)
	}

	if _, err := IsArchive(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing file")
	}
}
