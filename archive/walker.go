// Package archive reads stylesheets stored in zip archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
)

// headerSize is the number of bytes file type detection looks at.
const headerSize = 262

// Member is a file read from an archive.
type Member struct {
	Name string // slash separated path inside archive
	Data []byte
}

// IsArchive reports whether the file content is a zip archive. Epub, being a
// zip container, counts as archive too.
func IsArchive(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	head = head[:n]
	return filetype.Is(head, "zip") || filetype.Is(head, "epub"), nil
}

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks all files in the archive which names start with prefix, calling
// walkFn for each of them. Entries with path traversal components ("..") or
// absolute paths make Walk fail.
func Walk(archive, prefix string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadMembers returns content of the files under prefix for which accept
// returns true, in archive order. accept receives the base name.
func ReadMembers(archive, prefix string, accept func(name string) bool) ([]Member, error) {
	var members []Member
	err := Walk(archive, prefix, func(_ string, f *zip.File) error {
		if accept != nil && !accept(path.Base(f.Name)) {
			return nil
		}
		r, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open %s: %w", f.Name, err)
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", f.Name, err)
		}
		members = append(members, Member{Name: f.Name, Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
