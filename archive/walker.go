// Package archive walks content files packed into zip archives.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
)

// Entry is a file found in archive.
type Entry struct {
	// Name is slash separated path inside archive. Names not flagged as
	// UTF-8 are decoded when names encoding was given to Walk.
	Name string
	File *zip.File
}

// WalkFunc is called for every accepted entry, returned error stops the
// walk.
type WalkFunc func(archive string, e Entry) error

// IsArchive reports whether path looks like an archive Walk could open.
func IsArchive(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}

// Walk visits files of the archive accepted by match in archive order.
// Archive having entries with absolute paths or ".." components is rejected
// as a whole.
func Walk(ctx context.Context, archive string, names encoding.Encoding, match func(name string) bool, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
	}

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			continue
		}
		e := Entry{Name: decodeName(f, names), File: f}
		if match != nil && !match(e.Name) {
			continue
		}
		if err := walkFn(archive, e); err != nil {
			return err
		}
	}
	return nil
}

// zip does not define file name encoding, old archives carry names in
// whatever code page the packer used.
func decodeName(f *zip.File, names encoding.Encoding) string {
	if names == nil || !f.NonUTF8 {
		return f.Name
	}
	if n, err := names.NewDecoder().String(f.Name); err == nil {
		return n
	}
	return f.Name
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) || filepath.VolumeName(name) != "" {
		return false
	}
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return false
		}
	}
	return true
}
