package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/multierr"

	"gbcss/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{entries: make(map[string]entry)}

	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	r.file = f
	return r, nil
}

type entry struct {
	original string
	actual   string
	stamp    time.Time
	data     []byte
}

// Report accumulates everything necessary to prepare full debug report:
// configuration, inputs, generated stylesheets and logs.
// NOTE: presently not to be used concurrently!
type Report struct {
	entries map[string]entry
	// temporary copies made by StoreCopy, removed on Close
	copies []string
	file   *os.File
}

// Close writes report archive and removes temporary copies.
func (r *Report) Close() (err error) {
	// nil report means no report was requested
	if r == nil || r.file == nil {
		return nil
	}
	defer func() {
		for _, dir := range r.copies {
			err = multierr.Append(err, os.RemoveAll(dir))
		}
		err = multierr.Append(err, r.file.Close())
	}()
	return r.finalize()
}

// Name returns name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

func (r *Report) checkName(name, path string) {
	if old, exists := r.entries[name]; exists && (old.data != nil || old.original != path) {
		panic(fmt.Sprintf("Attempt to overwrite report entry [%s]: was %s, now %s", name, old.original, path))
	}
}

// Store saves path to file or directory to be put in the final archive later.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	r.checkName(name, path)

	e := entry{original: path, actual: path}
	if p, err := filepath.Abs(path); err == nil {
		e.actual = p
	}
	r.entries[name] = e
}

// StoreData saves data to be put in the final archive later as a file under
// requested name. Generated stylesheets end up in report this way.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("Attempt to overwrite data in the report for [%s]", name))
	}
	r.entries[name] = entry{data: bytes.Clone(data), stamp: time.Now()}
}

// StoreCopy makes a copy (at the time of a call) of the file or directory
// into temporary location to be put in the final archive later. Names are
// versioned with timestamps, so the same path could be stored many times.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}

	e := entry{stamp: time.Now(), original: path}
	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, e.stamp.UnixNano())
	}

	dir, err := os.MkdirTemp("", misc.GetAppName()+"-r-")
	if err != nil {
		return err
	}
	r.copies = append(r.copies, dir)

	switch {
	case info.Mode().IsRegular():
		if e.actual, err = copyFile(dir, abs, info.ModTime()); err != nil {
			return err
		}
	case info.IsDir():
		if err := copyDir(dir, abs); err != nil {
			return err
		}
		e.actual = dir
	default:
		return fmt.Errorf("unable to copy '%s' into report: not a file or directory", path)
	}
	r.entries[name] = e
	return nil
}

func copyFile(dir, src string, modTime time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	dst := filepath.Join(dir, filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		return "", multierr.Append(err, out.Close())
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return dst, os.Chtimes(dst, modTime, modTime)
}

// walkFiles calls fn for every regular file under root with its slash
// separated relative path, links and special files are ignored.
func walkFiles(root string, fn func(path, rel string, info fs.FileInfo) error) error {
	return filepath.Walk(root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return fn(path, filepath.ToSlash(rel), info)
	})
}

func copyDir(dir, src string) error {
	return walkFiles(src, func(path, rel string, info fs.FileInfo) error {
		_, err := copyFile(filepath.Dir(filepath.Join(dir, filepath.FromSlash(rel))), path, info.ModTime())
		return err
	})
}

// finalize creates the final archive with all previously stored items.
func (r *Report) finalize() (err error) {
	arc := zip.NewWriter(r.file)
	defer func() {
		err = multierr.Append(err, arc.Close())
	}()

	names, manifest := prepareManifest(r.entries)
	if err := saveFile(arc, "MANIFEST", time.Now(), manifest); err != nil {
		return err
	}

	// in the same order as in manifest
	for _, name := range names {
		e := r.entries[name]
		if e.data != nil {
			if err := saveFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}

		info, err := os.Stat(e.actual)
		if err != nil {
			// absent files are ignored
			continue
		}
		switch {
		case info.Mode().IsRegular():
			if err := savePath(arc, name, e.actual, info.ModTime()); err != nil {
				return err
			}
		case info.IsDir():
			err := walkFiles(e.actual, func(path, rel string, info fs.FileInfo) error {
				return savePath(arc, name+"/"+rel, path, info.ModTime())
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func prepareManifest(entries map[string]entry) ([]string, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	if len(entries) == 0 {
		return nil, buf
	}

	now := time.Now()
	names := make([]string, 0, len(entries))
	for k := range entries {
		names = append(names, k)
	}
	slices.Sort(names)

	for _, k := range names {
		e := entries[k]
		if e.stamp.IsZero() {
			e.stamp = now
		}
		fmt.Fprintf(buf, "%s\t%s\t%s : %s\n", e.stamp.UTC().Format(time.UnixDate), k, e.original, e.actual)
	}
	return names, buf
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

func savePath(dst *zip.Writer, name, path string, t time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(dst, name, t, f)
}
