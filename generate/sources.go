package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"gbcss/archive"
	"gbcss/content"
	"gbcss/state"
	"gbcss/store"
)

// extensions of files considered serialized content when walking directories
var contentExts = []string{".html", ".htm", ".txt"}

// source is a single piece of content to process, either a file or a
// stored post.
type source struct {
	name  string
	dir   string // relative to processed directory
	path  string // empty for stored posts
	title string
	id    int64
	// featured image URL
	featured string
	blocks   []content.Block
}

type sourceFunc func(s *source) error

// sources walks everything requested on the command line. Errors of
// individual sources are logged and processing continues, error is
// returned only when requested input is unusable.
type sources struct {
	env          *state.LocalEnv
	st           *store.Store
	featuredSize string
	featured     string // featured image URL for file sources
	log          *zap.Logger
}

func isContentFile(path string) bool {
	return slices.Contains(contentExts, strings.ToLower(filepath.Ext(path)))
}

// process handles file or directory path.
func (ss *sources) process(ctx context.Context, src string, fn sourceFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}
	if fi.Mode().IsRegular() && archive.IsArchive(src) {
		return ss.processArchive(ctx, src, "", fn)
	}
	if fi.Mode().IsRegular() {
		s, err := ss.loadFile(src, "")
		if err != nil {
			return fmt.Errorf("unable to load content: %w", err)
		}
		return fn(s)
	}
	if !fi.IsDir() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	return ss.processDir(ctx, src, fn)
}

func (ss *sources) processDir(ctx context.Context, dir string, fn sourceFunc) error {
	count := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			ss.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, filepath.Dir(path))
		if err != nil {
			rel = ""
		}
		if archive.IsArchive(path) {
			if err := ss.processArchive(ctx, path, rel, fn); err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				ss.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}
		if !isContentFile(path) {
			ss.log.Debug("Skipping file, not recognized as content", zap.String("file", path))
			return nil
		}

		count++

		s, err := ss.loadFile(path, rel)
		if err != nil {
			ss.log.Error("Unable to load content", zap.String("file", path), zap.Error(err))
			return nil
		}
		if err := fn(s); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			ss.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	if err == nil && count == 0 {
		ss.log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return err
}

func (ss *sources) loadFile(path, rel string) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ss.load(f, path, rel)
}

func (ss *sources) load(r io.Reader, path, rel string) (*source, error) {
	blocks, err := content.Load(r, ss.env.CodePage, ss.env.Hooks.DoContent)
	if err != nil {
		return nil, err
	}
	if rel == "." {
		rel = ""
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &source{
		name:     name,
		dir:      rel,
		path:     path,
		title:    name,
		featured: ss.featured,
		blocks:   blocks,
	}, nil
}

// processArchive handles content files packed into zip archive, their paths
// inside archive are kept relative to rel. Input code page is used for
// archive entry names as well.
func (ss *sources) processArchive(ctx context.Context, path, rel string, fn sourceFunc) error {
	count := 0
	err := archive.Walk(ctx, path, ss.env.CodePage, isContentFile, func(arc string, e archive.Entry) error {
		count++

		r, err := e.File.Open()
		if err != nil {
			ss.log.Error("Unable to open file in archive", zap.String("archive", arc), zap.String("file", e.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		name := filepath.FromSlash(e.Name)
		s, err := ss.load(r, filepath.Join(arc, name), filepath.Join(rel, filepath.Dir(name)))
		if err != nil {
			ss.log.Error("Unable to load content from archive", zap.String("archive", arc), zap.String("file", e.Name), zap.Error(err))
			return nil
		}
		if err := fn(s); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			ss.log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", e.Name), zap.Error(err))
		}
		return nil
	})
	if err == nil && count == 0 {
		ss.log.Debug("Nothing to process", zap.String("archive", path))
	}
	return err
}

// processPosts handles stored posts.
func (ss *sources) processPosts(ctx context.Context, ids []int64, fn sourceFunc) error {
	if len(ids) > 0 && ss.st == nil {
		return errors.New("content database is not available")
	}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := ss.loadPost(ctx, id)
		if err != nil {
			ss.log.Error("Unable to load post", zap.Int64("id", id), zap.Error(err))
			continue
		}
		if err := fn(s); err != nil {
			ss.log.Error("Unable to process post", zap.Int64("id", id), zap.Error(err))
		}
	}
	return nil
}

func (ss *sources) loadPost(ctx context.Context, id int64) (*source, error) {
	p, found, err := ss.st.Post(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("post %d does not exist", id)
	}
	blocks, err := content.ParseString(ss.env.Hooks.DoContent(p.Content))
	if err != nil {
		return nil, err
	}
	featured, err := ss.st.FeaturedImage(ctx, id, ss.featuredSize)
	if err != nil {
		return nil, err
	}
	return &source{
		name:     strconv.FormatInt(id, 10),
		title:    p.Title,
		id:       id,
		featured: featured,
		blocks:   blocks,
	}, nil
}

// openStore opens content database. Unless create is set missing database
// is not an error, nil store is returned instead.
func openStore(env *state.LocalEnv, create bool, log *zap.Logger) (*store.Store, error) {
	path := env.Cfg.Content.Database
	if path == "" {
		if create {
			return nil, errors.New("content database is not configured")
		}
		return nil, nil
	}
	if !create {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			log.Debug("Content database does not exist, reusable blocks and media will not be resolved", zap.String("database", path))
			return nil, nil
		}
	}
	st, err := store.Open(path, log)
	if err != nil {
		return nil, fmt.Errorf("unable to open content database: %w", err)
	}
	return st, nil
}
