// Package generate implements program commands working with block content.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gbcss/common"
	"gbcss/config"
	"gbcss/content"
	"gbcss/state"
	"gbcss/store"
)

// commandArgs returns source and destination, destination defaults to
// current working directory. Source is optional when stored posts are
// requested.
func commandArgs(cmd *cli.Command, posts []int64, log *zap.Logger) (src, dst string, err error) {
	src = cmd.Args().Get(0)
	dst = cmd.Args().Get(1)
	if len(posts) > 0 && cmd.Args().Len() == 1 {
		// with stored posts single argument is destination
		src, dst = "", src
	}
	if len(src) == 0 && len(posts) == 0 {
		return "", "", errors.New("no input source has been specified")
	}
	if len(src) > 0 {
		if src, err = filepath.Abs(src); err != nil {
			return "", "", err
		}
	}
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", "", err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	return src, dst, nil
}

// prepareEnv reads options shared by content processing commands.
func prepareEnv(cmd *cli.Command, env *state.LocalEnv, log *zap.Logger) {
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	cp := cmd.String("input-cp")
	if len(cp) == 0 {
		cp = env.Cfg.Content.Encoding
	}
	if len(cp) > 0 {
		enc, err := content.LookupEncoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			return
		}
		env.CodePage = enc
		log.Debug("Forcefully converting input content", zap.String("charset", cp))
	}
}

// walk opens content database and runs fn for every requested source.
func walk(ctx context.Context, cmd *cli.Command, env *state.LocalEnv, src string, posts []int64, fn func(st *store.Store) (sourceFunc, error), log *zap.Logger) (err error) {
	st, err := openStore(env, len(posts) > 0, log)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, st.Close())
	}()

	ss := &sources{
		env:          env,
		st:           st,
		featuredSize: env.Cfg.Content.FeaturedImageSize,
		featured:     cmd.String("featured-image"),
		log:          log,
	}
	process, err := fn(st)
	if err != nil {
		return err
	}
	if len(src) > 0 {
		if err := ss.process(ctx, src, process); err != nil {
			return err
		}
	}
	return ss.processPosts(ctx, posts, process)
}

// Render generates stylesheets for content files or stored posts.
func Render(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	posts := cmd.Int64Slice("post")
	src, dst, err := commandArgs(cmd, posts, log)
	if err != nil {
		return err
	}
	scope, err := common.ParseScope(cmd.String("scope"))
	if err != nil {
		return err
	}
	prepareEnv(cmd, env, log)

	log.Info("Processing starting", zap.String("source", src), zap.Int64s("posts", posts), zap.String("destination", dst), zap.Stringer("scope", scope))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return walk(ctx, cmd, env, src, posts, func(st *store.Store) (sourceFunc, error) {
		r, err := newRenderer(env, st, log)
		if err != nil {
			return nil, err
		}
		return func(s *source) error {
			return renderSource(ctx, r, s, dst, scope, env)
		}, nil
	}, log)
}

func renderSource(ctx context.Context, r *renderer, s *source, dst string, scope common.Scope, env *state.LocalEnv) error {
	ss, data, err := r.render(ctx, s, scope)
	if err != nil {
		return err
	}
	out := buildOutputPath(s, dst, ".css", newValues(config.OutputNameTemplateFieldName, s, scope, data.Len()), env)
	if err := writeOutput(out, []byte(ss.String()), env); err != nil {
		return err
	}
	r.report(env.Rpt, s, data)
	env.Log.Info("Stylesheet generated", zap.String("source", s.name), zap.Int("blocks", data.Len()), zap.String("file", out))
	return nil
}

// Fonts prints web font request for every source.
func Fonts(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("fonts")

	posts := cmd.Int64Slice("post")
	src := cmd.Args().Get(0)
	if len(src) == 0 && len(posts) == 0 {
		return errors.New("no input source has been specified")
	}
	prepareEnv(cmd, env, log)

	return walk(ctx, cmd, env, src, posts, func(st *store.Store) (sourceFunc, error) {
		r, err := newRenderer(env, st, log)
		if err != nil {
			return nil, err
		}
		return func(s *source) error {
			return printFonts(ctx, os.Stdout, r, s)
		}, nil
	}, log)
}

func printFonts(ctx context.Context, w io.Writer, r *renderer, s *source) error {
	data, err := r.collect(ctx, s)
	if err != nil {
		return err
	}
	uri := r.fontsURI(data)
	if uri == "" {
		r.log.Debug("No web fonts requested", zap.String("source", s.name))
		return nil
	}
	_, err = fmt.Fprintf(w, "%s\t%s\n", s.name, uri)
	return err
}
