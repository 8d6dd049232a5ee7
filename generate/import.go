package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gbcss/content"
	"gbcss/state"
	"gbcss/store"
)

// attachment is parsed "ID,SIZE,URL" line.
type attachment struct {
	id   int64
	size string
	url  string
}

func parseAttachment(spec string) (attachment, error) {
	parts := strings.SplitN(spec, ",", 3)
	if len(parts) != 3 {
		return attachment{}, fmt.Errorf("malformed attachment %q, expected ID,SIZE,URL", spec)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil || id <= 0 {
		return attachment{}, fmt.Errorf("malformed attachment id in %q", spec)
	}
	a := attachment{id: id, size: strings.TrimSpace(parts[1]), url: strings.TrimSpace(parts[2])}
	if a.size == "" {
		a.size = store.DefaultSize
	}
	if a.url == "" {
		return attachment{}, fmt.Errorf("empty attachment url in %q", spec)
	}
	return a, nil
}

// importFile stores content file as a post. Content is decoded and
// validated by parsing before it is stored.
func importFile(ctx context.Context, st *store.Store, env *state.LocalEnv, path string, p store.Post) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r, err := content.NewReader(f, env.CodePage)
	if err != nil {
		return 0, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("unable to read content: %w", err)
	}
	text := env.Hooks.DoContent(string(data))
	if _, err := content.ParseString(text); err != nil {
		return 0, fmt.Errorf("unable to parse content: %w", err)
	}

	p.Content = text
	if p.Title == "" {
		p.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return st.PutPost(ctx, p)
}

// Import stores content files and attachments into content database.
func Import(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("import")

	var attachments []attachment
	for _, spec := range cmd.StringSlice("attachment") {
		a, err := parseAttachment(spec)
		if err != nil {
			return err
		}
		attachments = append(attachments, a)
	}
	files := cmd.Args().Slice()
	if len(files) == 0 && len(attachments) == 0 {
		return errors.New("nothing to import")
	}
	title := cmd.String("title")
	if len(title) > 0 && len(files) > 1 {
		return errors.New("title could be specified only when importing single file")
	}
	prepareEnv(cmd, env, log)

	st, err := openStore(env, true, log)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, st.Close())
	}()

	for _, a := range attachments {
		if err := st.PutAttachment(ctx, a.id, a.size, a.url); err != nil {
			return err
		}
		log.Info("Attachment imported", zap.Int64("id", a.id), zap.String("size", a.size))
	}

	postType := "post"
	if cmd.Bool("reusable") {
		postType = store.PostTypeReusable
	}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		id, err := importFile(ctx, st, env, path, store.Post{
			Type:          postType,
			Title:         title,
			FeaturedMedia: cmd.Int64("featured-media"),
		})
		if err != nil {
			return fmt.Errorf("unable to import '%s': %w", path, err)
		}
		log.Info("Content imported", zap.String("file", path), zap.Int64("id", id), zap.String("type", postType))
	}
	return nil
}
