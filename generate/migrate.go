package generate

import (
	"context"
	"fmt"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"gbcss/attrs"
	"gbcss/common"
	"gbcss/config"
	"gbcss/content"
	"gbcss/migrate"
	"gbcss/state"
	"gbcss/store"
)

// migrateBlocks upgrades stored attributes of every block which has
// migration pipeline. Returns number of changed blocks.
func migrateBlocks(blocks []content.Block, pipelines map[string]migrate.Pipeline, log *zap.Logger) int {
	var changed int
	content.Walk(blocks, func(b *content.Block) bool {
		p, ok := pipelines[content.TypeOf(b.Name)]
		if !ok {
			return true
		}
		patch := p.Run(b.Attrs, migrate.Options{})
		if len(patch) == 0 {
			return true
		}
		log.Debug("Migrating block", zap.String("block", b.Name), zap.Int("from", migrate.StoredVersion(b.Attrs)), zap.Strings("keys", patch.Keys()))
		b.Attrs = attrs.Apply(b.Attrs, patch)
		changed++
		return true
	})
	return changed
}

// Migrate upgrades block attributes saved by older versions. File sources
// are written to destination, stored posts are updated in place.
func Migrate(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("migrate")

	posts := cmd.Int64Slice("post")
	src, dst, err := commandArgs(cmd, posts, log)
	if err != nil {
		return err
	}
	prepareEnv(cmd, env, log)
	uniqueIDs := cmd.Bool("unique-ids")
	pipelines := migrate.Pipelines(env.Cfg.MigrationTables())

	log.Info("Processing starting", zap.String("source", src), zap.Int64s("posts", posts), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return walk(ctx, cmd, env, src, posts, func(st *store.Store) (sourceFunc, error) {
		return func(s *source) error {
			changed := migrateBlocks(s.blocks, pipelines, log)
			if uniqueIDs {
				changed += content.EnsureUniqueIDs(s.blocks)
			}
			text, err := content.Serialize(s.blocks)
			if err != nil {
				return fmt.Errorf("unable to serialize content: %w", err)
			}

			if s.path == "" {
				if changed == 0 {
					log.Info("Post is up to date", zap.Int64("id", s.id))
					return nil
				}
				return updatePost(ctx, st, s, text, changed, log)
			}

			out := buildOutputPath(s, dst, ".html", newValues(config.OutputNameTemplateFieldName, s, common.ScopeFrontend, changed), env)
			if err := writeOutput(out, []byte(text), env); err != nil {
				return err
			}
			log.Info("Content migrated", zap.String("source", s.name), zap.Int("changed", changed), zap.String("file", out))
			return nil
		}, nil
	}, log)
}

func updatePost(ctx context.Context, st *store.Store, s *source, text string, changed int, log *zap.Logger) error {
	p, found, err := st.Post(ctx, s.id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("post %d disappeared", s.id)
	}
	p.Content = text
	if _, err := st.PutPost(ctx, p); err != nil {
		return fmt.Errorf("unable to update post %d: %w", s.id, err)
	}
	log.Info("Post migrated", zap.Int64("id", s.id), zap.Int("changed", changed))
	return nil
}
