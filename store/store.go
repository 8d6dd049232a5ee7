// Package store persists posts, reusable blocks and media attachments in
// SQLite database. It resolves reusable block references for content walker
// and image attachments for background generation.
package store

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"gbcss/content"
	"gbcss/features"
)

// PostTypeReusable marks posts holding reusable blocks.
const PostTypeReusable = "wp_block"

// DefaultSize is attachment size used when requested size is absent.
const DefaultSize = "full"

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	post_type      TEXT    NOT NULL DEFAULT 'post',
	title          TEXT    NOT NULL DEFAULT '',
	content        TEXT    NOT NULL DEFAULT '',
	featured_media INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS posts_type ON posts(post_type);
CREATE TABLE IF NOT EXISTS attachments (
	id   INTEGER NOT NULL,
	size TEXT    NOT NULL,
	url  TEXT    NOT NULL,
	PRIMARY KEY (id, size)
);
`

// Post is stored content.
type Post struct {
	ID    int64
	Type  string
	Title string
	// Content is serialized block markup.
	Content string
	// FeaturedMedia is attachment id of post thumbnail, 0 when none.
	FeaturedMedia int64
}

// Store is a single connection to content database, it is not safe for
// concurrent use.
type Store struct {
	conn *sqlite.Conn
	log  *zap.Logger
}

var (
	_ content.Resolver       = (*Store)(nil)
	_ features.MediaResolver = (*Store)(nil)
)

// Open opens (creating when necessary) database at path. Use ":memory:" for
// transient database.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	flags := []sqlite.OpenFlags{sqlite.OpenReadWrite, sqlite.OpenCreate, sqlite.OpenWAL}
	if path == ":memory:" {
		flags = []sqlite.OpenFlags{sqlite.OpenReadWrite, sqlite.OpenMemory}
	}
	conn, err := sqlite.OpenConn(path, flags...)
	if err != nil {
		return nil, fmt.Errorf("unable to open content database '%s': %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return nil, multierr.Combine(fmt.Errorf("unable to prepare content database '%s': %w", path, err), conn.Close())
	}
	return &Store{conn: conn, log: log.Named("store")}, nil
}

// Close releases database connection, nil store is ignored.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("unable to close content database: %w", err)
	}
	return nil
}

// interruptOn makes database calls abort when ctx is done, returned func
// restores previous state.
func (s *Store) interruptOn(ctx context.Context) func() {
	old := s.conn.SetInterrupt(ctx.Done())
	return func() { s.conn.SetInterrupt(old) }
}

// PutPost inserts new post (ID 0) or replaces existing one, returns post ID.
func (s *Store) PutPost(ctx context.Context, p Post) (int64, error) {
	defer s.interruptOn(ctx)()

	if p.Type == "" {
		p.Type = "post"
	}
	var id any
	if p.ID != 0 {
		id = p.ID
	}
	err := sqlitex.Execute(s.conn,
		`INSERT OR REPLACE INTO posts (id, post_type, title, content, featured_media) VALUES (?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{id, p.Type, p.Title, p.Content, p.FeaturedMedia}})
	if err != nil {
		return 0, fmt.Errorf("unable to store post '%s': %w", p.Title, err)
	}
	return s.conn.LastInsertRowID(), nil
}

func scanPost(stmt *sqlite.Stmt) Post {
	return Post{
		ID:            stmt.ColumnInt64(0),
		Type:          stmt.ColumnText(1),
		Title:         stmt.ColumnText(2),
		Content:       stmt.ColumnText(3),
		FeaturedMedia: stmt.ColumnInt64(4),
	}
}

// Post returns post by id.
func (s *Store) Post(ctx context.Context, id int64) (Post, bool, error) {
	defer s.interruptOn(ctx)()

	var (
		p     Post
		found bool
	)
	err := sqlitex.Execute(s.conn,
		`SELECT id, post_type, title, content, featured_media FROM posts WHERE id = ?`,
		&sqlitex.ExecOptions{
			Args: []any{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				p, found = scanPost(stmt), true
				return nil
			},
		})
	if err != nil {
		return Post{}, false, fmt.Errorf("unable to read post %d: %w", id, err)
	}
	return p, found, nil
}

// Posts lists posts of type ordered by id, all posts when postType is empty.
func (s *Store) Posts(ctx context.Context, postType string) ([]Post, error) {
	defer s.interruptOn(ctx)()

	var posts []Post
	err := sqlitex.Execute(s.conn,
		`SELECT id, post_type, title, content, featured_media FROM posts WHERE ?1 = '' OR post_type = ?1 ORDER BY id`,
		&sqlitex.ExecOptions{
			Args: []any{postType},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				posts = append(posts, scanPost(stmt))
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("unable to list posts: %w", err)
	}
	return posts, nil
}

// ReusableBlock returns content of reusable block post.
func (s *Store) ReusableBlock(ctx context.Context, id int64) (string, bool, error) {
	p, found, err := s.Post(ctx, id)
	if err != nil || !found {
		return "", false, err
	}
	if p.Type != PostTypeReusable {
		s.log.Debug("Referenced post is not reusable block", zap.Int64("id", id), zap.String("type", p.Type))
		return "", false, nil
	}
	return p.Content, true, nil
}

// PutAttachment stores URL of attachment size.
func (s *Store) PutAttachment(ctx context.Context, id int64, size, url string) error {
	defer s.interruptOn(ctx)()

	if size == "" {
		size = DefaultSize
	}
	err := sqlitex.Execute(s.conn,
		`INSERT OR REPLACE INTO attachments (id, size, url) VALUES (?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{id, size, url}})
	if err != nil {
		return fmt.Errorf("unable to store attachment %d (%s): %w", id, size, err)
	}
	return nil
}

// AttachmentURL returns URL of attachment in requested size falling back to
// full size. Database errors are logged and reported as missing attachment.
func (s *Store) AttachmentURL(id int64, size string) (string, bool) {
	if size == "" {
		size = DefaultSize
	}
	var (
		url   string
		found bool
	)
	err := sqlitex.Execute(s.conn,
		`SELECT url FROM attachments WHERE id = ? AND size IN (?, ?) ORDER BY size = ? DESC LIMIT 1`,
		&sqlitex.ExecOptions{
			Args: []any{id, size, DefaultSize, size},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				url, found = stmt.ColumnText(0), true
				return nil
			},
		})
	if err != nil {
		s.log.Warn("Unable to resolve attachment", zap.Int64("id", id), zap.String("size", size), zap.Error(err))
		return "", false
	}
	return url, found
}

// FeaturedImage returns URL of post thumbnail, empty when post has none.
func (s *Store) FeaturedImage(ctx context.Context, postID int64, size string) (string, error) {
	p, found, err := s.Post(ctx, postID)
	if err != nil || !found || p.FeaturedMedia == 0 {
		return "", err
	}
	url, _ := s.AttachmentURL(p.FeaturedMedia, size)
	return url, nil
}
