package store_test

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"go.uber.org/zap/zaptest"

	"gbcss/content"
	"gbcss/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

func TestStore_Posts(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	id, err := s.PutPost(ctx, store.Post{Title: "Home", Content: "<!-- wp:paragraph /-->"})
	if err != nil {
		t.Fatalf("PutPost() error = %v", err)
	}
	if id == 0 {
		t.Fatal("PutPost() returned zero id")
	}
	block, err := s.PutPost(ctx, store.Post{Type: store.PostTypeReusable, Title: "Banner", Content: "banner"})
	if err != nil {
		t.Fatalf("PutPost() error = %v", err)
	}

	p, found, err := s.Post(ctx, id)
	if err != nil || !found {
		t.Fatalf("Post() = %v, %v", found, err)
	}
	if p.Type != "post" || p.Title != "Home" {
		t.Errorf("unexpected post %+v", p)
	}

	if _, err := s.PutPost(ctx, store.Post{ID: id, Title: "Home v2", Content: "updated"}); err != nil {
		t.Fatalf("PutPost() replace error = %v", err)
	}
	all, err := s.Posts(ctx, "")
	if err != nil {
		t.Fatalf("Posts() error = %v", err)
	}
	if len(all) != 2 || all[0].Title != "Home v2" || all[1].ID != block {
		t.Errorf("unexpected posts %+v", all)
	}
	reusable, err := s.Posts(ctx, store.PostTypeReusable)
	if err != nil {
		t.Fatalf("Posts() error = %v", err)
	}
	if len(reusable) != 1 || reusable[0].Title != "Banner" {
		t.Errorf("unexpected reusable posts %+v", reusable)
	}

	if _, found, err := s.Post(ctx, 1000); found || err != nil {
		t.Errorf("Post(1000) = %v, %v", found, err)
	}
}

func TestStore_ReusableBlock(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	page, _ := s.PutPost(ctx, store.Post{Title: "Page", Content: "page"})
	block, _ := s.PutPost(ctx, store.Post{Type: store.PostTypeReusable, Content: `<!-- wp:generateblocks/headline {"uniqueId":"h1"} /-->`})

	tests := []struct {
		name    string
		id      int64
		found   bool
		content string
	}{
		{"reusable", block, true, `<!-- wp:generateblocks/headline {"uniqueId":"h1"} /-->`},
		{"regular post", page, false, ""},
		{"missing", 999, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := s.ReusableBlock(ctx, tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found != tt.found || got != tt.content {
				t.Errorf("ReusableBlock(%d) = %q, %v", tt.id, got, found)
			}
		})
	}
}

func TestStore_ResolvesContent(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	block, _ := s.PutPost(ctx, store.Post{Type: store.PostTypeReusable, Content: `<!-- wp:generateblocks/button {"uniqueId":"b1"} --><a class="gb-button">Go</a><!-- /wp:generateblocks/button -->`})
	blocks, err := content.ParseString(`<!-- wp:block {"ref":` + strconv.FormatInt(block, 10) + `} /-->`)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	data, err := content.Collect(ctx, blocks, s, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	buttons := data.Blocks(content.TypeButton)
	if len(buttons) != 1 || !buttons[0].Bool("hasUrl") {
		t.Errorf("reusable button not collected: %v", buttons)
	}
}

func TestStore_Attachments(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	if err := s.PutAttachment(ctx, 7, "", "https://example.com/full.jpg"); err != nil {
		t.Fatalf("PutAttachment() error = %v", err)
	}
	if err := s.PutAttachment(ctx, 7, "medium", "https://example.com/medium.jpg"); err != nil {
		t.Fatalf("PutAttachment() error = %v", err)
	}

	tests := []struct {
		id    int64
		size  string
		want  string
		found bool
	}{
		{7, "medium", "https://example.com/medium.jpg", true},
		{7, "large", "https://example.com/full.jpg", true},
		{7, "", "https://example.com/full.jpg", true},
		{8, "full", "", false},
	}
	for _, tt := range tests {
		got, found := s.AttachmentURL(tt.id, tt.size)
		if got != tt.want || found != tt.found {
			t.Errorf("AttachmentURL(%d, %q) = %q, %v", tt.id, tt.size, got, found)
		}
	}

	post, _ := s.PutPost(ctx, store.Post{Title: "With thumbnail", FeaturedMedia: 7})
	if url, err := s.FeaturedImage(ctx, post, "medium"); err != nil || url != "https://example.com/medium.jpg" {
		t.Errorf("FeaturedImage() = %q, %v", url, err)
	}
	plain, _ := s.PutPost(ctx, store.Post{Title: "Plain"})
	if url, err := s.FeaturedImage(ctx, plain, "medium"); err != nil || url != "" {
		t.Errorf("FeaturedImage() = %q, %v", url, err)
	}
}

func TestStore_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "content.db")

	s, err := store.Open(path, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	id, err := s.PutPost(ctx, store.Post{Title: "Persisted"})
	if err != nil {
		t.Fatalf("PutPost() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = store.Open(path, nil)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()
	if p, found, err := s.Post(ctx, id); err != nil || !found || p.Title != "Persisted" {
		t.Errorf("Post() = %+v, %v, %v", p, found, err)
	}
}

func TestStore_Canceled(t *testing.T) {
	s := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.PutPost(ctx, store.Post{Title: "late"}); err == nil {
		t.Error("expected error on canceled context")
	}
}
