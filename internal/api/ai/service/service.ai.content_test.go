package aisvc

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	aidto "github.com/sadikkartall/cetereleceweb/internal/api/ai/dto"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
)

// fakeTextGen giả lập TextGenService cho test pipeline
type fakeTextGen struct {
	draft       aidto.ArticleDraft
	draftErr    error
	humanized   string
	humanizeErr error
}

func (f *fakeTextGen) GenerateDraft(ctx context.Context, category string) (aidto.ArticleDraft, error) {
	return f.draft, f.draftErr
}

func (f *fakeTextGen) Humanize(ctx context.Context, draft aidto.ArticleDraft) (string, error) {
	return f.humanized, f.humanizeErr
}

// fakeImageSearch giả lập ImageSearchService
type fakeImageSearch struct {
	url string
	err error
}

func (f *fakeImageSearch) RandomImage(ctx context.Context, query string) (string, error) {
	return f.url, f.err
}

// fakePostWriter ghi nhận các bài viết được persist
type fakePostWriter struct {
	mu    sync.Mutex
	posts []blogmodels.Post
}

func (f *fakePostWriter) CreateGenerated(ctx context.Context, authorID primitive.ObjectID, article aidto.GeneratedArticle) (blogmodels.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post := blogmodels.Post{
		ID:       primitive.NewObjectID(),
		AuthorID: authorID,
		Title:    article.Title,
		Content:  article.Content,
		Category: article.Category,
		ImageURL: article.ImageURL,
	}
	f.posts = append(f.posts, post)
	return post, nil
}

// TestContentGenerator kiểm tra pipeline sinh bài viết và các nhánh fallback
func TestContentGenerator(t *testing.T) {
	ctx := context.Background()
	draft := aidto.ArticleDraft{
		Title:       "Yapay Zeka ve Gelecek",
		ImagePrompt: "futuristic artificial intelligence",
		Markdown:    "Taslak içerik.",
	}

	t.Run("✅ Happy path: humanized + ảnh thật", func(t *testing.T) {
		gen := NewContentGenerator(
			&fakeTextGen{draft: draft, humanized: "Uzun ve akıcı makale."},
			&fakeImageSearch{url: "https://images.example.com/ai.jpg"},
			&fakePostWriter{},
		)

		article, err := gen.GenerateArticle(ctx, "Yapay Zeka")
		require.NoError(t, err)
		assert.Equal(t, aidto.QualityHumanized, article.Quality)
		assert.Equal(t, "Yapay Zeka ve Gelecek", article.Title)
		assert.Equal(t, "https://images.example.com/ai.jpg", article.ImageURL)
		assert.True(t, strings.HasPrefix(article.Content, "![futuristic artificial intelligence](https://images.example.com/ai.jpg)\n\n"))
		assert.Contains(t, article.Content, "Uzun ve akıcı makale.")
	})

	t.Run("✅ Humanize thất bại thì fallback về draft, không lỗi cứng", func(t *testing.T) {
		gen := NewContentGenerator(
			&fakeTextGen{draft: draft, humanizeErr: fmt.Errorf("timeout")},
			&fakeImageSearch{url: "https://images.example.com/ai.jpg"},
			&fakePostWriter{},
		)

		article, err := gen.GenerateArticle(ctx, "Yapay Zeka")
		require.NoError(t, err)
		assert.Equal(t, aidto.QualityDraft, article.Quality)
		assert.Contains(t, article.Content, "Taslak içerik.")
	})

	t.Run("✅ Image search thất bại thì dùng ảnh fallback và vẫn đăng bài", func(t *testing.T) {
		writer := &fakePostWriter{}
		gen := NewContentGenerator(
			&fakeTextGen{draft: draft, humanized: "Makale."},
			&fakeImageSearch{err: fmt.Errorf("404 not found")},
			writer,
		)

		authorID := primitive.NewObjectID()
		post, err := gen.GenerateAndPublish(ctx, authorID, "Yapay Zeka")
		require.NoError(t, err)
		assert.Equal(t, FallbackImageURL, post.ImageURL)
		assert.Equal(t, authorID, post.AuthorID)
		require.Len(t, writer.posts, 1)
	})

	t.Run("❌ Draft thất bại là lỗi cứng", func(t *testing.T) {
		gen := NewContentGenerator(
			&fakeTextGen{draftErr: fmt.Errorf("service down")},
			&fakeImageSearch{url: "https://images.example.com/ai.jpg"},
			&fakePostWriter{},
		)

		_, err := gen.GenerateArticle(ctx, "Yapay Zeka")
		assert.Error(t, err)
	})

	t.Run("✅ Title rỗng thì sinh title từ category", func(t *testing.T) {
		gen := NewContentGenerator(
			&fakeTextGen{draft: aidto.ArticleDraft{ImagePrompt: "x", Markdown: "içerik"}, humanized: "makale"},
			&fakeImageSearch{url: "https://images.example.com/x.jpg"},
			&fakePostWriter{},
		)

		article, err := gen.GenerateArticle(ctx, "Donanım")
		require.NoError(t, err)
		assert.Equal(t, "Donanım Hakkında", article.Title)
	})
}

// TestParseDraft kiểm tra parse response của dịch vụ sinh văn bản
func TestParseDraft(t *testing.T) {
	t.Run("✅ JSON hợp lệ được dùng trực tiếp", func(t *testing.T) {
		raw := `{"title":"Başlık","image_prompt":"robot","markdown":"# İçerik"}`
		draft := parseDraft(raw)
		assert.Equal(t, "Başlık", draft.Title)
		assert.Equal(t, "robot", draft.ImagePrompt)
		assert.Equal(t, "# İçerik", draft.Markdown)
	})

	t.Run("✅ Non-JSON: title lấy từ heading, raw text làm markdown", func(t *testing.T) {
		raw := "Giriş cümlesi.\n## My Title\nDevamı burada."
		draft := parseDraft(raw)
		assert.Equal(t, "My Title", draft.Title)
		assert.Equal(t, raw, draft.Markdown)
		assert.Empty(t, draft.ImagePrompt)
	})

	t.Run("✅ Non-JSON không có heading thì title rỗng", func(t *testing.T) {
		raw := "Sadece düz metin."
		draft := parseDraft(raw)
		assert.Empty(t, draft.Title)
		assert.Equal(t, raw, draft.Markdown)
	})
}
