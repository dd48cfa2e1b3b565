package aisvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	aidto "github.com/sadikkartall/cetereleceweb/internal/api/ai/dto"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
	"github.com/sadikkartall/cetereleceweb/internal/logger"
)

// TextGenerator là phần của TextGenService mà ContentGenerator cần
type TextGenerator interface {
	GenerateDraft(ctx context.Context, category string) (aidto.ArticleDraft, error)
	Humanize(ctx context.Context, draft aidto.ArticleDraft) (string, error)
}

// ImageSearcher là phần của ImageSearchService mà ContentGenerator cần
type ImageSearcher interface {
	RandomImage(ctx context.Context, query string) (string, error)
}

// PostWriter persist bài viết được sinh ra, do domain blog cung cấp
type PostWriter interface {
	CreateGenerated(ctx context.Context, authorID primitive.ObjectID, article aidto.GeneratedArticle) (blogmodels.Post, error)
}

// ContentGenerator là pipeline sinh bài viết hai giai đoạn:
// draft có cấu trúc -> viết lại tự nhiên (humanize) -> gắn ảnh minh họa -> persist.
// Stage humanize và image search thất bại đều có fallback, không chặn việc đăng bài.
type ContentGenerator struct {
	textGen TextGenerator
	images  ImageSearcher
	posts   PostWriter
}

// NewContentGenerator tạo mới ContentGenerator
func NewContentGenerator(textGen TextGenerator, images ImageSearcher, posts PostWriter) *ContentGenerator {
	return &ContentGenerator{
		textGen: textGen,
		images:  images,
		posts:   posts,
	}
}

// GenerateArticle sinh một bài viết hoàn chỉnh về category.
// Chỉ lỗi ở stage draft mới là lỗi cứng; humanize thất bại thì dùng draft
// (Quality = draft), tìm ảnh thất bại thì dùng FallbackImageURL.
func (g *ContentGenerator) GenerateArticle(ctx context.Context, category string) (aidto.GeneratedArticle, error) {
	log := logger.GetAppLogger()

	// Stage 1: draft có cấu trúc
	draft, err := g.textGen.GenerateDraft(ctx, category)
	if err != nil {
		return aidto.GeneratedArticle{}, err
	}

	// Stage 2: humanize, thất bại thì fallback về draft
	quality := aidto.QualityHumanized
	markdown, err := g.textGen.Humanize(ctx, draft)
	if err != nil || markdown == "" {
		log.WithFields(map[string]interface{}{
			"category": category,
		}).Warn("⚠️ [CONTENT_GEN] Humanize thất bại, dùng nội dung draft")
		markdown = draft.Markdown
		quality = aidto.QualityDraft
	}

	// Tìm ảnh minh họa, thất bại thì dùng ảnh fallback
	imageURL, err := g.images.RandomImage(ctx, draft.ImagePrompt)
	if err != nil || imageURL == "" {
		log.WithFields(map[string]interface{}{
			"query": draft.ImagePrompt,
		}).Warn("⚠️ [CONTENT_GEN] Image search thất bại, dùng ảnh fallback")
		imageURL = FallbackImageURL
	}

	title := draft.Title
	if title == "" {
		title = fmt.Sprintf("%s Hakkında", category)
	}

	return aidto.GeneratedArticle{
		Title:    title,
		Category: category,
		Content:  fmt.Sprintf("![%s](%s)\n\n%s", draft.ImagePrompt, imageURL, markdown),
		ImageURL: imageURL,
		Quality:  quality,
	}, nil
}

// GenerateAndPublish sinh bài viết và persist dưới tên một agent
func (g *ContentGenerator) GenerateAndPublish(ctx context.Context, authorID primitive.ObjectID, category string) (blogmodels.Post, error) {
	var zero blogmodels.Post

	article, err := g.GenerateArticle(ctx, category)
	if err != nil {
		return zero, err
	}

	post, err := g.posts.CreateGenerated(ctx, authorID, article)
	if err != nil {
		return zero, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"postId":   post.ID.Hex(),
		"category": category,
		"quality":  string(article.Quality),
	}).Info("📝 [CONTENT_GEN] Đã đăng bài viết mới cho agent")

	return post, nil
}
