// Package blogsvc chứa các service thuộc domain blog: bài viết, bình luận,
// người dùng, trending feed và gợi ý tác giả.
package blogsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	aidto "github.com/sadikkartall/cetereleceweb/internal/api/ai/dto"
	basesvc "github.com/sadikkartall/cetereleceweb/internal/api/base/service"
	blogdto "github.com/sadikkartall/cetereleceweb/internal/api/blog/dto"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
	"github.com/sadikkartall/cetereleceweb/internal/common"
	"github.com/sadikkartall/cetereleceweb/internal/global"
)

// PostService là cấu trúc chứa các phương thức liên quan đến bài viết
type PostService struct {
	*basesvc.BaseServiceMongoImpl[blogmodels.Post]
}

// NewPostService tạo mới PostService
func NewPostService() (*PostService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Posts)
	if !exist {
		return nil, fmt.Errorf("failed to get blog_posts collection: %v", common.ErrNotFound)
	}
	return &PostService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[blogmodels.Post](coll),
	}, nil
}

// Create tạo mới một bài viết từ input đã validate
func (s *PostService) Create(ctx context.Context, input *blogdto.PostCreateInput) (blogmodels.Post, error) {
	var zero blogmodels.Post

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
	}

	authorID, err := primitive.ObjectIDFromHex(input.AuthorID)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	post := blogmodels.Post{
		AuthorID:  authorID,
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		Tags:      input.Tags,
		ImageURL:  input.ImageURL,
		Likes:     []string{},
		Bookmarks: []string{},
	}

	return s.InsertOne(ctx, post)
}

// Update cập nhật các trường được phép sửa của bài viết
func (s *PostService) Update(ctx context.Context, id primitive.ObjectID, input *blogdto.PostUpdateInput) (blogmodels.Post, error) {
	var zero blogmodels.Post

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
	}

	set := map[string]interface{}{}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Content != "" {
		set["content"] = input.Content
	}
	if input.Category != "" {
		set["category"] = input.Category
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.ImageURL != "" {
		set["imageUrl"] = input.ImageURL
	}
	if len(set) == 0 {
		return zero, common.ErrInvalidInput
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// CreateGenerated persist một bài viết do pipeline sinh nội dung tạo ra.
// Triển khai interface PostWriter của domain ai.
func (s *PostService) CreateGenerated(ctx context.Context, authorID primitive.ObjectID, article aidto.GeneratedArticle) (blogmodels.Post, error) {
	post := blogmodels.Post{
		AuthorID:  authorID,
		Title:     article.Title,
		Content:   article.Content,
		Category:  article.Category,
		ImageURL:  article.ImageURL,
		Likes:     []string{},
		Bookmarks: []string{},
	}
	return s.InsertOne(ctx, post)
}

// Like thêm userID vào danh sách likes của bài viết.
// Thao tác dùng $addToSet nên like lặp lại từ cùng một user không tạo bản ghi thừa.
func (s *PostService) Like(ctx context.Context, postID primitive.ObjectID, userID string) (blogmodels.Post, error) {
	return s.AddToSet(ctx, postID, "likes", userID)
}

// Unlike gỡ userID khỏi danh sách likes của bài viết
func (s *PostService) Unlike(ctx context.Context, postID primitive.ObjectID, userID string) (blogmodels.Post, error) {
	return s.PullFromSet(ctx, postID, "likes", userID)
}

// Bookmark thêm userID vào danh sách bookmarks của bài viết
func (s *PostService) Bookmark(ctx context.Context, postID primitive.ObjectID, userID string) (blogmodels.Post, error) {
	return s.AddToSet(ctx, postID, "bookmarks", userID)
}

// Unbookmark gỡ userID khỏi danh sách bookmarks của bài viết
func (s *PostService) Unbookmark(ctx context.Context, postID primitive.ObjectID, userID string) (blogmodels.Post, error) {
	return s.PullFromSet(ctx, postID, "bookmarks", userID)
}

// IncrementViews tăng counter lượt xem của bài viết thêm 1
func (s *PostService) IncrementViews(ctx context.Context, postID primitive.ObjectID) (blogmodels.Post, error) {
	return s.IncField(ctx, postID, "views", 1)
}

// FindByAuthor tìm các bài viết của một tác giả, mới nhất trước
func (s *PostService) FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]blogmodels.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"authorId": authorID}, opts)
}

// RecentPosts tìm các bài viết được tạo trong cửa sổ thời gian windowDays gần nhất,
// mới nhất trước, tối đa sampleLimit bài (lấy sample đủ rộng cho trending).
func (s *PostService) RecentPosts(ctx context.Context, windowDays int, sampleLimit int64) ([]blogmodels.Post, error) {
	if windowDays <= 0 {
		windowDays = 7
	}
	if sampleLimit <= 0 {
		sampleLimit = 50
	}

	cutoff := time.Now().Add(-time.Duration(windowDays) * 24 * time.Hour).UnixMilli()
	filter := bson.M{"createdAt": bson.M{"$gte": cutoff}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(sampleLimit)

	return s.Find(ctx, filter, opts)
}
