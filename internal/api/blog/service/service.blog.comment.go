package blogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/sadikkartall/cetereleceweb/internal/api/base/service"
	blogdto "github.com/sadikkartall/cetereleceweb/internal/api/blog/dto"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
	"github.com/sadikkartall/cetereleceweb/internal/common"
	"github.com/sadikkartall/cetereleceweb/internal/global"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[blogmodels.Comment]
	postService *PostService
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get blog_comments collection: %v", common.ErrNotFound)
	}
	postService, err := NewPostService()
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %v", err)
	}
	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[blogmodels.Comment](coll),
		postService:          postService,
	}, nil
}

// Create tạo mới một bình luận và tăng counter comments trên bài viết.
// Counter tăng bằng $inc nên nhiều bình luận đồng thời đều được đếm đủ.
func (s *CommentService) Create(ctx context.Context, input *blogdto.CommentCreateInput) (blogmodels.Comment, error) {
	var zero blogmodels.Comment

	if err := global.Validate.Struct(input); err != nil {
		return zero, common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
	}

	postID, err := primitive.ObjectIDFromHex(input.PostID)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	authorID, err := primitive.ObjectIDFromHex(input.AuthorID)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	// Bài viết phải tồn tại trước khi nhận bình luận
	if _, err := s.postService.FindOneById(ctx, postID); err != nil {
		return zero, err
	}

	comment := blogmodels.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  input.Content,
	}

	created, err := s.InsertOne(ctx, comment)
	if err != nil {
		return zero, err
	}

	if _, err := s.postService.IncField(ctx, postID, "comments", 1); err != nil {
		return zero, err
	}

	return created, nil
}

// Delete xóa một bình luận và giảm counter comments trên bài viết
func (s *CommentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	comment, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	_, err = s.postService.IncField(ctx, comment.PostID, "comments", -1)
	return err
}

// FindByPost tìm các bình luận của một bài viết, mới nhất trước
func (s *CommentService) FindByPost(ctx context.Context, postID primitive.ObjectID, limit int64) ([]blogmodels.Comment, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return s.Find(ctx, bson.M{"postId": postID}, opts)
}
