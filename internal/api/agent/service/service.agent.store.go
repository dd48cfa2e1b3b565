package agentsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	blogdto "github.com/sadikkartall/cetereleceweb/internal/api/blog/dto"
	blogsvc "github.com/sadikkartall/cetereleceweb/internal/api/blog/service"
)

// BlogInteractionStore triển khai InteractionStore trên các service của domain blog
type BlogInteractionStore struct {
	posts    *blogsvc.PostService
	comments *blogsvc.CommentService
	users    *blogsvc.UserService
}

// NewBlogInteractionStore tạo mới BlogInteractionStore
func NewBlogInteractionStore(posts *blogsvc.PostService, comments *blogsvc.CommentService, users *blogsvc.UserService) *BlogInteractionStore {
	return &BlogInteractionStore{
		posts:    posts,
		comments: comments,
		users:    users,
	}
}

// AddPostLike thêm like qua $addToSet của PostService
func (s *BlogInteractionStore) AddPostLike(ctx context.Context, postID primitive.ObjectID, userID string) error {
	_, err := s.posts.Like(ctx, postID, userID)
	return err
}

// InsertComment tạo comment mới kèm tăng counter trên post
func (s *BlogInteractionStore) InsertComment(ctx context.Context, postID, authorID primitive.ObjectID, content string) error {
	_, err := s.comments.Create(ctx, &blogdto.CommentCreateInput{
		PostID:   postID.Hex(),
		AuthorID: authorID.Hex(),
		Content:  content,
	})
	return err
}

// AddFollow thiết lập follow hai chiều qua UserService
func (s *BlogInteractionStore) AddFollow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	return s.users.Follow(ctx, followerID, targetID)
}
