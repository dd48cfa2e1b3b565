// Package database - Index cho các collection của blog (trending, recommend, follow graph).
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sadikkartall/cetereleceweb/internal/global"
)

// CreateBlogIndexes tạo các index cho blog_users, blog_posts, blog_comments.
// Gọi một lần khi server khởi động, sau khi đã đăng ký collections.
func CreateBlogIndexes(ctx context.Context, db *mongo.Database) error {
	// blog_users: uid unique — tra cứu user theo external uid
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "uid", Value: 1}},
		Options: options.Index().SetName("blog_user_uid").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// blog_users: isAgent — lọc danh sách agents cho scheduler
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "isAgent", Value: 1}},
		Options: options.Index().SetName("blog_user_is_agent"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// blog_posts: (authorId, createdAt desc) — metrics theo tác giả cho recommender
	posts := db.Collection(global.MongoDB_ColNames.Posts)
	if _, err := posts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "authorId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("blog_post_author_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// blog_posts: createdAt desc — cửa sổ recent posts của trending
	if _, err := posts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("blog_post_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// blog_comments: (postId, createdAt desc) — liệt kê bình luận của một bài viết
	comments := db.Collection(global.MongoDB_ColNames.Comments)
	if _, err := comments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "postId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("blog_comment_post_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
