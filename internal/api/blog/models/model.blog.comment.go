// Package models - model bình luận (Comment) thuộc domain blog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment định nghĩa mô hình bình luận, lưu trong collection riêng.
// Counter Comments trên Post được tăng bằng $inc khi insert comment.
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID    primitive.ObjectID `json:"postId" bson:"postId" index:"single"`
	AuthorID  primitive.ObjectID `json:"authorId" bson:"authorId"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
