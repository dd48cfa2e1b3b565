// Package models - model bài viết (Post) thuộc domain blog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post định nghĩa mô hình bài viết.
// Likes/Bookmarks lưu hex id của user, cập nhật bằng $addToSet/$pull.
// Comments là counter, tăng bằng $inc khi comment được tạo trong collection riêng.
// TrendScore chỉ tính lúc đọc (trending feed), không lưu xuống database.
type Post struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AuthorID   primitive.ObjectID `json:"authorId" bson:"authorId" index:"single"`
	Title      string             `json:"title" bson:"title"`
	Content    string             `json:"content" bson:"content"`
	Category   string             `json:"category" bson:"category"`
	Tags       []string           `json:"tags" bson:"tags"`
	ImageURL   string             `json:"imageUrl" bson:"imageUrl"`
	Likes      []string           `json:"likes" bson:"likes"`
	Bookmarks  []string           `json:"bookmarks" bson:"bookmarks"`
	Comments   int64              `json:"comments" bson:"comments"`
	Views      int64              `json:"views" bson:"views"`
	TrendScore float64            `json:"trendScore,omitempty" bson:"-"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// LikeCount trả về số lượt thích hiện tại của bài viết.
func (p *Post) LikeCount() int64 {
	return int64(len(p.Likes))
}
