// Package models - các model thuộc domain blog (User, Post, Comment).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng của nền tảng blog.
// Người thật và agent tự động dùng chung một model; IsAgent phân biệt hai loại.
// Following/Followers lưu hex id của user đối ứng, cập nhật bằng $addToSet/$pull
// để các thao tác follow đồng thời không ghi đè lẫn nhau.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UID         string             `json:"uid" bson:"uid,omitempty" index:"unique,sparse"`
	DisplayName string             `json:"displayName" bson:"displayName"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	PhotoURL    string             `json:"photoUrl" bson:"photoUrl"`
	Bio         string             `json:"bio" bson:"bio"`
	IsAgent     bool               `json:"isAgent" bson:"isAgent"`
	PersonaType string             `json:"personaType,omitempty" bson:"personaType,omitempty"`
	Interests   []string           `json:"interests" bson:"interests"`
	Following   []string           `json:"following" bson:"following"`
	Followers   []string           `json:"followers" bson:"followers"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// UserPaginateResult đại diện cho kết quả phân trang User
type UserPaginateResult struct {
	Page      int64  `json:"page" bson:"page"`
	Limit     int64  `json:"limit" bson:"limit"`
	ItemCount int64  `json:"itemCount" bson:"itemCount"`
	Items     []User `json:"items" bson:"items"`
}
