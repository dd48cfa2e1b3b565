package dto

// CommentCreateInput dữ liệu đầu vào khi tạo bình luận
type CommentCreateInput struct {
	PostID   string `json:"postId" validate:"required,exists=blog_posts"`   // Hex ObjectID của bài viết, phải tồn tại (bắt buộc)
	AuthorID string `json:"authorId" validate:"required,exists=blog_users"` // Hex ObjectID của tác giả bình luận, phải tồn tại (bắt buộc)
	Content  string `json:"content" validate:"required,min=1,no_xss"`       // Nội dung bình luận (bắt buộc)
}

// RecommendQueryInput tham số truy vấn recommended authors
type RecommendQueryInput struct {
	ForUser string `query:"forUser"` // Hex ObjectID của user đang xem (để loại trừ chính họ và người đã follow)
	Limit   int64  `query:"limit"`   // Số tác giả tối đa trả về (mặc định 5)
}
