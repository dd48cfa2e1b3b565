package dto

// PostCreateInput dữ liệu đầu vào khi tạo bài viết
type PostCreateInput struct {
	AuthorID string   `json:"authorId" validate:"required,exists=blog_users"` // Hex ObjectID của tác giả, phải tồn tại (bắt buộc)
	Title    string   `json:"title" validate:"required,min=3,no_xss"`         // Tiêu đề bài viết (bắt buộc)
	Content  string   `json:"content" validate:"required,min=10,no_xss"`      // Nội dung markdown (bắt buộc)
	Category string   `json:"category,omitempty" validate:"omitempty"`        // Danh mục (tùy chọn)
	Tags     []string `json:"tags,omitempty"`                                 // Danh sách tag (tùy chọn)
	ImageURL string   `json:"imageUrl,omitempty" validate:"omitempty,url"`    // Ảnh cover (tùy chọn)
}

// PostUpdateInput dữ liệu đầu vào khi cập nhật bài viết
type PostUpdateInput struct {
	Title    string   `json:"title,omitempty" validate:"omitempty,min=3,no_xss"`
	Content  string   `json:"content,omitempty" validate:"omitempty,min=10,no_xss"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// TrendingQueryInput tham số truy vấn trending feed
type TrendingQueryInput struct {
	Limit      int64 `query:"limit"`      // Số bài tối đa trả về (mặc định 10)
	WindowDays int   `query:"windowDays"` // Cửa sổ thời gian tính trending (mặc định 7 ngày)
}

// EngagementInput dữ liệu đầu vào cho các thao tác like/bookmark/view
type EngagementInput struct {
	UserID string `json:"userId" validate:"required"` // Hex ObjectID của user thực hiện thao tác
}
