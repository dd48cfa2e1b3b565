// Package dto - các kiểu dữ liệu trao đổi với dịch vụ sinh nội dung và tìm ảnh.
package dto

// ArticleQuality đánh dấu mức chất lượng của bài viết được sinh ra
type ArticleQuality string

const (
	// QualityHumanized - bài đã qua bước viết lại dài và tự nhiên (stage 2 thành công)
	QualityHumanized ArticleQuality = "humanized"
	// QualityDraft - bài lắp từ outline của draft vì stage 2 thất bại
	QualityDraft ArticleQuality = "draft"
)

// ArticleDraft là outline có cấu trúc mà dịch vụ sinh văn bản trả về ở stage 1
type ArticleDraft struct {
	Title       string `json:"title"`        // Tiêu đề bài viết
	ImagePrompt string `json:"image_prompt"` // Mô tả ảnh minh họa để đưa vào image search
	Markdown    string `json:"markdown"`     // Nội dung markdown của draft
}

// GeneratedArticle là kết quả cuối cùng của pipeline sinh nội dung
type GeneratedArticle struct {
	Title    string         `json:"title"`
	Category string         `json:"category"`
	Content  string         `json:"content"`  // "![prompt](imageUrl)\n\n" + markdown
	ImageURL string         `json:"imageUrl"`
	Quality  ArticleQuality `json:"quality"` // humanized hoặc draft
}

// ChatMessage là một message trong request chat completions
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest là body gửi tới endpoint chat completions
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatCompletionResponse là body trả về từ endpoint chat completions
type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// ImageSearchResponse là body trả về từ endpoint /photos/random
type ImageSearchResponse struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}
