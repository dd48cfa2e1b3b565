package aisvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	aidto "github.com/sadikkartall/cetereleceweb/internal/api/ai/dto"
	"github.com/sadikkartall/cetereleceweb/internal/common"
)

// FallbackImageURL dùng khi dịch vụ tìm ảnh không trả về được URL khả dụng
const FallbackImageURL = "https://source.unsplash.com/1200x630/?technology,ai"

// ImageSearchService gọi dịch vụ tìm ảnh ngẫu nhiên theo query (Unsplash-compatible)
type ImageSearchService struct {
	client    *ResilientApiClient
	baseURL   string
	accessKey string
}

// ImageSearchConfig là cấu hình cho ImageSearchService
type ImageSearchConfig struct {
	BaseURL     string
	AccessKey   string
	TimeoutSec  int
	MaxAttempts int
	BaseDelayMs int
}

// NewImageSearchService tạo mới ImageSearchService
func NewImageSearchService(cfg ImageSearchConfig) *ImageSearchService {
	return &ImageSearchService{
		client:    NewResilientApiClient(time.Duration(cfg.TimeoutSec)*time.Second, cfg.MaxAttempts, time.Duration(cfg.BaseDelayMs)*time.Millisecond),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		accessKey: cfg.AccessKey,
	}
}

// RandomImage tìm một ảnh landscape ngẫu nhiên theo query.
// Trả về URL regular của ảnh, hoặc lỗi nếu dịch vụ không khả dụng / không có ảnh.
// Caller chịu trách nhiệm fallback sang FallbackImageURL.
func (s *ImageSearchService) RandomImage(ctx context.Context, query string) (string, error) {
	endpoint := s.baseURL + "/photos/random?query=" + url.QueryEscape(query) +
		"&orientation=landscape&client_id=" + url.QueryEscape(s.accessKey)

	body, err := s.client.Call(ctx, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return "", err
	}

	var resp aidto.ImageSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", common.ErrInvalidFormat
	}
	if resp.URLs.Regular == "" {
		return "", common.ErrNotFound
	}

	return resp.URLs.Regular, nil
}
