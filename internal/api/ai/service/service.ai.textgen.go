package aisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	aidto "github.com/sadikkartall/cetereleceweb/internal/api/ai/dto"
	"github.com/sadikkartall/cetereleceweb/internal/common"
)

// titleHeadingRegex bắt dòng heading "## Tiêu đề" khi response không phải JSON
var titleHeadingRegex = regexp.MustCompile(`(?m)^##\s*(.+)$`)

// TextGenService gọi dịch vụ sinh văn bản (OpenAI-compatible chat completions).
// Stage 1 (draft) dùng client timeout ngắn, stage 2 (humanize) dùng client timeout dài hơn
// vì bài dài mất nhiều thời gian sinh hơn.
type TextGenService struct {
	draftClient    *ResilientApiClient
	humanizeClient *ResilientApiClient
	baseURL        string
	apiKey         string
	model          string
}

// TextGenConfig là cấu hình cho TextGenService
type TextGenConfig struct {
	BaseURL            string // Base URL của dịch vụ (OpenAI-compatible)
	APIKey             string
	Model              string
	TimeoutSec         int // Timeout cho stage draft
	HumanizeTimeoutSec int // Timeout dài hơn cho stage humanize
	MaxAttempts        int
	BaseDelayMs        int
}

// NewTextGenService tạo mới TextGenService
func NewTextGenService(cfg TextGenConfig) *TextGenService {
	return &TextGenService{
		draftClient:    NewResilientApiClient(time.Duration(cfg.TimeoutSec)*time.Second, cfg.MaxAttempts, time.Duration(cfg.BaseDelayMs)*time.Millisecond),
		humanizeClient: NewResilientApiClient(time.Duration(cfg.HumanizeTimeoutSec)*time.Second, cfg.MaxAttempts, time.Duration(cfg.BaseDelayMs)*time.Millisecond),
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		model:          cfg.Model,
	}
}

// complete gửi một chat completion request và trả về content của choice đầu tiên
func (s *TextGenService) complete(ctx context.Context, client *ResilientApiClient, prompt string) (string, error) {
	reqBody := aidto.ChatCompletionRequest{
		Model:       s.model,
		Messages:    []aidto.ChatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.8,
		MaxTokens:   800,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", common.ErrInvalidFormat
	}

	body, err := client.Call(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return "", err
	}

	var resp aidto.ChatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", common.ErrInvalidFormat
	}
	if len(resp.Choices) == 0 {
		return "", common.ErrInvalidFormat
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateDraft yêu cầu outline có cấu trúc cho một bài viết về category (stage 1).
// Dịch vụ được yêu cầu trả JSON {title, image_prompt, markdown}; nếu response
// không phải JSON hợp lệ thì lấy title từ heading "## ..." đầu tiên và dùng
// nguyên văn làm markdown. ImagePrompt thiếu thì thay bằng category.
func (s *TextGenService) GenerateDraft(ctx context.Context, category string) (aidto.ArticleDraft, error) {
	prompt := fmt.Sprintf(
		`Bir teknoloji blogunda yayınlanacak şekilde, "%s" hakkında profesyonel, detaylı ve özgün bir Türkçe blog yazısı yaz. Giriş, gelişme ve sonuç bölümleri olsun. Yanıtı şu JSON formatında ver: {"title": "...", "image_prompt": "...", "markdown": "..."}`,
		category,
	)

	raw, err := s.complete(ctx, s.draftClient, prompt)
	if err != nil {
		return aidto.ArticleDraft{}, err
	}

	draft := parseDraft(raw)
	if draft.ImagePrompt == "" {
		draft.ImagePrompt = category
	}
	return draft, nil
}

// Humanize viết lại draft thành bài dài, tự nhiên hơn (stage 2)
func (s *TextGenService) Humanize(ctx context.Context, draft aidto.ArticleDraft) (string, error) {
	prompt := fmt.Sprintf(
		"Aşağıdaki taslağı, bir insan yazarın kaleminden çıkmış gibi akıcı ve uzun bir Türkçe blog yazısına dönüştür. Başlık: %s\n\nTaslak:\n%s",
		draft.Title, draft.Markdown,
	)
	return s.complete(ctx, s.humanizeClient, prompt)
}

// parseDraft parse raw response thành ArticleDraft.
// JSON hợp lệ thì dùng trực tiếp; không thì fallback sang heading + raw text.
func parseDraft(raw string) aidto.ArticleDraft {
	var draft aidto.ArticleDraft
	if err := json.Unmarshal([]byte(raw), &draft); err == nil && draft.Markdown != "" {
		return draft
	}

	draft = aidto.ArticleDraft{Markdown: raw}
	if match := titleHeadingRegex.FindStringSubmatch(raw); match != nil {
		draft.Title = strings.TrimSpace(match[1])
	}
	return draft
}
