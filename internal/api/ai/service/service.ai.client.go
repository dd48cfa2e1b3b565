// Package aisvc chứa client gọi các dịch vụ sinh nội dung bên ngoài
// (text generation, image search) và pipeline sinh bài viết cho agents.
package aisvc

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/sadikkartall/cetereleceweb/internal/common"
	"github.com/sadikkartall/cetereleceweb/internal/logger"
)

// ResilientApiClient bọc outbound HTTP call với retry + exponential backoff.
// Mỗi call quản lý retry budget riêng, không có circuit breaker hay rate-limit
// bucket chia sẻ giữa các call.
//
// Phân loại lỗi:
//   - HTTP 429, HTTP 5xx, lỗi transport (không có status): retryable
//   - HTTP 4xx khác: fatal, dừng ngay không retry
type ResilientApiClient struct {
	httpClient  *http.Client
	maxAttempts int
	baseDelay   time.Duration
	rng         *rand.Rand
}

// NewResilientApiClient tạo client với timeout cho từng request,
// số lần thử tối đa và base delay cho backoff.
func NewResilientApiClient(timeout time.Duration, maxAttempts int, baseDelay time.Duration) *ResilientApiClient {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	return &ResilientApiClient{
		httpClient:  &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// isRetryableStatus xác định status code có đáng retry hay không
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// retryDelay tính thời gian chờ trước lần thử attempt kế tiếp:
// base * 2^attempt + jitter ngẫu nhiên 0..200ms để tránh retry storm đồng loạt.
func (c *ResilientApiClient) retryDelay(attempt int) time.Duration {
	backoff := c.baseDelay * time.Duration(1<<uint(attempt))
	jitter := time.Duration(c.rng.Intn(200)) * time.Millisecond
	return backoff + jitter
}

// Call thực hiện một outbound HTTP call với retry.
// buildRequest được gọi lại ở mỗi lần thử để tạo request mới (body không tái dùng được).
// Trả về body của response 2xx, hoặc lỗi cuối cùng sau khi hết budget / gặp lỗi fatal.
func (c *ResilientApiClient) Call(ctx context.Context, buildRequest func(ctx context.Context) (*http.Request, error)) ([]byte, error) {
	log := logger.GetAppLogger()
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay(attempt - 1)
			log.WithFields(map[string]interface{}{
				"attempt": attempt + 1,
				"delay":   delay.String(),
			}).Warn("🔁 [API_RETRY] Thử lại outbound call sau backoff")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := buildRequest(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Lỗi transport (timeout, DNS, connection refused): retryable
			lastErr = common.NewError(common.ErrCodeExternalRetryable, err.Error(), common.StatusServiceUnavailable, err)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if readErr != nil {
				lastErr = common.NewError(common.ErrCodeExternalRetryable, readErr.Error(), common.StatusServiceUnavailable, readErr)
				continue
			}
			return body, nil
		}

		statusErr := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
		if isRetryableStatus(resp.StatusCode) {
			lastErr = common.NewError(common.ErrCodeExternalRetryable, statusErr.Error(), resp.StatusCode, statusErr)
			continue
		}

		// 4xx khác 429: fatal, không retry
		log.WithFields(map[string]interface{}{
			"status": resp.StatusCode,
		}).Error("⛔ [API_FATAL] Outbound call nhận lỗi không thể retry")
		return nil, common.NewError(common.ErrCodeExternalFatal, statusErr.Error(), resp.StatusCode, common.ErrApiFatal)
	}

	log.WithFields(map[string]interface{}{
		"maxAttempts": c.maxAttempts,
	}).Error("⛔ [API_EXHAUSTED] Outbound call thất bại sau khi hết retry budget")

	if lastErr == nil {
		lastErr = common.ErrApiRetryExhausted
	}
	return nil, fmt.Errorf("%w: %v", common.ErrApiRetryExhausted, lastErr)
}
