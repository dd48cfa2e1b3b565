package aisvc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadikkartall/cetereleceweb/internal/common"
)

func newTestClient(maxAttempts int) *ResilientApiClient {
	// Base delay ngắn để test chạy nhanh
	return NewResilientApiClient(5*time.Second, maxAttempts, 1*time.Millisecond)
}

func getRequest(url string) func(ctx context.Context) (*http.Request, error) {
	return func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	}
}

// TestResilientApiClientRetry kiểm tra phân loại lỗi và retry budget
func TestResilientApiClientRetry(t *testing.T) {
	t.Run("✅ Thành công ngay lần đầu", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		body, err := newTestClient(3).Call(context.Background(), getRequest(srv.URL))
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, string(body))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("✅ 5xx được retry và thành công ở lần sau", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) <= 2 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		body, err := newTestClient(3).Call(context.Background(), getRequest(srv.URL))
		require.NoError(t, err)
		assert.Equal(t, "ok", string(body))
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("✅ 429 được coi là retryable", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		_, err := newTestClient(3).Call(context.Background(), getRequest(srv.URL))
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("❌ 4xx khác 429 là fatal, không retry", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(3).Call(context.Background(), getRequest(srv.URL))
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrApiFatal))
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "lỗi fatal không được retry")
	})

	t.Run("❌ Hết retry budget trả về lỗi exhausted", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := newTestClient(3).Call(context.Background(), getRequest(srv.URL))
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrApiRetryExhausted))
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "đúng maxAttempts lần thử")
	})

	t.Run("❌ Lỗi transport được retry rồi exhausted", func(t *testing.T) {
		// Server đóng ngay để mô phỏng connection refused
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := newTestClient(2).Call(context.Background(), getRequest(url))
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrApiRetryExhausted))
	})

	t.Run("✅ Context bị hủy dừng retry ngay", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewResilientApiClient(5*time.Second, 3, 100*time.Millisecond)
		_, err := client.Call(ctx, getRequest(srv.URL))
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

// TestRetryDelay kiểm tra backoff tăng theo cấp số nhân với jitter bị chặn trên
func TestRetryDelay(t *testing.T) {
	client := NewResilientApiClient(time.Second, 3, 500*time.Millisecond)

	t.Run("✅ Delay = base * 2^attempt + jitter(0..200ms)", func(t *testing.T) {
		for attempt := 0; attempt < 3; attempt++ {
			delay := client.retryDelay(attempt)
			min := 500 * time.Millisecond * time.Duration(1<<uint(attempt))
			max := min + 200*time.Millisecond
			assert.GreaterOrEqual(t, delay, min)
			assert.LessOrEqual(t, delay, max)
		}
	})
}
