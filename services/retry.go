package services

import (
	"context"
	"strings"
	"time"
)

// RetryState phân biệt kết quả thật với fallback sau khi bỏ cuộc,
// caller không phải đoán "rỗng thật" hay "rỗng vì hết lượt retry".
type RetryState int

const (
	RetryOk       RetryState = iota // Operation thành công
	RetryDegraded                   // Hết lượt retry, trả fallback
	RetryFailed                     // Lỗi không retry được, trả fallback
)

// RetryResult là kết quả có gắn nhãn của một lần gọi qua gateway
type RetryResult[T any] struct {
	State    RetryState
	Value    T
	Err      error
	Attempts int
}

// RetryOptions cấu hình số lần thử và delay cơ sở
type RetryOptions struct {
	MaxAttempts int           // Mặc định 3
	BaseDelay   time.Duration // Mặc định 500ms, nhân đôi sau mỗi lần
}

// Các mẫu lỗi tạm thời của tầng lưu trữ, retry được
var transientPatterns = []string{
	"timeout",
	"timed out",
	"deadline exceeded",
	"rate limit",
	"too many requests",
	"429",
	"503",
	"service unavailable",
	"temporarily unavailable",
	"connection reset",
	"connection refused",
	"broken pipe",
}

// IsTransientError phân loại lỗi theo message,
// chỉ lỗi tạm thời mới được retry.
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(message, pattern) {
			return true
		}
	}
	return false
}

// WithRetry bọc một thao tác lưu trữ với retry backoff lũy thừa.
// Lỗi tạm thời: chờ BaseDelay * 2^attempt rồi thử lại, tối đa MaxAttempts lần.
// Lỗi khác hoặc hết lượt: trả fallback kèm nhãn trạng thái.
func WithRetry[T any](ctx context.Context, op func() (T, error), fallback T, opts RetryOptions) RetryResult[T] {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 500 * time.Millisecond
	}

	var lastErr error
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		value, err := op()
		if err == nil {
			return RetryResult[T]{State: RetryOk, Value: value, Attempts: attempt + 1}
		}
		lastErr = err

		if !IsTransientError(err) {
			return RetryResult[T]{State: RetryFailed, Value: fallback, Err: err, Attempts: attempt + 1}
		}

		if attempt < opts.MaxAttempts-1 {
			delay := opts.BaseDelay * time.Duration(1<<attempt)
			select {
			case <-ctx.Done():
				return RetryResult[T]{State: RetryFailed, Value: fallback, Err: ctx.Err(), Attempts: attempt + 1}
			case <-time.After(delay):
			}
		}
	}

	return RetryResult[T]{State: RetryDegraded, Value: fallback, Err: lastErr, Attempts: opts.MaxAttempts}
}

// RunWithRetry là biến thể cho thao tác không trả giá trị
func RunWithRetry(ctx context.Context, op func() error, opts RetryOptions) RetryResult[struct{}] {
	return WithRetry(ctx, func() (struct{}, error) {
		return struct{}{}, op()
	}, struct{}{}, opts)
}
