package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Tenant errors
	ErrCodeTenantNotFound ErrorCode = "TENANT_NOT_FOUND"
	ErrCodeInvalidTenant  ErrorCode = "INVALID_TENANT"
	ErrCodeInvalidFee     ErrorCode = "INVALID_FEE"

	// Order errors
	ErrCodeInvalidOrder   ErrorCode = "INVALID_ORDER"
	ErrCodeOrderPartial   ErrorCode = "ORDER_PARTIAL"
	ErrCodeOrderWrite     ErrorCode = "ORDER_WRITE_FAILED"
	ErrCodeDuplicateOrder ErrorCode = "DUPLICATE_ORDER_NUMBER"

	// Discount errors
	ErrCodeInvalidCode   ErrorCode = "INVALID_CODE"
	ErrCodeCodeInactive  ErrorCode = "CODE_INACTIVE"
	ErrCodeBelowMinOrder ErrorCode = "BELOW_MIN_ORDER"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone  ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

var (
	// Tenant errors
	ErrTenantInactive = errors.New("tenant is inactive")

	// ErrOrderPartial: header đã ghi nhưng line ghi hỏng, cần reconcile
	ErrOrderPartial = errors.New("partial order: header committed without lines")

	// Discount errors
	ErrDiscountNotFound = errors.New("discount code not found")
	ErrDiscountInactive = errors.New("discount code inactive")
	ErrBelowMinOrder    = errors.New("order value below discount minimum")
)
