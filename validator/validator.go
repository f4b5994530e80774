package validator

import (
	"regexp"
	"storefront/dto"
	"storefront/errors"
	"storefront/models"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct chạy các binding tag trên một DTO bất kỳ
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	return nil
}

// ValidateCreateOrder kiểm tra nghiệp vụ của yêu cầu tạo đơn,
// ngoài các binding tag đã chạy ở tầng gin.
func ValidateCreateOrder(req *dto.CreateOrderRequest) error {
	if req.CustomerPhone != "" && !isValidPhone(req.CustomerPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
	}

	if req.CustomerEmail != "" && !isValidEmail(req.CustomerEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
	}

	if req.Mode == models.OrderModeDelivery && req.DeliveryZoneID == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Đơn giao hàng phải chọn khu vực giao", nil)
	}

	if req.Mode == models.OrderModeDelivery && req.Address == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Đơn giao hàng phải có địa chỉ", nil)
	}

	if req.ScheduledAt != nil && req.ScheduledAt.Before(time.Now()) {
		return errors.NewAppError(errors.ErrCodeValidation, "Giờ hẹn không được nhỏ hơn thời điểm hiện tại", nil)
	}

	for _, line := range req.Lines {
		if line.Quantity < 1 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số lượng món phải lớn hơn 0", nil)
		}
		if line.UnitPrice < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Đơn giá không được âm", nil)
		}
		for _, topping := range line.Toppings {
			if topping.Price != nil && *topping.Price < 0 {
				return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá topping không được âm", nil)
			}
		}
	}

	return nil
}

// ValidateDiscountAmount chặn mã giảm vượt quá giá trị đơn,
// tránh total âm ở bước tính giá.
func ValidateDiscountAmount(discountAmount, subtotal, deliveryFee float64) error {
	if discountAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền giảm không được âm", nil)
	}
	if discountAmount > subtotal+deliveryFee {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền giảm vượt quá giá trị đơn", nil)
	}
	return nil
}

// ValidateTenant kiểm tra cấu hình tenant
func ValidateTenant(tenant *models.Tenant) error {
	if tenant.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên tenant không được để trống", nil)
	}
	if tenant.Email != "" && !isValidEmail(tenant.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if err := tenant.ValidateFeeConfig(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFee, err.Error(), nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
