package services

import (
	"strings"

	"storefront/constants"
	apperrors "storefront/errors"
	"storefront/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// DiscountService quản lý mã giảm giá theo tenant
type DiscountService struct {
	db *gorm.DB
}

func NewDiscountService(db *gorm.DB) *DiscountService {
	return &DiscountService{db: db}
}

// NormalizeCode chuẩn hóa mã: bỏ dấu, viết hoa, bỏ khoảng trắng
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	code = unidecode.Unidecode(code)
	code = strings.ReplaceAll(code, " ", "")
	return strings.ToUpper(code)
}

// FindByCode tìm mã trong phạm vi một tenant
func (s *DiscountService) FindByCode(tenantID uint, code string) (*models.Discount, error) {
	var discount models.Discount
	err := s.db.Where("tenant_id = ? AND code = ?", tenantID, NormalizeCode(code)).
		First(&discount).Error
	if err != nil {
		return nil, err
	}
	return &discount, nil
}

// Validate kiểm tra mã cho một subtotal và trả về số tiền giảm
func (s *DiscountService) Validate(tenantID uint, code string, subtotal float64) (float64, error) {
	discount, err := s.FindByCode(tenantID, code)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, apperrors.ErrDiscountNotFound
		}
		return 0, err
	}

	if discount.Status != constants.DiscountStatusActive {
		return 0, apperrors.ErrDiscountInactive
	}

	if subtotal < discount.MinOrder {
		return 0, apperrors.ErrBelowMinOrder
	}

	return discount.AmountFor(subtotal), nil
}

// IncrementUsage tăng usage_count đúng 1 cho (tenant, code).
// Một câu UPDATE nguyên tử, không đọc-rồi-ghi để chịu được đơn
// đồng thời. Counter không bao giờ giảm, kể cả khi hủy đơn.
func (s *DiscountService) IncrementUsage(tenantID uint, code string) error {
	result := s.db.Model(&models.Discount{}).
		Where("tenant_id = ? AND code = ?", tenantID, NormalizeCode(code)).
		Update("usage_count", gorm.Expr("usage_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Mã bị xóa giữa chừng: đơn vẫn hợp lệ, caller chỉ log
		return apperrors.ErrDiscountNotFound
	}
	return nil
}

// Suggest gợi ý mã gần đúng nhất khi khách gõ sai,
// chỉ trả khi đủ độ tương đồng.
func (s *DiscountService) Suggest(tenantID uint, input string) string {
	var codes []string
	if err := s.db.Model(&models.Discount{}).
		Where("tenant_id = ? AND status = ?", tenantID, constants.DiscountStatusActive).
		Pluck("code", &codes).Error; err != nil || len(codes) == 0 {
		return ""
	}

	normalized := strings.ToLower(NormalizeCode(input))
	lowered := make([]string, 0, len(codes))
	for _, code := range codes {
		lowered = append(lowered, strings.ToLower(code))
	}

	matcher := closestmatch.New(lowered, []int{2, 3})
	best := matcher.Closest(normalized)
	if best == "" {
		return ""
	}

	if calculateSimilarity(normalized, best) < 0.5 {
		return ""
	}
	return strings.ToUpper(best)
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 0
	}
	return 1 - float64(distance)/maxLen
}
