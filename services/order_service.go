package services

import (
	"time"

	"storefront/dto"
	apperrors "storefront/errors"
	"storefront/models"

	"gorm.io/gorm"
)

// ToppingPricer tra giá topping từ catalog, chỉ đọc.
// Catalog là collaborator bên ngoài phạm vi ledger.
type ToppingPricer interface {
	PriceFor(tenantID uint, toppingID uint, name string, variantName string) (float64, error)
}

// CatalogToppingPricer tra giá topping trong DB:
// ưu tiên giá theo biến thể, không có thì lấy giá gốc.
type CatalogToppingPricer struct {
	db *gorm.DB
}

func NewCatalogToppingPricer(db *gorm.DB) *CatalogToppingPricer {
	return &CatalogToppingPricer{db: db}
}

func (p *CatalogToppingPricer) PriceFor(tenantID uint, toppingID uint, name string, variantName string) (float64, error) {
	var topping models.Topping
	tx := p.db.Where("tenant_id = ?", tenantID)
	if toppingID != 0 {
		tx = tx.Where("id = ?", toppingID)
	} else {
		tx = tx.Where("name = ?", name)
	}
	if err := tx.First(&topping).Error; err != nil {
		return 0, err
	}

	if variantName != "" {
		var variantPrice models.ToppingVariantPrice
		err := p.db.Where("topping_id = ? AND variant_name = ?", topping.ID, variantName).
			First(&variantPrice).Error
		if err == nil {
			return variantPrice.Price, nil
		}
		if err != gorm.ErrRecordNotFound {
			return 0, err
		}
	}

	return topping.BasePrice, nil
}

// OrderService ghi đơn hàng và phục vụ truy vấn đơn
type OrderService struct {
	db     *gorm.DB
	pricer ToppingPricer
}

func NewOrderService(db *gorm.DB, pricer ToppingPricer) *OrderService {
	return &OrderService{db: db, pricer: pricer}
}

// ResolveLines chốt giá cho giỏ hàng trước khi tính tiền.
// Giá topping: client gửi giá override thì dùng luôn (UI đã tính
// giá theo biến thể), không gửi thì tra catalog.
func (s *OrderService) ResolveLines(tenantID uint, lines []dto.CreateOrderLineRequest) ([]PricedLine, error) {
	resolved := make([]PricedLine, 0, len(lines))
	for _, line := range lines {
		priced := PricedLine{
			ItemName:    line.ItemName,
			VariantName: line.VariantName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Note:        line.Note,
		}
		for _, topping := range line.Toppings {
			price := 0.0
			if topping.Price != nil {
				price = *topping.Price
			} else {
				catalogPrice, err := s.pricer.PriceFor(tenantID, topping.ToppingID, topping.Name, line.VariantName)
				if err != nil {
					return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidOrder,
						"Không tra được giá topping "+topping.Name, err)
				}
				price = catalogPrice
			}
			priced.Toppings = append(priced.Toppings, PricedTopping{
				Name:  topping.Name,
				Price: price,
			})
		}
		resolved = append(resolved, priced)
	}
	return resolved, nil
}

// OrderWriteInput gom metadata của đơn cùng với draft đã tính giá
type OrderWriteInput struct {
	TenantID       uint
	OrderNumber    int64
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	Address        string
	DeliveryZoneID *uint
	DiscountCode   *string
	ScheduledAt    *time.Time
	Note           string
	Draft          OrderDraft
}

// Create ghi header + lines + toppings trong MỘT transaction.
// Bản cũ ghi từng câu lệnh rời nhau và có thể để lại đơn mồ côi
// không có line; gói transaction đóng lỗ đó, còn truy vấn
// FindOrdersWithoutLines giữ lại làm lưới an toàn cho dữ liệu cũ.
func (s *OrderService) Create(input OrderWriteInput) (*models.Order, error) {
	order := models.Order{
		TenantID:       input.TenantID,
		OrderNumber:    input.OrderNumber,
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		CustomerEmail:  input.CustomerEmail,
		Address:        input.Address,
		Mode:           input.Draft.Mode,
		DeliveryZoneID: input.DeliveryZoneID,
		Subtotal:       input.Draft.Subtotal,
		DeliveryFee:    input.Draft.DeliveryFee,
		DiscountAmount: input.Draft.DiscountAmount,
		TotalPrice:     input.Draft.Total,
		DiscountCode:   input.DiscountCode,
		Status:         models.OrderStatusPending,
		ScheduledAt:    input.ScheduledAt,
		Note:           input.Note,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range input.Draft.Lines {
			orderLine := models.OrderLine{
				OrderID:     order.ID,
				ItemName:    line.ItemName,
				VariantName: line.VariantName,
				Quantity:    line.Quantity,
				UnitPrice:   line.UnitPrice,
				LineTotal:   line.LineTotal,
				Note:        line.Note,
			}
			if err := tx.Create(&orderLine).Error; err != nil {
				return err
			}

			for _, topping := range line.Toppings {
				lineTopping := models.OrderLineTopping{
					OrderLineID: orderLine.ID,
					ToppingName: topping.Name,
					Price:       topping.Price,
				}
				if err := tx.Create(&lineTopping).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeOrderWrite, "Ghi đơn hàng thất bại", err)
	}

	return &order, nil
}

// GetByID lấy đơn kèm lines và toppings, chỉ trong phạm vi tenant
func (s *OrderService) GetByID(tenantID, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Lines.Toppings").Where("tenant_id = ?", tenantID).First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByTenant lấy đơn của một tenant, mới nhất trước
func (s *OrderService) ListByTenant(tenantID uint, page, limit int) ([]models.Order, int64, error) {
	var total int64
	if err := s.db.Model(&models.Order{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := s.db.Preload("Lines.Toppings").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindOrdersWithoutLines tìm đơn "mồ côi": header đã ghi
// nhưng không có line nào. Job reconcile chạy hàng đêm dựa vào đây.
func (s *OrderService) FindOrdersWithoutLines() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Joins("LEFT JOIN order_lines ON order_lines.order_id = orders.id").
		Where("order_lines.id IS NULL").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
