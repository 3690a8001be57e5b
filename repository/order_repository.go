package repository

import (
	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/apperr"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderAuthorized is the shared ownership gate: every mutating
// order path loads through it before acting.
func (r *OrderRepository) GetOrderAuthorized(orderID, userID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, apperr.Wrap(apperr.NotFound, "Order not found.", err)
	}
	if o.UserID != userID {
		return nil, apperr.New(apperr.Authorization, "You don't have permission to access this order.")
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// ListOrderItems returns the order's rows oldest first. Explicit query
// instead of relationship traversal so callers control what loads.
func (r *OrderRepository) ListOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *OrderRepository) MarkDeleted(tx *gorm.DB, orderID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("is_deleted", true).Error
}
