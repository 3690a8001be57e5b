package repository

import (
	"errors"

	"github.com/amalakkad93/StarcoEat/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCart returns the user's cart or gorm.ErrRecordNotFound.
func (r *CartRepository) GetCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := r.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateCart is idempotent: a user gets at most one cart.
func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// GetCartForUpdate locks the cart row for the duration of tx so two
// checkouts cannot both consume the same cart contents.
func (r *CartRepository) GetCartForUpdate(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListItems returns the cart's rows with menu items, oldest first.
func (r *CartRepository) ListItems(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Preload("MenuItem").
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *CartRepository) GetItem(itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := r.DB.Preload("Cart").First(&it, itemID).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// AddItem appends a new row. Duplicate menu items are intentionally
// not merged into an existing row.
func (r *CartRepository) AddItem(tx *gorm.DB, cartID uint, item *entity.CartItem) error {
	item.CartID = cartID
	return tx.Create(item).Error
}

func (r *CartRepository) UpdateItemQuantity(tx *gorm.DB, itemID uint, quantity int) error {
	return tx.Model(&entity.CartItem{}).Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.CartItem{}, itemID).Error
}

// ClearItems deletes every row of the cart and reports how many went.
// Callers inside the checkout transaction compare the count against
// what they read to detect a concurrent consumer.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) (int64, error) {
	res := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
