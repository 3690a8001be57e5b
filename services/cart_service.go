package services

import (
	"errors"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/apperr"
	"github.com/amalakkad93/StarcoEat/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// Get returns the user's cart and its items. An absent cart surfaces
// as NotFound; callers render it as an empty normalized payload.
func (s *CartService) Get(userID uint) (*entity.Cart, []entity.CartItem, error) {
	cart, err := s.CartRepo.GetCart(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperr.New(apperr.NotFound, "No cart found for the user.")
	}
	if err != nil {
		return nil, nil, err
	}
	items, err := s.CartRepo.ListItems(s.DB, cart.ID)
	if err != nil {
		return nil, nil, err
	}
	return cart, items, nil
}

// Add appends a new cart row. The same menu item added twice yields
// two rows; lines are never merged.
func (s *CartService) Add(userID, menuItemID uint, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, apperr.New(apperr.Validation, "Quantity must be greater than zero.")
	}
	if _, err := s.MenuRepo.Get(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Validation, "Menu item does not exist.")
		}
		return nil, err
	}

	cart, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}

	item := &entity.CartItem{MenuItemID: menuItemID, Quantity: quantity}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.AddItem(tx, cart.ID, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity changes a line's quantity after checking the line
// belongs to one of the requester's carts.
func (s *CartService) UpdateQuantity(userID, itemID uint, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, apperr.New(apperr.Validation, "Quantity must be greater than zero.")
	}
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateItemQuantity(tx, item.ID, quantity)
	})
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

func (s *CartService) Remove(userID, itemID uint) (*entity.CartItem, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, item.ID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Clear empties the cart. Order placement performs the same delete
// inside its own transaction; this path serves the explicit
// "empty my cart" request.
func (s *CartService) Clear(userID uint) error {
	cart, err := s.CartRepo.GetCart(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "No cart found for the user.")
	}
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.CartRepo.ClearItems(tx, cart.ID)
		return err
	})
}

func (s *CartService) ownedItem(userID, itemID uint) (*entity.CartItem, error) {
	item, err := s.CartRepo.GetItem(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Cart item not found.")
	}
	if err != nil {
		return nil, err
	}
	if item.Cart.UserID != userID {
		return nil, apperr.New(apperr.Authorization, "You don't have permission to modify this cart item.")
	}
	return item, nil
}
