package entity

import (
	"gorm.io/gorm"
)

// CartItem rows are never merged: adding the same menu item twice
// produces two rows. Order placement deletes them wholesale.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `json:"quantity"`
}
