package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots menu item + quantity at checkout. It does not
// snapshot the unit price; the order's TotalPrice is the authoritative
// amount.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `json:"quantity"`
}
