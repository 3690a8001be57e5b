package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-user staging area before checkout. The unique index
// on UserID keeps it to one live cart per user.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
