package entity

import (
	"gorm.io/gorm"
)

type MenuItemImg struct {
	gorm.Model
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	ImagePath string `gorm:"size:500" json:"imagePath"`
}
