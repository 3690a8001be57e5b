package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name        string  `gorm:"size:100" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Type        string  `gorm:"size:50;not null" json:"type"`
	Price       float64 `json:"price"`

	Images []MenuItemImg `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
