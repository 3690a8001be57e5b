package entity

import (
	"gorm.io/gorm"
)

type Favorite struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_user_restaurant" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"uniqueIndex:idx_user_restaurant" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
