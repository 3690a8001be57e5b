package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Review string `gorm:"type:text" json:"review"`
	Stars  int    `json:"stars"`

	Images []ReviewImg `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
