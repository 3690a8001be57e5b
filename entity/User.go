package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:40;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	IsGoogleUser bool   `gorm:"not null;default:false" json:"isGoogleUser"`

	// Relations — preload only when needed
	Cart      *Cart      `json:"-"`
	Orders    []Order    `json:"-"`
	Reviews   []Review   `json:"-"`
	Favorites []Favorite `json:"-"`
}
