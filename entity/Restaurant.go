package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	OwnerID uint `json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Name            string  `gorm:"size:100" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	FoodType        string  `gorm:"size:100" json:"foodType"`
	BannerImagePath string  `gorm:"size:500" json:"bannerImagePath"`
	StreetAddress   string  `gorm:"size:255" json:"streetAddress"`
	City            string  `gorm:"size:100" json:"city"`
	State           string  `gorm:"size:100" json:"state"`
	PostalCode      string  `gorm:"size:20" json:"postalCode"`
	Country         string  `gorm:"size:100" json:"country"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	OpeningTime     string  `gorm:"size:20" json:"openingTime"`
	ClosingTime     string  `gorm:"size:20" json:"closingTime"`

	MenuItems []MenuItem `json:"-"`
	Reviews   []Review   `json:"-"`
}
