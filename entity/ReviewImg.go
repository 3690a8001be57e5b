package entity

import (
	"gorm.io/gorm"
)

type ReviewImg struct {
	gorm.Model
	ReviewID uint   `json:"reviewId"`
	Review   Review `json:"-"`

	ImagePath string `gorm:"size:500" json:"imagePath"`
}
