package repository

import (
	"github.com/amalakkad93/StarcoEat/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) ListForRestaurant(restaurantID uint) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) Create(rv *entity.Review) error {
	return r.DB.Create(rv).Error
}
