package repository

import (
	"github.com/amalakkad93/StarcoEat/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository { return &FavoriteRepository{DB: db} }

func (r *FavoriteRepository) ListForUser(userID uint) ([]entity.Favorite, error) {
	var out []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *FavoriteRepository) Create(f *entity.Favorite) error {
	return r.DB.Create(f).Error
}

func (r *FavoriteRepository) Delete(userID, restaurantID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Unscoped().
		Delete(&entity.Favorite{})
	return res.RowsAffected, res.Error
}
