package repository

import (
	"github.com/amalakkad93/StarcoEat/entity"

	"gorm.io/gorm"
)

type DeliveryRepository struct{ DB *gorm.DB }

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository { return &DeliveryRepository{DB: db} }

func (r *DeliveryRepository) Get(id uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) Create(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}
