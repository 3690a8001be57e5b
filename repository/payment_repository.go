package repository

import (
	"github.com/amalakkad93/StarcoEat/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) List() ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Order("id ASC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) Get(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) Update(tx *gorm.DB, p *entity.Payment) error {
	return tx.Save(p).Error
}

func (r *PaymentRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.Payment{}, id).Error
}
