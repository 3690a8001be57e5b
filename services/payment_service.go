package services

import (
	"errors"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/apperr"
	"github.com/amalakkad93/StarcoEat/repository"

	"gorm.io/gorm"
)

type PaymentService struct {
	DB   *gorm.DB
	Repo *repository.PaymentRepository
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{DB: db, Repo: repo}
}

type CreatePaymentIn struct {
	Gateway string  `json:"gateway" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
	Status  string  `json:"status" binding:"required"`

	CardholderName  string `json:"cardholderName"`
	CardNumber      string `json:"cardNumber"`
	CardExpiryMonth string `json:"cardExpiryMonth"`
	CardExpiryYear  string `json:"cardExpiryYear"`
	CardCVC         string `json:"cardCvc"`
	PostalCode      string `json:"postalCode"`
}

type UpdatePaymentIn struct {
	Gateway *string  `json:"gateway"`
	Amount  *float64 `json:"amount"`
	Status  *string  `json:"status"`
}

func (s *PaymentService) List() ([]entity.Payment, error) {
	return s.Repo.List()
}

func (s *PaymentService) Get(id uint) (*entity.Payment, error) {
	p, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "Payment not found")
	}
	return p, err
}

func (s *PaymentService) Create(in *CreatePaymentIn) (*entity.Payment, error) {
	if !entity.ValidPaymentGateway(in.Gateway) {
		return nil, apperr.New(apperr.Validation, "Invalid payment gateway: "+in.Gateway)
	}
	if !entity.ValidPaymentStatus(in.Status) {
		return nil, apperr.New(apperr.Validation, "Invalid payment status: "+in.Status)
	}

	p := entity.Payment{
		Gateway: in.Gateway,
		Amount:  in.Amount,
		Status:  in.Status,
	}
	if in.Gateway == entity.PaymentGatewayCreditCard {
		p.CardholderName = in.CardholderName
		p.CardNumber = in.CardNumber
		p.CardExpiryMonth = in.CardExpiryMonth
		p.CardExpiryYear = in.CardExpiryYear
		p.CardCVC = in.CardCVC
		p.PostalCode = in.PostalCode
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update patches a payment's business fields. A payment that already
// reached Completed is frozen.
func (s *PaymentService) Update(id uint, in *UpdatePaymentIn) (*entity.Payment, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if p.Status == entity.PaymentStatusCompleted {
		return nil, apperr.New(apperr.Validation, "Payment status is 'Completed'")
	}

	if in.Gateway != nil {
		if !entity.ValidPaymentGateway(*in.Gateway) {
			return nil, apperr.New(apperr.Validation, "Invalid payment gateway: "+*in.Gateway)
		}
		p.Gateway = *in.Gateway
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	if in.Status != nil {
		if !entity.ValidPaymentStatus(*in.Status) {
			return nil, apperr.New(apperr.Validation, "Invalid payment status: "+*in.Status)
		}
		p.Status = *in.Status
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Update(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, id)
	})
}
