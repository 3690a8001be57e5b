package services

import (
	"strings"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// cancelAlias is accepted case-insensitively wherever a status string
// comes in from the client and maps to the Cancelled transition.
const cancelAlias = "cancel"

func validateOrderStatus(status string) error {
	if entity.ValidOrderStatus(status) || strings.EqualFold(status, cancelAlias) {
		return nil
	}
	return apperr.New(apperr.Validation,
		"Invalid status: "+status+". Allowed statuses are: Pending, Processing, Completed, Cancelled.")
}

// UpdateStatus validates the client-supplied status against the fixed
// vocabulary and persists it. Setting the current status again is a
// no-op that succeeds. A completed order can never be cancelled.
func (s *OrderService) UpdateStatus(userID, orderID uint, status string) (*entity.Order, error) {
	order, err := s.Repo.GetOrderAuthorized(orderID, userID)
	if err != nil {
		return nil, err
	}
	if err := validateOrderStatus(status); err != nil {
		return nil, err
	}

	next := status
	if strings.EqualFold(status, cancelAlias) || status == entity.OrderStatusCancelled {
		if order.Status == entity.OrderStatusCompleted {
			return nil, apperr.New(apperr.InvalidTransition, "Cannot cancel a completed order.")
		}
		next = entity.OrderStatusCancelled
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, order.ID, next)
	})
	if err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}

// Cancel is the dedicated cancel action: same guard as the "cancel"
// alias of UpdateStatus.
func (s *OrderService) Cancel(userID, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetOrderAuthorized(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStatusCompleted {
		return nil, apperr.New(apperr.InvalidTransition, "Cannot cancel a completed order.")
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, order.ID, entity.OrderStatusCancelled)
	})
	if err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusCancelled
	return order, nil
}

// SoftDelete flags the order; the row stays as an audit record.
func (s *OrderService) SoftDelete(userID, orderID uint) error {
	order, err := s.Repo.GetOrderAuthorized(orderID, userID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.MarkDeleted(tx, order.ID)
	})
}

// Reorder clones a past order into a fresh Pending one: new delivery
// row (fresh tracking number, status reset), new payment row (same
// gateway and card metadata, status reset), new order copying the
// stored total, and mirrored item rows. The originals are not touched.
func (s *OrderService) Reorder(userID, orderID uint) (*entity.Order, error) {
	past, err := s.Repo.GetOrderAuthorized(orderID, userID)
	if err != nil {
		if apperr.KindOf(err) == apperr.Authorization {
			return nil, apperr.New(apperr.Authorization, "You don't have permission to reorder this order.")
		}
		return nil, err
	}

	var out *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var deliveryID *uint
		if past.DeliveryID != nil {
			src, err := s.DeliveryRepo.Get(*past.DeliveryID)
			if err != nil {
				return err
			}
			clone := entity.Delivery{
				UserID:         src.UserID,
				StreetAddress:  src.StreetAddress,
				City:           src.City,
				State:          src.State,
				PostalCode:     src.PostalCode,
				Country:        src.Country,
				Cost:           src.Cost,
				Status:         entity.DeliveryStatusPending,
				TrackingNumber: uuid.NewString(),
			}
			if err := s.DeliveryRepo.Create(tx, &clone); err != nil {
				return err
			}
			deliveryID = &clone.ID
		}

		var paymentID *uint
		if past.PaymentID != nil {
			src, err := s.PaymentRepo.Get(*past.PaymentID)
			if err != nil {
				return err
			}
			clone := entity.Payment{
				Gateway:         src.Gateway,
				Amount:          src.Amount,
				Status:          entity.PaymentStatusPending,
				CardholderName:  src.CardholderName,
				CardNumber:      src.CardNumber,
				CardExpiryMonth: src.CardExpiryMonth,
				CardExpiryYear:  src.CardExpiryYear,
				CardCVC:         src.CardCVC,
				PostalCode:      src.PostalCode,
			}
			if err := s.PaymentRepo.Create(tx, &clone); err != nil {
				return err
			}
			paymentID = &clone.ID
		}

		order := entity.Order{
			UserID:     userID,
			TotalPrice: past.TotalPrice,
			Status:     entity.OrderStatusPending,
			DeliveryID: deliveryID,
			PaymentID:  paymentID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		pastItems, err := s.Repo.ListOrderItems(past.ID)
		if err != nil {
			return err
		}
		items := make([]entity.OrderItem, 0, len(pastItems))
		for _, it := range pastItems {
			items = append(items, entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
			})
		}
		if err := s.Repo.CreateOrderItems(tx, items); err != nil {
			return err
		}

		order.Items = items
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
