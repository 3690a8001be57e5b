package entity

import (
	"time"
)

// Order statuses. Free-form client input is validated against this
// vocabulary in the service layer.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

// Order is immutable after creation except for Status and IsDeleted.
// TotalPrice is computed once from the source cart and never
// recalculated; orders are audit records, so deletion is the IsDeleted
// flag rather than gorm's DeletedAt.
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	DeliveryID *uint     `json:"deliveryId"`
	Delivery   *Delivery `json:"-"`

	PaymentID *uint    `json:"paymentId"`
	Payment   *Payment `json:"-"`

	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `gorm:"size:50" json:"status"`
	DeliveryTime string  `gorm:"size:20" json:"deliveryTime"`
	IsDeleted    bool    `gorm:"not null;default:false" json:"isDeleted"`

	Items []OrderItem `json:"-"`
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
