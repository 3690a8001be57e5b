package entity

import (
	"gorm.io/gorm"
)

const (
	PaymentGatewayStripe     = "Stripe"
	PaymentGatewayPayPal     = "PayPal"
	PaymentGatewayCreditCard = "Credit Card"

	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

type Payment struct {
	gorm.Model
	Gateway string  `gorm:"size:255" json:"gateway"`
	Amount  float64 `json:"amount"`
	Status  string  `gorm:"size:255" json:"status"`

	// Gateway transaction references
	StripePaymentIntentID string `gorm:"size:255" json:"stripePaymentIntentId,omitempty"`
	StripePaymentMethodID string `gorm:"size:255" json:"stripePaymentMethodId,omitempty"`
	PaypalTransactionID   string `gorm:"size:255" json:"paypalTransactionId,omitempty"`

	// Card fields, populated only when Gateway = "Credit Card"
	CardholderName  string `gorm:"size:255" json:"cardholderName,omitempty"`
	CardNumber      string `gorm:"size:16" json:"-"`
	CardExpiryMonth string `gorm:"size:2" json:"-"`
	CardExpiryYear  string `gorm:"size:4" json:"-"`
	CardCVC         string `gorm:"size:4" json:"-"`
	PostalCode      string `gorm:"size:20" json:"postalCode,omitempty"`
}

func ValidPaymentGateway(gateway string) bool {
	switch gateway {
	case PaymentGatewayStripe, PaymentGatewayPayPal, PaymentGatewayCreditCard:
		return true
	}
	return false
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}
