package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DeliveryStatusPending   = "Pending"
	DeliveryStatusShipped   = "Shipped"
	DeliveryStatusDelivered = "Delivered"
)

type Delivery struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	StreetAddress string  `gorm:"size:255" json:"streetAddress"`
	City          string  `gorm:"size:100" json:"city"`
	State         string  `gorm:"size:100" json:"state"`
	PostalCode    string  `gorm:"size:20" json:"postalCode"`
	Country       string  `gorm:"size:100" json:"country"`
	Cost          float64 `json:"cost"`

	Status            string     `gorm:"size:50" json:"status"`
	TrackingNumber    string     `gorm:"size:255" json:"trackingNumber"`
	ShippedAt         *time.Time `json:"shippedAt,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}
