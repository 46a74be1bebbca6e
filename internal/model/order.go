package model

import "time"

// Payment status values an order can carry. An order is written exactly once
// at checkout and never transitions afterwards.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// PlateCustomization is the customer's selection across all option kinds.
// Fields reference option discriminators, not ids. It is only persisted as a
// snapshot inside an order.
type PlateCustomization struct {
	RegistrationNumber string `json:"registrationNumber"`
	PlateSelection     string `json:"plateSelection"`
	PlateType          string `json:"plateType"`
	Badge              string `json:"badge"`
	BadgeColor         string `json:"badgeColor"`
	TextStyle          string `json:"textStyle"`
	BorderColor        string `json:"borderColor"`
	PlateSurround      string `json:"plateSurround"`
}

// OrderItem is one billed line of an order. The id is a per-order line
// sequence, and name/price are a point-in-time copy of the catalog record;
// neither is ever re-derived after the order is created.
type OrderItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Order struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	Customization PlateCustomization `gorm:"serializer:json" json:"customization"`
	OrderItems    []OrderItem        `gorm:"serializer:json" json:"orderItems"`
	TotalPrice    float64            `gorm:"not null" json:"totalPrice"`
	PaymentStatus string             `gorm:"size:32;index;not null" json:"paymentStatus"`
	PaymentID     *string            `gorm:"size:64" json:"paymentId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}
