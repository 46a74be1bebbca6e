package dto

import "plateforge/internal/model"

// Catalog create payloads. Price is a pointer so an omitted price can default
// to 0 without conflating it with an explicit 0.

type CreatePlateSelectionRequest struct {
	Value string   `json:"value"`
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

type CreatePlateTypeRequest struct {
	Name  string   `json:"name"`
	Style string   `json:"style"`
	Price *float64 `json:"price"`
}

type CreateBadgeRequest struct {
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	Price    *float64 `json:"price"`
	ImageURL string   `json:"imageUrl"`
}

type CreateBadgeColorRequest struct {
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
}

type CreateTextStyleRequest struct {
	Name  string   `json:"name"`
	Style string   `json:"style"`
	Price *float64 `json:"price"`
}

type CreateBorderColorRequest struct {
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
}

type CreatePlateSurroundRequest struct {
	Name  string   `json:"name"`
	Style string   `json:"style"`
	Price *float64 `json:"price"`
}

// Catalog patch payloads. Only non-nil fields are merged onto the stored
// record; everything else is left untouched.

type UpdatePlateSelectionRequest struct {
	Value *string  `json:"value"`
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type UpdatePlateTypeRequest struct {
	Name  *string  `json:"name"`
	Style *string  `json:"style"`
	Price *float64 `json:"price"`
}

type UpdateBadgeRequest struct {
	Name     *string  `json:"name"`
	Code     *string  `json:"code"`
	Price    *float64 `json:"price"`
	ImageURL *string  `json:"imageUrl"`
}

type UpdateBadgeColorRequest struct {
	Name    *string `json:"name"`
	HexCode *string `json:"hexCode"`
}

type UpdateTextStyleRequest struct {
	Name  *string  `json:"name"`
	Style *string  `json:"style"`
	Price *float64 `json:"price"`
}

type UpdateBorderColorRequest struct {
	Name    *string `json:"name"`
	HexCode *string `json:"hexCode"`
}

type UpdatePlateSurroundRequest struct {
	Name  *string  `json:"name"`
	Style *string  `json:"style"`
	Price *float64 `json:"price"`
}

// PaymentData is the payment widget outcome forwarded verbatim by the client.
type PaymentData struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

// CreateOrderRequest is the checkout submission. OrderItems and TotalPrice are
// what the client displayed; the server recomputes both from the live catalog
// and rejects a disagreeing total.
type CreateOrderRequest struct {
	Customization model.PlateCustomization `json:"customization"`
	OrderItems    []model.OrderItem        `json:"orderItems"`
	TotalPrice    float64                  `json:"totalPrice"`
	PaymentData   *PaymentData             `json:"paymentData"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID uint   `json:"orderId"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// OrderStats backs the admin dashboard.
type OrderStats struct {
	TotalOrders     int           `json:"totalOrders"`
	PendingOrders   int           `json:"pendingOrders"`
	CompletedOrders int           `json:"completedOrders"`
	FailedOrders    int           `json:"failedOrders"`
	TotalRevenue    float64       `json:"totalRevenue"`
	RecentOrders    []model.Order `json:"recentOrders"`
}
