package service

import (
	"context"
	"log"
	"strings"

	"plateforge/internal/client"
	"plateforge/internal/dto"
	"plateforge/internal/model"
	"plateforge/internal/pricing"
	"plateforge/internal/repository"

	"github.com/shopspring/decimal"
)

// recentOrdersLimit caps the "latest orders" slice on the admin dashboard.
const recentOrdersLimit = 5

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error)
	Get(ctx context.Context, id uint) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Stats(ctx context.Context) (*dto.OrderStats, error)
}

type orderServiceImpl struct {
	catalog   CatalogService
	orderRepo repository.OrderRepository
	paypal    client.PaypalClient // nil when no PayPal credentials are configured
}

func NewOrderService(
	catalog CatalogService,
	orderRepo repository.OrderRepository,
	paypal client.PaypalClient,
) OrderService {
	return &orderServiceImpl{
		catalog:   catalog,
		orderRepo: orderRepo,
		paypal:    paypal,
	}
}

// Create stores a checkout submission. Items and total are recomputed from
// the live catalog; the client-displayed total is only accepted as a
// cross-check and a disagreement rejects the order instead of silently
// billing a different amount.
func (s *orderServiceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	c := req.Customization
	if strings.TrimSpace(c.RegistrationNumber) == "" {
		return nil, invalid("registrationNumber is required")
	}

	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if !plateSelectionKnown(cat, c.PlateSelection) {
		return nil, invalid("unknown plate selection %q", c.PlateSelection)
	}

	quote := pricing.Compute(c, cat)

	if req.TotalPrice != 0 && !sameAmount(req.TotalPrice, quote.Total) {
		return nil, invalid("submitted total %.2f does not match computed total %.2f",
			req.TotalPrice, quote.Total)
	}

	status := model.PaymentStatusPending
	var paymentID *string
	if pd := req.PaymentData; pd != nil {
		if pd.Status != "" {
			if !validPaymentStatus(pd.Status) {
				return nil, invalid("unknown payment status %q", pd.Status)
			}
			status = pd.Status
		}
		if pd.PaymentID != "" {
			id := pd.PaymentID
			paymentID = &id
		}
	}

	if s.paypal != nil && paymentID != nil {
		status = s.verifiedStatus(ctx, *paymentID, status)
	}

	order := &model.Order{
		Customization: c,
		OrderItems:    quote.Items,
		TotalPrice:    quote.Total,
		PaymentStatus: status,
		PaymentID:     paymentID,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderServiceImpl) Get(ctx context.Context, id uint) (*model.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderServiceImpl) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

func (s *orderServiceImpl) Stats(ctx context.Context) (*dto.OrderStats, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.OrderStats{TotalOrders: len(orders)}
	revenue := decimal.Zero
	for _, o := range orders {
		switch o.PaymentStatus {
		case model.PaymentStatusPending:
			stats.PendingOrders++
		case model.PaymentStatusCompleted:
			stats.CompletedOrders++
			revenue = revenue.Add(decimal.NewFromFloat(o.TotalPrice))
		case model.PaymentStatusFailed:
			stats.FailedOrders++
		}
	}
	stats.TotalRevenue = revenue.InexactFloat64()

	stats.RecentOrders, err = s.orderRepo.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// verifiedStatus asks PayPal about the forwarded payment id and overrides the
// client-claimed status with the provider's answer. A transport failure keeps
// the claimed status; the order must still be recorded.
func (s *orderServiceImpl) verifiedStatus(ctx context.Context, paymentID, claimed string) string {
	res, err := s.paypal.GetOrder(ctx, paymentID)
	if err != nil {
		log.Printf("paypal verification failed for payment %s, keeping claimed status %q: %v",
			paymentID, claimed, err)
		return claimed
	}
	if res.Status == "COMPLETED" {
		return model.PaymentStatusCompleted
	}
	return model.PaymentStatusFailed
}

func validPaymentStatus(status string) bool {
	switch status {
	case model.PaymentStatusPending, model.PaymentStatusCompleted, model.PaymentStatusFailed:
		return true
	}
	return false
}

func plateSelectionKnown(cat pricing.Catalog, value string) bool {
	for _, sel := range cat.PlateSelections {
		if sel.Value == value {
			return true
		}
	}
	return false
}

// sameAmount compares two prices at cent precision; clients sum IEEE floats
// and may be off in the last bits.
func sameAmount(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(2).Equal(decimal.NewFromFloat(b).Round(2))
}
