package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/pr-poehali-dev/office-supply-webshop/state"
	"go.uber.org/zap"
)

const EventOrderPlaced = "order.placed"

// OrderPublisher delivers placed orders downstream.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error
}

type OrderService struct {
	publisher OrderPublisher
	carts     *CartService
	logger    *zap.Logger
}

// NewOrderService wires the order flow. A nil publisher only logs orders.
func NewOrderService(publisher OrderPublisher, carts *CartService, logger *zap.Logger) *OrderService {
	return &OrderService{publisher: publisher, carts: carts, logger: logger}
}

// PlaceOrder publishes the session's cart and then removes the ordered lines
// from it. The session lock is not held while publishing, so reads on the
// session stay responsive. Only one order per session may be in progress and
// the cart is left untouched when publishing fails.
func (s *OrderService) PlaceOrder(ctx context.Context, st *state.State) (*models.OrderPlacedEvent, error) {
	if !st.BeginOrder() {
		return nil, ErrOrderInFlight
	}
	defer st.EndOrder()

	st.Lock()
	dealer := st.Dealer
	items := append([]models.CartItem(nil), st.Cart.Items...)
	st.Unlock()

	if len(items) == 0 {
		return nil, ErrCartEmpty
	}
	if !dealer.Complete() {
		return nil, ErrDealerIncomplete
	}

	summary := s.carts.Summarize(models.Cart{Items: items}, dealer.Discount)
	event := models.OrderPlacedEvent{
		Event:     EventOrderPlaced,
		OrderID:   uuid.NewString(),
		SessionID: st.ID,
		Dealer:    dealer,
		Items:     items,
		Total:     summary.Total,
		Savings:   summary.Savings,
		Timestamp: time.Now().UTC(),
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
			s.logger.Error("Failed to publish order", zap.String("order_id", event.OrderID), zap.Error(err))
			return nil, fmt.Errorf("publish order: %w", err)
		}
	}

	s.logger.Info("Order placed",
		zap.String("order_id", event.OrderID),
		zap.String("dealer_inn", dealer.INN),
		zap.Int("positions", summary.Positions),
		zap.Float64("total", summary.Total),
	)

	st.Lock()
	s.carts.RemoveOrdered(&st.Cart, items)
	st.Unlock()
	return &event, nil
}
