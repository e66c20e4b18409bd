package models

import "time"

// OrderPlacedEvent is published when a dealer submits the cart.
type OrderPlacedEvent struct {
	Event     string     `json:"event"` // "order.placed"
	OrderID   string     `json:"order_id"`
	SessionID string     `json:"session_id"`
	Dealer    DealerInfo `json:"dealer"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Savings   float64    `json:"savings"`
	Timestamp time.Time  `json:"timestamp"`
}
