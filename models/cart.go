package models

import "time"

type CartItem struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity"`
	FinalPrice float64 `json:"final_price"`
}

type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartSummary holds the totals shown next to the order form.
type CartSummary struct {
	Items     []CartItem `json:"items"`
	Positions int        `json:"positions"`
	Units     int        `json:"units"`
	Discount  float64    `json:"discount"`
	Savings   float64    `json:"savings"`
	Total     float64    `json:"total"`
}
