package models

// MaxDealerDiscount is the highest discount percentage a dealer may carry.
const MaxDealerDiscount = 50

// DealerInfo describes the customer placing the order.
type DealerInfo struct {
	Name     string  `json:"name" validate:"max=200"`
	INN      string  `json:"inn" validate:"omitempty,numeric,min=10,max=12"`
	Phone    string  `json:"phone" validate:"max=32"`
	Discount float64 `json:"discount" validate:"gte=0,lte=50"`
}

// Complete reports whether the dealer carries the fields an order needs.
func (d DealerInfo) Complete() bool {
	return d.Name != "" && d.INN != ""
}
