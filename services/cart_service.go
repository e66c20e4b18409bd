package services

import (
	"time"

	"github.com/pr-poehali-dev/office-supply-webshop/models"
)

// CartService holds the cart update rules. Callers own the cart and its locking.
type CartService struct {
	now func() time.Time
}

func NewCartService() *CartService {
	return &CartService{now: time.Now}
}

// AddItem adds one unit of product. The line's final price is recomputed with
// the discount in effect now, not the one at first add.
func (s *CartService) AddItem(cart *models.Cart, product models.Product, discount float64) error {
	if !product.InStock {
		return ErrOutOfStock
	}
	finalPrice := FinalPrice(product.Price, discount)

	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity++
			cart.Items[i].FinalPrice = finalPrice
			cart.UpdatedAt = s.now()
			return nil
		}
	}
	cart.Items = append(cart.Items, models.CartItem{
		ProductID:  product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Image:      product.Image,
		Quantity:   1,
		FinalPrice: finalPrice,
	})
	cart.UpdatedAt = s.now()
	return nil
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (s *CartService) UpdateQuantity(cart *models.Cart, productID string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID != productID {
			continue
		}
		if quantity == 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = quantity
		}
		cart.UpdatedAt = s.now()
		return nil
	}
	return ErrItemNotFound
}

// RemoveOrdered takes the ordered quantities off the cart. Lines added or
// raised after the snapshot was taken keep the difference.
func (s *CartService) RemoveOrdered(cart *models.Cart, ordered []models.CartItem) {
	for _, o := range ordered {
		for i := range cart.Items {
			if cart.Items[i].ProductID == o.ProductID {
				cart.Items[i].Quantity -= o.Quantity
				break
			}
		}
	}
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	cart.UpdatedAt = s.now()
}

func (s *CartService) Clear(cart *models.Cart) {
	cart.Items = []models.CartItem{}
	cart.UpdatedAt = s.now()
}

func (s *CartService) Summarize(cart models.Cart, discount float64) models.CartSummary {
	sum := models.CartSummary{
		Items:     cart.Items,
		Positions: len(cart.Items),
		Discount:  discount,
	}
	if sum.Items == nil {
		sum.Items = []models.CartItem{}
	}
	for _, item := range cart.Items {
		qty := float64(item.Quantity)
		sum.Units += item.Quantity
		sum.Total += item.FinalPrice * qty
		sum.Savings += (item.Price - item.FinalPrice) * qty
	}
	return sum
}
