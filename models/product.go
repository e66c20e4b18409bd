package models

// Product is a catalog entry. JSON names follow the processing endpoint's
// wire format so parsed payloads decode straight into the catalog.
type Product struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Article           string   `json:"article,omitempty"`
	Brand             string   `json:"brand,omitempty"`
	Category          string   `json:"category"`
	Price             float64  `json:"price"`
	BasePrice         float64  `json:"basePrice,omitempty"`
	RecommendedPrice  float64  `json:"recommendedPrice,omitempty"`
	Unit              string   `json:"unit,omitempty"`
	Package           string   `json:"package,omitempty"`
	Barcode           string   `json:"barcode,omitempty"`
	Image             string   `json:"image"`
	Description       string   `json:"description"`
	InStock           bool     `json:"inStock"`
	HasSpecialPricing bool     `json:"hasSpecialPricing,omitempty"`
	SpecialOffer      string   `json:"specialOffer,omitempty"`
	DiscountPercent   string   `json:"discountPercent,omitempty"`
	SpecialPrice      *float64 `json:"specialPrice,omitempty"`
}

// PricedProduct is a product as shown to a dealer, with the dealer's discount applied.
type PricedProduct struct {
	Product
	FinalPrice float64 `json:"finalPrice"`
}

// DefaultCategory is used for rows that carry no brand.
const DefaultCategory = "Канцтовары"

// PlaceholderImage is served for products without a usable photo.
const PlaceholderImage = "/img/dc9855aa-d3ba-40f6-91a6-c00afab470de.jpg"
