package services

import "github.com/pr-poehali-dev/office-supply-webshop/models"

// ListProductsParams filters a catalog listing.
type ListProductsParams struct {
	Search   string
	Category string
	InStock  *bool
	Page     int
	PerPage  int
	// Discount is the caller's dealer discount, used for final prices.
	Discount float64
}

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Products []models.PricedProduct `json:"products"`
	Total    int                    `json:"total"`
	Page     int                    `json:"page"`
	PerPage  int                    `json:"per_page"`
}

// ConfirmResult is returned when a column mapping is confirmed.
type ConfirmResult struct {
	Mapping models.ConfirmedMapping `json:"mapping"`
	Outcome *models.UploadOutcome   `json:"outcome,omitempty"`
}
