package repository

import (
	"context"
	"errors"

	"github.com/pr-poehali-dev/office-supply-webshop/models"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepo defines the catalog storage used by the services.
type ProductRepo interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	// ReplaceAll swaps the whole catalog in one step.
	ReplaceAll(ctx context.Context, products []models.Product, categories []string) error
	Count(ctx context.Context) (int, error)
}
