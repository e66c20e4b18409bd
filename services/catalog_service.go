package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/pr-poehali-dev/office-supply-webshop/repository"
	"go.uber.org/zap"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	// AllCategories disables the category filter.
	AllCategories = "all"
)

// CatalogService serves the product catalog.
type CatalogService interface {
	List(ctx context.Context, params ListProductsParams) (*ProductPage, error)
	Get(ctx context.Context, id string, discount float64) (*models.PricedProduct, error)
	Categories(ctx context.Context) ([]string, error)
	ReplaceCatalog(ctx context.Context, products []models.Product, categories []string) error
	Seed(ctx context.Context) error
}

type catalogServiceImpl struct {
	repo   repository.ProductRepo
	logger *zap.Logger
}

func NewCatalogService(repo repository.ProductRepo, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{repo: repo, logger: logger}
}

// Seed installs the starter catalog when the repository is empty.
func (s *catalogServiceImpl) Seed(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.repo.ReplaceAll(ctx, seedProducts(), seedCategories)
}

func (s *catalogServiceImpl) List(ctx context.Context, params ListProductsParams) (*ProductPage, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(params.Search))
	category := strings.TrimSpace(params.Category)
	if category == AllCategories {
		category = ""
	}

	matched := make([]models.PricedProduct, 0, len(all))
	for _, p := range all {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if params.InStock != nil && p.InStock != *params.InStock {
			continue
		}
		matched = append(matched, priced(p, params.Discount))
	}

	page, perPage := params.Page, params.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	perPage = min(perPage, MaxPerPage)

	start := min((page-1)*perPage, len(matched))
	end := min(start+perPage, len(matched))
	return &ProductPage{
		Products: matched[start:end],
		Total:    len(matched),
		Page:     page,
		PerPage:  perPage,
	}, nil
}

func (s *catalogServiceImpl) Get(ctx context.Context, id string, discount float64) (*models.PricedProduct, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pp := priced(*p, discount)
	return &pp, nil
}

func (s *catalogServiceImpl) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// ReplaceCatalog swaps in an uploaded price list. Categories are derived from
// the products when the caller has none.
func (s *catalogServiceImpl) ReplaceCatalog(ctx context.Context, products []models.Product, categories []string) error {
	if len(categories) == 0 {
		for _, p := range products {
			if p.Category != "" && !slices.Contains(categories, p.Category) {
				categories = append(categories, p.Category)
			}
		}
		slices.Sort(categories)
	}
	products = slices.Clone(products)
	for i := range products {
		if products[i].Image == "" {
			products[i].Image = models.PlaceholderImage
		}
	}
	if err := s.repo.ReplaceAll(ctx, products, categories); err != nil {
		s.logger.Error("Failed to replace catalog", zap.Error(err))
		return fmt.Errorf("replace catalog: %w", err)
	}
	s.logger.Info("Catalog replaced", zap.Int("products", len(products)), zap.Int("categories", len(categories)))
	return nil
}

func priced(p models.Product, discount float64) models.PricedProduct {
	return models.PricedProduct{Product: p, FinalPrice: FinalPrice(p.Price, discount)}
}
