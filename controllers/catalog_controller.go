package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/pr-poehali-dev/office-supply-webshop/errors"
	"github.com/pr-poehali-dev/office-supply-webshop/logger"
	"github.com/pr-poehali-dev/office-supply-webshop/middleware"
	"github.com/pr-poehali-dev/office-supply-webshop/services"
	"go.uber.org/zap"
)

type CatalogController struct {
	catalog   services.CatalogService
	templates *services.TemplateService
}

func NewCatalogController(catalog services.CatalogService, templates *services.TemplateService) *CatalogController {
	return &CatalogController{catalog: catalog, templates: templates}
}

// GET /catalog/products?search=&category=&in_stock=&page=&perPage=
func (cc *CatalogController) ListProducts(c *gin.Context) {
	page, perPage, err := parsePagination(c)
	if err != nil {
		fail(c, apperrors.BadRequest(err.Error(), err))
		return
	}
	inStock, err := parseInStock(c)
	if err != nil {
		fail(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	st := middleware.State(c)
	st.Lock()
	discount := st.Dealer.Discount
	st.Unlock()

	result, err := cc.catalog.List(c.Request.Context(), services.ListProductsParams{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		InStock:  inStock,
		Page:     page,
		PerPage:  perPage,
		Discount: discount,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /catalog/products/:id
func (cc *CatalogController) GetProduct(c *gin.Context) {
	st := middleware.State(c)
	st.Lock()
	discount := st.Dealer.Discount
	st.Unlock()

	product, err := cc.catalog.Get(c.Request.Context(), c.Param("id"), discount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /catalog/categories
func (cc *CatalogController) ListCategories(c *gin.Context) {
	categories, err := cc.catalog.Categories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": append([]string{services.AllCategories}, categories...)})
}

// GET /catalog/template?format=csv|xlsx
func (cc *CatalogController) DownloadTemplate(c *gin.Context) {
	var err error
	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", "attachment; filename=test-catalog.csv")
		err = cc.templates.WriteCSV(c.Writer)
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=test-catalog.xlsx")
		err = cc.templates.WriteXLSX(c.Writer)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}
	if err != nil {
		logger.From(c).Error("Failed to write template", zap.Error(err))
	}
}
