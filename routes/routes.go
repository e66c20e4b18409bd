package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pr-poehali-dev/office-supply-webshop/controllers"
	apperrors "github.com/pr-poehali-dev/office-supply-webshop/errors"
	"github.com/pr-poehali-dev/office-supply-webshop/middleware"
	"github.com/pr-poehali-dev/office-supply-webshop/state"
	"go.uber.org/zap"
)

type Controllers struct {
	Catalog *controllers.CatalogController
	Cart    *controllers.CartController
	Admin   *controllers.AdminController
	Session *controllers.SessionController
}

// RegisterRoutes mounts the storefront API. Everything except /health runs
// inside a session.
func RegisterRoutes(r *gin.Engine, store *state.Store, ctrl Controllers, logger *zap.Logger) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/")
	api.Use(apperrors.ErrorMiddleware(logger), middleware.Session(store))

	api.GET("/texts", ctrl.Session.Texts)
	api.PUT("/session/language", ctrl.Session.SetLanguage)

	catalog := api.Group("/catalog")
	{
		catalog.GET("/products", ctrl.Catalog.ListProducts)
		catalog.GET("/products/:id", ctrl.Catalog.GetProduct)
		catalog.GET("/categories", ctrl.Catalog.ListCategories)
		catalog.GET("/template", ctrl.Catalog.DownloadTemplate)
	}

	api.GET("/dealer", ctrl.Cart.GetDealer)
	api.PUT("/dealer", ctrl.Cart.UpdateDealer)

	cart := api.Group("/cart")
	{
		cart.GET("", ctrl.Cart.GetCart)
		cart.DELETE("", ctrl.Cart.ClearCart)
		cart.POST("/items", ctrl.Cart.AddItem)
		cart.PUT("/items/:product_id", ctrl.Cart.UpdateQuantity)
		cart.POST("/order", ctrl.Cart.PlaceOrder)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/upload", ctrl.Admin.Status)
		admin.POST("/upload", ctrl.Admin.SelectFile)
		admin.POST("/upload/process", ctrl.Admin.Process)

		admin.POST("/mapping", ctrl.Admin.OpenMapping)
		admin.GET("/mapping", ctrl.Admin.GetMapping)
		admin.PUT("/mapping/columns", ctrl.Admin.SetColumns)
		admin.PUT("/mapping/fields/:index", ctrl.Admin.OverrideField)
		admin.POST("/mapping/confirm", ctrl.Admin.ConfirmMapping)
	}
}
