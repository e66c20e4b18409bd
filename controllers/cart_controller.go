package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/pr-poehali-dev/office-supply-webshop/errors"
	"github.com/pr-poehali-dev/office-supply-webshop/middleware"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/pr-poehali-dev/office-supply-webshop/services"
)

type CartController struct {
	catalog services.CatalogService
	carts   *services.CartService
	dealers *services.DealerService
	orders  *services.OrderService
}

func NewCartController(catalog services.CatalogService, carts *services.CartService, dealers *services.DealerService, orders *services.OrderService) *CartController {
	return &CartController{catalog: catalog, carts: carts, dealers: dealers, orders: orders}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type cartResponse struct {
	models.CartSummary
	CanOrder bool `json:"can_order"`
}

func (cc *CartController) view(st stateView) cartResponse {
	return cartResponse{
		CartSummary: cc.carts.Summarize(st.cart, st.dealer.Discount),
		CanOrder:    len(st.cart.Items) > 0 && st.dealer.Complete(),
	}
}

type stateView struct {
	cart   models.Cart
	dealer models.DealerInfo
}

// GET /cart
func (cc *CartController) GetCart(c *gin.Context) {
	st := middleware.State(c)
	st.Lock()
	v := stateView{cart: cloneCart(st.Cart), dealer: st.Dealer}
	st.Unlock()
	c.JSON(http.StatusOK, cc.view(v))
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("invalid payload", err))
		return
	}
	product, err := cc.catalog.Get(c.Request.Context(), req.ProductID, 0)
	if err != nil {
		fail(c, err)
		return
	}

	st := middleware.State(c)
	st.Lock()
	err = cc.carts.AddItem(&st.Cart, product.Product, st.Dealer.Discount)
	v := stateView{cart: cloneCart(st.Cart), dealer: st.Dealer}
	st.Unlock()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cc.view(v))
}

// PUT /cart/items/:product_id
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("invalid payload", err))
		return
	}

	st := middleware.State(c)
	st.Lock()
	err := cc.carts.UpdateQuantity(&st.Cart, c.Param("product_id"), *req.Quantity)
	v := stateView{cart: cloneCart(st.Cart), dealer: st.Dealer}
	st.Unlock()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cc.view(v))
}

// DELETE /cart
func (cc *CartController) ClearCart(c *gin.Context) {
	st := middleware.State(c)
	st.Lock()
	cc.carts.Clear(&st.Cart)
	v := stateView{cart: cloneCart(st.Cart), dealer: st.Dealer}
	st.Unlock()
	c.JSON(http.StatusOK, cc.view(v))
}

// POST /cart/order
func (cc *CartController) PlaceOrder(c *gin.Context) {
	event, err := cc.orders.PlaceOrder(c.Request.Context(), middleware.State(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "order placed", "order": event})
}

// GET /dealer
func (cc *CartController) GetDealer(c *gin.Context) {
	st := middleware.State(c)
	st.Lock()
	dealer := st.Dealer
	st.Unlock()
	c.JSON(http.StatusOK, dealer)
}

// PUT /dealer
func (cc *CartController) UpdateDealer(c *gin.Context) {
	var req models.DealerInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("invalid payload", err))
		return
	}
	dealer, err := cc.dealers.Normalize(req)
	if err != nil {
		fail(c, err)
		return
	}

	st := middleware.State(c)
	st.Lock()
	st.Dealer = dealer
	st.Unlock()
	c.JSON(http.StatusOK, dealer)
}

func cloneCart(cart models.Cart) models.Cart {
	cart.Items = append([]models.CartItem{}, cart.Items...)
	return cart
}
