package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pr-poehali-dev/office-supply-webshop/controllers"
	apperrors "github.com/pr-poehali-dev/office-supply-webshop/errors"
	"github.com/pr-poehali-dev/office-supply-webshop/middleware"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/pr-poehali-dev/office-supply-webshop/repository"
	"github.com/pr-poehali-dev/office-supply-webshop/services"
	"github.com/pr-poehali-dev/office-supply-webshop/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mocks ---

type mockProcessor struct {
	processFn func(ctx context.Context, filename, contentType string, data []byte) (*models.ProcessResponse, error)
}

func (m *mockProcessor) Process(ctx context.Context, filename, contentType string, data []byte) (*models.ProcessResponse, error) {
	return m.processFn(ctx, filename, contentType, data)
}

type mockPublisher struct {
	published []models.OrderPlacedEvent
}

func (m *mockPublisher) PublishOrderPlaced(_ context.Context, event models.OrderPlacedEvent) error {
	m.published = append(m.published, event)
	return nil
}

// --- Helpers ---

type testEnv struct {
	router    *gin.Engine
	catalog   services.CatalogService
	processor *mockProcessor
	publisher *mockPublisher
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()

	catalog := services.NewCatalogService(repository.NewMemoryProductRepo(), logger)
	require.NoError(t, catalog.Seed(context.Background()))

	env := &testEnv{
		catalog: catalog,
		processor: &mockProcessor{processFn: func(context.Context, string, string, []byte) (*models.ProcessResponse, error) {
			return &models.ProcessResponse{Success: true}, nil
		}},
		publisher: &mockPublisher{},
	}

	carts := services.NewCartService()
	orders := services.NewOrderService(env.publisher, carts, logger)
	uploads := services.NewUploadService(env.processor, catalog, services.NewPriceListBuilder(), false, logger)

	catalogCtrl := controllers.NewCatalogController(catalog, services.NewTemplateService())
	cartCtrl := controllers.NewCartController(catalog, carts, services.NewDealerService(), orders)
	adminCtrl := controllers.NewAdminController(uploads, 1<<20)
	sessionCtrl := controllers.NewSessionController()

	r := gin.New()
	r.Use(apperrors.ErrorMiddleware(logger), middleware.Session(state.NewStore(100, 0)))

	r.GET("/texts", sessionCtrl.Texts)
	r.PUT("/session/language", sessionCtrl.SetLanguage)
	r.GET("/catalog/products", catalogCtrl.ListProducts)
	r.GET("/catalog/products/:id", catalogCtrl.GetProduct)
	r.GET("/catalog/categories", catalogCtrl.ListCategories)
	r.GET("/catalog/template", catalogCtrl.DownloadTemplate)
	r.GET("/dealer", cartCtrl.GetDealer)
	r.PUT("/dealer", cartCtrl.UpdateDealer)
	r.GET("/cart", cartCtrl.GetCart)
	r.DELETE("/cart", cartCtrl.ClearCart)
	r.POST("/cart/items", cartCtrl.AddItem)
	r.PUT("/cart/items/:product_id", cartCtrl.UpdateQuantity)
	r.POST("/cart/order", cartCtrl.PlaceOrder)
	r.GET("/admin/upload", adminCtrl.Status)
	r.POST("/admin/upload", adminCtrl.SelectFile)
	r.POST("/admin/upload/process", adminCtrl.Process)
	r.POST("/admin/mapping", adminCtrl.OpenMapping)
	r.GET("/admin/mapping", adminCtrl.GetMapping)
	r.PUT("/admin/mapping/columns", adminCtrl.SetColumns)
	r.PUT("/admin/mapping/fields/:index", adminCtrl.OverrideField)
	r.POST("/admin/mapping/confirm", adminCtrl.ConfirmMapping)

	env.router = r
	return env
}

// do sends a JSON request in the given session. An empty sid opens a new one.
func (e *testEnv) do(method, path, sid string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.Header.Set(middleware.SessionHeader, sid)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

type cartBody struct {
	models.CartSummary
	CanOrder bool `json:"can_order"`
}

var dealer = models.DealerInfo{Name: "ООО Канцлер", INN: "7701234567", Phone: "+7 900 000-00-00", Discount: 20}

// --- Tests ---

func TestCartController_AddItemAppliesDealerDiscount(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPut, "/dealer", "", dealer)
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, sid)

	w = env.do(http.MethodPost, "/cart/items", sid, gin.H{"product_id": "1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodPost, "/cart/items", sid, gin.H{"product_id": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[cartBody](t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, float64(36), body.Items[0].FinalPrice)
	assert.Equal(t, float64(72), body.Total)
	assert.Equal(t, float64(18), body.Savings)
	assert.True(t, body.CanOrder)
}

func TestCartController_AddItemErrors(t *testing.T) {
	env := setupRouter(t)

	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{"out of stock", gin.H{"product_id": "3"}, http.StatusConflict},
		{"unknown product", gin.H{"product_id": "404"}, http.StatusNotFound},
		{"missing product id", gin.H{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/cart/items", "", tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestCartController_UpdateQuantity(t *testing.T) {
	env := setupRouter(t)
	w := env.do(http.MethodPost, "/cart/items", "", gin.H{"product_id": "2"})
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get(middleware.SessionHeader)

	w = env.do(http.MethodPut, "/cart/items/2", sid, gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[cartBody](t, w)
	assert.Equal(t, 5, body.Units)
	assert.False(t, body.CanOrder, "dealer info is still missing")

	w = env.do(http.MethodPut, "/cart/items/2", sid, gin.H{"quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/cart/items/9", sid, gin.H{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodPut, "/cart/items/2", sid, gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[cartBody](t, w).Items)
}

func TestCartController_ClearCart(t *testing.T) {
	env := setupRouter(t)
	w := env.do(http.MethodPost, "/cart/items", "", gin.H{"product_id": "4"})
	sid := w.Header().Get(middleware.SessionHeader)

	w = env.do(http.MethodDelete, "/cart", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[cartBody](t, w).Positions)
}

func TestCartController_PlaceOrder(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/cart/order", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "empty cart")

	w = env.do(http.MethodPost, "/cart/items", "", gin.H{"product_id": "5"})
	sid := w.Header().Get(middleware.SessionHeader)

	w = env.do(http.MethodPost, "/cart/order", sid, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "dealer incomplete")

	env.do(http.MethodPut, "/dealer", sid, dealer)
	w = env.do(http.MethodPost, "/cart/order", sid, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, env.publisher.published, 1)
	event := env.publisher.published[0]
	assert.Equal(t, sid, event.SessionID)
	assert.Equal(t, dealer.INN, event.Dealer.INN)
	assert.Equal(t, float64(144), event.Total)

	w = env.do(http.MethodGet, "/cart", sid, nil)
	assert.Empty(t, decode[cartBody](t, w).Items)
}

func TestCartController_UpdateDealerValidation(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPut, "/dealer", "", models.DealerInfo{Name: "ИП Иванов", INN: "12ab", Discount: 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/dealer", "", models.DealerInfo{Name: "ИП Иванов", Discount: 75})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/dealer", "", models.DealerInfo{Name: "  ИП Иванов  ", INN: "770123456789"})
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get(middleware.SessionHeader)

	w = env.do(http.MethodGet, "/dealer", sid, nil)
	got := decode[models.DealerInfo](t, w)
	assert.Equal(t, "ИП Иванов", got.Name)
}
