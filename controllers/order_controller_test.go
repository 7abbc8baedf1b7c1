package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telia-restaurant/models"
	"telia-restaurant/services"
)

type stubCustomers struct{}

func (stubCustomers) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return nil, models.ErrCustomerNotFound
}

func (stubCustomers) Create(ctx context.Context, cust *models.Customer) error {
	cust.ID = "cust-1"
	cust.CreatedAt = time.Now()
	return nil
}

type stubOrders struct {
	created []models.Order
}

func (s *stubOrders) Create(ctx context.Context, o *models.Order) error {
	o.ID = fmt.Sprintf("order-%d", len(s.created)+1)
	o.OrderNumber = fmt.Sprintf("ORD-%d", 1001+len(s.created))
	o.CreatedAt = time.Now()
	s.created = append(s.created, *o)
	return nil
}

func (s *stubOrders) List(ctx context.Context, status string) ([]models.Order, error) {
	return s.created, nil
}

func (s *stubOrders) UpdateStatus(ctx context.Context, orderID, status string) error {
	for i := range s.created {
		if s.created[i].ID == orderID {
			s.created[i].Status = status
			return nil
		}
	}
	return models.ErrOrderNotFound
}

func newCheckoutRouter(t *testing.T) (*gin.Engine, *services.CartService, *stubOrders) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := services.NewCartService(time.Hour)
	orders := &stubOrders{}
	svc := services.NewOrderService(stubCustomers{}, orders)
	ctrl := NewOrderController(carts, svc)

	router := gin.New()
	router.POST("/orders", ctrl.Checkout)
	router.PATCH("/admin/orders/:id/status", ctrl.UpdateOrderStatus)
	return router, carts, orders
}

func doJSON(router *gin.Engine, method, path, body, cartSession string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cartSession != "" {
		req.AddCookie(&http.Cookie{Name: "cart_session", Value: cartSession})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckout_EmptyCartReturns400(t *testing.T) {
	router, _, orders := newCheckoutRouter(t)

	w := doJSON(router, "POST", "/orders",
		`{"customer_name":"Asha","phone_number":"9999999999"}`, "sess-1")

	assert.Equal(t, 400, w.Code)
	assert.Empty(t, orders.created)
}

func TestCheckout_MissingInfoReturns400(t *testing.T) {
	router, carts, _ := newCheckoutRouter(t)
	carts.GetOrCreate("sess-1").AddItem(models.MenuItem{ID: "b3", Name: "Chicken Dum Biryani", Category: "biryani", Price: 200})

	w := doJSON(router, "POST", "/orders", `{"customer_name":"Asha"}`, "sess-1")

	assert.Equal(t, 400, w.Code)
}

func TestCheckout_CreatesOrder(t *testing.T) {
	router, carts, orders := newCheckoutRouter(t)
	item := models.MenuItem{ID: "b3", Name: "Chicken Dum Biryani", Category: "biryani", Price: 200}
	cart := carts.GetOrCreate("sess-1")
	cart.AddItem(item)
	cart.AddItem(item)

	w := doJSON(router, "POST", "/orders",
		`{"customer_name":"Asha","phone_number":"9999999999"}`, "sess-1")

	require.Equal(t, 201, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID          string `json:"id"`
			OrderNumber string `json:"order_number"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "order-1", resp.Data.ID)
	assert.Equal(t, "ORD-1001", resp.Data.OrderNumber)

	require.Len(t, orders.created, 1)
	assert.Equal(t, 400.0, orders.created[0].TotalAmount)
	assert.Equal(t, 0, cart.Len())
}

func TestUpdateOrderStatus(t *testing.T) {
	router, carts, orders := newCheckoutRouter(t)
	carts.GetOrCreate("sess-1").AddItem(models.MenuItem{ID: "b1", Name: "Veg Biryani", Category: "biryani", Price: 140})
	w := doJSON(router, "POST", "/orders",
		`{"customer_name":"Asha","phone_number":"9999999999"}`, "sess-1")
	require.Equal(t, 201, w.Code)

	w = doJSON(router, "PATCH", "/admin/orders/order-1/status", `{"status":"preparing"}`, "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "preparing", orders.created[0].Status)

	w = doJSON(router, "PATCH", "/admin/orders/order-1/status", `{"status":"shipped"}`, "")
	assert.Equal(t, 400, w.Code)

	w = doJSON(router, "PATCH", "/admin/orders/missing/status", `{"status":"ready"}`, "")
	assert.Equal(t, 404, w.Code)
}
