package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amalakkad93/StarcoEat/configs"
	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	token  string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{}, &entity.MenuItemImg{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Delivery{}, &entity.Payment{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{}, &entity.ReviewImg{},
		&entity.Favorite{},
	))

	cfg := &configs.Config{
		Port:      "0",
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return &testApp{router: r, db: db}
}

func (a *testApp) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func (a *testApp) signIn(t *testing.T) uint {
	t.Helper()
	w, _ := a.do(t, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := a.do(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	a.token = body["token"].(string)
	user := body["user"].(map[string]any)
	return uint(user["id"].(float64))
}

func (a *testApp) seedMenu(t *testing.T) (entity.MenuItem, entity.MenuItem) {
	t.Helper()
	rest := entity.Restaurant{Name: "Flow Kitchen", FoodType: "Test"}
	require.NoError(t, a.db.Create(&rest).Error)
	itemA := entity.MenuItem{RestaurantID: rest.ID, Name: "Item A", Type: "entree", Price: 5.00}
	itemB := entity.MenuItem{RestaurantID: rest.ID, Name: "Item B", Type: "entree", Price: 12.50}
	require.NoError(t, a.db.Create(&itemA).Error)
	require.NoError(t, a.db.Create(&itemB).Error)
	return itemA, itemB
}

func TestCheckoutFlow(t *testing.T) {
	app := newTestApp(t)
	uid := app.signIn(t)
	itemA, itemB := app.seedMenu(t)

	// empty cart checkout is refused before anything exists
	w, body := app.do(t, http.MethodPost, "/orders/create_order", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Shopping cart is empty.", body["error"])

	// fill the cart: 2 x $5.00 + 1 x $12.50
	w, _ = app.do(t, http.MethodPost, "/cart/1/items", gin.H{"menuItemId": itemA.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = app.do(t, http.MethodPost, "/cart/1/items", gin.H{"menuItemId": itemB.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body = app.do(t, http.MethodGet, "/cart/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	metadata := body["metadata"].(map[string]any)
	require.EqualValues(t, 2, metadata["totalItems"])

	// checkout
	w, body = app.do(t, http.MethodPost, "/orders/create_order", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.InDelta(t, 22.50, body["totalPrice"].(float64), 1e-9)
	require.Equal(t, "Pending", body["status"])
	orderID := uint(body["id"].(float64))

	// cart was consumed
	w, body = app.do(t, http.MethodGet, "/cart/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	metadata = body["metadata"].(map[string]any)
	require.EqualValues(t, 0, metadata["totalItems"])

	// order shows up for its owner
	w, body = app.do(t, http.MethodGet, fmt.Sprintf("/orders/user/%d", uid), nil)
	require.Equal(t, http.StatusOK, w.Code)
	entities := body["entities"].(map[string]any)
	orders := entities["orders"].(map[string]any)
	require.Len(t, orders["allIds"].([]any), 1)

	// lowercase cancel alias
	w, body = app.do(t, http.MethodPut, fmt.Sprintf("/orders/%d/status", orderID), gin.H{"status": "cancel"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Cancelled", body["status"])
}

func TestCancelCompletedOrderOverHTTP(t *testing.T) {
	app := newTestApp(t)
	app.signIn(t)
	itemA, _ := app.seedMenu(t)

	w, _ := app.do(t, http.MethodPost, "/cart/1/items", gin.H{"menuItemId": itemA.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	w, body := app.do(t, http.MethodPost, "/orders/create_order", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(body["id"].(float64))

	w, _ = app.do(t, http.MethodPut, fmt.Sprintf("/orders/%d/status", orderID), gin.H{"status": "Completed"})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = app.do(t, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", orderID), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Cannot cancel a completed order.", body["error"])
}

func TestPaymentsEnvelope(t *testing.T) {
	app := newTestApp(t)
	app.signIn(t)

	w, body := app.do(t, http.MethodPost, "/payments", gin.H{
		"gateway": "Stripe",
		"amount":  9.99,
		"status":  "Pending",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Nil(t, body["error"])
	data := body["data"].(map[string]any)
	paymentID := uint(data["ID"].(float64))

	w, body = app.do(t, http.MethodGet, fmt.Sprintf("/payments/%d", paymentID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, body["error"])

	w, body = app.do(t, http.MethodGet, "/payments/424242", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Payment not found", body["error"])
	require.Nil(t, body["data"])
}

func TestRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/cart/current"},
		{http.MethodPost, "/orders/create_order"},
		{http.MethodGet, "/payments"},
	} {
		w, _ := app.do(t, route.method, route.path, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}
