package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/app"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "rj123"
)

var testNow = time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)

// setupApp builds the full application over a private in-memory SQLite database.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{
		AdminUsername:    testAdminUser,
		AdminPassword:    testAdminPassword,
		JWTSecret:        "test_jwt_secret",
		SessionTTL:       time.Hour,
		StatsTimezone:    "UTC",
		CORSAllowOrigins: "http://localhost:3000",
	}
	fiberApp, _, err := app.New(app.Deps{
		Config: cfg,
		DB:     db,
		Logger: zap.NewNop(),
		Now:    func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return fiberApp
}

// doRequest sends body as JSON and decodes the response into out when non-nil.
func doRequest(t *testing.T, a *fiber.App, method, path string, body any, token string, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "%s %s", method, path)
	}
	return resp.StatusCode
}

func login(t *testing.T, a *fiber.App) string {
	t.Helper()
	var resp struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	status := doRequest(t, a, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	}, "", &resp)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	return resp.Token
}

func createProduct(t *testing.T, a *fiber.App, token string, fields map[string]any) models.Product {
	t.Helper()
	var product models.Product
	status := doRequest(t, a, http.MethodPost, "/api/products", fields, token, &product)
	require.Equal(t, http.StatusCreated, status)
	require.NotZero(t, product.ID)
	return product
}

func orderBody(productID uint, quantity int) map[string]any {
	return map[string]any{
		"customer_name":  "Ayesha Khan",
		"phone":          "+92 300 1234567",
		"email":          "ayesha@example.com",
		"cnic":           "35202-1234567-1",
		"address":        "12 Mall Road, Lahore",
		"product_id":     productID,
		"quantity":       quantity,
		"payment_method": "COD",
	}
}

func TestRootAndHealth(t *testing.T) {
	a := setupApp(t)

	var root map[string]string
	assert.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/", nil, "", &root))
	assert.Contains(t, root["message"], "Welcome")

	var health map[string]string
	assert.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/health", nil, "", &health))
	assert.Equal(t, "healthy", health["status"])
}

func TestAdminLogin(t *testing.T) {
	a := setupApp(t)
	login(t, a)

	var errResp map[string]any
	status := doRequest(t, a, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdminUser,
		"password": "wrong",
	}, "", &errResp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authentication failed", errResp["message"])

	status = doRequest(t, a, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdminUser,
	}, "", &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, errResp["errors"], "password")
}

func TestProductEndpoints(t *testing.T) {
	a := setupApp(t)
	token := login(t, a)

	kurta := createProduct(t, a, token, map[string]any{
		"name":        "Embroidered Kurta",
		"description": "Cotton kurta with hand embroidery",
		"price":       2499.99,
		"category":    "men",
		"image":       "/images/kurta.jpg",
		"sizes":       []string{"S", "M", "L"},
		"colors":      []string{"White"},
	})
	assert.True(t, kurta.InStock)
	assert.True(t, kurta.Price.Equal(decimal.RequireFromString("2499.99")))

	createProduct(t, a, token, map[string]any{
		"name":     "Bridal Lehenga",
		"price":    45000,
		"category": "women",
		"inStock":  false,
	})

	var all []models.Product
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/products", nil, "", &all))
	require.Len(t, all, 2)
	assert.Equal(t, kurta.ID, all[0].ID)

	var men []models.Product
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/products?category=men", nil, "", &men))
	require.Len(t, men, 1)
	assert.Equal(t, "Embroidered Kurta", men[0].Name)

	var everything []models.Product
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/products?category=all", nil, "", &everything))
	assert.Len(t, everything, 2)

	path := fmt.Sprintf("/api/products/%d", kurta.ID)
	var fetched models.Product
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, path, nil, "", &fetched))
	assert.Equal(t, []string{"S", "M", "L"}, fetched.Sizes)

	var updated models.Product
	status := doRequest(t, a, http.MethodPut, path, map[string]any{
		"name":     "Embroidered Kurta",
		"price":    2199,
		"category": "men",
		"inStock":  false,
	}, token, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(2199)))
	assert.False(t, updated.InStock)
	assert.Empty(t, updated.Sizes)

	var errResp map[string]any
	status = doRequest(t, a, http.MethodPut, path, map[string]any{
		"name":     "Embroidered Kurta",
		"price":    -1,
		"category": "men",
	}, token, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)

	status = doRequest(t, a, http.MethodPut, "/api/products/99999", map[string]any{
		"name":     "Ghost",
		"price":    1,
		"category": "men",
	}, token, &errResp)
	assert.Equal(t, http.StatusNotFound, status)

	var raw map[string]any
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, path, nil, "", &raw))
	assert.Equal(t, []any{}, raw["sizes"])
	assert.Equal(t, []any{}, raw["colors"])

	for _, body := range []map[string]any{
		{"name": "NoPrice", "category": "men"},
		{"name": "NullPrice", "category": "men", "price": nil},
		{"name": "Fraction", "category": "men", "price": 10.005},
	} {
		assert.Equal(t, http.StatusBadRequest,
			doRequest(t, a, http.MethodPost, "/api/products", body, token, nil), "create %v", body)
		assert.Equal(t, http.StatusBadRequest,
			doRequest(t, a, http.MethodPut, path, body, token, nil), "update %v", body)
	}
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, path, nil, "", &fetched))
	assert.True(t, fetched.Price.Equal(decimal.NewFromInt(2199)), fetched.Price.String())
	assert.Equal(t, "Embroidered Kurta", fetched.Name)

	var listed []models.Product
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/products", nil, "", &listed))
	assert.Len(t, listed, 2)

	var deleted map[string]string
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodDelete, path, nil, token, &deleted))
	assert.Equal(t, "Product deleted", deleted["message"])

	assert.Equal(t, http.StatusNotFound, doRequest(t, a, http.MethodDelete, path, nil, token, nil))
	assert.Equal(t, http.StatusNotFound, doRequest(t, a, http.MethodGet, path, nil, "", nil))
	assert.Equal(t, http.StatusBadRequest, doRequest(t, a, http.MethodGet, "/api/products/abc", nil, "", nil))
}

func TestAdminRoutesRequireSession(t *testing.T) {
	a := setupApp(t)
	token := login(t, a)
	product := createProduct(t, a, token, map[string]any{"name": "Shawl", "price": 1500, "category": "women"})
	path := fmt.Sprintf("/api/products/%d", product.ID)

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/api/products", map[string]any{"name": "X", "price": 1, "category": "men"}},
		{http.MethodPut, path, map[string]any{"name": "Renamed", "price": 1, "category": "men"}},
		{http.MethodDelete, path, nil},
		{http.MethodGet, "/api/orders", nil},
		{http.MethodGet, "/api/orders/1", nil},
		{http.MethodPut, "/api/orders/1/status", map[string]string{"status": "completed"}},
		{http.MethodDelete, "/api/orders/1", nil},
		{http.MethodGet, "/api/admin/stats", nil},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, doRequest(t, a, tc.method, tc.path, tc.body, "", nil))
			assert.Equal(t, http.StatusUnauthorized, doRequest(t, a, tc.method, tc.path, tc.body, "not-a-token", nil))
		})
	}

	var all []models.Product
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/products", nil, "", &all))
	require.Len(t, all, 1)
	assert.Equal(t, "Shawl", all[0].Name)
}

func TestOrderLifecycle(t *testing.T) {
	a := setupApp(t)
	token := login(t, a)
	product := createProduct(t, a, token, map[string]any{"name": "Lawn Suit", "price": 2500, "category": "women"})

	body := orderBody(product.ID, 3)
	body["product_name"] = "Something Else"
	body["total_price"] = 1
	var order models.Order
	require.Equal(t, http.StatusCreated, doRequest(t, a, http.MethodPost, "/api/orders", body, "", &order))
	assert.NotZero(t, order.ID)
	assert.Equal(t, "Lawn Suit", order.ProductName)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(7500)), order.TotalPrice.String())
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.CreatedAt.Equal(testNow))

	var errResp map[string]any
	assert.Equal(t, http.StatusNotFound, doRequest(t, a, http.MethodPost, "/api/orders", orderBody(99999, 1), "", &errResp))

	missingEmail := orderBody(product.ID, 1)
	delete(missingEmail, "email")
	require.Equal(t, http.StatusBadRequest, doRequest(t, a, http.MethodPost, "/api/orders", missingEmail, "", &errResp))
	assert.Contains(t, errResp["errors"], "email")

	badPayment := orderBody(product.ID, 1)
	badPayment["payment_method"] = "Card"
	assert.Equal(t, http.StatusBadRequest, doRequest(t, a, http.MethodPost, "/api/orders", badPayment, "", nil))

	var orders []models.Order
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/orders", nil, token, &orders))
	require.Len(t, orders, 1)

	path := fmt.Sprintf("/api/orders/%d", order.ID)
	var fetched models.Order
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, path, nil, token, &fetched))
	assert.Equal(t, "ayesha@example.com", fetched.Email)

	assert.Equal(t, http.StatusBadRequest,
		doRequest(t, a, http.MethodPut, path+"/status", map[string]string{"status": "shipped"}, token, nil))
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, path, nil, token, &fetched))
	assert.Equal(t, models.OrderStatusPending, fetched.Status)

	var updated models.Order
	require.Equal(t, http.StatusOK,
		doRequest(t, a, http.MethodPut, path+"/status", map[string]string{"status": "completed"}, token, &updated))
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)
	assert.True(t, updated.TotalPrice.Equal(decimal.NewFromInt(7500)))

	assert.Equal(t, http.StatusNotFound,
		doRequest(t, a, http.MethodPut, "/api/orders/99999/status", map[string]string{"status": "completed"}, token, nil))

	var deleted map[string]string
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodDelete, path, nil, token, &deleted))
	assert.Equal(t, "Order deleted", deleted["message"])
	assert.Equal(t, http.StatusNotFound, doRequest(t, a, http.MethodDelete, path, nil, token, nil))
	assert.Equal(t, http.StatusNotFound, doRequest(t, a, http.MethodDelete, "/api/orders/99999", nil, token, nil))
}

func TestAdminStats(t *testing.T) {
	a := setupApp(t)
	token := login(t, a)
	product := createProduct(t, a, token, map[string]any{"name": "Lawn Suit", "price": 2500, "category": "women"})

	var first, second models.Order
	require.Equal(t, http.StatusCreated, doRequest(t, a, http.MethodPost, "/api/orders", orderBody(product.ID, 3), "", &first))
	require.Equal(t, http.StatusCreated, doRequest(t, a, http.MethodPost, "/api/orders", orderBody(product.ID, 1), "", &second))
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", first.ID),
		map[string]string{"status": "completed"}, token, nil))

	var stats models.Stats
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/admin/stats", nil, token, &stats))
	assert.Equal(t, 1, stats.CompletedToday)
	assert.Equal(t, 1, stats.CompletedThisWeek)
	assert.Equal(t, 1, stats.CompletedThisMonth)
	assert.True(t, stats.SalesToday.Equal(decimal.NewFromInt(7500)), stats.SalesToday.String())
	assert.True(t, stats.SalesThisMonth.Equal(decimal.NewFromInt(7500)))
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)

	var again models.Stats
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/admin/stats", nil, token, &again))
	assert.Equal(t, stats.TotalOrders, again.TotalOrders)
	assert.True(t, stats.SalesThisWeek.Equal(again.SalesThisWeek))
}

func TestStorefrontEndpoints(t *testing.T) {
	a := setupApp(t)

	var cats struct {
		Categories []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/categories", nil, "", &cats))
	require.Len(t, cats.Categories, 3)
	assert.Equal(t, "men", cats.Categories[0].ID)
	assert.Equal(t, "all", cats.Categories[2].ID)

	var contactResp map[string]string
	status := doRequest(t, a, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Bilal",
		"email":   "bilal@example.com",
		"subject": "Sizing",
		"message": "Do you stock XXL?",
	}, "", &contactResp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", contactResp["status"])

	var errResp map[string]any
	status = doRequest(t, a, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Bilal",
		"email":   "not-an-email",
		"message": "hi",
	}, "", &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, errResp["errors"], "email")
}

func TestWishlistEndpoints(t *testing.T) {
	a := setupApp(t)
	token := login(t, a)
	product := createProduct(t, a, token, map[string]any{"name": "Shawl", "price": 1500, "category": "women"})
	itemPath := fmt.Sprintf("/api/wishlist/guest-42/%d", product.ID)

	var wishlist models.Wishlist
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodGet, "/api/wishlist/guest-42", nil, "", &wishlist))
	assert.Empty(t, wishlist.ProductIDs)

	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodPut, itemPath, nil, "", &wishlist))
	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodPut, itemPath, nil, "", &wishlist))
	assert.Equal(t, []uint{product.ID}, wishlist.ProductIDs)

	assert.Equal(t, http.StatusNotFound, doRequest(t, a, http.MethodPut, "/api/wishlist/guest-42/99999", nil, "", nil))

	require.Equal(t, http.StatusOK, doRequest(t, a, http.MethodDelete, itemPath, nil, "", &wishlist))
	assert.Empty(t, wishlist.ProductIDs)
	assert.Equal(t, http.StatusNotFound, doRequest(t, a, http.MethodDelete, itemPath, nil, "", nil))
}
