package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/internal/server"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/event"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	event.Flush()

	config.Set("TOKEN_SECRET", "server-test-secret")

	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{},
	))

	handler, err := server.BuildHandler(db)
	require.NoError(t, err)
	return handler
}

// call fires one JSON request and decodes the response envelope.
func call(t *testing.T, h http.Handler, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope),
			"response is not JSON: %s", rec.Body.String())
	}
	return rec.Code, envelope
}

func signUpAndLogin(t *testing.T, h http.Handler, email, role string) (token string, userID uint) {
	t.Helper()

	code, _ := call(t, h, http.MethodPost, "/user/sign-up", "", map[string]interface{}{
		"email":    email,
		"name":     "Test User",
		"role":     role,
		"password": "long-enough-password",
	})
	require.Equal(t, http.StatusOK, code)

	code, env := call(t, h, http.MethodPost, "/user/auth", "", map[string]interface{}{
		"email":    email,
		"password": "long-enough-password",
	})
	require.Equal(t, http.StatusOK, code)

	data := env["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	return data["token"].(string), uint(user["ID"].(float64))
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	code, env := call(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", env["data"].(map[string]interface{})["status"])
}

func TestSignUpValidation(t *testing.T) {
	h := newTestHandler(t)

	code, env := call(t, h, http.MethodPost, "/user/sign-up", "", map[string]interface{}{
		"name":     "No Email",
		"password": "long-enough-password",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env["errors"].(map[string]interface{}), "email")
}

func TestAuthGates(t *testing.T) {
	h := newTestHandler(t)
	customerToken, _ := signUpAndLogin(t, h, "customer@example.com", "CUSTOMER")

	// No token → 401.
	code, _ := call(t, h, http.MethodPost, "/product", "", map[string]interface{}{
		"name": "X", "price": 1.0,
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Garbage token → 401.
	code, _ = call(t, h, http.MethodPost, "/product", "garbage", map[string]interface{}{
		"name": "X", "price": 1.0,
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Customer on an admin route → 403.
	code, _ = call(t, h, http.MethodPost, "/product", customerToken, map[string]interface{}{
		"name": "X", "price": 1.0,
	})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestCheckoutFlow(t *testing.T) {
	h := newTestHandler(t)
	adminToken, _ := signUpAndLogin(t, h, "admin@example.com", "ADMIN")
	customerToken, customerID := signUpAndLogin(t, h, "customer@example.com", "CUSTOMER")

	// Admin creates a product.
	code, env := call(t, h, http.MethodPost, "/product", adminToken, map[string]interface{}{
		"name":         "Keyboard",
		"price":        90.0,
		"stock":        5,
		"availability": true,
	})
	require.Equal(t, http.StatusOK, code)
	productID := uint(env["data"].(map[string]interface{})["ID"].(float64))

	// It shows up on the shop front.
	code, env = call(t, h, http.MethodGet, "/product/available", "", nil)
	require.Equal(t, http.StatusOK, code)
	listing := env["data"].(map[string]interface{})
	assert.Len(t, listing["items"], 1)

	// Customer checks out two units.
	code, env = call(t, h, http.MethodPost, "/order", customerToken, map[string]interface{}{
		"client": customerID,
		"products": []map[string]interface{}{
			{"productId": productID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, code, "order create: %v", env)

	order := env["data"].(map[string]interface{})
	orderID := uint(order["ID"].(float64))
	assert.Equal(t, models.OrderPending, order["status"])
	assert.Equal(t, 180.0, order["total"])

	// Stock went down.
	code, env = call(t, h, http.MethodGet, fmt.Sprintf("/product/%d", productID), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3.0, env["data"].(map[string]interface{})["stock"])

	// Overdrawing the remaining stock is a 400.
	code, env = call(t, h, http.MethodPost, "/order", customerToken, map[string]interface{}{
		"client": customerID,
		"products": []map[string]interface{}{
			{"productId": productID, "quantity": 10},
		},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env["message"], "insufficient stock")

	// History shows the one order.
	code, env = call(t, h, http.MethodGet, fmt.Sprintf("/order/history/%d", customerID), customerToken, nil)
	require.Equal(t, http.StatusOK, code)
	history := env["data"].(map[string]interface{})
	assert.Len(t, history["items"], 1)

	// Admin advances the order; the customer cannot.
	code, _ = call(t, h, http.MethodPut, fmt.Sprintf("/order/process/%d", orderID), customerToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = call(t, h, http.MethodPut, fmt.Sprintf("/order/process/%d", orderID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.OrderProcessing, env["data"].(map[string]interface{})["status"])

	// Skipping DELIVERING straight to COMPLETED violates the transition table.
	code, _ = call(t, h, http.MethodPut, fmt.Sprintf("/order/complete/%d", orderID), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestProductSoftDeleteFlow(t *testing.T) {
	h := newTestHandler(t)
	adminToken, _ := signUpAndLogin(t, h, "admin@example.com", "ADMIN")

	code, env := call(t, h, http.MethodPost, "/product", adminToken, map[string]interface{}{
		"name": "Lamp", "price": 25.0, "stock": 3, "availability": true,
	})
	require.Equal(t, http.StatusOK, code)
	productID := uint(env["data"].(map[string]interface{})["ID"].(float64))

	code, _ = call(t, h, http.MethodDelete, fmt.Sprintf("/product/%d", productID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	// Gone from the listing, still fetchable by id for order history.
	code, env = call(t, h, http.MethodGet, "/product/available", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, env["data"].(map[string]interface{})["items"])

	code, _ = call(t, h, http.MethodGet, fmt.Sprintf("/product/%d", productID), "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestUnknownOrderIs404(t *testing.T) {
	h := newTestHandler(t)
	token, _ := signUpAndLogin(t, h, "customer@example.com", "CUSTOMER")

	code, _ := call(t, h, http.MethodGet, "/order/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
