package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/cartstore"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newCartApp(store cartstore.Store) *fiber.App {
	handler := NewCartHandler(store, &fakeCatalog{products: testProducts()})

	app := fiber.New()
	app.Get("/api/cart", handler.GetCart)
	app.Post("/api/cart/items", handler.AddItem)
	app.Put("/api/cart/items/:productID", handler.UpdateItem)
	app.Delete("/api/cart/items/:productID", handler.RemoveItem)
	app.Delete("/api/cart", handler.ClearCart)
	return app
}

func cartData(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", body)
	return data
}

func cartItems(t *testing.T, data map[string]any) []map[string]any {
	t.Helper()
	raw, ok := data["items"].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		items = append(items, entry.(map[string]any))
	}
	return items
}

func TestGetCartStartsEmpty(t *testing.T) {
	app := newCartApp(cartstore.NewMemoryStore())

	resp, body := performJSON(t, app, http.MethodGet, "/api/cart", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := cartData(t, body)
	require.NotEmpty(t, data["cart_token"])
	require.Empty(t, cartItems(t, data))
	require.Equal(t, float64(0), data["total"])
	require.Equal(t, "₦0", data["total_formatted"])
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	app := newCartApp(cartstore.NewMemoryStore())

	resp, body := performJSON(t, app, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 1}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := cartData(t, body)
	token := data["cart_token"].(string)
	require.NotEmpty(t, token)

	headers := map[string]string{CartTokenHeader: token}
	resp, body = performJSON(t, app, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 1}, headers)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data = cartData(t, body)
	items := cartItems(t, data)
	require.Len(t, items, 1)
	require.Equal(t, float64(2), items[0]["quantity"])
	require.Equal(t, "Monocrystalline Solar Panel 550W", items[0]["name"])
	require.Equal(t, float64(2), data["item_count"])
	require.Equal(t, float64(170000), data["total"])
}

func TestAddItemUnknownProduct(t *testing.T) {
	app := newCartApp(cartstore.NewMemoryStore())

	resp, body := performJSON(t, app, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 99}, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Product not found", body["error"])
}

func TestUpdateItemClampsQuantityToOne(t *testing.T) {
	app := newCartApp(cartstore.NewMemoryStore())

	_, body := performJSON(t, app, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 2}, nil)
	token := cartData(t, body)["cart_token"].(string)
	headers := map[string]string{CartTokenHeader: token}

	resp, body := performJSON(t, app, http.MethodPut, "/api/cart/items/2", UpdateItemRequest{Quantity: 0}, headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := cartItems(t, cartData(t, body))
	require.Len(t, items, 1)
	require.Equal(t, float64(1), items[0]["quantity"])

	resp, body = performJSON(t, app, http.MethodPut, "/api/cart/items/2", UpdateItemRequest{Quantity: 5}, headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := cartData(t, body)
	items = cartItems(t, data)
	require.Equal(t, float64(5), items[0]["quantity"])
	require.Equal(t, float64(225000), data["total"])
}

func TestRemoveItemLeavesRest(t *testing.T) {
	app := newCartApp(cartstore.NewMemoryStore())

	_, body := performJSON(t, app, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 1}, nil)
	token := cartData(t, body)["cart_token"].(string)
	headers := map[string]string{CartTokenHeader: token}

	performJSON(t, app, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 2}, headers)

	resp, body := performJSON(t, app, http.MethodDelete, "/api/cart/items/1", nil, headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := cartData(t, body)
	items := cartItems(t, data)
	require.Len(t, items, 1)
	require.Equal(t, float64(2), items[0]["product_id"])
	require.Equal(t, float64(45000), data["total"])
}

func TestClearCartForgetsSession(t *testing.T) {
	store := cartstore.NewMemoryStore()
	app := newCartApp(store)

	_, body := performJSON(t, app, http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 3}, nil)
	token := cartData(t, body)["cart_token"].(string)
	headers := map[string]string{CartTokenHeader: token}

	resp, body := performJSON(t, app, http.MethodDelete, "/api/cart", nil, headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, cartItems(t, cartData(t, body)))

	_, err := store.Get(context.Background(), token)
	require.ErrorIs(t, err, cartstore.ErrNotFound)

	resp, body = performJSON(t, app, http.MethodGet, "/api/cart", nil, headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, cartItems(t, cartData(t, body)))
}
