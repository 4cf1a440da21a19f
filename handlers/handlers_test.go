package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/catalog"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/chatbot"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves a fixed product list without a database.
type fakeCatalog struct {
	products []models.Product
}

func (f *fakeCatalog) List(_ context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeCatalog) GetByID(_ context.Context, id uint) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, catalog.ErrNotFound
}

// fakeOrders records created orders in memory.
type fakeOrders struct {
	created []models.Order
}

func (f *fakeOrders) Create(_ context.Context, order *models.Order) error {
	f.created = append(f.created, *order)
	return nil
}

// fakeBot returns a canned reply or a canned error.
type fakeBot struct {
	reply string
	err   error
}

func (f *fakeBot) Reply(_ context.Context, _ string, _ []chatbot.Turn) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testProducts() []models.Product {
	return []models.Product{
		{
			ID:       1,
			Name:     "Monocrystalline Solar Panel 550W",
			Category: models.CategoryPanels,
			Price:    85000,
			InStock:  true,
			Rating:   4.9,
		},
		{
			ID:       2,
			Name:     "MPPT Solar Charge Controller",
			Category: models.CategoryControllers,
			Price:    45000,
			InStock:  true,
			Rating:   4.6,
		},
		{
			ID:       3,
			Name:     "SMS Lithium Battery 15kWh",
			Category: models.CategoryBatteries,
			Price:    850000,
			InStock:  true,
			Rating:   4.8,
		},
	}
}

func performJSON(t *testing.T, app *fiber.App, method, target string, body any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}
