package handlers

import (
	"errors"
	"strconv"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/cart"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/cartstore"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/catalog"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/whatsapp"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CartTokenHeader carries the opaque session cart token. Mutations on a
// request without one mint a fresh token and return it in the response.
const CartTokenHeader = "X-Cart-Token"

type CartHandler struct {
	Store   cartstore.Store
	Catalog catalog.Repository
}

func NewCartHandler(store cartstore.Store, repo catalog.Repository) *CartHandler {
	return &CartHandler{Store: store, Catalog: repo}
}

// loadCart resolves the request's cart. A missing or expired token just
// means an empty cart.
func (h *CartHandler) loadCart(c *fiber.Ctx) (string, *cart.Cart, error) {
	token := c.Get(CartTokenHeader)
	if token == "" {
		return uuid.NewString(), &cart.Cart{}, nil
	}

	crt, err := h.Store.Get(c.Context(), token)
	if errors.Is(err, cartstore.ErrNotFound) {
		return token, &cart.Cart{}, nil
	}
	if err != nil {
		return token, nil, err
	}
	return token, crt, nil
}

func cartResponse(token string, crt *cart.Cart) fiber.Map {
	return fiber.Map{
		"cart_token":      token,
		"items":           crt.Items,
		"item_count":      crt.ItemCount(),
		"total":           crt.Total(),
		"total_formatted": whatsapp.FormatNaira(crt.Total()),
	}
}

// GetCart - GET /api/cart
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	token, crt, err := h.loadCart(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load cart"})
	}

	return c.JSON(fiber.Map{"data": cartResponse(token, crt)})
}

// AddItemRequest adds one unit of a product to the cart.
type AddItemRequest struct {
	ProductID uint `json:"product_id"`
}

// AddItem - POST /api/cart/items
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	product, err := h.Catalog.GetByID(c.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch product"})
	}

	token, crt, err := h.loadCart(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load cart"})
	}

	crt.Add(*product)

	if err := h.Store.Save(c.Context(), token, crt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not save cart"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Added to cart", "data": cartResponse(token, crt)})
}

// UpdateItemRequest sets the quantity of a cart entry.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem - PUT /api/cart/items/:productID
// Quantities below 1 clamp to 1; removal is its own endpoint.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productID"))
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	token, crt, err := h.loadCart(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load cart"})
	}

	crt.UpdateQuantity(uint(productID), req.Quantity)

	if err := h.Store.Save(c.Context(), token, crt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not save cart"})
	}

	return c.JSON(fiber.Map{"message": "Cart updated", "data": cartResponse(token, crt)})
}

// RemoveItem - DELETE /api/cart/items/:productID
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productID"))
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	token, crt, err := h.loadCart(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load cart"})
	}

	crt.Remove(uint(productID))

	if err := h.Store.Save(c.Context(), token, crt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not save cart"})
	}

	return c.JSON(fiber.Map{"message": "Removed from cart", "data": cartResponse(token, crt)})
}

// ClearCart - DELETE /api/cart
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	token := c.Get(CartTokenHeader)
	if token != "" {
		if err := h.Store.Delete(c.Context(), token); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not clear cart"})
		}
	}

	return c.JSON(fiber.Map{"message": "Cart cleared", "data": cartResponse(token, &cart.Cart{})})
}
