package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/cartstore"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/whatsapp"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Orders records dispatched carts for the admin panel.
type Orders interface {
	Create(ctx context.Context, order *models.Order) error
}

type gormOrders struct {
	db *gorm.DB
}

func NewGormOrders(db *gorm.DB) Orders {
	return &gormOrders{db: db}
}

func (g *gormOrders) Create(ctx context.Context, order *models.Order) error {
	return g.db.WithContext(ctx).Create(order).Error
}

type CheckoutHandler struct {
	Store          cartstore.Store
	Orders         Orders
	WhatsAppNumber string
}

func NewCheckoutHandler(store cartstore.Store, orders Orders, whatsappNumber string) *CheckoutHandler {
	return &CheckoutHandler{Store: store, Orders: orders, WhatsAppNumber: whatsappNumber}
}

// CheckoutRequest carries the customer info collected by the checkout
// form. All fields are required; nothing is persisted beyond the order
// record and the outgoing message.
type CheckoutRequest struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`
}

func validateCustomer(req *CheckoutRequest) []models.ErrorDetail {
	var details []models.ErrorDetail

	if strings.TrimSpace(req.Name) == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "name", Message: "Full name is required"})
	}
	if strings.TrimSpace(req.WhatsApp) == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "whatsapp", Message: "WhatsApp number is required"})
	}
	if strings.TrimSpace(req.Address) == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "address", Message: "Delivery address is required"})
	}

	return details
}

// Checkout - POST /api/checkout
// Formats the cart and customer info into the order message, returns
// the wa.me link for the client to open, records the order for the
// admin panel, and clears the cart. There is no payment call here and
// none should be added: the WhatsApp conversation is the order channel.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if details := validateCustomer(&req); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Please fill in all customer information fields",
				models.ValidationErrors{Errors: details}))
	}

	token := c.Get(CartTokenHeader)
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Your cart is empty"})
	}

	crt, err := h.Store.Get(c.Context(), token)
	if errors.Is(err, cartstore.ErrNotFound) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Your cart is empty"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load cart"})
	}
	if crt.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Your cart is empty"})
	}

	total := crt.Total()
	message := whatsapp.OrderMessage(req.Name, req.WhatsApp, req.Address, crt.Items, total)
	link := whatsapp.Link(h.WhatsAppNumber, message)

	order := models.Order{
		OrderNumber:      uuid.NewString(),
		CustomerName:     req.Name,
		CustomerWhatsApp: req.WhatsApp,
		DeliveryAddress:  req.Address,
		TotalAmount:      total,
		Status:           models.OrderStatusPending,
	}
	for _, item := range crt.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			UnitPrice:   item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal(),
		})
	}

	// The hand-off is the checkout; a failed order record must not block it
	if err := h.Orders.Create(c.Context(), &order); err != nil {
		log.Printf("Failed to record order %s: %v", order.OrderNumber, err)
	}

	if err := h.Store.Delete(c.Context(), token); err != nil {
		log.Printf("Failed to clear cart %s after checkout: %v", token, err)
	}

	return c.JSON(fiber.Map{
		"message": "Order ready to send",
		"data": fiber.Map{
			"whatsapp_url":    link,
			"order_number":    order.OrderNumber,
			"total":           total,
			"total_formatted": whatsapp.FormatNaira(total),
		},
	})
}
