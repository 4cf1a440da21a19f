package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/catalog"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB      *gorm.DB
	Catalog catalog.Repository
}

func NewProductHandler(db *gorm.DB, repo catalog.Repository) *ProductHandler {
	return &ProductHandler{DB: db, Catalog: repo}
}

// ProductRequest is the admin create/update payload.
type ProductRequest struct {
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Price          int64             `json:"price"`
	OriginalPrice  *int64            `json:"original_price"`
	ImageURL       string            `json:"image_url"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	InStock        bool              `json:"in_stock"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
}

func validateProduct(req *ProductRequest) []models.ErrorDetail {
	var details []models.ErrorDetail

	if strings.TrimSpace(req.Name) == "" {
		details = append(details, models.ErrorDetail{Code: "required", Field: "name", Message: "Product name is required"})
	}
	if !models.ValidCategory(req.Category) {
		details = append(details, models.ErrorDetail{Code: "invalid", Field: "category", Message: "Category must be one of: batteries, controllers, inverters, panels"})
	}
	if req.Price <= 0 {
		details = append(details, models.ErrorDetail{Code: "invalid", Field: "price", Message: "Price must be a positive amount"})
	}
	if req.OriginalPrice != nil && *req.OriginalPrice < req.Price {
		details = append(details, models.ErrorDetail{Code: "invalid", Field: "original_price", Message: "Original price must not be below the current price"})
	}
	if req.Rating < 0 || req.Rating > 5 {
		details = append(details, models.ErrorDetail{Code: "invalid", Field: "rating", Message: "Rating must be between 0 and 5"})
	}

	return details
}

// ListProducts - GET /api/products?category=&q=&sort=
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.Catalog.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	filtered := catalog.Filter(products,
		c.Query("category", catalog.CategoryAll),
		c.Query("q"),
		c.Query("sort", catalog.SortName),
	)

	return c.JSON(fiber.Map{"data": filtered, "total": len(filtered)})
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.Catalog.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch product"})
	}

	return c.JSON(fiber.Map{"data": product})
}

// CreateProduct - POST /api/admin/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if details := validateProduct(&req); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Invalid product", models.ValidationErrors{Errors: details}))
	}

	product := models.Product{
		Name:           req.Name,
		Category:       req.Category,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		ImageURL:       req.ImageURL,
		Description:    req.Description,
		Features:       req.Features,
		Specifications: req.Specifications,
		InStock:        req.InStock,
		Rating:         req.Rating,
		Reviews:        req.Reviews,
	}

	if err := h.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": product})
}

// UpdateProduct - PUT /api/admin/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if details := validateProduct(&req); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Invalid product", models.ValidationErrors{Errors: details}))
	}

	// Update fields
	product.Name = req.Name
	product.Category = req.Category
	product.Price = req.Price
	product.OriginalPrice = req.OriginalPrice
	product.ImageURL = req.ImageURL
	product.Description = req.Description
	product.Features = req.Features
	product.Specifications = req.Specifications
	product.InStock = req.InStock
	product.Rating = req.Rating
	product.Reviews = req.Reviews

	if err := h.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update product"})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

// DeleteProduct - DELETE /api/admin/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete product"})
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}
