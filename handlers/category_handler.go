package handlers

import (
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/internal/catalog"
	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	DB      *gorm.DB
	Catalog catalog.Repository
}

func NewCategoryHandler(db *gorm.DB, repo catalog.Repository) *CategoryHandler {
	return &CategoryHandler{DB: db, Catalog: repo}
}

type categoryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GetCategories - GET /api/categories
// Returns the sidebar list: "all" first, then each category with its
// product count.
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := h.DB.Order("id asc").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch categories"})
	}

	products, err := h.Catalog.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch categories"})
	}

	views := []categoryView{
		{ID: catalog.CategoryAll, Name: "All Products", Count: len(products)},
	}
	for _, category := range categories {
		views = append(views, categoryView{
			ID:    category.Slug,
			Name:  category.Name,
			Count: catalog.CountByCategory(products, category.Slug),
		})
	}

	return c.JSON(fiber.Map{"data": views})
}
