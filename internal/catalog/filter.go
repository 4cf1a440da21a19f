package catalog

import (
	"sort"
	"strings"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"
)

// CategoryAll passes every product through the category filter.
const CategoryAll = "all"

// Sort keys accepted by Filter.
const (
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// Filter derives the displayed product list from the full catalog:
// exact category match (or "all"), case-insensitive substring query
// against name or description, then a stable sort so ties keep catalog
// order. The input slice is never modified.
func Filter(products []models.Product, category, query, sortBy string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	default: // SortName
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}

	return filtered
}

// CountByCategory counts catalog entries in a category; CategoryAll
// counts everything.
func CountByCategory(products []models.Product, category string) int {
	if category == CategoryAll {
		return len(products)
	}
	count := 0
	for _, p := range products {
		if p.Category == category {
			count++
		}
	}
	return count
}
