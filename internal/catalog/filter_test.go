package catalog

import (
	"testing"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"github.com/stretchr/testify/require"
)

// Trimmed version of the seeded catalog, in catalog order.
func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "SMS Lithium Battery 15kWh", Category: models.CategoryBatteries, Price: 850000, Rating: 4.8,
			Description: "High-capacity 51.2V 15kWh lithium iron phosphate battery with advanced BMS for reliable energy storage."},
		{ID: 2, Name: "MPPT Solar Charge Controller", Category: models.CategoryControllers, Price: 45000, Rating: 4.7,
			Description: "Advanced MPPT solar charge controller with LCD display for maximum power point tracking and system monitoring."},
		{ID: 3, Name: "Lithium Battery Module 25.6V", Category: models.CategoryBatteries, Price: 420000, Rating: 4.6,
			Description: "Compact 25.6V 300Ah LiFePO4 battery module perfect for residential solar installations."},
		{ID: 4, Name: "Monocrystalline Solar Panel 550W", Category: models.CategoryPanels, Price: 85000, Rating: 4.9,
			Description: "High-efficiency 550W monocrystalline solar panel with excellent performance in various weather conditions."},
		{ID: 5, Name: "FIRMAN Hybrid Inverter", Category: models.CategoryInverters, Price: 125000, Rating: 4.5,
			Description: "Advanced hybrid inverter with grid-tie capability and seamless switching between solar, battery, and grid power."},
	}
}

func TestFilterCategoryOnly(t *testing.T) {
	products := sampleCatalog()

	batteries := Filter(products, models.CategoryBatteries, "", SortName)
	require.Len(t, batteries, 2)
	for _, p := range batteries {
		require.Equal(t, models.CategoryBatteries, p.Category)
	}
	require.Equal(t, CountByCategory(products, models.CategoryBatteries), len(batteries))
}

func TestFilterAllPassesEverything(t *testing.T) {
	products := sampleCatalog()

	require.Len(t, Filter(products, CategoryAll, "", SortName), len(products))
	require.Len(t, Filter(products, "", "", SortName), len(products))
}

func TestFilterQueryMatchesNameCaseInsensitive(t *testing.T) {
	products := sampleCatalog()

	result := Filter(products, CategoryAll, "mppt", SortName)
	require.Len(t, result, 1)
	require.Equal(t, "MPPT Solar Charge Controller", result[0].Name)
	require.Equal(t, models.CategoryControllers, result[0].Category)
}

func TestFilterQueryMatchesDescription(t *testing.T) {
	products := sampleCatalog()

	result := Filter(products, CategoryAll, "grid-tie", SortName)
	require.Len(t, result, 1)
	require.Equal(t, "FIRMAN Hybrid Inverter", result[0].Name)
}

func TestFilterCategoryAndQueryCombine(t *testing.T) {
	products := sampleCatalog()

	// "lithium" appears in two battery products and nowhere else
	result := Filter(products, models.CategoryBatteries, "lithium", SortName)
	require.Len(t, result, 2)

	result = Filter(products, models.CategoryPanels, "lithium", SortName)
	require.Empty(t, result)
}

func TestSortPriceAscending(t *testing.T) {
	result := Filter(sampleCatalog(), CategoryAll, "", SortPriceLow)

	for i := 1; i < len(result); i++ {
		require.LessOrEqual(t, result[i-1].Price, result[i].Price)
	}
	require.Equal(t, int64(45000), result[0].Price)
}

func TestSortPriceDescending(t *testing.T) {
	result := Filter(sampleCatalog(), CategoryAll, "", SortPriceHigh)

	require.Equal(t, int64(850000), result[0].Price)
	for i := 1; i < len(result); i++ {
		require.GreaterOrEqual(t, result[i-1].Price, result[i].Price)
	}
}

func TestSortRatingDescendingStable(t *testing.T) {
	products := sampleCatalog()
	// Two products share a rating; the one earlier in catalog order must
	// stay first
	products[2].Rating = 4.8

	result := Filter(products, CategoryAll, "", SortRating)
	require.Equal(t, uint(4), result[0].ID) // 4.9
	require.Equal(t, uint(1), result[1].ID) // 4.8, catalog order
	require.Equal(t, uint(3), result[2].ID) // 4.8
}

func TestSortNameDefault(t *testing.T) {
	result := Filter(sampleCatalog(), CategoryAll, "", "")

	for i := 1; i < len(result); i++ {
		require.LessOrEqual(t, result[i-1].Name, result[i].Name)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := sampleCatalog()

	Filter(products, CategoryAll, "", SortPriceHigh)

	require.Equal(t, sampleCatalog(), products)
}

func TestFilterDeterministic(t *testing.T) {
	products := sampleCatalog()

	first := Filter(products, models.CategoryBatteries, "battery", SortRating)
	second := Filter(products, models.CategoryBatteries, "battery", SortRating)
	require.Equal(t, first, second)
}
