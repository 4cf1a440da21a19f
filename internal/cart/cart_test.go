package cart

import (
	"testing"

	"github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

	"github.com/stretchr/testify/require"
)

var (
	productA = models.Product{ID: 1, Name: "Monocrystalline Solar Panel 550W", Price: 85000, ImageURL: "/uploads/products/mono-panel-550w.png"}
	productB = models.Product{ID: 2, Name: "MPPT Solar Charge Controller", Price: 45000, ImageURL: "/uploads/products/mppt-controller.png"}
)

func TestAddAccumulatesQuantity(t *testing.T) {
	var c Cart

	for i := 0; i < 5; i++ {
		c.Add(productA)
	}

	require.Len(t, c.Items, 1)
	require.Equal(t, 5, c.Items[0].Quantity)
	require.Equal(t, 5, c.ItemCount())
}

func TestAddSnapshotsProductFields(t *testing.T) {
	var c Cart

	c.Add(productA)

	item := c.Items[0]
	require.Equal(t, productA.ID, item.ProductID)
	require.Equal(t, productA.Name, item.Name)
	require.Equal(t, productA.Price, item.Price)
	require.Equal(t, productA.ImageURL, item.ImageURL)
}

func TestTotalExactArithmetic(t *testing.T) {
	var c Cart

	// ProductA price 85000 qty 2, ProductB price 45000 qty 1
	c.Add(productA)
	c.Add(productA)
	c.Add(productB)

	require.Equal(t, int64(215000), c.Total())
	require.Equal(t, 3, c.ItemCount())
}

func TestTotalTracksMutations(t *testing.T) {
	var c Cart

	c.Add(productA)
	c.UpdateQuantity(productA.ID, 10)
	require.Equal(t, int64(850000), c.Total())

	c.Add(productB)
	c.UpdateQuantity(productB.ID, 3)
	require.Equal(t, int64(850000+3*45000), c.Total())

	c.Remove(productA.ID)
	require.Equal(t, int64(3*45000), c.Total())
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	var c Cart

	c.Add(productA)
	c.UpdateQuantity(productA.ID, 0)
	require.Equal(t, 1, c.Items[0].Quantity)

	c.UpdateQuantity(productA.ID, -4)
	require.Equal(t, 1, c.Items[0].Quantity)

	// Entry stays until explicitly removed
	require.Len(t, c.Items, 1)
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	var c Cart

	c.Add(productA)
	c.UpdateQuantity(99, 7)

	require.Len(t, c.Items, 1)
	require.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemoveExcludesFromCount(t *testing.T) {
	var c Cart

	c.Add(productA)
	c.Add(productA)
	c.Add(productB)

	c.Remove(productA.ID)

	require.Equal(t, 1, c.ItemCount())
	require.Nil(t, c.find(productA.ID))
}

func TestRemoveAbsentProductIsNoop(t *testing.T) {
	var c Cart

	c.Add(productB)
	c.Remove(99)

	require.Len(t, c.Items, 1)
}

func TestClearEmptiesEverything(t *testing.T) {
	var c Cart

	c.Add(productA)
	c.Add(productB)
	c.Clear()

	require.True(t, c.IsEmpty())
	require.Equal(t, 0, c.ItemCount())
	require.Equal(t, int64(0), c.Total())
}

func TestInsertionOrderPreserved(t *testing.T) {
	var c Cart

	c.Add(productB)
	c.Add(productA)
	c.Add(productB)

	require.Equal(t, productB.ID, c.Items[0].ProductID)
	require.Equal(t, productA.ID, c.Items[1].ProductID)
}
