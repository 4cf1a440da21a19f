package cart

import "github.com/Web-Spark-Develoer/solar-glow-ecommerce-shop/models"

// Item is one cart line: a product snapshot captured at add time plus
// the selected quantity.
type Item struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"` // whole Naira, snapshot at add time
	ImageURL  string `json:"image_url"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is the exact line total in whole Naira.
func (i Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Cart holds at most one entry per product, in insertion order.
// Quantity never drops below 1; an entry leaves the cart only through
// Remove or Clear.
type Cart struct {
	Items []Item `json:"items"`
}

func (c *Cart) find(productID uint) *Item {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Add increments the quantity when the product is already in the cart,
// otherwise inserts it with quantity 1.
func (c *Cart) Add(p models.Product) {
	if item := c.find(p.ID); item != nil {
		item.Quantity++
		return
	}
	c.Items = append(c.Items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  1,
	})
}

// UpdateQuantity sets the quantity of an existing entry. Values below 1
// clamp to 1. No-op when the product is not in the cart.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	item := c.find(productID)
	if item == nil {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	item.Quantity = quantity
}

// Remove deletes the entry if present.
func (c *Cart) Remove(productID uint) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total is the exact sum of price*quantity over all entries.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount is the sum of quantities, used for the cart badge.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
