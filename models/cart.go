package models

import (
	"fmt"
	"time"
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"-"`
	Token     string     `gorm:"uniqueIndex" json:"token"` // Client-held handle, one cart per token
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CartID    uint      `gorm:"index" json:"-"`
	ProductID uint      `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"` // Unit price snapshot taken when the item was first added
	Quantity  int       `json:"quantity"`
	ImageURL  string    `json:"imageUrl"`
	Unit      string    `json:"unit"`
	AddedAt   time.Time `json:"addedAt"`
}

// StockExceededError rejects a cart mutation that would push a line item
// past the product's recorded stock. Stock carries the ceiling so the
// caller can tell the shopper how many are actually available.
type StockExceededError struct {
	ProductID uint
	Stock     int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("only %d items available in stock", e.Stock)
}

// Item returns the line item for a product, or nil if the cart has none.
func (c *Cart) Item(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem merges quantity into the cart: an existing line item for the
// product is incremented, otherwise a new one is appended with the
// product's current final price as its snapshot. The stock ceiling is
// enforced on both branches; on rejection the cart is left untouched and
// the returned error carries the ceiling. Returns the affected line item.
func (c *Cart) AddItem(product *Product, quantity int) (*CartItem, error) {
	if item := c.Item(product.ID); item != nil {
		if item.Quantity+quantity > product.Stock {
			return nil, &StockExceededError{ProductID: product.ID, Stock: product.Stock}
		}
		item.Quantity += quantity
		return item, nil
	}

	if quantity > product.Stock {
		return nil, &StockExceededError{ProductID: product.ID, Stock: product.Stock}
	}
	c.Items = append(c.Items, CartItem{
		CartID:    c.CartID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.FinalPrice(),
		Quantity:  quantity,
		ImageURL:  product.ImageURL,
		Unit:      product.Unit,
		AddedAt:   time.Now(),
	})
	return &c.Items[len(c.Items)-1], nil
}
