package model

import (
	"errors"
	"strings"
)

const (
	// MinCartQuantity and MaxCartQuantity bound a single cart line.
	MinCartQuantity = 1
	MaxCartQuantity = 99
	// MaxCartLines bounds the number of distinct products in one cart.
	MaxCartLines = 100
)

// ErrCartLineNotFound is returned when updating a product absent from the cart.
var ErrCartLineNotFound = errors.New("product is not in the cart")

// ErrCartFull is returned when adding a new product to a cart at MaxCartLines.
var ErrCartFull = errors.New("cart cannot hold more than 100 different products")

// CartLine is one product in a cart. Name and UnitPrice are a snapshot taken when the line was added.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku,omitempty"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Total returns UnitPrice times Quantity.
func (l CartLine) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is an anonymous shopping cart.
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Lines) == 0
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Subtotal returns the sum of line totals.
func (c *Cart) Subtotal() float64 {
	if c == nil {
		return 0
	}
	var sum float64
	for _, l := range c.Lines {
		sum += l.Total()
	}
	return sum
}

// Add merges line into the cart, summing quantities for an existing product.
// The resulting quantity is clamped to the allowed range. A new product is
// refused once the cart holds MaxCartLines lines.
func (c *Cart) Add(line CartLine) error {
	line.ProductID = strings.TrimSpace(line.ProductID)
	if line.ProductID == "" {
		return errors.New("product id is required")
	}
	if line.Quantity < MinCartQuantity {
		line.Quantity = MinCartQuantity
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity = clampQuantity(c.Lines[i].Quantity + line.Quantity)
			return nil
		}
	}
	if len(c.Lines) >= MaxCartLines {
		return ErrCartFull
	}
	line.Quantity = clampQuantity(line.Quantity)
	c.Lines = append(c.Lines, line)
	return nil
}

// SetQuantity replaces a line's quantity. A quantity below the minimum removes the line.
func (c *Cart) SetQuantity(productID string, qty int) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		if qty < MinCartQuantity {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
		c.Lines[i].Quantity = clampQuantity(qty)
		return nil
	}
	return ErrCartLineNotFound
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func clampQuantity(q int) int {
	if q < MinCartQuantity {
		return MinCartQuantity
	}
	if q > MaxCartQuantity {
		return MaxCartQuantity
	}
	return q
}
