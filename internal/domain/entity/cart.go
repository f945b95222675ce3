// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// Cart is the client-held shopping cart: an ordered collection of line items
// keyed by product id. It is never persisted server-side; at checkout its
// lines become the order's immutable snapshot.
//
// A product appears at most once. Adding a product already in the cart merges
// into the existing line by incrementing its quantity; removing the last unit
// of a line drops the line entirely.
type Cart struct {
	lines []OrderLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of the given line's product into the cart, merging
// with an existing line for the same product id.
func (c *Cart) Add(line OrderLine) {
	if line.Quantity <= 0 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID {
			c.lines[i].Quantity += line.Quantity

			return
		}
	}
	c.lines = append(c.lines, line)
}

// Remove takes quantity units of the product out of the cart. When the line's
// quantity reaches zero the line is removed; removing more than present just
// removes the line.
func (c *Cart) Remove(productID int64, quantity int) {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		c.lines[i].Quantity -= quantity
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}

		return
	}
}

// Lines returns the cart's lines in insertion order.
func (c *Cart) Lines() []OrderLine {
	return c.lines
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Total computes the order total for this cart: the sum of price x quantity
// over every line plus the delivery fee, rounded to 2 decimal places.
func (c *Cart) Total(deliveryFee decimal.Decimal) decimal.Decimal {
	total := deliveryFee
	for _, line := range c.lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		total = total.Add(line.Price.Mul(qty))
	}

	return total.Round(2)
}
