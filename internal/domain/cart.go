package domain

import (
	"fmt"
	"sort"
	"time"

	"monamart/internal/money"
)

const (
	MaxQuantityPerLine = 10
	MaxCartQuantity    = 20
)

// CartLine is one product in the cart. The product is snapshotted for
// name/pricing; stock is always re-checked against the live catalog.
type CartLine struct {
	Product  Product
	Quantity int
	AddedAt  time.Time
}

func (l CartLine) UnitPrice(isVIP bool) float64 {
	return l.Product.EffectivePrice(isVIP)
}

// LineTotal is unit price times quantity, rounded to 2 decimals.
func (l CartLine) LineTotal(isVIP bool) float64 {
	return money.MulQty(l.UnitPrice(isVIP), l.Quantity)
}

// ValidateStock re-checks the line against live stock.
func (l CartLine) ValidateStock(currentStock int) (bool, string) {
	if currentStock <= 0 {
		return false, fmt.Sprintf("%s is out of stock", l.Product.Name)
	}
	if l.Quantity > currentStock {
		return false, fmt.Sprintf("Only %d units of %s available", currentStock, l.Product.Name)
	}
	return true, ""
}

// Cart holds at most MaxCartQuantity units across lines, one line per
// product, each line capped at MaxQuantityPerLine. All mutating methods
// return (ok, message) and leave the cart untouched on rejection.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart { return &Cart{} }

func (c *Cart) IsEmpty() bool  { return len(c.lines) == 0 }
func (c *Cart) ItemCount() int { return len(c.lines) }

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Lines returns the cart lines ordered by time added.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AddedAt.Before(out[j].AddedAt) })
	return out
}

func (c *Cart) FindBySKU(sku string) (CartLine, bool) {
	for _, l := range c.lines {
		if l.Product.SKU == sku {
			return l, true
		}
	}
	return CartLine{}, false
}

func (c *Cart) Contains(sku string) bool {
	_, ok := c.FindBySKU(sku)
	return ok
}

// AddItem appends a new line after enforcing quantity bounds, live stock,
// one-line-per-product and the cart cap.
func (c *Cart) AddItem(p Product, qty int) (bool, string) {
	if qty < 1 || qty > MaxQuantityPerLine {
		return false, fmt.Sprintf("Quantity must be between 1 and %d", MaxQuantityPerLine)
	}
	if !p.InStock() {
		return false, fmt.Sprintf("%s is out of stock", p.Name)
	}
	if qty > p.Quantity {
		return false, fmt.Sprintf("Only %d units of %s available", p.Quantity, p.Name)
	}
	if c.Contains(p.SKU) {
		return false, fmt.Sprintf("%s is already in cart. Use update to change quantity.", p.Name)
	}
	if c.TotalQuantity()+qty > MaxCartQuantity {
		remaining := MaxCartQuantity - c.TotalQuantity()
		if remaining > 0 {
			return false, fmt.Sprintf("Cart limit: only %d more items allowed (max %d total)", remaining, MaxCartQuantity)
		}
		return false, fmt.Sprintf("Cart is full (max %d items)", MaxCartQuantity)
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: qty, AddedAt: time.Now()})
	return true, fmt.Sprintf("Added %d x %s to cart", qty, p.Name)
}

// UpdateQuantity replaces a line's quantity. currentStock is the live
// catalog stock for the line's product.
func (c *Cart) UpdateQuantity(sku string, newQty, currentStock int) (bool, string) {
	idx := -1
	for i, l := range c.lines {
		if l.Product.SKU == sku {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, "Product not found in cart"
	}
	if newQty < 1 || newQty > MaxQuantityPerLine {
		return false, fmt.Sprintf("Quantity must be between 1 and %d", MaxQuantityPerLine)
	}
	delta := newQty - c.lines[idx].Quantity
	if c.TotalQuantity()+delta > MaxCartQuantity {
		return false, fmt.Sprintf("Cart limit exceeded (max %d total items)", MaxCartQuantity)
	}
	if newQty > currentStock {
		return false, fmt.Sprintf("Only %d units available", currentStock)
	}
	c.lines[idx].Quantity = newQty
	return true, fmt.Sprintf("Updated quantity to %d", newQty)
}

func (c *Cart) RemoveItem(sku string) (bool, string) {
	for i, l := range c.lines {
		if l.Product.SKU == sku {
			name := l.Product.Name
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true, fmt.Sprintf("Removed %s from cart", name)
		}
	}
	return false, "Product not found in cart"
}

func (c *Cart) Clear() { c.lines = nil }

// Subtotal sums the rounded line totals and rounds the sum.
func (c *Cart) Subtotal(isVIP bool) float64 {
	totals := make([]float64, 0, len(c.lines))
	for _, l := range c.lines {
		totals = append(totals, l.LineTotal(isVIP))
	}
	return money.Sum(totals...)
}

// VIPSavings is the regular subtotal minus the member-price subtotal.
func (c *Cart) VIPSavings() float64 {
	return money.Sub(c.Subtotal(false), c.Subtotal(true))
}

// ValidateAllStock re-checks every line against live stock via the
// supplied lookup, short-circuiting on the first failure.
func (c *Cart) ValidateAllStock(currentStock func(sku string) int) (bool, string) {
	for _, l := range c.lines {
		if ok, msg := l.ValidateStock(currentStock(l.Product.SKU)); !ok {
			return false, msg
		}
	}
	return true, ""
}
