package cart

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("cart: not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Line is one {product, quantity} entry in a cart.
type Line struct {
	ProductID string
	Quantity  int
}

// Cart is a user's shopping cart. At most one active cart exists per user;
// the repository's find-or-create upsert is what enforces that.
type Cart struct {
	ID          string
	UserID      string
	Status      Status
	Lines       []Line
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func New(id, userID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:          id,
		UserID:      userID,
		Status:      StatusActive,
		TotalAmount: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AddLine appends a line unless an identical {product, quantity} line is
// already present. Lines for the same product with a different quantity are
// appended as separate entries; quantities are never merged.
func (c *Cart) AddLine(productID string, quantity int) {
	for _, l := range c.Lines {
		if l.ProductID == productID && l.Quantity == quantity {
			return
		}
	}
	c.Lines = append(c.Lines, Line{ProductID: productID, Quantity: quantity})
	c.touch()
}

// RemoveProduct drops every line referencing productID.
func (c *Cart) RemoveProduct(productID string) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
	c.touch()
}

// Empty drops all lines and zeroes the total.
func (c *Cart) Empty() {
	c.Lines = nil
	c.TotalAmount = decimal.Zero
	c.touch()
}

func (c *Cart) MarkCompleted() {
	c.Status = StatusCompleted
	c.touch()
}

func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Lines = append([]Line(nil), c.Lines...)
	return &clone
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
