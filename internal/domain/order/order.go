package order

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("order: not found")

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Item is one {product, quantity} entry in an order.
type Item struct {
	ProductID string
	Quantity  int
}

// Order is keyed by ExternalOrderID: repeated payment notifications for the
// same external id append items to the existing order instead of creating a
// second one. Items are never deduplicated.
type Order struct {
	ID              string
	ExternalOrderID string
	UserID          string
	PaymentStatus   PaymentStatus
	Items           []Item
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func New(id, externalOrderID, userID string, items []Item) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:              id,
		ExternalOrderID: externalOrderID,
		UserID:          userID,
		PaymentStatus:   PaymentPending,
		Items:           append([]Item(nil), items...),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// AppendItems adds items without deduplication against existing entries.
func (o *Order) AppendItems(items []Item) {
	o.Items = append(o.Items, items...)
	o.touch()
}

func (o *Order) MarkPaid() {
	o.PaymentStatus = PaymentPaid
	o.touch()
}

func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = append([]Item(nil), o.Items...)
	return &clone
}

func (o *Order) touch() {
	o.UpdatedAt = time.Now().UTC()
}
