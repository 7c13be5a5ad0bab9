package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("catalog: product not found")

// Product is a catalog entry. The catalog is owned by an external system;
// this core only ever reads it.
type Product struct {
	ID     string
	Name   string
	Price  decimal.Decimal
	Images []string
}
