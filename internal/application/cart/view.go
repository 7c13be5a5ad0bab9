package cart

import (
	domaincart "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/cart"
	"github.com/shopspring/decimal"
)

// View is a cart with product data joined in, ready for presentation.
type View struct {
	ID          string
	UserID      string
	Status      domaincart.Status
	Products    []LineView
	TotalAmount decimal.Decimal
}

type LineView struct {
	Product  ProductView
	Quantity int
}

type ProductView struct {
	ID     string
	Name   string
	Price  decimal.Decimal
	Images []string
}

func emptyView(userID string) *View {
	return &View{
		UserID:      userID,
		Products:    []LineView{},
		TotalAmount: decimal.Zero,
	}
}
