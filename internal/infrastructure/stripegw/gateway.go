package stripegw

import (
	"context"
	"fmt"

	"github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/payment"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Gateway captures charges through Stripe. It holds its own API client
// configured at construction; nothing here touches the package-level stripe
// key.
type Gateway struct {
	api *client.API
}

func New(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

func (g *Gateway) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.Receipt, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	if err := params.SetSource(req.Source); err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrChargeFailed, err)
	}

	ch, err := g.api.Charges.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrChargeFailed, err)
	}

	return &payment.Receipt{
		ID:       ch.ID,
		Amount:   ch.Amount,
		Currency: string(ch.Currency),
		Status:   string(ch.Status),
	}, nil
}
