package payment

import (
	"context"
	"errors"
)

// ErrChargeFailed covers declines, invalid sources and transport errors. The
// caller only needs "payment did not complete"; finer distinctions stay
// inside the adapter.
var ErrChargeFailed = errors.New("payment: charge failed")

// ChargeRequest describes a capture attempt. Amount is in the currency's
// minor unit, as the gateway expects.
type ChargeRequest struct {
	Amount      int64
	Currency    string
	Description string
	Source      string
}

// Receipt is the gateway's confirmation of a captured charge.
type Receipt struct {
	ID       string
	Amount   int64
	Currency string
	Status   string
}

// Gateway charges a payment source. A submitted charge cannot be aborted by
// the caller; context cancellation only applies up to submission.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
}
