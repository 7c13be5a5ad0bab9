package checkout

import (
	"context"
	"errors"
	"fmt"

	domaincart "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/cart"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/order"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/payment"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/pkg/logging"
	"go.uber.org/zap"
)

// ErrPersistAfterCapture marks the reconciliation gap where the charge went
// through but the order or cart write failed. The payment stays captured; no
// compensation is attempted here.
var ErrPersistAfterCapture = errors.New("checkout: payment captured but persistence failed")

type Service struct {
	gateway payment.Gateway
	orders  order.Repository
	carts   domaincart.Repository
	idGen   IDGenerator
}

func NewService(gateway payment.Gateway, orders order.Repository, carts domaincart.Repository, idGen IDGenerator) *Service {
	return &Service{
		gateway: gateway,
		orders:  orders,
		carts:   carts,
		idGen:   idGen,
	}
}

type CaptureInput struct {
	Amount          int64
	Currency        string
	Description     string
	Source          string
	ExternalOrderID string
	UserID          string
	Items           []order.Item
}

type CaptureResult struct {
	Receipt *payment.Receipt
	Order   *order.Order
}

// Capture finalizes a purchase: charge the gateway, upsert the order keyed
// by the external order id, then complete the user's active cart. The charge
// comes first so nothing is persisted unless funds are captured.
func (s *Service) Capture(ctx context.Context, input CaptureInput) (*CaptureResult, error) {
	logger := logging.FromContext(ctx).With(
		zap.String("component", "checkout_service"),
		zap.String("external_order_id", input.ExternalOrderID),
	)
	logger.Info("capture_start",
		zap.String("user_id", input.UserID),
		zap.Int64("amount", input.Amount),
		zap.String("currency", input.Currency),
	)

	receipt, err := s.gateway.Charge(ctx, payment.ChargeRequest{
		Amount:      input.Amount,
		Currency:    input.Currency,
		Description: input.Description,
		Source:      input.Source,
	})
	if err != nil {
		logger.Error("charge_failed", zap.Error(err))
		return nil, fmt.Errorf("checkout: charge: %w", err)
	}

	ord, err := s.upsertOrder(ctx, input)
	if err != nil {
		logger.Error("order_persist_failed_after_capture",
			zap.String("charge_id", receipt.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPersistAfterCapture, err)
	}

	if err := s.completeCart(ctx, input.UserID); err != nil {
		logger.Error("cart_complete_failed_after_capture",
			zap.String("charge_id", receipt.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPersistAfterCapture, err)
	}

	logger.Info("capture_success",
		zap.String("charge_id", receipt.ID),
		zap.String("order_id", ord.ID),
	)
	return &CaptureResult{Receipt: receipt, Order: ord}, nil
}

// upsertOrder creates the order on first sight of the external id, or
// appends the input items to the existing one. Idempotency holds at the
// order-identity level only; repeated items are concatenated, not deduped.
func (s *Service) upsertOrder(ctx context.Context, input CaptureInput) (*order.Order, error) {
	ord, err := s.orders.FindByExternalID(ctx, input.ExternalOrderID)
	switch {
	case errors.Is(err, order.ErrNotFound):
		ord = order.New(s.idGen.NewID(), input.ExternalOrderID, input.UserID, input.Items)
	case err != nil:
		return nil, err
	default:
		ord.AppendItems(input.Items)
	}
	ord.MarkPaid()

	if err := s.orders.Save(ctx, ord); err != nil {
		return nil, err
	}
	return ord, nil
}

// completeCart marks the user's active cart completed. A user with no active
// cart is fine: capture can happen without one.
func (s *Service) completeCart(ctx context.Context, userID string) error {
	c, err := s.carts.FindActiveByUser(ctx, userID)
	if errors.Is(err, domaincart.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	c.MarkCompleted()
	return s.carts.Save(ctx, c)
}
