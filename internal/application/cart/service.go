package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domaincart "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/cart"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/catalog"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/pkg/logging"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidQuantity = errors.New("cart: quantity must be greater than zero")

type Service struct {
	carts    domaincart.Repository
	products catalog.Repository

	// uploadPrefix marks image references stored as local relative paths,
	// which GetUserCart rewrites to absolute URLs.
	uploadPrefix string
}

func NewService(carts domaincart.Repository, products catalog.Repository, uploadPrefix string) *Service {
	return &Service{
		carts:        carts,
		products:     products,
		uploadPrefix: uploadPrefix,
	}
}

// AddToCart adds a {product, quantity} line to the user's active cart,
// creating the cart on first touch. Lines are added with add-set semantics:
// an identical {product, quantity} pair is not appended twice, while the
// same product with a different quantity becomes a separate line. Quantities
// are never merged.
func (s *Service) AddToCart(ctx context.Context, userID, productID string, quantity int) (*domaincart.Cart, error) {
	logger := logging.FromContext(ctx).With(zap.String("component", "cart_service"))

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	c, err := s.carts.FindOrCreateActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cart: find or create: %w", err)
	}

	c.AddLine(productID, quantity)

	if err := s.recomputeTotal(ctx, c); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		logger.Error("cart_save_failed", zap.String("cart_id", c.ID), zap.Error(err))
		return nil, fmt.Errorf("cart: save: %w", err)
	}

	logger.Info("cart_item_added",
		zap.String("cart_id", c.ID),
		zap.String("product_id", productID),
		zap.Int("quantity", quantity),
		zap.String("total_amount", c.TotalAmount.String()),
	)
	return c, nil
}

// RemoveFromCart drops every line for productID from the cart matching
// {cartID, userID, active}. ErrNotFound when no such cart exists.
func (s *Service) RemoveFromCart(ctx context.Context, userID, cartID, productID string) error {
	logger := logging.FromContext(ctx).With(zap.String("component", "cart_service"))

	c, err := s.carts.FindActiveByUser(ctx, userID)
	if err != nil {
		return err
	}
	if c.ID != cartID {
		return domaincart.ErrNotFound
	}

	c.RemoveProduct(productID)

	if err := s.recomputeTotal(ctx, c); err != nil {
		return err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		logger.Error("cart_save_failed", zap.String("cart_id", c.ID), zap.Error(err))
		return fmt.Errorf("cart: save: %w", err)
	}

	logger.Info("cart_item_removed",
		zap.String("cart_id", c.ID),
		zap.String("product_id", productID),
		zap.String("total_amount", c.TotalAmount.String()),
	)
	return nil
}

// GetUserCart returns the user's active cart with product data joined in.
// A missing or empty cart yields an empty view, never an error. Image
// references under the upload prefix are rewritten against baseURL; anything
// else passes through untouched.
func (s *Service) GetUserCart(ctx context.Context, userID, baseURL string) (*View, error) {
	c, err := s.carts.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domaincart.ErrNotFound) {
			return emptyView(userID), nil
		}
		return nil, err
	}
	if len(c.Lines) == 0 {
		return emptyView(userID), nil
	}

	view := &View{
		ID:          c.ID,
		UserID:      c.UserID,
		Status:      c.Status,
		Products:    make([]LineView, 0, len(c.Lines)),
		TotalAmount: c.TotalAmount,
	}
	for _, line := range c.Lines {
		p, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("cart: join product %s: %w", line.ProductID, err)
		}
		view.Products = append(view.Products, LineView{
			Product: ProductView{
				ID:     p.ID,
				Name:   p.Name,
				Price:  p.Price,
				Images: s.rewriteImages(p.Images, baseURL),
			},
			Quantity: line.Quantity,
		})
	}
	return view, nil
}

// ClearCart empties the user's cart regardless of its status. Unlike the
// other operations, the lookup is not restricted to active carts.
func (s *Service) ClearCart(ctx context.Context, userID string) error {
	c, err := s.carts.FindAnyByUser(ctx, userID)
	if err != nil {
		return err
	}

	c.Empty()

	if err := s.carts.Save(ctx, c); err != nil {
		return fmt.Errorf("cart: save: %w", err)
	}

	logging.FromContext(ctx).Info("cart_cleared", zap.String("cart_id", c.ID))
	return nil
}

// Checkout performs the cart-side reset: lines emptied, total zeroed.
// Payment capture is a separate flow and is never invoked from here.
func (s *Service) Checkout(ctx context.Context, userID string) error {
	c, err := s.carts.FindAnyByUser(ctx, userID)
	if err != nil {
		return err
	}

	c.Empty()

	if err := s.carts.Save(ctx, c); err != nil {
		return fmt.Errorf("cart: save: %w", err)
	}

	logging.FromContext(ctx).Info("cart_checked_out", zap.String("cart_id", c.ID))
	return nil
}

// recomputeTotal sets TotalAmount to Σ(current catalog price × quantity)
// over the cart's lines. Prices are read fresh from the catalog every time,
// never cached on the line.
func (s *Service) recomputeTotal(ctx context.Context, c *domaincart.Cart) error {
	total := decimal.Zero
	for _, line := range c.Lines {
		p, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return fmt.Errorf("cart: price product %s: %w", line.ProductID, err)
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	c.TotalAmount = total
	return nil
}

func (s *Service) rewriteImages(images []string, baseURL string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if s.uploadPrefix != "" && strings.HasPrefix(img, s.uploadPrefix) {
			out = append(out, strings.TrimSuffix(baseURL, "/")+"/"+img)
			continue
		}
		out = append(out, img)
	}
	return out
}
