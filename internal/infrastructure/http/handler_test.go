package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appcart "github.com/Amalina-Hashim/eCommerceAPIs/internal/application/cart"
	appcheckout "github.com/Amalina-Hashim/eCommerceAPIs/internal/application/checkout"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/catalog"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/payment"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/infrastructure/id"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
)

type stubGateway struct {
	fail bool
}

func (g *stubGateway) Charge(ctx context.Context, req payment.ChargeRequest) (*payment.Receipt, error) {
	if g.fail {
		return nil, payment.ErrChargeFailed
	}
	return &payment.Receipt{ID: "ch_1", Amount: req.Amount, Currency: req.Currency, Status: "succeeded"}, nil
}

func newTestRouter(t *testing.T, gw payment.Gateway) http.Handler {
	t.Helper()
	idGen := id.NewUUIDGenerator()
	carts := memory.NewCartRepository(idGen)
	products := memory.NewProductRepository(
		&catalog.Product{ID: "p1", Name: "Widget", Price: decimal.RequireFromString("10.00")},
	)
	orders := memory.NewOrderRepository()

	cartSvc := appcart.NewService(carts, products, "uploads/")
	checkoutSvc := appcheckout.NewService(gw, orders, carts, idGen)
	return NewHandler(cartSvc, checkoutSvc).Router()
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddToCartEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodPost, "/cart/add", `{"user_id":"u1","product_id":"p1","quantity":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Message string `json:"message"`
		Cart    struct {
			TotalAmount decimal.Decimal `json:"total_amount"`
		} `json:"cart"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Cart.TotalAmount.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected total 20.00, got %s", resp.Cart.TotalAmount)
	}
}

func TestAddToCartUnknownProductIs404(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodPost, "/cart/add", `{"user_id":"u1","product_id":"ghost","quantity":1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body)
	}
}

func TestAddToCartMalformedBodyIs400(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodPost, "/cart/add", `{"user_id":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetUserCartEmptyIs200(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodGet, "/cart/nobody", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty cart, got %d: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Cart struct {
			Products []json.RawMessage `json:"products"`
		} `json:"cart"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Cart.Products) != 0 {
		t.Fatalf("expected empty products, got %d", len(resp.Cart.Products))
	}
}

func TestRemoveFromCartMissingIs404(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodPost, "/cart/remove", `{"user_id":"u1","cart_id":"c1","product_id":"p1"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body)
	}
}

func TestCartCheckoutMissingIs404(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	rec := doJSON(t, router, http.MethodPost, "/cart/checkout/nobody", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body)
	}
}

func TestPaymentEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubGateway{})

	body := `{"amount":2500,"currency":"usd","description":"order","source":"tok_visa","order_id":"ext-1","user_id":"u1","items":[{"product":"p1","quantity":2}]}`
	rec := doJSON(t, router, http.MethodPost, "/payment", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Message string `json:"message"`
		Charge  struct {
			ID string `json:"id"`
		} `json:"charge"`
		Order struct {
			PaymentStatus string `json:"payment_status"`
		} `json:"order"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Charge.ID != "ch_1" || resp.Order.PaymentStatus != "paid" {
		t.Fatalf("unexpected payment response: %s", rec.Body)
	}
}

func TestPaymentDeclinedIs402(t *testing.T) {
	router := newTestRouter(t, &stubGateway{fail: true})

	body := `{"amount":2500,"currency":"usd","description":"order","source":"tok_bad","order_id":"ext-1","user_id":"u1","items":[]}`
	rec := doJSON(t, router, http.MethodPost, "/payment", body)
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d: %s", rec.Code, rec.Body)
	}
}
