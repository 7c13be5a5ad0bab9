package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appcart "github.com/Amalina-Hashim/eCommerceAPIs/internal/application/cart"
	appcheckout "github.com/Amalina-Hashim/eCommerceAPIs/internal/application/checkout"
	domaincart "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/cart"
	domaincatalog "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/catalog"
	domainorder "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/order"
	domainpayment "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/payment"
	"github.com/shopspring/decimal"
)

type Handler struct {
	cartService     *appcart.Service
	checkoutService *appcheckout.Service
}

func NewHandler(cartSvc *appcart.Service, checkoutSvc *appcheckout.Service) *Handler {
	return &Handler{
		cartService:     cartSvc,
		checkoutService: checkoutSvc,
	}
}

func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /cart/add", h.handleAddToCart)
	mux.HandleFunc("POST /cart/remove", h.handleRemoveFromCart)
	mux.HandleFunc("GET /cart/{userID}", h.handleGetUserCart)
	mux.HandleFunc("POST /cart/clear/{userID}", h.handleClearCart)
	mux.HandleFunc("POST /cart/checkout/{userID}", h.handleCartCheckout)
	mux.HandleFunc("POST /payment", h.handlePayment)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

type cartLineJSON struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type cartJSON struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Status      string          `json:"status"`
	Products    []cartLineJSON  `json:"products"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func toCartJSON(c *domaincart.Cart) cartJSON {
	lines := make([]cartLineJSON, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, cartLineJSON{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return cartJSON{
		ID:          c.ID,
		UserID:      c.UserID,
		Status:      string(c.Status),
		Products:    lines,
		TotalAmount: c.TotalAmount,
	}
}

type addToCartRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type addToCartResponse struct {
	Message string   `json:"message"`
	Cart    cartJSON `json:"cart"`
}

func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.cartService.AddToCart(r.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, addToCartResponse{
		Message: "Product added to cart",
		Cart:    toCartJSON(c),
	})
}

type removeFromCartRequest struct {
	UserID    string `json:"user_id"`
	CartID    string `json:"cart_id"`
	ProductID string `json:"product_id"`
}

func (h *Handler) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req removeFromCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.cartService.RemoveFromCart(r.Context(), req.UserID, req.CartID, req.ProductID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product removed from cart"})
}

type productViewJSON struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Images []string        `json:"images"`
}

type cartViewLineJSON struct {
	Product  productViewJSON `json:"product"`
	Quantity int             `json:"quantity"`
}

type cartViewJSON struct {
	ID          string             `json:"id,omitempty"`
	UserID      string             `json:"user_id"`
	Status      string             `json:"status,omitempty"`
	Products    []cartViewLineJSON `json:"products"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
}

func (h *Handler) handleGetUserCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	view, err := h.cartService.GetUserCart(r.Context(), userID, requestBaseURL(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := cartViewJSON{
		ID:          view.ID,
		UserID:      view.UserID,
		Status:      string(view.Status),
		Products:    make([]cartViewLineJSON, 0, len(view.Products)),
		TotalAmount: view.TotalAmount,
	}
	for _, line := range view.Products {
		out.Products = append(out.Products, cartViewLineJSON{
			Product: productViewJSON{
				ID:     line.Product.ID,
				Name:   line.Product.Name,
				Price:  line.Product.Price,
				Images: line.Product.Images,
			},
			Quantity: line.Quantity,
		})
	}

	writeJSON(w, http.StatusOK, map[string]cartViewJSON{"cart": out})
}

func (h *Handler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.ClearCart(r.Context(), r.PathValue("userID")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

func (h *Handler) handleCartCheckout(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.Checkout(r.Context(), r.PathValue("userID")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Checkout successful"})
}

type paymentItemJSON struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}

type paymentRequest struct {
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Source      string            `json:"source"`
	OrderID     string            `json:"order_id"`
	UserID      string            `json:"user_id"`
	Items       []paymentItemJSON `json:"items"`
}

type chargeJSON struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type orderJSON struct {
	ID              string            `json:"id"`
	ExternalOrderID string            `json:"external_order_id"`
	UserID          string            `json:"user_id"`
	PaymentStatus   string            `json:"payment_status"`
	Items           []paymentItemJSON `json:"items"`
}

type paymentResponse struct {
	Message string     `json:"message"`
	Charge  chargeJSON `json:"charge"`
	Order   orderJSON  `json:"order"`
}

func (h *Handler) handlePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	items := make([]domainorder.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domainorder.Item{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	result, err := h.checkoutService.Capture(r.Context(), appcheckout.CaptureInput{
		Amount:          req.Amount,
		Currency:        req.Currency,
		Description:     req.Description,
		Source:          req.Source,
		ExternalOrderID: req.OrderID,
		UserID:          req.UserID,
		Items:           items,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	outItems := make([]paymentItemJSON, 0, len(result.Order.Items))
	for _, it := range result.Order.Items {
		outItems = append(outItems, paymentItemJSON{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	writeJSON(w, http.StatusOK, paymentResponse{
		Message: "Payment successful",
		Charge: chargeJSON{
			ID:       result.Receipt.ID,
			Amount:   result.Receipt.Amount,
			Currency: result.Receipt.Currency,
			Status:   result.Receipt.Status,
		},
		Order: orderJSON{
			ID:              result.Order.ID,
			ExternalOrderID: result.Order.ExternalOrderID,
			UserID:          result.Order.UserID,
			PaymentStatus:   string(result.Order.PaymentStatus),
			Items:           outItems,
		},
	})
}

func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"message": err.Error()})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domaincart.ErrNotFound),
		errors.Is(err, domaincatalog.ErrNotFound),
		errors.Is(err, domainorder.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, appcart.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, domainpayment.ErrChargeFailed):
		writeError(w, http.StatusPaymentRequired, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}
