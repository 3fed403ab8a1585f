package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/enum"
	"github.com/cyclebees/estimates-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PublicStore defines the database methods needed by customer endpoints.
// Satisfied by *database.Queries; narrow interface for testability.
type PublicStore interface {
	GetRequestBySlug(ctx context.Context, shortSlug string) (database.Request, error)
	ListRequestItems(ctx context.Context, requestID uuid.UUID) ([]database.RequestItem, error)
	ListActiveAddons(ctx context.Context) ([]database.Addon, error)
	ListActiveServiceBundles(ctx context.Context) ([]database.ServiceBundle, error)
	LookupRequest(ctx context.Context, arg database.LookupRequestParams) (database.Request, error)
}

// SelectionConfirmer applies a customer's selection.
// Satisfied by *service.RequestService; narrow interface for testability.
type SelectionConfirmer interface {
	ConfirmSelection(ctx context.Context, req service.ConfirmSelectionRequest) (*service.ConfirmSelectionResult, error)
}

// LaCarteReader reads the cached package charge.
// Satisfied by *service.LaCarteCache.
type LaCarteReader interface {
	Get(ctx context.Context) (service.LaCarteSettings, error)
}

// PublicHandler serves the customer estimate page. Access is by slug only.
type PublicHandler struct {
	store   PublicStore
	svc     SelectionConfirmer
	lacarte LaCarteReader
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(store PublicStore, svc SelectionConfirmer, lacarte LaCarteReader) *PublicHandler {
	return &PublicHandler{store: store, svc: svc, lacarte: lacarte}
}

// RegisterRoutes registers the unauthenticated customer endpoints.
func (h *PublicHandler) RegisterRoutes(r chi.Router) {
	r.Get("/public/orders/{slug}", h.GetOrder)
	r.Post("/public/orders/{slug}/view", h.View)
	r.Get("/public/lookup", h.Lookup)
}

// --- Request / Response types ---

type publicOrderRequest struct {
	ID           uuid.UUID  `json:"id"`
	OrderID      string     `json:"order_id"`
	ShortSlug    string     `json:"short_slug"`
	BikeName     string     `json:"bike_name"`
	CustomerName string     `json:"customer_name"`
	Status       string     `json:"status"`
	TotalPaise   int64      `json:"total_paise"`
	SentAt       *time.Time `json:"sent_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

type publicOrderResponse struct {
	Request publicOrderRequest `json:"request"`
	Items   []itemResponse     `json:"items"`
	Addons  []addonResponse    `json:"addons"`
	Bundles []bundleResponse   `json:"bundles"`
	LaCarte laCarteResponse    `json:"lacarte"`
}

type viewRequest struct {
	SelectedItems   *[]uuid.UUID `json:"selected_items"`
	SelectedAddons  []uuid.UUID  `json:"selected_addons"`
	SelectedBundles []uuid.UUID  `json:"selected_bundles"`
	Status          string       `json:"status"`
}

type totalsResponse struct {
	SubtotalPaise int64 `json:"subtotal_paise"`
	AddonsPaise   int64 `json:"addons_paise"`
	BundlesPaise  int64 `json:"bundles_paise"`
	LacartePaise  int64 `json:"lacarte_paise"`
	TaxPaise      int64 `json:"tax_paise"`
	TotalPaise    int64 `json:"total_paise"`
}

type viewResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	TotalAmount int64          `json:"total_amount"`
	Currency    string         `json:"currency"`
	Status      string         `json:"status"`
	Totals      totalsResponse `json:"totals"`
}

type lookupResponse struct {
	ShortSlug    string `json:"short_slug"`
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	BikeName     string `json:"bike_name"`
	Status       string `json:"status"`
}

func requestTotals(r database.Request) totalsResponse {
	return totalsResponse{
		SubtotalPaise: r.SubtotalPaise,
		AddonsPaise:   r.AddonsPaise,
		BundlesPaise:  r.BundlesPaise,
		LacartePaise:  r.LacartePaise,
		TaxPaise:      r.TaxPaise,
		TotalPaise:    r.TotalPaise,
	}
}

// --- Handlers ---

// GetOrder returns the estimate with the active catalog and package charge
// the customer chooses from.
func (h *PublicHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	req, err := h.store.GetRequestBySlug(r.Context(), slug)
	if err != nil {
		writeNotFoundOrInternal(w, "get request by slug", "order not found", err)
		return
	}

	items, err := h.store.ListRequestItems(r.Context(), req.ID)
	if err != nil {
		writeInternalError(w, "list request items", err)
		return
	}
	addons, err := h.store.ListActiveAddons(r.Context())
	if err != nil {
		writeInternalError(w, "list active addons", err)
		return
	}
	bundles, err := h.store.ListActiveServiceBundles(r.Context())
	if err != nil {
		writeInternalError(w, "list active bundles", err)
		return
	}
	settings, err := h.lacarte.Get(r.Context())
	if err != nil {
		writeInternalError(w, "get lacarte settings", err)
		return
	}

	writeJSON(w, http.StatusOK, publicOrderResponse{
		Request: publicOrderRequest{
			ID:           req.ID,
			OrderID:      req.OrderCode,
			ShortSlug:    req.ShortSlug,
			BikeName:     req.BikeName,
			CustomerName: req.CustomerName,
			Status:       string(req.Status),
			TotalPaise:   req.TotalPaise,
			SentAt:       timestamptzPtr(req.SentAt),
			CreatedAt:    req.CreatedAt,
		},
		Items:   toItemResponses(items),
		Addons:  toAddonResponses(addons),
		Bundles: toBundleResponses(bundles),
		LaCarte: toLaCarteResponse(settings),
	})
}

// View handles POST /public/orders/{slug}/view. It records the customer's
// current selection and marks the order viewed, or confirms it when status
// is "confirmed".
func (h *PublicHandler) View(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req viewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.svc.ConfirmSelection(r.Context(), service.ConfirmSelectionRequest{
		Slug:         slug,
		ItemIDs:      req.SelectedItems,
		AddonIDs:     req.SelectedAddons,
		BundleIDs:    req.SelectedBundles,
		TargetStatus: req.Status,
	})
	if err != nil {
		writeServiceError(w, "confirm selection", err)
		return
	}

	status := string(result.Request.Status)
	msg := "Order marked as viewed"
	if status == enum.RequestStatusConfirmed {
		msg = "Order confirmed successfully"
	}

	writeJSON(w, http.StatusOK, viewResponse{
		Success:     true,
		Message:     msg,
		TotalAmount: result.Request.TotalPaise,
		Currency:    "INR",
		Status:      status,
		Totals:      requestTotals(result.Request),
	})
}

// Lookup handles GET /public/lookup?order_id=&phone=, letting a customer
// find their estimate link again.
func (h *PublicHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orderID := q.Get("order_id")
	if orderID == "" {
		orderID = q.Get("orderId")
	}
	phone := q.Get("phone")
	if phone == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "phone is required"})
		return
	}

	req, err := service.LookupOrder(r.Context(), h.store, orderID, phone)
	if err != nil {
		writeServiceError(w, "lookup order", err)
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		ShortSlug:    req.ShortSlug,
		OrderID:      req.OrderCode,
		CustomerName: req.CustomerName,
		BikeName:     req.BikeName,
		Status:       string(req.Status),
	})
}
