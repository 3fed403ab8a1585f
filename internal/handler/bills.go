package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cyclebees/estimates-api/internal/bill"
	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// BillStore defines the database methods needed to render confirmed orders.
// Satisfied by *database.Queries; narrow interface for testability.
type BillStore interface {
	GetRequest(ctx context.Context, id uuid.UUID) (database.Request, error)
	GetRequestBySlug(ctx context.Context, shortSlug string) (database.Request, error)
	ListConfirmedServices(ctx context.Context, requestID uuid.UUID) ([]database.ConfirmedOrderService, error)
	ListConfirmedAddons(ctx context.Context, requestID uuid.UUID) ([]database.ConfirmedOrderAddon, error)
	ListConfirmedBundles(ctx context.Context, requestID uuid.UUID) ([]database.ConfirmedOrderBundle, error)
}

// BillHandler serves the confirmed selection snapshot and the bill built
// from it.
type BillHandler struct {
	store BillStore
	now   func() time.Time
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(store BillStore) *BillHandler {
	return &BillHandler{store: store, now: time.Now}
}

// RegisterRoutes registers admin endpoints on the given Chi router.
// Expected to be mounted at /requests behind authentication.
func (h *BillHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{id}/confirmed", h.Confirmed)
	r.Get("/{id}/bill", h.AdminBill)
}

// RegisterPublicRoutes registers the customer bill download.
func (h *BillHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/public/orders/{slug}/bill", h.PublicBill)
}

// --- Response types ---

type confirmedServiceResponse struct {
	ServiceItemID uuid.UUID `json:"service_item_id"`
	Section       string    `json:"section"`
	Label         string    `json:"label"`
	PricePaise    int64     `json:"price_paise"`
}

type confirmedAddonResponse struct {
	AddonID     uuid.UUID `json:"addon_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	PricePaise  int64     `json:"price_paise"`
}

type confirmedBundleResponse struct {
	BundleID     uuid.UUID `json:"bundle_id"`
	Name         string    `json:"name"`
	PricePaise   int64     `json:"price_paise"`
	BulletPoints []string  `json:"bullet_points"`
}

type confirmedResponse struct {
	Status   string                     `json:"status"`
	Services []confirmedServiceResponse `json:"services"`
	Addons   []confirmedAddonResponse   `json:"addons"`
	Bundles  []confirmedBundleResponse  `json:"bundles"`
	Totals   totalsResponse             `json:"totals"`
}

type snapshot struct {
	services []database.ConfirmedOrderService
	addons   []database.ConfirmedOrderAddon
	bundles  []database.ConfirmedOrderBundle
}

func (h *BillHandler) loadSnapshot(ctx context.Context, requestID uuid.UUID) (snapshot, error) {
	var s snapshot
	var err error
	if s.services, err = h.store.ListConfirmedServices(ctx, requestID); err != nil {
		return s, fmt.Errorf("list confirmed services: %w", err)
	}
	if s.addons, err = h.store.ListConfirmedAddons(ctx, requestID); err != nil {
		return s, fmt.Errorf("list confirmed addons: %w", err)
	}
	if s.bundles, err = h.store.ListConfirmedBundles(ctx, requestID); err != nil {
		return s, fmt.Errorf("list confirmed bundles: %w", err)
	}
	return s, nil
}

func billData(req database.Request, s snapshot, adminCopy bool, generatedAt time.Time) bill.Data {
	d := bill.Data{
		OrderCode:    req.OrderCode,
		CustomerName: req.CustomerName,
		BikeName:     req.BikeName,
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt,
		SentAt:       timestamptzPtr(req.SentAt),
		Totals: bill.Totals{
			SubtotalPaise: req.SubtotalPaise,
			AddonsPaise:   req.AddonsPaise,
			BundlesPaise:  req.BundlesPaise,
			LaCartePaise:  req.LacartePaise,
			TaxPaise:      req.TaxPaise,
			TotalPaise:    req.TotalPaise,
		},
		AdminCopy:   adminCopy,
		GeneratedAt: generatedAt,
	}
	if req.Status == database.RequestStatusConfirmed {
		confirmedAt := req.UpdatedAt
		d.ConfirmedAt = &confirmedAt
	}
	for _, sv := range s.services {
		d.Items = append(d.Items, bill.Item{Section: string(sv.Section), Label: sv.Label, PricePaise: sv.PricePaise})
	}
	for _, a := range s.addons {
		d.Addons = append(d.Addons, bill.Addon{Name: a.Name, Description: a.Description.String, PricePaise: a.PricePaise})
	}
	for _, b := range s.bundles {
		d.Bundles = append(d.Bundles, bill.Bundle{Name: b.Name, PricePaise: b.PricePaise, BulletPoints: b.BulletPoints})
	}
	return d
}

// --- Handlers ---

// Confirmed handles GET /requests/{id}/confirmed.
func (h *BillHandler) Confirmed(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}

	req, err := h.store.GetRequest(r.Context(), id)
	if err != nil {
		writeNotFoundOrInternal(w, "get request", "request not found", err)
		return
	}

	s, err := h.loadSnapshot(r.Context(), id)
	if err != nil {
		writeInternalError(w, "load confirmed snapshot", err)
		return
	}

	resp := confirmedResponse{
		Status:   string(req.Status),
		Services: make([]confirmedServiceResponse, len(s.services)),
		Addons:   make([]confirmedAddonResponse, len(s.addons)),
		Bundles:  make([]confirmedBundleResponse, len(s.bundles)),
		Totals:   requestTotals(req),
	}
	for i, sv := range s.services {
		resp.Services[i] = confirmedServiceResponse{
			ServiceItemID: sv.ServiceItemID,
			Section:       string(sv.Section),
			Label:         sv.Label,
			PricePaise:    sv.PricePaise,
		}
	}
	for i, a := range s.addons {
		resp.Addons[i] = confirmedAddonResponse{
			AddonID:     a.AddonID,
			Name:        a.Name,
			Description: textPtr(a.Description),
			PricePaise:  a.PricePaise,
		}
	}
	for i, b := range s.bundles {
		resp.Bundles[i] = confirmedBundleResponse{
			BundleID:     b.BundleID,
			Name:         b.Name,
			PricePaise:   b.PricePaise,
			BulletPoints: b.BulletPoints,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// AdminBill handles GET /requests/{id}/bill, the staff copy.
func (h *BillHandler) AdminBill(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}

	req, err := h.store.GetRequest(r.Context(), id)
	if err != nil {
		writeNotFoundOrInternal(w, "get request", "request not found", err)
		return
	}
	h.serveBill(w, r, req, true)
}

// PublicBill handles GET /public/orders/{slug}/bill, the customer copy.
func (h *BillHandler) PublicBill(w http.ResponseWriter, r *http.Request) {
	req, err := h.store.GetRequestBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeNotFoundOrInternal(w, "get request by slug", "order not found", err)
		return
	}
	h.serveBill(w, r, req, false)
}

func (h *BillHandler) serveBill(w http.ResponseWriter, r *http.Request, req database.Request, adminCopy bool) {
	if req.Status != database.RequestStatusConfirmed {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "bill is available once the order is confirmed"})
		return
	}

	s, err := h.loadSnapshot(r.Context(), req.ID)
	if err != nil {
		writeInternalError(w, "load confirmed snapshot", err)
		return
	}

	doc, err := bill.Build(billData(req, s, adminCopy, h.now()))
	if err != nil {
		writeInternalError(w, "build bill", err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Body) //nolint:errcheck
}
