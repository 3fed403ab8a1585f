package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// LaCarteCache defines the cached settings reads and invalidation.
// Satisfied by *service.LaCarteCache.
type LaCarteCache interface {
	Get(ctx context.Context) (service.LaCarteSettings, error)
	Invalidate()
}

// LaCarteStore defines the database methods needed to save the settings.
// Satisfied by *database.Queries; narrow interface for testability.
type LaCarteStore interface {
	UpsertLaCarteSettings(ctx context.Context, arg database.UpsertLaCarteSettingsParams) (database.LacarteSetting, error)
}

// LaCarteHandler handles the La Carte package charge settings.
type LaCarteHandler struct {
	cache LaCarteCache
	store LaCarteStore
}

// NewLaCarteHandler creates a new LaCarteHandler.
func NewLaCarteHandler(cache LaCarteCache, store LaCarteStore) *LaCarteHandler {
	return &LaCarteHandler{cache: cache, store: store}
}

// RegisterRoutes registers admin endpoints on the given Chi router.
// Expected to be mounted at /admin/lacarte behind authentication.
func (h *LaCarteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Put("/", h.Update)
}

// RegisterPublicRoutes registers the customer read.
func (h *LaCarteHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/lacarte", h.Get)
}

// --- Request / Response types ---

type updateLaCarteRequest struct {
	RealPricePaise    *int64  `json:"real_price_paise"`
	CurrentPricePaise *int64  `json:"current_price_paise"`
	DiscountNote      *string `json:"discount_note"`
	IsActive          *bool   `json:"is_active"`
}

type laCarteResponse struct {
	RealPricePaise     int64      `json:"real_price_paise"`
	CurrentPricePaise  int64      `json:"current_price_paise"`
	DiscountNote       string     `json:"discount_note"`
	IsActive           bool       `json:"is_active"`
	DiscountPercentage int64      `json:"discount_percentage"`
	HasDiscount        bool       `json:"has_discount"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

func toLaCarteResponse(s service.LaCarteSettings) laCarteResponse {
	resp := laCarteResponse{
		RealPricePaise:     s.RealPricePaise,
		CurrentPricePaise:  s.CurrentPricePaise,
		DiscountNote:       s.DiscountNote,
		IsActive:           s.IsActive,
		DiscountPercentage: s.DiscountPercentage(),
		HasDiscount:        s.HasDiscount(),
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

// --- Handlers ---

// Get returns the current settings, or the defaults if none were saved.
func (h *LaCarteHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.cache.Get(r.Context())
	if err != nil {
		writeInternalError(w, "get lacarte settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toLaCarteResponse(settings))
}

// Update handles PUT /admin/lacarte, creating the singleton on first save.
func (h *LaCarteHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateLaCarteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.RealPricePaise == nil || req.CurrentPricePaise == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "real_price_paise and current_price_paise are required"})
		return
	}
	if *req.RealPricePaise < 0 || *req.CurrentPricePaise < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "prices must be >= 0"})
		return
	}

	// Omitted optional fields keep their stored values.
	params := database.UpsertLaCarteSettingsParams{
		RealPricePaise:    *req.RealPricePaise,
		CurrentPricePaise: *req.CurrentPricePaise,
	}
	if req.DiscountNote != nil {
		params.DiscountNote = pgtype.Text{String: strings.TrimSpace(*req.DiscountNote), Valid: true}
	}
	if req.IsActive != nil {
		params.IsActive = pgtype.Bool{Bool: *req.IsActive, Valid: true}
	}

	row, err := h.store.UpsertLaCarteSettings(r.Context(), params)
	if err != nil {
		writeInternalError(w, "upsert lacarte settings", err)
		return
	}
	h.cache.Invalidate()

	writeJSON(w, http.StatusOK, toLaCarteResponse(service.LaCarteFromRow(row)))
}
