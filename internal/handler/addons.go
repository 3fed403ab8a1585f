package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// AddonStore defines the database methods needed by addon handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type AddonStore interface {
	ListAddons(ctx context.Context) ([]database.Addon, error)
	ListActiveAddons(ctx context.Context) ([]database.Addon, error)
	GetAddon(ctx context.Context, id uuid.UUID) (database.Addon, error)
	NextAddonDisplayOrder(ctx context.Context) (int32, error)
	CreateAddon(ctx context.Context, arg database.CreateAddonParams) (database.Addon, error)
	UpdateAddon(ctx context.Context, arg database.UpdateAddonParams) (database.Addon, error)
	DeleteAddon(ctx context.Context, id uuid.UUID) (int64, error)
}

// AddonHandler handles addon catalog endpoints.
type AddonHandler struct {
	store AddonStore
}

// NewAddonHandler creates a new AddonHandler.
func NewAddonHandler(store AddonStore) *AddonHandler {
	return &AddonHandler{store: store}
}

// RegisterRoutes registers admin addon endpoints on the given Chi router.
// Expected to be mounted at /admin/addons behind authentication.
func (h *AddonHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// RegisterPublicRoutes registers the customer catalog read.
func (h *AddonHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/addons", h.ListActive)
}

// --- Request / Response types ---

type createAddonRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	PricePaise   int64   `json:"price_paise"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int32  `json:"display_order"`
}

type updateAddonRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	PricePaise   *int64  `json:"price_paise"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int32  `json:"display_order"`
}

type addonResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	PricePaise   int64     `json:"price_paise"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int32     `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toAddonResponse(a database.Addon) addonResponse {
	return addonResponse{
		ID:           a.ID,
		Name:         a.Name,
		Description:  textPtr(a.Description),
		PricePaise:   a.PricePaise,
		IsActive:     a.IsActive,
		DisplayOrder: a.DisplayOrder,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toAddonResponses(addons []database.Addon) []addonResponse {
	resp := make([]addonResponse, len(addons))
	for i, a := range addons {
		resp[i] = toAddonResponse(a)
	}
	return resp
}

// --- Handlers ---

// List handles GET /admin/addons, including inactive addons.
func (h *AddonHandler) List(w http.ResponseWriter, r *http.Request) {
	addons, err := h.store.ListAddons(r.Context())
	if err != nil {
		writeInternalError(w, "list addons", err)
		return
	}
	writeJSON(w, http.StatusOK, toAddonResponses(addons))
}

// ListActive handles GET /addons, the customer-visible catalog.
func (h *AddonHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	addons, err := h.store.ListActiveAddons(r.Context())
	if err != nil {
		writeInternalError(w, "list active addons", err)
		return
	}
	writeJSON(w, http.StatusOK, toAddonResponses(addons))
}

// Get handles GET /admin/addons/{id}.
func (h *AddonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "addon ID")
	if !ok {
		return
	}

	addon, err := h.store.GetAddon(r.Context(), id)
	if err != nil {
		writeNotFoundOrInternal(w, "get addon", "addon not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toAddonResponse(addon))
}

// Create handles POST /admin/addons. A missing display_order appends the
// addon after the current last one.
func (h *AddonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAddonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	name, err := validateCatalogName(req.Name)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := validateCatalogPrice(req.PricePaise); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	desc, err := catalogDescription(req.Description, false)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var order int32
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	} else {
		order, err = h.store.NextAddonDisplayOrder(r.Context())
		if err != nil {
			writeInternalError(w, "next addon display order", err)
			return
		}
	}

	addon, err := h.store.CreateAddon(r.Context(), database.CreateAddonParams{
		Name:         name,
		Description:  desc,
		PricePaise:   req.PricePaise,
		IsActive:     isActive,
		DisplayOrder: order,
	})
	if err != nil {
		writeInternalError(w, "create addon", err)
		return
	}
	writeJSON(w, http.StatusCreated, toAddonResponse(addon))
}

// Update handles PATCH /admin/addons/{id}. Only provided fields change.
func (h *AddonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "addon ID")
	if !ok {
		return
	}

	var req updateAddonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	params := database.UpdateAddonParams{ID: id}
	if req.Name != nil {
		name, err := validateCatalogName(*req.Name)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		params.Name = pgtype.Text{String: name, Valid: true}
	}
	if req.PricePaise != nil {
		if err := validateCatalogPrice(*req.PricePaise); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		params.PricePaise = pgtype.Int8{Int64: *req.PricePaise, Valid: true}
	}
	desc, err := catalogDescription(req.Description, true)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	params.Description = desc
	if req.IsActive != nil {
		params.IsActive = pgtype.Bool{Bool: *req.IsActive, Valid: true}
	}
	if req.DisplayOrder != nil {
		params.DisplayOrder = pgtype.Int4{Int32: *req.DisplayOrder, Valid: true}
	}

	addon, err := h.store.UpdateAddon(r.Context(), params)
	if err != nil {
		writeNotFoundOrInternal(w, "update addon", "addon not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toAddonResponse(addon))
}

// Delete handles DELETE /admin/addons/{id}. Confirmed orders keep their
// snapshot of the addon.
func (h *AddonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "addon ID")
	if !ok {
		return
	}

	n, err := h.store.DeleteAddon(r.Context(), id)
	if err != nil {
		writeInternalError(w, "delete addon", err)
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "addon not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "addon deleted"})
}
