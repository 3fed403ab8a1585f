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

// BundleStore defines the database methods needed by bundle handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type BundleStore interface {
	ListServiceBundles(ctx context.Context) ([]database.ServiceBundle, error)
	ListActiveServiceBundles(ctx context.Context) ([]database.ServiceBundle, error)
	GetServiceBundle(ctx context.Context, id uuid.UUID) (database.ServiceBundle, error)
	NextServiceBundleDisplayOrder(ctx context.Context) (int32, error)
	CreateServiceBundle(ctx context.Context, arg database.CreateServiceBundleParams) (database.ServiceBundle, error)
	UpdateServiceBundle(ctx context.Context, arg database.UpdateServiceBundleParams) (database.ServiceBundle, error)
	DeleteServiceBundle(ctx context.Context, id uuid.UUID) (int64, error)
}

// BundleHandler handles service bundle catalog endpoints.
type BundleHandler struct {
	store BundleStore
}

// NewBundleHandler creates a new BundleHandler.
func NewBundleHandler(store BundleStore) *BundleHandler {
	return &BundleHandler{store: store}
}

// RegisterRoutes registers admin bundle endpoints on the given Chi router.
// Expected to be mounted at /admin/bundles behind authentication.
func (h *BundleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// RegisterPublicRoutes registers the customer catalog read.
func (h *BundleHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/bundles", h.ListActive)
}

// --- Request / Response types ---

type createBundleRequest struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	PricePaise   int64    `json:"price_paise"`
	BulletPoints []string `json:"bullet_points"`
	IsActive     *bool    `json:"is_active"`
	DisplayOrder *int32   `json:"display_order"`
}

type updateBundleRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	PricePaise   *int64   `json:"price_paise"`
	BulletPoints []string `json:"bullet_points"`
	IsActive     *bool    `json:"is_active"`
	DisplayOrder *int32   `json:"display_order"`
}

type bundleResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	PricePaise   int64     `json:"price_paise"`
	BulletPoints []string  `json:"bullet_points"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int32     `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toBundleResponse(b database.ServiceBundle) bundleResponse {
	points := b.BulletPoints
	if points == nil {
		points = []string{}
	}
	return bundleResponse{
		ID:           b.ID,
		Name:         b.Name,
		Description:  textPtr(b.Description),
		PricePaise:   b.PricePaise,
		BulletPoints: points,
		IsActive:     b.IsActive,
		DisplayOrder: b.DisplayOrder,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func toBundleResponses(bundles []database.ServiceBundle) []bundleResponse {
	resp := make([]bundleResponse, len(bundles))
	for i, b := range bundles {
		resp[i] = toBundleResponse(b)
	}
	return resp
}

// --- Handlers ---

// List handles GET /admin/bundles, including inactive bundles.
func (h *BundleHandler) List(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.store.ListServiceBundles(r.Context())
	if err != nil {
		writeInternalError(w, "list bundles", err)
		return
	}
	writeJSON(w, http.StatusOK, toBundleResponses(bundles))
}

// ListActive handles GET /bundles, the customer-visible catalog.
func (h *BundleHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.store.ListActiveServiceBundles(r.Context())
	if err != nil {
		writeInternalError(w, "list active bundles", err)
		return
	}
	writeJSON(w, http.StatusOK, toBundleResponses(bundles))
}

// Get handles GET /admin/bundles/{id}.
func (h *BundleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "bundle ID")
	if !ok {
		return
	}

	bundle, err := h.store.GetServiceBundle(r.Context(), id)
	if err != nil {
		writeNotFoundOrInternal(w, "get bundle", "bundle not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toBundleResponse(bundle))
}

// Create handles POST /admin/bundles.
func (h *BundleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBundleRequest
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
	points, err := cleanBulletPoints(req.BulletPoints)
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
		order, err = h.store.NextServiceBundleDisplayOrder(r.Context())
		if err != nil {
			writeInternalError(w, "next bundle display order", err)
			return
		}
	}

	bundle, err := h.store.CreateServiceBundle(r.Context(), database.CreateServiceBundleParams{
		Name:         name,
		Description:  desc,
		PricePaise:   req.PricePaise,
		BulletPoints: points,
		IsActive:     isActive,
		DisplayOrder: order,
	})
	if err != nil {
		writeInternalError(w, "create bundle", err)
		return
	}
	writeJSON(w, http.StatusCreated, toBundleResponse(bundle))
}

// Update handles PATCH /admin/bundles/{id}. Only provided fields change; a
// provided bullet_points list replaces the stored one.
func (h *BundleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "bundle ID")
	if !ok {
		return
	}

	var req updateBundleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	params := database.UpdateServiceBundleParams{ID: id}
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
	if req.BulletPoints != nil {
		points, err := cleanBulletPoints(req.BulletPoints)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		params.BulletPoints = points
	}
	if req.IsActive != nil {
		params.IsActive = pgtype.Bool{Bool: *req.IsActive, Valid: true}
	}
	if req.DisplayOrder != nil {
		params.DisplayOrder = pgtype.Int4{Int32: *req.DisplayOrder, Valid: true}
	}

	bundle, err := h.store.UpdateServiceBundle(r.Context(), params)
	if err != nil {
		writeNotFoundOrInternal(w, "update bundle", "bundle not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toBundleResponse(bundle))
}

// Delete handles DELETE /admin/bundles/{id}.
func (h *BundleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "bundle ID")
	if !ok {
		return
	}

	n, err := h.store.DeleteServiceBundle(r.Context(), id)
	if err != nil {
		writeInternalError(w, "delete bundle", err)
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "bundle not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "bundle deleted"})
}
