package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ItemServicer defines the service methods needed by item handlers.
// Satisfied by *service.RequestService; narrow interface for testability.
type ItemServicer interface {
	AddItem(ctx context.Context, requestID uuid.UUID, in service.ItemInput) (database.RequestItem, error)
	UpdateItem(ctx context.Context, requestID, itemID uuid.UUID, in service.UpdateItemInput) (database.RequestItem, error)
	DeleteItem(ctx context.Context, requestID, itemID uuid.UUID) error
}

// ItemStore defines the database methods needed by item read handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type ItemStore interface {
	GetRequest(ctx context.Context, id uuid.UUID) (database.Request, error)
	ListRequestItems(ctx context.Context, requestID uuid.UUID) ([]database.RequestItem, error)
}

// ItemHandler handles line item endpoints of a request.
type ItemHandler struct {
	svc   ItemServicer
	store ItemStore
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc ItemServicer, store ItemStore) *ItemHandler {
	return &ItemHandler{svc: svc, store: store}
}

// RegisterRoutes registers item endpoints on the given Chi router.
// Expected to be mounted at /requests/{id}/items.
func (h *ItemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{itemId}", h.Update)
	r.Delete("/{itemId}", h.Delete)
}

// --- Request types ---

type createItemBody struct {
	Section     string `json:"section"`
	Label       string `json:"label"`
	PricePaise  int64  `json:"price_paise"`
	IsSuggested *bool  `json:"is_suggested"`
}

type updateItemBody struct {
	Section     *string `json:"section"`
	Label       *string `json:"label"`
	PricePaise  *int64  `json:"price_paise"`
	IsSuggested *bool   `json:"is_suggested"`
}

// --- Handlers ---

// List handles GET /requests/{id}/items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}

	if _, err := h.store.GetRequest(r.Context(), requestID); err != nil {
		writeNotFoundOrInternal(w, "get request", "request not found", err)
		return
	}

	items, err := h.store.ListRequestItems(r.Context(), requestID)
	if err != nil {
		writeInternalError(w, "list request items", err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponses(items))
}

// Create handles POST /requests/{id}/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}

	var req createItemBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	suggested := true
	if req.IsSuggested != nil {
		suggested = *req.IsSuggested
	}

	item, err := h.svc.AddItem(r.Context(), requestID, service.ItemInput{
		Section:     req.Section,
		Label:       req.Label,
		PricePaise:  req.PricePaise,
		IsSuggested: suggested,
	})
	if err != nil {
		writeServiceError(w, "add item", err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// Update handles PUT /requests/{id}/items/{itemId}. Omitted fields keep
// their current value.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(w, r, "itemId", "item ID")
	if !ok {
		return
	}

	var req updateItemBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), requestID, itemID, service.UpdateItemInput{
		Section:     req.Section,
		Label:       req.Label,
		PricePaise:  req.PricePaise,
		IsSuggested: req.IsSuggested,
	})
	if err != nil {
		writeServiceError(w, "update item", err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /requests/{id}/items/{itemId}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(w, r, "itemId", "item ID")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), requestID, itemID); err != nil {
		writeServiceError(w, "delete item", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
