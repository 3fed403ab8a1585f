package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/enum"
	"github.com/cyclebees/estimates-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// RequestServicer defines the service methods needed by request handlers.
// Satisfied by *service.RequestService; narrow interface for testability.
type RequestServicer interface {
	CreateRequest(ctx context.Context, in service.CreateRequestInput) (*service.CreateRequestResult, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, in service.UpdateRequestInput) (database.Request, error)
	DeleteRequest(ctx context.Context, id uuid.UUID, opts service.DeleteOptions) error
}

// RequestStore defines the database methods needed by request read handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type RequestStore interface {
	GetRequest(ctx context.Context, id uuid.UUID) (database.Request, error)
	ListRequests(ctx context.Context, arg database.ListRequestsParams) ([]database.ListRequestsRow, error)
	ListRequestItems(ctx context.Context, requestID uuid.UUID) ([]database.RequestItem, error)
	ListRequestStatuses(ctx context.Context) ([]database.ListRequestStatusesRow, error)
}

// RequestHandler handles service request endpoints.
type RequestHandler struct {
	svc           RequestServicer
	store         RequestStore
	publicBaseURL string
}

// NewRequestHandler creates a new RequestHandler. publicBaseURL is the
// customer-facing origin used to build share links.
func NewRequestHandler(svc RequestServicer, store RequestStore, publicBaseURL string) *RequestHandler {
	return &RequestHandler{svc: svc, store: store, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// RegisterRoutes registers request endpoints on the given Chi router.
// Expected to be mounted at /requests behind authentication.
func (h *RequestHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/statuses", h.Statuses)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type createItemRequest struct {
	Label       string `json:"label"`
	PricePaise  int64  `json:"price_paise"`
	IsSuggested *bool  `json:"is_suggested"`
}

type createRequestRequest struct {
	OrderID          string              `json:"order_id"`
	BikeName         string              `json:"bike_name"`
	CustomerName     string              `json:"customer_name"`
	Phone            string              `json:"phone_digits_intl"`
	Status           string              `json:"status"`
	RepairItems      []createItemRequest `json:"repair_items"`
	ReplacementItems []createItemRequest `json:"replacement_items"`
}

type updateRequestRequest struct {
	BikeName     *string `json:"bike_name"`
	CustomerName *string `json:"customer_name"`
	Phone        *string `json:"phone_digits_intl"`
	Status       *string `json:"status"`
}

type itemResponse struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"request_id"`
	Section     string    `json:"section"`
	Label       string    `json:"label"`
	PricePaise  int64     `json:"price_paise"`
	IsSuggested bool      `json:"is_suggested"`
	CreatedAt   time.Time `json:"created_at"`
}

type requestResponse struct {
	ID              uuid.UUID  `json:"id"`
	OrderID         string     `json:"order_id"`
	ShortSlug       string     `json:"short_slug"`
	BikeName        string     `json:"bike_name"`
	CustomerName    string     `json:"customer_name"`
	PhoneDigitsIntl string     `json:"phone_digits_intl"`
	Status          string     `json:"status"`
	SubtotalPaise   int64      `json:"subtotal_paise"`
	AddonsPaise     int64      `json:"addons_paise"`
	BundlesPaise    int64      `json:"bundles_paise"`
	LacartePaise    int64      `json:"lacarte_paise"`
	TaxPaise        int64      `json:"tax_paise"`
	TotalPaise      int64      `json:"total_paise"`
	SentAt          *time.Time `json:"sent_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	TotalItems      *int64     `json:"total_items,omitempty"`
}

type requestDetailResponse struct {
	requestResponse
	Items []itemResponse `json:"items"`
}

type createRequestResponse struct {
	requestDetailResponse
	ShareURL    string `json:"share_url"`
	WhatsAppURL string `json:"whatsapp_url"`
	Message     string `json:"message"`
}

type requestListResponse struct {
	Requests []requestResponse `json:"requests"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type statusResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toItemResponse(i database.RequestItem) itemResponse {
	return itemResponse{
		ID:          i.ID,
		RequestID:   i.RequestID,
		Section:     string(i.Section),
		Label:       i.Label,
		PricePaise:  i.PricePaise,
		IsSuggested: i.IsSuggested,
		CreatedAt:   i.CreatedAt,
	}
}

func toItemResponses(items []database.RequestItem) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = toItemResponse(it)
	}
	return resp
}

func toRequestResponse(r database.Request) requestResponse {
	return requestResponse{
		ID:              r.ID,
		OrderID:         r.OrderCode,
		ShortSlug:       r.ShortSlug,
		BikeName:        r.BikeName,
		CustomerName:    r.CustomerName,
		PhoneDigitsIntl: r.PhoneDigitsIntl,
		Status:          string(r.Status),
		SubtotalPaise:   r.SubtotalPaise,
		AddonsPaise:     r.AddonsPaise,
		BundlesPaise:    r.BundlesPaise,
		LacartePaise:    r.LacartePaise,
		TaxPaise:        r.TaxPaise,
		TotalPaise:      r.TotalPaise,
		SentAt:          timestamptzPtr(r.SentAt),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func listRowToResponse(r database.ListRequestsRow) requestResponse {
	resp := toRequestResponse(database.Request{
		ID:              r.ID,
		OrderCode:       r.OrderCode,
		ShortSlug:       r.ShortSlug,
		BikeName:        r.BikeName,
		CustomerName:    r.CustomerName,
		PhoneDigitsIntl: r.PhoneDigitsIntl,
		Status:          r.Status,
		SubtotalPaise:   r.SubtotalPaise,
		AddonsPaise:     r.AddonsPaise,
		BundlesPaise:    r.BundlesPaise,
		LacartePaise:    r.LacartePaise,
		TaxPaise:        r.TaxPaise,
		TotalPaise:      r.TotalPaise,
		SentAt:          r.SentAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	})
	count := r.ItemCount
	resp.TotalItems = &count
	return resp
}

func timestamptzPtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

// --- Helpers ---

// shareURL is the customer-facing estimate link.
func shareURL(base, slug string) string {
	return base + "/o/" + slug
}

// whatsappURL builds a wa.me deep link that pre-fills the estimate message.
func whatsappURL(phone, customerName, bikeName, orderCode, link string) string {
	first := customerName
	if fields := strings.Fields(customerName); len(fields) > 0 {
		first = fields[0]
	}
	msg := fmt.Sprintf("Hi %s, your CycleBees service estimate for %s (Order %s) is ready. Review & choose items here: %s",
		first, bikeName, orderCode, link)
	return "https://wa.me/" + phone + "?text=" + strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}

func toItemInputs(section string, items []createItemRequest) []service.ItemInput {
	out := make([]service.ItemInput, len(items))
	for i, it := range items {
		suggested := true
		if it.IsSuggested != nil {
			suggested = *it.IsSuggested
		}
		out[i] = service.ItemInput{
			Section:     section,
			Label:       it.Label,
			PricePaise:  it.PricePaise,
			IsSuggested: suggested,
		}
	}
	return out
}

// --- Handlers ---

// Create handles POST /requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	items := append(
		toItemInputs(enum.ItemSectionRepair, req.RepairItems),
		toItemInputs(enum.ItemSectionReplacement, req.ReplacementItems)...,
	)

	result, err := h.svc.CreateRequest(r.Context(), service.CreateRequestInput{
		OrderCode:    req.OrderID,
		BikeName:     req.BikeName,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Status:       req.Status,
		Items:        items,
	})
	if err != nil {
		writeServiceError(w, "create request", err)
		return
	}

	created := result.Request
	link := shareURL(h.publicBaseURL, created.ShortSlug)
	wa := whatsappURL(created.PhoneDigitsIntl, created.CustomerName, created.BikeName, created.OrderCode, link)

	writeJSON(w, http.StatusCreated, createRequestResponse{
		requestDetailResponse: requestDetailResponse{
			requestResponse: toRequestResponse(created),
			Items:           toItemResponses(result.Items),
		},
		ShareURL:    link,
		WhatsAppURL: wa,
		Message:     "Request created successfully",
	})
}

// List handles GET /requests with optional status, search, limit and offset.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 50
	if s := q.Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > 200 {
		limit = 200
	}

	var offset int64
	if s := q.Get("offset"); s != "" {
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil || v < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid offset"})
			return
		}
		offset = v
	}

	params := database.ListRequestsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	}

	if s := q.Get("status"); s != "" && s != "all" {
		status, err := service.ValidateStatus(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status filter"})
			return
		}
		params.Status = database.NullRequestStatus{RequestStatus: status, Valid: true}
	}
	if s := strings.TrimSpace(q.Get("search")); s != "" {
		params.Search = pgtype.Text{String: s, Valid: true}
	}

	rows, err := h.store.ListRequests(r.Context(), params)
	if err != nil {
		writeInternalError(w, "list requests", err)
		return
	}

	resp := make([]requestResponse, len(rows))
	for i, row := range rows {
		resp[i] = listRowToResponse(row)
	}

	writeJSON(w, http.StatusOK, requestListResponse{
		Requests: resp,
		Limit:    limit,
		Offset:   int(offset),
	})
}

// Statuses handles GET /requests/statuses, the payload the dashboard polls.
func (h *RequestHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListRequestStatuses(r.Context())
	if err != nil {
		writeInternalError(w, "list request statuses", err)
		return
	}

	resp := make([]statusResponse, len(rows))
	for i, row := range rows {
		resp[i] = statusResponse{ID: row.ID, Status: string(row.Status), UpdatedAt: row.UpdatedAt}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /requests/{id}, returning the request with its items.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}

	req, err := h.store.GetRequest(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "request not found"})
			return
		}
		writeInternalError(w, "get request", err)
		return
	}

	items, err := h.store.ListRequestItems(r.Context(), id)
	if err != nil {
		writeInternalError(w, "list request items", err)
		return
	}

	writeJSON(w, http.StatusOK, requestDetailResponse{
		requestResponse: toRequestResponse(req),
		Items:           toItemResponses(items),
	})
}

// Update handles PATCH /requests/{id}. Detail fields and status may be sent
// together; they are validated up front and written in one transaction.
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}

	var req updateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.BikeName == nil && req.CustomerName == nil && req.Phone == nil && req.Status == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no valid fields to update"})
		return
	}

	updated, err := h.svc.UpdateRequest(r.Context(), id, service.UpdateRequestInput{
		Details: service.UpdateDetailsInput{
			BikeName:     req.BikeName,
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
		},
		Status: req.Status,
	})
	if err != nil {
		writeServiceError(w, "update request", err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponse(updated))
}

// Delete handles DELETE /requests/{id}. ?force=true&confirm=<order id>
// deletes regardless of status.
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "request ID")
	if !ok {
		return
	}

	q := r.URL.Query()
	force, _ := strconv.ParseBool(q.Get("force"))
	if err := h.svc.DeleteRequest(r.Context(), id, service.DeleteOptions{
		Force:   force,
		Confirm: q.Get("confirm"),
	}); err != nil {
		writeServiceError(w, "delete request", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "request deleted"})
}
