package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/handler"
	"github.com/cyclebees/estimates-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func setupPublicRouter(store *mockQueries, svc *mockService) *chi.Mux {
	cache := &fakeLaCarteCache{settings: service.DefaultLaCarte()}
	h := handler.NewPublicHandler(store, svc, cache)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func TestGetPublicOrder(t *testing.T) {
	req := testRequest(database.RequestStatusSent)
	store := &mockQueries{
		getRequestBySlug: func(slug string) (database.Request, error) {
			if slug != req.ShortSlug {
				return database.Request{}, errUnexpected
			}
			return req, nil
		},
		listRequestItems: func(uuid.UUID) ([]database.RequestItem, error) {
			return []database.RequestItem{{ID: uuid.New(), RequestID: req.ID, Section: database.ItemSectionRepair, Label: "Tune-up", PricePaise: 50000, IsSuggested: true}}, nil
		},
		addons: []database.Addon{
			testAddon("Wash", 19900, true, 1),
			testAddon("Retired", 100, false, 2),
		},
	}
	router := setupPublicRouter(store, &mockService{})

	rr := doJSON(t, router, http.MethodGet, "/public/orders/"+req.ShortSlug, nil)
	assertStatus(t, rr, http.StatusOK)

	if strings.Contains(rr.Body.String(), req.PhoneDigitsIntl) {
		t.Error("public order must not expose the customer phone")
	}

	resp := decodeResponse(t, rr)
	order, _ := resp["request"].(map[string]interface{})
	if order["order_id"] != req.OrderCode || order["status"] != "sent" {
		t.Errorf("request: got %v", order)
	}
	if addons, _ := resp["addons"].([]interface{}); len(addons) != 1 {
		t.Errorf("addons: got %v, want only the active one", resp["addons"])
	}
	if bundles, ok := resp["bundles"].([]interface{}); !ok || len(bundles) != 0 {
		t.Errorf("bundles: got %v, want empty array", resp["bundles"])
	}
	lacarte, _ := resp["lacarte"].(map[string]interface{})
	if lacarte["current_price_paise"] != float64(9900) {
		t.Errorf("lacarte: got %v", lacarte)
	}
}

func TestGetPublicOrder_NotFound(t *testing.T) {
	router := setupPublicRouter(&mockQueries{}, &mockService{})

	rr := doJSON(t, router, http.MethodGet, "/public/orders/missing1", nil)
	assertStatus(t, rr, http.StatusNotFound)
}

func TestViewOrder_MarksViewed(t *testing.T) {
	var got service.ConfirmSelectionRequest
	svc := &mockService{
		confirmSelection: func(req service.ConfirmSelectionRequest) (*service.ConfirmSelectionResult, error) {
			got = req
			stored := testRequest(database.RequestStatusViewed)
			stored.SubtotalPaise = 50000
			stored.LacartePaise = 9900
			stored.TotalPaise = 59900
			return &service.ConfirmSelectionResult{Request: stored, PreviousStatus: database.RequestStatusSent}, nil
		},
	}
	router := setupPublicRouter(&mockQueries{}, svc)

	rr := postJSON(t, router, "/public/orders/aB3dE5fG/view", map[string]interface{}{})
	assertStatus(t, rr, http.StatusOK)

	if got.Slug != "aB3dE5fG" {
		t.Errorf("slug: got %q", got.Slug)
	}
	if got.ItemIDs != nil {
		t.Error("omitted selected_items should reach the service as nil")
	}

	resp := decodeResponse(t, rr)
	if resp["message"] != "Order marked as viewed" || resp["status"] != "viewed" {
		t.Errorf("response: got %v", resp)
	}
	if resp["total_amount"] != float64(59900) || resp["currency"] != "INR" {
		t.Errorf("amount: got %v %v", resp["total_amount"], resp["currency"])
	}
}

func TestViewOrder_Confirm(t *testing.T) {
	itemID, addonID, bundleID := uuid.New(), uuid.New(), uuid.New()
	var got service.ConfirmSelectionRequest
	svc := &mockService{
		confirmSelection: func(req service.ConfirmSelectionRequest) (*service.ConfirmSelectionResult, error) {
			got = req
			stored := testRequest(database.RequestStatusConfirmed)
			stored.TotalPaise = 100000
			return &service.ConfirmSelectionResult{Request: stored, PreviousStatus: database.RequestStatusViewed}, nil
		},
	}
	router := setupPublicRouter(&mockQueries{}, svc)

	rr := postJSON(t, router, "/public/orders/aB3dE5fG/view", map[string]interface{}{
		"selected_items":   []string{itemID.String()},
		"selected_addons":  []string{addonID.String()},
		"selected_bundles": []string{bundleID.String()},
		"status":           "confirmed",
	})
	assertStatus(t, rr, http.StatusOK)

	if got.TargetStatus != "confirmed" {
		t.Errorf("target status: got %q", got.TargetStatus)
	}
	if got.ItemIDs == nil || len(*got.ItemIDs) != 1 || (*got.ItemIDs)[0] != itemID {
		t.Errorf("item ids: got %v", got.ItemIDs)
	}
	if len(got.AddonIDs) != 1 || len(got.BundleIDs) != 1 {
		t.Errorf("addon/bundle ids: got %v %v", got.AddonIDs, got.BundleIDs)
	}

	resp := decodeResponse(t, rr)
	if resp["message"] != "Order confirmed successfully" {
		t.Errorf("message: got %v", resp["message"])
	}
}

func TestViewOrder_EmptySelectionIsKept(t *testing.T) {
	var got service.ConfirmSelectionRequest
	svc := &mockService{
		confirmSelection: func(req service.ConfirmSelectionRequest) (*service.ConfirmSelectionResult, error) {
			got = req
			return &service.ConfirmSelectionResult{Request: testRequest(database.RequestStatusViewed)}, nil
		},
	}
	router := setupPublicRouter(&mockQueries{}, svc)

	rr := doRaw(router, http.MethodPost, "/public/orders/aB3dE5fG/view", `{"selected_items":[]}`)
	assertStatus(t, rr, http.StatusOK)

	if got.ItemIDs == nil || len(*got.ItemIDs) != 0 {
		t.Errorf("explicit empty selection should reach the service as an empty slice, got %v", got.ItemIDs)
	}
}

func TestViewOrder_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown slug", service.ErrRequestNotFound, http.StatusNotFound},
		{"cancelled", service.ErrRequestCancelled, http.StatusConflict},
		{"already confirmed", service.ErrInvalidTransition, http.StatusConflict},
		{"bad target", service.ErrInvalidTargetStatus, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				confirmSelection: func(service.ConfirmSelectionRequest) (*service.ConfirmSelectionResult, error) {
					return nil, tt.err
				},
			}
			router := setupPublicRouter(&mockQueries{}, svc)

			rr := postJSON(t, router, "/public/orders/aB3dE5fG/view", map[string]interface{}{"status": "viewed"})
			assertStatus(t, rr, tt.want)
		})
	}
}

func TestViewOrder_InvalidIDs(t *testing.T) {
	router := setupPublicRouter(&mockQueries{}, &mockService{})

	rr := doRaw(router, http.MethodPost, "/public/orders/aB3dE5fG/view", `{"selected_items":["nope"]}`)
	assertStatus(t, rr, http.StatusBadRequest)
}

func TestLookup(t *testing.T) {
	req := testRequest(database.RequestStatusViewed)
	var got database.LookupRequestParams
	store := &mockQueries{
		lookupRequest: func(arg database.LookupRequestParams) (database.Request, error) {
			got = arg
			return req, nil
		},
	}
	router := setupPublicRouter(store, &mockService{})

	for _, param := range []string{"order_id", "orderId"} {
		t.Run(param, func(t *testing.T) {
			rr := doJSON(t, router, http.MethodGet, "/public/lookup?"+param+"=%20CB260314103042%20&phone=9876543210", nil)
			assertStatus(t, rr, http.StatusOK)

			if got.OrderCode != "CB260314103042" {
				t.Errorf("order code: got %q", got.OrderCode)
			}
			if got.PhoneDigitsIntl != "919876543210" {
				t.Errorf("phone: got %q, want country code prefixed", got.PhoneDigitsIntl)
			}

			resp := decodeResponse(t, rr)
			if resp["short_slug"] != req.ShortSlug {
				t.Errorf("short_slug: got %v", resp["short_slug"])
			}
		})
	}
}

func TestLookup_Validation(t *testing.T) {
	router := setupPublicRouter(&mockQueries{}, &mockService{})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"missing phone", "order_id=CB1", http.StatusBadRequest},
		{"missing order", "phone=919876543210", http.StatusBadRequest},
		{"bad phone", "order_id=CB1&phone=12ab", http.StatusBadRequest},
		{"no match", "order_id=CB1&phone=919876543210", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, router, http.MethodGet, "/public/lookup?"+tt.query, nil)
			assertStatus(t, rr, tt.want)
		})
	}
}
