package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func setupBillRouter(store *mockQueries) *chi.Mux {
	h := handler.NewBillHandler(store)
	r := chi.NewRouter()
	r.Route("/requests", h.RegisterRoutes)
	h.RegisterPublicRoutes(r)
	return r
}

func confirmedStore(req database.Request) *mockQueries {
	return &mockQueries{
		getRequest:       func(uuid.UUID) (database.Request, error) { return req, nil },
		getRequestBySlug: func(string) (database.Request, error) { return req, nil },
		confirmedServices: []database.ConfirmedOrderService{
			{RequestID: req.ID, ServiceItemID: uuid.New(), Section: database.ItemSectionRepair, Label: "Brake adjustment", PricePaise: 15000},
			{RequestID: req.ID, ServiceItemID: uuid.New(), Section: database.ItemSectionReplacement, Label: "Chain", PricePaise: 45000},
		},
		confirmedAddons: []database.ConfirmedOrderAddon{
			{RequestID: req.ID, AddonID: uuid.New(), Name: "Wash", Description: pgtype.Text{String: "Foam wash", Valid: true}, PricePaise: 19900},
		},
	}
}

func confirmedRequest() database.Request {
	req := testRequest(database.RequestStatusConfirmed)
	req.SubtotalPaise = 60000
	req.AddonsPaise = 19900
	req.LacartePaise = 9900
	req.TotalPaise = 89800
	return req
}

func TestConfirmedSnapshot(t *testing.T) {
	req := confirmedRequest()
	router := setupBillRouter(confirmedStore(req))

	rr := doJSON(t, router, http.MethodGet, "/requests/"+req.ID.String()+"/confirmed", nil)
	assertStatus(t, rr, http.StatusOK)

	resp := decodeResponse(t, rr)
	if services, _ := resp["services"].([]interface{}); len(services) != 2 {
		t.Errorf("services: got %v", resp["services"])
	}
	if bundles, ok := resp["bundles"].([]interface{}); !ok || len(bundles) != 0 {
		t.Errorf("bundles: got %v, want empty array", resp["bundles"])
	}
	totals, _ := resp["totals"].(map[string]interface{})
	if totals["total_paise"] != float64(89800) {
		t.Errorf("total_paise: got %v, want 89800", totals["total_paise"])
	}
}

func TestAdminBill(t *testing.T) {
	req := confirmedRequest()
	router := setupBillRouter(confirmedStore(req))

	rr := doJSON(t, router, http.MethodGet, "/requests/"+req.ID.String()+"/bill", nil)
	assertStatus(t, rr, http.StatusOK)

	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q", ct)
	}
	want := `attachment; filename="Admin_Order_CB260314103042.html"`
	if cd := rr.Header().Get("Content-Disposition"); cd != want {
		t.Errorf("content disposition: got %q, want %q", cd, want)
	}

	body := rr.Body.String()
	for _, s := range []string{"ADMIN COPY", "Brake adjustment", "Chain", "Wash", "₹898.00"} {
		if !strings.Contains(body, s) {
			t.Errorf("bill missing %q", s)
		}
	}
}

func TestPublicBill_CustomerCopy(t *testing.T) {
	req := confirmedRequest()
	router := setupBillRouter(confirmedStore(req))

	rr := doJSON(t, router, http.MethodGet, "/public/orders/"+req.ShortSlug+"/bill", nil)
	assertStatus(t, rr, http.StatusOK)

	if strings.Contains(rr.Body.String(), "ADMIN COPY") {
		t.Error("customer bill should not carry the admin badge")
	}
	want := `attachment; filename="Order_CB260314103042.html"`
	if cd := rr.Header().Get("Content-Disposition"); cd != want {
		t.Errorf("content disposition: got %q, want %q", cd, want)
	}
}

func TestBill_RequiresConfirmed(t *testing.T) {
	for _, status := range []database.RequestStatus{
		database.RequestStatusDraft,
		database.RequestStatusSent,
		database.RequestStatusViewed,
		database.RequestStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			req := testRequest(status)
			router := setupBillRouter(confirmedStore(req))

			rr := doJSON(t, router, http.MethodGet, "/public/orders/"+req.ShortSlug+"/bill", nil)
			assertStatus(t, rr, http.StatusConflict)
		})
	}
}

func TestBill_NotFound(t *testing.T) {
	router := setupBillRouter(&mockQueries{})

	rr := doJSON(t, router, http.MethodGet, "/requests/"+uuid.New().String()+"/bill", nil)
	assertStatus(t, rr, http.StatusNotFound)

	rr = doJSON(t, router, http.MethodGet, "/public/orders/nothing1/bill", nil)
	assertStatus(t, rr, http.StatusNotFound)
}
