package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const testSecret = "test-secret"

var errUnexpected = errors.New("unexpected call")

// mockQueries implements every handler store interface through optional
// function fields. Unset fields fail the call.
type mockQueries struct {
	getRequest          func(id uuid.UUID) (database.Request, error)
	getRequestBySlug    func(slug string) (database.Request, error)
	listRequests        func(arg database.ListRequestsParams) ([]database.ListRequestsRow, error)
	listRequestItems    func(requestID uuid.UUID) ([]database.RequestItem, error)
	listRequestStatuses func() ([]database.ListRequestStatusesRow, error)
	lookupRequest       func(arg database.LookupRequestParams) (database.Request, error)

	listNotes  func(requestID uuid.UUID) ([]database.RequestNote, error)
	createNote func(arg database.CreateRequestNoteParams) (database.RequestNote, error)
	updateNote func(arg database.UpdateRequestNoteParams) (database.RequestNote, error)
	deleteNote func(arg database.DeleteRequestNoteParams) (int64, error)

	addons          []database.Addon
	nextAddonOrder  int32
	createAddon     func(arg database.CreateAddonParams) (database.Addon, error)
	updateAddon     func(arg database.UpdateAddonParams) (database.Addon, error)
	deleteAddon     func(id uuid.UUID) (int64, error)
	bundles         []database.ServiceBundle
	nextBundleOrder int32
	createBundle    func(arg database.CreateServiceBundleParams) (database.ServiceBundle, error)
	updateBundle    func(arg database.UpdateServiceBundleParams) (database.ServiceBundle, error)
	deleteBundle    func(id uuid.UUID) (int64, error)

	upsertLaCarte func(arg database.UpsertLaCarteSettingsParams) (database.LacarteSetting, error)

	confirmedServices []database.ConfirmedOrderService
	confirmedAddons   []database.ConfirmedOrderAddon
	confirmedBundles  []database.ConfirmedOrderBundle

	admins map[string]database.AdminCredential
}

func (m *mockQueries) GetRequest(_ context.Context, id uuid.UUID) (database.Request, error) {
	if m.getRequest == nil {
		return database.Request{}, pgx.ErrNoRows
	}
	return m.getRequest(id)
}

func (m *mockQueries) GetRequestBySlug(_ context.Context, slug string) (database.Request, error) {
	if m.getRequestBySlug == nil {
		return database.Request{}, pgx.ErrNoRows
	}
	return m.getRequestBySlug(slug)
}

func (m *mockQueries) ListRequests(_ context.Context, arg database.ListRequestsParams) ([]database.ListRequestsRow, error) {
	if m.listRequests == nil {
		return nil, errUnexpected
	}
	return m.listRequests(arg)
}

func (m *mockQueries) ListRequestItems(_ context.Context, requestID uuid.UUID) ([]database.RequestItem, error) {
	if m.listRequestItems == nil {
		return []database.RequestItem{}, nil
	}
	return m.listRequestItems(requestID)
}

func (m *mockQueries) ListRequestStatuses(_ context.Context) ([]database.ListRequestStatusesRow, error) {
	if m.listRequestStatuses == nil {
		return nil, errUnexpected
	}
	return m.listRequestStatuses()
}

func (m *mockQueries) LookupRequest(_ context.Context, arg database.LookupRequestParams) (database.Request, error) {
	if m.lookupRequest == nil {
		return database.Request{}, pgx.ErrNoRows
	}
	return m.lookupRequest(arg)
}

func (m *mockQueries) ListRequestNotes(_ context.Context, requestID uuid.UUID) ([]database.RequestNote, error) {
	if m.listNotes == nil {
		return []database.RequestNote{}, nil
	}
	return m.listNotes(requestID)
}

func (m *mockQueries) CreateRequestNote(_ context.Context, arg database.CreateRequestNoteParams) (database.RequestNote, error) {
	if m.createNote == nil {
		return database.RequestNote{}, errUnexpected
	}
	return m.createNote(arg)
}

func (m *mockQueries) UpdateRequestNote(_ context.Context, arg database.UpdateRequestNoteParams) (database.RequestNote, error) {
	if m.updateNote == nil {
		return database.RequestNote{}, pgx.ErrNoRows
	}
	return m.updateNote(arg)
}

func (m *mockQueries) DeleteRequestNote(_ context.Context, arg database.DeleteRequestNoteParams) (int64, error) {
	if m.deleteNote == nil {
		return 0, nil
	}
	return m.deleteNote(arg)
}

func (m *mockQueries) ListAddons(_ context.Context) ([]database.Addon, error) {
	return m.addons, nil
}

func (m *mockQueries) ListActiveAddons(_ context.Context) ([]database.Addon, error) {
	out := []database.Addon{}
	for _, a := range m.addons {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockQueries) GetAddon(_ context.Context, id uuid.UUID) (database.Addon, error) {
	for _, a := range m.addons {
		if a.ID == id {
			return a, nil
		}
	}
	return database.Addon{}, pgx.ErrNoRows
}

func (m *mockQueries) NextAddonDisplayOrder(_ context.Context) (int32, error) {
	return m.nextAddonOrder, nil
}

func (m *mockQueries) CreateAddon(_ context.Context, arg database.CreateAddonParams) (database.Addon, error) {
	if m.createAddon == nil {
		return database.Addon{}, errUnexpected
	}
	return m.createAddon(arg)
}

func (m *mockQueries) UpdateAddon(_ context.Context, arg database.UpdateAddonParams) (database.Addon, error) {
	if m.updateAddon == nil {
		return database.Addon{}, pgx.ErrNoRows
	}
	return m.updateAddon(arg)
}

func (m *mockQueries) DeleteAddon(_ context.Context, id uuid.UUID) (int64, error) {
	if m.deleteAddon == nil {
		return 0, nil
	}
	return m.deleteAddon(id)
}

func (m *mockQueries) ListServiceBundles(_ context.Context) ([]database.ServiceBundle, error) {
	return m.bundles, nil
}

func (m *mockQueries) ListActiveServiceBundles(_ context.Context) ([]database.ServiceBundle, error) {
	out := []database.ServiceBundle{}
	for _, b := range m.bundles {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockQueries) GetServiceBundle(_ context.Context, id uuid.UUID) (database.ServiceBundle, error) {
	for _, b := range m.bundles {
		if b.ID == id {
			return b, nil
		}
	}
	return database.ServiceBundle{}, pgx.ErrNoRows
}

func (m *mockQueries) NextServiceBundleDisplayOrder(_ context.Context) (int32, error) {
	return m.nextBundleOrder, nil
}

func (m *mockQueries) CreateServiceBundle(_ context.Context, arg database.CreateServiceBundleParams) (database.ServiceBundle, error) {
	if m.createBundle == nil {
		return database.ServiceBundle{}, errUnexpected
	}
	return m.createBundle(arg)
}

func (m *mockQueries) UpdateServiceBundle(_ context.Context, arg database.UpdateServiceBundleParams) (database.ServiceBundle, error) {
	if m.updateBundle == nil {
		return database.ServiceBundle{}, pgx.ErrNoRows
	}
	return m.updateBundle(arg)
}

func (m *mockQueries) DeleteServiceBundle(_ context.Context, id uuid.UUID) (int64, error) {
	if m.deleteBundle == nil {
		return 0, nil
	}
	return m.deleteBundle(id)
}

func (m *mockQueries) UpsertLaCarteSettings(_ context.Context, arg database.UpsertLaCarteSettingsParams) (database.LacarteSetting, error) {
	if m.upsertLaCarte == nil {
		return database.LacarteSetting{}, errUnexpected
	}
	return m.upsertLaCarte(arg)
}

func (m *mockQueries) ListConfirmedServices(_ context.Context, _ uuid.UUID) ([]database.ConfirmedOrderService, error) {
	return m.confirmedServices, nil
}

func (m *mockQueries) ListConfirmedAddons(_ context.Context, _ uuid.UUID) ([]database.ConfirmedOrderAddon, error) {
	return m.confirmedAddons, nil
}

func (m *mockQueries) ListConfirmedBundles(_ context.Context, _ uuid.UUID) ([]database.ConfirmedOrderBundle, error) {
	return m.confirmedBundles, nil
}

func (m *mockQueries) GetAdminByUsername(_ context.Context, username string) (database.AdminCredential, error) {
	a, ok := m.admins[username]
	if !ok || !a.IsActive {
		return database.AdminCredential{}, pgx.ErrNoRows
	}
	return a, nil
}

// mockService implements the request service interfaces through optional
// function fields.
type mockService struct {
	createRequest    func(in service.CreateRequestInput) (*service.CreateRequestResult, error)
	updateRequest    func(id uuid.UUID, in service.UpdateRequestInput) (database.Request, error)
	deleteRequest    func(id uuid.UUID, opts service.DeleteOptions) error
	addItem          func(requestID uuid.UUID, in service.ItemInput) (database.RequestItem, error)
	updateItem       func(requestID, itemID uuid.UUID, in service.UpdateItemInput) (database.RequestItem, error)
	deleteItem       func(requestID, itemID uuid.UUID) error
	confirmSelection func(req service.ConfirmSelectionRequest) (*service.ConfirmSelectionResult, error)
}

func (m *mockService) CreateRequest(_ context.Context, in service.CreateRequestInput) (*service.CreateRequestResult, error) {
	if m.createRequest == nil {
		return nil, errUnexpected
	}
	return m.createRequest(in)
}

func (m *mockService) UpdateRequest(_ context.Context, id uuid.UUID, in service.UpdateRequestInput) (database.Request, error) {
	if m.updateRequest == nil {
		return database.Request{}, errUnexpected
	}
	return m.updateRequest(id, in)
}

func (m *mockService) DeleteRequest(_ context.Context, id uuid.UUID, opts service.DeleteOptions) error {
	if m.deleteRequest == nil {
		return errUnexpected
	}
	return m.deleteRequest(id, opts)
}

func (m *mockService) AddItem(_ context.Context, requestID uuid.UUID, in service.ItemInput) (database.RequestItem, error) {
	if m.addItem == nil {
		return database.RequestItem{}, errUnexpected
	}
	return m.addItem(requestID, in)
}

func (m *mockService) UpdateItem(_ context.Context, requestID, itemID uuid.UUID, in service.UpdateItemInput) (database.RequestItem, error) {
	if m.updateItem == nil {
		return database.RequestItem{}, errUnexpected
	}
	return m.updateItem(requestID, itemID, in)
}

func (m *mockService) DeleteItem(_ context.Context, requestID, itemID uuid.UUID) error {
	if m.deleteItem == nil {
		return errUnexpected
	}
	return m.deleteItem(requestID, itemID)
}

func (m *mockService) ConfirmSelection(_ context.Context, req service.ConfirmSelectionRequest) (*service.ConfirmSelectionResult, error) {
	if m.confirmSelection == nil {
		return nil, errUnexpected
	}
	return m.confirmSelection(req)
}

// --- Helpers ---

func testRequest(status database.RequestStatus) database.Request {
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return database.Request{
		ID:              uuid.New(),
		OrderCode:       "CB260314103042",
		ShortSlug:       "aB3dE5fG",
		BikeName:        "Hero Sprint",
		CustomerName:    "Ravi Kumar",
		PhoneDigitsIntl: "919876543210",
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func doRaw(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, router, http.MethodPost, path, body)
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func assertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, want, rr.Body.String())
	}
}
