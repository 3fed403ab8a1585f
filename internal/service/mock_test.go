package service

import (
	"context"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- Mock implementations ---

// mockTx implements pgx.Tx with only the methods we need.
// The unused methods panic so we catch accidental calls.
type mockTx struct {
	commitErr   error
	rollbackErr error
	committed   bool
}

func (m *mockTx) Begin(ctx context.Context) (pgx.Tx, error) { panic("not implemented") }
func (m *mockTx) Commit(ctx context.Context) error {
	if m.commitErr == nil {
		m.committed = true
	}
	return m.commitErr
}
func (m *mockTx) Rollback(ctx context.Context) error { return m.rollbackErr }
func (m *mockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("not implemented")
}
func (m *mockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("not implemented")
}
func (m *mockTx) LargeObjects() pgx.LargeObjects { panic("not implemented") }
func (m *mockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("not implemented")
}
func (m *mockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	panic("not implemented")
}
func (m *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("not implemented")
}
func (m *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("not implemented")
}
func (m *mockTx) Conn() *pgx.Conn { panic("not implemented") }

// mockTxBeginner implements TxBeginner and hands out fresh transactions.
type mockTxBeginner struct {
	txs []*mockTx
	err error
}

func (m *mockTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if m.err != nil {
		return nil, m.err
	}
	tx := &mockTx{}
	m.txs = append(m.txs, tx)
	return tx, nil
}

func (m *mockTxBeginner) lastCommitted() bool {
	return len(m.txs) > 0 && m.txs[len(m.txs)-1].committed
}

// mockRequestStore implements RequestStore with configurable behavior.
// Unset lookups return pgx.ErrNoRows; unset writes succeed.
type mockRequestStore struct {
	createRequestFn             func(ctx context.Context, arg database.CreateRequestParams) (database.Request, error)
	getRequestForUpdateFn       func(ctx context.Context, id uuid.UUID) (database.Request, error)
	getRequestBySlugForUpdateFn func(ctx context.Context, slug string) (database.Request, error)
	updateRequestStatusFn       func(ctx context.Context, arg database.UpdateRequestStatusParams) (database.Request, error)
	updateRequestDetailsFn      func(ctx context.Context, arg database.UpdateRequestDetailsParams) (database.Request, error)
	updateRequestSelectionFn    func(ctx context.Context, arg database.UpdateRequestSelectionParams) (database.Request, error)
	deleteRequestFn             func(ctx context.Context, id uuid.UUID) (int64, error)
	createRequestItemFn         func(ctx context.Context, arg database.CreateRequestItemParams) (database.RequestItem, error)
	listRequestItemsFn          func(ctx context.Context, requestID uuid.UUID) ([]database.RequestItem, error)
	updateRequestItemFn         func(ctx context.Context, arg database.UpdateRequestItemParams) (database.RequestItem, error)
	deleteRequestItemFn         func(ctx context.Context, arg database.DeleteRequestItemParams) (int64, error)
	listAddonsByIDsFn           func(ctx context.Context, ids []uuid.UUID) ([]database.Addon, error)
	listBundlesByIDsFn          func(ctx context.Context, ids []uuid.UUID) ([]database.ServiceBundle, error)
	getLaCarteSettingsFn        func(ctx context.Context) (database.LacarteSetting, error)

	// recorded writes
	cleared           []string
	confirmedServices []database.CreateConfirmedServiceParams
	confirmedAddons   []database.CreateConfirmedAddonParams
	confirmedBundles  []database.CreateConfirmedBundleParams
}

func (m *mockRequestStore) CreateRequest(ctx context.Context, arg database.CreateRequestParams) (database.Request, error) {
	if m.createRequestFn != nil {
		return m.createRequestFn(ctx, arg)
	}
	return database.Request{
		ID:              uuid.New(),
		OrderCode:       arg.OrderCode,
		ShortSlug:       arg.ShortSlug,
		BikeName:        arg.BikeName,
		CustomerName:    arg.CustomerName,
		PhoneDigitsIntl: arg.PhoneDigitsIntl,
		Status:          arg.Status,
	}, nil
}
func (m *mockRequestStore) GetRequestForUpdate(ctx context.Context, id uuid.UUID) (database.Request, error) {
	if m.getRequestForUpdateFn != nil {
		return m.getRequestForUpdateFn(ctx, id)
	}
	return database.Request{}, pgx.ErrNoRows
}
func (m *mockRequestStore) GetRequestBySlugForUpdate(ctx context.Context, slug string) (database.Request, error) {
	if m.getRequestBySlugForUpdateFn != nil {
		return m.getRequestBySlugForUpdateFn(ctx, slug)
	}
	return database.Request{}, pgx.ErrNoRows
}
func (m *mockRequestStore) UpdateRequestStatus(ctx context.Context, arg database.UpdateRequestStatusParams) (database.Request, error) {
	if m.updateRequestStatusFn != nil {
		return m.updateRequestStatusFn(ctx, arg)
	}
	return database.Request{ID: arg.ID, Status: arg.Status}, nil
}
func (m *mockRequestStore) UpdateRequestDetails(ctx context.Context, arg database.UpdateRequestDetailsParams) (database.Request, error) {
	if m.updateRequestDetailsFn != nil {
		return m.updateRequestDetailsFn(ctx, arg)
	}
	return database.Request{ID: arg.ID}, nil
}
func (m *mockRequestStore) UpdateRequestSelection(ctx context.Context, arg database.UpdateRequestSelectionParams) (database.Request, error) {
	if m.updateRequestSelectionFn != nil {
		return m.updateRequestSelectionFn(ctx, arg)
	}
	return database.Request{
		ID:            arg.ID,
		Status:        arg.Status,
		SubtotalPaise: arg.SubtotalPaise,
		AddonsPaise:   arg.AddonsPaise,
		BundlesPaise:  arg.BundlesPaise,
		LacartePaise:  arg.LacartePaise,
		TaxPaise:      arg.TaxPaise,
		TotalPaise:    arg.TotalPaise,
	}, nil
}
func (m *mockRequestStore) DeleteRequest(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.deleteRequestFn != nil {
		return m.deleteRequestFn(ctx, id)
	}
	return 1, nil
}
func (m *mockRequestStore) CreateRequestItem(ctx context.Context, arg database.CreateRequestItemParams) (database.RequestItem, error) {
	if m.createRequestItemFn != nil {
		return m.createRequestItemFn(ctx, arg)
	}
	return database.RequestItem{
		ID:          uuid.New(),
		RequestID:   arg.RequestID,
		Section:     arg.Section,
		Label:       arg.Label,
		PricePaise:  arg.PricePaise,
		IsSuggested: arg.IsSuggested,
	}, nil
}
func (m *mockRequestStore) ListRequestItems(ctx context.Context, requestID uuid.UUID) ([]database.RequestItem, error) {
	if m.listRequestItemsFn != nil {
		return m.listRequestItemsFn(ctx, requestID)
	}
	return []database.RequestItem{}, nil
}
func (m *mockRequestStore) UpdateRequestItem(ctx context.Context, arg database.UpdateRequestItemParams) (database.RequestItem, error) {
	if m.updateRequestItemFn != nil {
		return m.updateRequestItemFn(ctx, arg)
	}
	return database.RequestItem{}, pgx.ErrNoRows
}
func (m *mockRequestStore) DeleteRequestItem(ctx context.Context, arg database.DeleteRequestItemParams) (int64, error) {
	if m.deleteRequestItemFn != nil {
		return m.deleteRequestItemFn(ctx, arg)
	}
	return 0, nil
}
func (m *mockRequestStore) ListAddonsByIDs(ctx context.Context, ids []uuid.UUID) ([]database.Addon, error) {
	if m.listAddonsByIDsFn != nil {
		return m.listAddonsByIDsFn(ctx, ids)
	}
	return []database.Addon{}, nil
}
func (m *mockRequestStore) ListServiceBundlesByIDs(ctx context.Context, ids []uuid.UUID) ([]database.ServiceBundle, error) {
	if m.listBundlesByIDsFn != nil {
		return m.listBundlesByIDsFn(ctx, ids)
	}
	return []database.ServiceBundle{}, nil
}
func (m *mockRequestStore) GetLaCarteSettings(ctx context.Context) (database.LacarteSetting, error) {
	if m.getLaCarteSettingsFn != nil {
		return m.getLaCarteSettingsFn(ctx)
	}
	return database.LacarteSetting{}, pgx.ErrNoRows
}
func (m *mockRequestStore) DeleteConfirmedServices(ctx context.Context, requestID uuid.UUID) error {
	m.cleared = append(m.cleared, "services")
	m.confirmedServices = nil
	return nil
}
func (m *mockRequestStore) DeleteConfirmedAddons(ctx context.Context, requestID uuid.UUID) error {
	m.cleared = append(m.cleared, "addons")
	m.confirmedAddons = nil
	return nil
}
func (m *mockRequestStore) DeleteConfirmedBundles(ctx context.Context, requestID uuid.UUID) error {
	m.cleared = append(m.cleared, "bundles")
	m.confirmedBundles = nil
	return nil
}
func (m *mockRequestStore) CreateConfirmedService(ctx context.Context, arg database.CreateConfirmedServiceParams) error {
	m.confirmedServices = append(m.confirmedServices, arg)
	return nil
}
func (m *mockRequestStore) CreateConfirmedAddon(ctx context.Context, arg database.CreateConfirmedAddonParams) error {
	m.confirmedAddons = append(m.confirmedAddons, arg)
	return nil
}
func (m *mockRequestStore) CreateConfirmedBundle(ctx context.Context, arg database.CreateConfirmedBundleParams) error {
	m.confirmedBundles = append(m.confirmedBundles, arg)
	return nil
}

func newTestService(store *mockRequestStore) (*RequestService, *mockTxBeginner) {
	pool := &mockTxBeginner{}
	svc := NewRequestService(pool, func(db database.DBTX) RequestStore { return store })
	return svc, pool
}

func requestWithStatus(status database.RequestStatus) database.Request {
	return database.Request{
		ID:              uuid.New(),
		OrderCode:       "CB2410181530",
		ShortSlug:       "aB3dE5gH",
		BikeName:        "Hero Sprint",
		CustomerName:    "Asha",
		PhoneDigitsIntl: "919876543210",
		Status:          status,
	}
}

func errNoRows() error { return pgx.ErrNoRows }
