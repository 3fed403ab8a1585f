package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const maxCreateRetries = 3

const (
	constraintOrderCode = "requests_order_code_key"
	constraintShortSlug = "requests_short_slug_key"
)

// Errors returned by the request service.
var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrRequestLocked        = errors.New("request can no longer be edited")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrStatusConflict       = errors.New("status changed, please retry")
	ErrRequestCancelled     = errors.New("order has been cancelled")
	ErrDeleteLocked         = errors.New("cannot delete a request the customer has viewed or confirmed")
	ErrForceConfirmMismatch = errors.New("confirm must match the order id")
	ErrInvalidOrderCode     = errors.New("order_id must be at most 100 characters")
	ErrOrderCodeRequired    = errors.New("order_id is required")
	ErrOrderCodeTaken       = errors.New("order_id already exists")
	ErrInvalidBikeName      = errors.New("bike_name must be 1-200 characters")
	ErrInvalidCustomerName  = errors.New("customer_name must be 1-200 characters")
	ErrInvalidPhone         = errors.New("phone must be 10-15 digits without + or spaces")
	ErrInvalidSection       = errors.New("section must be repair or replacement")
	ErrInvalidLabel         = errors.New("label must be 1-500 characters")
	ErrInvalidPrice         = errors.New("price_paise must be between 1 and 10000000")
	ErrInvalidInitialStatus = errors.New("status must be draft or sent")
	ErrInvalidTargetStatus  = errors.New("status must be viewed or confirmed")
	ErrNothingToUpdate      = errors.New("no fields to update")
)

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RequestStore defines the DB methods used by the request workflow.
// Satisfied by *database.Queries (and its WithTx variant).
type RequestStore interface {
	CreateRequest(ctx context.Context, arg database.CreateRequestParams) (database.Request, error)
	GetRequestForUpdate(ctx context.Context, id uuid.UUID) (database.Request, error)
	GetRequestBySlugForUpdate(ctx context.Context, shortSlug string) (database.Request, error)
	UpdateRequestStatus(ctx context.Context, arg database.UpdateRequestStatusParams) (database.Request, error)
	UpdateRequestDetails(ctx context.Context, arg database.UpdateRequestDetailsParams) (database.Request, error)
	UpdateRequestSelection(ctx context.Context, arg database.UpdateRequestSelectionParams) (database.Request, error)
	DeleteRequest(ctx context.Context, id uuid.UUID) (int64, error)

	CreateRequestItem(ctx context.Context, arg database.CreateRequestItemParams) (database.RequestItem, error)
	ListRequestItems(ctx context.Context, requestID uuid.UUID) ([]database.RequestItem, error)
	UpdateRequestItem(ctx context.Context, arg database.UpdateRequestItemParams) (database.RequestItem, error)
	DeleteRequestItem(ctx context.Context, arg database.DeleteRequestItemParams) (int64, error)

	ListAddonsByIDs(ctx context.Context, ids []uuid.UUID) ([]database.Addon, error)
	ListServiceBundlesByIDs(ctx context.Context, ids []uuid.UUID) ([]database.ServiceBundle, error)
	GetLaCarteSettings(ctx context.Context) (database.LacarteSetting, error)

	DeleteConfirmedServices(ctx context.Context, requestID uuid.UUID) error
	DeleteConfirmedAddons(ctx context.Context, requestID uuid.UUID) error
	DeleteConfirmedBundles(ctx context.Context, requestID uuid.UUID) error
	CreateConfirmedService(ctx context.Context, arg database.CreateConfirmedServiceParams) error
	CreateConfirmedAddon(ctx context.Context, arg database.CreateConfirmedAddonParams) error
	CreateConfirmedBundle(ctx context.Context, arg database.CreateConfirmedBundleParams) error
}

// NewRequestStore creates a RequestStore from a DBTX (pool or tx).
type NewRequestStore func(db database.DBTX) RequestStore

// ItemInput is a single line item as entered by staff.
type ItemInput struct {
	Section     string
	Label       string
	PricePaise  int64
	IsSuggested bool
}

// CreateRequestInput is the input for creating an estimate. A blank
// OrderCode is generated; a blank Status means sent.
type CreateRequestInput struct {
	OrderCode    string
	BikeName     string
	CustomerName string
	Phone        string
	Status       string
	Items        []ItemInput
}

// CreateRequestResult is the created request with its items.
type CreateRequestResult struct {
	Request database.Request
	Items   []database.RequestItem
}

// UpdateDetailsInput carries the customer-facing fields staff may correct.
// Nil fields are left unchanged.
type UpdateDetailsInput struct {
	BikeName     *string
	CustomerName *string
	Phone        *string
}

// UpdateItemInput carries a partial item update. Nil fields are left unchanged.
type UpdateItemInput struct {
	Section     *string
	Label       *string
	PricePaise  *int64
	IsSuggested *bool
}

// DeleteOptions controls the administrative override on DeleteRequest.
// Force deletes regardless of status and requires Confirm to equal the
// request's order code.
type DeleteOptions struct {
	Force   bool
	Confirm string
}

// RequestService handles the estimate lifecycle.
type RequestService struct {
	pool     TxBeginner
	newStore NewRequestStore
	now      func() time.Time
	newSlug  func() (string, error)
}

// NewRequestService creates a new RequestService.
func NewRequestService(pool TxBeginner, newStore NewRequestStore) *RequestService {
	return &RequestService{
		pool:     pool,
		newStore: newStore,
		now:      time.Now,
		newSlug:  NewSlug,
	}
}

// CreateRequest validates and creates a request with its items atomically.
// Retries up to maxCreateRetries times when a generated slug or order code
// collides with an existing one.
func (s *RequestService) CreateRequest(ctx context.Context, in CreateRequestInput) (*CreateRequestResult, error) {
	bikeName, err := validateText(in.BikeName, maxBikeNameLen, ErrInvalidBikeName)
	if err != nil {
		return nil, err
	}
	customerName, err := validateText(in.CustomerName, maxCustomerNameLen, ErrInvalidCustomerName)
	if err != nil {
		return nil, err
	}
	phone, err := NormalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	orderCode := strings.TrimSpace(in.OrderCode)
	if utf8.RuneCountInString(orderCode) > maxOrderCodeLen {
		return nil, ErrInvalidOrderCode
	}
	generateCode := orderCode == ""

	status := database.RequestStatusSent
	if in.Status != "" {
		st, err := ValidateStatus(in.Status)
		if err != nil {
			return nil, err
		}
		if st != database.RequestStatusDraft && st != database.RequestStatusSent {
			return nil, ErrInvalidInitialStatus
		}
		status = st
	}

	items := make([]database.CreateRequestItemParams, 0, len(in.Items))
	for i, it := range in.Items {
		p, err := validateItem(it)
		if err != nil {
			return nil, fmt.Errorf("item[%d]: %w", i, err)
		}
		items = append(items, p)
	}

	var lastErr error
	for attempt := 0; attempt < maxCreateRetries; attempt++ {
		code := orderCode
		if generateCode {
			code, err = NewOrderCode(s.now())
			if err != nil {
				return nil, err
			}
		}
		slug, err := s.newSlug()
		if err != nil {
			return nil, err
		}

		result, err := s.createRequestTx(ctx, database.CreateRequestParams{
			OrderCode:       code,
			ShortSlug:       slug,
			BikeName:        bikeName,
			CustomerName:    customerName,
			PhoneDigitsIntl: phone,
			Status:          status,
		}, items)
		if err == nil {
			return result, nil
		}
		if isUniqueViolation(err, constraintShortSlug) ||
			(generateCode && isUniqueViolation(err, constraintOrderCode)) {
			lastErr = err
			continue
		}
		if isUniqueViolation(err, constraintOrderCode) {
			return nil, ErrOrderCodeTaken
		}
		return nil, err
	}
	return nil, lastErr
}

func (s *RequestService) createRequestTx(ctx context.Context, params database.CreateRequestParams, items []database.CreateRequestItemParams) (*CreateRequestResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	req, err := store.CreateRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	created := make([]database.RequestItem, 0, len(items))
	for _, p := range items {
		p.RequestID = req.ID
		item, err := store.CreateRequestItem(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("create request item: %w", err)
		}
		created = append(created, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &CreateRequestResult{Request: req, Items: created}, nil
}

// UpdateRequestInput is a staff PATCH: detail corrections and an optional
// status change applied together.
type UpdateRequestInput struct {
	Details UpdateDetailsInput
	Status  *string
}

// UpdateStatus applies a staff status change.
func (s *RequestService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (database.Request, error) {
	return s.UpdateRequest(ctx, id, UpdateRequestInput{Status: &status})
}

// UpdateDetails corrects bike or customer details while the request is editable.
func (s *RequestService) UpdateDetails(ctx context.Context, id uuid.UUID, in UpdateDetailsInput) (database.Request, error) {
	return s.UpdateRequest(ctx, id, UpdateRequestInput{Details: in})
}

// UpdateRequest validates every field first, then applies details and the
// status change in one transaction under the row lock. Details are checked
// against the status read before the change, so they require an editable
// request. The status write is conditional on that same status.
func (s *RequestService) UpdateRequest(ctx context.Context, id uuid.UUID, in UpdateRequestInput) (database.Request, error) {
	details, hasDetails, err := detailsParams(id, in.Details)
	if err != nil {
		return database.Request{}, err
	}
	var next database.RequestStatus
	if in.Status != nil {
		if next, err = ValidateStatus(*in.Status); err != nil {
			return database.Request{}, err
		}
	}
	if !hasDetails && in.Status == nil {
		return database.Request{}, ErrNothingToUpdate
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return database.Request{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	current, err := getRequestForUpdate(ctx, store, id)
	if err != nil {
		return database.Request{}, err
	}
	if hasDetails && !IsEditable(current.Status) {
		return database.Request{}, ErrRequestLocked
	}
	if in.Status != nil {
		if err := validateStatusTransition(current.Status, next, ActorStaff); err != nil {
			return database.Request{}, err
		}
	}

	updated := current
	if hasDetails {
		if updated, err = store.UpdateRequestDetails(ctx, details); err != nil {
			return database.Request{}, fmt.Errorf("update request details: %w", err)
		}
	}
	if in.Status != nil {
		updated, err = store.UpdateRequestStatus(ctx, database.UpdateRequestStatusParams{
			Status:         next,
			ID:             id,
			ExpectedStatus: current.Status,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return database.Request{}, ErrStatusConflict
			}
			return database.Request{}, fmt.Errorf("update status: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return database.Request{}, fmt.Errorf("commit tx: %w", err)
	}
	return updated, nil
}

func detailsParams(id uuid.UUID, in UpdateDetailsInput) (database.UpdateRequestDetailsParams, bool, error) {
	params := database.UpdateRequestDetailsParams{ID: id}
	if in.BikeName == nil && in.CustomerName == nil && in.Phone == nil {
		return params, false, nil
	}
	if in.BikeName != nil {
		v, err := validateText(*in.BikeName, maxBikeNameLen, ErrInvalidBikeName)
		if err != nil {
			return params, false, err
		}
		params.BikeName = pgtype.Text{String: v, Valid: true}
	}
	if in.CustomerName != nil {
		v, err := validateText(*in.CustomerName, maxCustomerNameLen, ErrInvalidCustomerName)
		if err != nil {
			return params, false, err
		}
		params.CustomerName = pgtype.Text{String: v, Valid: true}
	}
	if in.Phone != nil {
		v, err := NormalizePhone(*in.Phone)
		if err != nil {
			return params, false, err
		}
		params.PhoneDigitsIntl = pgtype.Text{String: v, Valid: true}
	}
	return params, true, nil
}

// DeleteRequest removes a request with its items, notes and snapshots.
func (s *RequestService) DeleteRequest(ctx context.Context, id uuid.UUID, opts DeleteOptions) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	current, err := getRequestForUpdate(ctx, store, id)
	if err != nil {
		return err
	}
	if opts.Force {
		if strings.TrimSpace(opts.Confirm) != current.OrderCode {
			return ErrForceConfirmMismatch
		}
	} else if !IsDeletable(current.Status) {
		return ErrDeleteLocked
	}

	n, err := store.DeleteRequest(ctx, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if n == 0 {
		return ErrRequestNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// AddItem appends a line item to an editable request.
func (s *RequestService) AddItem(ctx context.Context, requestID uuid.UUID, in ItemInput) (database.RequestItem, error) {
	params, err := validateItem(in)
	if err != nil {
		return database.RequestItem{}, err
	}
	params.RequestID = requestID

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return database.RequestItem{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	if _, err := lockEditable(ctx, store, requestID); err != nil {
		return database.RequestItem{}, err
	}
	item, err := store.CreateRequestItem(ctx, params)
	if err != nil {
		return database.RequestItem{}, fmt.Errorf("create request item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return database.RequestItem{}, fmt.Errorf("commit tx: %w", err)
	}
	return item, nil
}

// UpdateItem applies a partial update to a line item of an editable request.
func (s *RequestService) UpdateItem(ctx context.Context, requestID, itemID uuid.UUID, in UpdateItemInput) (database.RequestItem, error) {
	params := database.UpdateRequestItemParams{ID: itemID, RequestID: requestID}
	if in.Section == nil && in.Label == nil && in.PricePaise == nil && in.IsSuggested == nil {
		return database.RequestItem{}, ErrNothingToUpdate
	}
	if in.Section != nil {
		sec, err := ValidateSection(*in.Section)
		if err != nil {
			return database.RequestItem{}, err
		}
		params.Section = database.NullItemSection{ItemSection: sec, Valid: true}
	}
	if in.Label != nil {
		label, err := ValidateLabel(*in.Label)
		if err != nil {
			return database.RequestItem{}, err
		}
		params.Label = pgtype.Text{String: label, Valid: true}
	}
	if in.PricePaise != nil {
		if err := ValidateItemPrice(*in.PricePaise); err != nil {
			return database.RequestItem{}, err
		}
		params.PricePaise = pgtype.Int8{Int64: *in.PricePaise, Valid: true}
	}
	if in.IsSuggested != nil {
		params.IsSuggested = pgtype.Bool{Bool: *in.IsSuggested, Valid: true}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return database.RequestItem{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	if _, err := lockEditable(ctx, store, requestID); err != nil {
		return database.RequestItem{}, err
	}
	item, err := store.UpdateRequestItem(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.RequestItem{}, ErrItemNotFound
		}
		return database.RequestItem{}, fmt.Errorf("update request item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return database.RequestItem{}, fmt.Errorf("commit tx: %w", err)
	}
	return item, nil
}

// DeleteItem removes a line item from an editable request.
func (s *RequestService) DeleteItem(ctx context.Context, requestID, itemID uuid.UUID) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	store := s.newStore(tx)

	if _, err := lockEditable(ctx, store, requestID); err != nil {
		return err
	}
	n, err := store.DeleteRequestItem(ctx, database.DeleteRequestItemParams{ID: itemID, RequestID: requestID})
	if err != nil {
		return fmt.Errorf("delete request item: %w", err)
	}
	if n == 0 {
		return ErrItemNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// --- Helpers ---

func getRequestForUpdate(ctx context.Context, store RequestStore, id uuid.UUID) (database.Request, error) {
	req, err := store.GetRequestForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Request{}, ErrRequestNotFound
		}
		return database.Request{}, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

// lockEditable locks the request row and rejects the call unless the
// request is still awaiting the customer.
func lockEditable(ctx context.Context, store RequestStore, id uuid.UUID) (database.Request, error) {
	req, err := getRequestForUpdate(ctx, store, id)
	if err != nil {
		return database.Request{}, err
	}
	if !IsEditable(req.Status) {
		return database.Request{}, ErrRequestLocked
	}
	return req, nil
}

func validateItem(in ItemInput) (database.CreateRequestItemParams, error) {
	section, err := ValidateSection(in.Section)
	if err != nil {
		return database.CreateRequestItemParams{}, err
	}
	label, err := ValidateLabel(in.Label)
	if err != nil {
		return database.CreateRequestItemParams{}, err
	}
	if err := ValidateItemPrice(in.PricePaise); err != nil {
		return database.CreateRequestItemParams{}, err
	}
	return database.CreateRequestItemParams{
		Section:     section,
		Label:       label,
		PricePaise:  in.PricePaise,
		IsSuggested: in.IsSuggested,
	}, nil
}

// isUniqueViolation checks for a unique constraint violation (pg code 23505)
// on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
	}
	return false
}
