package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/jackc/pgx/v5"
)

// LookupStore finds a request by its order code and phone.
// Satisfied by *database.Queries.
type LookupStore interface {
	LookupRequest(ctx context.Context, arg database.LookupRequestParams) (database.Request, error)
}

// LookupOrder lets a customer recover their estimate link. Both the order
// code and the phone must match; a bare local phone number is normalized
// the same way it was at creation.
func LookupOrder(ctx context.Context, store LookupStore, orderCode, phone string) (database.Request, error) {
	code := strings.TrimSpace(orderCode)
	if code == "" {
		return database.Request{}, ErrOrderCodeRequired
	}
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return database.Request{}, err
	}

	req, err := store.LookupRequest(ctx, database.LookupRequestParams{
		OrderCode:       code,
		PhoneDigitsIntl: normalized,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.Request{}, ErrRequestNotFound
		}
		return database.Request{}, fmt.Errorf("lookup request: %w", err)
	}
	return req, nil
}
