package handler

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	maxCatalogNameLen        = 200
	maxCatalogDescriptionLen = 1000
	maxCatalogPricePaise     = 10_000_000
)

var (
	errCatalogName        = errors.New("name must be 1-200 characters")
	errCatalogDescription = errors.New("description must be at most 1000 characters")
	errCatalogPrice       = errors.New("price_paise must be between 1 and 10000000")
	errBulletPoints       = errors.New("at least one bullet point is required")
)

func validateCatalogName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n == 0 || n > maxCatalogNameLen {
		return "", errCatalogName
	}
	return s, nil
}

func validateCatalogPrice(p int64) error {
	if p <= 0 || p > maxCatalogPricePaise {
		return errCatalogPrice
	}
	return nil
}

// catalogDescription trims s; an empty description is stored as NULL on
// create and as an empty string (cleared) on update.
func catalogDescription(s *string, clearAsEmpty bool) (pgtype.Text, error) {
	if s == nil {
		return pgtype.Text{}, nil
	}
	d := strings.TrimSpace(*s)
	if utf8.RuneCountInString(d) > maxCatalogDescriptionLen {
		return pgtype.Text{}, errCatalogDescription
	}
	if d == "" && !clearAsEmpty {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{String: d, Valid: true}, nil
}

// cleanBulletPoints trims every entry and drops the empty ones. At least one
// entry must remain.
func cleanBulletPoints(points []string) ([]string, error) {
	out := make([]string, 0, len(points))
	for _, p := range points {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, errBulletPoints
	}
	return out, nil
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid || t.String == "" {
		return nil
	}
	s := t.String
	return &s
}
