package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cyclebees/estimates-api/internal/database"
)

const (
	maxOrderCodeLen    = 100
	maxBikeNameLen     = 200
	maxCustomerNameLen = 200
	maxItemLabelLen    = 500
	maxItemPricePaise  = 10_000_000

	defaultCountryCode = "91"
)

var phonePattern = regexp.MustCompile(`^\d{10,15}$`)

// NormalizePhone validates a digits-only phone number and prefixes the
// default country code onto bare ten-digit local numbers.
func NormalizePhone(raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	if !phonePattern.MatchString(phone) {
		return "", ErrInvalidPhone
	}
	if len(phone) == 10 {
		phone = defaultCountryCode + phone
	}
	return phone, nil
}

// ValidateSection parses an item section.
func ValidateSection(s string) (database.ItemSection, error) {
	switch database.ItemSection(s) {
	case database.ItemSectionRepair, database.ItemSectionReplacement:
		return database.ItemSection(s), nil
	}
	return "", ErrInvalidSection
}

// ValidateLabel trims an item label and checks its length.
func ValidateLabel(s string) (string, error) {
	label := strings.TrimSpace(s)
	if label == "" || utf8.RuneCountInString(label) > maxItemLabelLen {
		return "", ErrInvalidLabel
	}
	return label, nil
}

// ValidateItemPrice checks an item price in paise.
func ValidateItemPrice(p int64) error {
	if p <= 0 || p > maxItemPricePaise {
		return ErrInvalidPrice
	}
	return nil
}

func validateText(s string, max int, errInvalid error) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" || utf8.RuneCountInString(v) > max {
		return "", errInvalid
	}
	return v, nil
}
