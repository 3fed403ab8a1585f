// Package pricing holds the money arithmetic shared by the estimate workflow.
// Every stored or compared amount is an int64 count of paise; decimal values
// only appear at the edges (user input and display).
package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a rupee amount to paise, rounding half away from zero.
func ToMinorUnits(major decimal.Decimal) int64 {
	return major.Mul(hundred).Round(0).IntPart()
}

// ParseMinorUnits parses a user-typed rupee amount such as "499.5" into paise.
func ParseMinorUnits(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}
	return ToMinorUnits(d), nil
}

// ToMajorUnits is for display only.
func ToMajorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// DiscountPercentage returns the whole-number discount of currentPrice
// against listPrice, or 0 when there is no discount. Any real discount
// reports at least 1.
func DiscountPercentage(listPrice, currentPrice int64) int64 {
	if listPrice <= 0 || currentPrice >= listPrice {
		return 0
	}
	off := decimal.NewFromInt(listPrice - currentPrice)
	pct := off.Mul(hundred).Div(decimal.NewFromInt(listPrice)).Round(0).IntPart()
	if pct < 1 {
		return 1
	}
	return pct
}

// FormatINR renders paise as rupees with Indian digit grouping, e.g. ₹1,23,456.78.
func FormatINR(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	rupees := minor / 100
	paise := minor % 100

	digits := strconv.FormatInt(rupees, 10)
	var b strings.Builder
	if len(digits) > 3 {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		// Leading groups are two digits wide.
		lead := len(head) % 2
		if lead > 0 {
			b.WriteString(head[:lead])
		}
		for i := lead; i < len(head); i += 2 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(head[i : i+2])
		}
		b.WriteByte(',')
		b.WriteString(tail)
	} else {
		b.WriteString(digits)
	}

	return fmt.Sprintf("%s₹%s.%02d", sign, b.String(), paise)
}
