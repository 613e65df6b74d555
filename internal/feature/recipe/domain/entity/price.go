package entity

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Price validation errors.
var (
	// ErrPriceNegative is returned when a price below zero is supplied.
	ErrPriceNegative = errors.New("price must not be negative")

	// ErrPricePrecision is returned when a price has more than two decimal
	// places or more than five digits in total.
	ErrPricePrecision = errors.New("price must have at most 5 digits with 2 decimal places")
)

// priceMax is the first value that no longer fits in decimal(5,2).
var priceMax = decimal.NewFromInt(1000)

// Price is a fixed-point monetary amount stored as decimal(5,2).
// It serializes to JSON as a string with exactly two decimal places so a
// price created as "5.00" reads back as "5.00".
type Price struct {
	d decimal.Decimal
}

// NewPrice parses a decimal string into a Price.
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	p := Price{d: d}
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	return p, nil
}

// Validate checks the decimal(5,2) constraints: non-negative, at most two
// decimal places, at most five digits in total.
func (p Price) Validate() error {
	if p.d.IsNegative() {
		return ErrPriceNegative
	}
	if p.d.Exponent() < -2 {
		return ErrPricePrecision
	}
	if !p.d.LessThan(priceMax) {
		return ErrPricePrecision
	}
	return nil
}

// String renders the price with exactly two decimal places.
func (p Price) String() string {
	return p.d.StringFixed(2)
}

// Equal reports whether two prices represent the same amount.
func (p Price) Equal(other Price) bool {
	return p.d.Equal(other.d)
}

// MarshalJSON renders the price as a fixed two-decimal JSON string.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON accepts either a JSON string ("5.00") or a bare number (5.0).
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", s, err)
	}
	p.d = d
	return nil
}

// Value implements driver.Valuer, storing the price as its fixed string form.
func (p Price) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements sql.Scanner for the column types the postgres and sqlite
// drivers hand back for a decimal column.
func (p *Price) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		p.d = decimal.Decimal{}
		return nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		p.d = d
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		p.d = d
	case float64:
		p.d = decimal.NewFromFloat(v)
	case int64:
		p.d = decimal.NewFromInt(v)
	default:
		return fmt.Errorf("cannot scan %T into Price", value)
	}
	return nil
}
