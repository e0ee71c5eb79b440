package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ReportPrecision is the number of fractional digits every amount is
// rendered with in reports.
const ReportPrecision = 4

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is an exact decimal money value. The zero value is zero money.
// Arithmetic is backed by an arbitrary-precision coefficient, so sums of
// well-formed inputs cannot silently wrap or drift.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps a decimal value as an Amount.
func NewAmount(value decimal.Decimal) Amount {
	return Amount{value: value}
}

// ParseAmount parses a decimal string into an Amount.
// It rejects anything the decimal parser cannot read exactly.
func ParseAmount(s string) (Amount, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount{value: value}, nil
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{value: a.value.Sub(b.value)}
}

// Cmp compares two amounts: -1 when a < b, 0 when equal, 1 when a > b.
func (a Amount) Cmp(b Amount) int {
	return a.value.Cmp(b.value)
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// String renders the amount with exactly ReportPrecision fractional digits.
func (a Amount) String() string {
	return a.value.StringFixed(ReportPrecision)
}
