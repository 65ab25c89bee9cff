// Package money implements fixed-point monetary values scaled by a currency
// precision. Every financial computation goes through Amount so that float
// drift never reaches a document total.
package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrPrecisionMismatch is raised (as a panic value) when two amounts with
// different precisions are combined.
var ErrPrecisionMismatch = errors.New("money: precision mismatch")

// ErrOutOfRange is returned by Check for a figure that is not finite or whose
// scaled value does not fit in an int64.
var ErrOutOfRange = errors.New("money: amount out of range")

var (
	maxScaled = decimal.NewFromInt(math.MaxInt64)
	minScaled = decimal.NewFromInt(math.MinInt64)
)

// Amount is a monetary value held as an integer number of 10^-precision units.
type Amount struct {
	scaled    int64
	precision int32
}

// New creates an amount from an already scaled integer.
func New(scaled int64, precision int32) Amount {
	return Amount{scaled: scaled, precision: precision}
}

// Zero returns a zero amount at the given precision.
func Zero(precision int32) Amount {
	return Amount{precision: precision}
}

// FromFloat scales a float to the given precision, rounding half away from zero.
// The scaling is done in decimal so values like 1.005 round as written.
// Values outside the int64 range saturate and NaN becomes zero; inputs are
// expected to have passed Check.
func FromFloat(amount float64, precision int32) Amount {
	scaled, _ := scaleFloat(amount, precision)
	return Amount{scaled: scaled, precision: precision}
}

// Check reports whether amount can be held at precision without saturating.
func Check(amount float64, precision int32) error {
	if _, ok := scaleFloat(amount, precision); !ok {
		return fmt.Errorf("%w: %g at precision %d", ErrOutOfRange, amount, precision)
	}
	return nil
}

// FromDecimal scales a decimal to the given precision, rounding half away
// from zero. It fails when the scaled value does not fit in an int64.
func FromDecimal(value decimal.Decimal, precision int32) (Amount, error) {
	scaled, ok := toScaled(value.Shift(precision).Round(0))
	if !ok {
		return Amount{}, fmt.Errorf("%w: %s at precision %d", ErrOutOfRange, value.String(), precision)
	}
	return Amount{scaled: scaled, precision: precision}, nil
}

func scaleFloat(amount float64, precision int32) (int64, bool) {
	switch {
	case math.IsNaN(amount):
		return 0, false
	case math.IsInf(amount, 1):
		return math.MaxInt64, false
	case math.IsInf(amount, -1):
		return math.MinInt64, false
	}
	return toScaled(decimal.NewFromFloat(amount).Shift(precision).Round(0))
}

// toScaled converts an integral decimal, clamping to the int64 range.
func toScaled(d decimal.Decimal) (int64, bool) {
	switch {
	case d.GreaterThan(maxScaled):
		return math.MaxInt64, false
	case d.LessThan(minScaled):
		return math.MinInt64, false
	}
	return d.IntPart(), true
}

// Scaled returns the integer representation.
func (a Amount) Scaled() int64 { return a.scaled }

// Precision returns the number of decimal places.
func (a Amount) Precision() int32 { return a.precision }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.scaled == 0 }

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool { return a.scaled < 0 }

// Equal compares value and precision.
func (a Amount) Equal(b Amount) bool {
	return a.scaled == b.scaled && a.precision == b.precision
}

// Add returns a + b. Both amounts must share a precision.
func (a Amount) Add(b Amount) Amount {
	a.mustMatch(b)
	sum, _ := toScaled(decimal.NewFromInt(a.scaled).Add(decimal.NewFromInt(b.scaled)))
	return Amount{scaled: sum, precision: a.precision}
}

// Subtract returns a - b. Both amounts must share a precision.
func (a Amount) Subtract(b Amount) Amount {
	a.mustMatch(b)
	diff, _ := toScaled(decimal.NewFromInt(a.scaled).Sub(decimal.NewFromInt(b.scaled)))
	return Amount{scaled: diff, precision: a.precision}
}

// Multiply scales the amount by factor and re-rounds to the same precision
// using half-even rounding.
func (a Amount) Multiply(factor float64) Amount {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		scaled, _ := scaleFloat(float64(a.scaled)*factor, 0)
		return Amount{scaled: scaled, precision: a.precision}
	}
	product, _ := toScaled(decimal.NewFromInt(a.scaled).Mul(decimal.NewFromFloat(factor)).RoundBank(0))
	return Amount{scaled: product, precision: a.precision}
}

// Rescale expresses the amount at another precision.
func (a Amount) Rescale(precision int32) Amount {
	if precision == a.precision {
		return a
	}
	shifted, _ := toScaled(decimal.NewFromInt(a.scaled).Shift(precision - a.precision).Round(0))
	return Amount{scaled: shifted, precision: precision}
}

// Decimal returns the amount as a decimal in currency units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.scaled, -a.precision)
}

// Float converts back to currency units.
func (a Amount) Float() float64 {
	return a.Decimal().InexactFloat64()
}

// String renders the amount with exactly precision decimals.
func (a Amount) String() string {
	return a.Decimal().StringFixed(a.precision)
}

func (a Amount) mustMatch(b Amount) {
	if a.precision != b.precision {
		panic(fmt.Errorf("%w: %d != %d", ErrPrecisionMismatch, a.precision, b.precision))
	}
}

// Sum adds amounts at the given precision.
func Sum(precision int32, amounts ...Amount) Amount {
	total := Zero(precision)
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}
