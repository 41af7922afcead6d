package tax

import "github.com/shopspring/decimal"

// Bracket is one row of a progressive employment income tax schedule.
// A nil Max marks the open-ended top bracket.
type Bracket struct {
	Min       decimal.Decimal
	Max       *decimal.Decimal
	Rate      decimal.Decimal // percent, e.g. 15 means 15%
	Deduction decimal.Decimal // fixed amount subtracted after applying the rate
}

var hundred = decimal.NewFromInt(100)

// Calculate evaluates a progressive bracket schedule against a taxable
// base. The bracket matches when min < base <= max; the tax is
// base*rate/100 - deduction, floored at zero and rounded half-up to two
// decimal places.
//
// Brackets are administrator supplied and must be contiguous and
// non-overlapping; that precondition is documented, not checked.
func Calculate(base decimal.Decimal, brackets []Bracket) decimal.Decimal {
	if base.Sign() <= 0 {
		return decimal.Zero
	}

	for _, b := range brackets {
		if base.LessThanOrEqual(b.Min) {
			continue
		}
		if b.Max != nil && base.GreaterThan(*b.Max) {
			continue
		}

		amount := base.Mul(b.Rate).Div(hundred).Sub(b.Deduction)
		if amount.Sign() < 0 {
			amount = decimal.Zero
		}
		return amount.Round(2)
	}

	return decimal.Zero
}
