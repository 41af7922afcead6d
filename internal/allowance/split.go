package allowance

import "github.com/shopspring/decimal"

// Split is the taxable / non-taxable breakdown of a single allowance
// amount. Taxable + NonTaxable always equals the claimed amount.
type Split struct {
	Taxable    decimal.Decimal
	NonTaxable decimal.Decimal
}

func (s Split) Total() decimal.Decimal {
	return s.Taxable.Add(s.NonTaxable)
}

func zeroSplit() Split {
	return Split{Taxable: decimal.Zero, NonTaxable: decimal.Zero}
}

// clampAmount treats negative claims as zero.
func clampAmount(amount decimal.Decimal) decimal.Decimal {
	if amount.Sign() < 0 {
		return decimal.Zero
	}
	return amount
}

// FlatCap exempts the allowance up to a fixed monthly cap. Anything
// above the cap is taxable.
func FlatCap(amount, cap decimal.Decimal) Split {
	amount = clampAmount(amount)
	if amount.Sign() == 0 {
		return zeroSplit()
	}

	if amount.LessThanOrEqual(cap) {
		return Split{Taxable: decimal.Zero, NonTaxable: amount}
	}
	return Split{Taxable: amount.Sub(cap), NonTaxable: cap}
}

// SalaryRatio exempts the allowance up to salary/divisor, further
// bounded by an absolute cap.
func SalaryRatio(amount, salary, divisor, cap decimal.Decimal) Split {
	amount = clampAmount(amount)
	if amount.Sign() == 0 {
		return zeroSplit()
	}

	limit := salary.Div(divisor)

	switch {
	case amount.LessThanOrEqual(limit):
		return Split{Taxable: decimal.Zero, NonTaxable: amount}
	case limit.LessThan(cap):
		return Split{Taxable: amount.Sub(limit), NonTaxable: limit}
	default:
		return Split{Taxable: amount.Sub(cap), NonTaxable: cap}
	}
}

// Hardship exempts the allowance up to a percentage of salary. The
// percentage depends on the severity of the working environment and is
// resolved by the caller; a zero percent makes the whole amount
// taxable.
func Hardship(amount, salary, percent decimal.Decimal) Split {
	amount = clampAmount(amount)
	if amount.Sign() == 0 {
		return zeroSplit()
	}

	limit := salary.Mul(percent)
	if amount.LessThanOrEqual(limit) {
		return Split{Taxable: decimal.Zero, NonTaxable: amount}
	}
	return Split{Taxable: amount.Sub(limit), NonTaxable: limit}
}

// PerDiemRule is the exemption rule for one per diem recipient class.
type PerDiemRule struct {
	// PercentLimit is the fraction of salary exempt per day (0.05 means 5%).
	PercentLimit decimal.Decimal
	// CapAmount bounds the daily exemption in absolute terms.
	CapAmount decimal.Decimal
	// FullyNonTaxable marks classes whose per diem is exempt in full.
	FullyNonTaxable bool
}

// PerDiem splits a claimed per diem. The exemption is decided at the
// daily-rate level and then scaled to the claimed amount, so multi-day
// claims split in the same proportion as a single day.
func PerDiem(claimed, dailyRate, salary decimal.Decimal, rule PerDiemRule) Split {
	claimed = clampAmount(claimed)
	if claimed.Sign() == 0 {
		return zeroSplit()
	}

	if rule.FullyNonTaxable {
		return Split{Taxable: decimal.Zero, NonTaxable: claimed}
	}

	if dailyRate.Sign() <= 0 {
		return Split{Taxable: claimed, NonTaxable: decimal.Zero}
	}

	limit := salary.Mul(rule.PercentLimit)

	var taxableDaily decimal.Decimal
	switch {
	case dailyRate.LessThanOrEqual(limit):
		taxableDaily = decimal.Zero
	case limit.LessThan(rule.CapAmount):
		taxableDaily = dailyRate.Sub(rule.CapAmount)
	default:
		taxableDaily = dailyRate.Sub(limit)
	}

	if taxableDaily.Sign() < 0 {
		taxableDaily = decimal.Zero
	}

	// Derive NonTaxable by subtraction so the split always sums back to
	// the claimed amount even when the scaling division truncates.
	taxable := claimed.Mul(taxableDaily).Div(dailyRate)
	return Split{Taxable: taxable, NonTaxable: claimed.Sub(taxable)}
}
