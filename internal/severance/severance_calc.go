package severance

import (
	"time"

	"github.com/shopspring/decimal"

	severanceerrors "go-payroll/internal/severance/errors"
	"go-payroll/internal/tax"
)

const maxServiceYears = 34

var (
	thirty        = decimal.NewFromInt(30)
	ninety        = decimal.NewFromInt(90)
	daysPerYear   = decimal.NewFromInt(365)
	oneThirdMonth = decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
)

// serviceLength returns full years of service and the leftover days
// past the last anniversary. Years are capped at 34; past the cap the
// leftover days are discarded.
func serviceLength(start, end time.Time) (int, int) {
	years := end.Year() - start.Year()
	anniversary := start.AddDate(years, 0, 0)
	if anniversary.After(end) {
		years--
		anniversary = start.AddDate(years, 0, 0)
	}

	if years > maxServiceYears {
		return maxServiceYears, 0
	}

	days := int(end.Sub(anniversary).Hours() / 24)
	return years, days
}

// Compute fills every derived field from the daily wage, tenure and
// termination type. The gross is taxed in monthly-wage sized chunks so
// a multi-month payout is not pushed into a higher bracket than the
// salary it replaces.
func Compute(sv *Severance, brackets []tax.Bracket) error {
	if !sv.EndDate.After(sv.StartDate) {
		return severanceerrors.ErrInvalidServiceDates
	}
	if int(sv.EndDate.Sub(sv.StartDate).Hours()/24) < 365 {
		return severanceerrors.ErrTenureTooShort
	}
	if sv.LastWeekDailyWage.Sign() <= 0 {
		return severanceerrors.ErrInvalidDailyWage
	}

	years, days := serviceLength(sv.StartDate, sv.EndDate)
	sv.ServiceYears = years
	sv.ServiceDays = days

	monthly := sv.LastWeekDailyWage.Mul(thirty)
	yearlyUnit := oneThirdMonth.Mul(monthly)

	sv.SeveranceForYears = monthly.Add(decimal.NewFromInt(int64(years - 1)).Mul(yearlyUnit))
	sv.SeveranceForDays = decimal.NewFromInt(int64(days)).Div(daysPerYear).Mul(yearlyUnit)

	gross := sv.SeveranceForYears.Add(sv.SeveranceForDays)
	switch sv.SeveranceType {
	case TypeNoNotice:
		gross = gross.Add(sv.LastWeekDailyWage.Mul(thirty))
	case TypeHarassment:
		gross = gross.Add(sv.LastWeekDailyWage.Mul(ninety))
	}
	sv.GrossSeverancePay = gross

	sv.MonthlyWage = monthly
	chunks := gross.Div(monthly).Floor()
	sv.ProrateSalary = gross.Sub(chunks.Mul(monthly))

	sv.TaxFromMonthlyWage = tax.Calculate(monthly, brackets)
	sv.TaxFromProrateSalary = tax.Calculate(sv.ProrateSalary, brackets)
	sv.TotalTaxFromMonthlyWage = sv.TaxFromMonthlyWage.Mul(chunks)
	sv.TaxFromSeverancePay = sv.TotalTaxFromMonthlyWage.Add(sv.TaxFromProrateSalary)

	sv.NetSeverancePay = gross.Sub(sv.TaxFromSeverancePay).Round(2)

	return nil
}
