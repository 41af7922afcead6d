package severance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payroll/internal/rateconfig"
	"go-payroll/internal/severance"
	severanceerrors "go-payroll/internal/severance/errors"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newSeverance(svType, dailyWage, start, end string) *severance.Severance {
	return &severance.Severance{
		SeveranceType:     svType,
		LastWeekDailyWage: decimal.RequireFromString(dailyWage),
		StartDate:         date(start),
		EndDate:           date(end),
	}
}

func TestCompute_NormalTermination(t *testing.T) {
	// 3 full years plus 40 days at a 300 daily wage.
	sv := newSeverance(severance.TypeNormal, "300", "2022-01-10", "2025-02-19")

	err := severance.Compute(sv, rateconfig.Default().TaxBrackets)
	require.NoError(t, err)

	assert.Equal(t, 3, sv.ServiceYears)
	assert.Equal(t, 40, sv.ServiceDays)

	assert.Equal(t, "9000.00", sv.MonthlyWage.StringFixed(2))
	assert.Equal(t, "15000.00", sv.SeveranceForYears.StringFixed(2))
	assert.Equal(t, "328.77", sv.SeveranceForDays.StringFixed(2))
	assert.Equal(t, "15328.77", sv.GrossSeverancePay.StringFixed(2))

	// One full monthly chunk fits, the rest is taxed as a prorated month.
	assert.Equal(t, "6328.77", sv.ProrateSalary.StringFixed(2))
	assert.Equal(t, "1400.00", sv.TaxFromMonthlyWage.StringFixed(2))
	assert.Equal(t, "1400.00", sv.TotalTaxFromMonthlyWage.StringFixed(2))
	assert.Equal(t, "765.75", sv.TaxFromProrateSalary.StringFixed(2))
	assert.Equal(t, "2165.75", sv.TaxFromSeverancePay.StringFixed(2))

	assert.Equal(t, "13163.02", sv.NetSeverancePay.StringFixed(2))
}

func TestCompute_NoNoticeAddsThirtyDays(t *testing.T) {
	base := newSeverance(severance.TypeNormal, "300", "2022-01-10", "2025-02-19")
	require.NoError(t, severance.Compute(base, rateconfig.Default().TaxBrackets))

	sv := newSeverance(severance.TypeNoNotice, "300", "2022-01-10", "2025-02-19")
	require.NoError(t, severance.Compute(sv, rateconfig.Default().TaxBrackets))

	extra := sv.GrossSeverancePay.Sub(base.GrossSeverancePay)
	assert.Equal(t, "9000.00", extra.StringFixed(2))
}

func TestCompute_HarassmentAddsNinetyDays(t *testing.T) {
	base := newSeverance(severance.TypeNormal, "300", "2022-01-10", "2025-02-19")
	require.NoError(t, severance.Compute(base, rateconfig.Default().TaxBrackets))

	sv := newSeverance(severance.TypeHarassment, "300", "2022-01-10", "2025-02-19")
	require.NoError(t, severance.Compute(sv, rateconfig.Default().TaxBrackets))

	extra := sv.GrossSeverancePay.Sub(base.GrossSeverancePay)
	assert.Equal(t, "27000.00", extra.StringFixed(2))
}

func TestCompute_TenureTooShort(t *testing.T) {
	sv := newSeverance(severance.TypeNormal, "300", "2025-01-01", "2025-12-01")

	err := severance.Compute(sv, rateconfig.Default().TaxBrackets)
	assert.ErrorIs(t, err, severanceerrors.ErrTenureTooShort)
}

func TestCompute_EndBeforeStart(t *testing.T) {
	sv := newSeverance(severance.TypeNormal, "300", "2025-02-01", "2025-01-01")

	err := severance.Compute(sv, rateconfig.Default().TaxBrackets)
	assert.ErrorIs(t, err, severanceerrors.ErrInvalidServiceDates)
}

func TestCompute_InvalidDailyWage(t *testing.T) {
	sv := newSeverance(severance.TypeNormal, "0", "2020-01-01", "2025-01-01")

	err := severance.Compute(sv, rateconfig.Default().TaxBrackets)
	assert.ErrorIs(t, err, severanceerrors.ErrInvalidDailyWage)
}

func TestCompute_ServiceYearsCapped(t *testing.T) {
	sv := newSeverance(severance.TypeNormal, "100", "1985-06-01", "2025-08-15")

	err := severance.Compute(sv, rateconfig.Default().TaxBrackets)
	require.NoError(t, err)

	assert.Equal(t, 34, sv.ServiceYears)
	assert.Equal(t, 0, sv.ServiceDays)
}

func TestCompute_GrossCoversTaxAndNet(t *testing.T) {
	sv := newSeverance(severance.TypeNormal, "450", "2019-03-01", "2025-07-20")

	err := severance.Compute(sv, rateconfig.Default().TaxBrackets)
	require.NoError(t, err)

	reassembled := sv.NetSeverancePay.Add(sv.TaxFromSeverancePay)
	assert.Equal(t, sv.GrossSeverancePay.StringFixed(2), reassembled.StringFixed(2))
}
