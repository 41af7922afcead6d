package rateconfig

import (
	"github.com/shopspring/decimal"

	"go-payroll/internal/allowance"
	"go-payroll/internal/pension"
	"go-payroll/internal/tax"
)

// Overtime rate types.
const (
	OvertimeEvening       = "evening"
	OvertimeNight         = "night"
	OvertimeRestDay       = "rest_day"
	OvertimePublicHoliday = "public_holiday"
)

// Hardship working environments that qualify for a non-taxable limit.
const (
	EnvironmentAdverse          = "adverse"
	EnvironmentVeryAdverse      = "very_adverse"
	EnvironmentExtremelyAdverse = "extremely_adverse"
)

// Per diem working areas.
const (
	AreaNonGovernmentalManager        = "non_governmental_manager"
	AreaDeputyNonGovernmentalManager  = "deputy_non_governmental_manager"
	AreaConstructionMachineryOperator = "construction_machinery_operator"
	AreaGovernmentOfficial            = "government_official"
	AreaNonGovernmentalExpert         = "non_governmental_expert"
	AreaOther                         = "other"
)

type SalaryRatioLimits struct {
	Divisor decimal.Decimal
	Cap     decimal.Decimal
}

// Rates is an immutable snapshot of every configurable rate an
// organization's payroll run needs. It is resolved once per computation
// so a run never mixes old and new configuration.
type Rates struct {
	OvertimeMultipliers map[string]decimal.Decimal
	FlatCaps            map[string]decimal.Decimal
	SalaryRatios        map[string]SalaryRatioLimits
	HardshipPercents    map[string]decimal.Decimal
	PerDiem             map[string]allowance.PerDiemRule
	Pension             pension.Rates
	TaxBrackets         []tax.Bracket
}

// OvertimeMultiplier falls back to 1.0 for unknown rate types so a new
// type never silently zeroes pay.
func (r Rates) OvertimeMultiplier(rateType string) decimal.Decimal {
	if m, ok := r.OvertimeMultipliers[rateType]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// HardshipPercent is zero for environments with no exemption, which
// makes the whole allowance taxable.
func (r Rates) HardshipPercent(environment string) decimal.Decimal {
	if p, ok := r.HardshipPercents[environment]; ok {
		return p
	}
	return decimal.Zero
}

// PerDiemRule for an unknown working area grants no exemption.
func (r Rates) PerDiemRule(workingArea string) allowance.PerDiemRule {
	if rule, ok := r.PerDiem[workingArea]; ok {
		return rule
	}
	return allowance.PerDiemRule{
		PercentLimit: decimal.Zero,
		CapAmount:    decimal.Zero,
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

// Default returns the statutory fallback rates used when an
// organization has not configured its own.
func Default() Rates {
	return Rates{
		OvertimeMultipliers: map[string]decimal.Decimal{
			OvertimeEvening:       d("1.25"),
			OvertimeNight:         d("1.50"),
			OvertimeRestDay:       d("2.00"),
			OvertimePublicHoliday: d("2.50"),
		},
		FlatCaps: map[string]decimal.Decimal{
			allowance.ComponentTransportHomeToOffice: d("600.00"),
			allowance.ComponentFuelHomeToOffice:      d("600.00"),
		},
		SalaryRatios: map[string]SalaryRatioLimits{
			allowance.ComponentTransportForWork: {Divisor: d("4.00"), Cap: d("2200.00")},
			allowance.ComponentFuelForWork:      {Divisor: d("4.00"), Cap: d("2200.00")},
		},
		HardshipPercents: map[string]decimal.Decimal{
			EnvironmentAdverse:          d("0.25"),
			EnvironmentVeryAdverse:      d("0.40"),
			EnvironmentExtremelyAdverse: d("0.60"),
		},
		PerDiem: map[string]allowance.PerDiemRule{
			AreaNonGovernmentalManager:        {PercentLimit: d("0.05"), CapAmount: d("1000.00")},
			AreaDeputyNonGovernmentalManager:  {PercentLimit: d("0.05"), CapAmount: d("1000.00")},
			AreaConstructionMachineryOperator: {FullyNonTaxable: true},
			AreaGovernmentOfficial:            {FullyNonTaxable: true},
			AreaNonGovernmentalExpert:         {PercentLimit: d("0.04"), CapAmount: d("500.00")},
			AreaOther:                         {PercentLimit: d("0.04"), CapAmount: d("500.00")},
		},
		Pension: pension.Rates{
			Employee: d("0.07"),
			Employer: d("0.11"),
		},
		TaxBrackets: []tax.Bracket{
			{Min: d("0.00"), Max: dp("2000.00"), Rate: d("0.00"), Deduction: d("0.00")},
			{Min: d("2001.00"), Max: dp("4000.00"), Rate: d("15.00"), Deduction: d("300.00")},
			{Min: d("4001.00"), Max: dp("7000.00"), Rate: d("20.00"), Deduction: d("500.00")},
			{Min: d("7001.00"), Max: dp("10000.00"), Rate: d("25.00"), Deduction: d("850.00")},
			{Min: d("10001.00"), Max: dp("14000.00"), Rate: d("30.00"), Deduction: d("1350.00")},
			{Min: d("14001.00"), Max: nil, Rate: d("35.00"), Deduction: d("2050.00")},
		},
	}
}
