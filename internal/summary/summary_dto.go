package summary

import "github.com/shopspring/decimal"

type RegularBlockResponse struct {
	TaxableGross    string `json:"taxable_gross"`
	NonTaxableGross string `json:"non_taxable_gross"`
	Gross           string `json:"gross"`
	Pensionable     string `json:"pensionable"`
	EmployeePension string `json:"employee_pension"`
	EmployerPension string `json:"employer_pension"`
	TotalPension    string `json:"total_pension"`

	EmploymentIncomeTax string `json:"employment_income_tax"`
	TotalDeduction      string `json:"total_deduction"`
	NetPay              string `json:"net_pay"`
	Expense             string `json:"expense"`

	Components map[string]string `json:"components"`
}

type EarningAdjustmentComponentResponse struct {
	Taxable         string `json:"taxable"`
	NonTaxable      string `json:"non_taxable"`
	Amount          string `json:"amount"`
	EmployeePension string `json:"employee_pension"`
	EmployerPension string `json:"employer_pension"`
	TotalPension    string `json:"total_pension"`
}

type AdjustmentBlockResponse struct {
	TaxableGross        string `json:"taxable_gross"`
	NonTaxableGross     string `json:"non_taxable_gross"`
	Gross               string `json:"gross"`
	AdjustedPensionable string `json:"adjusted_pensionable"`
	EmployeePension     string `json:"employee_pension"`
	EmployerPension     string `json:"employer_pension"`
	TotalPension        string `json:"total_pension"`

	EmploymentIncomeTax string `json:"employment_income_tax"`
	EarningDeduction    string `json:"earning_deduction"`
	DeductionTotal      string `json:"deduction_total"`
	TotalDeduction      string `json:"total_deduction"`
	NetAdjustment       string `json:"net_adjustment"`
	Expense             string `json:"expense"`

	EarningsByComponent   map[string]EarningAdjustmentComponentResponse `json:"earnings_by_component"`
	DeductionsByComponent map[string]string                             `json:"deductions_by_component"`
}

type SeveranceBlockResponse struct {
	TaxableGross        string `json:"taxable_gross"`
	Gross               string `json:"gross"`
	EmploymentIncomeTax string `json:"employment_income_tax"`
	TotalDeduction      string `json:"total_deduction"`
	Net                 string `json:"net"`
	Expense             string `json:"expense"`
	Count               int    `json:"count"`
}

type TotalsResponse struct {
	TaxableGross    string `json:"taxable_gross"`
	NonTaxableGross string `json:"non_taxable_gross"`
	Gross           string `json:"gross"`
	Pensionable     string `json:"pensionable"`
	EmployeePension string `json:"employee_pension"`
	EmployerPension string `json:"employer_pension"`
	TotalPension    string `json:"total_pension"`

	EmploymentIncomeTax string `json:"employment_income_tax"`
	TotalDeduction      string `json:"total_deduction"`
	Expense             string `json:"expense"`
	FinalNetPay         string `json:"final_net_pay"`
}

type MonthlySummaryResponse struct {
	PeriodSlug    string `json:"period_slug"`
	EmployeeCount int    `json:"employee_count"`

	Regular    RegularBlockResponse    `json:"regular"`
	Adjustment AdjustmentBlockResponse `json:"adjustment"`
	Severance  SeveranceBlockResponse  `json:"severance"`
	Totals     TotalsResponse          `json:"totals"`
}

type YearlySummaryResponse struct {
	Year   int                      `json:"year"`
	Months []MonthlySummaryResponse `json:"months"`
	Totals TotalsResponse           `json:"totals"`
}

type EmployeeSummaryResponse struct {
	EmployeeID   string `json:"employee_id"`
	PayrollCount int    `json:"payroll_count"`

	Regular    RegularBlockResponse    `json:"regular"`
	Adjustment AdjustmentBlockResponse `json:"adjustment"`
	Severance  SeveranceBlockResponse  `json:"severance"`
	Totals     TotalsResponse          `json:"totals"`
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func mapRegular(b RegularBlock) RegularBlockResponse {
	components := make(map[string]string, len(b.Components))
	for comp, val := range b.Components {
		components[comp] = fixed(val)
	}

	return RegularBlockResponse{
		TaxableGross:    fixed(b.TaxableGross),
		NonTaxableGross: fixed(b.NonTaxableGross),
		Gross:           fixed(b.Gross),
		Pensionable:     fixed(b.Pensionable),
		EmployeePension: fixed(b.EmployeePension),
		EmployerPension: fixed(b.EmployerPension),
		TotalPension:    fixed(b.TotalPension),

		EmploymentIncomeTax: fixed(b.EmploymentIncomeTax),
		TotalDeduction:      fixed(b.TotalDeduction),
		NetPay:              fixed(b.NetPay),
		Expense:             fixed(b.Expense),

		Components: components,
	}
}

func mapAdjustment(b AdjustmentBlock) AdjustmentBlockResponse {
	earnings := make(map[string]EarningAdjustmentComponentResponse, len(b.EarningsByComponent))
	for comp, val := range b.EarningsByComponent {
		earnings[comp] = EarningAdjustmentComponentResponse{
			Taxable:         fixed(val.Taxable),
			NonTaxable:      fixed(val.NonTaxable),
			Amount:          fixed(val.Amount),
			EmployeePension: fixed(val.EmployeePension),
			EmployerPension: fixed(val.EmployerPension),
			TotalPension:    fixed(val.TotalPension),
		}
	}

	deductions := make(map[string]string, len(b.DeductionsByComponent))
	for comp, val := range b.DeductionsByComponent {
		deductions[comp] = fixed(val)
	}

	return AdjustmentBlockResponse{
		TaxableGross:        fixed(b.TaxableGross),
		NonTaxableGross:     fixed(b.NonTaxableGross),
		Gross:               fixed(b.Gross),
		AdjustedPensionable: fixed(b.AdjustedPensionable),
		EmployeePension:     fixed(b.EmployeePension),
		EmployerPension:     fixed(b.EmployerPension),
		TotalPension:        fixed(b.TotalPension),

		EmploymentIncomeTax: fixed(b.EmploymentIncomeTax),
		EarningDeduction:    fixed(b.EarningDeduction),
		DeductionTotal:      fixed(b.DeductionTotal),
		TotalDeduction:      fixed(b.TotalDeduction),
		NetAdjustment:       fixed(b.NetAdjustment),
		Expense:             fixed(b.Expense),

		EarningsByComponent:   earnings,
		DeductionsByComponent: deductions,
	}
}

func mapSeverance(b SeveranceBlock) SeveranceBlockResponse {
	return SeveranceBlockResponse{
		TaxableGross:        fixed(b.TaxableGross),
		Gross:               fixed(b.Gross),
		EmploymentIncomeTax: fixed(b.EmploymentIncomeTax),
		TotalDeduction:      fixed(b.TotalDeduction),
		Net:                 fixed(b.Net),
		Expense:             fixed(b.Expense),
		Count:               b.Count,
	}
}

func mapTotals(t Totals) TotalsResponse {
	return TotalsResponse{
		TaxableGross:    fixed(t.TaxableGross),
		NonTaxableGross: fixed(t.NonTaxableGross),
		Gross:           fixed(t.Gross),
		Pensionable:     fixed(t.Pensionable),
		EmployeePension: fixed(t.EmployeePension),
		EmployerPension: fixed(t.EmployerPension),
		TotalPension:    fixed(t.TotalPension),

		EmploymentIncomeTax: fixed(t.EmploymentIncomeTax),
		TotalDeduction:      fixed(t.TotalDeduction),
		Expense:             fixed(t.Expense),
		FinalNetPay:         fixed(t.FinalNetPay),
	}
}

func mapMonthly(s MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		PeriodSlug:    s.PeriodSlug,
		EmployeeCount: s.EmployeeCount,

		Regular:    mapRegular(s.Regular),
		Adjustment: mapAdjustment(s.Adjustment),
		Severance:  mapSeverance(s.Severance),
		Totals:     mapTotals(s.Totals),
	}
}

func mapYearly(s YearlySummary) YearlySummaryResponse {
	months := make([]MonthlySummaryResponse, 0, len(s.Months))
	for _, m := range s.Months {
		months = append(months, mapMonthly(m))
	}
	return YearlySummaryResponse{
		Year:   s.Year,
		Months: months,
		Totals: mapTotals(s.Totals),
	}
}

func mapEmployee(s EmployeeSummary) EmployeeSummaryResponse {
	return EmployeeSummaryResponse{
		EmployeeID:   s.EmployeeID,
		PayrollCount: s.PayrollCount,

		Regular:    mapRegular(s.Regular),
		Adjustment: mapAdjustment(s.Adjustment),
		Severance:  mapSeverance(s.Severance),
		Totals:     mapTotals(s.Totals),
	}
}
