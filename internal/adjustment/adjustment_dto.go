package adjustment

import "github.com/shopspring/decimal"

type CreateEarningAdjustmentRequest struct {
	RecordPayrollID string `json:"record_payroll_id" binding:"required"`
	TargetPayrollID string `json:"target_payroll_id" binding:"required"`
	Case            string `json:"case" binding:"required"`
	Component       string `json:"component" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	PeriodStart     string `json:"period_start" binding:"required"`
	PeriodEnd       string `json:"period_end" binding:"required"`
}

type UpdateEarningAdjustmentRequest struct {
	Case        string `json:"case" binding:"required"`
	Component   string `json:"component" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

type CreateDeductionAdjustmentRequest struct {
	RecordPayrollID string `json:"record_payroll_id" binding:"required"`
	TargetPayrollID string `json:"target_payroll_id" binding:"required"`
	Case            string `json:"case" binding:"required"`
	Component       string `json:"component" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	PeriodStart     string `json:"period_start" binding:"required"`
	PeriodEnd       string `json:"period_end" binding:"required"`
}

type UpdateDeductionAdjustmentRequest struct {
	Case        string `json:"case" binding:"required"`
	Component   string `json:"component" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

type EarningAdjustmentResponse struct {
	ID              string `json:"id"`
	RecordPayrollID string `json:"record_payroll_id"`
	TargetPayrollID string `json:"target_payroll_id"`
	Case            string `json:"case"`
	Component       string `json:"component"`
	Amount          string `json:"amount"`

	Taxable                     string `json:"taxable"`
	NonTaxable                  string `json:"non_taxable"`
	EmployeePensionContribution string `json:"employee_pension_contribution"`
	EmployerPensionContribution string `json:"employer_pension_contribution"`
	TotalPension                string `json:"total_pension"`

	GroupGrossTaxablePay       string `json:"group_gross_taxable_pay"`
	GroupGrossNonTaxablePay    string `json:"group_gross_non_taxable_pay"`
	GroupGrossPay              string `json:"group_gross_pay"`
	GroupCumulativeTaxablePay  string `json:"group_cumulative_taxable_pay"`
	GroupRecomputedTax         string `json:"group_recomputed_tax"`
	GroupIncrementalTax        string `json:"group_incremental_tax"`
	GroupEmployeePension       string `json:"group_employee_pension"`
	GroupEmployerPension       string `json:"group_employer_pension"`
	GroupTotalPension          string `json:"group_total_pension"`
	GroupTotalEarningDeduction string `json:"group_total_earning_deduction"`
	GroupExpense               string `json:"group_expense"`

	RecordGrossTaxablePay       string `json:"record_gross_taxable_pay"`
	RecordGrossNonTaxablePay    string `json:"record_gross_non_taxable_pay"`
	RecordGrossPay              string `json:"record_gross_pay"`
	RecordIncrementalTax        string `json:"record_incremental_tax"`
	RecordEmployeePension       string `json:"record_employee_pension"`
	RecordEmployerPension       string `json:"record_employer_pension"`
	RecordTotalEarningDeduction string `json:"record_total_earning_deduction"`
	RecordExpense               string `json:"record_expense"`

	PeriodStart   string `json:"period_start"`
	PeriodEnd     string `json:"period_end"`
	MonthsCovered int    `json:"months_covered"`
}

type DeductionAdjustmentResponse struct {
	ID              string `json:"id"`
	RecordPayrollID string `json:"record_payroll_id"`
	TargetPayrollID string `json:"target_payroll_id"`
	Case            string `json:"case"`
	Component       string `json:"component"`
	Amount          string `json:"amount"`

	GroupTotalDeduction  string `json:"group_total_deduction"`
	RecordTotalDeduction string `json:"record_total_deduction"`

	PeriodStart   string `json:"period_start"`
	PeriodEnd     string `json:"period_end"`
	MonthsCovered int    `json:"months_covered"`
}

const dateLayout = "2006-01-02"

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func mapEarningToResponse(row EarningAdjustment) EarningAdjustmentResponse {
	return EarningAdjustmentResponse{
		ID:              row.ID.String(),
		RecordPayrollID: row.RecordPayrollID.String(),
		TargetPayrollID: row.TargetPayrollID.String(),
		Case:            row.Case,
		Component:       row.Component,
		Amount:          fixed(row.Amount),

		Taxable:                     fixed(row.Taxable),
		NonTaxable:                  fixed(row.NonTaxable),
		EmployeePensionContribution: fixed(row.EmployeePensionContribution),
		EmployerPensionContribution: fixed(row.EmployerPensionContribution),
		TotalPension:                fixed(row.TotalPension),

		GroupGrossTaxablePay:       fixed(row.GroupGrossTaxablePay),
		GroupGrossNonTaxablePay:    fixed(row.GroupGrossNonTaxablePay),
		GroupGrossPay:              fixed(row.GroupGrossPay),
		GroupCumulativeTaxablePay:  fixed(row.GroupCumulativeTaxablePay),
		GroupRecomputedTax:         fixed(row.GroupRecomputedTax),
		GroupIncrementalTax:        fixed(row.GroupIncrementalTax),
		GroupEmployeePension:       fixed(row.GroupEmployeePension),
		GroupEmployerPension:       fixed(row.GroupEmployerPension),
		GroupTotalPension:          fixed(row.GroupTotalPension),
		GroupTotalEarningDeduction: fixed(row.GroupTotalEarningDeduction),
		GroupExpense:               fixed(row.GroupExpense),

		RecordGrossTaxablePay:       fixed(row.RecordGrossTaxablePay),
		RecordGrossNonTaxablePay:    fixed(row.RecordGrossNonTaxablePay),
		RecordGrossPay:              fixed(row.RecordGrossPay),
		RecordIncrementalTax:        fixed(row.RecordIncrementalTax),
		RecordEmployeePension:       fixed(row.RecordEmployeePension),
		RecordEmployerPension:       fixed(row.RecordEmployerPension),
		RecordTotalEarningDeduction: fixed(row.RecordTotalEarningDeduction),
		RecordExpense:               fixed(row.RecordExpense),

		PeriodStart:   row.PeriodStart.Format(dateLayout),
		PeriodEnd:     row.PeriodEnd.Format(dateLayout),
		MonthsCovered: row.MonthsCovered,
	}
}

func mapEarningsToListResponse(rows []EarningAdjustment) []EarningAdjustmentResponse {
	resp := make([]EarningAdjustmentResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapEarningToResponse(row))
	}
	return resp
}

func mapDeductionToResponse(row DeductionAdjustment) DeductionAdjustmentResponse {
	return DeductionAdjustmentResponse{
		ID:              row.ID.String(),
		RecordPayrollID: row.RecordPayrollID.String(),
		TargetPayrollID: row.TargetPayrollID.String(),
		Case:            row.Case,
		Component:       row.Component,
		Amount:          fixed(row.Amount),

		GroupTotalDeduction:  fixed(row.GroupTotalDeduction),
		RecordTotalDeduction: fixed(row.RecordTotalDeduction),

		PeriodStart:   row.PeriodStart.Format(dateLayout),
		PeriodEnd:     row.PeriodEnd.Format(dateLayout),
		MonthsCovered: row.MonthsCovered,
	}
}

func mapDeductionsToListResponse(rows []DeductionAdjustment) []DeductionAdjustmentResponse {
	resp := make([]DeductionAdjustmentResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapDeductionToResponse(row))
	}
	return resp
}
