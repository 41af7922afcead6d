package summary

import (
	"sort"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Monthly Summary"

// exportMonthlyWorkbook renders the combined monthly view as a
// two-column workbook, one section per stream.
func exportMonthlyWorkbook(s MonthlySummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	rows := [][2]any{
		{"Pay period", s.PeriodSlug},
		{"Employees paid", s.EmployeeCount},
		{"", ""},
		{"REGULAR", ""},
		{"Taxable gross", s.Regular.TaxableGross.StringFixed(2)},
		{"Non-taxable gross", s.Regular.NonTaxableGross.StringFixed(2)},
		{"Gross", s.Regular.Gross.StringFixed(2)},
		{"Pensionable", s.Regular.Pensionable.StringFixed(2)},
		{"Employee pension", s.Regular.EmployeePension.StringFixed(2)},
		{"Employer pension", s.Regular.EmployerPension.StringFixed(2)},
		{"Employment income tax", s.Regular.EmploymentIncomeTax.StringFixed(2)},
		{"Total deduction", s.Regular.TotalDeduction.StringFixed(2)},
		{"Net pay", s.Regular.NetPay.StringFixed(2)},
		{"Expense", s.Regular.Expense.StringFixed(2)},
		{"", ""},
	}

	rows = append(rows, [][2]any{
		{"ADJUSTMENT", ""},
		{"Taxable gross", s.Adjustment.TaxableGross.StringFixed(2)},
		{"Non-taxable gross", s.Adjustment.NonTaxableGross.StringFixed(2)},
		{"Gross", s.Adjustment.Gross.StringFixed(2)},
		{"Incremental income tax", s.Adjustment.EmploymentIncomeTax.StringFixed(2)},
		{"Earning deduction", s.Adjustment.EarningDeduction.StringFixed(2)},
		{"Deduction adjustments", s.Adjustment.DeductionTotal.StringFixed(2)},
		{"Net adjustment", s.Adjustment.NetAdjustment.StringFixed(2)},
		{"Expense", s.Adjustment.Expense.StringFixed(2)},
		{"", ""},
	}...)

	earningComponents := make([]string, 0, len(s.Adjustment.EarningsByComponent))
	for comp := range s.Adjustment.EarningsByComponent {
		earningComponents = append(earningComponents, comp)
	}
	sort.Strings(earningComponents)
	for _, comp := range earningComponents {
		rows = append(rows, [2]any{
			"  adj " + comp,
			s.Adjustment.EarningsByComponent[comp].Amount.StringFixed(2),
		})
	}

	deductionComponents := make([]string, 0, len(s.Adjustment.DeductionsByComponent))
	for comp := range s.Adjustment.DeductionsByComponent {
		deductionComponents = append(deductionComponents, comp)
	}
	sort.Strings(deductionComponents)
	for _, comp := range deductionComponents {
		rows = append(rows, [2]any{
			"  adj deduction " + comp,
			s.Adjustment.DeductionsByComponent[comp].StringFixed(2),
		})
	}

	rows = append(rows, [][2]any{
		{"", ""},
		{"SEVERANCE", ""},
		{"Gross", s.Severance.Gross.StringFixed(2)},
		{"Employment income tax", s.Severance.EmploymentIncomeTax.StringFixed(2)},
		{"Net", s.Severance.Net.StringFixed(2)},
		{"Records", s.Severance.Count},
		{"", ""},
		{"TOTALS", ""},
		{"Taxable gross", s.Totals.TaxableGross.StringFixed(2)},
		{"Non-taxable gross", s.Totals.NonTaxableGross.StringFixed(2)},
		{"Gross", s.Totals.Gross.StringFixed(2)},
		{"Employee pension", s.Totals.EmployeePension.StringFixed(2)},
		{"Employer pension", s.Totals.EmployerPension.StringFixed(2)},
		{"Employment income tax", s.Totals.EmploymentIncomeTax.StringFixed(2)},
		{"Total deduction", s.Totals.TotalDeduction.StringFixed(2)},
		{"Expense", s.Totals.Expense.StringFixed(2)},
		{"Final net pay", s.Totals.FinalNetPay.StringFixed(2)},
	}...)

	for i, row := range rows {
		cellA, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		cellB, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cellA, row[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cellB, row[1]); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 30); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
