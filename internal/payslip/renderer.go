package payslip

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"go-payroll/internal/payroll"
)

const sheetName = "Payslip"

// Renderer writes payslip workbooks to a local artifact directory. The
// worker serving downloads exposes the same directory.
type Renderer struct {
	dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

func ArtifactName(payrollID string) string {
	return fmt.Sprintf("payslip_%s.xlsx", payrollID)
}

func (r *Renderer) Render(resp payroll.PayrollResponse, periodSlug string) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	rows := [][2]string{
		{"Employee", resp.EmployeeName},
		{"Pay period", periodSlug},
		{"", ""},
		{"Basic salary", resp.BasicSalary},
		{"Overtime", resp.Overtime},
		{"Housing allowance", resp.HousingAllowance},
		{"Position allowance", resp.PositionAllowance},
		{"Commission", resp.Commission},
		{"Telephone allowance", resp.TelephoneAllowance},
		{"One-time bonus", resp.OneTimeBonus},
		{"Casual labor wage", resp.CausalLaborWage},
		{"Transport (home to office)", resp.TransportHomeToOffice},
		{"Fuel (home to office)", resp.FuelHomeToOffice},
		{"Transport (for work)", resp.TransportForWork},
		{"Fuel (for work)", resp.FuelForWork},
		{"Per diem", resp.PerDiem},
		{"Hardship allowance", resp.HardshipAllowance},
		{"", ""},
		{"Gross pay", resp.GrossPay},
		{"Taxable gross", resp.GrossTaxablePay},
		{"Non-taxable gross", resp.GrossNonTaxablePay},
		{"", ""},
		{"Employment income tax", resp.EmploymentIncomeTax},
		{"Pension (employee)", resp.EmployeePensionContribution},
		{"University cost share", resp.UniversityCostSharePay},
		{"Total deduction", resp.TotalPayrollDeduction},
		{"", ""},
		{"Net pay", resp.NetPay},
	}

	for i, row := range rows {
		cellA, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		cellB, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheetName, cellA, row[0]); err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheetName, cellB, row[1]); err != nil {
			return "", err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 28); err != nil {
		return "", err
	}

	path := filepath.Join(r.dir, ArtifactName(resp.ID))
	if err := f.SaveAs(path); err != nil {
		return "", err
	}

	return path, nil
}
