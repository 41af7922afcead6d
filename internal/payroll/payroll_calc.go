package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"go-payroll/internal/allowance"
	"go-payroll/internal/pension"
	"go-payroll/internal/rateconfig"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/tax"
)

// EmployeeFacts carries the employee attributes a pay calculation
// depends on. The contract salary drives the overtime hourly rate and
// every salary-relative exemption limit; the payroll row's BasicSalary
// is what the employee is actually paid this period.
type EmployeeFacts struct {
	BasicSalary        decimal.Decimal
	WorkingArea        string
	WorkingEnvironment string
	DailyPerDiem       decimal.Decimal
}

var (
	monthlyHours = decimal.NewFromInt(240)
	hundred      = decimal.NewFromInt(100)
)

// Calculate fills every derived field on the payroll row from its
// inputs, the employee facts and the rate snapshot. It is pure: no I/O,
// no clock, and the same inputs always produce the same totals.
func Calculate(p *Payroll, emp EmployeeFacts, rates rateconfig.Rates) error {
	p.Overtime = overtimePay(p, emp.BasicSalary, rates)

	homeCap := rates.FlatCaps[allowance.ComponentTransportHomeToOffice]
	fuelHomeCap := rates.FlatCaps[allowance.ComponentFuelHomeToOffice]

	transportHome := allowance.FlatCap(p.TransportHomeToOffice, homeCap)
	p.TransportHomeToOfficeTaxable = transportHome.Taxable
	p.TransportHomeToOfficeNonTaxable = transportHome.NonTaxable

	fuelHome := allowance.FlatCap(p.FuelHomeToOffice, fuelHomeCap)
	p.FuelHomeToOfficeTaxable = fuelHome.Taxable
	p.FuelHomeToOfficeNonTaxable = fuelHome.NonTaxable

	transportLimits := rates.SalaryRatios[allowance.ComponentTransportForWork]
	transportWork := allowance.SalaryRatio(p.TransportForWork, emp.BasicSalary, transportLimits.Divisor, transportLimits.Cap)
	p.TransportForWorkTaxable = transportWork.Taxable
	p.TransportForWorkNonTaxable = transportWork.NonTaxable

	fuelLimits := rates.SalaryRatios[allowance.ComponentFuelForWork]
	fuelWork := allowance.SalaryRatio(p.FuelForWork, emp.BasicSalary, fuelLimits.Divisor, fuelLimits.Cap)
	p.FuelForWorkTaxable = fuelWork.Taxable
	p.FuelForWorkNonTaxable = fuelWork.NonTaxable

	hardship := allowance.Hardship(p.HardshipAllowance, emp.BasicSalary, rates.HardshipPercent(emp.WorkingEnvironment))
	p.HardshipAllowanceTaxable = hardship.Taxable
	p.HardshipAllowanceNonTaxable = hardship.NonTaxable

	perDiem := allowance.PerDiem(p.PerDiem, emp.DailyPerDiem, emp.BasicSalary, rates.PerDiemRule(emp.WorkingArea))
	p.PerDiemTaxable = perDiem.Taxable
	p.PerDiemNonTaxable = perDiem.NonTaxable

	p.UniversityCostSharePay = emp.BasicSalary.Mul(p.CostSharePercent).Div(hundred)

	contrib := pension.Contributions(p.BasicSalary, rates.Pension)
	p.EmployeePensionContribution = contrib.Employee
	p.EmployerPensionContribution = contrib.Employer
	p.TotalPensionContribution = contrib.Total

	p.GrossPay = grossPay(p)
	p.GrossTaxablePay = grossTaxablePay(p)
	p.GrossNonTaxablePay = grossNonTaxablePay(p)

	if !p.GrossPay.Equal(p.GrossTaxablePay.Add(p.GrossNonTaxablePay)) {
		return apperror.InvariantViolation(fmt.Sprintf(
			"gross pay %s does not equal taxable %s plus non-taxable %s",
			p.GrossPay, p.GrossTaxablePay, p.GrossNonTaxablePay,
		))
	}

	p.EmploymentIncomeTax = tax.Calculate(p.GrossTaxablePay, rates.TaxBrackets)

	p.TotalPayrollDeduction = decimal.Sum(
		p.EmploymentIncomeTax,
		p.EmployeePensionContribution,
		p.CharitableDonation,
		p.SavingPlan,
		p.LoanPayment,
		p.CourtOrder,
		p.WorkersAssociation,
		p.PersonnelInsuranceSaving,
		p.UniversityCostSharePay,
		p.RedCross,
		p.PartyContribution,
		p.OtherDeduction,
	)

	p.NetPay = p.GrossPay.Sub(p.TotalPayrollDeduction).Round(2)
	p.Expense = p.GrossPay.Add(p.EmployerPensionContribution)

	return nil
}

// overtimePay prices each hour tier at contract salary / 240 times the
// tier multiplier.
func overtimePay(p *Payroll, contractSalary decimal.Decimal, rates rateconfig.Rates) decimal.Decimal {
	if contractSalary.Sign() <= 0 {
		return decimal.Zero
	}

	hourly := contractSalary.Div(monthlyHours)

	tiers := []struct {
		hours    int
		rateType string
	}{
		{p.EveningHours, rateconfig.OvertimeEvening},
		{p.NightHours, rateconfig.OvertimeNight},
		{p.RestDayHours, rateconfig.OvertimeRestDay},
		{p.PublicHolidayHours, rateconfig.OvertimePublicHoliday},
	}

	total := decimal.Zero
	for _, t := range tiers {
		if t.hours == 0 {
			continue
		}
		pay := decimal.NewFromInt(int64(t.hours)).
			Mul(hourly).
			Mul(rates.OvertimeMultiplier(t.rateType))
		total = total.Add(pay)
	}
	return total
}

func grossPay(p *Payroll) decimal.Decimal {
	return decimal.Sum(
		p.BasicSalary,
		p.Overtime,
		p.TransportHomeToOffice,
		p.FuelHomeToOffice,
		p.TransportForWork,
		p.FuelForWork,
		p.PerDiem,
		p.HardshipAllowance,
		p.HousingAllowance,
		p.PositionAllowance,
		p.Commission,
		p.TelephoneAllowance,
		p.OneTimeBonus,
		p.CausalLaborWage,
		p.PublicCashAward,
		p.IncidentalOperationAllowance,
		p.MedicalAllowance,
		p.CashGift,
		p.TuitionFees,
		p.PersonalInjury,
		p.ChildSupportPayment,
	)
}

func grossTaxablePay(p *Payroll) decimal.Decimal {
	return decimal.Sum(
		p.BasicSalary,
		p.Overtime,
		p.TransportHomeToOfficeTaxable,
		p.FuelHomeToOfficeTaxable,
		p.TransportForWorkTaxable,
		p.FuelForWorkTaxable,
		p.PerDiemTaxable,
		p.HardshipAllowanceTaxable,
		p.HousingAllowance,
		p.PositionAllowance,
		p.Commission,
		p.TelephoneAllowance,
		p.OneTimeBonus,
		p.CausalLaborWage,
	)
}

func grossNonTaxablePay(p *Payroll) decimal.Decimal {
	return decimal.Sum(
		p.TransportHomeToOfficeNonTaxable,
		p.FuelHomeToOfficeNonTaxable,
		p.TransportForWorkNonTaxable,
		p.FuelForWorkNonTaxable,
		p.PerDiemNonTaxable,
		p.HardshipAllowanceNonTaxable,
		p.PublicCashAward,
		p.IncidentalOperationAllowance,
		p.MedicalAllowance,
		p.CashGift,
		p.TuitionFees,
		p.PersonalInjury,
		p.ChildSupportPayment,
	)
}
