package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payroll is one employee's pay record for one pay period.
// (OrganizationID, EmployeeID, PayPeriodID) is unique.
type Payroll struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_payroll_employee_period"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_payroll_employee_period"`
	PayPeriodID    uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_payroll_employee_period"`

	// Earning inputs.
	BasicSalary        decimal.Decimal `gorm:"type:numeric(12,2)"`
	EveningHours       int
	NightHours         int
	RestDayHours       int
	PublicHolidayHours int

	HousingAllowance   decimal.Decimal `gorm:"type:numeric(12,2)"`
	PositionAllowance  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Commission         decimal.Decimal `gorm:"type:numeric(12,2)"`
	TelephoneAllowance decimal.Decimal `gorm:"type:numeric(12,2)"`
	OneTimeBonus       decimal.Decimal `gorm:"type:numeric(12,2)"`
	CausalLaborWage    decimal.Decimal `gorm:"type:numeric(12,2)"`

	TransportHomeToOffice decimal.Decimal `gorm:"type:numeric(12,2)"`
	FuelHomeToOffice      decimal.Decimal `gorm:"type:numeric(12,2)"`
	TransportForWork      decimal.Decimal `gorm:"type:numeric(12,2)"`
	FuelForWork           decimal.Decimal `gorm:"type:numeric(12,2)"`
	PerDiem               decimal.Decimal `gorm:"type:numeric(12,2)"`
	HardshipAllowance     decimal.Decimal `gorm:"type:numeric(12,2)"`

	PublicCashAward              decimal.Decimal `gorm:"type:numeric(12,2)"`
	IncidentalOperationAllowance decimal.Decimal `gorm:"type:numeric(12,2)"`
	MedicalAllowance             decimal.Decimal `gorm:"type:numeric(12,2)"`
	CashGift                     decimal.Decimal `gorm:"type:numeric(12,2)"`
	TuitionFees                  decimal.Decimal `gorm:"type:numeric(12,2)"`
	PersonalInjury               decimal.Decimal `gorm:"type:numeric(12,2)"`
	ChildSupportPayment          decimal.Decimal `gorm:"type:numeric(12,2)"`

	// Deduction inputs.
	CostSharePercent         decimal.Decimal `gorm:"type:numeric(6,2)"`
	CharitableDonation       decimal.Decimal `gorm:"type:numeric(12,2)"`
	SavingPlan               decimal.Decimal `gorm:"type:numeric(12,2)"`
	LoanPayment              decimal.Decimal `gorm:"type:numeric(12,2)"`
	CourtOrder               decimal.Decimal `gorm:"type:numeric(12,2)"`
	WorkersAssociation       decimal.Decimal `gorm:"type:numeric(12,2)"`
	PersonnelInsuranceSaving decimal.Decimal `gorm:"type:numeric(12,2)"`
	RedCross                 decimal.Decimal `gorm:"type:numeric(12,2)"`
	PartyContribution        decimal.Decimal `gorm:"type:numeric(12,2)"`
	OtherDeduction           decimal.Decimal `gorm:"type:numeric(12,2)"`

	// Derived fields, filled by Calculate.
	Overtime decimal.Decimal `gorm:"type:numeric(12,2)"`

	TransportHomeToOfficeTaxable    decimal.Decimal `gorm:"type:numeric(12,2)"`
	TransportHomeToOfficeNonTaxable decimal.Decimal `gorm:"type:numeric(12,2)"`
	FuelHomeToOfficeTaxable         decimal.Decimal `gorm:"type:numeric(12,2)"`
	FuelHomeToOfficeNonTaxable      decimal.Decimal `gorm:"type:numeric(12,2)"`
	TransportForWorkTaxable         decimal.Decimal `gorm:"type:numeric(12,2)"`
	TransportForWorkNonTaxable      decimal.Decimal `gorm:"type:numeric(12,2)"`
	FuelForWorkTaxable              decimal.Decimal `gorm:"type:numeric(12,2)"`
	FuelForWorkNonTaxable           decimal.Decimal `gorm:"type:numeric(12,2)"`
	PerDiemTaxable                  decimal.Decimal `gorm:"type:numeric(12,2)"`
	PerDiemNonTaxable               decimal.Decimal `gorm:"type:numeric(12,2)"`
	HardshipAllowanceTaxable        decimal.Decimal `gorm:"type:numeric(12,2)"`
	HardshipAllowanceNonTaxable     decimal.Decimal `gorm:"type:numeric(12,2)"`

	UniversityCostSharePay decimal.Decimal `gorm:"type:numeric(12,2)"`

	EmployeePensionContribution decimal.Decimal `gorm:"type:numeric(12,2)"`
	EmployerPensionContribution decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPensionContribution    decimal.Decimal `gorm:"type:numeric(12,2)"`

	GrossPay           decimal.Decimal `gorm:"type:numeric(14,2)"`
	GrossTaxablePay    decimal.Decimal `gorm:"type:numeric(14,2)"`
	GrossNonTaxablePay decimal.Decimal `gorm:"type:numeric(14,2)"`

	EmploymentIncomeTax   decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPayrollDeduction decimal.Decimal `gorm:"type:numeric(14,2)"`
	NetPay                decimal.Decimal `gorm:"type:numeric(14,2)"`
	Expense               decimal.Decimal `gorm:"type:numeric(14,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
