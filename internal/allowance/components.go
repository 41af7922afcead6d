package allowance

// Component names as they appear on a payroll record. The class of a
// component drives whether it enters the taxable base, the gross only,
// or the deduction side.
const (
	ComponentBasicSalary              = "basic_salary"
	ComponentOvertime                 = "overtime"
	ComponentHousingAllowance         = "housing_allowance"
	ComponentPositionAllowance        = "position_allowance"
	ComponentCommission               = "commission"
	ComponentTelephoneAllowance       = "telephone_allowance"
	ComponentOneTimeBonus             = "one_time_bonus"
	ComponentCausalLaborWage          = "causal_labor_wage"
	ComponentTransportHomeToOffice    = "transport_home_to_office"
	ComponentFuelHomeToOffice         = "fuel_home_to_office"
	ComponentTransportForWork         = "transport_for_work"
	ComponentFuelForWork              = "fuel_for_work"
	ComponentHardshipAllowance        = "hardship_allowance"
	ComponentPerDiem                  = "per_diem"
	ComponentPublicCashAward          = "public_cash_award"
	ComponentIncidentalOperationAllow = "incidental_operation_allowance"
	ComponentMedicalAllowance         = "medical_allowance"
	ComponentCashGift                 = "cash_gift"
	ComponentTuitionFees              = "tuition_fees"
	ComponentPersonalInjury           = "personal_injury"
	ComponentChildSupportPayment      = "child_support_payment"
)

// Deferred earnings are bonuses paid out in a later period than the one
// they were earned in. They only appear as retroactive adjustments.
const (
	ComponentLeaveEncashment          = "leave_encashment"
	ComponentQuarterlyBonus           = "quarterly_bonus"
	ComponentSemiAnnualBonus          = "semi_annual_bonus"
	ComponentAnnualBonus              = "annual_bonus"
	ComponentPerformanceBasedBonuses  = "performance_based_bonuses"
	ComponentProjectCompletionBonuses = "project_completion_bonuses"
	ComponentHolidayBonus             = "holiday_bonus"
	ComponentOtherBonus               = "other_bonus"
)

// Class describes how a component participates in the payroll totals.
type Class int

const (
	ClassUnknown Class = iota
	ClassFullyTaxable
	ClassPartiallyTaxable
	ClassNonTaxable
	ClassDeferredEarnings
	ClassDeduction
)

var fullyTaxable = map[string]struct{}{
	ComponentBasicSalary:        {},
	ComponentOvertime:           {},
	ComponentHousingAllowance:   {},
	ComponentPositionAllowance:  {},
	ComponentCommission:         {},
	ComponentTelephoneAllowance: {},
	ComponentOneTimeBonus:       {},
	ComponentCausalLaborWage:    {},
}

var partiallyTaxable = map[string]struct{}{
	ComponentTransportHomeToOffice: {},
	ComponentFuelHomeToOffice:      {},
	ComponentTransportForWork:      {},
	ComponentFuelForWork:           {},
	ComponentPerDiem:               {},
	ComponentHardshipAllowance:     {},
}

var nonTaxable = map[string]struct{}{
	ComponentPublicCashAward:          {},
	ComponentIncidentalOperationAllow: {},
	ComponentMedicalAllowance:         {},
	ComponentCashGift:                 {},
	ComponentTuitionFees:              {},
	ComponentPersonalInjury:           {},
	ComponentChildSupportPayment:      {},
}

var deferredEarnings = map[string]struct{}{
	ComponentLeaveEncashment:          {},
	ComponentQuarterlyBonus:           {},
	ComponentSemiAnnualBonus:          {},
	ComponentAnnualBonus:              {},
	ComponentPerformanceBasedBonuses:  {},
	ComponentProjectCompletionBonuses: {},
	ComponentHolidayBonus:             {},
	ComponentOtherBonus:               {},
}

var deductions = map[string]struct{}{
	"charitable_donation":            {},
	"saving_plan":                    {},
	"loan_payment":                   {},
	"court_order":                    {},
	"workers_association":            {},
	"personnel_insurance_saving":     {},
	"university_cost_share_pay":      {},
	"red_cross":                      {},
	"party_contribution":             {},
	"other_deduction":                {},
}

// pensionable lists the components whose sum forms the pension base.
var pensionable = map[string]struct{}{
	ComponentBasicSalary: {},
}

func Classify(component string) Class {
	if _, ok := fullyTaxable[component]; ok {
		return ClassFullyTaxable
	}
	if _, ok := partiallyTaxable[component]; ok {
		return ClassPartiallyTaxable
	}
	if _, ok := nonTaxable[component]; ok {
		return ClassNonTaxable
	}
	if _, ok := deferredEarnings[component]; ok {
		return ClassDeferredEarnings
	}
	if _, ok := deductions[component]; ok {
		return ClassDeduction
	}
	return ClassUnknown
}

func IsPensionable(component string) bool {
	_, ok := pensionable[component]
	return ok
}
