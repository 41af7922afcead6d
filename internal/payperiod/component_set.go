package payperiod

import (
	"time"

	"github.com/google/uuid"
)

// PeriodComponentSet selects which pay components are processed in one
// period. One row per (organization, period); components default to off.
type PeriodComponentSet struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_component_set_org_period"`
	PayPeriodID    uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_component_set_org_period"`

	UseBasicSalary        bool
	UseOvertime           bool
	UseHousingAllowance   bool
	UsePositionAllowance  bool
	UseCommission         bool
	UseTelephoneAllowance bool
	UseOneTimeBonus       bool
	UseCausalLaborWage    bool

	UseTransportHomeToOffice bool
	UseTransportForWork      bool
	UseFuelHomeToOffice      bool
	UseFuelForWork           bool
	UsePerDiem               bool
	UseHardshipAllowance     bool

	UsePublicCashAward              bool
	UseIncidentalOperationAllowance bool
	UseMedicalAllowance             bool
	UseCashGift                     bool
	UseTuitionFees                  bool
	UsePersonalInjury               bool
	UseChildSupportPayment          bool

	UseCharitableDonation       bool
	UseSavingPlan               bool
	UseLoanPayment              bool
	UseCourtOrder               bool
	UseWorkersAssociation       bool
	UsePersonnelInsuranceSaving bool
	UseUniversityCostSharePay   bool
	UseRedCross                 bool
	UsePartyContribution        bool
	UseOtherDeduction           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type componentToggle struct {
	name  string
	field *bool
}

func (s *PeriodComponentSet) toggles() []componentToggle {
	return []componentToggle{
		{"basic_salary", &s.UseBasicSalary},
		{"overtime", &s.UseOvertime},
		{"housing_allowance", &s.UseHousingAllowance},
		{"position_allowance", &s.UsePositionAllowance},
		{"commission", &s.UseCommission},
		{"telephone_allowance", &s.UseTelephoneAllowance},
		{"one_time_bonus", &s.UseOneTimeBonus},
		{"causal_labor_wage", &s.UseCausalLaborWage},

		{"transport_home_to_office", &s.UseTransportHomeToOffice},
		{"transport_for_work", &s.UseTransportForWork},
		{"fuel_home_to_office", &s.UseFuelHomeToOffice},
		{"fuel_for_work", &s.UseFuelForWork},
		{"per_diem", &s.UsePerDiem},
		{"hardship_allowance", &s.UseHardshipAllowance},

		{"public_cash_award", &s.UsePublicCashAward},
		{"incidental_operation_allowance", &s.UseIncidentalOperationAllowance},
		{"medical_allowance", &s.UseMedicalAllowance},
		{"cash_gift", &s.UseCashGift},
		{"tuition_fees", &s.UseTuitionFees},
		{"personal_injury", &s.UsePersonalInjury},
		{"child_support_payment", &s.UseChildSupportPayment},

		{"charitable_donation", &s.UseCharitableDonation},
		{"saving_plan", &s.UseSavingPlan},
		{"loan_payment", &s.UseLoanPayment},
		{"court_order", &s.UseCourtOrder},
		{"workers_association", &s.UseWorkersAssociation},
		{"personnel_insurance_saving", &s.UsePersonnelInsuranceSaving},
		{"university_cost_share_pay", &s.UseUniversityCostSharePay},
		{"red_cross", &s.UseRedCross},
		{"party_contribution", &s.UsePartyContribution},
		{"other_deduction", &s.UseOtherDeduction},
	}
}

// Active reports whether the named component is processed this period.
// Unknown names are inactive.
func (s *PeriodComponentSet) Active(component string) bool {
	for _, t := range s.toggles() {
		if t.name == component {
			return *t.field
		}
	}
	return false
}

// ToggleMap returns the full component → enabled view of the set.
func (s *PeriodComponentSet) ToggleMap() map[string]bool {
	out := make(map[string]bool, 31)
	for _, t := range s.toggles() {
		out[t.name] = *t.field
	}
	return out
}

// ApplyToggles overwrites the set from a component → enabled map.
// Unknown component names are reported back to the caller.
func (s *PeriodComponentSet) ApplyToggles(m map[string]bool) (unknown []string) {
	for name, on := range m {
		found := false
		for _, t := range s.toggles() {
			if t.name == name {
				*t.field = on
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
