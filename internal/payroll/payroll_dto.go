package payroll

// PayComponentsRequest carries every user-supplied pay input. Amounts
// are decimal strings; missing amounts default to zero.
type PayComponentsRequest struct {
	BasicSalary string `json:"basic_salary" binding:"required"`

	EveningOvertimeHours       int `json:"evening_overtime_hours"`
	NightOvertimeHours         int `json:"night_overtime_hours"`
	RestDayOvertimeHours       int `json:"rest_day_overtime_hours"`
	PublicHolidayOvertimeHours int `json:"public_holiday_overtime_hours"`

	HousingAllowance   string `json:"housing_allowance"`
	PositionAllowance  string `json:"position_allowance"`
	Commission         string `json:"commission"`
	TelephoneAllowance string `json:"telephone_allowance"`
	OneTimeBonus       string `json:"one_time_bonus"`
	CausalLaborWage    string `json:"causal_labor_wage"`

	TransportHomeToOffice string `json:"transport_home_to_office"`
	FuelHomeToOffice      string `json:"fuel_home_to_office"`
	TransportForWork      string `json:"transport_for_work"`
	FuelForWork           string `json:"fuel_for_work"`
	PerDiem               string `json:"per_diem"`
	HardshipAllowance     string `json:"hardship_allowance"`

	PublicCashAward              string `json:"public_cash_award"`
	IncidentalOperationAllowance string `json:"incidental_operation_allowance"`
	MedicalAllowance             string `json:"medical_allowance"`
	CashGift                     string `json:"cash_gift"`
	TuitionFees                  string `json:"tuition_fees"`
	PersonalInjury               string `json:"personal_injury"`
	ChildSupportPayment          string `json:"child_support_payment"`

	CostSharePercent         string `json:"cost_share_percent"`
	CharitableDonation       string `json:"charitable_donation"`
	SavingPlan               string `json:"saving_plan"`
	LoanPayment              string `json:"loan_payment"`
	CourtOrder               string `json:"court_order"`
	WorkersAssociation       string `json:"workers_association"`
	PersonnelInsuranceSaving string `json:"personnel_insurance_saving"`
	RedCross                 string `json:"red_cross"`
	PartyContribution        string `json:"party_contribution"`
	OtherDeduction           string `json:"other_deduction"`
}

type CreatePayrollRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required"`
	PayPeriodID string `json:"pay_period_id" binding:"required"`
	PayComponentsRequest
}

type UpdatePayrollRequest struct {
	PayComponentsRequest
}

type PayrollResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	PayPeriodID  string `json:"pay_period_id"`

	BasicSalary string `json:"basic_salary"`
	Overtime    string `json:"overtime"`

	HousingAllowance   string `json:"housing_allowance"`
	PositionAllowance  string `json:"position_allowance"`
	Commission         string `json:"commission"`
	TelephoneAllowance string `json:"telephone_allowance"`
	OneTimeBonus       string `json:"one_time_bonus"`
	CausalLaborWage    string `json:"causal_labor_wage"`

	TransportHomeToOffice           string `json:"transport_home_to_office"`
	TransportHomeToOfficeTaxable    string `json:"transport_home_to_office_taxable"`
	TransportHomeToOfficeNonTaxable string `json:"transport_home_to_office_non_taxable"`
	FuelHomeToOffice                string `json:"fuel_home_to_office"`
	FuelHomeToOfficeTaxable         string `json:"fuel_home_to_office_taxable"`
	FuelHomeToOfficeNonTaxable      string `json:"fuel_home_to_office_non_taxable"`
	TransportForWork                string `json:"transport_for_work"`
	TransportForWorkTaxable         string `json:"transport_for_work_taxable"`
	TransportForWorkNonTaxable      string `json:"transport_for_work_non_taxable"`
	FuelForWork                     string `json:"fuel_for_work"`
	FuelForWorkTaxable              string `json:"fuel_for_work_taxable"`
	FuelForWorkNonTaxable           string `json:"fuel_for_work_non_taxable"`
	PerDiem                         string `json:"per_diem"`
	PerDiemTaxable                  string `json:"per_diem_taxable"`
	PerDiemNonTaxable               string `json:"per_diem_non_taxable"`
	HardshipAllowance               string `json:"hardship_allowance"`
	HardshipAllowanceTaxable        string `json:"hardship_allowance_taxable"`
	HardshipAllowanceNonTaxable     string `json:"hardship_allowance_non_taxable"`

	PublicCashAward              string `json:"public_cash_award"`
	IncidentalOperationAllowance string `json:"incidental_operation_allowance"`
	MedicalAllowance             string `json:"medical_allowance"`
	CashGift                     string `json:"cash_gift"`
	TuitionFees                  string `json:"tuition_fees"`
	PersonalInjury               string `json:"personal_injury"`
	ChildSupportPayment          string `json:"child_support_payment"`

	UniversityCostSharePay   string `json:"university_cost_share_pay"`
	CharitableDonation       string `json:"charitable_donation"`
	SavingPlan               string `json:"saving_plan"`
	LoanPayment              string `json:"loan_payment"`
	CourtOrder               string `json:"court_order"`
	WorkersAssociation       string `json:"workers_association"`
	PersonnelInsuranceSaving string `json:"personnel_insurance_saving"`
	RedCross                 string `json:"red_cross"`
	PartyContribution        string `json:"party_contribution"`
	OtherDeduction           string `json:"other_deduction"`

	EmployeePensionContribution string `json:"employee_pension_contribution"`
	EmployerPensionContribution string `json:"employer_pension_contribution"`
	TotalPensionContribution    string `json:"total_pension_contribution"`

	GrossPay           string `json:"gross_pay"`
	GrossTaxablePay    string `json:"gross_taxable_pay"`
	GrossNonTaxablePay string `json:"gross_non_taxable_pay"`

	EmploymentIncomeTax   string `json:"employment_income_tax"`
	TotalPayrollDeduction string `json:"total_payroll_deduction"`
	NetPay                string `json:"net_pay"`
	Expense               string `json:"expense"`
}

func mapToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		PayPeriodID: p.PayPeriodID.String(),

		BasicSalary: p.BasicSalary.StringFixed(2),
		Overtime:    p.Overtime.StringFixed(2),

		HousingAllowance:   p.HousingAllowance.StringFixed(2),
		PositionAllowance:  p.PositionAllowance.StringFixed(2),
		Commission:         p.Commission.StringFixed(2),
		TelephoneAllowance: p.TelephoneAllowance.StringFixed(2),
		OneTimeBonus:       p.OneTimeBonus.StringFixed(2),
		CausalLaborWage:    p.CausalLaborWage.StringFixed(2),

		TransportHomeToOffice:           p.TransportHomeToOffice.StringFixed(2),
		TransportHomeToOfficeTaxable:    p.TransportHomeToOfficeTaxable.StringFixed(2),
		TransportHomeToOfficeNonTaxable: p.TransportHomeToOfficeNonTaxable.StringFixed(2),
		FuelHomeToOffice:                p.FuelHomeToOffice.StringFixed(2),
		FuelHomeToOfficeTaxable:         p.FuelHomeToOfficeTaxable.StringFixed(2),
		FuelHomeToOfficeNonTaxable:      p.FuelHomeToOfficeNonTaxable.StringFixed(2),
		TransportForWork:                p.TransportForWork.StringFixed(2),
		TransportForWorkTaxable:         p.TransportForWorkTaxable.StringFixed(2),
		TransportForWorkNonTaxable:      p.TransportForWorkNonTaxable.StringFixed(2),
		FuelForWork:                     p.FuelForWork.StringFixed(2),
		FuelForWorkTaxable:              p.FuelForWorkTaxable.StringFixed(2),
		FuelForWorkNonTaxable:           p.FuelForWorkNonTaxable.StringFixed(2),
		PerDiem:                         p.PerDiem.StringFixed(2),
		PerDiemTaxable:                  p.PerDiemTaxable.StringFixed(2),
		PerDiemNonTaxable:               p.PerDiemNonTaxable.StringFixed(2),
		HardshipAllowance:               p.HardshipAllowance.StringFixed(2),
		HardshipAllowanceTaxable:        p.HardshipAllowanceTaxable.StringFixed(2),
		HardshipAllowanceNonTaxable:     p.HardshipAllowanceNonTaxable.StringFixed(2),

		PublicCashAward:              p.PublicCashAward.StringFixed(2),
		IncidentalOperationAllowance: p.IncidentalOperationAllowance.StringFixed(2),
		MedicalAllowance:             p.MedicalAllowance.StringFixed(2),
		CashGift:                     p.CashGift.StringFixed(2),
		TuitionFees:                  p.TuitionFees.StringFixed(2),
		PersonalInjury:               p.PersonalInjury.StringFixed(2),
		ChildSupportPayment:          p.ChildSupportPayment.StringFixed(2),

		UniversityCostSharePay:   p.UniversityCostSharePay.StringFixed(2),
		CharitableDonation:       p.CharitableDonation.StringFixed(2),
		SavingPlan:               p.SavingPlan.StringFixed(2),
		LoanPayment:              p.LoanPayment.StringFixed(2),
		CourtOrder:               p.CourtOrder.StringFixed(2),
		WorkersAssociation:       p.WorkersAssociation.StringFixed(2),
		PersonnelInsuranceSaving: p.PersonnelInsuranceSaving.StringFixed(2),
		RedCross:                 p.RedCross.StringFixed(2),
		PartyContribution:        p.PartyContribution.StringFixed(2),
		OtherDeduction:           p.OtherDeduction.StringFixed(2),

		EmployeePensionContribution: p.EmployeePensionContribution.StringFixed(2),
		EmployerPensionContribution: p.EmployerPensionContribution.StringFixed(2),
		TotalPensionContribution:    p.TotalPensionContribution.StringFixed(2),

		GrossPay:           p.GrossPay.StringFixed(2),
		GrossTaxablePay:    p.GrossTaxablePay.StringFixed(2),
		GrossNonTaxablePay: p.GrossNonTaxablePay.StringFixed(2),

		EmploymentIncomeTax:   p.EmploymentIncomeTax.StringFixed(2),
		TotalPayrollDeduction: p.TotalPayrollDeduction.StringFixed(2),
		NetPay:                p.NetPay.StringFixed(2),
		Expense:               p.Expense.StringFixed(2),
	}
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		resp = append(resp, mapToResponse(p))
	}
	return resp
}
