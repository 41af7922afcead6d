package rateconfig

type SetOvertimeRateRequest struct {
	RateType   string `json:"rate_type" binding:"required"`
	Multiplier string `json:"multiplier" binding:"required"`
}

type SetFlatCapRequest struct {
	Component string `json:"component" binding:"required"`
	CapAmount string `json:"cap_amount" binding:"required"`
}

type SetSalaryRatioRequest struct {
	Component     string `json:"component" binding:"required"`
	SalaryDivisor string `json:"salary_divisor" binding:"required"`
	CapAmount     string `json:"cap_amount" binding:"required"`
}

type SetHardshipRateRequest struct {
	Environment  string `json:"environment" binding:"required"`
	LimitPercent string `json:"limit_percent" binding:"required"`
}

type SetPerDiemRateRequest struct {
	WorkingArea     string `json:"working_area" binding:"required"`
	PercentLimit    string `json:"percent_limit"`
	CapAmount       string `json:"cap_amount"`
	FullyNonTaxable bool   `json:"fully_non_taxable"`
}

type SetPensionRateRequest struct {
	EmployeeRate string `json:"employee_rate" binding:"required"`
	EmployerRate string `json:"employer_rate" binding:"required"`
}

type TaxBracketRequest struct {
	MinAmount string  `json:"min_amount" binding:"required"`
	MaxAmount *string `json:"max_amount"`
	Rate      string  `json:"rate" binding:"required"`
	Deduction string  `json:"deduction"`
}

type ReplaceTaxScheduleRequest struct {
	Brackets []TaxBracketRequest `json:"brackets" binding:"required,dive"`
}

type TaxBracketResponse struct {
	MinAmount string  `json:"min_amount"`
	MaxAmount *string `json:"max_amount,omitempty"`
	Rate      string  `json:"rate"`
	Deduction string  `json:"deduction"`
}

type SalaryRatioResponse struct {
	SalaryDivisor string `json:"salary_divisor"`
	CapAmount     string `json:"cap_amount"`
}

type PerDiemRuleResponse struct {
	PercentLimit    string `json:"percent_limit"`
	CapAmount       string `json:"cap_amount"`
	FullyNonTaxable bool   `json:"fully_non_taxable"`
}

// EffectiveRatesResponse is the fully resolved snapshot, defaults
// already merged with the organization's overrides.
type EffectiveRatesResponse struct {
	OvertimeMultipliers map[string]string              `json:"overtime_multipliers"`
	FlatCaps            map[string]string              `json:"flat_caps"`
	SalaryRatios        map[string]SalaryRatioResponse `json:"salary_ratios"`
	HardshipPercents    map[string]string              `json:"hardship_percents"`
	PerDiem             map[string]PerDiemRuleResponse `json:"per_diem"`
	EmployeePensionRate string                         `json:"employee_pension_rate"`
	EmployerPensionRate string                         `json:"employer_pension_rate"`
	TaxBrackets         []TaxBracketResponse           `json:"tax_brackets"`
}
