package severance

const dateLayout = "2006-01-02"

type CreateSeveranceRequest struct {
	EmployeeID        string `json:"employee_id" binding:"required"`
	PayPeriodID       string `json:"pay_period_id" binding:"required"`
	SeveranceType     string `json:"severance_type" binding:"required"`
	LastWeekDailyWage string `json:"last_week_daily_wage" binding:"required"`
	StartDate         string `json:"start_date" binding:"required"`
	EndDate           string `json:"end_date" binding:"required"`
}

type SeveranceResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	PayPeriodID string `json:"pay_period_id"`

	SeveranceType     string `json:"severance_type"`
	LastWeekDailyWage string `json:"last_week_daily_wage"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`

	ServiceYears int `json:"service_years"`
	ServiceDays  int `json:"service_days"`

	SeveranceForYears string `json:"severance_for_years"`
	SeveranceForDays  string `json:"severance_for_days"`
	GrossSeverancePay string `json:"gross_severance_pay"`

	MonthlyWage   string `json:"monthly_wage"`
	ProrateSalary string `json:"prorate_salary"`

	TaxFromMonthlyWage      string `json:"tax_from_monthly_wage"`
	TotalTaxFromMonthlyWage string `json:"total_tax_from_monthly_wage"`
	TaxFromProrateSalary    string `json:"tax_from_prorate_salary"`
	TaxFromSeverancePay     string `json:"tax_from_severance_pay"`

	NetSeverancePay string `json:"net_severance_pay"`
}

func mapToResponse(sv Severance) SeveranceResponse {
	return SeveranceResponse{
		ID:          sv.ID.String(),
		EmployeeID:  sv.EmployeeID.String(),
		PayPeriodID: sv.PayPeriodID.String(),

		SeveranceType:     sv.SeveranceType,
		LastWeekDailyWage: sv.LastWeekDailyWage.StringFixed(2),
		StartDate:         sv.StartDate.Format(dateLayout),
		EndDate:           sv.EndDate.Format(dateLayout),

		ServiceYears: sv.ServiceYears,
		ServiceDays:  sv.ServiceDays,

		SeveranceForYears: sv.SeveranceForYears.StringFixed(2),
		SeveranceForDays:  sv.SeveranceForDays.StringFixed(2),
		GrossSeverancePay: sv.GrossSeverancePay.StringFixed(2),

		MonthlyWage:   sv.MonthlyWage.StringFixed(2),
		ProrateSalary: sv.ProrateSalary.StringFixed(2),

		TaxFromMonthlyWage:      sv.TaxFromMonthlyWage.StringFixed(2),
		TotalTaxFromMonthlyWage: sv.TotalTaxFromMonthlyWage.StringFixed(2),
		TaxFromProrateSalary:    sv.TaxFromProrateSalary.StringFixed(2),
		TaxFromSeverancePay:     sv.TaxFromSeverancePay.StringFixed(2),

		NetSeverancePay: sv.NetSeverancePay.StringFixed(2),
	}
}

func mapToListResponse(rows []Severance) []SeveranceResponse {
	resp := make([]SeveranceResponse, 0, len(rows))
	for _, sv := range rows {
		resp = append(resp, mapToResponse(sv))
	}
	return resp
}
