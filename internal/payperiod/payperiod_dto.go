package payperiod

type CreatePayPeriodRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

type PayPeriodResponse struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Slug  string `json:"slug"`
}

func mapToResponse(p PayPeriod) PayPeriodResponse {
	return PayPeriodResponse{
		ID:    p.ID.String(),
		Year:  p.Year,
		Month: p.Month,
		Slug:  p.Slug,
	}
}

type SetComponentSetRequest struct {
	Components map[string]bool `json:"components" binding:"required"`
}

type ComponentSetResponse struct {
	PayPeriodID string          `json:"pay_period_id"`
	Components  map[string]bool `json:"components"`
}

func mapComponentSetToResponse(set PeriodComponentSet) ComponentSetResponse {
	return ComponentSetResponse{
		PayPeriodID: set.PayPeriodID.String(),
		Components:  set.ToggleMap(),
	}
}

func mapToListResponse(periods []PayPeriod) []PayPeriodResponse {
	resp := make([]PayPeriodResponse, 0, len(periods))
	for _, p := range periods {
		resp = append(resp, mapToResponse(p))
	}
	return resp
}
