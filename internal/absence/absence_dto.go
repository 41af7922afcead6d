package absence

type QuoteRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	AbsenceDays int    `json:"absence_days" binding:"min=0,max=30"`
}

type QuoteResponse struct {
	EmployeeID      string `json:"employee_id"`
	FullName        string `json:"full_name"`
	MonthlySalary   string `json:"monthly_salary"`
	AbsenceDays     int    `json:"absence_days"`
	Deduction       string `json:"deduction"`
	RemainingSalary string `json:"remaining_salary"`
}
