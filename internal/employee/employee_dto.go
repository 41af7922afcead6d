package employee

import "strings"

type CreateEmployeeRequest struct {
	PersonnelID    string `json:"personnel_id" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	FatherName     string `json:"father_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Gender         string `json:"gender" binding:"required"`
	EmploymentType string `json:"employment_type" binding:"required"`
	EmailAddress   string `json:"email_address" binding:"omitempty,email"`
	PhoneNumber    string `json:"phone_number"`
	City           string `json:"city" binding:"required"`
	Section        string `json:"section"`
	PositionName   string `json:"position_name"`

	WorkingArea        string `json:"working_area" binding:"required"`
	WorkingEnvironment string `json:"working_environment"`

	PensionNumber string `json:"pension_number" binding:"required"`
	PersonnelTIN  string `json:"personnel_tin" binding:"required"`

	BasicSalary               string `json:"basic_salary" binding:"required"`
	DailyPerDiem              string `json:"daily_per_diem"`
	UniversityCostSharingDebt string `json:"university_cost_sharing_debt"`

	BankName        string `json:"bank_name"`
	BankAccountID   string `json:"bank_account_id"`
	BankAccountType string `json:"bank_account_type"`

	EmploymentDate string `json:"employment_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	PositionName       string `json:"position_name"`
	Section            string `json:"section"`
	WorkingArea        string `json:"working_area"`
	WorkingEnvironment string `json:"working_environment"`

	BasicSalary               string `json:"basic_salary"`
	DailyPerDiem              string `json:"daily_per_diem"`
	UniversityCostSharingDebt string `json:"university_cost_sharing_debt"`

	BankName        string `json:"bank_name"`
	BankAccountID   string `json:"bank_account_id"`
	BankAccountType string `json:"bank_account_type"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	PersonnelID    string `json:"personnel_id"`
	FullName       string `json:"full_name"`
	Gender         string `json:"gender"`
	EmploymentType string `json:"employment_type"`
	EmailAddress   string `json:"email_address,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	City           string `json:"city"`
	Section        string `json:"section,omitempty"`
	PositionName   string `json:"position_name,omitempty"`

	WorkingArea        string `json:"working_area"`
	WorkingEnvironment string `json:"working_environment,omitempty"`

	PensionNumber string `json:"pension_number"`
	PersonnelTIN  string `json:"personnel_tin"`

	BasicSalary               string `json:"basic_salary"`
	DailyPerDiem              string `json:"daily_per_diem"`
	UniversityCostSharingDebt string `json:"university_cost_sharing_debt"`

	EmploymentDate string `json:"employment_date"`
}

func buildFullName(first, father, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, father, last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                        e.ID.String(),
		PersonnelID:               e.PersonnelID,
		FullName:                  e.FullName,
		Gender:                    e.Gender,
		EmploymentType:            e.EmploymentType,
		EmailAddress:              e.EmailAddress,
		PhoneNumber:               e.PhoneNumber,
		City:                      e.City,
		Section:                   e.Section,
		PositionName:              e.PositionName,
		WorkingArea:               e.WorkingArea,
		WorkingEnvironment:        e.WorkingEnvironment,
		PensionNumber:             e.PensionNumber,
		PersonnelTIN:              e.PersonnelTIN,
		BasicSalary:               e.BasicSalary.StringFixed(2),
		DailyPerDiem:              e.DailyPerDiem.StringFixed(2),
		UniversityCostSharingDebt: e.UniversityCostSharingDebt.StringFixed(2),
		EmploymentDate:            e.EmploymentDate.Format("2006-01-02"),
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, mapToResponse(e))
	}
	return resp
}
