package absence

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/apperror"
)

var ErrEmployeeNotFound = apperror.New(
	apperror.CodeNotFound,
	"Employee not found",
	http.StatusNotFound,
)

// EmployeeSource is the slice of the employee repository a quote needs.
type EmployeeSource interface {
	FindByIDAndOrganization(ctx context.Context, orgID, id string) (*employee.Employee, error)
}

type Service interface {
	Quote(ctx context.Context, orgID string, req QuoteRequest) (QuoteResponse, error)
}

type service struct {
	employees EmployeeSource
}

func NewService(employees EmployeeSource) Service {
	return &service{employees: employees}
}

// Quote prices the requested unpaid days against the employee's current
// basic salary. Nothing is persisted; the caller enters the resulting
// deduction on the payroll record.
func (s *service) Quote(ctx context.Context, orgID string, req QuoteRequest) (QuoteResponse, error) {
	e, err := s.employees.FindByIDAndOrganization(ctx, orgID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuoteResponse{}, ErrEmployeeNotFound
		}
		return QuoteResponse{}, err
	}

	deduction, err := Deduction(e.BasicSalary, req.AbsenceDays)
	if err != nil {
		return QuoteResponse{}, err
	}

	return QuoteResponse{
		EmployeeID:      e.ID.String(),
		FullName:        e.FullName,
		MonthlySalary:   e.BasicSalary.StringFixed(2),
		AbsenceDays:     req.AbsenceDays,
		Deduction:       deduction.StringFixed(2),
		RemainingSalary: e.BasicSalary.Sub(deduction).StringFixed(2),
	}, nil
}
