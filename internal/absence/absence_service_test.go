package absence_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-payroll/internal/absence"
	"go-payroll/internal/employee"
)

type fakeEmployeeSource struct {
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeSource) FindByIDAndOrganization(ctx context.Context, orgID, id string) (*employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func seedAbsenceEmployee(salary string) (*fakeEmployeeSource, *employee.Employee) {
	e := &employee.Employee{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		FullName:       "Abebe Kebede Alemu",
		BasicSalary:    decimal.RequireFromString(salary),
	}
	return &fakeEmployeeSource{employees: map[string]*employee.Employee{e.ID.String(): e}}, e
}

func TestAbsenceService_Quote(t *testing.T) {
	source, e := seedAbsenceEmployee("9000")
	svc := absence.NewService(source)

	resp, err := svc.Quote(context.Background(), e.OrganizationID.String(), absence.QuoteRequest{
		EmployeeID:  e.ID.String(),
		AbsenceDays: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, e.ID.String(), resp.EmployeeID)
	assert.Equal(t, "Abebe Kebede Alemu", resp.FullName)
	assert.Equal(t, "9000.00", resp.MonthlySalary)
	assert.Equal(t, 3, resp.AbsenceDays)
	assert.Equal(t, "900.00", resp.Deduction)
	assert.Equal(t, "8100.00", resp.RemainingSalary)
}

func TestAbsenceService_Quote_EmployeeMissing(t *testing.T) {
	source, e := seedAbsenceEmployee("9000")
	svc := absence.NewService(source)

	_, err := svc.Quote(context.Background(), e.OrganizationID.String(), absence.QuoteRequest{
		EmployeeID:  uuid.New().String(),
		AbsenceDays: 3,
	})

	assert.ErrorIs(t, err, absence.ErrEmployeeNotFound)
}

func TestAbsenceService_Quote_InvalidDays(t *testing.T) {
	source, e := seedAbsenceEmployee("9000")
	svc := absence.NewService(source)

	_, err := svc.Quote(context.Background(), e.OrganizationID.String(), absence.QuoteRequest{
		EmployeeID:  e.ID.String(),
		AbsenceDays: 31,
	})

	assert.ErrorIs(t, err, absence.ErrInvalidAbsenceDays)
}
