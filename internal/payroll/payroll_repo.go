package payroll

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EmployeeContext is the slice of the employee row a pay calculation
// and its preconditions need.
type EmployeeContext struct {
	FullName                  string
	BasicSalary               decimal.Decimal
	WorkingArea               string
	WorkingEnvironment        string
	DailyPerDiem              decimal.Decimal
	UniversityCostSharingDebt decimal.Decimal
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindEmployeeContext(ctx context.Context, orgID, employeeID string) (*EmployeeContext, error)
	FindPeriodSlug(ctx context.Context, orgID, payPeriodID string) (string, error)
	Create(ctx context.Context, p *Payroll) error
	Update(ctx context.Context, p *Payroll) error
	Delete(ctx context.Context, orgID, id string) error
	FindByIDAndOrganization(ctx context.Context, orgID, id string) (*Payroll, error)
	FindAllByPeriod(ctx context.Context, orgID, payPeriodID string) ([]Payroll, error)
	ExistsForEmployeeAndPeriod(ctx context.Context, orgID, employeeID, payPeriodID string, excludeID *string) (bool, error)
	SumCostShareByEmployee(ctx context.Context, orgID, employeeID string, excludeID *string) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to the caller's transaction so every
// statement it issues commits or rolls back with that transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) FindEmployeeContext(ctx context.Context, orgID, employeeID string) (*EmployeeContext, error) {
	var ec EmployeeContext
	query := `
SELECT
	full_name,
	basic_salary,
	working_area,
	working_environment,
	daily_per_diem,
	university_cost_sharing_debt
FROM employees
WHERE id = ?
  AND organization_id = ?
`
	err := r.db.WithContext(ctx).Raw(query, employeeID, orgID).Scan(&ec).Error
	if err != nil {
		return nil, err
	}
	if ec.FullName == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &ec, nil
}

func (r *repository) FindPeriodSlug(ctx context.Context, orgID, payPeriodID string) (string, error) {
	var slug string
	query := `
SELECT slug
FROM pay_periods
WHERE id = ?
  AND organization_id = ?
`
	err := r.db.WithContext(ctx).Raw(query, payPeriodID, orgID).Scan(&slug).Error
	if err != nil {
		return "", err
	}
	if slug == "" {
		return "", gorm.ErrRecordNotFound
	}
	return slug, nil
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, orgID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Delete(&Payroll{}).Error
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, orgID, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAllByPeriod(ctx context.Context, orgID, payPeriodID string) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("pay_period_id = ?", payPeriodID).
		Order("id DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) ExistsForEmployeeAndPeriod(ctx context.Context, orgID, employeeID, payPeriodID string, excludeID *string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("organization_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Where("pay_period_id = ?", payPeriodID)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) SumCostShareByEmployee(ctx context.Context, orgID, employeeID string, excludeID *string) (decimal.Decimal, error) {
	query := `
SELECT COALESCE(SUM(university_cost_share_pay), 0)
FROM payrolls
WHERE organization_id = ?
  AND employee_id = ?
`
	args := []any{orgID, employeeID}

	if excludeID != nil {
		query += "  AND id <> ?\n"
		args = append(args, *excludeID)
	}

	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&total).Error
	return total, err
}
