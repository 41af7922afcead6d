package adjustment

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-payroll/internal/payroll"
)

//go:generate mockgen -source=adjustment_repo.go -destination=mock/adjustment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindPayrollRef(ctx context.Context, orgID, payrollID string) (uuid.UUID, TargetFacts, error)
	TargetFactsFor(ctx context.Context, orgID string, payrollIDs []uuid.UUID) (map[uuid.UUID]TargetFacts, error)
	FindEmployeeFacts(ctx context.Context, orgID string, employeeID uuid.UUID) (payroll.EmployeeFacts, error)

	CreateEarning(ctx context.Context, row *EarningAdjustment) error
	SaveEarnings(ctx context.Context, rows []*EarningAdjustment) error
	DeleteEarning(ctx context.Context, orgID, id string) error
	FindEarningByID(ctx context.Context, orgID, id string) (*EarningAdjustment, error)
	FindEarningsByRecordPayroll(ctx context.Context, orgID string, recordPayrollID uuid.UUID) ([]*EarningAdjustment, error)
	FindAllEarnings(ctx context.Context, orgID string) ([]EarningAdjustment, error)

	CreateDeduction(ctx context.Context, row *DeductionAdjustment) error
	SaveDeductions(ctx context.Context, rows []*DeductionAdjustment) error
	DeleteDeduction(ctx context.Context, orgID, id string) error
	FindDeductionByID(ctx context.Context, orgID, id string) (*DeductionAdjustment, error)
	FindDeductionsByRecordPayroll(ctx context.Context, orgID string, recordPayrollID uuid.UUID) ([]*DeductionAdjustment, error)
	FindAllDeductions(ctx context.Context, orgID string) ([]DeductionAdjustment, error)
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

func (r *repository) FindPayrollRef(ctx context.Context, orgID, payrollID string) (uuid.UUID, TargetFacts, error) {
	var p payroll.Payroll
	err := r.db.WithContext(ctx).
		Select("id", "employee_id", "gross_taxable_pay", "employment_income_tax").
		Where("id = ?", payrollID).
		Where("organization_id = ?", orgID).
		First(&p).Error
	if err != nil {
		return uuid.Nil, TargetFacts{}, err
	}

	return p.EmployeeID, TargetFacts{
		GrossTaxablePay:     p.GrossTaxablePay,
		EmploymentIncomeTax: p.EmploymentIncomeTax,
	}, nil
}

func (r *repository) TargetFactsFor(ctx context.Context, orgID string, payrollIDs []uuid.UUID) (map[uuid.UUID]TargetFacts, error) {
	facts := make(map[uuid.UUID]TargetFacts, len(payrollIDs))
	if len(payrollIDs) == 0 {
		return facts, nil
	}

	var payrolls []payroll.Payroll
	err := r.db.WithContext(ctx).
		Select("id", "gross_taxable_pay", "employment_income_tax").
		Where("organization_id = ?", orgID).
		Where("id IN ?", payrollIDs).
		Find(&payrolls).Error
	if err != nil {
		return nil, err
	}

	for _, p := range payrolls {
		facts[p.ID] = TargetFacts{
			GrossTaxablePay:     p.GrossTaxablePay,
			EmploymentIncomeTax: p.EmploymentIncomeTax,
		}
	}
	return facts, nil
}

func (r *repository) FindEmployeeFacts(ctx context.Context, orgID string, employeeID uuid.UUID) (payroll.EmployeeFacts, error) {
	var row struct {
		FullName string
		payroll.EmployeeFacts
	}
	query := `
SELECT
	full_name,
	basic_salary,
	working_area,
	working_environment,
	daily_per_diem
FROM employees
WHERE id = ?
  AND organization_id = ?
`
	err := r.db.WithContext(ctx).Raw(query, employeeID, orgID).Scan(&row).Error
	if err != nil {
		return payroll.EmployeeFacts{}, err
	}
	if row.FullName == "" {
		return payroll.EmployeeFacts{}, gorm.ErrRecordNotFound
	}
	return row.EmployeeFacts, nil
}

func (r *repository) CreateEarning(ctx context.Context, row *EarningAdjustment) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) SaveEarnings(ctx context.Context, rows []*EarningAdjustment) error {
	for _, row := range rows {
		if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) DeleteEarning(ctx context.Context, orgID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Delete(&EarningAdjustment{}).Error
}

func (r *repository) FindEarningByID(ctx context.Context, orgID, id string) (*EarningAdjustment, error) {
	var row EarningAdjustment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindEarningsByRecordPayroll(ctx context.Context, orgID string, recordPayrollID uuid.UUID) ([]*EarningAdjustment, error) {
	var rows []*EarningAdjustment
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("record_payroll_id = ?", recordPayrollID).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllEarnings(ctx context.Context, orgID string) ([]EarningAdjustment, error) {
	var rows []EarningAdjustment
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateDeduction(ctx context.Context, row *DeductionAdjustment) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) SaveDeductions(ctx context.Context, rows []*DeductionAdjustment) error {
	for _, row := range rows {
		if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) DeleteDeduction(ctx context.Context, orgID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Delete(&DeductionAdjustment{}).Error
}

func (r *repository) FindDeductionByID(ctx context.Context, orgID, id string) (*DeductionAdjustment, error) {
	var row DeductionAdjustment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindDeductionsByRecordPayroll(ctx context.Context, orgID string, recordPayrollID uuid.UUID) ([]*DeductionAdjustment, error) {
	var rows []*DeductionAdjustment
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("record_payroll_id = ?", recordPayrollID).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllDeductions(ctx context.Context, orgID string) ([]DeductionAdjustment, error) {
	var rows []DeductionAdjustment
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}
