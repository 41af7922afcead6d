package summary

import (
	"context"

	"gorm.io/gorm"

	"go-payroll/internal/adjustment"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	"go-payroll/internal/severance"
)

// Repository reads committed rows across the payroll, adjustment and
// severance tables. Summaries never write, so there is no WithTx.
//
//go:generate mockgen -source=summary_repo.go -destination=mock/summary_repo_mock.go -package=mock
type Repository interface {
	FindPeriod(ctx context.Context, orgID, payPeriodID string) (*payperiod.PayPeriod, error)
	FindPeriodsByYear(ctx context.Context, orgID string, year int) ([]payperiod.PayPeriod, error)
	EmployeeExists(ctx context.Context, orgID, employeeID string) (bool, error)

	FindPayrollsByPeriod(ctx context.Context, orgID, payPeriodID string) ([]payroll.Payroll, error)
	FindEarningsByRecordPeriod(ctx context.Context, orgID, payPeriodID string) ([]adjustment.EarningAdjustment, error)
	FindDeductionsByRecordPeriod(ctx context.Context, orgID, payPeriodID string) ([]adjustment.DeductionAdjustment, error)
	FindSeverancesByPeriod(ctx context.Context, orgID, payPeriodID string) ([]severance.Severance, error)

	FindPayrollsByEmployee(ctx context.Context, orgID, employeeID string) ([]payroll.Payroll, error)
	FindEarningsByEmployee(ctx context.Context, orgID, employeeID string) ([]adjustment.EarningAdjustment, error)
	FindDeductionsByEmployee(ctx context.Context, orgID, employeeID string) ([]adjustment.DeductionAdjustment, error)
	FindSeverancesByEmployee(ctx context.Context, orgID, employeeID string) ([]severance.Severance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindPeriod(ctx context.Context, orgID, payPeriodID string) (*payperiod.PayPeriod, error) {
	var period payperiod.PayPeriod
	err := r.db.WithContext(ctx).
		Where("id = ?", payPeriodID).
		Where("organization_id = ?", orgID).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *repository) FindPeriodsByYear(ctx context.Context, orgID string, year int) ([]payperiod.PayPeriod, error) {
	var periods []payperiod.PayPeriod
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("year = ?", year).
		Order("month ASC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) EmployeeExists(ctx context.Context, orgID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("organization_id = ?", orgID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) FindPayrollsByPeriod(ctx context.Context, orgID, payPeriodID string) ([]payroll.Payroll, error) {
	var rows []payroll.Payroll
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("pay_period_id = ?", payPeriodID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindEarningsByRecordPeriod(ctx context.Context, orgID, payPeriodID string) ([]adjustment.EarningAdjustment, error) {
	var rows []adjustment.EarningAdjustment
	err := r.db.WithContext(ctx).
		Joins("JOIN payrolls ON payrolls.id = earning_adjustments.record_payroll_id").
		Where("earning_adjustments.organization_id = ?", orgID).
		Where("payrolls.pay_period_id = ?", payPeriodID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindDeductionsByRecordPeriod(ctx context.Context, orgID, payPeriodID string) ([]adjustment.DeductionAdjustment, error) {
	var rows []adjustment.DeductionAdjustment
	err := r.db.WithContext(ctx).
		Joins("JOIN payrolls ON payrolls.id = deduction_adjustments.record_payroll_id").
		Where("deduction_adjustments.organization_id = ?", orgID).
		Where("payrolls.pay_period_id = ?", payPeriodID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindSeverancesByPeriod(ctx context.Context, orgID, payPeriodID string) ([]severance.Severance, error) {
	var rows []severance.Severance
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("pay_period_id = ?", payPeriodID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPayrollsByEmployee(ctx context.Context, orgID, employeeID string) ([]payroll.Payroll, error) {
	var rows []payroll.Payroll
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindEarningsByEmployee(ctx context.Context, orgID, employeeID string) ([]adjustment.EarningAdjustment, error) {
	var rows []adjustment.EarningAdjustment
	err := r.db.WithContext(ctx).
		Joins("JOIN payrolls ON payrolls.id = earning_adjustments.record_payroll_id").
		Where("earning_adjustments.organization_id = ?", orgID).
		Where("payrolls.employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindDeductionsByEmployee(ctx context.Context, orgID, employeeID string) ([]adjustment.DeductionAdjustment, error) {
	var rows []adjustment.DeductionAdjustment
	err := r.db.WithContext(ctx).
		Joins("JOIN payrolls ON payrolls.id = deduction_adjustments.record_payroll_id").
		Where("deduction_adjustments.organization_id = ?", orgID).
		Where("payrolls.employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindSeverancesByEmployee(ctx context.Context, orgID, employeeID string) ([]severance.Severance, error) {
	var rows []severance.Severance
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}
