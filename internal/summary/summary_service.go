package summary

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	summaryerrors "go-payroll/internal/summary/errors"
)

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	Monthly(ctx context.Context, orgID, payPeriodID string) (MonthlySummaryResponse, error)
	Yearly(ctx context.Context, orgID string, year int) (YearlySummaryResponse, error)
	Employee(ctx context.Context, orgID, employeeID string) (EmployeeSummaryResponse, error)
	ExportMonthly(ctx context.Context, orgID, payPeriodID string) ([]byte, string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("summary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Monthly(ctx context.Context, orgID, payPeriodID string) (MonthlySummaryResponse, error) {
	built, err := s.buildMonthly(ctx, orgID, payPeriodID)
	if err != nil {
		return MonthlySummaryResponse{}, err
	}
	return mapMonthly(built), nil
}

func (s *service) buildMonthly(ctx context.Context, orgID, payPeriodID string) (MonthlySummary, error) {
	period, err := s.repo.FindPeriod(ctx, orgID, payPeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MonthlySummary{}, summaryerrors.ErrPayPeriodNotFound
		}
		return MonthlySummary{}, err
	}

	payrolls, err := s.repo.FindPayrollsByPeriod(ctx, orgID, payPeriodID)
	if err != nil {
		return MonthlySummary{}, err
	}
	earnings, err := s.repo.FindEarningsByRecordPeriod(ctx, orgID, payPeriodID)
	if err != nil {
		return MonthlySummary{}, err
	}
	deductions, err := s.repo.FindDeductionsByRecordPeriod(ctx, orgID, payPeriodID)
	if err != nil {
		return MonthlySummary{}, err
	}
	severances, err := s.repo.FindSeverancesByPeriod(ctx, orgID, payPeriodID)
	if err != nil {
		return MonthlySummary{}, err
	}

	return BuildMonthly(period.PeriodSlug(), payrolls, earnings, deductions, severances), nil
}

func (s *service) Yearly(ctx context.Context, orgID string, year int) (YearlySummaryResponse, error) {
	if year < 1000 || year > 9999 {
		return YearlySummaryResponse{}, summaryerrors.ErrInvalidYear
	}

	periods, err := s.repo.FindPeriodsByYear(ctx, orgID, year)
	if err != nil {
		return YearlySummaryResponse{}, err
	}

	sort.Slice(periods, func(i, j int) bool { return periods[i].Month < periods[j].Month })

	months := make([]MonthlySummary, 0, len(periods))
	for _, period := range periods {
		built, err := s.buildMonthly(ctx, orgID, period.ID.String())
		if err != nil {
			return YearlySummaryResponse{}, err
		}
		months = append(months, built)
	}

	return mapYearly(MergeYearly(year, months)), nil
}

func (s *service) Employee(ctx context.Context, orgID, employeeID string) (EmployeeSummaryResponse, error) {
	exists, err := s.repo.EmployeeExists(ctx, orgID, employeeID)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	if !exists {
		return EmployeeSummaryResponse{}, summaryerrors.ErrEmployeeNotFound
	}

	payrolls, err := s.repo.FindPayrollsByEmployee(ctx, orgID, employeeID)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	earnings, err := s.repo.FindEarningsByEmployee(ctx, orgID, employeeID)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	deductions, err := s.repo.FindDeductionsByEmployee(ctx, orgID, employeeID)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}
	severances, err := s.repo.FindSeverancesByEmployee(ctx, orgID, employeeID)
	if err != nil {
		return EmployeeSummaryResponse{}, err
	}

	return mapEmployee(BuildEmployee(employeeID, payrolls, earnings, deductions, severances)), nil
}

func (s *service) ExportMonthly(ctx context.Context, orgID, payPeriodID string) ([]byte, string, error) {
	built, err := s.buildMonthly(ctx, orgID, payPeriodID)
	if err != nil {
		return nil, "", err
	}

	data, err := exportMonthlyWorkbook(built)
	if err != nil {
		return nil, "", err
	}

	filename := "payroll_summary_" + built.PeriodSlug + ".xlsx"

	s.logger.Info("monthly summary exported",
		zap.String("pay_period_id", payPeriodID),
		zap.Int("bytes", len(data)),
	)

	return data, filename, nil
}
