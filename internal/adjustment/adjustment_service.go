package adjustment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adjustmenterrors "go-payroll/internal/adjustment/errors"
	"go-payroll/internal/allowance"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rateconfig"
	"go-payroll/internal/shared/apperror"
)

//go:generate mockgen -source=adjustment_service.go -destination=mock/adjustment_service_mock.go -package=mock
type Service interface {
	CreateEarning(ctx context.Context, orgID string, req CreateEarningAdjustmentRequest) (EarningAdjustmentResponse, error)
	UpdateEarning(ctx context.Context, orgID, id string, req UpdateEarningAdjustmentRequest) (EarningAdjustmentResponse, error)
	DeleteEarning(ctx context.Context, orgID, id string) error
	GetEarning(ctx context.Context, orgID, id string) (EarningAdjustmentResponse, error)
	GetAllEarnings(ctx context.Context, orgID string) ([]EarningAdjustmentResponse, error)

	CreateDeduction(ctx context.Context, orgID string, req CreateDeductionAdjustmentRequest) (DeductionAdjustmentResponse, error)
	UpdateDeduction(ctx context.Context, orgID, id string, req UpdateDeductionAdjustmentRequest) (DeductionAdjustmentResponse, error)
	DeleteDeduction(ctx context.Context, orgID, id string) error
	GetDeduction(ctx context.Context, orgID, id string) (DeductionAdjustmentResponse, error)
	GetAllDeductions(ctx context.Context, orgID string) ([]DeductionAdjustmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rates  payroll.RateResolver
	lock   *periodLock
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rates payroll.RateResolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("adjustment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("adjustment.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rates:  rates,
		lock:   newPeriodLock(),
		logger: l,
	}
}

func lockKey(orgID string, recordPayrollID uuid.UUID) string {
	return orgID + ":" + recordPayrollID.String()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return adjustmenterrors.ErrAdjustmentNotFound
	}
	return err
}

type adjustmentInput struct {
	amount        decimal.Decimal
	periodStart   time.Time
	periodEnd     time.Time
	monthsCovered int
}

func parseInput(amount, periodStart, periodEnd string) (adjustmentInput, error) {
	var in adjustmentInput

	v, err := decimal.NewFromString(amount)
	if err != nil || v.Sign() < 0 {
		return in, adjustmenterrors.ErrNegativeAmount
	}
	in.amount = v

	in.periodStart, err = time.Parse(dateLayout, periodStart)
	if err != nil {
		return in, apperror.InvalidField("period_start")
	}
	in.periodEnd, err = time.Parse(dateLayout, periodEnd)
	if err != nil {
		return in, apperror.InvalidField("period_end")
	}
	if in.periodEnd.Before(in.periodStart) {
		return in, adjustmenterrors.ErrInvalidPeriodRange
	}

	in.monthsCovered = (in.periodEnd.Year()-in.periodStart.Year())*12 +
		int(in.periodEnd.Month()) - int(in.periodStart.Month()) + 1

	return in, nil
}

func validateEarningComponent(component string, emp payroll.EmployeeFacts, amount decimal.Decimal) error {
	switch allowance.Classify(component) {
	case allowance.ClassFullyTaxable, allowance.ClassNonTaxable, allowance.ClassDeferredEarnings:
		return nil
	case allowance.ClassPartiallyTaxable:
	default:
		return adjustmenterrors.ErrUnknownEarningComponent
	}

	if amount.Sign() <= 0 {
		return nil
	}
	if component == allowance.ComponentPerDiem && emp.DailyPerDiem.Sign() <= 0 {
		return adjustmenterrors.ErrPerDiemWithoutDailyRate
	}
	if component == allowance.ComponentHardshipAllowance {
		switch emp.WorkingEnvironment {
		case rateconfig.EnvironmentAdverse, rateconfig.EnvironmentVeryAdverse, rateconfig.EnvironmentExtremelyAdverse:
		default:
			return adjustmenterrors.ErrHardshipNotEligible
		}
	}
	return nil
}

func validateDeductionComponent(component string) error {
	if allowance.Classify(component) != allowance.ClassDeduction {
		return adjustmenterrors.ErrUnknownDeductionComponent
	}
	// Cost sharing is derived from the contract, never adjusted directly.
	if component == "university_cost_share_pay" {
		return adjustmenterrors.ErrUnknownDeductionComponent
	}
	return nil
}

func (s *service) CreateEarning(
	ctx context.Context,
	orgID string,
	req CreateEarningAdjustmentRequest,
) (EarningAdjustmentResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return EarningAdjustmentResponse{}, err
	}
	recordID, err := uuid.Parse(req.RecordPayrollID)
	if err != nil {
		return EarningAdjustmentResponse{}, apperror.InvalidField("record_payroll_id")
	}
	targetID, err := uuid.Parse(req.TargetPayrollID)
	if err != nil {
		return EarningAdjustmentResponse{}, apperror.InvalidField("target_payroll_id")
	}

	in, err := parseInput(req.Amount, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return EarningAdjustmentResponse{}, err
	}

	rates, err := s.rates.Resolve(ctx, orgID)
	if err != nil {
		return EarningAdjustmentResponse{}, err
	}

	key := lockKey(orgID, recordID)
	s.lock.Lock(key)
	defer s.lock.Unlock(key)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EarningAdjustmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeID, _, err := qtx.FindPayrollRef(ctx, orgID, recordID.String())
	if err != nil {
		return EarningAdjustmentResponse{}, replaceNotFound(err, adjustmenterrors.ErrRecordPayrollNotFound)
	}
	targetEmployeeID, _, err := qtx.FindPayrollRef(ctx, orgID, targetID.String())
	if err != nil {
		return EarningAdjustmentResponse{}, replaceNotFound(err, adjustmenterrors.ErrTargetPayrollNotFound)
	}
	if employeeID != targetEmployeeID {
		return EarningAdjustmentResponse{}, adjustmenterrors.ErrPayrollEmployeeMismatch
	}

	emp, err := qtx.FindEmployeeFacts(ctx, orgID, employeeID)
	if err != nil {
		return EarningAdjustmentResponse{}, mapRepositoryError(err)
	}

	if err := validateEarningComponent(req.Component, emp, in.amount); err != nil {
		return EarningAdjustmentResponse{}, err
	}

	row := &EarningAdjustment{
		ID:              uuid.New(),
		OrganizationID:  orgUUID,
		RecordPayrollID: recordID,
		TargetPayrollID: targetID,
		Case:            req.Case,
		Component:       req.Component,
		Amount:          in.amount,
		PeriodStart:     in.periodStart,
		PeriodEnd:       in.periodEnd,
		MonthsCovered:   in.monthsCovered,
	}

	if err := qtx.CreateEarning(ctx, row); err != nil {
		return EarningAdjustmentResponse{}, err
	}

	saved, err := s.recomputeEarnings(ctx, qtx, orgID, recordID, emp, rates)
	if err != nil {
		return EarningAdjustmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EarningAdjustmentResponse{}, err
	}

	s.logger.Info("earning adjustment created",
		zap.String("adjustment_id", row.ID.String()),
		zap.String("record_payroll_id", recordID.String()),
		zap.String("component", req.Component),
	)

	return mapEarningToResponse(*pick(saved, row.ID)), nil
}

func (s *service) UpdateEarning(
	ctx context.Context,
	orgID, id string,
	req UpdateEarningAdjustmentRequest,
) (EarningAdjustmentResponse, error) {
	existing, err := s.repo.FindEarningByID(ctx, orgID, id)
	if err != nil {
		return EarningAdjustmentResponse{}, mapRepositoryError(err)
	}

	in, err := parseInput(req.Amount, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return EarningAdjustmentResponse{}, err
	}

	rates, err := s.rates.Resolve(ctx, orgID)
	if err != nil {
		return EarningAdjustmentResponse{}, err
	}

	key := lockKey(orgID, existing.RecordPayrollID)
	s.lock.Lock(key)
	defer s.lock.Unlock(key)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EarningAdjustmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindEarningByID(ctx, orgID, id)
	if err != nil {
		return EarningAdjustmentResponse{}, mapRepositoryError(err)
	}

	employeeID, _, err := qtx.FindPayrollRef(ctx, orgID, row.RecordPayrollID.String())
	if err != nil {
		return EarningAdjustmentResponse{}, replaceNotFound(err, adjustmenterrors.ErrRecordPayrollNotFound)
	}
	emp, err := qtx.FindEmployeeFacts(ctx, orgID, employeeID)
	if err != nil {
		return EarningAdjustmentResponse{}, mapRepositoryError(err)
	}

	if err := validateEarningComponent(req.Component, emp, in.amount); err != nil {
		return EarningAdjustmentResponse{}, err
	}

	row.Case = req.Case
	row.Component = req.Component
	row.Amount = in.amount
	row.PeriodStart = in.periodStart
	row.PeriodEnd = in.periodEnd
	row.MonthsCovered = in.monthsCovered

	if err := qtx.SaveEarnings(ctx, []*EarningAdjustment{row}); err != nil {
		return EarningAdjustmentResponse{}, err
	}

	saved, err := s.recomputeEarnings(ctx, qtx, orgID, row.RecordPayrollID, emp, rates)
	if err != nil {
		return EarningAdjustmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EarningAdjustmentResponse{}, err
	}

	return mapEarningToResponse(*pick(saved, row.ID)), nil
}

func (s *service) DeleteEarning(ctx context.Context, orgID, id string) error {
	existing, err := s.repo.FindEarningByID(ctx, orgID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	rates, err := s.rates.Resolve(ctx, orgID)
	if err != nil {
		return err
	}

	key := lockKey(orgID, existing.RecordPayrollID)
	s.lock.Lock(key)
	defer s.lock.Unlock(key)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteEarning(ctx, orgID, id); err != nil {
		return err
	}

	employeeID, _, err := qtx.FindPayrollRef(ctx, orgID, existing.RecordPayrollID.String())
	if err != nil {
		return replaceNotFound(err, adjustmenterrors.ErrRecordPayrollNotFound)
	}
	emp, err := qtx.FindEmployeeFacts(ctx, orgID, employeeID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if _, err := s.recomputeEarnings(ctx, qtx, orgID, existing.RecordPayrollID, emp, rates); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetEarning(ctx context.Context, orgID, id string) (EarningAdjustmentResponse, error) {
	row, err := s.repo.FindEarningByID(ctx, orgID, id)
	if err != nil {
		return EarningAdjustmentResponse{}, mapRepositoryError(err)
	}
	return mapEarningToResponse(*row), nil
}

func (s *service) GetAllEarnings(ctx context.Context, orgID string) ([]EarningAdjustmentResponse, error) {
	rows, err := s.repo.FindAllEarnings(ctx, orgID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapEarningsToListResponse(rows), nil
}

// recomputeEarnings re-derives every earning adjustment row of the
// record payroll and persists the rewritten set.
func (s *service) recomputeEarnings(
	ctx context.Context,
	qtx Repository,
	orgID string,
	recordPayrollID uuid.UUID,
	emp payroll.EmployeeFacts,
	rates rateconfig.Rates,
) ([]*EarningAdjustment, error) {
	rows, err := qtx.FindEarningsByRecordPayroll(ctx, orgID, recordPayrollID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	targets, err := qtx.TargetFactsFor(ctx, orgID, distinctTargets(rows))
	if err != nil {
		return nil, err
	}

	if err := RecomputeEarnings(rows, targets, emp, rates); err != nil {
		return nil, err
	}

	if err := qtx.SaveEarnings(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *service) CreateDeduction(
	ctx context.Context,
	orgID string,
	req CreateDeductionAdjustmentRequest,
) (DeductionAdjustmentResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return DeductionAdjustmentResponse{}, err
	}
	recordID, err := uuid.Parse(req.RecordPayrollID)
	if err != nil {
		return DeductionAdjustmentResponse{}, apperror.InvalidField("record_payroll_id")
	}
	targetID, err := uuid.Parse(req.TargetPayrollID)
	if err != nil {
		return DeductionAdjustmentResponse{}, apperror.InvalidField("target_payroll_id")
	}

	in, err := parseInput(req.Amount, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	if err := validateDeductionComponent(req.Component); err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	key := lockKey(orgID, recordID)
	s.lock.Lock(key)
	defer s.lock.Unlock(key)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeductionAdjustmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeID, _, err := qtx.FindPayrollRef(ctx, orgID, recordID.String())
	if err != nil {
		return DeductionAdjustmentResponse{}, replaceNotFound(err, adjustmenterrors.ErrRecordPayrollNotFound)
	}
	targetEmployeeID, _, err := qtx.FindPayrollRef(ctx, orgID, targetID.String())
	if err != nil {
		return DeductionAdjustmentResponse{}, replaceNotFound(err, adjustmenterrors.ErrTargetPayrollNotFound)
	}
	if employeeID != targetEmployeeID {
		return DeductionAdjustmentResponse{}, adjustmenterrors.ErrPayrollEmployeeMismatch
	}

	row := &DeductionAdjustment{
		ID:              uuid.New(),
		OrganizationID:  orgUUID,
		RecordPayrollID: recordID,
		TargetPayrollID: targetID,
		Case:            req.Case,
		Component:       req.Component,
		Amount:          in.amount,
		PeriodStart:     in.periodStart,
		PeriodEnd:       in.periodEnd,
		MonthsCovered:   in.monthsCovered,
	}

	if err := qtx.CreateDeduction(ctx, row); err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	saved, err := s.recomputeDeductions(ctx, qtx, orgID, recordID)
	if err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	return mapDeductionToResponse(*pickDeduction(saved, row.ID)), nil
}

func (s *service) UpdateDeduction(
	ctx context.Context,
	orgID, id string,
	req UpdateDeductionAdjustmentRequest,
) (DeductionAdjustmentResponse, error) {
	existing, err := s.repo.FindDeductionByID(ctx, orgID, id)
	if err != nil {
		return DeductionAdjustmentResponse{}, mapRepositoryError(err)
	}

	in, err := parseInput(req.Amount, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	if err := validateDeductionComponent(req.Component); err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	key := lockKey(orgID, existing.RecordPayrollID)
	s.lock.Lock(key)
	defer s.lock.Unlock(key)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeductionAdjustmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindDeductionByID(ctx, orgID, id)
	if err != nil {
		return DeductionAdjustmentResponse{}, mapRepositoryError(err)
	}

	row.Case = req.Case
	row.Component = req.Component
	row.Amount = in.amount
	row.PeriodStart = in.periodStart
	row.PeriodEnd = in.periodEnd
	row.MonthsCovered = in.monthsCovered

	if err := qtx.SaveDeductions(ctx, []*DeductionAdjustment{row}); err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	saved, err := s.recomputeDeductions(ctx, qtx, orgID, row.RecordPayrollID)
	if err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeductionAdjustmentResponse{}, err
	}

	return mapDeductionToResponse(*pickDeduction(saved, row.ID)), nil
}

func (s *service) DeleteDeduction(ctx context.Context, orgID, id string) error {
	existing, err := s.repo.FindDeductionByID(ctx, orgID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	key := lockKey(orgID, existing.RecordPayrollID)
	s.lock.Lock(key)
	defer s.lock.Unlock(key)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteDeduction(ctx, orgID, id); err != nil {
		return err
	}

	if _, err := s.recomputeDeductions(ctx, qtx, orgID, existing.RecordPayrollID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetDeduction(ctx context.Context, orgID, id string) (DeductionAdjustmentResponse, error) {
	row, err := s.repo.FindDeductionByID(ctx, orgID, id)
	if err != nil {
		return DeductionAdjustmentResponse{}, mapRepositoryError(err)
	}
	return mapDeductionToResponse(*row), nil
}

func (s *service) GetAllDeductions(ctx context.Context, orgID string) ([]DeductionAdjustmentResponse, error) {
	rows, err := s.repo.FindAllDeductions(ctx, orgID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapDeductionsToListResponse(rows), nil
}

func (s *service) recomputeDeductions(
	ctx context.Context,
	qtx Repository,
	orgID string,
	recordPayrollID uuid.UUID,
) ([]*DeductionAdjustment, error) {
	rows, err := qtx.FindDeductionsByRecordPayroll(ctx, orgID, recordPayrollID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	RecomputeDeductions(rows)

	if err := qtx.SaveDeductions(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func distinctTargets(rows []*EarningAdjustment) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.TargetPayrollID]; ok {
			continue
		}
		seen[row.TargetPayrollID] = struct{}{}
		ids = append(ids, row.TargetPayrollID)
	}
	return ids
}

func replaceNotFound(err, replacement error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return replacement
	}
	return err
}

func pick(rows []*EarningAdjustment, id uuid.UUID) *EarningAdjustment {
	for _, row := range rows {
		if row.ID == id {
			return row
		}
	}
	return &EarningAdjustment{ID: id}
}

func pickDeduction(rows []*DeductionAdjustment, id uuid.UUID) *DeductionAdjustment {
	for _, row := range rows {
		if row.ID == id {
			return row
		}
	}
	return &DeductionAdjustment{ID: id}
}
