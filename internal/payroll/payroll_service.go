package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/rateconfig"
	"go-payroll/internal/shared/contextutil"
)

// RateResolver yields the effective rate snapshot for an organization.
type RateResolver interface {
	Resolve(ctx context.Context, orgID string) (rateconfig.Rates, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAllByPeriod(ctx context.Context, orgID, payPeriodID string) ([]PayrollResponse, error)
	GetByID(ctx context.Context, orgID, id string) (PayrollResponse, error)
	Update(ctx context.Context, orgID, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, orgID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rates  RateResolver
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rates RateResolver) Service {
	return NewServiceWithOutbox(db, repo, rates, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	rates RateResolver,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rates:  rates,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	orgID string,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payroll requested",
		zap.String("request_id", rid),
		zap.String("organization_id", orgID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("pay_period_id", req.PayPeriodID),
	)

	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return PayrollResponse{}, err
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}
	periodUUID, err := uuid.Parse(req.PayPeriodID)
	if err != nil {
		return PayrollResponse{}, err
	}

	p := &Payroll{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		EmployeeID:     employeeUUID,
		PayPeriodID:    periodUUID,
	}
	if err := applyComponents(p, req.PayComponentsRequest); err != nil {
		return PayrollResponse{}, err
	}

	rates, err := s.rates.Resolve(ctx, orgID)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ec, err := qtx.FindEmployeeContext(ctx, orgID, req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, mapEmployeeLookupError(err)
	}

	periodSlug, err := qtx.FindPeriodSlug(ctx, orgID, req.PayPeriodID)
	if err != nil {
		return PayrollResponse{}, mapPeriodLookupError(err)
	}

	exists, err := qtx.ExistsForEmployeeAndPeriod(ctx, orgID, req.EmployeeID, req.PayPeriodID, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	if exists {
		return PayrollResponse{}, payrollerrors.ErrPayrollAlreadyExists
	}

	if err := validatePreconditions(p, ec); err != nil {
		return PayrollResponse{}, err
	}

	if err := Calculate(p, employeeFacts(ec), rates); err != nil {
		return PayrollResponse{}, err
	}

	if err := s.checkCostShareDebt(ctx, qtx, p, ec, nil); err != nil {
		return PayrollResponse{}, err
	}

	if err := qtx.Create(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := s.queueCommittedEvent(ctx, tx, p, periodSlug, rid); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll created",
		zap.String("request_id", rid),
		zap.String("payroll_id", p.ID.String()),
		zap.String("net_pay", p.NetPay.StringFixed(2)),
	)

	resp := mapToResponse(*p)
	resp.EmployeeName = ec.FullName
	return resp, nil
}

func (s *service) GetAllByPeriod(ctx context.Context, orgID, payPeriodID string) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindAllByPeriod(ctx, orgID, payPeriodID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, orgID, id string) (PayrollResponse, error) {
	p, err := s.repo.FindByIDAndOrganization(ctx, orgID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(
	ctx context.Context,
	orgID, id string,
	req UpdatePayrollRequest,
) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	rates, err := s.rates.Resolve(ctx, orgID)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDAndOrganization(ctx, orgID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := applyComponents(p, req.PayComponentsRequest); err != nil {
		return PayrollResponse{}, err
	}

	ec, err := qtx.FindEmployeeContext(ctx, orgID, p.EmployeeID.String())
	if err != nil {
		return PayrollResponse{}, mapEmployeeLookupError(err)
	}

	if err := validatePreconditions(p, ec); err != nil {
		return PayrollResponse{}, err
	}

	if err := Calculate(p, employeeFacts(ec), rates); err != nil {
		return PayrollResponse{}, err
	}

	if err := s.checkCostShareDebt(ctx, qtx, p, ec, &id); err != nil {
		return PayrollResponse{}, err
	}

	if err := qtx.Update(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	periodSlug, err := qtx.FindPeriodSlug(ctx, orgID, p.PayPeriodID.String())
	if err != nil {
		return PayrollResponse{}, mapPeriodLookupError(err)
	}

	if err := s.queueCommittedEvent(ctx, tx, p, periodSlug, rid); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	resp := mapToResponse(*p)
	resp.EmployeeName = ec.FullName
	return resp, nil
}

func (s *service) Delete(ctx context.Context, orgID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndOrganization(ctx, orgID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, orgID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func employeeFacts(ec *EmployeeContext) EmployeeFacts {
	return EmployeeFacts{
		BasicSalary:        ec.BasicSalary,
		WorkingArea:        ec.WorkingArea,
		WorkingEnvironment: ec.WorkingEnvironment,
		DailyPerDiem:       ec.DailyPerDiem,
	}
}

func validatePreconditions(p *Payroll, ec *EmployeeContext) error {
	if ec.BasicSalary.Sign() <= 0 {
		return payrollerrors.ErrMissingContractSalary
	}
	if p.PerDiem.Sign() > 0 && ec.DailyPerDiem.Sign() <= 0 {
		return payrollerrors.ErrPerDiemWithoutDailyRate
	}
	if p.HardshipAllowance.Sign() > 0 && !hardshipEligible(ec.WorkingEnvironment) {
		return payrollerrors.ErrHardshipNotEligible
	}
	return nil
}

func hardshipEligible(environment string) bool {
	switch environment {
	case rateconfig.EnvironmentAdverse,
		rateconfig.EnvironmentVeryAdverse,
		rateconfig.EnvironmentExtremelyAdverse:
		return true
	default:
		return false
	}
}

// checkCostShareDebt rejects the row when the cumulative cost share
// across all of the employee's payrolls would exceed the outstanding
// debt. Must run after Calculate has set UniversityCostSharePay.
func (s *service) checkCostShareDebt(
	ctx context.Context,
	qtx Repository,
	p *Payroll,
	ec *EmployeeContext,
	excludeID *string,
) error {
	if p.UniversityCostSharePay.Sign() <= 0 {
		return nil
	}

	paid, err := qtx.SumCostShareByEmployee(ctx, p.OrganizationID.String(), p.EmployeeID.String(), excludeID)
	if err != nil {
		return err
	}

	if paid.Add(p.UniversityCostSharePay).GreaterThan(ec.UniversityCostSharingDebt) {
		return payrollerrors.ErrCostShareExceedsDebt
	}
	return nil
}

func (s *service) queueCommittedEvent(ctx context.Context, tx *sql.Tx, p *Payroll, periodSlug, rid string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollCommittedEvent{
		EventType:      "payroll.regular.committed",
		PayrollID:      p.ID.String(),
		OrganizationID: p.OrganizationID.String(),
		EmployeeID:     p.EmployeeID.String(),
		PeriodSlug:     periodSlug,
		GrossPay:       p.GrossPay.StringFixed(2),
		NetPay:         p.NetPay.StringFixed(2),
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal payroll event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll",
		AggregateID:   p.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollCommittedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("payroll outbox persist failed",
			zap.String("payroll_id", p.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// applyComponents copies validated request inputs onto the row.
func applyComponents(p *Payroll, req PayComponentsRequest) error {
	if req.EveningOvertimeHours < 0 ||
		req.NightOvertimeHours < 0 ||
		req.RestDayOvertimeHours < 0 ||
		req.PublicHolidayOvertimeHours < 0 {
		return payrollerrors.ErrNegativeHours
	}
	p.EveningHours = req.EveningOvertimeHours
	p.NightHours = req.NightOvertimeHours
	p.RestDayHours = req.RestDayOvertimeHours
	p.PublicHolidayHours = req.PublicHolidayOvertimeHours

	fields := []struct {
		raw  string
		dest *decimal.Decimal
	}{
		{req.BasicSalary, &p.BasicSalary},
		{req.HousingAllowance, &p.HousingAllowance},
		{req.PositionAllowance, &p.PositionAllowance},
		{req.Commission, &p.Commission},
		{req.TelephoneAllowance, &p.TelephoneAllowance},
		{req.OneTimeBonus, &p.OneTimeBonus},
		{req.CausalLaborWage, &p.CausalLaborWage},
		{req.TransportHomeToOffice, &p.TransportHomeToOffice},
		{req.FuelHomeToOffice, &p.FuelHomeToOffice},
		{req.TransportForWork, &p.TransportForWork},
		{req.FuelForWork, &p.FuelForWork},
		{req.PerDiem, &p.PerDiem},
		{req.HardshipAllowance, &p.HardshipAllowance},
		{req.PublicCashAward, &p.PublicCashAward},
		{req.IncidentalOperationAllowance, &p.IncidentalOperationAllowance},
		{req.MedicalAllowance, &p.MedicalAllowance},
		{req.CashGift, &p.CashGift},
		{req.TuitionFees, &p.TuitionFees},
		{req.PersonalInjury, &p.PersonalInjury},
		{req.ChildSupportPayment, &p.ChildSupportPayment},
		{req.CostSharePercent, &p.CostSharePercent},
		{req.CharitableDonation, &p.CharitableDonation},
		{req.SavingPlan, &p.SavingPlan},
		{req.LoanPayment, &p.LoanPayment},
		{req.CourtOrder, &p.CourtOrder},
		{req.WorkersAssociation, &p.WorkersAssociation},
		{req.PersonnelInsuranceSaving, &p.PersonnelInsuranceSaving},
		{req.RedCross, &p.RedCross},
		{req.PartyContribution, &p.PartyContribution},
		{req.OtherDeduction, &p.OtherDeduction},
	}

	for _, f := range fields {
		if f.raw == "" {
			*f.dest = decimal.Zero
			continue
		}
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return payrollerrors.ErrNegativeAmount
		}
		if v.Sign() < 0 {
			return payrollerrors.ErrNegativeAmount
		}
		*f.dest = v
	}

	return nil
}

func mapEmployeeLookupError(err error) error {
	mapped := mapRepositoryError(err)
	if mapped == payrollerrors.ErrPayrollNotFound {
		return payrollerrors.ErrEmployeeNotFound
	}
	return mapped
}

func mapPeriodLookupError(err error) error {
	mapped := mapRepositoryError(err)
	if mapped == payrollerrors.ErrPayrollNotFound {
		return payrollerrors.ErrPayPeriodNotFound
	}
	return mapped
}
