package severance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/rateconfig"
	severanceerrors "go-payroll/internal/severance/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
)

// RateResolver yields the effective rate snapshot; severance only
// consumes the tax schedule from it.
type RateResolver interface {
	Resolve(ctx context.Context, orgID string) (rateconfig.Rates, error)
}

//go:generate mockgen -source=severance_service.go -destination=mock/severance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID string, req CreateSeveranceRequest) (SeveranceResponse, error)
	GetByID(ctx context.Context, orgID, id string) (SeveranceResponse, error)
	GetAll(ctx context.Context, orgID string) ([]SeveranceResponse, error)
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
	l := zap.L().Named("severance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("severance.service")
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
	req CreateSeveranceRequest,
) (SeveranceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return SeveranceResponse{}, err
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SeveranceResponse{}, apperror.InvalidField("employee_id")
	}
	periodUUID, err := uuid.Parse(req.PayPeriodID)
	if err != nil {
		return SeveranceResponse{}, apperror.InvalidField("pay_period_id")
	}

	switch req.SeveranceType {
	case TypeNormal, TypeNoNotice, TypeHarassment:
	default:
		return SeveranceResponse{}, severanceerrors.ErrUnknownSeveranceType
	}

	dailyWage, err := decimal.NewFromString(req.LastWeekDailyWage)
	if err != nil || dailyWage.Sign() <= 0 {
		return SeveranceResponse{}, severanceerrors.ErrInvalidDailyWage
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return SeveranceResponse{}, apperror.InvalidField("start_date")
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return SeveranceResponse{}, apperror.InvalidField("end_date")
	}

	rates, err := s.rates.Resolve(ctx, orgID)
	if err != nil {
		return SeveranceResponse{}, err
	}

	sv := &Severance{
		ID:                uuid.New(),
		OrganizationID:    orgUUID,
		EmployeeID:        employeeUUID,
		PayPeriodID:       periodUUID,
		SeveranceType:     req.SeveranceType,
		LastWeekDailyWage: dailyWage,
		StartDate:         startDate,
		EndDate:           endDate,
	}

	if err := Compute(sv, rates.TaxBrackets); err != nil {
		return SeveranceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SeveranceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, orgID, req.EmployeeID)
	if err != nil {
		return SeveranceResponse{}, err
	}
	if !exists {
		return SeveranceResponse{}, severanceerrors.ErrEmployeeNotFound
	}

	periodSlug, err := qtx.FindPeriodSlug(ctx, orgID, req.PayPeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SeveranceResponse{}, severanceerrors.ErrPayPeriodNotFound
		}
		return SeveranceResponse{}, err
	}

	if err := qtx.Create(ctx, sv); err != nil {
		return SeveranceResponse{}, err
	}

	if err := s.queueCommittedEvent(ctx, tx, sv, periodSlug, rid); err != nil {
		return SeveranceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SeveranceResponse{}, err
	}

	s.logger.Info("severance created",
		zap.String("request_id", rid),
		zap.String("severance_id", sv.ID.String()),
		zap.String("net_severance_pay", sv.NetSeverancePay.StringFixed(2)),
	)

	return mapToResponse(*sv), nil
}

func (s *service) GetByID(ctx context.Context, orgID, id string) (SeveranceResponse, error) {
	sv, err := s.repo.FindByIDAndOrganization(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SeveranceResponse{}, severanceerrors.ErrSeveranceNotFound
		}
		return SeveranceResponse{}, err
	}
	return mapToResponse(*sv), nil
}

func (s *service) GetAll(ctx context.Context, orgID string) ([]SeveranceResponse, error) {
	rows, err := s.repo.FindAllByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Delete(ctx context.Context, orgID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndOrganization(ctx, orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return severanceerrors.ErrSeveranceNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, orgID, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) queueCommittedEvent(ctx context.Context, tx *sql.Tx, sv *Severance, periodSlug, rid string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.SeveranceCommittedEvent{
		EventType:      "payroll.severance.committed",
		SeveranceID:    sv.ID.String(),
		OrganizationID: sv.OrganizationID.String(),
		EmployeeID:     sv.EmployeeID.String(),
		PeriodSlug:     periodSlug,
		GrossSeverance: sv.GrossSeverancePay.StringFixed(2),
		NetSeverance:   sv.NetSeverancePay.StringFixed(2),
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "severance",
		AggregateID:   sv.ID.String(),
		EventType:     event.EventType,
		Topic:         events.SeveranceCommittedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("severance outbox persist failed",
			zap.String("severance_id", sv.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
