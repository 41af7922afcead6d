package payperiod

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	payperioderrors "go-payroll/internal/payperiod/errors"
)

//go:generate mockgen -source=payperiod_service.go -destination=mock/payperiod_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID string, req CreatePayPeriodRequest) (PayPeriodResponse, error)
	GetAll(ctx context.Context, orgID string) ([]PayPeriodResponse, error)
	GetByID(ctx context.Context, orgID, id string) (PayPeriodResponse, error)
	Delete(ctx context.Context, orgID, id string) error

	GetComponents(ctx context.Context, orgID, id string) (ComponentSetResponse, error)
	SetComponents(ctx context.Context, orgID, id string, req SetComponentSetRequest) (ComponentSetResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payperioderrors.ErrPayPeriodNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return payperioderrors.ErrPayPeriodExists
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return payperioderrors.ErrPayPeriodExists
	}

	return err
}

func (s *service) Create(ctx context.Context, orgID string, req CreatePayPeriodRequest) (PayPeriodResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return PayPeriodResponse{}, payperioderrors.ErrInvalidMonth
	}
	if req.Year < 2000 || req.Year > time.Now().Year()+1 {
		return PayPeriodResponse{}, payperioderrors.ErrInvalidYear
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return PayPeriodResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayPeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := &PayPeriod{
		ID:             uuid.New(),
		OrganizationID: oid,
		Year:           req.Year,
		Month:          req.Month,
		Slug:           PeriodSlug(req.Year, req.Month),
	}

	if err := qtx.Create(ctx, p); err != nil {
		return PayPeriodResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayPeriodResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, orgID string) ([]PayPeriodResponse, error) {
	periods, err := s.repo.FindAllByOrganization(ctx, orgID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(periods), nil
}

func (s *service) GetByID(ctx context.Context, orgID, id string) (PayPeriodResponse, error) {
	p, err := s.repo.FindByIDAndOrganization(ctx, orgID, id)
	if err != nil {
		return PayPeriodResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
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

func (s *service) GetComponents(ctx context.Context, orgID, id string) (ComponentSetResponse, error) {
	p, err := s.repo.FindByIDAndOrganization(ctx, orgID, id)
	if err != nil {
		return ComponentSetResponse{}, mapRepositoryError(err)
	}

	set, err := s.repo.FindComponentSet(ctx, orgID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No row yet means every component is off.
		set = &PeriodComponentSet{OrganizationID: p.OrganizationID, PayPeriodID: p.ID}
		err = nil
	}
	if err != nil {
		return ComponentSetResponse{}, err
	}

	return mapComponentSetToResponse(*set), nil
}

func (s *service) SetComponents(ctx context.Context, orgID, id string, req SetComponentSetRequest) (ComponentSetResponse, error) {
	p, err := s.repo.FindByIDAndOrganization(ctx, orgID, id)
	if err != nil {
		return ComponentSetResponse{}, mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComponentSetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	set, err := qtx.FindComponentSet(ctx, orgID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		set = &PeriodComponentSet{
			ID:             uuid.New(),
			OrganizationID: p.OrganizationID,
			PayPeriodID:    p.ID,
		}
		err = nil
	}
	if err != nil {
		return ComponentSetResponse{}, err
	}

	if unknown := set.ApplyToggles(req.Components); len(unknown) > 0 {
		return ComponentSetResponse{}, payperioderrors.ErrUnknownComponent
	}

	if err := qtx.SaveComponentSet(ctx, set); err != nil {
		return ComponentSetResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ComponentSetResponse{}, err
	}

	return mapComponentSetToResponse(*set), nil
}
