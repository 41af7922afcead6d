package organization

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error)
	GetByID(ctx context.Context, id string) (OrganizationResponse, error)
	GetAll(ctx context.Context) ([]OrganizationResponse, error)
	Update(ctx context.Context, id string, req UpdateOrganizationRequest) (OrganizationResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error) {
	org := &Organization{
		ID:               uuid.New(),
		Name:             req.Name,
		Address:          req.Address,
		EmployerTIN:      req.EmployerTIN,
		OrganizationType: req.OrganizationType,
		ContactPersonnel: req.ContactPersonnel,
		IsActive:         true,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*org), nil
}

func (s *service) GetByID(ctx context.Context, id string) (OrganizationResponse, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*org), nil
}

func (s *service) GetAll(ctx context.Context) ([]OrganizationResponse, error) {
	orgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		resp = append(resp, mapToResponse(org))
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateOrganizationRequest) (OrganizationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrganizationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	org, err := qtx.FindByID(ctx, id)
	if err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	if req.Name != "" {
		org.Name = req.Name
	}
	if req.Address != "" {
		org.Address = req.Address
	}
	if req.EmployerTIN != "" {
		org.EmployerTIN = req.EmployerTIN
	}
	if req.OrganizationType != "" {
		org.OrganizationType = req.OrganizationType
	}
	if req.ContactPersonnel != "" {
		org.ContactPersonnel = req.ContactPersonnel
	}

	if err := qtx.Update(ctx, org); err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return OrganizationResponse{}, err
	}

	return mapToResponse(*org), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return mapRepositoryError(s.repo.Deactivate(ctx, id))
}
