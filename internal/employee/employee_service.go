package employee

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, orgID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, orgID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, orgID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, orgID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, orgID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func parseAmount(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperror.InvalidField(field)
	}
	if v.Sign() < 0 {
		return decimal.Decimal{}, employeeerrors.ErrNegativeSalary
	}
	return v, nil
}

func (s *service) Create(ctx context.Context, orgID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	oid, err := uuid.Parse(orgID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	basicSalary, err := parseAmount(req.BasicSalary, "basic_salary")
	if err != nil {
		return EmployeeResponse{}, err
	}
	dailyPerDiem, err := parseAmount(req.DailyPerDiem, "daily_per_diem")
	if err != nil {
		return EmployeeResponse{}, err
	}
	costSharingDebt, err := parseAmount(req.UniversityCostSharingDebt, "university_cost_sharing_debt")
	if err != nil {
		return EmployeeResponse{}, err
	}

	employmentDate, err := time.Parse("2006-01-02", req.EmploymentDate)
	if err != nil {
		return EmployeeResponse{}, apperror.InvalidField("employment_date")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e := &Employee{
		ID:                        uuid.New(),
		OrganizationID:            oid,
		PersonnelID:               req.PersonnelID,
		FirstName:                 req.FirstName,
		FatherName:                req.FatherName,
		LastName:                  req.LastName,
		FullName:                  buildFullName(req.FirstName, req.FatherName, req.LastName),
		Gender:                    req.Gender,
		EmploymentType:            req.EmploymentType,
		EmailAddress:              req.EmailAddress,
		PhoneNumber:               req.PhoneNumber,
		City:                      req.City,
		Section:                   req.Section,
		PositionName:              req.PositionName,
		WorkingArea:               req.WorkingArea,
		WorkingEnvironment:        req.WorkingEnvironment,
		PensionNumber:             req.PensionNumber,
		PersonnelTIN:              req.PersonnelTIN,
		BasicSalary:               basicSalary,
		DailyPerDiem:              dailyPerDiem,
		UniversityCostSharingDebt: costSharingDebt,
		BankName:                  req.BankName,
		BankAccountID:             req.BankAccountID,
		BankAccountType:           req.BankAccountType,
		EmploymentDate:            employmentDate,
	}

	if err := qtx.Create(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, orgID string) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllByOrganization(ctx, orgID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, orgID, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByIDAndOrganization(ctx, orgID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, orgID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDAndOrganization(ctx, orgID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.PositionName != "" {
		e.PositionName = req.PositionName
	}
	if req.Section != "" {
		e.Section = req.Section
	}
	if req.WorkingArea != "" {
		e.WorkingArea = req.WorkingArea
	}
	if req.WorkingEnvironment != "" {
		e.WorkingEnvironment = req.WorkingEnvironment
	}
	if req.BasicSalary != "" {
		v, err := parseAmount(req.BasicSalary, "basic_salary")
		if err != nil {
			return EmployeeResponse{}, err
		}
		e.BasicSalary = v
	}
	if req.DailyPerDiem != "" {
		v, err := parseAmount(req.DailyPerDiem, "daily_per_diem")
		if err != nil {
			return EmployeeResponse{}, err
		}
		e.DailyPerDiem = v
	}
	if req.UniversityCostSharingDebt != "" {
		v, err := parseAmount(req.UniversityCostSharingDebt, "university_cost_sharing_debt")
		if err != nil {
			return EmployeeResponse{}, err
		}
		e.UniversityCostSharingDebt = v
	}
	if req.BankName != "" {
		e.BankName = req.BankName
	}
	if req.BankAccountID != "" {
		e.BankAccountID = req.BankAccountID
	}
	if req.BankAccountType != "" {
		e.BankAccountType = req.BankAccountType
	}

	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*e), nil
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
