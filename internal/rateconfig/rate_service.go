package rateconfig

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-payroll/internal/allowance"
	"go-payroll/internal/pension"
	rateconfigerrors "go-payroll/internal/rateconfig/errors"
	"go-payroll/internal/tax"
)

//go:generate mockgen -source=rate_service.go -destination=mock/rate_service_mock.go -package=mock
type Service interface {
	// Resolve returns the effective rate snapshot for an organization,
	// overlaying its configured rows on the statutory defaults.
	Resolve(ctx context.Context, orgID string) (Rates, error)
	GetEffective(ctx context.Context, orgID string) (EffectiveRatesResponse, error)

	SetOvertimeRate(ctx context.Context, orgID string, req SetOvertimeRateRequest) error
	SetFlatCap(ctx context.Context, orgID string, req SetFlatCapRequest) error
	SetSalaryRatio(ctx context.Context, orgID string, req SetSalaryRatioRequest) error
	SetHardshipRate(ctx context.Context, orgID string, req SetHardshipRateRequest) error
	SetPerDiemRate(ctx context.Context, orgID string, req SetPerDiemRateRequest) error
	SetPensionRate(ctx context.Context, orgID string, req SetPensionRateRequest) error
	ReplaceTaxSchedule(ctx context.Context, orgID string, req ReplaceTaxScheduleRequest) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Resolve(ctx context.Context, orgID string) (Rates, error) {
	rates := Default()

	overtime, err := s.repo.LatestOvertimeRates(ctx, orgID)
	if err != nil {
		return Rates{}, err
	}
	for _, row := range overtime {
		rates.OvertimeMultipliers[row.RateType] = row.Multiplier
	}

	flatCaps, err := s.repo.LatestFlatCaps(ctx, orgID)
	if err != nil {
		return Rates{}, err
	}
	for _, row := range flatCaps {
		rates.FlatCaps[row.Component] = row.CapAmount
	}

	salaryRatios, err := s.repo.LatestSalaryRatios(ctx, orgID)
	if err != nil {
		return Rates{}, err
	}
	for _, row := range salaryRatios {
		rates.SalaryRatios[row.Component] = SalaryRatioLimits{
			Divisor: row.SalaryDivisor,
			Cap:     row.CapAmount,
		}
	}

	hardship, err := s.repo.LatestHardshipRates(ctx, orgID)
	if err != nil {
		return Rates{}, err
	}
	for _, row := range hardship {
		rates.HardshipPercents[row.Environment] = row.LimitPercent
	}

	perDiem, err := s.repo.LatestPerDiemRates(ctx, orgID)
	if err != nil {
		return Rates{}, err
	}
	for _, row := range perDiem {
		rates.PerDiem[row.WorkingArea] = allowance.PerDiemRule{
			PercentLimit:    row.PercentLimit,
			CapAmount:       row.CapAmount,
			FullyNonTaxable: row.FullyNonTaxable,
		}
	}

	pensionRow, err := s.repo.LatestPensionRate(ctx, orgID)
	if err != nil {
		return Rates{}, err
	}
	if pensionRow != nil {
		rates.Pension = pension.Rates{
			Employee: pensionRow.EmployeeRate,
			Employer: pensionRow.EmployerRate,
		}
	}

	schedule, err := s.repo.LatestTaxSchedule(ctx, orgID)
	if err != nil {
		return Rates{}, err
	}
	if len(schedule) > 0 {
		brackets := make([]tax.Bracket, 0, len(schedule))
		for _, row := range schedule {
			brackets = append(brackets, tax.Bracket{
				Min:       row.MinAmount,
				Max:       row.MaxAmount,
				Rate:      row.Rate,
				Deduction: row.Deduction,
			})
		}
		rates.TaxBrackets = brackets
	}

	return rates, nil
}

func (s *service) GetEffective(ctx context.Context, orgID string) (EffectiveRatesResponse, error) {
	rates, err := s.Resolve(ctx, orgID)
	if err != nil {
		return EffectiveRatesResponse{}, err
	}
	return mapRatesToResponse(rates), nil
}

func (s *service) SetOvertimeRate(ctx context.Context, orgID string, req SetOvertimeRateRequest) error {
	multiplier, err := decimal.NewFromString(req.Multiplier)
	if err != nil || multiplier.Sign() <= 0 {
		return rateconfigerrors.ErrInvalidMultiplier
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return err
	}

	return s.repo.CreateOvertimeRate(ctx, &OvertimeRate{
		OrganizationID: oid,
		RateType:       req.RateType,
		Multiplier:     multiplier,
	})
}

func (s *service) SetFlatCap(ctx context.Context, orgID string, req SetFlatCapRequest) error {
	capAmount, err := decimal.NewFromString(req.CapAmount)
	if err != nil || capAmount.Sign() < 0 {
		return rateconfigerrors.ErrInvalidAmount
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return err
	}

	return s.repo.CreateFlatCap(ctx, &FlatCapRule{
		OrganizationID: oid,
		Component:      req.Component,
		CapAmount:      capAmount,
	})
}

func (s *service) SetSalaryRatio(ctx context.Context, orgID string, req SetSalaryRatioRequest) error {
	divisor, err := decimal.NewFromString(req.SalaryDivisor)
	if err != nil || divisor.Sign() <= 0 {
		return rateconfigerrors.ErrInvalidDivisor
	}

	capAmount, err := decimal.NewFromString(req.CapAmount)
	if err != nil || capAmount.Sign() < 0 {
		return rateconfigerrors.ErrInvalidAmount
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return err
	}

	return s.repo.CreateSalaryRatio(ctx, &SalaryRatioRule{
		OrganizationID: oid,
		Component:      req.Component,
		SalaryDivisor:  divisor,
		CapAmount:      capAmount,
	})
}

func (s *service) SetHardshipRate(ctx context.Context, orgID string, req SetHardshipRateRequest) error {
	percent, err := parsePercent(req.LimitPercent)
	if err != nil {
		return err
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return err
	}

	return s.repo.CreateHardshipRate(ctx, &HardshipRate{
		OrganizationID: oid,
		Environment:    req.Environment,
		LimitPercent:   percent,
	})
}

func (s *service) SetPerDiemRate(ctx context.Context, orgID string, req SetPerDiemRateRequest) error {
	rate := &PerDiemRate{
		WorkingArea:     req.WorkingArea,
		FullyNonTaxable: req.FullyNonTaxable,
		PercentLimit:    decimal.Zero,
		CapAmount:       decimal.Zero,
	}

	if !req.FullyNonTaxable {
		percent, err := parsePercent(req.PercentLimit)
		if err != nil {
			return err
		}
		capAmount, err := decimal.NewFromString(req.CapAmount)
		if err != nil || capAmount.Sign() < 0 {
			return rateconfigerrors.ErrInvalidAmount
		}
		rate.PercentLimit = percent
		rate.CapAmount = capAmount
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return err
	}
	rate.OrganizationID = oid

	return s.repo.CreatePerDiemRate(ctx, rate)
}

func (s *service) SetPensionRate(ctx context.Context, orgID string, req SetPensionRateRequest) error {
	employee, err := parsePercent(req.EmployeeRate)
	if err != nil {
		return err
	}
	employer, err := parsePercent(req.EmployerRate)
	if err != nil {
		return err
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return err
	}

	return s.repo.CreatePensionRate(ctx, &PensionRate{
		OrganizationID: oid,
		EmployeeRate:   employee,
		EmployerRate:   employer,
	})
}

func (s *service) ReplaceTaxSchedule(ctx context.Context, orgID string, req ReplaceTaxScheduleRequest) error {
	if len(req.Brackets) == 0 {
		return rateconfigerrors.ErrEmptyTaxSchedule
	}

	oid, err := uuid.Parse(orgID)
	if err != nil {
		return err
	}

	brackets := make([]TaxBracket, 0, len(req.Brackets))
	for i, b := range req.Brackets {
		minAmount, err := decimal.NewFromString(b.MinAmount)
		if err != nil || minAmount.Sign() < 0 {
			return rateconfigerrors.ErrInvalidAmount
		}

		rate, err := decimal.NewFromString(b.Rate)
		if err != nil || rate.Sign() < 0 {
			return rateconfigerrors.ErrInvalidAmount
		}

		deduction := decimal.Zero
		if b.Deduction != "" {
			deduction, err = decimal.NewFromString(b.Deduction)
			if err != nil || deduction.Sign() < 0 {
				return rateconfigerrors.ErrInvalidAmount
			}
		}

		var maxAmount *decimal.Decimal
		if b.MaxAmount != nil {
			v, err := decimal.NewFromString(*b.MaxAmount)
			if err != nil || v.Sign() < 0 {
				return rateconfigerrors.ErrInvalidAmount
			}
			maxAmount = &v
		} else if i != len(req.Brackets)-1 {
			return rateconfigerrors.ErrOpenBracketNotLast
		}

		brackets = append(brackets, TaxBracket{
			OrganizationID: oid,
			MinAmount:      minAmount,
			MaxAmount:      maxAmount,
			Rate:           rate,
			Deduction:      deduction,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateTaxSchedule(ctx, orgID, brackets); err != nil {
		return err
	}

	return tx.Commit()
}

var one = decimal.NewFromInt(1)

func parsePercent(raw string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(raw)
	if err != nil || p.Sign() < 0 || p.GreaterThan(one) {
		return decimal.Decimal{}, rateconfigerrors.ErrInvalidPercent
	}
	return p, nil
}

func mapRatesToResponse(rates Rates) EffectiveRatesResponse {
	resp := EffectiveRatesResponse{
		OvertimeMultipliers: make(map[string]string, len(rates.OvertimeMultipliers)),
		FlatCaps:            make(map[string]string, len(rates.FlatCaps)),
		SalaryRatios:        make(map[string]SalaryRatioResponse, len(rates.SalaryRatios)),
		HardshipPercents:    make(map[string]string, len(rates.HardshipPercents)),
		PerDiem:             make(map[string]PerDiemRuleResponse, len(rates.PerDiem)),
		EmployeePensionRate: rates.Pension.Employee.String(),
		EmployerPensionRate: rates.Pension.Employer.String(),
	}

	for k, v := range rates.OvertimeMultipliers {
		resp.OvertimeMultipliers[k] = v.String()
	}
	for k, v := range rates.FlatCaps {
		resp.FlatCaps[k] = v.String()
	}
	for k, v := range rates.SalaryRatios {
		resp.SalaryRatios[k] = SalaryRatioResponse{
			SalaryDivisor: v.Divisor.String(),
			CapAmount:     v.Cap.String(),
		}
	}
	for k, v := range rates.HardshipPercents {
		resp.HardshipPercents[k] = v.String()
	}
	for k, v := range rates.PerDiem {
		resp.PerDiem[k] = PerDiemRuleResponse{
			PercentLimit:    v.PercentLimit.String(),
			CapAmount:       v.CapAmount.String(),
			FullyNonTaxable: v.FullyNonTaxable,
		}
	}

	for _, b := range rates.TaxBrackets {
		row := TaxBracketResponse{
			MinAmount: b.Min.String(),
			Rate:      b.Rate.String(),
			Deduction: b.Deduction.String(),
		}
		if b.Max != nil {
			s := b.Max.String()
			row.MaxAmount = &s
		}
		resp.TaxBrackets = append(resp.TaxBrackets, row)
	}

	return resp
}
