package rateconfig

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rate_repo.go -destination=mock/rate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	LatestOvertimeRates(ctx context.Context, orgID string) ([]OvertimeRate, error)
	LatestFlatCaps(ctx context.Context, orgID string) ([]FlatCapRule, error)
	LatestSalaryRatios(ctx context.Context, orgID string) ([]SalaryRatioRule, error)
	LatestHardshipRates(ctx context.Context, orgID string) ([]HardshipRate, error)
	LatestPerDiemRates(ctx context.Context, orgID string) ([]PerDiemRate, error)
	LatestPensionRate(ctx context.Context, orgID string) (*PensionRate, error)
	LatestTaxSchedule(ctx context.Context, orgID string) ([]TaxBracket, error)

	CreateOvertimeRate(ctx context.Context, rate *OvertimeRate) error
	CreateFlatCap(ctx context.Context, rule *FlatCapRule) error
	CreateSalaryRatio(ctx context.Context, rule *SalaryRatioRule) error
	CreateHardshipRate(ctx context.Context, rate *HardshipRate) error
	CreatePerDiemRate(ctx context.Context, rate *PerDiemRate) error
	CreatePensionRate(ctx context.Context, rate *PensionRate) error
	CreateTaxSchedule(ctx context.Context, orgID string, brackets []TaxBracket) error
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

func (r *repository) LatestOvertimeRates(ctx context.Context, orgID string) ([]OvertimeRate, error) {
	var rates []OvertimeRate
	query := `
SELECT DISTINCT ON (rate_type) *
FROM overtime_rates
WHERE organization_id = ?
ORDER BY rate_type, id DESC
`
	err := r.db.WithContext(ctx).Raw(query, orgID).Scan(&rates).Error
	return rates, err
}

func (r *repository) LatestFlatCaps(ctx context.Context, orgID string) ([]FlatCapRule, error) {
	var rules []FlatCapRule
	query := `
SELECT DISTINCT ON (component) *
FROM flat_cap_rules
WHERE organization_id = ?
ORDER BY component, id DESC
`
	err := r.db.WithContext(ctx).Raw(query, orgID).Scan(&rules).Error
	return rules, err
}

func (r *repository) LatestSalaryRatios(ctx context.Context, orgID string) ([]SalaryRatioRule, error) {
	var rules []SalaryRatioRule
	query := `
SELECT DISTINCT ON (component) *
FROM salary_ratio_rules
WHERE organization_id = ?
ORDER BY component, id DESC
`
	err := r.db.WithContext(ctx).Raw(query, orgID).Scan(&rules).Error
	return rules, err
}

func (r *repository) LatestHardshipRates(ctx context.Context, orgID string) ([]HardshipRate, error) {
	var rates []HardshipRate
	query := `
SELECT DISTINCT ON (environment) *
FROM hardship_rates
WHERE organization_id = ?
ORDER BY environment, id DESC
`
	err := r.db.WithContext(ctx).Raw(query, orgID).Scan(&rates).Error
	return rates, err
}

func (r *repository) LatestPerDiemRates(ctx context.Context, orgID string) ([]PerDiemRate, error) {
	var rates []PerDiemRate
	query := `
SELECT DISTINCT ON (working_area) *
FROM per_diem_rates
WHERE organization_id = ?
ORDER BY working_area, id DESC
`
	err := r.db.WithContext(ctx).Raw(query, orgID).Scan(&rates).Error
	return rates, err
}

func (r *repository) LatestPensionRate(ctx context.Context, orgID string) (*PensionRate, error) {
	var rate PensionRate
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("id DESC").
		First(&rate).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

func (r *repository) LatestTaxSchedule(ctx context.Context, orgID string) ([]TaxBracket, error) {
	var brackets []TaxBracket
	query := `
SELECT *
FROM tax_brackets
WHERE organization_id = ?
  AND schedule_version = (
	SELECT COALESCE(MAX(schedule_version), 0)
	FROM tax_brackets
	WHERE organization_id = ?
  )
ORDER BY min_amount ASC
`
	err := r.db.WithContext(ctx).Raw(query, orgID, orgID).Scan(&brackets).Error
	return brackets, err
}

func (r *repository) CreateOvertimeRate(ctx context.Context, rate *OvertimeRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *repository) CreateFlatCap(ctx context.Context, rule *FlatCapRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repository) CreateSalaryRatio(ctx context.Context, rule *SalaryRatioRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repository) CreateHardshipRate(ctx context.Context, rate *HardshipRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *repository) CreatePerDiemRate(ctx context.Context, rate *PerDiemRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *repository) CreatePensionRate(ctx context.Context, rate *PensionRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *repository) CreateTaxSchedule(ctx context.Context, orgID string, brackets []TaxBracket) error {
	var current uint
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(schedule_version), 0) FROM tax_brackets WHERE organization_id = ?`, orgID).
		Scan(&current).Error
	if err != nil {
		return err
	}

	next := current + 1
	for i := range brackets {
		brackets[i].ScheduleVersion = next
	}

	return r.db.WithContext(ctx).Create(&brackets).Error
}
