package severance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=severance_repo.go -destination=mock/severance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	EmployeeExists(ctx context.Context, orgID, employeeID string) (bool, error)
	FindPeriodSlug(ctx context.Context, orgID, payPeriodID string) (string, error)
	Create(ctx context.Context, sv *Severance) error
	Delete(ctx context.Context, orgID, id string) error
	FindByIDAndOrganization(ctx context.Context, orgID, id string) (*Severance, error)
	FindAllByOrganization(ctx context.Context, orgID string) ([]Severance, error)
	FindAllByPeriod(ctx context.Context, orgID, payPeriodID string) ([]Severance, error)
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

func (r *repository) FindPeriodSlug(ctx context.Context, orgID, payPeriodID string) (string, error) {
	var slug string
	query := `
SELECT slug
FROM pay_periods
WHERE id = ?
  AND organization_id = ?
`
	err := r.db.WithContext(ctx).Raw(query, payPeriodID, orgID).Scan(&slug).Error
	if err != nil {
		return "", err
	}
	if slug == "" {
		return "", gorm.ErrRecordNotFound
	}
	return slug, nil
}

func (r *repository) Create(ctx context.Context, sv *Severance) error {
	return r.db.WithContext(ctx).Create(sv).Error
}

func (r *repository) Delete(ctx context.Context, orgID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Delete(&Severance{}).Error
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, orgID, id string) (*Severance, error) {
	var sv Severance
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		First(&sv).Error
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

func (r *repository) FindAllByOrganization(ctx context.Context, orgID string) ([]Severance, error) {
	var rows []Severance
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByPeriod(ctx context.Context, orgID, payPeriodID string) ([]Severance, error) {
	var rows []Severance
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("pay_period_id = ?", payPeriodID).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}
