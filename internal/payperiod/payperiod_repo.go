package payperiod

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payperiod_repo.go -destination=mock/payperiod_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *PayPeriod) error
	FindAllByOrganization(ctx context.Context, orgID string) ([]PayPeriod, error)
	FindByIDAndOrganization(ctx context.Context, orgID, id string) (*PayPeriod, error)
	FindBySlug(ctx context.Context, orgID, slug string) (*PayPeriod, error)
	Delete(ctx context.Context, orgID, id string) error

	FindComponentSet(ctx context.Context, orgID, payPeriodID string) (*PeriodComponentSet, error)
	SaveComponentSet(ctx context.Context, set *PeriodComponentSet) error
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

func (r *repository) Create(ctx context.Context, p *PayPeriod) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, orgID string) ([]PayPeriod, error) {
	var periods []PayPeriod
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("year DESC, month DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, orgID, id string) (*PayPeriod, error) {
	var p PayPeriod
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindBySlug(ctx context.Context, orgID, slug string) (*PayPeriod, error) {
	var p PayPeriod
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("slug = ?", slug).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, orgID, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("organization_id = ?", orgID).
		Delete(&PayPeriod{}).Error
}

func (r *repository) FindComponentSet(ctx context.Context, orgID, payPeriodID string) (*PeriodComponentSet, error) {
	var set PeriodComponentSet
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("pay_period_id = ?", payPeriodID).
		First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *repository) SaveComponentSet(ctx context.Context, set *PeriodComponentSet) error {
	return r.db.WithContext(ctx).Save(set).Error
}
