package payperiod_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-payroll/internal/payperiod"
	payperioderrors "go-payroll/internal/payperiod/errors"
)

type fakePayPeriodRepository struct {
	periods       map[string]*payperiod.PayPeriod
	componentSets map[string]*payperiod.PeriodComponentSet

	createFn func(ctx context.Context, p *payperiod.PayPeriod) error
}

func newFakePayPeriodRepository() *fakePayPeriodRepository {
	return &fakePayPeriodRepository{
		periods:       make(map[string]*payperiod.PayPeriod),
		componentSets: make(map[string]*payperiod.PeriodComponentSet),
	}
}

func (f *fakePayPeriodRepository) WithTx(tx *sql.Tx) payperiod.Repository {
	return f
}

func (f *fakePayPeriodRepository) Create(ctx context.Context, p *payperiod.PayPeriod) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	f.periods[p.ID.String()] = p
	return nil
}

func (f *fakePayPeriodRepository) FindAllByOrganization(ctx context.Context, orgID string) ([]payperiod.PayPeriod, error) {
	out := make([]payperiod.PayPeriod, 0, len(f.periods))
	for _, p := range f.periods {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePayPeriodRepository) FindByIDAndOrganization(ctx context.Context, orgID, id string) (*payperiod.PayPeriod, error) {
	if p, ok := f.periods[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayPeriodRepository) FindBySlug(ctx context.Context, orgID, slug string) (*payperiod.PayPeriod, error) {
	for _, p := range f.periods {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayPeriodRepository) Delete(ctx context.Context, orgID, id string) error {
	delete(f.periods, id)
	return nil
}

func (f *fakePayPeriodRepository) FindComponentSet(ctx context.Context, orgID, payPeriodID string) (*payperiod.PeriodComponentSet, error) {
	if set, ok := f.componentSets[payPeriodID]; ok {
		return set, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayPeriodRepository) SaveComponentSet(ctx context.Context, set *payperiod.PeriodComponentSet) error {
	f.componentSets[set.PayPeriodID.String()] = set
	return nil
}

type payPeriodServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payperiod.Service
	repo    *fakePayPeriodRepository
}

func setupPayPeriodServiceTest(t *testing.T) *payPeriodServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := newFakePayPeriodRepository()
	svc := payperiod.NewService(db, repo)

	return &payPeriodServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectPayPeriodTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func seedPeriod(repo *fakePayPeriodRepository, year, month int) *payperiod.PayPeriod {
	p := &payperiod.PayPeriod{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Year:           year,
		Month:          month,
		Slug:           payperiod.PeriodSlug(year, month),
	}
	repo.periods[p.ID.String()] = p
	return p
}

func TestPayPeriodService_Create(t *testing.T) {
	deps := setupPayPeriodServiceTest(t)
	defer deps.db.Close()

	expectPayPeriodTx(t, deps.sqlMock, true)

	resp, err := deps.service.Create(context.Background(), uuid.New().String(), payperiod.CreatePayPeriodRequest{
		Year:  2026,
		Month: 8,
	})

	require.NoError(t, err)
	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 8, resp.Month)
	assert.Equal(t, "2026-08", resp.Slug)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayPeriodService_Create_InvalidMonth(t *testing.T) {
	deps := setupPayPeriodServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Create(context.Background(), uuid.New().String(), payperiod.CreatePayPeriodRequest{
		Year:  2026,
		Month: 13,
	})

	assert.ErrorIs(t, err, payperioderrors.ErrInvalidMonth)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayPeriodService_SetComponents(t *testing.T) {
	deps := setupPayPeriodServiceTest(t)
	defer deps.db.Close()

	p := seedPeriod(deps.repo, 2026, 8)

	expectPayPeriodTx(t, deps.sqlMock, true)

	resp, err := deps.service.SetComponents(context.Background(), p.OrganizationID.String(), p.ID.String(), payperiod.SetComponentSetRequest{
		Components: map[string]bool{
			"basic_salary": true,
			"overtime":     true,
			"per_diem":     true,
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.Components["basic_salary"])
	assert.True(t, resp.Components["per_diem"])
	assert.False(t, resp.Components["loan_payment"])

	saved := deps.repo.componentSets[p.ID.String()]
	require.NotNil(t, saved)
	assert.True(t, saved.Active("overtime"))
	assert.False(t, saved.Active("red_cross"))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayPeriodService_SetComponents_UnknownComponent(t *testing.T) {
	deps := setupPayPeriodServiceTest(t)
	defer deps.db.Close()

	p := seedPeriod(deps.repo, 2026, 8)

	expectPayPeriodTx(t, deps.sqlMock, false)

	_, err := deps.service.SetComponents(context.Background(), p.OrganizationID.String(), p.ID.String(), payperiod.SetComponentSetRequest{
		Components: map[string]bool{"thirteenth_salary": true},
	})

	assert.ErrorIs(t, err, payperioderrors.ErrUnknownComponent)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayPeriodService_GetComponents_DefaultsOff(t *testing.T) {
	deps := setupPayPeriodServiceTest(t)
	defer deps.db.Close()

	p := seedPeriod(deps.repo, 2026, 8)

	resp, err := deps.service.GetComponents(context.Background(), p.OrganizationID.String(), p.ID.String())

	require.NoError(t, err)
	assert.Len(t, resp.Components, 31)
	for name, on := range resp.Components {
		assert.False(t, on, name)
	}
}

func TestPayPeriodService_GetComponents_PeriodMissing(t *testing.T) {
	deps := setupPayPeriodServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetComponents(context.Background(), uuid.New().String(), uuid.New().String())

	assert.ErrorIs(t, err, payperioderrors.ErrPayPeriodNotFound)
}
