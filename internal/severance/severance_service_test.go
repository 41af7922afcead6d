package severance_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/rateconfig"
	"go-payroll/internal/severance"
	severanceerrors "go-payroll/internal/severance/errors"
)

type fakeSeveranceRepository struct {
	withTxFn         func(tx *sql.Tx) severance.Repository
	employeeExistsFn func(ctx context.Context, orgID, employeeID string) (bool, error)
	findPeriodSlugFn func(ctx context.Context, orgID, payPeriodID string) (string, error)
	createFn         func(ctx context.Context, sv *severance.Severance) error
	deleteFn         func(ctx context.Context, orgID, id string) error
	findByIDFn       func(ctx context.Context, orgID, id string) (*severance.Severance, error)
	findAllFn        func(ctx context.Context, orgID string) ([]severance.Severance, error)
	findAllPeriodFn  func(ctx context.Context, orgID, payPeriodID string) ([]severance.Severance, error)
}

func (f *fakeSeveranceRepository) WithTx(tx *sql.Tx) severance.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSeveranceRepository) EmployeeExists(ctx context.Context, orgID, employeeID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, orgID, employeeID)
	}
	return true, nil
}

func (f *fakeSeveranceRepository) FindPeriodSlug(ctx context.Context, orgID, payPeriodID string) (string, error) {
	if f.findPeriodSlugFn != nil {
		return f.findPeriodSlugFn(ctx, orgID, payPeriodID)
	}
	return "2026-08", nil
}

func (f *fakeSeveranceRepository) Create(ctx context.Context, sv *severance.Severance) error {
	if f.createFn != nil {
		return f.createFn(ctx, sv)
	}
	return nil
}

func (f *fakeSeveranceRepository) Delete(ctx context.Context, orgID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, orgID, id)
	}
	return nil
}

func (f *fakeSeveranceRepository) FindByIDAndOrganization(ctx context.Context, orgID, id string) (*severance.Severance, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, orgID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSeveranceRepository) FindAllByOrganization(ctx context.Context, orgID string) ([]severance.Severance, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, orgID)
	}
	return nil, nil
}

func (f *fakeSeveranceRepository) FindAllByPeriod(ctx context.Context, orgID, payPeriodID string) ([]severance.Severance, error) {
	if f.findAllPeriodFn != nil {
		return f.findAllPeriodFn(ctx, orgID, payPeriodID)
	}
	return nil, nil
}

type fakeSeveranceRateResolver struct{}

func (f *fakeSeveranceRateResolver) Resolve(ctx context.Context, orgID string) (rateconfig.Rates, error) {
	return rateconfig.Default(), nil
}

type fakeSeveranceOutbox struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeSeveranceOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSeveranceOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeSeveranceOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeSeveranceOutbox) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeSeveranceOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type severanceServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service severance.Service
	repo    *fakeSeveranceRepository
	outbox  *fakeSeveranceOutbox
}

func setupSeveranceServiceTest(t *testing.T) *severanceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSeveranceRepository{}
	outbox := &fakeSeveranceOutbox{}
	svc := severance.NewServiceWithOutbox(db, repo, &fakeSeveranceRateResolver{}, outbox)

	return &severanceServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, outbox: outbox}
}

func expectSeveranceTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func createSeveranceRequest(employeeID, payPeriodID string) severance.CreateSeveranceRequest {
	return severance.CreateSeveranceRequest{
		EmployeeID:        employeeID,
		PayPeriodID:       payPeriodID,
		SeveranceType:     severance.TypeNormal,
		LastWeekDailyWage: "300",
		StartDate:         "2022-01-10",
		EndDate:           "2025-02-19",
	}
}

func TestSeveranceService_Create(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	employeeID := uuid.New().String()
	payPeriodID := uuid.New().String()

	deps := setupSeveranceServiceTest(t)
	defer deps.db.Close()

	expectSeveranceTx(t, deps.sqlMock, true)

	var queuedEvent events.SeveranceCommittedEvent
	deps.repo.createFn = func(ctx context.Context, sv *severance.Severance) error {
		assert.Equal(t, 3, sv.ServiceYears)
		assert.Equal(t, "15328.77", sv.GrossSeverancePay.StringFixed(2))
		assert.Equal(t, "13163.02", sv.NetSeverancePay.StringFixed(2))
		return nil
	}
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		assert.Equal(t, events.SeveranceCommittedTopic, event.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, event.Status)
		return json.Unmarshal(event.Payload, &queuedEvent)
	}

	resp, err := deps.service.Create(ctx, orgID, createSeveranceRequest(employeeID, payPeriodID))

	assert.NoError(t, err)
	assert.Equal(t, employeeID, resp.EmployeeID)
	assert.Equal(t, "13163.02", resp.NetSeverancePay)
	assert.Equal(t, "2026-08", queuedEvent.PeriodSlug)
	assert.Equal(t, "13163.02", queuedEvent.NetSeverance)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSeveranceService_Create_EmployeeMissing(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	deps := setupSeveranceServiceTest(t)
	defer deps.db.Close()

	expectSeveranceTx(t, deps.sqlMock, false)
	deps.repo.employeeExistsFn = func(ctx context.Context, orgID, employeeID string) (bool, error) {
		return false, nil
	}

	_, err := deps.service.Create(ctx, orgID, createSeveranceRequest(uuid.New().String(), uuid.New().String()))

	assert.ErrorIs(t, err, severanceerrors.ErrEmployeeNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSeveranceService_Create_PeriodMissing(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	deps := setupSeveranceServiceTest(t)
	defer deps.db.Close()

	expectSeveranceTx(t, deps.sqlMock, false)
	deps.repo.findPeriodSlugFn = func(ctx context.Context, orgID, payPeriodID string) (string, error) {
		return "", gorm.ErrRecordNotFound
	}

	_, err := deps.service.Create(ctx, orgID, createSeveranceRequest(uuid.New().String(), uuid.New().String()))

	assert.ErrorIs(t, err, severanceerrors.ErrPayPeriodNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSeveranceService_Create_TenureTooShort(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	deps := setupSeveranceServiceTest(t)
	defer deps.db.Close()

	req := createSeveranceRequest(uuid.New().String(), uuid.New().String())
	req.StartDate = "2025-01-01"
	req.EndDate = "2025-10-01"

	_, err := deps.service.Create(ctx, orgID, req)

	assert.ErrorIs(t, err, severanceerrors.ErrTenureTooShort)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSeveranceService_Create_UnknownType(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	deps := setupSeveranceServiceTest(t)
	defer deps.db.Close()

	req := createSeveranceRequest(uuid.New().String(), uuid.New().String())
	req.SeveranceType = "voluntary"

	_, err := deps.service.Create(ctx, orgID, req)

	assert.ErrorIs(t, err, severanceerrors.ErrUnknownSeveranceType)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSeveranceService_Delete(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	severanceID := uuid.New()

	deps := setupSeveranceServiceTest(t)
	defer deps.db.Close()

	expectSeveranceTx(t, deps.sqlMock, true)
	deps.repo.findByIDFn = func(ctx context.Context, orgID, id string) (*severance.Severance, error) {
		return &severance.Severance{ID: severanceID, OrganizationID: uuid.MustParse(orgID)}, nil
	}

	err := deps.service.Delete(ctx, orgID, severanceID.String())

	assert.NoError(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSeveranceService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupSeveranceServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetByID(ctx, uuid.New().String(), uuid.New().String())

	assert.ErrorIs(t, err, severanceerrors.ErrSeveranceNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
