package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/rateconfig"
)

type fakePayrollRepository struct {
	withTxFn              func(tx *sql.Tx) payroll.Repository
	findEmployeeContextFn func(ctx context.Context, orgID, employeeID string) (*payroll.EmployeeContext, error)
	findPeriodSlugFn      func(ctx context.Context, orgID, payPeriodID string) (string, error)
	createFn              func(ctx context.Context, p *payroll.Payroll) error
	updateFn              func(ctx context.Context, p *payroll.Payroll) error
	deleteFn              func(ctx context.Context, orgID, id string) error
	findByIDFn            func(ctx context.Context, orgID, id string) (*payroll.Payroll, error)
	findAllByPeriodFn     func(ctx context.Context, orgID, payPeriodID string) ([]payroll.Payroll, error)
	existsFn              func(ctx context.Context, orgID, employeeID, payPeriodID string, excludeID *string) (bool, error)
	sumCostShareFn        func(ctx context.Context, orgID, employeeID string, excludeID *string) (decimal.Decimal, error)
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) FindEmployeeContext(ctx context.Context, orgID, employeeID string) (*payroll.EmployeeContext, error) {
	if f.findEmployeeContextFn != nil {
		return f.findEmployeeContextFn(ctx, orgID, employeeID)
	}
	return &payroll.EmployeeContext{
		FullName:     "Test Employee",
		BasicSalary:  decimal.NewFromInt(10000),
		DailyPerDiem: decimal.NewFromInt(1000),
	}, nil
}

func (f *fakePayrollRepository) FindPeriodSlug(ctx context.Context, orgID, payPeriodID string) (string, error) {
	if f.findPeriodSlugFn != nil {
		return f.findPeriodSlugFn(ctx, orgID, payPeriodID)
	}
	return "2026-08", nil
}

func (f *fakePayrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) Update(ctx context.Context, p *payroll.Payroll) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) Delete(ctx context.Context, orgID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, orgID, id)
	}
	return nil
}

func (f *fakePayrollRepository) FindByIDAndOrganization(ctx context.Context, orgID, id string) (*payroll.Payroll, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, orgID, id)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindAllByPeriod(ctx context.Context, orgID, payPeriodID string) ([]payroll.Payroll, error) {
	if f.findAllByPeriodFn != nil {
		return f.findAllByPeriodFn(ctx, orgID, payPeriodID)
	}
	return nil, nil
}

func (f *fakePayrollRepository) ExistsForEmployeeAndPeriod(ctx context.Context, orgID, employeeID, payPeriodID string, excludeID *string) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, orgID, employeeID, payPeriodID, excludeID)
	}
	return false, nil
}

func (f *fakePayrollRepository) SumCostShareByEmployee(ctx context.Context, orgID, employeeID string, excludeID *string) (decimal.Decimal, error) {
	if f.sumCostShareFn != nil {
		return f.sumCostShareFn(ctx, orgID, employeeID, excludeID)
	}
	return decimal.Zero, nil
}

type fakeRateResolver struct {
	resolveFn func(ctx context.Context, orgID string) (rateconfig.Rates, error)
}

func (f *fakeRateResolver) Resolve(ctx context.Context, orgID string) (rateconfig.Rates, error) {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, orgID)
	}
	return rateconfig.Default(), nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type payrollServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payroll.Service
	repo    *fakePayrollRepository
	outbox  *fakeOutboxRepository
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePayrollRepository{}
	outbox := &fakeOutboxRepository{}
	svc := payroll.NewServiceWithOutbox(db, repo, &fakeRateResolver{}, outbox)

	return &payrollServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, outbox: outbox}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func createRequest(employeeID, payPeriodID string) payroll.CreatePayrollRequest {
	req := payroll.CreatePayrollRequest{
		EmployeeID:  employeeID,
		PayPeriodID: payPeriodID,
	}
	req.BasicSalary = "10000"
	req.EveningOvertimeHours = 10
	return req
}

func TestPayrollService_Create(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	employeeID := uuid.New().String()
	payPeriodID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var queuedEvent events.PayrollCommittedEvent
	deps.repo.createFn = func(ctx context.Context, p *payroll.Payroll) error {
		assert.Equal(t, "520.83", p.Overtime.StringFixed(2))
		assert.Equal(t, "10520.83", p.GrossPay.StringFixed(2))
		assert.Equal(t, "1806.25", p.EmploymentIncomeTax.StringFixed(2))
		assert.Equal(t, "8014.58", p.NetPay.StringFixed(2))
		return nil
	}
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		assert.Equal(t, events.PayrollCommittedTopic, event.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, event.Status)
		return json.Unmarshal(event.Payload, &queuedEvent)
	}

	resp, err := deps.service.Create(ctx, orgID, createRequest(employeeID, payPeriodID))

	assert.NoError(t, err)
	assert.Equal(t, employeeID, resp.EmployeeID)
	assert.Equal(t, "Test Employee", resp.EmployeeName)
	assert.Equal(t, "8014.58", resp.NetPay)
	assert.Equal(t, "2026-08", queuedEvent.PeriodSlug)
	assert.Equal(t, "8014.58", queuedEvent.NetPay)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Create_DuplicatePeriod(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.existsFn = func(ctx context.Context, orgID, employeeID, payPeriodID string, excludeID *string) (bool, error) {
		return true, nil
	}

	_, err := deps.service.Create(ctx, orgID, createRequest(uuid.New().String(), uuid.New().String()))

	assert.ErrorIs(t, err, payrollerrors.ErrPayrollAlreadyExists)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Create_EmployeeMissing(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findEmployeeContextFn = func(ctx context.Context, orgID, employeeID string) (*payroll.EmployeeContext, error) {
		return nil, payrollerrors.ErrEmployeeNotFound
	}

	_, err := deps.service.Create(ctx, orgID, createRequest(uuid.New().String(), uuid.New().String()))

	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Create_PerDiemNeedsDailyRate(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findEmployeeContextFn = func(ctx context.Context, orgID, employeeID string) (*payroll.EmployeeContext, error) {
		return &payroll.EmployeeContext{
			FullName:    "Test Employee",
			BasicSalary: decimal.NewFromInt(10000),
		}, nil
	}

	req := createRequest(uuid.New().String(), uuid.New().String())
	req.PerDiem = "500"

	_, err := deps.service.Create(ctx, orgID, req)

	assert.ErrorIs(t, err, payrollerrors.ErrPerDiemWithoutDailyRate)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Create_CostShareExceedsDebt(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findEmployeeContextFn = func(ctx context.Context, orgID, employeeID string) (*payroll.EmployeeContext, error) {
		return &payroll.EmployeeContext{
			FullName:                  "Test Employee",
			BasicSalary:               decimal.NewFromInt(10000),
			UniversityCostSharingDebt: decimal.NewFromInt(1500),
		}, nil
	}
	deps.repo.sumCostShareFn = func(ctx context.Context, orgID, employeeID string, excludeID *string) (decimal.Decimal, error) {
		return decimal.NewFromInt(1000), nil
	}

	// 10% of 10000 = 1000, on top of 1000 already withheld against a 1500 debt.
	req := createRequest(uuid.New().String(), uuid.New().String())
	req.CostSharePercent = "10"

	_, err := deps.service.Create(ctx, orgID, req)

	assert.ErrorIs(t, err, payrollerrors.ErrCostShareExceedsDebt)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Create_NegativeAmountRejected(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	req := createRequest(uuid.New().String(), uuid.New().String())
	req.Commission = "-25"

	_, err := deps.service.Create(ctx, orgID, req)

	assert.ErrorIs(t, err, payrollerrors.ErrNegativeAmount)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Update_Recalculates(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	payrollID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findByIDFn = func(ctx context.Context, orgID, id string) (*payroll.Payroll, error) {
		return &payroll.Payroll{
			ID:             payrollID,
			OrganizationID: uuid.MustParse(orgID),
			EmployeeID:     uuid.New(),
			PayPeriodID:    uuid.New(),
			BasicSalary:    decimal.NewFromInt(10000),
		}, nil
	}

	var updated *payroll.Payroll
	deps.repo.updateFn = func(ctx context.Context, p *payroll.Payroll) error {
		updated = p
		return nil
	}

	req := payroll.UpdatePayrollRequest{}
	req.BasicSalary = "12000"

	resp, err := deps.service.Update(ctx, orgID, payrollID.String(), req)

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "12000.00", resp.BasicSalary)
	assert.Equal(t, "12000.00", updated.GrossPay.StringFixed(2))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Delete(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New().String()
	payrollID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findByIDFn = func(ctx context.Context, orgID, id string) (*payroll.Payroll, error) {
		return &payroll.Payroll{ID: payrollID, OrganizationID: uuid.MustParse(orgID)}, nil
	}

	err := deps.service.Delete(ctx, orgID, payrollID.String())

	assert.NoError(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
