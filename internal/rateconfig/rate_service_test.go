package rateconfig_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-payroll/internal/rateconfig"
	rateconfigerrors "go-payroll/internal/rateconfig/errors"
	rateconfigMock "go-payroll/internal/rateconfig/mock"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expectEmptyConfig(mockRepo *rateconfigMock.MockRepository, ctx context.Context, orgID string) {
	mockRepo.EXPECT().LatestOvertimeRates(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestFlatCaps(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestSalaryRatios(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestHardshipRates(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestPerDiemRates(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestPensionRate(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestTaxSchedule(ctx, orgID).Return(nil, nil)
}

func TestService_Resolve_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateconfigMock.NewMockRepository(ctrl)
	service := rateconfig.NewService(nil, mockRepo)
	ctx := context.Background()
	orgID := uuid.New().String()

	expectEmptyConfig(mockRepo, ctx, orgID)

	rates, err := service.Resolve(ctx, orgID)

	assert.NoError(t, err)
	assert.True(t, d("1.25").Equal(rates.OvertimeMultiplier(rateconfig.OvertimeEvening)))
	assert.True(t, d("2.50").Equal(rates.OvertimeMultiplier(rateconfig.OvertimePublicHoliday)))
	assert.True(t, d("1").Equal(rates.OvertimeMultiplier("weird_new_type")))
	assert.True(t, d("0.25").Equal(rates.HardshipPercent(rateconfig.EnvironmentAdverse)))
	assert.True(t, rates.HardshipPercent("office").IsZero())
	assert.True(t, d("0.07").Equal(rates.Pension.Employee))
	assert.True(t, d("0.11").Equal(rates.Pension.Employer))
	assert.Len(t, rates.TaxBrackets, 6)

	rule := rates.PerDiemRule(rateconfig.AreaGovernmentOfficial)
	assert.True(t, rule.FullyNonTaxable)

	unknown := rates.PerDiemRule("unmapped_area")
	assert.False(t, unknown.FullyNonTaxable)
	assert.True(t, unknown.PercentLimit.IsZero())
}

func TestService_Resolve_OverridesWinOverDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateconfigMock.NewMockRepository(ctrl)
	service := rateconfig.NewService(nil, mockRepo)
	ctx := context.Background()
	orgID := uuid.New().String()
	oid := uuid.MustParse(orgID)

	mockRepo.EXPECT().LatestOvertimeRates(ctx, orgID).Return([]rateconfig.OvertimeRate{
		{OrganizationID: oid, RateType: rateconfig.OvertimeNight, Multiplier: d("1.75")},
	}, nil)
	mockRepo.EXPECT().LatestFlatCaps(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestSalaryRatios(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestHardshipRates(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestPerDiemRates(ctx, orgID).Return(nil, nil)
	mockRepo.EXPECT().LatestPensionRate(ctx, orgID).Return(&rateconfig.PensionRate{
		OrganizationID: oid, EmployeeRate: d("0.05"), EmployerRate: d("0.09"),
	}, nil)
	mockRepo.EXPECT().LatestTaxSchedule(ctx, orgID).Return(nil, nil)

	rates, err := service.Resolve(ctx, orgID)

	assert.NoError(t, err)
	assert.True(t, d("1.75").Equal(rates.OvertimeMultiplier(rateconfig.OvertimeNight)))
	// untouched keys keep defaults
	assert.True(t, d("1.25").Equal(rates.OvertimeMultiplier(rateconfig.OvertimeEvening)))
	assert.True(t, d("0.05").Equal(rates.Pension.Employee))
	assert.True(t, d("0.09").Equal(rates.Pension.Employer))
}

func TestService_Resolve_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateconfigMock.NewMockRepository(ctrl)
	service := rateconfig.NewService(nil, mockRepo)
	ctx := context.Background()
	orgID := uuid.New().String()

	mockRepo.EXPECT().LatestOvertimeRates(ctx, orgID).Return(nil, errors.New("db down"))

	_, err := service.Resolve(ctx, orgID)
	assert.Error(t, err)
}

func TestService_SetOvertimeRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateconfigMock.NewMockRepository(ctrl)
	service := rateconfig.NewService(nil, mockRepo)
	ctx := context.Background()
	orgID := uuid.New().String()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateOvertimeRate(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rate *rateconfig.OvertimeRate) error {
				assert.Equal(t, rateconfig.OvertimeNight, rate.RateType)
				assert.True(t, d("1.60").Equal(rate.Multiplier))
				return nil
			})

		err := service.SetOvertimeRate(ctx, orgID, rateconfig.SetOvertimeRateRequest{
			RateType:   rateconfig.OvertimeNight,
			Multiplier: "1.60",
		})
		assert.NoError(t, err)
	})

	t.Run("Rejects non positive multiplier", func(t *testing.T) {
		err := service.SetOvertimeRate(ctx, orgID, rateconfig.SetOvertimeRateRequest{
			RateType:   rateconfig.OvertimeNight,
			Multiplier: "0",
		})
		assert.ErrorIs(t, err, rateconfigerrors.ErrInvalidMultiplier)
	})

	t.Run("Rejects malformed decimal", func(t *testing.T) {
		err := service.SetOvertimeRate(ctx, orgID, rateconfig.SetOvertimeRateRequest{
			RateType:   rateconfig.OvertimeNight,
			Multiplier: "abc",
		})
		assert.ErrorIs(t, err, rateconfigerrors.ErrInvalidMultiplier)
	})
}

func TestService_SetHardshipRate_RejectsPercentAboveOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateconfigMock.NewMockRepository(ctrl)
	service := rateconfig.NewService(nil, mockRepo)

	err := service.SetHardshipRate(context.Background(), uuid.New().String(), rateconfig.SetHardshipRateRequest{
		Environment:  rateconfig.EnvironmentAdverse,
		LimitPercent: "25",
	})
	assert.ErrorIs(t, err, rateconfigerrors.ErrInvalidPercent)
}
