package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/core/services"
)

// --- Mock AssetReader ---
type MockAssetReader struct {
	mock.Mock
}

func (m *MockAssetReader) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetReader) FindAssetByCode(ctx context.Context, patrimonialCode string) (*domain.Asset, error) {
	args := m.Called(ctx, patrimonialCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetReader) ListAssets(ctx context.Context, filter portsrepo.AssetListFilter, limit int, offset int) ([]domain.Asset, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetReader) ListDepreciableAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

// --- Mock DepreciationRepository ---
type MockDepreciationRepository struct {
	mock.Mock
}

func (m *MockDepreciationRepository) FindLatestRecord(ctx context.Context, assetID string) (*domain.DepreciationRecord, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) RecordExists(ctx context.Context, assetID string, month int, year int) (bool, error) {
	args := m.Called(ctx, assetID, month, year)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepreciationRepository) ListRecordsByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) ListRecordsByPeriod(ctx context.Context, month int, year int) ([]domain.DepreciationRecord, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepreciationRecord), args.Error(1)
}

func (m *MockDepreciationRepository) AppendRecords(ctx context.Context, records []domain.DepreciationRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// --- Test Suite ---
type DepreciationServiceTestSuite struct {
	suite.Suite
	mockAssets *MockAssetReader
	mockLedger *MockDepreciationRepository
	service    portssvc.DepreciationSvcFacade
}

func (suite *DepreciationServiceTestSuite) SetupTest() {
	suite.mockAssets = new(MockAssetReader)
	suite.mockLedger = new(MockDepreciationRepository)
	suite.service = services.NewDepreciationService(suite.mockAssets, suite.mockLedger)
}

func newTestAsset(method domain.DepreciationMethod, acquisition, residual string, lifeYears int) domain.Asset {
	m := method
	life := lifeYears
	return domain.Asset{
		AssetID:          uuid.NewString(),
		PatrimonialCode:  "BM-2024-00001",
		Description:      "Test asset",
		Quantity:         1,
		AcquisitionDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		AcquisitionValue: decimal.RequireFromString(acquisition),
		ResidualValue:    decimal.RequireFromString(residual),
		UsefulLifeYears:  &life,
		Method:           &m,
		Status:           domain.StatusGood,
	}
}

// --- Test Cases ---

func (suite *DepreciationServiceTestSuite) TestRun_FirstMonth_StraightLine() {
	ctx := context.Background()
	asset := newTestAsset(domain.MethodStraightLine, "1200", "0", 1)
	userID := uuid.NewString()

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{asset}, nil).Once()
	suite.mockLedger.On("RecordExists", ctx, asset.AssetID, 1, 2025).Return(false, nil).Once()
	suite.mockLedger.On("FindLatestRecord", ctx, asset.AssetID).Return(nil, apperrors.ErrNotFound).Once()

	var committed []domain.DepreciationRecord
	suite.mockLedger.On("AppendRecords", ctx, mock.AnythingOfType("[]domain.DepreciationRecord")).
		Run(func(args mock.Arguments) {
			committed = args.Get(1).([]domain.DepreciationRecord)
		}).Return(nil).Once()

	summary, err := suite.service.Run(ctx, 1, 2025, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(1, summary.ComputedCount)
	suite.Equal(0, summary.SkippedCount)
	suite.Empty(summary.Errors)

	suite.Require().Len(committed, 1)
	rec := committed[0]
	suite.Equal(asset.AssetID, rec.AssetID)
	suite.Equal(1, rec.Month)
	suite.Equal(2025, rec.Year)
	suite.Equal(userID, rec.ComputedBy)
	suite.NotEmpty(rec.RecordID)
	suite.True(rec.PeriodCharge.Equal(decimal.RequireFromString("100")), "charge was %s", rec.PeriodCharge)
	suite.True(rec.AccumulatedDepreciation.Equal(decimal.RequireFromString("100")))
	suite.True(rec.NetBookValue.Equal(decimal.RequireFromString("1100")))

	suite.mockAssets.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestRun_SecondMonth_ContinuesFromLatestRecord() {
	ctx := context.Background()
	asset := newTestAsset(domain.MethodStraightLine, "1200", "0", 1)

	prior := &domain.DepreciationRecord{
		RecordID:                uuid.NewString(),
		AssetID:                 asset.AssetID,
		Month:                   1,
		Year:                    2025,
		PeriodCharge:            decimal.RequireFromString("100"),
		AccumulatedDepreciation: decimal.RequireFromString("100"),
		NetBookValue:            decimal.RequireFromString("1100"),
	}

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{asset}, nil).Once()
	suite.mockLedger.On("RecordExists", ctx, asset.AssetID, 2, 2025).Return(false, nil).Once()
	suite.mockLedger.On("FindLatestRecord", ctx, asset.AssetID).Return(prior, nil).Once()

	var committed []domain.DepreciationRecord
	suite.mockLedger.On("AppendRecords", ctx, mock.AnythingOfType("[]domain.DepreciationRecord")).
		Run(func(args mock.Arguments) {
			committed = args.Get(1).([]domain.DepreciationRecord)
		}).Return(nil).Once()

	summary, err := suite.service.Run(ctx, 2, 2025, "")

	suite.Require().NoError(err)
	suite.Equal(1, summary.ComputedCount)
	suite.Require().Len(committed, 1)
	suite.True(committed[0].PeriodCharge.Equal(decimal.RequireFromString("100")))
	suite.True(committed[0].AccumulatedDepreciation.Equal(decimal.RequireFromString("200")))
	suite.True(committed[0].NetBookValue.Equal(decimal.RequireFromString("1000")))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestRun_Idempotent_SkipsExistingRecord() {
	ctx := context.Background()
	asset := newTestAsset(domain.MethodStraightLine, "1200", "0", 1)

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{asset}, nil).Once()
	suite.mockLedger.On("RecordExists", ctx, asset.AssetID, 1, 2025).Return(true, nil).Once()

	summary, err := suite.service.Run(ctx, 1, 2025, "")

	suite.Require().NoError(err)
	suite.Equal(0, summary.ComputedCount)
	suite.Equal(1, summary.SkippedCount)
	suite.Empty(summary.Errors)
	suite.mockLedger.AssertNotCalled(suite.T(), "AppendRecords", mock.Anything, mock.Anything)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestRun_TerminalAsset_Skipped() {
	ctx := context.Background()
	asset := newTestAsset(domain.MethodStraightLine, "1200", "200", 1)

	// Fully depreciated down to the residual floor.
	prior := &domain.DepreciationRecord{
		AssetID:                 asset.AssetID,
		Month:                   12,
		Year:                    2025,
		AccumulatedDepreciation: decimal.RequireFromString("1000"),
		NetBookValue:            decimal.RequireFromString("200"),
	}

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{asset}, nil).Once()
	suite.mockLedger.On("RecordExists", ctx, asset.AssetID, 1, 2026).Return(false, nil).Once()
	suite.mockLedger.On("FindLatestRecord", ctx, asset.AssetID).Return(prior, nil).Once()

	summary, err := suite.service.Run(ctx, 1, 2026, "")

	suite.Require().NoError(err)
	suite.Equal(0, summary.ComputedCount)
	suite.Equal(1, summary.SkippedCount)
	suite.mockLedger.AssertNotCalled(suite.T(), "AppendRecords", mock.Anything, mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestRun_FloorClamp_LandsExactlyOnResidual() {
	ctx := context.Background()
	// Raw monthly charge is 8.34; after eleven months the book value is
	// 908.26, so the final in-life month must clamp to 8.26.
	asset := newTestAsset(domain.MethodStraightLine, "1000", "900", 1)

	prior := &domain.DepreciationRecord{
		AssetID:                 asset.AssetID,
		Month:                   11,
		Year:                    2025,
		PeriodCharge:            decimal.RequireFromString("8.34"),
		AccumulatedDepreciation: decimal.RequireFromString("91.74"),
		NetBookValue:            decimal.RequireFromString("908.26"),
	}

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{asset}, nil).Once()
	suite.mockLedger.On("RecordExists", ctx, asset.AssetID, 12, 2025).Return(false, nil).Once()
	suite.mockLedger.On("FindLatestRecord", ctx, asset.AssetID).Return(prior, nil).Once()

	var committed []domain.DepreciationRecord
	suite.mockLedger.On("AppendRecords", ctx, mock.AnythingOfType("[]domain.DepreciationRecord")).
		Run(func(args mock.Arguments) {
			committed = args.Get(1).([]domain.DepreciationRecord)
		}).Return(nil).Once()

	summary, err := suite.service.Run(ctx, 12, 2025, "")

	suite.Require().NoError(err)
	suite.Equal(1, summary.ComputedCount)
	suite.Require().Len(committed, 1)
	suite.True(committed[0].PeriodCharge.Equal(decimal.RequireFromString("8.26")), "charge was %s", committed[0].PeriodCharge)
	suite.True(committed[0].NetBookValue.Equal(decimal.RequireFromString("900")), "net was %s", committed[0].NetBookValue)
	suite.True(committed[0].AccumulatedDepreciation.Equal(decimal.RequireFromString("100")))
}

func (suite *DepreciationServiceTestSuite) TestRun_DecliningBalance_FirstMonth() {
	ctx := context.Background()
	asset := newTestAsset(domain.MethodDecliningBalance, "1200", "0", 5)

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{asset}, nil).Once()
	suite.mockLedger.On("RecordExists", ctx, asset.AssetID, 3, 2025).Return(false, nil).Once()
	suite.mockLedger.On("FindLatestRecord", ctx, asset.AssetID).Return(nil, apperrors.ErrNotFound).Once()

	var committed []domain.DepreciationRecord
	suite.mockLedger.On("AppendRecords", ctx, mock.AnythingOfType("[]domain.DepreciationRecord")).
		Run(func(args mock.Arguments) {
			committed = args.Get(1).([]domain.DepreciationRecord)
		}).Return(nil).Once()

	summary, err := suite.service.Run(ctx, 3, 2025, "")

	suite.Require().NoError(err)
	suite.Equal(1, summary.ComputedCount)
	suite.Require().Len(committed, 1)
	// 1200 * (2/5) / 12 = 40.00
	suite.True(committed[0].PeriodCharge.Equal(decimal.RequireFromString("40")), "charge was %s", committed[0].PeriodCharge)
	suite.True(committed[0].NetBookValue.Equal(decimal.RequireFromString("1160")))
}

func (suite *DepreciationServiceTestSuite) TestRun_IneligibleAssetIsInvisible() {
	ctx := context.Background()
	// Defensive: even if the repository returned an asset without a method,
	// the run must neither compute, skip nor error it.
	noMethod := newTestAsset(domain.MethodStraightLine, "1200", "0", 1)
	noMethod.Method = nil

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{noMethod}, nil).Once()

	summary, err := suite.service.Run(ctx, 1, 2025, "")

	suite.Require().NoError(err)
	suite.Equal(0, summary.ComputedCount)
	suite.Equal(0, summary.SkippedCount)
	suite.Empty(summary.Errors)
	suite.mockLedger.AssertNotCalled(suite.T(), "AppendRecords", mock.Anything, mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestRun_PerAssetErrorDoesNotAbortRun() {
	ctx := context.Background()
	broken := newTestAsset(domain.DepreciationMethod("SUM_OF_YEARS"), "1200", "0", 1)
	healthy := newTestAsset(domain.MethodStraightLine, "1200", "0", 1)

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{broken, healthy}, nil).Once()
	suite.mockLedger.On("RecordExists", ctx, broken.AssetID, 1, 2025).Return(false, nil).Once()
	suite.mockLedger.On("FindLatestRecord", ctx, broken.AssetID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLedger.On("RecordExists", ctx, healthy.AssetID, 1, 2025).Return(false, nil).Once()
	suite.mockLedger.On("FindLatestRecord", ctx, healthy.AssetID).Return(nil, apperrors.ErrNotFound).Once()

	var committed []domain.DepreciationRecord
	suite.mockLedger.On("AppendRecords", ctx, mock.AnythingOfType("[]domain.DepreciationRecord")).
		Run(func(args mock.Arguments) {
			committed = args.Get(1).([]domain.DepreciationRecord)
		}).Return(nil).Once()

	summary, err := suite.service.Run(ctx, 1, 2025, "")

	suite.Require().NoError(err)
	suite.Equal(1, summary.ComputedCount)
	suite.Equal(0, summary.SkippedCount)
	suite.Require().Len(summary.Errors, 1)
	suite.Equal(broken.AssetID, summary.Errors[0].AssetID)
	suite.NotEmpty(summary.Errors[0].Reason)

	// The broken asset must not pollute the committed batch.
	suite.Require().Len(committed, 1)
	suite.Equal(healthy.AssetID, committed[0].AssetID)
}

func (suite *DepreciationServiceTestSuite) TestRun_CommitFailureAbortsRun() {
	ctx := context.Background()
	asset := newTestAsset(domain.MethodStraightLine, "1200", "0", 1)

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{asset}, nil).Once()
	suite.mockLedger.On("RecordExists", ctx, asset.AssetID, 1, 2025).Return(false, nil).Once()
	suite.mockLedger.On("FindLatestRecord", ctx, asset.AssetID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLedger.On("AppendRecords", ctx, mock.AnythingOfType("[]domain.DepreciationRecord")).Return(assert.AnError).Once()

	summary, err := suite.service.Run(ctx, 1, 2025, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrCommitFailed)
	suite.Nil(summary)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestRun_DuplicateCommitRace_AbsorbedAsSkips() {
	ctx := context.Background()
	asset := newTestAsset(domain.MethodStraightLine, "1200", "0", 1)

	suite.mockAssets.On("ListDepreciableAssets", ctx).Return([]domain.Asset{asset}, nil).Once()
	// First staging pass finds nothing; the commit then collides with a
	// concurrent run's record. The second pass sees it and skips.
	suite.mockLedger.On("RecordExists", ctx, asset.AssetID, 1, 2025).Return(false, nil).Once()
	suite.mockLedger.On("FindLatestRecord", ctx, asset.AssetID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLedger.On("AppendRecords", ctx, mock.AnythingOfType("[]domain.DepreciationRecord")).Return(apperrors.ErrDuplicate).Once()
	suite.mockLedger.On("RecordExists", ctx, asset.AssetID, 1, 2025).Return(true, nil).Once()

	summary, err := suite.service.Run(ctx, 1, 2025, "")

	suite.Require().NoError(err)
	suite.Equal(0, summary.ComputedCount)
	suite.Equal(1, summary.SkippedCount)
	suite.Empty(summary.Errors)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestRun_InvalidPeriod() {
	ctx := context.Background()

	for _, period := range []struct{ month, year int }{
		{0, 2025}, {13, 2025}, {-1, 2025}, {6, 1999},
	} {
		summary, err := suite.service.Run(ctx, period.month, period.year, "")
		suite.Require().Error(err)
		suite.ErrorIs(err, services.ErrInvalidPeriod)
		suite.Nil(summary)
	}
	suite.mockAssets.AssertNotCalled(suite.T(), "ListDepreciableAssets", mock.Anything)
}

func (suite *DepreciationServiceTestSuite) TestListRecordsByPeriod_InvalidPeriod() {
	records, err := suite.service.ListRecordsByPeriod(context.Background(), 13, 2025)
	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidPeriod)
	suite.Nil(records)
}

func (suite *DepreciationServiceTestSuite) TestGetLatestRecord_NotFound() {
	ctx := context.Background()
	assetID := uuid.NewString()
	suite.mockLedger.On("FindLatestRecord", ctx, assetID).Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.GetLatestRecord(ctx, assetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(record)
}

func TestDepreciationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepreciationServiceTestSuite))
}
