package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/core/services"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
)

// MockAssetRepository is a mock implementation of portsrepo.AssetRepositoryFacade.
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetByCode(ctx context.Context, patrimonialCode string) (*domain.Asset, error) {
	args := m.Called(ctx, patrimonialCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, filter portsrepo.AssetListFilter, limit int, offset int) ([]domain.Asset, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListDepreciableAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) NextPatrimonialSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type AssetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAssetRepository
	service  portssvc.AssetSvcFacade
	ctx      context.Context
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAssetRepository)
	suite.service = services.NewAssetService(suite.mockRepo, "BM")
	suite.ctx = context.Background()
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}

func validCreateRequest() dto.CreateAssetRequest {
	return dto.CreateAssetRequest{
		Description:       "Executive desk",
		AcquisitionReason: domain.AcquisitionDirectPurchase,
		AcquisitionValue:  decimal.RequireFromString("350.00"),
		PhysicalLocation:  "Main warehouse",
	}
}

func (suite *AssetServiceTestSuite) TestCreateAsset_GeneratesPatrimonialCode() {
	req := validCreateRequest()
	suite.mockRepo.On("NextPatrimonialSequence", suite.ctx).Return(int64(42), nil).Once()
	suite.mockRepo.On("SaveAsset", suite.ctx, mock.AnythingOfType("domain.Asset")).Return(nil).Once()

	asset, err := suite.service.CreateAsset(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	expectedCode := fmt.Sprintf("BM-%d-00042", time.Now().Year())
	suite.Equal(expectedCode, asset.PatrimonialCode)
	suite.NotEmpty(asset.AssetID)
	suite.Equal(domain.StatusNew, asset.Status)
	suite.Equal(1, asset.Quantity)
	suite.True(asset.ResidualValue.IsZero())
	suite.Equal("user-1", asset.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestCreateAsset_RejectsNonPositiveAcquisitionValue() {
	req := validCreateRequest()
	req.AcquisitionValue = decimal.Zero

	_, err := suite.service.CreateAsset(suite.ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_RejectsResidualAboveAcquisition() {
	req := validCreateRequest()
	residual := decimal.RequireFromString("400.00")
	req.ResidualValue = &residual

	_, err := suite.service.CreateAsset(suite.ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_RejectsMethodWithoutUsefulLife() {
	req := validCreateRequest()
	method := domain.MethodStraightLine
	req.Method = &method

	_, err := suite.service.CreateAsset(suite.ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_RejectsDeaccessionedAsInitialStatus() {
	req := validCreateRequest()
	req.Status = domain.StatusDeaccessioned

	_, err := suite.service.CreateAsset(suite.ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_MergesOnlyProvidedFields() {
	existing := &domain.Asset{
		AssetID:          "asset-1",
		PatrimonialCode:  "BM-2025-00001",
		Description:      "Old description",
		Brand:            "Acme",
		Quantity:         1,
		AcquisitionValue: decimal.RequireFromString("100.00"),
		Status:           domain.StatusGood,
	}
	suite.mockRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAsset", suite.ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Description == "New description" && a.Brand == "Acme" && a.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	newDescription := "New description"
	updated, err := suite.service.UpdateAsset(suite.ctx, "asset-1", dto.UpdateAssetRequest{Description: &newDescription}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("New description", updated.Description)
	suite.Equal("Acme", updated.Brand)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_DeaccessionedAssetIsReadOnly() {
	existing := &domain.Asset{
		AssetID: "asset-1",
		Status:  domain.StatusDeaccessioned,
	}
	suite.mockRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(existing, nil).Once()

	newDescription := "New description"
	_, err := suite.service.UpdateAsset(suite.ctx, "asset-1", dto.UpdateAssetRequest{Description: &newDescription}, "user-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_RejectsDirectDeaccession() {
	existing := &domain.Asset{
		AssetID: "asset-1",
		Status:  domain.StatusGood,
	}
	suite.mockRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(existing, nil).Once()

	deaccessioned := domain.StatusDeaccessioned
	_, err := suite.service.UpdateAsset(suite.ctx, "asset-1", dto.UpdateAssetRequest{Status: &deaccessioned}, "user-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssetServiceTestSuite) TestListAssets_RejectsUnknownStatusFilter() {
	_, err := suite.service.ListAssets(suite.ctx, portsrepo.AssetListFilter{Status: "BROKEN"}, 20, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAssets", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestGetAssetByID_NotFound() {
	suite.mockRepo.On("FindAssetByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAssetByID(suite.ctx, "missing")

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}
