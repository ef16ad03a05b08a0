package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/core/services"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
)

// MockMovementRepository is a mock implementation of portsrepo.MovementRepositoryFacade.
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) SaveMovementWithAssetUpdate(ctx context.Context, movement domain.AssetMovement, updatedAsset domain.Asset) error {
	args := m.Called(ctx, movement, updatedAsset)
	return args.Error(0)
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.AssetMovement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetMovement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filter portsrepo.MovementListFilter, limit int, offset int) ([]domain.AssetMovement, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetMovement), args.Error(1)
}

type MovementServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockAssetRepo    *MockAssetReader
	service          portssvc.MovementSvcFacade
	ctx              context.Context
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockAssetRepo = new(MockAssetReader)
	suite.service = services.NewMovementService(suite.mockMovementRepo, suite.mockAssetRepo)
	suite.ctx = context.Background()
}

func TestMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}

func custodyAsset(status domain.AssetStatus) *domain.Asset {
	unitID := "unit-a"
	return &domain.Asset{
		AssetID:          "asset-1",
		PatrimonialCode:  "BM-2025-00001",
		Description:      "Projector",
		UnitID:           &unitID,
		CustodianName:    "Alice",
		PhysicalLocation: "Room 101",
		AcquisitionValue: decimal.RequireFromString("500.00"),
		Status:           status,
	}
}

func (suite *MovementServiceTestSuite) TestCreateMovement_TransferAppliesSideEffects() {
	asset := custodyAsset(domain.StatusGood)
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()

	toUnit := "unit-b"
	suite.mockMovementRepo.On("SaveMovementWithAssetUpdate", suite.ctx,
		mock.MatchedBy(func(m domain.AssetMovement) bool {
			return m.Type == domain.MovementTransfer &&
				m.FromUnitID != nil && *m.FromUnitID == "unit-a" &&
				m.ToUnitID != nil && *m.ToUnitID == "unit-b" &&
				m.PreviousCustodian == "Alice" && m.NewCustodian == "Bob" &&
				m.PreviousLocation == "Room 101" && m.NewLocation == "Room 202"
		}),
		mock.MatchedBy(func(a domain.Asset) bool {
			return a.UnitID != nil && *a.UnitID == "unit-b" &&
				a.CustodianName == "Bob" && a.PhysicalLocation == "Room 202"
		}),
	).Return(nil).Once()

	movement, err := suite.service.CreateMovement(suite.ctx, dto.CreateMovementRequest{
		AssetID:      "asset-1",
		Type:         domain.MovementTransfer,
		ToUnitID:     &toUnit,
		NewCustodian: "Bob",
		NewLocation:  "Room 202",
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(movement.MovementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestCreateMovement_TransferMustChangeSomething() {
	asset := custodyAsset(domain.StatusGood)
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()

	_, err := suite.service.CreateMovement(suite.ctx, dto.CreateMovementRequest{
		AssetID: "asset-1",
		Type:    domain.MovementTransfer,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovementWithAssetUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_TransferOfDeaccessionedAssetRejected() {
	asset := custodyAsset(domain.StatusDeaccessioned)
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()

	toUnit := "unit-b"
	_, err := suite.service.CreateMovement(suite.ctx, dto.CreateMovementRequest{
		AssetID:  "asset-1",
		Type:     domain.MovementTransfer,
		ToUnitID: &toUnit,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_DeaccessionSetsStatusAndRequiresReason() {
	asset := custodyAsset(domain.StatusGood)
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Twice()

	_, err := suite.service.CreateMovement(suite.ctx, dto.CreateMovementRequest{
		AssetID: "asset-1",
		Type:    domain.MovementDeaccession,
	}, "user-1")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockMovementRepo.On("SaveMovementWithAssetUpdate", suite.ctx,
		mock.MatchedBy(func(m domain.AssetMovement) bool {
			return m.NewStatus != nil && *m.NewStatus == domain.StatusDeaccessioned && m.Reason == "Damaged beyond repair"
		}),
		mock.MatchedBy(func(a domain.Asset) bool {
			return a.Status == domain.StatusDeaccessioned
		}),
	).Return(nil).Once()

	movement, err := suite.service.CreateMovement(suite.ctx, dto.CreateMovementRequest{
		AssetID: "asset-1",
		Type:    domain.MovementDeaccession,
		Reason:  "Damaged beyond repair",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.MovementDeaccession, movement.Type)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestCreateMovement_IncorporationRestoresDeaccessionedAsset() {
	asset := custodyAsset(domain.StatusDeaccessioned)
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()

	suite.mockMovementRepo.On("SaveMovementWithAssetUpdate", suite.ctx,
		mock.AnythingOfType("domain.AssetMovement"),
		mock.MatchedBy(func(a domain.Asset) bool {
			return a.Status == domain.StatusGood
		}),
	).Return(nil).Once()

	movement, err := suite.service.CreateMovement(suite.ctx, dto.CreateMovementRequest{
		AssetID: "asset-1",
		Type:    domain.MovementIncorporation,
	}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(movement.NewStatus)
	suite.Equal(domain.StatusGood, *movement.NewStatus)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestCreateMovement_IncorporationOfActiveAssetRejected() {
	asset := custodyAsset(domain.StatusGood)
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()

	_, err := suite.service.CreateMovement(suite.ctx, dto.CreateMovementRequest{
		AssetID: "asset-1",
		Type:    domain.MovementIncorporation,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_StatusUpdateRequiresNewStatus() {
	asset := custodyAsset(domain.StatusGood)
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()

	_, err := suite.service.CreateMovement(suite.ctx, dto.CreateMovementRequest{
		AssetID: "asset-1",
		Type:    domain.MovementStatusUpdate,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_StatusUpdateAppliesStatus() {
	asset := custodyAsset(domain.StatusGood)
	suite.mockAssetRepo.On("FindAssetByID", suite.ctx, "asset-1").Return(asset, nil).Once()

	obsolete := domain.StatusObsolete
	suite.mockMovementRepo.On("SaveMovementWithAssetUpdate", suite.ctx,
		mock.AnythingOfType("domain.AssetMovement"),
		mock.MatchedBy(func(a domain.Asset) bool {
			return a.Status == domain.StatusObsolete
		}),
	).Return(nil).Once()

	_, err := suite.service.CreateMovement(suite.ctx, dto.CreateMovementRequest{
		AssetID:   "asset-1",
		Type:      domain.MovementStatusUpdate,
		NewStatus: &obsolete,
	}, "user-1")

	suite.Require().NoError(err)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestListMovements_RejectsUnknownTypeFilter() {
	_, err := suite.service.ListMovements(suite.ctx, portsrepo.MovementListFilter{Type: "TELEPORT"}, 20, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "ListMovements", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
