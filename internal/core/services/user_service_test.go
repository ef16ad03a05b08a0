package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/core/services"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
)

// MockUserRepository is a mock implementation of portsrepo.UserRepositoryFacade.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ListSecurityQuestions(ctx context.Context) ([]domain.SecurityQuestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SecurityQuestion), args.Error(1)
}

func (m *MockUserRepository) SaveSecurityAnswers(ctx context.Context, userID string, answers []domain.SecurityAnswer) error {
	args := m.Called(ctx, userID, answers)
	return args.Error(0)
}

func (m *MockUserRepository) FindSecurityAnswers(ctx context.Context, userID string) ([]domain.SecurityAnswer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SecurityAnswer), args.Error(1)
}

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func hashOf(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func (suite *UserServiceTestSuite) TestCreateUser_NormalizesUsernameAndHashesPassword() {
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "jdoe" &&
			u.IsActive &&
			u.PasswordHash != "" &&
			u.PasswordHash != "hunter2secret" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2secret")) == nil
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{
		Username: "  JDoe ",
		Name:     "John Doe",
		Password: "hunter2secret",
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("jdoe", user.Username)
	suite.True(user.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	suite.mockRepo.On("SaveUser", suite.ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{
		Username: "jdoe",
		Name:     "John Doe",
		Password: "hunter2secret",
	}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	user := &domain.User{
		UserID:       "user-1",
		Username:     "jdoe",
		PasswordHash: hashOf(suite.T(), "hunter2secret"),
		IsActive:     true,
	}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "jdoe").Return(user, nil).Once()

	got, err := suite.service.Authenticate(suite.ctx, " JDoe ", "hunter2secret")

	suite.Require().NoError(err)
	suite.Equal("user-1", got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	user := &domain.User{
		UserID:       "user-1",
		Username:     "jdoe",
		PasswordHash: hashOf(suite.T(), "hunter2secret"),
		IsActive:     true,
	}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "jdoe").Return(user, nil).Once()

	_, err := suite.service.Authenticate(suite.ctx, "jdoe", "wrong-password")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserAndInactiveUserLookTheSame() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	_, errUnknown := suite.service.Authenticate(suite.ctx, "ghost", "whatever123")

	inactive := &domain.User{
		UserID:       "user-2",
		Username:     "retired",
		PasswordHash: hashOf(suite.T(), "hunter2secret"),
		IsActive:     false,
	}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "retired").Return(inactive, nil).Once()
	_, errInactive := suite.service.Authenticate(suite.ctx, "retired", "hunter2secret")

	suite.ErrorIs(errUnknown, services.ErrInvalidCredentials)
	suite.ErrorIs(errInactive, services.ErrInvalidCredentials)
	suite.Equal(errUnknown.Error(), errInactive.Error())
}

func (suite *UserServiceTestSuite) TestRequireAdmin() {
	admin := &domain.User{UserID: "admin-1", IsAdmin: true, IsActive: true}
	regular := &domain.User{UserID: "user-1", IsAdmin: false, IsActive: true}
	inactiveAdmin := &domain.User{UserID: "admin-2", IsAdmin: true, IsActive: false}

	suite.mockRepo.On("FindUserByID", suite.ctx, "admin-1").Return(admin, nil).Once()
	suite.mockRepo.On("FindUserByID", suite.ctx, "user-1").Return(regular, nil).Once()
	suite.mockRepo.On("FindUserByID", suite.ctx, "admin-2").Return(inactiveAdmin, nil).Once()
	suite.mockRepo.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.RequireAdmin(suite.ctx, "admin-1"))
	suite.ErrorIs(suite.service.RequireAdmin(suite.ctx, "user-1"), apperrors.ErrForbidden)
	suite.ErrorIs(suite.service.RequireAdmin(suite.ctx, "admin-2"), apperrors.ErrForbidden)
	suite.ErrorIs(suite.service.RequireAdmin(suite.ctx, "ghost"), apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestResetPasswordWithAnswer_Success() {
	user := &domain.User{
		UserID:       "user-1",
		Username:     "jdoe",
		PasswordHash: hashOf(suite.T(), "old-password"),
		IsActive:     true,
	}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "jdoe").Return(user, nil).Once()
	suite.mockRepo.On("FindSecurityAnswers", suite.ctx, "user-1").Return([]domain.SecurityAnswer{
		{UserID: "user-1", QuestionID: "q-1", AnswerHash: hashOf(suite.T(), "fluffy")},
	}, nil).Once()
	suite.mockRepo.On("UpdateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-password-123")) == nil &&
			u.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	err := suite.service.ResetPasswordWithAnswer(suite.ctx, dto.ResetPasswordRequest{
		Username:    "jdoe",
		QuestionID:  "q-1",
		Answer:      "  Fluffy ", // normalization must make this match
		NewPassword: "new-password-123",
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResetPasswordWithAnswer_WrongAnswer() {
	user := &domain.User{
		UserID:       "user-1",
		Username:     "jdoe",
		PasswordHash: hashOf(suite.T(), "old-password"),
	}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "jdoe").Return(user, nil).Once()
	suite.mockRepo.On("FindSecurityAnswers", suite.ctx, "user-1").Return([]domain.SecurityAnswer{
		{UserID: "user-1", QuestionID: "q-1", AnswerHash: hashOf(suite.T(), "fluffy")},
	}, nil).Once()

	err := suite.service.ResetPasswordWithAnswer(suite.ctx, dto.ResetPasswordRequest{
		Username:    "jdoe",
		QuestionID:  "q-1",
		Answer:      "rex",
		NewPassword: "new-password-123",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestSetSecurityAnswers_HashesEveryAnswer() {
	suite.mockRepo.On("SaveSecurityAnswers", suite.ctx, "user-1", mock.MatchedBy(func(answers []domain.SecurityAnswer) bool {
		if len(answers) != 2 {
			return false
		}
		for _, a := range answers {
			if a.AnswerHash == "" || a.AnswerHash == "fluffy" || a.AnswerHash == "caracas" {
				return false
			}
		}
		return bcrypt.CompareHashAndPassword([]byte(answers[0].AnswerHash), []byte("fluffy")) == nil
	})).Return(nil).Once()

	err := suite.service.SetSecurityAnswers(suite.ctx, "user-1", dto.SetSecurityAnswersRequest{
		Answers: []dto.SecurityAnswerInput{
			{QuestionID: "q-1", Answer: "Fluffy"},
			{QuestionID: "q-2", Answer: "Caracas "},
		},
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}
