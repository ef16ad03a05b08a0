package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/patrimonia/asset_inventory_app/internal/apperrors"
	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	portsrepo "github.com/patrimonia/asset_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
	"github.com/patrimonia/asset_inventory_app/internal/middleware"
)

// ErrInvalidCredentials covers bad username/password and wrong security
// answers alike, so callers cannot probe which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// userService manages users, authentication and password recovery.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user management service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser implements portssvc.UserSvcFacade.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, user.Username)
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User created", slog.String("new_user_id", user.UserID))
	return &user, nil
}

// GetUserByID implements portssvc.UserSvcFacade.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers implements portssvc.UserSvcFacade.
func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser implements portssvc.UserSvcFacade.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

// Authenticate implements portssvc.UserSvcFacade.
func (s *userService) Authenticate(ctx context.Context, username string, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// RequireAdmin implements portssvc.UserSvcFacade.
func (s *userService) RequireAdmin(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	if !user.IsActive || !user.IsAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}

// ListSecurityQuestions implements portssvc.UserSvcFacade.
func (s *userService) ListSecurityQuestions(ctx context.Context) ([]domain.SecurityQuestion, error) {
	questions, err := s.userRepo.ListSecurityQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list security questions: %w", err)
	}
	return questions, nil
}

// SetSecurityAnswers implements portssvc.UserSvcFacade. Answers are
// normalized (trimmed, lowercased) before hashing so the later comparison is
// insensitive to casing and stray whitespace.
func (s *userService) SetSecurityAnswers(ctx context.Context, userID string, req dto.SetSecurityAnswersRequest) error {
	answers := make([]domain.SecurityAnswer, 0, len(req.Answers))
	for _, in := range req.Answers {
		hash, err := bcrypt.GenerateFromPassword([]byte(normalizeAnswer(in.Answer)), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash security answer: %w", err)
		}
		answers = append(answers, domain.SecurityAnswer{
			UserID:     userID,
			QuestionID: in.QuestionID,
			AnswerHash: string(hash),
		})
	}

	if err := s.userRepo.SaveSecurityAnswers(ctx, userID, answers); err != nil {
		return fmt.Errorf("failed to save security answers: %w", err)
	}
	return nil
}

// ResetPasswordWithAnswer implements portssvc.UserSvcFacade.
func (s *userService) ResetPasswordWithAnswer(ctx context.Context, req dto.ResetPasswordRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	answers, err := s.userRepo.FindSecurityAnswers(ctx, user.UserID)
	if err != nil {
		return fmt.Errorf("failed to load security answers: %w", err)
	}

	var matched bool
	for _, a := range answers {
		if a.QuestionID != req.QuestionID {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.AnswerHash), []byte(normalizeAnswer(req.Answer))) == nil {
			matched = true
		}
		break
	}
	if !matched {
		logger.Warn("Password reset attempt with wrong security answer", slog.String("user_id", user.UserID))
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password reset via security question", slog.String("user_id", user.UserID))
	return nil
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
