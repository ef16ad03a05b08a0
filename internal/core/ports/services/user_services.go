package services

import (
	"context"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
	"github.com/patrimonia/asset_inventory_app/internal/dto"
)

// UserSvcFacade manages users, authentication and password recovery.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, username string, password string) (*domain.User, error)

	// RequireAdmin returns apperrors.ErrForbidden unless the user is an active admin.
	RequireAdmin(ctx context.Context, userID string) error

	ListSecurityQuestions(ctx context.Context) ([]domain.SecurityQuestion, error)
	SetSecurityAnswers(ctx context.Context, userID string, req dto.SetSecurityAnswersRequest) error
	ResetPasswordWithAnswer(ctx context.Context, req dto.ResetPasswordRequest) error
}

// ReportingSvcFacade exposes aggregate figures for dashboards.
type ReportingSvcFacade interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
