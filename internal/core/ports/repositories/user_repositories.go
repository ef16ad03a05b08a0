package repositories

import (
	"context"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

// UserRepositoryFacade defines persistence for users and their recovery data.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	// Security questions catalog and per-user hashed answers.
	ListSecurityQuestions(ctx context.Context) ([]domain.SecurityQuestion, error)
	SaveSecurityAnswers(ctx context.Context, userID string, answers []domain.SecurityAnswer) error
	FindSecurityAnswers(ctx context.Context, userID string) ([]domain.SecurityAnswer, error)
}
