package dto

import (
	"time"

	"github.com/patrimonia/asset_inventory_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UpdateUserRequest defines the fields a user update may change.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	IsAdmin  *bool   `json:"isAdmin"`
	IsActive *bool   `json:"isActive"`
}

// UserResponse mirrors domain.User for API output.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user to its DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain users to DTOs.
func ToUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// SecurityQuestionResponse mirrors domain.SecurityQuestion.
type SecurityQuestionResponse struct {
	QuestionID string `json:"questionID"`
	Text       string `json:"text"`
}

// SecurityAnswerInput is one plaintext answer supplied by a user.
type SecurityAnswerInput struct {
	QuestionID string `json:"questionID" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// SetSecurityAnswersRequest registers a user's recovery answers.
type SetSecurityAnswersRequest struct {
	Answers []SecurityAnswerInput `json:"answers" binding:"required,min=1,dive"`
}

// ResetPasswordRequest resets a password by answering a security question.
type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	QuestionID  string `json:"questionID" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
