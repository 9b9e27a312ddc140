package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginOutput carries the issued token pair.
type LoginOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// ResetPasswordInput redeems a reset token for a new password.
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// AccountUsecase defines the interface for account management use cases
type AccountUsecase interface {
	// Register creates a new customer account.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login checks credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*LoginOutput, error)

	// RequestPasswordReset issues a reset token and mails it to the user.
	// The response never reveals whether the email exists; clientKey is the
	// caller identity used for rate limiting.
	RequestPasswordReset(ctx context.Context, email, clientKey string) error

	// ResetPassword redeems a valid, unexpired, unused token.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
