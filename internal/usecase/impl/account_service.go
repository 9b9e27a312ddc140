package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	resetRepo    repository.PasswordResetRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	resetTokens  service.ResetTokenService
	mailer       service.Mailer
	rateLimiter  service.RateLimiter
	resetConfig  *config.PasswordResetConfig
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ResetRepo    repository.PasswordResetRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	ResetTokens  service.ResetTokenService
	Mailer       service.Mailer
	RateLimiter  service.RateLimiter
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		resetRepo:    params.ResetRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		resetTokens:  params.ResetTokens,
		mailer:       params.Mailer,
		rateLimiter:  params.RateLimiter,
		resetConfig:  params.Config.PasswordReset,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new customer account.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Roles:        []entity.Role{entity.RoleCustomer},
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// The unique index may still fire under a concurrent registration.
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return user, nil
}

// Login checks credentials and issues a token pair. A missing user and a
// wrong password produce the same error.
func (srv *accountService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Strings(user.Roles))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RequestPasswordReset issues a reset token and mails it. The outcome is
// identical whether or not the email exists, so the endpoint cannot be used
// to enumerate accounts.
func (srv *accountService) RequestPasswordReset(ctx context.Context, email, clientKey string) error {
	allowed, err := srv.rateLimiter.Allow(ctx,
		fmt.Sprintf("pwreset:%s", clientKey),
		srv.resetConfig.MaxAttempts,
		srv.resetConfig.Window,
	)
	if err != nil {
		return errors.Wrap(err, "rate limit check failed")
	}
	if !allowed {
		return domainerrors.ErrRateLimited
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password reset requested for unknown email")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	// Earlier tokens stop working the moment a new one is issued.
	if err := srv.resetRepo.InvalidateForUser(ctx, user.ID); err != nil {
		return errors.Wrap(err, "failed to invalidate previous reset tokens")
	}

	raw, digest, err := srv.resetTokens.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	token := &entity.PasswordResetToken{
		UserID:      user.ID,
		TokenDigest: digest,
		ExpiresAt:   time.Now().Add(srv.resetConfig.TokenTTL),
	}
	if err := srv.resetRepo.Create(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nUse the link below to reset your password. It expires in %s.\n\n%s?token=%s\n\nIf you did not request this, ignore this message.\n",
		user.Name,
		srv.resetConfig.TokenTTL,
		srv.resetConfig.ResetURL,
		raw,
	)
	if err := srv.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		return errors.Wrap(err, "failed to send reset mail")
	}

	srv.log(ctx).Info("Password reset token issued", slog.String("userID", user.ID.String()))

	return nil
}

// ResetPassword redeems a valid, unexpired, unused token. Tokens are single
// use and all sibling tokens are voided on success.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	digest := srv.resetTokens.Digest(input.Token)

	token, err := srv.resetRepo.FindByDigest(ctx, digest)
	if errors.Is(err, repository.ErrResetTokenNotFound) {
		return domainerrors.ErrResetTokenInvalid
	}
	if err != nil {
		return errors.Wrap(err, "failed to find reset token")
	}

	if token.Used() || token.Expired(time.Now()) {
		return domainerrors.ErrResetTokenInvalid
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	if err := srv.resetRepo.MarkUsed(ctx, token.ID); err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			// Lost the race with another redemption of the same token.
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to mark reset token used")
	}

	if err := srv.userRepo.UpdatePassword(ctx, token.UserID, hash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	if err := srv.resetRepo.InvalidateForUser(ctx, token.UserID); err != nil {
		return errors.Wrap(err, "failed to invalidate remaining reset tokens")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("userID", token.UserID.String()))

	return nil
}
