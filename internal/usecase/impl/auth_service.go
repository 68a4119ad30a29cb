// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp hashes the password, stores the user and issues a token for it.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting sign up", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "sign up failed")
	}

	newUser := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
	}

	// The unique email index decides duplicates; there is no check-then-insert.
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Sign up rejected, email already registered", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("sign up failed")
		}

		return nil, errors.Wrap(err, "failed to create user during sign up")
	}

	token, err := srv.issueToken(ctx, newUser.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.String("userID", newUser.ID))

	return &usecase.TokenOutput{Token: token}, nil
}

// Login verifies the credentials and issues a token. Unknown emails and wrong
// passwords produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.String("userID", user.ID))

	return &usecase.TokenOutput{Token: token}, nil
}

// Authenticate validates the token and loads the user it names.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid or expired token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token refers to unknown user", slog.String("userID", claims.ID))

			return nil, domainerrors.ErrUnauthorized.WrapMessage("token user not found")
		}

		return nil, errors.Wrap(err, "failed to load authenticated user")
	}

	return user, nil
}

func (srv *authService) issueToken(ctx context.Context, userID string) (string, error) {
	token, err := srv.tokenService.GenerateToken(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.String("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenGenerationFailed, "failed to generate token")
	}

	return token, nil
}
