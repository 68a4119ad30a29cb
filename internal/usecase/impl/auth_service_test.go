package impl

import (
	"context"
	"testing"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	mockRepo "bookstore/internal/mocks/repository"
	mockSvc "bookstore/internal/mocks/service"
	"bookstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignUpInput{Name: "Ann", Email: "ann@x.io", Password: "secret1"}

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "Ann" && u.Email == "ann@x.io" && u.Password == "hashed"
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = "user-1" }).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken("user-1").Return("token-1", nil)

	out, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-1", out.Token)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	out, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Name: "Ann", Email: "ann@x.io", Password: "secret1"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_SignUp_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("boom"))

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{Name: "Ann", Email: "ann@x.io", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_SignUp_TokenFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tokenService.EXPECT().GenerateToken(mock.Anything).Return("", errors.New("sign failed"))

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Name: "Ann", Email: "ann@x.io", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenGenerationFailed)
}

func TestAuthService_SignUp_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert user")

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(storeErr)

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Name: "Ann", Email: "ann@x.io", Password: "secret1"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "user-1", Email: "ann@x.io", Password: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ann@x.io").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken("user-1").Return("token-1", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ann@x.io", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "token-1", out.Token)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.io").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.io", Password: "secret1"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		user := &entity.User{ID: "user-1", Email: "ann@x.io", Password: "hashed"}

		fx.userRepo.EXPECT().FindByEmail(ctx, "ann@x.io").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong-pass", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ann@x.io", Password: "wrong-pass"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ann@x.io", Password: "secret1"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		user := &entity.User{ID: "user-1"}

		fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{ID: "user-1"}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, "user-1").Return(user, nil)

		got, err := fx.service.Authenticate(ctx, "good")

		require.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

		got, err := fx.service.Authenticate(context.Background(), "bad")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("orphan").Return(&service.Claims{ID: "gone"}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(ctx, "orphan")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
