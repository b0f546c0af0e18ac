package impl

import (
	"context"
	"testing"
	"time"

	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/domain/service"
	"groove/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubTokenService issues predictable token strings.
type stubTokenService struct{}

func (stubTokenService) GenerateTokens(userID uuid.UUID, _ entity.Role) (string, string, error) {
	return "access-" + userID.String(), "refresh-" + uuid.NewString(), nil
}

func (stubTokenService) ValidateAccessToken(string) (*service.Claims, error) {
	return nil, domainerrors.ErrUnauthorized
}

func (stubTokenService) RefreshTokenDuration() time.Duration { return 30 * 24 * time.Hour }

func newAuthService(fx testFixtures) usecase.AuthUsecase {
	return NewAuthService(fx.txManager, stubHasher{}, stubTokenService{}, fx.logger)
}

func TestAuthService_Register_CreatesUserAndSession(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	fx.factory.UserRepo.On("FindByEmail", mock.Anything, "jo@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.factory.UserRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.factory.RefreshTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	out, err := service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	fx.factory.RefreshTokenRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	fx.factory.UserRepo.On("FindByEmail", mock.Anything, "jo@example.com").
		Return(&entity.User{ID: uuid.New()}, nil)

	_, err := service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "password123",
	})

	requireAppError(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	userID := uuid.New()
	fx.factory.UserRepo.On("FindByEmail", mock.Anything, "jo@example.com").
		Return(&entity.User{ID: userID, Email: "jo@example.com", Password: "hashed:password123", Role: entity.RoleUser}, nil)
	fx.factory.RefreshTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	out, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "jo@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, out.User.ID)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	fx.factory.UserRepo.On("FindByEmail", mock.Anything, "jo@example.com").
		Return(&entity.User{ID: uuid.New(), Password: "hashed:password123"}, nil)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "jo@example.com",
		Password: "wrong",
	})

	requireAppError(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	fx.factory.UserRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	requireAppError(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_RotatesSession(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	userID := uuid.New()
	session := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     "refresh-old",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.factory.RefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-old").Return(session, nil)
	fx.factory.UserRepo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)
	fx.factory.RefreshTokenRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *entity.RefreshToken) bool {
		return s.Revoked
	})).Return(nil)
	fx.factory.RefreshTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	out, err := service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "refresh-old"})

	require.NoError(t, err)
	assert.Nil(t, out.User)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEqual(t, "refresh-old", out.RefreshToken)
	fx.factory.RefreshTokenRepo.AssertExpectations(t)
}

func TestAuthService_Refresh_RejectsExpiredSession(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	session := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Token:     "refresh-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	fx.factory.RefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-old").Return(session, nil)

	_, err := service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "refresh-old"})

	requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_RejectsRevokedSession(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	session := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Token:     "refresh-old",
		ExpiresAt: time.Now().Add(time.Hour),
		Revoked:   true,
	}
	fx.factory.RefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-old").Return(session, nil)

	_, err := service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "refresh-old"})

	requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	fx.factory.RefreshTokenRepo.On("FindByToken", mock.Anything, "bogus").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "bogus"})

	requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	session := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Token:     "refresh-old",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	fx.factory.RefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-old").Return(session, nil)
	fx.factory.RefreshTokenRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *entity.RefreshToken) bool {
		return s.Revoked
	})).Return(nil)

	err := service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "refresh-old"})

	require.NoError(t, err)
	fx.factory.RefreshTokenRepo.AssertExpectations(t)
}

func TestAuthService_Logout_IdempotentOnRevokedSession(t *testing.T) {
	fx := newTestFixtures()
	service := newAuthService(fx)

	session := &entity.RefreshToken{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		Token:   "refresh-old",
		Revoked: true,
	}
	fx.factory.RefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-old").Return(session, nil)

	err := service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "refresh-old"})

	require.NoError(t, err)
	fx.factory.RefreshTokenRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
