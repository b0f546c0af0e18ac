package impl

import (
	"context"
	"log/slog"
	"time"

	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/domain/service"
	"groove/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. Refresh tokens are
// single-use: every exchange revokes the presented token and issues a new one.
type authService struct {
	core
	hasher       service.PasswordHasher
	tokenService service.TokenService
	now          func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(txManager repository.TransactionManager, hasher service.PasswordHasher,
	tokenService service.TokenService, logger *slog.Logger) usecase.AuthUsecase {

	return &authService{
		core:         core{txManager: txManager, logger: logger},
		hasher:       hasher,
		tokenService: tokenService,
		now:          time.Now,
	}
}

func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Registering new account", slog.String("email", input.Email))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     entity.RoleUser,
	}
	if err := user.Validate(); err != nil {
		return nil, validationError(err)
	}

	var out *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(f repository.Factory) error {
		// The unique index on email backs this up; the early check just
		// yields a friendlier error outside the race window.
		if _, err := f.Users().FindByEmail(ctx, input.Email); err == nil {
			return errors.WithStack(domainerrors.ErrEmailTaken)
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		if err := f.Users().Create(ctx, user); err != nil {
			return err
		}

		output, err := srv.issueTokens(ctx, f, user)
		if err != nil {
			return err
		}
		out = output

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("email", input.Email))

	var out *usecase.AuthOutput
	err := srv.txManager.Execute(ctx, func(f repository.Factory) error {
		user, err := f.Users().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrInvalidCredentials)
			}

			return err
		}
		if !srv.hasher.Check(input.Password, user.Password) {
			return errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		output, err := srv.issueTokens(ctx, f, user)
		if err != nil {
			return err
		}
		out = output

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.AuthOutput, error) {
	var out *usecase.AuthOutput
	err := srv.txManager.Execute(ctx, func(f repository.Factory) error {
		session, err := f.RefreshTokens().FindByToken(ctx, input.RefreshToken)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
			}

			return err
		}
		if !session.Active(srv.now()) {
			return errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
		}

		user, err := f.Users().FindByID(ctx, session.UserID)
		if err != nil {
			// The owning account is gone; the session is worthless.
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
			}

			return err
		}

		// Rotation: the presented token is spent before its replacement is issued.
		session.Revoked = true
		if err := f.RefreshTokens().Update(ctx, session); err != nil {
			return err
		}

		output, err := srv.issueTokens(ctx, f, user)
		if err != nil {
			return err
		}
		output.User = nil
		out = output

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	return srv.txManager.Execute(ctx, func(f repository.Factory) error {
		session, err := f.RefreshTokens().FindByToken(ctx, input.RefreshToken)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
			}

			return err
		}
		if session.Revoked {
			return nil
		}

		session.Revoked = true

		return f.RefreshTokens().Update(ctx, session)
	})
}

// issueTokens signs a token pair for the user and persists the refresh session.
func (srv *authService) issueTokens(ctx context.Context, f repository.Factory, user *entity.User) (*usecase.AuthOutput, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: srv.now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := f.RefreshTokens().Create(ctx, session); err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
