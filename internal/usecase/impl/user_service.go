package impl

import (
	"context"
	"log/slog"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/domain/service"
	"groove/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface. Account creation through
// this path is admin-only; self-service signup lives in authService.
type userService struct {
	core
	hasher service.PasswordHasher
}

// NewUserService is the constructor for userService.
func NewUserService(txManager repository.TransactionManager, hasher service.PasswordHasher, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		core:   core{txManager: txManager, logger: logger},
		hasher: hasher,
	}
}

func userRepo(f repository.Factory) repository.Crud[entity.User] { return f.Users() }

func (srv *userService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := authz.Require(actor, authz.PermManageUsers); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Creating user account", slog.String("email", input.Email))

	role := entity.Role(input.Role)
	if role == "" {
		role = entity.RoleUser
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     role,
	}
	if err := user.Validate(); err != nil {
		return nil, validationError(err)
	}

	err = srv.txManager.Execute(ctx, func(f repository.Factory) error {
		// The unique index on email backs this up; the early check just
		// yields a friendlier error outside the race window.
		if _, err := f.Users().FindByEmail(ctx, input.Email); err == nil {
			return errors.WithStack(domainerrors.ErrEmailTaken)
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		return f.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *userService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.User, error) {
	return getOwned(ctx, &srv.core, actor, userRepo, id, authz.UserOwner{})
}

func (srv *userService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.User], error) {
	return listCatalog(ctx, &srv.core, actor, authz.PermGetUsers, userRepo, q)
}

func (srv *userService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user account", slog.Any("userID", id))

	// Role changes are an admin privilege even on one's own account.
	if input.Role != nil && actor.Role != entity.RoleAdmin {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	var hashed string
	if input.Password != nil {
		h, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		hashed = h
	}

	return updateOwned(ctx, &srv.core, actor, userRepo, id, authz.UserOwner{},
		func(u *entity.User) error {
			if input.Name != nil {
				u.Name = *input.Name
			}
			if input.Email != nil {
				u.Email = *input.Email
			}
			if input.Password != nil {
				u.Password = hashed
			}
			if input.Role != nil {
				u.Role = entity.Role(*input.Role)
			}

			return nil
		},
		func(u *entity.User) error { return u.Validate() },
		nil,
	)
}

func (srv *userService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting user account", slog.Any("userID", id))

	return deleteOwned(ctx, &srv.core, actor, id, authz.UserOwner{}, deleteUserCascade)
}
