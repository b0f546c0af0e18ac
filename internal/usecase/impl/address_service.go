package impl

import (
	"context"
	"log/slog"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	"groove/internal/domain/repository"
	"groove/internal/usecase"

	"github.com/google/uuid"
)

// userAddressService implements the UserAddressUsecase interface.
type userAddressService struct {
	core
}

// NewUserAddressService is the constructor for userAddressService.
func NewUserAddressService(txManager repository.TransactionManager, logger *slog.Logger) usecase.UserAddressUsecase {
	return &userAddressService{core{txManager: txManager, logger: logger}}
}

func addressRepo(f repository.Factory) repository.Crud[entity.UserAddress] {
	return f.UserAddresses()
}

func (srv *userAddressService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateUserAddressInput) (*entity.UserAddress, error) {
	ownerID, err := resolveOwnerID(actor, input.UserID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Creating shipping address", slog.Any("userID", ownerID))

	addr := &entity.UserAddress{
		UserID:       ownerID,
		StreetName:   input.StreetName,
		StreetNumber: input.StreetNumber,
		PostalCode:   input.PostalCode,
		City:         input.City,
		State:        input.State,
		Country:      input.Country,
	}
	if err := addr.Validate(); err != nil {
		return nil, validationError(err)
	}

	err = srv.txManager.Execute(ctx, func(f repository.Factory) error {
		if _, err := f.Users().FindByID(ctx, ownerID); err != nil {
			return mapRepoError(err)
		}

		return f.UserAddresses().Create(ctx, addr)
	})
	if err != nil {
		return nil, err
	}

	return addr, nil
}

func (srv *userAddressService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.UserAddress, error) {
	return getOwned(ctx, &srv.core, actor, addressRepo, id, authz.UserAddressOwner{})
}

func (srv *userAddressService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.UserAddress], error) {
	return listOwned(ctx, &srv.core, actor, addressRepo, q)
}

func (srv *userAddressService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateUserAddressInput) (*entity.UserAddress, error) {
	srv.log(ctx).Info("Updating shipping address", slog.Any("addressID", id))

	if err := requireOwnerReassignAdmin(actor, input.UserID); err != nil {
		return nil, err
	}

	return updateOwned(ctx, &srv.core, actor, addressRepo, id, authz.UserAddressOwner{},
		func(a *entity.UserAddress) error {
			if input.UserID != nil {
				a.UserID = *input.UserID
			}
			if input.StreetName != nil {
				a.StreetName = *input.StreetName
			}
			if input.StreetNumber != nil {
				a.StreetNumber = *input.StreetNumber
			}
			if input.PostalCode != nil {
				a.PostalCode = *input.PostalCode
			}
			if input.City != nil {
				a.City = *input.City
			}
			if input.State != nil {
				a.State = *input.State
			}
			if input.Country != nil {
				a.Country = *input.Country
			}

			return nil
		},
		func(a *entity.UserAddress) error { return a.Validate() },
		func(a *entity.UserAddress) refCheck {
			if input.UserID == nil {
				return nil
			}

			return ownerExists(a.UserID)
		},
	)
}

func (srv *userAddressService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting shipping address", slog.Any("addressID", id))

	// Addresses have no dependents; the cascade is a plain delete.
	return deleteOwned(ctx, &srv.core, actor, id, authz.UserAddressOwner{},
		func(ctx context.Context, f repository.Factory, id uuid.UUID) error {
			return f.UserAddresses().Delete(ctx, id)
		})
}
