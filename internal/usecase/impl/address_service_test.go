package impl

import (
	"context"
	"testing"

	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validAddressInput() *usecase.CreateUserAddressInput {
	return &usecase.CreateUserAddressInput{
		StreetName:   "Avenida Paulista",
		StreetNumber: "1578",
		PostalCode:   "01310-200",
		City:         "São Paulo",
		State:        "SP",
		Country:      "Brazil",
	}
}

func TestUserAddressService_Create_DefaultsOwnerToCaller(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserAddressService(fx.txManager, fx.logger)

	actor := userActor()
	fx.factory.UserRepo.On("FindByID", mock.Anything, actor.ID).
		Return(&entity.User{ID: actor.ID}, nil)
	fx.factory.UserAddressRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.UserAddress")).Return(nil)

	addr, err := service.Create(context.Background(), actor, validAddressInput())

	require.NoError(t, err)
	assert.Equal(t, actor.ID, addr.UserID)
	assert.Equal(t, "SP", addr.State)
}

func TestUserAddressService_Create_AdminCanCreateForAnotherUser(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserAddressService(fx.txManager, fx.logger)

	otherID := uuid.New()
	input := validAddressInput()
	input.UserID = otherID

	fx.factory.UserRepo.On("FindByID", mock.Anything, otherID).
		Return(&entity.User{ID: otherID}, nil)
	fx.factory.UserAddressRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.UserAddress")).Return(nil)

	addr, err := service.Create(context.Background(), adminActor(), input)

	require.NoError(t, err)
	assert.Equal(t, otherID, addr.UserID)
}

func TestUserAddressService_Get_ForbiddenForNonOwner(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserAddressService(fx.txManager, fx.logger)

	addressID := uuid.New()
	fx.factory.UserAddressRepo.On("FindByID", mock.Anything, addressID).
		Return(&entity.UserAddress{ID: addressID, UserID: uuid.New()}, nil)

	_, err := service.Get(context.Background(), userActor(), addressID)

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestUserAddressService_Update_OwnerPatchesCity(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserAddressService(fx.txManager, fx.logger)

	actor := userActor()
	addressID := uuid.New()
	existing := &entity.UserAddress{
		ID:           addressID,
		UserID:       actor.ID,
		StreetName:   "Avenida Paulista",
		StreetNumber: "1578",
		PostalCode:   "01310-200",
		City:         "São Paulo",
		State:        "SP",
		Country:      "Brazil",
	}

	fx.factory.UserAddressRepo.On("FindByID", mock.Anything, addressID).Return(existing, nil)
	fx.factory.UserAddressRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.UserAddress")).Return(nil)

	city := "Campinas"
	addr, err := service.Update(context.Background(), actor, addressID, &usecase.UpdateUserAddressInput{City: &city})

	require.NoError(t, err)
	assert.Equal(t, "Campinas", addr.City)
	assert.Equal(t, "SP", addr.State)
}

func TestUserAddressService_Delete_OwnerRemovesAddress(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserAddressService(fx.txManager, fx.logger)

	actor := userActor()
	addressID := uuid.New()

	fx.factory.UserAddressRepo.On("FindByID", mock.Anything, addressID).
		Return(&entity.UserAddress{ID: addressID, UserID: actor.ID}, nil)
	fx.factory.UserAddressRepo.On("Delete", mock.Anything, addressID).Return(nil)

	err := service.Delete(context.Background(), actor, addressID)

	require.NoError(t, err)
	fx.factory.UserAddressRepo.AssertExpectations(t)
}
