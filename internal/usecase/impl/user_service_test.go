package impl

import (
	"context"
	"testing"

	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubHasher marks hashes deterministically so tests can assert on them
// without the cost of real bcrypt rounds.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

func TestUserService_Create_AdminOnly(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserService(fx.txManager, stubHasher{}, fx.logger)

	_, err := service.Create(context.Background(), userActor(), &usecase.CreateUserInput{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "password123",
	})

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Create_HashesPasswordAndDefaultsRole(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserService(fx.txManager, stubHasher{}, fx.logger)

	fx.factory.UserRepo.On("FindByEmail", mock.Anything, "jo@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.factory.UserRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := service.Create(context.Background(), adminActor(), &usecase.CreateUserInput{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:password123", user.Password)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserService(fx.txManager, stubHasher{}, fx.logger)

	fx.factory.UserRepo.On("FindByEmail", mock.Anything, "jo@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "jo@example.com"}, nil)

	_, err := service.Create(context.Background(), adminActor(), &usecase.CreateUserInput{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "password123",
	})

	requireAppError(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Get_OwnAccount(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserService(fx.txManager, stubHasher{}, fx.logger)

	actor := userActor()
	expected := &entity.User{ID: actor.ID, Name: "Jo", Email: "jo@example.com", Role: entity.RoleUser}

	fx.factory.UserRepo.On("FindByID", mock.Anything, actor.ID).Return(expected, nil)

	user, err := service.Get(context.Background(), actor, actor.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_Get_AnotherAccountForbidden(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserService(fx.txManager, stubHasher{}, fx.logger)

	_, err := service.Get(context.Background(), userActor(), uuid.New())

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestUserService_List_AdminOnly(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserService(fx.txManager, stubHasher{}, fx.logger)

	_, err := service.List(context.Background(), userActor(), repository.Query{})

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Update_RoleChangeRequiresAdmin(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserService(fx.txManager, stubHasher{}, fx.logger)

	actor := userActor()
	admin := entity.RoleAdmin.String()

	_, err := service.Update(context.Background(), actor, actor.ID, &usecase.UpdateUserInput{Role: &admin})

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Update_OwnerPatchesNameAndPassword(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserService(fx.txManager, stubHasher{}, fx.logger)

	actor := userActor()
	existing := &entity.User{ID: actor.ID, Name: "Jo", Email: "jo@example.com", Role: entity.RoleUser}

	fx.factory.UserRepo.On("FindByID", mock.Anything, actor.ID).Return(existing, nil)
	fx.factory.UserRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	name := "Joana"
	password := "newpassword1"
	user, err := service.Update(context.Background(), actor, actor.ID, &usecase.UpdateUserInput{
		Name:     &name,
		Password: &password,
	})

	require.NoError(t, err)
	assert.Equal(t, "Joana", user.Name)
	assert.Equal(t, "hashed:newpassword1", user.Password)
}

func TestUserService_Delete_CascadesThroughEverythingOwned(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserService(fx.txManager, stubHasher{}, fx.logger)

	actor := userActor()

	fx.factory.AlbumRepo.On("FindByUserID", mock.Anything, actor.ID).Return([]*entity.Album{}, nil)
	fx.factory.ShoppingSessionRepo.On("FindByUserID", mock.Anything, actor.ID).Return([]*entity.ShoppingSession{}, nil)
	fx.factory.UserPaymentRepo.On("FindByUserID", mock.Anything, actor.ID).Return([]*entity.UserPayment{}, nil)
	fx.factory.OrderDetailRepo.On("FindByUserID", mock.Anything, actor.ID).Return([]*entity.OrderDetail{}, nil)
	fx.factory.UserAddressRepo.On("DeleteByUserID", mock.Anything, actor.ID).Return(nil)
	fx.factory.RefreshTokenRepo.On("DeleteByUserID", mock.Anything, actor.ID).Return(nil)
	fx.factory.UserRepo.On("Delete", mock.Anything, actor.ID).Return(nil)

	err := service.Delete(context.Background(), actor, actor.ID)

	require.NoError(t, err)
	fx.factory.UserRepo.AssertExpectations(t)
	fx.factory.UserAddressRepo.AssertExpectations(t)
	fx.factory.RefreshTokenRepo.AssertExpectations(t)
}
