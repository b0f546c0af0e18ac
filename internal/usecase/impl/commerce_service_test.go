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

func TestShoppingSessionService_Create_DefaultsOwnerToCaller(t *testing.T) {
	fx := newTestFixtures()
	service := NewShoppingSessionService(fx.txManager, fx.logger)

	actor := userActor()
	fx.factory.UserRepo.On("FindByID", mock.Anything, actor.ID).
		Return(&entity.User{ID: actor.ID}, nil)
	fx.factory.ShoppingSessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ShoppingSession")).Return(nil)

	session, err := service.Create(context.Background(), actor, &usecase.CreateShoppingSessionInput{Total: 0})

	require.NoError(t, err)
	assert.Equal(t, actor.ID, session.UserID)
}

func TestShoppingSessionService_List_ScopesNonAdminToOwnRows(t *testing.T) {
	fx := newTestFixtures()
	service := NewShoppingSessionService(fx.txManager, fx.logger)

	actor := userActor()
	page := &repository.Page[entity.ShoppingSession]{Results: []*entity.ShoppingSession{}, Page: 1, Limit: 10}

	fx.factory.ShoppingSessionRepo.On("Find", mock.Anything, mock.MatchedBy(func(q repository.Query) bool {
		return q.Filter["userId"] == actor.ID.String()
	})).Return(page, nil)

	_, err := service.List(context.Background(), actor, repository.Query{
		Filter: map[string]string{"userId": uuid.NewString()}, // overridden
	})

	require.NoError(t, err)
	fx.factory.ShoppingSessionRepo.AssertExpectations(t)
}

func TestShoppingSessionService_List_AdminKeepsRequestedFilter(t *testing.T) {
	fx := newTestFixtures()
	service := NewShoppingSessionService(fx.txManager, fx.logger)

	otherUser := uuid.NewString()
	page := &repository.Page[entity.ShoppingSession]{Results: []*entity.ShoppingSession{}, Page: 1, Limit: 10}

	fx.factory.ShoppingSessionRepo.On("Find", mock.Anything, mock.MatchedBy(func(q repository.Query) bool {
		return q.Filter["userId"] == otherUser
	})).Return(page, nil)

	_, err := service.List(context.Background(), adminActor(), repository.Query{
		Filter: map[string]string{"userId": otherUser},
	})

	require.NoError(t, err)
}

func TestShoppingSessionService_Update_OwnerReassignRequiresAdmin(t *testing.T) {
	fx := newTestFixtures()
	service := NewShoppingSessionService(fx.txManager, fx.logger)

	newOwner := uuid.New()
	_, err := service.Update(context.Background(), userActor(), uuid.New(), &usecase.UpdateShoppingSessionInput{UserID: &newOwner})

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestShoppingSessionService_Update_AdminCanReassignOwner(t *testing.T) {
	fx := newTestFixtures()
	service := NewShoppingSessionService(fx.txManager, fx.logger)

	sessionID := uuid.New()
	newOwner := uuid.New()
	fx.factory.ShoppingSessionRepo.On("FindByID", mock.Anything, sessionID).
		Return(&entity.ShoppingSession{ID: sessionID, UserID: uuid.New()}, nil)
	fx.factory.UserRepo.On("FindByID", mock.Anything, newOwner).
		Return(&entity.User{ID: newOwner}, nil)
	fx.factory.ShoppingSessionRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.ShoppingSession")).Return(nil)

	session, err := service.Update(context.Background(), adminActor(), sessionID, &usecase.UpdateShoppingSessionInput{UserID: &newOwner})

	require.NoError(t, err)
	assert.Equal(t, newOwner, session.UserID)
}

func TestShoppingSessionService_Delete_RemovesItems(t *testing.T) {
	fx := newTestFixtures()
	service := NewShoppingSessionService(fx.txManager, fx.logger)

	actor := userActor()
	sessionID := uuid.New()

	fx.factory.ShoppingSessionRepo.On("FindByID", mock.Anything, sessionID).
		Return(&entity.ShoppingSession{ID: sessionID, UserID: actor.ID}, nil)
	fx.factory.CartItemRepo.On("DeleteBySessionID", mock.Anything, sessionID).Return(nil)
	fx.factory.ShoppingSessionRepo.On("Delete", mock.Anything, sessionID).Return(nil)

	err := service.Delete(context.Background(), actor, sessionID)

	require.NoError(t, err)
	fx.factory.CartItemRepo.AssertExpectations(t)
}

func TestCartItemService_Create_RequiresOwningTheSession(t *testing.T) {
	fx := newTestFixtures()
	service := NewCartItemService(fx.txManager, fx.logger)

	sessionID := uuid.New()
	albumID := uuid.New()
	fx.factory.ShoppingSessionRepo.On("FindByID", mock.Anything, sessionID).
		Return(&entity.ShoppingSession{ID: sessionID, UserID: uuid.New()}, nil)
	fx.factory.AlbumRepo.On("FindByID", mock.Anything, albumID).
		Return(&entity.Album{ID: albumID}, nil)

	_, err := service.Create(context.Background(), userActor(), &usecase.CreateCartItemInput{
		ShoppingSessionID: sessionID,
		AlbumID:           albumID,
		Quantity:          1,
	})

	requireAppError(t, err, domainerrors.ErrForbidden)
}

// Existence of the referenced album is judged before session ownership, so a
// caller who does not own the session still learns a missing album as 404.
func TestCartItemService_Create_MissingAlbumReadsNotFoundForNonOwner(t *testing.T) {
	fx := newTestFixtures()
	service := NewCartItemService(fx.txManager, fx.logger)

	sessionID := uuid.New()
	albumID := uuid.New()
	fx.factory.ShoppingSessionRepo.On("FindByID", mock.Anything, sessionID).
		Return(&entity.ShoppingSession{ID: sessionID, UserID: uuid.New()}, nil)
	fx.factory.AlbumRepo.On("FindByID", mock.Anything, albumID).
		Return(nil, repository.ErrAlbumNotFound)

	_, err := service.Create(context.Background(), userActor(), &usecase.CreateCartItemInput{
		ShoppingSessionID: sessionID,
		AlbumID:           albumID,
		Quantity:          1,
	})

	requireAppError(t, err, domainerrors.ErrNotFound)
}

func TestOrderItemService_Create_MissingAlbumReadsNotFoundForNonOwner(t *testing.T) {
	fx := newTestFixtures()
	service := NewOrderItemService(fx.txManager, fx.logger)

	orderID := uuid.New()
	albumID := uuid.New()
	fx.factory.OrderDetailRepo.On("FindByID", mock.Anything, orderID).
		Return(&entity.OrderDetail{ID: orderID, UserID: uuid.New()}, nil)
	fx.factory.AlbumRepo.On("FindByID", mock.Anything, albumID).
		Return(nil, repository.ErrAlbumNotFound)

	_, err := service.Create(context.Background(), userActor(), &usecase.CreateOrderItemInput{
		OrderDetailID: orderID,
		AlbumID:       albumID,
		Quantity:      1,
	})

	requireAppError(t, err, domainerrors.ErrNotFound)
}

func TestCartItemService_Create_Success(t *testing.T) {
	fx := newTestFixtures()
	service := NewCartItemService(fx.txManager, fx.logger)

	actor := userActor()
	sessionID := uuid.New()
	albumID := uuid.New()

	fx.factory.ShoppingSessionRepo.On("FindByID", mock.Anything, sessionID).
		Return(&entity.ShoppingSession{ID: sessionID, UserID: actor.ID}, nil)
	fx.factory.AlbumRepo.On("FindByID", mock.Anything, albumID).
		Return(&entity.Album{ID: albumID}, nil)
	fx.factory.CartItemRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.CartItem")).Return(nil)

	item, err := service.Create(context.Background(), actor, &usecase.CreateCartItemInput{
		ShoppingSessionID: sessionID,
		AlbumID:           albumID,
		Quantity:          2,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartItemService_List_NonAdminNeedsSessionFilter(t *testing.T) {
	fx := newTestFixtures()
	service := NewCartItemService(fx.txManager, fx.logger)

	_, err := service.List(context.Background(), userActor(), repository.Query{})

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestCartItemService_List_NonAdminMustOwnSession(t *testing.T) {
	fx := newTestFixtures()
	service := NewCartItemService(fx.txManager, fx.logger)

	sessionID := uuid.New()
	fx.factory.ShoppingSessionRepo.On("FindByID", mock.Anything, sessionID).
		Return(&entity.ShoppingSession{ID: sessionID, UserID: uuid.New()}, nil)

	_, err := service.List(context.Background(), userActor(), repository.Query{
		Filter: map[string]string{"shoppingSessionId": sessionID.String()},
	})

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestCartItemService_List_OwnerSeesSessionItems(t *testing.T) {
	fx := newTestFixtures()
	service := NewCartItemService(fx.txManager, fx.logger)

	actor := userActor()
	sessionID := uuid.New()
	page := &repository.Page[entity.CartItem]{Results: []*entity.CartItem{}, Page: 1, Limit: 10}

	fx.factory.ShoppingSessionRepo.On("FindByID", mock.Anything, sessionID).
		Return(&entity.ShoppingSession{ID: sessionID, UserID: actor.ID}, nil)
	fx.factory.CartItemRepo.On("Find", mock.Anything, mock.AnythingOfType("repository.Query")).Return(page, nil)

	got, err := service.List(context.Background(), actor, repository.Query{
		Filter: map[string]string{"shoppingSessionId": sessionID.String()},
	})

	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestUserPaymentService_Get_OneUserCannotReadAnothers(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserPaymentService(fx.txManager, fx.logger)

	paymentID := uuid.New()
	fx.factory.UserPaymentRepo.On("FindByID", mock.Anything, paymentID).
		Return(&entity.UserPayment{ID: paymentID, UserID: uuid.New()}, nil)

	_, err := service.Get(context.Background(), userActor(), paymentID)

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestUserPaymentService_Create_RejectsUnknownProvider(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserPaymentService(fx.txManager, fx.logger)

	_, err := service.Create(context.Background(), userActor(), &usecase.CreateUserPaymentInput{
		AccountNumber: "1234",
		PaymentType:   "credit_card",
		Provider:      "dinersclub",
	})

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestUserPaymentService_Delete_CascadesToOrders(t *testing.T) {
	fx := newTestFixtures()
	service := NewUserPaymentService(fx.txManager, fx.logger)

	actor := userActor()
	paymentID := uuid.New()
	orderID := uuid.New()

	fx.factory.UserPaymentRepo.On("FindByID", mock.Anything, paymentID).
		Return(&entity.UserPayment{ID: paymentID, UserID: actor.ID}, nil)
	fx.factory.OrderDetailRepo.On("FindByUserPaymentID", mock.Anything, paymentID).
		Return([]*entity.OrderDetail{{ID: orderID, UserID: actor.ID, UserPaymentID: paymentID}}, nil)
	fx.factory.OrderItemRepo.On("DeleteByOrderDetailID", mock.Anything, orderID).Return(nil)
	fx.factory.OrderDetailRepo.On("Delete", mock.Anything, orderID).Return(nil)
	fx.factory.UserPaymentRepo.On("Delete", mock.Anything, paymentID).Return(nil)

	err := service.Delete(context.Background(), actor, paymentID)

	require.NoError(t, err)
	fx.factory.OrderDetailRepo.AssertExpectations(t)
}

func TestOrderDetailService_Create_PaymentMustBelongToOrderingUser(t *testing.T) {
	fx := newTestFixtures()
	service := NewOrderDetailService(fx.txManager, fx.logger)

	actor := userActor()
	paymentID := uuid.New()

	fx.factory.UserRepo.On("FindByID", mock.Anything, actor.ID).
		Return(&entity.User{ID: actor.ID}, nil)
	fx.factory.UserPaymentRepo.On("FindByID", mock.Anything, paymentID).
		Return(&entity.UserPayment{ID: paymentID, UserID: uuid.New()}, nil)

	_, err := service.Create(context.Background(), actor, &usecase.CreateOrderDetailInput{
		UserPaymentID: paymentID,
		Total:         59.99,
	})

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderDetailService_Create_Success(t *testing.T) {
	fx := newTestFixtures()
	service := NewOrderDetailService(fx.txManager, fx.logger)

	actor := userActor()
	paymentID := uuid.New()

	fx.factory.UserRepo.On("FindByID", mock.Anything, actor.ID).
		Return(&entity.User{ID: actor.ID}, nil)
	fx.factory.UserPaymentRepo.On("FindByID", mock.Anything, paymentID).
		Return(&entity.UserPayment{ID: paymentID, UserID: actor.ID}, nil)
	fx.factory.OrderDetailRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.OrderDetail")).Return(nil)

	order, err := service.Create(context.Background(), actor, &usecase.CreateOrderDetailInput{
		UserPaymentID: paymentID,
		Total:         59.99,
	})

	require.NoError(t, err)
	assert.Equal(t, actor.ID, order.UserID)
	assert.Equal(t, 59.99, order.Total)
}

func TestOrderItemService_List_NonAdminNeedsOrderFilter(t *testing.T) {
	fx := newTestFixtures()
	service := NewOrderItemService(fx.txManager, fx.logger)

	_, err := service.List(context.Background(), userActor(), repository.Query{})

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderItemService_Get_ResolvesOwnershipThroughOrder(t *testing.T) {
	fx := newTestFixtures()
	service := NewOrderItemService(fx.txManager, fx.logger)

	actor := userActor()
	orderID := uuid.New()
	itemID := uuid.New()
	expected := &entity.OrderItem{ID: itemID, OrderDetailID: orderID, Quantity: 1}

	fx.factory.OrderItemRepo.On("FindByID", mock.Anything, itemID).Return(expected, nil)
	fx.factory.OrderDetailRepo.On("FindByID", mock.Anything, orderID).
		Return(&entity.OrderDetail{ID: orderID, UserID: actor.ID}, nil)

	item, err := service.Get(context.Background(), actor, itemID)

	require.NoError(t, err)
	assert.Equal(t, expected, item)
}
