package postgres

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/domain/repository"
	"groove/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shoppingSessionRepository implements repository.ShoppingSessionRepository using GORM.
type shoppingSessionRepository struct {
	crud[model.ShoppingSessionModel, entity.ShoppingSession]
}

// NewShoppingSessionRepository is the constructor for shoppingSessionRepository.
func NewShoppingSessionRepository(db *gorm.DB) repository.ShoppingSessionRepository {
	return &shoppingSessionRepository{crud[model.ShoppingSessionModel, entity.ShoppingSession]{
		db:       db,
		toEntity: toShoppingSessionDomain,
		toModel:  fromShoppingSessionDomain,
		columns: map[string]string{
			"userId": "user_id",
		},
		notFound: repository.ErrShoppingSessionNotFound,
	}}
}

// FindByUserID retrieves all sessions belonging to a user.
func (repo *shoppingSessionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingSession, error) {
	return findAllBy(ctx, &repo.crud, "user_id", userID)
}

func toShoppingSessionDomain(data *model.ShoppingSessionModel) *entity.ShoppingSession {
	if data == nil {
		return nil
	}

	return &entity.ShoppingSession{
		ID:        data.ID,
		UserID:    data.UserID,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromShoppingSessionDomain(data *entity.ShoppingSession) *model.ShoppingSessionModel {
	if data == nil {
		return nil
	}

	return &model.ShoppingSessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// cartItemRepository implements repository.CartItemRepository using GORM.
type cartItemRepository struct {
	crud[model.CartItemModel, entity.CartItem]
}

// NewCartItemRepository is the constructor for cartItemRepository.
func NewCartItemRepository(db *gorm.DB) repository.CartItemRepository {
	return &cartItemRepository{crud[model.CartItemModel, entity.CartItem]{
		db:       db,
		toEntity: toCartItemDomain,
		toModel:  fromCartItemDomain,
		columns: map[string]string{
			"shoppingSessionId": "shopping_session_id",
			"albumId":           "album_id",
		},
		notFound: repository.ErrCartItemNotFound,
	}}
}

// DeleteBySessionID removes all items of a shopping session.
func (repo *cartItemRepository) DeleteBySessionID(ctx context.Context, sessionID uuid.UUID) error {
	return deleteAllBy(ctx, &repo.crud, "shopping_session_id", sessionID)
}

// DeleteByAlbumID removes all cart items referencing an album.
func (repo *cartItemRepository) DeleteByAlbumID(ctx context.Context, albumID uuid.UUID) error {
	return deleteAllBy(ctx, &repo.crud, "album_id", albumID)
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:                data.ID,
		ShoppingSessionID: data.ShoppingSessionID,
		AlbumID:           data.AlbumID,
		Quantity:          data.Quantity,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:                data.ID,
		ShoppingSessionID: data.ShoppingSessionID,
		AlbumID:           data.AlbumID,
		Quantity:          data.Quantity,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// userPaymentRepository implements repository.UserPaymentRepository using GORM.
type userPaymentRepository struct {
	crud[model.UserPaymentModel, entity.UserPayment]
}

// NewUserPaymentRepository is the constructor for userPaymentRepository.
func NewUserPaymentRepository(db *gorm.DB) repository.UserPaymentRepository {
	return &userPaymentRepository{crud[model.UserPaymentModel, entity.UserPayment]{
		db:       db,
		toEntity: toUserPaymentDomain,
		toModel:  fromUserPaymentDomain,
		columns: map[string]string{
			"userId":      "user_id",
			"paymentType": "payment_type",
			"provider":    "provider",
		},
		notFound: repository.ErrUserPaymentNotFound,
	}}
}

// FindByUserID retrieves all payment instruments of a user.
func (repo *userPaymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserPayment, error) {
	return findAllBy(ctx, &repo.crud, "user_id", userID)
}

func toUserPaymentDomain(data *model.UserPaymentModel) *entity.UserPayment {
	if data == nil {
		return nil
	}

	return &entity.UserPayment{
		ID:            data.ID,
		UserID:        data.UserID,
		AccountNumber: data.AccountNumber,
		PaymentType:   entity.PaymentType(data.PaymentType),
		Provider:      entity.PaymentProvider(data.Provider),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromUserPaymentDomain(data *entity.UserPayment) *model.UserPaymentModel {
	if data == nil {
		return nil
	}

	return &model.UserPaymentModel{
		ID:            data.ID,
		UserID:        data.UserID,
		AccountNumber: data.AccountNumber,
		PaymentType:   string(data.PaymentType),
		Provider:      string(data.Provider),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// orderDetailRepository implements repository.OrderDetailRepository using GORM.
type orderDetailRepository struct {
	crud[model.OrderDetailModel, entity.OrderDetail]
}

// NewOrderDetailRepository is the constructor for orderDetailRepository.
func NewOrderDetailRepository(db *gorm.DB) repository.OrderDetailRepository {
	return &orderDetailRepository{crud[model.OrderDetailModel, entity.OrderDetail]{
		db:       db,
		toEntity: toOrderDetailDomain,
		toModel:  fromOrderDetailDomain,
		columns: map[string]string{
			"userId":        "user_id",
			"userPaymentId": "user_payment_id",
		},
		notFound: repository.ErrOrderDetailNotFound,
	}}
}

// FindByUserID retrieves all orders placed by a user.
func (repo *orderDetailRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetail, error) {
	return findAllBy(ctx, &repo.crud, "user_id", userID)
}

// FindByUserPaymentID retrieves all orders paid with an instrument.
func (repo *orderDetailRepository) FindByUserPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*entity.OrderDetail, error) {
	return findAllBy(ctx, &repo.crud, "user_payment_id", paymentID)
}

func toOrderDetailDomain(data *model.OrderDetailModel) *entity.OrderDetail {
	if data == nil {
		return nil
	}

	return &entity.OrderDetail{
		ID:            data.ID,
		UserID:        data.UserID,
		UserPaymentID: data.UserPaymentID,
		Total:         data.Total,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOrderDetailDomain(data *entity.OrderDetail) *model.OrderDetailModel {
	if data == nil {
		return nil
	}

	return &model.OrderDetailModel{
		ID:            data.ID,
		UserID:        data.UserID,
		UserPaymentID: data.UserPaymentID,
		Total:         data.Total,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// orderItemRepository implements repository.OrderItemRepository using GORM.
type orderItemRepository struct {
	crud[model.OrderItemModel, entity.OrderItem]
}

// NewOrderItemRepository is the constructor for orderItemRepository.
func NewOrderItemRepository(db *gorm.DB) repository.OrderItemRepository {
	return &orderItemRepository{crud[model.OrderItemModel, entity.OrderItem]{
		db:       db,
		toEntity: toOrderItemDomain,
		toModel:  fromOrderItemDomain,
		columns: map[string]string{
			"orderDetailId": "order_detail_id",
			"albumId":       "album_id",
		},
		notFound: repository.ErrOrderItemNotFound,
	}}
}

// DeleteByOrderDetailID removes all items of an order.
func (repo *orderItemRepository) DeleteByOrderDetailID(ctx context.Context, orderDetailID uuid.UUID) error {
	return deleteAllBy(ctx, &repo.crud, "order_detail_id", orderDetailID)
}

// DeleteByAlbumID removes all order items referencing an album.
func (repo *orderItemRepository) DeleteByAlbumID(ctx context.Context, albumID uuid.UUID) error {
	return deleteAllBy(ctx, &repo.crud, "album_id", albumID)
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:            data.ID,
		OrderDetailID: data.OrderDetailID,
		AlbumID:       data.AlbumID,
		Quantity:      data.Quantity,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:            data.ID,
		OrderDetailID: data.OrderDetailID,
		AlbumID:       data.AlbumID,
		Quantity:      data.Quantity,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
