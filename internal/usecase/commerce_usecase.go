package usecase

import (
	"context"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	"groove/internal/domain/repository"

	"github.com/google/uuid"
)

// Commerce entities are user-scoped: non-admins only ever see their own
// sessions, carts, payments and orders. An empty UserID on a create input
// defaults to the caller.

// CreateShoppingSessionInput defines the data required to open a cart.
type CreateShoppingSessionInput struct {
	UserID uuid.UUID `json:"userId"`
	Total  float64   `json:"total" validate:"min=0"`
}

// UpdateShoppingSessionInput defines the session fields that may be patched.
// UserID reassigns the session to another user; only admins may set it.
type UpdateShoppingSessionInput struct {
	UserID *uuid.UUID `json:"userId,omitempty"`
	Total  *float64   `json:"total,omitempty" validate:"omitempty,min=0"`
}

// ShoppingSessionUsecase defines the interface for cart session operations.
type ShoppingSessionUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateShoppingSessionInput) (*entity.ShoppingSession, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.ShoppingSession, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.ShoppingSession], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateShoppingSessionInput) (*entity.ShoppingSession, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// CreateCartItemInput defines the data required to put an album in a cart.
type CreateCartItemInput struct {
	ShoppingSessionID uuid.UUID `json:"shoppingSessionId" validate:"required"`
	AlbumID           uuid.UUID `json:"albumId" validate:"required"`
	Quantity          int       `json:"quantity" validate:"min=0"`
}

// UpdateCartItemInput defines the cart item fields that may be patched.
type UpdateCartItemInput struct {
	Quantity *int `json:"quantity,omitempty" validate:"omitempty,min=0"`
}

// CartItemUsecase defines the interface for cart item operations. Ownership
// resolves through the parent shopping session.
type CartItemUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateCartItemInput) (*entity.CartItem, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.CartItem, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.CartItem], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateCartItemInput) (*entity.CartItem, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// CreateUserPaymentInput defines the data required to register a payment instrument.
type CreateUserPaymentInput struct {
	UserID        uuid.UUID `json:"userId"`
	AccountNumber string    `json:"accountNumber" validate:"required"`
	PaymentType   string    `json:"paymentType" validate:"required"`
	Provider      string    `json:"provider" validate:"required"`
}

// UpdateUserPaymentInput defines the payment instrument fields that may be patched.
// UserID reassigns the instrument to another user; only admins may set it.
type UpdateUserPaymentInput struct {
	UserID        *uuid.UUID `json:"userId,omitempty"`
	AccountNumber *string    `json:"accountNumber,omitempty" validate:"omitempty,min=1"`
	PaymentType   *string    `json:"paymentType,omitempty"`
	Provider      *string    `json:"provider,omitempty"`
}

// UserPaymentUsecase defines the interface for payment instrument operations.
type UserPaymentUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateUserPaymentInput) (*entity.UserPayment, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.UserPayment, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.UserPayment], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateUserPaymentInput) (*entity.UserPayment, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// CreateOrderDetailInput defines the data required to place an order.
type CreateOrderDetailInput struct {
	UserID        uuid.UUID `json:"userId"`
	UserPaymentID uuid.UUID `json:"userPaymentId" validate:"required"`
	Total         float64   `json:"total" validate:"min=0"`
}

// UpdateOrderDetailInput defines the order fields that may be patched.
// UserID reassigns the order to another user; only admins may set it.
type UpdateOrderDetailInput struct {
	UserID        *uuid.UUID `json:"userId,omitempty"`
	UserPaymentID *uuid.UUID `json:"userPaymentId,omitempty"`
	Total         *float64   `json:"total,omitempty" validate:"omitempty,min=0"`
}

// OrderDetailUsecase defines the interface for order operations.
type OrderDetailUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateOrderDetailInput) (*entity.OrderDetail, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.OrderDetail, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.OrderDetail], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateOrderDetailInput) (*entity.OrderDetail, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// CreateOrderItemInput defines the data required to add a line to an order.
type CreateOrderItemInput struct {
	OrderDetailID uuid.UUID `json:"orderDetailId" validate:"required"`
	AlbumID       uuid.UUID `json:"albumId" validate:"required"`
	Quantity      int       `json:"quantity" validate:"min=0"`
}

// UpdateOrderItemInput defines the order item fields that may be patched.
type UpdateOrderItemInput struct {
	Quantity *int `json:"quantity,omitempty" validate:"omitempty,min=0"`
}

// OrderItemUsecase defines the interface for order line operations. Ownership
// resolves through the parent order.
type OrderItemUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateOrderItemInput) (*entity.OrderItem, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.OrderItem, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.OrderItem], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateOrderItemInput) (*entity.OrderItem, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
