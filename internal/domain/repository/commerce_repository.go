package repository

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for commerce persistence.
var (
	ErrShoppingSessionNotFound = errors.New("shopping session not found")
	ErrCartItemNotFound        = errors.New("cart item not found")
	ErrUserPaymentNotFound     = errors.New("user payment not found")
	ErrOrderDetailNotFound     = errors.New("order detail not found")
	ErrOrderItemNotFound       = errors.New("order item not found")
)

// ShoppingSessionRepository defines the operations for shopping session persistence.
type ShoppingSessionRepository interface {
	Crud[entity.ShoppingSession]

	// FindByUserID retrieves all sessions belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingSession, error)
}

// CartItemRepository defines the operations for cart item persistence.
type CartItemRepository interface {
	Crud[entity.CartItem]

	// DeleteBySessionID removes all items of a shopping session.
	DeleteBySessionID(ctx context.Context, sessionID uuid.UUID) error

	// DeleteByAlbumID removes all cart items referencing an album.
	DeleteByAlbumID(ctx context.Context, albumID uuid.UUID) error
}

// UserPaymentRepository defines the operations for payment instrument persistence.
type UserPaymentRepository interface {
	Crud[entity.UserPayment]

	// FindByUserID retrieves all payment instruments of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserPayment, error)
}

// OrderDetailRepository defines the operations for order persistence.
type OrderDetailRepository interface {
	Crud[entity.OrderDetail]

	// FindByUserID retrieves all orders placed by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderDetail, error)

	// FindByUserPaymentID retrieves all orders paid with an instrument.
	FindByUserPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*entity.OrderDetail, error)
}

// OrderItemRepository defines the operations for order item persistence.
type OrderItemRepository interface {
	Crud[entity.OrderItem]

	// DeleteByOrderDetailID removes all items of an order.
	DeleteByOrderDetailID(ctx context.Context, orderDetailID uuid.UUID) error

	// DeleteByAlbumID removes all order items referencing an album.
	DeleteByAlbumID(ctx context.Context, albumID uuid.UUID) error
}
