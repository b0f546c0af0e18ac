package authz

import (
	"context"

	"groove/internal/domain/repository"

	"github.com/google/uuid"
)

// Ownership resolvers, one per user-scoped entity. Direct resolvers read the
// userId field of the resource itself; one-hop resolvers walk a single foreign
// key to the parent that carries it.

// UserOwner resolves a user resource to itself: users own their own account.
type UserOwner struct{}

func (UserOwner) ResolveOwner(_ context.Context, _ repository.Factory, resourceID uuid.UUID) (uuid.UUID, error) {
	return resourceID, nil
}

// AlbumOwner resolves an album listing to its selling user.
type AlbumOwner struct{}

func (AlbumOwner) ResolveOwner(ctx context.Context, f repository.Factory, resourceID uuid.UUID) (uuid.UUID, error) {
	album, err := f.Albums().FindByID(ctx, resourceID)
	if err != nil {
		return uuid.Nil, err
	}

	return album.UserID, nil
}

// UserAddressOwner resolves a shipping address to its user.
type UserAddressOwner struct{}

func (UserAddressOwner) ResolveOwner(ctx context.Context, f repository.Factory, resourceID uuid.UUID) (uuid.UUID, error) {
	addr, err := f.UserAddresses().FindByID(ctx, resourceID)
	if err != nil {
		return uuid.Nil, err
	}

	return addr.UserID, nil
}

// UserPaymentOwner resolves a payment instrument to its user.
type UserPaymentOwner struct{}

func (UserPaymentOwner) ResolveOwner(ctx context.Context, f repository.Factory, resourceID uuid.UUID) (uuid.UUID, error) {
	payment, err := f.UserPayments().FindByID(ctx, resourceID)
	if err != nil {
		return uuid.Nil, err
	}

	return payment.UserID, nil
}

// ShoppingSessionOwner resolves a shopping session to its user.
type ShoppingSessionOwner struct{}

func (ShoppingSessionOwner) ResolveOwner(ctx context.Context, f repository.Factory, resourceID uuid.UUID) (uuid.UUID, error) {
	session, err := f.ShoppingSessions().FindByID(ctx, resourceID)
	if err != nil {
		return uuid.Nil, err
	}

	return session.UserID, nil
}

// OrderDetailOwner resolves an order to its user.
type OrderDetailOwner struct{}

func (OrderDetailOwner) ResolveOwner(ctx context.Context, f repository.Factory, resourceID uuid.UUID) (uuid.UUID, error) {
	order, err := f.OrderDetails().FindByID(ctx, resourceID)
	if err != nil {
		return uuid.Nil, err
	}

	return order.UserID, nil
}

// CartItemOwner resolves a cart item through its shopping session (one hop).
type CartItemOwner struct{}

func (CartItemOwner) ResolveOwner(ctx context.Context, f repository.Factory, resourceID uuid.UUID) (uuid.UUID, error) {
	item, err := f.CartItems().FindByID(ctx, resourceID)
	if err != nil {
		return uuid.Nil, err
	}

	session, err := f.ShoppingSessions().FindByID(ctx, item.ShoppingSessionID)
	if err != nil {
		return uuid.Nil, err
	}

	return session.UserID, nil
}

// OrderItemOwner resolves an order item through its order detail (one hop).
type OrderItemOwner struct{}

func (OrderItemOwner) ResolveOwner(ctx context.Context, f repository.Factory, resourceID uuid.UUID) (uuid.UUID, error) {
	item, err := f.OrderItems().FindByID(ctx, resourceID)
	if err != nil {
		return uuid.Nil, err
	}

	order, err := f.OrderDetails().FindByID(ctx, item.OrderDetailID)
	if err != nil {
		return uuid.Nil, err
	}

	return order.UserID, nil
}
