package impl

import (
	"context"
	"log/slog"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// shoppingSessionService implements the ShoppingSessionUsecase interface.
type shoppingSessionService struct {
	core
}

// NewShoppingSessionService is the constructor for shoppingSessionService.
func NewShoppingSessionService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ShoppingSessionUsecase {
	return &shoppingSessionService{core{txManager: txManager, logger: logger}}
}

func sessionRepo(f repository.Factory) repository.Crud[entity.ShoppingSession] {
	return f.ShoppingSessions()
}

func (srv *shoppingSessionService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateShoppingSessionInput) (*entity.ShoppingSession, error) {
	ownerID, err := resolveOwnerID(actor, input.UserID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Opening shopping session", slog.Any("userID", ownerID))

	session := &entity.ShoppingSession{UserID: ownerID, Total: input.Total}
	if err := session.Validate(); err != nil {
		return nil, validationError(err)
	}

	err = srv.txManager.Execute(ctx, func(f repository.Factory) error {
		if _, err := f.Users().FindByID(ctx, ownerID); err != nil {
			return mapRepoError(err)
		}

		return f.ShoppingSessions().Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (srv *shoppingSessionService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.ShoppingSession, error) {
	return getOwned(ctx, &srv.core, actor, sessionRepo, id, authz.ShoppingSessionOwner{})
}

func (srv *shoppingSessionService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.ShoppingSession], error) {
	return listOwned(ctx, &srv.core, actor, sessionRepo, q)
}

func (srv *shoppingSessionService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateShoppingSessionInput) (*entity.ShoppingSession, error) {
	srv.log(ctx).Info("Updating shopping session", slog.Any("sessionID", id))

	if err := requireOwnerReassignAdmin(actor, input.UserID); err != nil {
		return nil, err
	}

	return updateOwned(ctx, &srv.core, actor, sessionRepo, id, authz.ShoppingSessionOwner{},
		func(s *entity.ShoppingSession) error {
			if input.UserID != nil {
				s.UserID = *input.UserID
			}
			if input.Total != nil {
				s.Total = *input.Total
			}

			return nil
		},
		func(s *entity.ShoppingSession) error { return s.Validate() },
		func(s *entity.ShoppingSession) refCheck {
			if input.UserID == nil {
				return nil
			}

			return ownerExists(s.UserID)
		},
	)
}

func (srv *shoppingSessionService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting shopping session", slog.Any("sessionID", id))

	return deleteOwned(ctx, &srv.core, actor, id, authz.ShoppingSessionOwner{}, deleteShoppingSessionCascade)
}

// cartItemService implements the CartItemUsecase interface. Ownership always
// resolves through the parent shopping session.
type cartItemService struct {
	core
}

// NewCartItemService is the constructor for cartItemService.
func NewCartItemService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CartItemUsecase {
	return &cartItemService{core{txManager: txManager, logger: logger}}
}

func cartItemRepo(f repository.Factory) repository.Crud[entity.CartItem] { return f.CartItems() }

func sessionOwner(ctx context.Context, f repository.Factory, sessionID uuid.UUID) (uuid.UUID, error) {
	return authz.ShoppingSessionOwner{}.ResolveOwner(ctx, f, sessionID)
}

func (srv *cartItemService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateCartItemInput) (*entity.CartItem, error) {
	srv.log(ctx).Info("Adding cart item", slog.Any("sessionID", input.ShoppingSessionID), slog.Any("albumID", input.AlbumID))

	item := &entity.CartItem{
		ShoppingSessionID: input.ShoppingSessionID,
		AlbumID:           input.AlbumID,
		Quantity:          input.Quantity,
	}
	if err := item.Validate(); err != nil {
		return nil, validationError(err)
	}

	err := srv.txManager.Execute(ctx, func(f repository.Factory) error {
		// Both referenced rows must exist before ownership is judged, so a
		// missing album reads as 404 even for a caller who does not own the session.
		ownerID, err := sessionOwner(ctx, f, item.ShoppingSessionID)
		if err != nil {
			return mapRepoError(err)
		}
		if _, err := f.Albums().FindByID(ctx, item.AlbumID); err != nil {
			return mapRepoError(err)
		}
		if err := authz.RequireOwner(actor, ownerID); err != nil {
			return err
		}

		return f.CartItems().Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (srv *cartItemService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.CartItem, error) {
	return getOwned(ctx, &srv.core, actor, cartItemRepo, id, authz.CartItemOwner{})
}

func (srv *cartItemService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.CartItem], error) {
	return listOwnedViaParent(ctx, &srv.core, actor, cartItemRepo, q, "shoppingSessionId", sessionOwner)
}

func (srv *cartItemService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateCartItemInput) (*entity.CartItem, error) {
	srv.log(ctx).Info("Updating cart item", slog.Any("cartItemID", id))

	return updateOwned(ctx, &srv.core, actor, cartItemRepo, id, authz.CartItemOwner{},
		func(ci *entity.CartItem) error {
			if input.Quantity != nil {
				ci.Quantity = *input.Quantity
			}

			return nil
		},
		func(ci *entity.CartItem) error { return ci.Validate() },
		nil,
	)
}

func (srv *cartItemService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting cart item", slog.Any("cartItemID", id))

	// Cart items have no dependents; the cascade is a plain delete.
	return deleteOwned(ctx, &srv.core, actor, id, authz.CartItemOwner{},
		func(ctx context.Context, f repository.Factory, id uuid.UUID) error {
			return f.CartItems().Delete(ctx, id)
		})
}

// userPaymentService implements the UserPaymentUsecase interface.
type userPaymentService struct {
	core
}

// NewUserPaymentService is the constructor for userPaymentService.
func NewUserPaymentService(txManager repository.TransactionManager, logger *slog.Logger) usecase.UserPaymentUsecase {
	return &userPaymentService{core{txManager: txManager, logger: logger}}
}

func paymentRepo(f repository.Factory) repository.Crud[entity.UserPayment] { return f.UserPayments() }

func (srv *userPaymentService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateUserPaymentInput) (*entity.UserPayment, error) {
	ownerID, err := resolveOwnerID(actor, input.UserID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Registering payment instrument", slog.Any("userID", ownerID))

	payment := &entity.UserPayment{
		UserID:        ownerID,
		AccountNumber: input.AccountNumber,
		PaymentType:   entity.PaymentType(input.PaymentType),
		Provider:      entity.PaymentProvider(input.Provider),
	}
	if err := payment.Validate(); err != nil {
		return nil, validationError(err)
	}

	err = srv.txManager.Execute(ctx, func(f repository.Factory) error {
		if _, err := f.Users().FindByID(ctx, ownerID); err != nil {
			return mapRepoError(err)
		}

		return f.UserPayments().Create(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (srv *userPaymentService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.UserPayment, error) {
	return getOwned(ctx, &srv.core, actor, paymentRepo, id, authz.UserPaymentOwner{})
}

func (srv *userPaymentService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.UserPayment], error) {
	return listOwned(ctx, &srv.core, actor, paymentRepo, q)
}

func (srv *userPaymentService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateUserPaymentInput) (*entity.UserPayment, error) {
	srv.log(ctx).Info("Updating payment instrument", slog.Any("paymentID", id))

	if err := requireOwnerReassignAdmin(actor, input.UserID); err != nil {
		return nil, err
	}

	return updateOwned(ctx, &srv.core, actor, paymentRepo, id, authz.UserPaymentOwner{},
		func(p *entity.UserPayment) error {
			if input.UserID != nil {
				p.UserID = *input.UserID
			}
			if input.AccountNumber != nil {
				p.AccountNumber = *input.AccountNumber
			}
			if input.PaymentType != nil {
				p.PaymentType = entity.PaymentType(*input.PaymentType)
			}
			if input.Provider != nil {
				p.Provider = entity.PaymentProvider(*input.Provider)
			}

			return nil
		},
		func(p *entity.UserPayment) error { return p.Validate() },
		func(p *entity.UserPayment) refCheck {
			if input.UserID == nil {
				return nil
			}

			return ownerExists(p.UserID)
		},
	)
}

func (srv *userPaymentService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting payment instrument", slog.Any("paymentID", id))

	return deleteOwned(ctx, &srv.core, actor, id, authz.UserPaymentOwner{}, deleteUserPaymentCascade)
}

// orderDetailService implements the OrderDetailUsecase interface.
type orderDetailService struct {
	core
}

// NewOrderDetailService is the constructor for orderDetailService.
func NewOrderDetailService(txManager repository.TransactionManager, logger *slog.Logger) usecase.OrderDetailUsecase {
	return &orderDetailService{core{txManager: txManager, logger: logger}}
}

func orderRepo(f repository.Factory) repository.Crud[entity.OrderDetail] { return f.OrderDetails() }

// checkOrderPayment verifies the payment instrument exists and belongs to the
// ordering user.
func checkOrderPayment(ctx context.Context, f repository.Factory, order *entity.OrderDetail) error {
	payment, err := f.UserPayments().FindByID(ctx, order.UserPaymentID)
	if err != nil {
		return mapRepoError(err)
	}
	if payment.UserID != order.UserID {
		return errors.WithStack(domainerrors.ErrValidationFailed.
			WithDetails("userPaymentId must reference a payment instrument of the ordering user"))
	}

	return nil
}

func (srv *orderDetailService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateOrderDetailInput) (*entity.OrderDetail, error) {
	ownerID, err := resolveOwnerID(actor, input.UserID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Placing order", slog.Any("userID", ownerID), slog.Any("paymentID", input.UserPaymentID))

	order := &entity.OrderDetail{
		UserID:        ownerID,
		UserPaymentID: input.UserPaymentID,
		Total:         input.Total,
	}
	if err := order.Validate(); err != nil {
		return nil, validationError(err)
	}

	err = srv.txManager.Execute(ctx, func(f repository.Factory) error {
		if _, err := f.Users().FindByID(ctx, ownerID); err != nil {
			return mapRepoError(err)
		}
		if err := checkOrderPayment(ctx, f, order); err != nil {
			return err
		}

		return f.OrderDetails().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (srv *orderDetailService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.OrderDetail, error) {
	return getOwned(ctx, &srv.core, actor, orderRepo, id, authz.OrderDetailOwner{})
}

func (srv *orderDetailService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.OrderDetail], error) {
	return listOwned(ctx, &srv.core, actor, orderRepo, q)
}

func (srv *orderDetailService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateOrderDetailInput) (*entity.OrderDetail, error) {
	srv.log(ctx).Info("Updating order", slog.Any("orderID", id))

	if err := requireOwnerReassignAdmin(actor, input.UserID); err != nil {
		return nil, err
	}

	return updateOwned(ctx, &srv.core, actor, orderRepo, id, authz.OrderDetailOwner{},
		func(o *entity.OrderDetail) error {
			if input.UserID != nil {
				o.UserID = *input.UserID
			}
			if input.UserPaymentID != nil {
				o.UserPaymentID = *input.UserPaymentID
			}
			if input.Total != nil {
				o.Total = *input.Total
			}

			return nil
		},
		func(o *entity.OrderDetail) error { return o.Validate() },
		func(o *entity.OrderDetail) refCheck {
			if input.UserPaymentID == nil && input.UserID == nil {
				return nil
			}

			// A new owner or a new instrument both re-trigger the
			// payment-belongs-to-owner check.
			return func(ctx context.Context, f repository.Factory) error {
				if input.UserID != nil {
					if err := ownerExists(o.UserID)(ctx, f); err != nil {
						return err
					}
				}

				return checkOrderPayment(ctx, f, o)
			}
		},
	)
}

func (srv *orderDetailService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting order", slog.Any("orderID", id))

	return deleteOwned(ctx, &srv.core, actor, id, authz.OrderDetailOwner{}, deleteOrderDetailCascade)
}

// orderItemService implements the OrderItemUsecase interface. Ownership
// always resolves through the parent order.
type orderItemService struct {
	core
}

// NewOrderItemService is the constructor for orderItemService.
func NewOrderItemService(txManager repository.TransactionManager, logger *slog.Logger) usecase.OrderItemUsecase {
	return &orderItemService{core{txManager: txManager, logger: logger}}
}

func orderItemRepo(f repository.Factory) repository.Crud[entity.OrderItem] { return f.OrderItems() }

func orderOwner(ctx context.Context, f repository.Factory, orderID uuid.UUID) (uuid.UUID, error) {
	return authz.OrderDetailOwner{}.ResolveOwner(ctx, f, orderID)
}

func (srv *orderItemService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateOrderItemInput) (*entity.OrderItem, error) {
	srv.log(ctx).Info("Adding order item", slog.Any("orderID", input.OrderDetailID), slog.Any("albumID", input.AlbumID))

	item := &entity.OrderItem{
		OrderDetailID: input.OrderDetailID,
		AlbumID:       input.AlbumID,
		Quantity:      input.Quantity,
	}
	if err := item.Validate(); err != nil {
		return nil, validationError(err)
	}

	err := srv.txManager.Execute(ctx, func(f repository.Factory) error {
		// Referenced rows are checked before ownership, as in cart item creation.
		ownerID, err := orderOwner(ctx, f, item.OrderDetailID)
		if err != nil {
			return mapRepoError(err)
		}
		if _, err := f.Albums().FindByID(ctx, item.AlbumID); err != nil {
			return mapRepoError(err)
		}
		if err := authz.RequireOwner(actor, ownerID); err != nil {
			return err
		}

		return f.OrderItems().Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (srv *orderItemService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.OrderItem, error) {
	return getOwned(ctx, &srv.core, actor, orderItemRepo, id, authz.OrderItemOwner{})
}

func (srv *orderItemService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.OrderItem], error) {
	return listOwnedViaParent(ctx, &srv.core, actor, orderItemRepo, q, "orderDetailId", orderOwner)
}

func (srv *orderItemService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateOrderItemInput) (*entity.OrderItem, error) {
	srv.log(ctx).Info("Updating order item", slog.Any("orderItemID", id))

	return updateOwned(ctx, &srv.core, actor, orderItemRepo, id, authz.OrderItemOwner{},
		func(oi *entity.OrderItem) error {
			if input.Quantity != nil {
				oi.Quantity = *input.Quantity
			}

			return nil
		},
		func(oi *entity.OrderItem) error { return oi.Validate() },
		nil,
	)
}

func (srv *orderItemService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting order item", slog.Any("orderItemID", id))

	// Order items have no dependents; the cascade is a plain delete.
	return deleteOwned(ctx, &srv.core, actor, id, authz.OrderItemOwner{},
		func(ctx context.Context, f repository.Factory, id uuid.UUID) error {
			return f.OrderItems().Delete(ctx, id)
		})
}
