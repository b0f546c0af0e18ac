package handler

import (
	"groove/internal/domain/entity"
	"groove/internal/usecase"
)

// ShoppingSessionHandler serves the shopping session endpoints.
type ShoppingSessionHandler struct {
	crudHandler[entity.ShoppingSession, usecase.CreateShoppingSessionInput, usecase.UpdateShoppingSessionInput]
}

// NewShoppingSessionHandler creates a new ShoppingSessionHandler.
func NewShoppingSessionHandler(sessionUsecase usecase.ShoppingSessionUsecase) *ShoppingSessionHandler {
	return &ShoppingSessionHandler{crudHandler[entity.ShoppingSession, usecase.CreateShoppingSessionInput, usecase.UpdateShoppingSessionInput]{uc: sessionUsecase}}
}

// CartItemHandler serves the cart item endpoints.
type CartItemHandler struct {
	crudHandler[entity.CartItem, usecase.CreateCartItemInput, usecase.UpdateCartItemInput]
}

// NewCartItemHandler creates a new CartItemHandler.
func NewCartItemHandler(cartItemUsecase usecase.CartItemUsecase) *CartItemHandler {
	return &CartItemHandler{crudHandler[entity.CartItem, usecase.CreateCartItemInput, usecase.UpdateCartItemInput]{uc: cartItemUsecase}}
}

// UserPaymentHandler serves the payment instrument endpoints.
type UserPaymentHandler struct {
	crudHandler[entity.UserPayment, usecase.CreateUserPaymentInput, usecase.UpdateUserPaymentInput]
}

// NewUserPaymentHandler creates a new UserPaymentHandler.
func NewUserPaymentHandler(paymentUsecase usecase.UserPaymentUsecase) *UserPaymentHandler {
	return &UserPaymentHandler{crudHandler[entity.UserPayment, usecase.CreateUserPaymentInput, usecase.UpdateUserPaymentInput]{uc: paymentUsecase}}
}

// OrderDetailHandler serves the order endpoints.
type OrderDetailHandler struct {
	crudHandler[entity.OrderDetail, usecase.CreateOrderDetailInput, usecase.UpdateOrderDetailInput]
}

// NewOrderDetailHandler creates a new OrderDetailHandler.
func NewOrderDetailHandler(orderUsecase usecase.OrderDetailUsecase) *OrderDetailHandler {
	return &OrderDetailHandler{crudHandler[entity.OrderDetail, usecase.CreateOrderDetailInput, usecase.UpdateOrderDetailInput]{uc: orderUsecase}}
}

// OrderItemHandler serves the order line item endpoints.
type OrderItemHandler struct {
	crudHandler[entity.OrderItem, usecase.CreateOrderItemInput, usecase.UpdateOrderItemInput]
}

// NewOrderItemHandler creates a new OrderItemHandler.
func NewOrderItemHandler(orderItemUsecase usecase.OrderItemUsecase) *OrderItemHandler {
	return &OrderItemHandler{crudHandler[entity.OrderItem, usecase.CreateOrderItemInput, usecase.UpdateOrderItemInput]{uc: orderItemUsecase}}
}
