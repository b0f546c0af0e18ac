package handler

import (
	"groove/internal/domain/entity"
	"groove/internal/usecase"
)

// UserHandler serves the user account endpoints.
type UserHandler struct {
	crudHandler[entity.User, usecase.CreateUserInput, usecase.UpdateUserInput]
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{crudHandler[entity.User, usecase.CreateUserInput, usecase.UpdateUserInput]{uc: userUsecase}}
}

// UserAddressHandler serves the shipping address endpoints.
type UserAddressHandler struct {
	crudHandler[entity.UserAddress, usecase.CreateUserAddressInput, usecase.UpdateUserAddressInput]
}

// NewUserAddressHandler creates a new UserAddressHandler.
func NewUserAddressHandler(addressUsecase usecase.UserAddressUsecase) *UserAddressHandler {
	return &UserAddressHandler{crudHandler[entity.UserAddress, usecase.CreateUserAddressInput, usecase.UpdateUserAddressInput]{uc: addressUsecase}}
}
