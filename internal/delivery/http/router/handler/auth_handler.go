package handler

import (
	"net/http"

	"groove/internal/delivery/http/response"
	"groove/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register creates a new account and returns its first token pair.
func (h *AuthHandler) Register(c echo.Context) error {
	input, err := bindAndValidate[usecase.RegisterInput](c)
	if err != nil {
		return err
	}

	out, err := h.authUsecase.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, out)
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	input, err := bindAndValidate[usecase.LoginInput](c)
	if err != nil {
		return err
	}

	out, err := h.authUsecase.Login(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, out)
}

// Refresh rotates a refresh token into a fresh token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	input, err := bindAndValidate[usecase.RefreshInput](c)
	if err != nil {
		return err
	}

	out, err := h.authUsecase.Refresh(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, out)
}

// Logout revokes the session behind a refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	input, err := bindAndValidate[usecase.LogoutInput](c)
	if err != nil {
		return err
	}

	if err := h.authUsecase.Logout(c.Request().Context(), input); err != nil {
		return err
	}

	return response.NoContent(c)
}
