// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"net/http"
	"strconv"

	deliverycontext "groove/internal/delivery/context"
	"groove/internal/delivery/http/response"
	"groove/internal/domain/authz"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}

// actor pulls the authenticated caller off the request. The auth middleware
// guarantees it is present on protected routes.
func actor(c echo.Context) (authz.Actor, error) {
	a, ok := deliverycontext.GetActor(c)
	if !ok {
		return authz.Actor{}, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return a, nil
}

// bindAndValidate decodes the JSON body into a fresh input and runs the
// validate tags against it.
func bindAndValidate[T any](c echo.Context) (*T, error) {
	input := new(T)
	if err := c.Bind(input); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}
	if err := c.Validate(input); err != nil {
		return nil, err
	}

	return input, nil
}

// pathID parses the :id path parameter. A syntactically invalid id behaves
// like any other id that does not resolve.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrNotFound)
	}

	return id, nil
}

// reserved query keys that never act as filters.
var reservedQueryKeys = map[string]struct{}{
	"limit":  {},
	"page":   {},
	"sortBy": {},
}

// listQuery assembles a collection query from the URL: limit, page and sortBy
// are pagination controls, every other single-valued parameter is an
// exact-match filter candidate (the repositories whitelist actual columns).
func listQuery(c echo.Context) (repository.Query, error) {
	q := repository.Query{Filter: map[string]string{}}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return q, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer"))
		}
		q.Limit = limit
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return q, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("page must be a non-negative integer"))
		}
		q.Page = page
	}
	q.SortBy = c.QueryParam("sortBy")

	for key, values := range c.QueryParams() {
		if _, reserved := reservedQueryKeys[key]; reserved || len(values) == 0 {
			continue
		}
		q.Filter[key] = values[0]
	}

	return q, nil
}

// crudUsecase is the uniform shape every entity usecase exposes. E is the
// entity, C and U the create and update inputs.
type crudUsecase[E any, C any, U any] interface {
	Create(ctx context.Context, actor authz.Actor, input *C) (*E, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*E, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[E], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *U) (*E, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// crudHandler wires the five collection endpoints of one entity onto its
// usecase.
type crudHandler[E any, C any, U any] struct {
	uc crudUsecase[E, C, U]
}

func (h *crudHandler[E, C, U]) Create(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	input, err := bindAndValidate[C](c)
	if err != nil {
		return err
	}

	e, err := h.uc.Create(c.Request().Context(), a, input)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, e)
}

func (h *crudHandler[E, C, U]) Get(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	e, err := h.uc.Get(c.Request().Context(), a, id)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, e)
}

func (h *crudHandler[E, C, U]) List(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	q, err := listQuery(c)
	if err != nil {
		return err
	}

	page, err := h.uc.List(c.Request().Context(), a, q)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, page)
}

func (h *crudHandler[E, C, U]) Update(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	input, err := bindAndValidate[U](c)
	if err != nil {
		return err
	}

	e, err := h.uc.Update(c.Request().Context(), a, id, input)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, e)
}

func (h *crudHandler[E, C, U]) Delete(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), a, id); err != nil {
		return err
	}

	return response.NoContent(c)
}
