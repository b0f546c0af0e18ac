package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "groove/internal/delivery/context"
	"groove/internal/delivery/http/validator"
	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/errors"
	"groove/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLabelUsecase lets each test plug in just the method it exercises.
type fakeLabelUsecase struct {
	create func(ctx context.Context, actor authz.Actor, input *usecase.CreateLabelInput) (*entity.Label, error)
	get    func(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Label, error)
	list   func(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Label], error)
	update func(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateLabelInput) (*entity.Label, error)
	delete func(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

func (f *fakeLabelUsecase) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateLabelInput) (*entity.Label, error) {
	return f.create(ctx, actor, input)
}

func (f *fakeLabelUsecase) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Label, error) {
	return f.get(ctx, actor, id)
}

func (f *fakeLabelUsecase) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Label], error) {
	return f.list(ctx, actor, q)
}

func (f *fakeLabelUsecase) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateLabelInput) (*entity.Label, error) {
	return f.update(ctx, actor, id, input)
}

func (f *fakeLabelUsecase) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	return f.delete(ctx, actor, id)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func asBaseError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an application error, got %v", err)
	assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestCrudHandler_Create(t *testing.T) {
	uc := &fakeLabelUsecase{
		create: func(_ context.Context, actor authz.Actor, input *usecase.CreateLabelInput) (*entity.Label, error) {
			return &entity.Label{ID: uuid.New(), Name: input.Name, Country: input.Country}, nil
		},
	}
	h := NewLabelHandler(uc)

	c, rec := newTestContext(t, http.MethodPost, "/v1/labels", `{"name":"Blue Note","country":"US"}`)
	deliverycontext.SetActor(c, authz.Actor{ID: uuid.New(), Role: entity.RoleAdmin})

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blue Note")
}

func TestCrudHandler_CreateWithoutActor(t *testing.T) {
	h := NewLabelHandler(&fakeLabelUsecase{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/labels", `{"name":"Blue Note"}`)

	asBaseError(t, h.Create(c), domainerrors.ErrUnauthorized)
}

func TestCrudHandler_CreateMalformedBody(t *testing.T) {
	h := NewLabelHandler(&fakeLabelUsecase{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/labels", `{"name":`)
	deliverycontext.SetActor(c, authz.Actor{ID: uuid.New(), Role: entity.RoleAdmin})

	asBaseError(t, h.Create(c), domainerrors.ErrValidationFailed)
}

func TestCrudHandler_CreateFailsValidationTags(t *testing.T) {
	h := NewLabelHandler(&fakeLabelUsecase{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/labels", `{"country":"US"}`)
	deliverycontext.SetActor(c, authz.Actor{ID: uuid.New(), Role: entity.RoleAdmin})

	asBaseError(t, h.Create(c), domainerrors.ErrValidationFailed)
}

func TestCrudHandler_GetMalformedID(t *testing.T) {
	h := NewLabelHandler(&fakeLabelUsecase{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/labels/not-a-uuid", "")
	deliverycontext.SetActor(c, authz.Actor{ID: uuid.New(), Role: entity.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	asBaseError(t, h.Get(c), domainerrors.ErrNotFound)
}

func TestCrudHandler_GetPropagatesUsecaseError(t *testing.T) {
	uc := &fakeLabelUsecase{
		get: func(context.Context, authz.Actor, uuid.UUID) (*entity.Label, error) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		},
	}
	h := NewLabelHandler(uc)

	c, _ := newTestContext(t, http.MethodGet, "/v1/labels/"+uuid.NewString(), "")
	deliverycontext.SetActor(c, authz.Actor{ID: uuid.New(), Role: entity.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	asBaseError(t, h.Get(c), domainerrors.ErrNotFound)
}

func TestCrudHandler_ListParsesQuery(t *testing.T) {
	var captured repository.Query
	uc := &fakeLabelUsecase{
		list: func(_ context.Context, _ authz.Actor, q repository.Query) (*repository.Page[entity.Label], error) {
			captured = q

			return &repository.Page[entity.Label]{Results: []*entity.Label{}, Page: q.Page, Limit: q.Limit}, nil
		},
	}
	h := NewLabelHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/labels?limit=5&page=2&sortBy=name:asc&country=US", "")
	deliverycontext.SetActor(c, authz.Actor{ID: uuid.New(), Role: entity.RoleUser})

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, captured.Limit)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, "name:asc", captured.SortBy)
	assert.Equal(t, map[string]string{"country": "US"}, captured.Filter)
}

func TestCrudHandler_ListRejectsBadLimit(t *testing.T) {
	h := NewLabelHandler(&fakeLabelUsecase{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/labels?limit=abc", "")
	deliverycontext.SetActor(c, authz.Actor{ID: uuid.New(), Role: entity.RoleUser})

	asBaseError(t, h.List(c), domainerrors.ErrValidationFailed)
}

func TestCrudHandler_Update(t *testing.T) {
	id := uuid.New()
	uc := &fakeLabelUsecase{
		update: func(_ context.Context, _ authz.Actor, gotID uuid.UUID, input *usecase.UpdateLabelInput) (*entity.Label, error) {
			assert.Equal(t, id, gotID)

			return &entity.Label{ID: gotID, Name: *input.Name}, nil
		},
	}
	h := NewLabelHandler(uc)

	c, rec := newTestContext(t, http.MethodPatch, "/v1/labels/"+id.String(), `{"name":"Impulse!"}`)
	deliverycontext.SetActor(c, authz.Actor{ID: uuid.New(), Role: entity.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Impulse!")
}

func TestCrudHandler_Delete(t *testing.T) {
	id := uuid.New()
	uc := &fakeLabelUsecase{
		delete: func(_ context.Context, _ authz.Actor, gotID uuid.UUID) error {
			assert.Equal(t, id, gotID)

			return nil
		},
	}
	h := NewLabelHandler(uc)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/labels/"+id.String(), "")
	deliverycontext.SetActor(c, authz.Actor{ID: uuid.New(), Role: entity.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
