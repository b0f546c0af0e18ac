// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "groove/internal/delivery/context"
	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// core bundles the dependencies every CRUD service shares.
type core struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (c *core) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// notFoundSentinels lists every repository not-found error so failures can be
// mapped to the 404 taxonomy in one place.
var notFoundSentinels = []error{
	repository.ErrUserNotFound,
	repository.ErrLabelNotFound,
	repository.ErrArtistNotFound,
	repository.ErrPersonNotFound,
	repository.ErrBandMemberNotFound,
	repository.ErrRecordNotFound,
	repository.ErrGenreNotFound,
	repository.ErrRecordGenreNotFound,
	repository.ErrAlbumNotFound,
	repository.ErrShoppingSessionNotFound,
	repository.ErrCartItemNotFound,
	repository.ErrUserPaymentNotFound,
	repository.ErrOrderDetailNotFound,
	repository.ErrOrderItemNotFound,
	repository.ErrUserAddressNotFound,
	repository.ErrRefreshTokenNotFound,
}

// mapRepoError converts repository sentinels into the application error
// taxonomy. Errors that already carry an AppError pass through unchanged.
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			return errors.Wrap(domainerrors.ErrNotFound, sentinel.Error())
		}
	}

	return err
}

// validationError wraps an entity validation failure with the 400 taxonomy,
// keeping the specific constraint message as details.
func validationError(err error) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
}

// ownerFunc extracts the owning user of an already-loaded entity. One-hop
// entities walk a foreign key to the parent carrying the userId.
type ownerFunc[E any] func(ctx context.Context, f repository.Factory, e *E) (uuid.UUID, error)

// refCheck verifies that every entity referenced by a payload exists. Missing
// references surface as 404 through mapRepoError.
type refCheck func(ctx context.Context, f repository.Factory) error

// getCatalog loads one catalog entity. Reads are role-gated only.
func getCatalog[E any](ctx context.Context, c *core, actor authz.Actor, perm authz.Permission,
	repoFn func(repository.Factory) repository.Crud[E], id uuid.UUID) (*E, error) {

	if err := authz.Require(actor, perm); err != nil {
		return nil, err
	}

	var out *E
	err := c.txManager.Execute(ctx, func(f repository.Factory) error {
		e, err := repoFn(f).FindByID(ctx, id)
		if err != nil {
			return mapRepoError(err)
		}
		out = e

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// listCatalog queries one page of a catalog collection.
func listCatalog[E any](ctx context.Context, c *core, actor authz.Actor, perm authz.Permission,
	repoFn func(repository.Factory) repository.Crud[E], q repository.Query) (*repository.Page[E], error) {

	if err := authz.Require(actor, perm); err != nil {
		return nil, err
	}

	var page *repository.Page[E]
	err := c.txManager.Execute(ctx, func(f repository.Factory) error {
		p, err := repoFn(f).Find(ctx, q)
		if err != nil {
			return err
		}
		page = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// createCatalog persists a new catalog entity after validation. Mutations are
// admin-only.
func createCatalog[E any](ctx context.Context, c *core, actor authz.Actor, perm authz.Permission,
	repoFn func(repository.Factory) repository.Crud[E], e *E, validate func() error, refs refCheck) error {

	if err := authz.Require(actor, perm); err != nil {
		return err
	}
	if err := validate(); err != nil {
		return validationError(err)
	}

	return c.txManager.Execute(ctx, func(f repository.Factory) error {
		if refs != nil {
			if err := refs(ctx, f); err != nil {
				return mapRepoError(err)
			}
		}

		return repoFn(f).Create(ctx, e)
	})
}

// updateCatalog patches an existing catalog entity and persists it.
func updateCatalog[E any](ctx context.Context, c *core, actor authz.Actor, perm authz.Permission,
	repoFn func(repository.Factory) repository.Crud[E], id uuid.UUID,
	apply func(*E) error, validate func(*E) error, refs func(*E) refCheck) (*E, error) {

	if err := authz.Require(actor, perm); err != nil {
		return nil, err
	}

	var out *E
	err := c.txManager.Execute(ctx, func(f repository.Factory) error {
		e, err := repoFn(f).FindByID(ctx, id)
		if err != nil {
			return mapRepoError(err)
		}
		if err := apply(e); err != nil {
			return validationError(err)
		}
		if err := validate(e); err != nil {
			return validationError(err)
		}
		if refs != nil {
			if check := refs(e); check != nil {
				if err := check(ctx, f); err != nil {
					return mapRepoError(err)
				}
			}
		}
		if err := repoFn(f).Update(ctx, e); err != nil {
			return err
		}
		out = e

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// deleteCatalog removes a catalog entity together with its dependents. The
// cascade runs inside one transaction, all-or-nothing.
func deleteCatalog[E any](ctx context.Context, c *core, actor authz.Actor, perm authz.Permission,
	repoFn func(repository.Factory) repository.Crud[E], id uuid.UUID,
	cascade func(ctx context.Context, f repository.Factory, id uuid.UUID) error) error {

	if err := authz.Require(actor, perm); err != nil {
		return err
	}

	return c.txManager.Execute(ctx, func(f repository.Factory) error {
		if _, err := repoFn(f).FindByID(ctx, id); err != nil {
			return mapRepoError(err)
		}

		return cascade(ctx, f, id)
	})
}

// getOwned loads one user-scoped entity. Admins pass outright, anyone else
// must be the resolved owning user.
func getOwned[E any](ctx context.Context, c *core, actor authz.Actor,
	repoFn func(repository.Factory) repository.Crud[E], id uuid.UUID, resolver authz.OwnerResolver) (*E, error) {

	var out *E
	err := c.txManager.Execute(ctx, func(f repository.Factory) error {
		if err := authz.Authorize(ctx, f, actor, resolver, id); err != nil {
			return mapRepoError(err)
		}
		e, err := repoFn(f).FindByID(ctx, id)
		if err != nil {
			return mapRepoError(err)
		}
		out = e

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// listOwned queries a user-scoped collection carrying a userId column.
// Non-admin queries are force-scoped to the caller regardless of the filter
// they sent.
func listOwned[E any](ctx context.Context, c *core, actor authz.Actor,
	repoFn func(repository.Factory) repository.Crud[E], q repository.Query) (*repository.Page[E], error) {

	if actor.Role != entity.RoleAdmin {
		if q.Filter == nil {
			q.Filter = map[string]string{}
		}
		q.Filter["userId"] = actor.ID.String()
	}

	var page *repository.Page[E]
	err := c.txManager.Execute(ctx, func(f repository.Factory) error {
		p, err := repoFn(f).Find(ctx, q)
		if err != nil {
			return err
		}
		page = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// listOwnedViaParent queries a collection whose ownership lives on a parent
// entity (cart items, order items). Non-admins must filter by the parent key
// and own that parent.
func listOwnedViaParent[E any](ctx context.Context, c *core, actor authz.Actor,
	repoFn func(repository.Factory) repository.Crud[E], q repository.Query,
	parentKey string, parentOwner func(ctx context.Context, f repository.Factory, parentID uuid.UUID) (uuid.UUID, error)) (*repository.Page[E], error) {

	var parentID uuid.UUID
	if actor.Role != entity.RoleAdmin {
		raw, ok := q.Filter[parentKey]
		if !ok {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.
				WithDetails("a " + parentKey + " filter is required"))
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.
				WithDetails(parentKey + " must be a valid id"))
		}
		parentID = id
	}

	var page *repository.Page[E]
	err := c.txManager.Execute(ctx, func(f repository.Factory) error {
		if actor.Role != entity.RoleAdmin {
			ownerID, err := parentOwner(ctx, f, parentID)
			if err != nil {
				return mapRepoError(err)
			}
			if err := authz.RequireOwner(actor, ownerID); err != nil {
				return err
			}
		}

		p, err := repoFn(f).Find(ctx, q)
		if err != nil {
			return err
		}
		page = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// updateOwned patches a user-scoped entity after ownership resolution.
func updateOwned[E any](ctx context.Context, c *core, actor authz.Actor,
	repoFn func(repository.Factory) repository.Crud[E], id uuid.UUID, resolver authz.OwnerResolver,
	apply func(*E) error, validate func(*E) error, refs func(*E) refCheck) (*E, error) {

	var out *E
	err := c.txManager.Execute(ctx, func(f repository.Factory) error {
		if err := authz.Authorize(ctx, f, actor, resolver, id); err != nil {
			return mapRepoError(err)
		}
		e, err := repoFn(f).FindByID(ctx, id)
		if err != nil {
			return mapRepoError(err)
		}
		if err := apply(e); err != nil {
			return validationError(err)
		}
		if err := validate(e); err != nil {
			return validationError(err)
		}
		if refs != nil {
			if check := refs(e); check != nil {
				if err := check(ctx, f); err != nil {
					return mapRepoError(err)
				}
			}
		}
		if err := repoFn(f).Update(ctx, e); err != nil {
			return err
		}
		out = e

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// deleteOwned removes a user-scoped entity and its dependents after ownership
// resolution, all inside one transaction.
func deleteOwned(ctx context.Context, c *core, actor authz.Actor, id uuid.UUID, resolver authz.OwnerResolver,
	cascade func(ctx context.Context, f repository.Factory, id uuid.UUID) error) error {

	return c.txManager.Execute(ctx, func(f repository.Factory) error {
		if err := authz.Authorize(ctx, f, actor, resolver, id); err != nil {
			return mapRepoError(err)
		}

		return cascade(ctx, f, id)
	})
}

// requireOwnerReassignAdmin gates moving a resource to another user's account:
// the owning userId may only change through an explicit admin update.
func requireOwnerReassignAdmin(actor authz.Actor, newOwner *uuid.UUID) error {
	if newOwner != nil && actor.Role != entity.RoleAdmin {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

// ownerExists verifies the (possibly reassigned) owning user exists.
func ownerExists(userID uuid.UUID) refCheck {
	return func(ctx context.Context, f repository.Factory) error {
		_, err := f.Users().FindByID(ctx, userID)

		return err
	}
}

// resolveOwnerID picks the owning user for a create payload: an explicit
// userId if given, otherwise the caller. Non-admins may only create resources
// under their own account.
func resolveOwnerID(actor authz.Actor, requested uuid.UUID) (uuid.UUID, error) {
	if requested == uuid.Nil {
		return actor.ID, nil
	}
	if actor.Role != entity.RoleAdmin && requested != actor.ID {
		return uuid.Nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return requested, nil
}
