// Package authz implements role- and ownership-based authorization.
//
// Every mutating or single-resource operation runs the same procedure: if the
// caller's role grants the required permission outright, proceed; otherwise
// resolve the owning user of the target resource and compare it against the
// caller's identity. Resolution is stateless and re-runs from scratch on every
// call.
package authz

import (
	"context"

	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/errors"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, derived from a bearer token.
type Actor struct {
	ID   uuid.UUID
	Role entity.Role
}

// Permission names an operation group a role may be granted.
type Permission string

const (
	PermGetLabels          Permission = "getLabels"
	PermManageLabels       Permission = "manageLabels"
	PermGetArtists         Permission = "getArtists"
	PermManageArtists      Permission = "manageArtists"
	PermGetPersons         Permission = "getPersons"
	PermManagePersons      Permission = "managePersons"
	PermGetBandMembers     Permission = "getBandMembers"
	PermManageBandMembers  Permission = "manageBandMembers"
	PermGetRecords         Permission = "getRecords"
	PermManageRecords      Permission = "manageRecords"
	PermGetGenres          Permission = "getGenres"
	PermManageGenres       Permission = "manageGenres"
	PermGetRecordGenres    Permission = "getRecordGenres"
	PermManageRecordGenres Permission = "manageRecordGenres"
	PermGetAlbums          Permission = "getAlbums"
	PermGetUsers           Permission = "getUsers"
	PermManageUsers        Permission = "manageUsers"
)

// userRights is the permission set granted to the regular user role. Admins
// are granted every permission, so they are not enumerated here.
var userRights = map[Permission]struct{}{
	PermGetLabels:       {},
	PermGetArtists:      {},
	PermGetPersons:      {},
	PermGetBandMembers:  {},
	PermGetRecords:      {},
	PermGetGenres:       {},
	PermGetRecordGenres: {},
	PermGetAlbums:       {},
}

// Can reports whether the actor's role grants the permission outright.
func Can(actor Actor, p Permission) bool {
	if actor.Role == entity.RoleAdmin {
		return true
	}
	_, ok := userRights[p]

	return ok
}

// Require returns ErrForbidden unless the actor's role grants the permission.
func Require(actor Actor, p Permission) error {
	if !Can(actor, p) {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

// RequireOwner returns ErrForbidden unless the actor is an admin or the
// resolved owning user of the resource.
func RequireOwner(actor Actor, ownerID uuid.UUID) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	if actor.ID != ownerID {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

// OwnerResolver maps a resource to its owning user. Direct resources read a
// userId field off the loaded document; one-hop resources fetch their parent
// first.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, f repository.Factory, resourceID uuid.UUID) (uuid.UUID, error)
}

// Authorize runs the full authorization procedure against a target resource:
// admin passes outright, anyone else must be the resolved owning user.
// Resolver errors (typically not-found sentinels) propagate unchanged so the
// caller can map them to 404.
func Authorize(ctx context.Context, f repository.Factory, actor Actor, r OwnerResolver, resourceID uuid.UUID) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}

	ownerID, err := r.ResolveOwner(ctx, f, resourceID)
	if err != nil {
		return err
	}

	return RequireOwner(actor, ownerID)
}
