package impl

import (
	"context"
	"log/slog"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	"groove/internal/domain/repository"
	"groove/internal/usecase"

	"github.com/google/uuid"
)

// albumService implements the AlbumUsecase interface. Listings are the
// marketplace surface: everyone may browse them, only the seller (or an
// admin) may change them.
type albumService struct {
	core
}

// NewAlbumService is the constructor for albumService.
func NewAlbumService(txManager repository.TransactionManager, logger *slog.Logger) usecase.AlbumUsecase {
	return &albumService{core{txManager: txManager, logger: logger}}
}

func albumRepo(f repository.Factory) repository.Crud[entity.Album] { return f.Albums() }

// albumRefs verifies the seller and the record behind a listing exist.
func albumRefs(a *entity.Album) refCheck {
	return func(ctx context.Context, f repository.Factory) error {
		if _, err := f.Users().FindByID(ctx, a.UserID); err != nil {
			return err
		}
		_, err := f.Records().FindByID(ctx, a.RecordID)

		return err
	}
}

func (srv *albumService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateAlbumInput) (*entity.Album, error) {
	ownerID, err := resolveOwnerID(actor, input.UserID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Creating album listing", slog.Any("userID", ownerID), slog.Any("recordID", input.RecordID))

	album := &entity.Album{
		UserID:      ownerID,
		RecordID:    input.RecordID,
		Description: input.Description,
		Stock:       input.Stock,
		Year:        input.Year,
		New:         input.New,
		Price:       input.Price,
		Type:        entity.AlbumType(input.Type),
	}
	if err := album.Validate(); err != nil {
		return nil, validationError(err)
	}

	err = srv.txManager.Execute(ctx, func(f repository.Factory) error {
		if err := albumRefs(album)(ctx, f); err != nil {
			return mapRepoError(err)
		}

		return f.Albums().Create(ctx, album)
	})
	if err != nil {
		return nil, err
	}

	return album, nil
}

func (srv *albumService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Album, error) {
	return getCatalog(ctx, &srv.core, actor, authz.PermGetAlbums, albumRepo, id)
}

func (srv *albumService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Album], error) {
	return listCatalog(ctx, &srv.core, actor, authz.PermGetAlbums, albumRepo, q)
}

func (srv *albumService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateAlbumInput) (*entity.Album, error) {
	srv.log(ctx).Info("Updating album listing", slog.Any("albumID", id))

	if err := requireOwnerReassignAdmin(actor, input.UserID); err != nil {
		return nil, err
	}

	return updateOwned(ctx, &srv.core, actor, albumRepo, id, authz.AlbumOwner{},
		func(a *entity.Album) error {
			if input.UserID != nil {
				a.UserID = *input.UserID
			}
			if input.Description != nil {
				a.Description = *input.Description
			}
			if input.Stock != nil {
				a.Stock = *input.Stock
			}
			if input.Year != nil {
				a.Year = *input.Year
			}
			if input.New != nil {
				a.New = *input.New
			}
			if input.Price != nil {
				a.Price = *input.Price
			}
			if input.Type != nil {
				a.Type = entity.AlbumType(*input.Type)
			}

			return nil
		},
		func(a *entity.Album) error { return a.Validate() },
		func(a *entity.Album) refCheck {
			if input.UserID == nil {
				return nil
			}

			return ownerExists(a.UserID)
		},
	)
}

func (srv *albumService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting album listing", slog.Any("albumID", id))

	return deleteOwned(ctx, &srv.core, actor, id, authz.AlbumOwner{}, deleteAlbumCascade)
}
