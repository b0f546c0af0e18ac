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

// recordService implements the RecordUsecase interface.
type recordService struct {
	core
}

// NewRecordService is the constructor for recordService.
func NewRecordService(txManager repository.TransactionManager, logger *slog.Logger) usecase.RecordUsecase {
	return &recordService{core{txManager: txManager, logger: logger}}
}

func recordRepo(f repository.Factory) repository.Crud[entity.Record] { return f.Records() }

// recordRefs verifies the artist and label a record references exist.
func recordRefs(r *entity.Record) refCheck {
	return func(ctx context.Context, f repository.Factory) error {
		if _, err := f.Artists().FindByID(ctx, r.ArtistID); err != nil {
			return err
		}
		_, err := f.Labels().FindByID(ctx, r.LabelID)

		return err
	}
}

func (srv *recordService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateRecordInput) (*entity.Record, error) {
	srv.log(ctx).Info("Creating record", slog.String("name", input.Name))

	record := &entity.Record{
		ArtistID:       input.ArtistID,
		LabelID:        input.LabelID,
		Name:           input.Name,
		ReleaseYear:    input.ReleaseYear,
		Country:        input.Country,
		Duration:       input.Duration,
		Language:       input.Language,
		RecordType:     entity.RecordType(input.RecordType),
		NumberOfTracks: input.NumberOfTracks,
	}
	if err := createCatalog(ctx, &srv.core, actor, authz.PermManageRecords, recordRepo, record, record.Validate, recordRefs(record)); err != nil {
		return nil, err
	}

	return record, nil
}

func (srv *recordService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Record, error) {
	return getCatalog(ctx, &srv.core, actor, authz.PermGetRecords, recordRepo, id)
}

func (srv *recordService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Record], error) {
	return listCatalog(ctx, &srv.core, actor, authz.PermGetRecords, recordRepo, q)
}

func (srv *recordService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateRecordInput) (*entity.Record, error) {
	srv.log(ctx).Info("Updating record", slog.Any("recordID", id))

	return updateCatalog(ctx, &srv.core, actor, authz.PermManageRecords, recordRepo, id,
		func(r *entity.Record) error {
			if input.ArtistID != nil {
				r.ArtistID = *input.ArtistID
			}
			if input.LabelID != nil {
				r.LabelID = *input.LabelID
			}
			if input.Name != nil {
				r.Name = *input.Name
			}
			if input.ReleaseYear != nil {
				r.ReleaseYear = *input.ReleaseYear
			}
			if input.Country != nil {
				r.Country = *input.Country
			}
			if input.Duration != nil {
				r.Duration = *input.Duration
			}
			if input.Language != nil {
				r.Language = *input.Language
			}
			if input.RecordType != nil {
				r.RecordType = entity.RecordType(*input.RecordType)
			}
			if input.NumberOfTracks != nil {
				r.NumberOfTracks = *input.NumberOfTracks
			}

			return nil
		},
		func(r *entity.Record) error { return r.Validate() },
		func(r *entity.Record) refCheck {
			if input.ArtistID == nil && input.LabelID == nil {
				return nil
			}

			return recordRefs(r)
		},
	)
}

func (srv *recordService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting record", slog.Any("recordID", id))

	return deleteCatalog(ctx, &srv.core, actor, authz.PermManageRecords, recordRepo, id, deleteRecordCascade)
}

// recordGenreService implements the RecordGenreUsecase interface.
type recordGenreService struct {
	core
}

// NewRecordGenreService is the constructor for recordGenreService.
func NewRecordGenreService(txManager repository.TransactionManager, logger *slog.Logger) usecase.RecordGenreUsecase {
	return &recordGenreService{core{txManager: txManager, logger: logger}}
}

func recordGenreRepo(f repository.Factory) repository.Crud[entity.RecordGenre] {
	return f.RecordGenres()
}

// recordGenreRefs verifies both sides of a genre link exist.
func recordGenreRefs(rg *entity.RecordGenre) refCheck {
	return func(ctx context.Context, f repository.Factory) error {
		if _, err := f.Genres().FindByID(ctx, rg.GenreID); err != nil {
			return err
		}
		_, err := f.Records().FindByID(ctx, rg.RecordID)

		return err
	}
}

func (srv *recordGenreService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateRecordGenreInput) (*entity.RecordGenre, error) {
	srv.log(ctx).Info("Creating record genre link", slog.Any("recordID", input.RecordID), slog.Any("genreID", input.GenreID))

	link := &entity.RecordGenre{GenreID: input.GenreID, RecordID: input.RecordID}
	if err := createCatalog(ctx, &srv.core, actor, authz.PermManageRecordGenres, recordGenreRepo, link, link.Validate, recordGenreRefs(link)); err != nil {
		return nil, err
	}

	return link, nil
}

func (srv *recordGenreService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.RecordGenre, error) {
	return getCatalog(ctx, &srv.core, actor, authz.PermGetRecordGenres, recordGenreRepo, id)
}

func (srv *recordGenreService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.RecordGenre], error) {
	return listCatalog(ctx, &srv.core, actor, authz.PermGetRecordGenres, recordGenreRepo, q)
}

func (srv *recordGenreService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateRecordGenreInput) (*entity.RecordGenre, error) {
	srv.log(ctx).Info("Updating record genre link", slog.Any("recordGenreID", id))

	return updateCatalog(ctx, &srv.core, actor, authz.PermManageRecordGenres, recordGenreRepo, id,
		func(rg *entity.RecordGenre) error {
			if input.GenreID != nil {
				rg.GenreID = *input.GenreID
			}
			if input.RecordID != nil {
				rg.RecordID = *input.RecordID
			}

			return nil
		},
		func(rg *entity.RecordGenre) error { return rg.Validate() },
		func(rg *entity.RecordGenre) refCheck {
			if input.GenreID == nil && input.RecordID == nil {
				return nil
			}

			return recordGenreRefs(rg)
		},
	)
}

func (srv *recordGenreService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting record genre link", slog.Any("recordGenreID", id))

	// Genre links have no dependents; the cascade is a plain delete.
	return deleteCatalog(ctx, &srv.core, actor, authz.PermManageRecordGenres, recordGenreRepo, id,
		func(ctx context.Context, f repository.Factory, id uuid.UUID) error {
			return f.RecordGenres().Delete(ctx, id)
		})
}
