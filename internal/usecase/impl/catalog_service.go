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

// labelService implements the LabelUsecase interface.
type labelService struct {
	core
}

// NewLabelService is the constructor for labelService.
func NewLabelService(txManager repository.TransactionManager, logger *slog.Logger) usecase.LabelUsecase {
	return &labelService{core{txManager: txManager, logger: logger}}
}

func labelRepo(f repository.Factory) repository.Crud[entity.Label] { return f.Labels() }

func (srv *labelService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateLabelInput) (*entity.Label, error) {
	srv.log(ctx).Info("Creating label", slog.String("name", input.Name))

	label := &entity.Label{Name: input.Name, Country: input.Country}
	if err := createCatalog(ctx, &srv.core, actor, authz.PermManageLabels, labelRepo, label, label.Validate, nil); err != nil {
		return nil, err
	}

	return label, nil
}

func (srv *labelService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Label, error) {
	return getCatalog(ctx, &srv.core, actor, authz.PermGetLabels, labelRepo, id)
}

func (srv *labelService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Label], error) {
	return listCatalog(ctx, &srv.core, actor, authz.PermGetLabels, labelRepo, q)
}

func (srv *labelService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateLabelInput) (*entity.Label, error) {
	srv.log(ctx).Info("Updating label", slog.Any("labelID", id))

	return updateCatalog(ctx, &srv.core, actor, authz.PermManageLabels, labelRepo, id,
		func(l *entity.Label) error {
			if input.Name != nil {
				l.Name = *input.Name
			}
			if input.Country != nil {
				l.Country = *input.Country
			}

			return nil
		},
		func(l *entity.Label) error { return l.Validate() },
		nil,
	)
}

func (srv *labelService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting label", slog.Any("labelID", id))

	return deleteCatalog(ctx, &srv.core, actor, authz.PermManageLabels, labelRepo, id, deleteLabelCascade)
}

// artistService implements the ArtistUsecase interface.
type artistService struct {
	core
}

// NewArtistService is the constructor for artistService.
func NewArtistService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ArtistUsecase {
	return &artistService{core{txManager: txManager, logger: logger}}
}

func artistRepo(f repository.Factory) repository.Crud[entity.Artist] { return f.Artists() }

// artistRefs verifies the label an artist is signed to exists.
func artistRefs(a *entity.Artist) refCheck {
	return func(ctx context.Context, f repository.Factory) error {
		_, err := f.Labels().FindByID(ctx, a.LabelID)

		return err
	}
}

func (srv *artistService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateArtistInput) (*entity.Artist, error) {
	srv.log(ctx).Info("Creating artist", slog.String("name", input.Name))

	artist := &entity.Artist{Name: input.Name, Country: input.Country, LabelID: input.LabelID}
	if err := createCatalog(ctx, &srv.core, actor, authz.PermManageArtists, artistRepo, artist, artist.Validate, artistRefs(artist)); err != nil {
		return nil, err
	}

	return artist, nil
}

func (srv *artistService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Artist, error) {
	return getCatalog(ctx, &srv.core, actor, authz.PermGetArtists, artistRepo, id)
}

func (srv *artistService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Artist], error) {
	return listCatalog(ctx, &srv.core, actor, authz.PermGetArtists, artistRepo, q)
}

func (srv *artistService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateArtistInput) (*entity.Artist, error) {
	srv.log(ctx).Info("Updating artist", slog.Any("artistID", id))

	return updateCatalog(ctx, &srv.core, actor, authz.PermManageArtists, artistRepo, id,
		func(a *entity.Artist) error {
			if input.Name != nil {
				a.Name = *input.Name
			}
			if input.Country != nil {
				a.Country = *input.Country
			}
			if input.LabelID != nil {
				a.LabelID = *input.LabelID
			}

			return nil
		},
		func(a *entity.Artist) error { return a.Validate() },
		func(a *entity.Artist) refCheck {
			if input.LabelID == nil {
				return nil
			}

			return artistRefs(a)
		},
	)
}

func (srv *artistService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting artist", slog.Any("artistID", id))

	return deleteCatalog(ctx, &srv.core, actor, authz.PermManageArtists, artistRepo, id, deleteArtistCascade)
}

// personService implements the PersonUsecase interface.
type personService struct {
	core
}

// NewPersonService is the constructor for personService.
func NewPersonService(txManager repository.TransactionManager, logger *slog.Logger) usecase.PersonUsecase {
	return &personService{core{txManager: txManager, logger: logger}}
}

func personRepo(f repository.Factory) repository.Crud[entity.Person] { return f.Persons() }

func (srv *personService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreatePersonInput) (*entity.Person, error) {
	srv.log(ctx).Info("Creating person", slog.String("name", input.Name))

	person := &entity.Person{
		Name:        input.Name,
		DateOfBirth: input.DateOfBirth,
		Alive:       input.Alive,
		Nationality: input.Nationality,
		Gender:      input.Gender,
	}
	if err := createCatalog(ctx, &srv.core, actor, authz.PermManagePersons, personRepo, person, person.Validate, nil); err != nil {
		return nil, err
	}

	return person, nil
}

func (srv *personService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Person, error) {
	return getCatalog(ctx, &srv.core, actor, authz.PermGetPersons, personRepo, id)
}

func (srv *personService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Person], error) {
	return listCatalog(ctx, &srv.core, actor, authz.PermGetPersons, personRepo, q)
}

func (srv *personService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdatePersonInput) (*entity.Person, error) {
	srv.log(ctx).Info("Updating person", slog.Any("personID", id))

	return updateCatalog(ctx, &srv.core, actor, authz.PermManagePersons, personRepo, id,
		func(p *entity.Person) error {
			if input.Name != nil {
				p.Name = *input.Name
			}
			if input.DateOfBirth != nil {
				p.DateOfBirth = *input.DateOfBirth
			}
			if input.Alive != nil {
				p.Alive = *input.Alive
			}
			if input.Nationality != nil {
				p.Nationality = *input.Nationality
			}
			if input.Gender != nil {
				p.Gender = *input.Gender
			}

			return nil
		},
		func(p *entity.Person) error { return p.Validate() },
		nil,
	)
}

func (srv *personService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting person", slog.Any("personID", id))

	return deleteCatalog(ctx, &srv.core, actor, authz.PermManagePersons, personRepo, id, deletePersonCascade)
}

// bandMemberService implements the BandMemberUsecase interface.
type bandMemberService struct {
	core
}

// NewBandMemberService is the constructor for bandMemberService.
func NewBandMemberService(txManager repository.TransactionManager, logger *slog.Logger) usecase.BandMemberUsecase {
	return &bandMemberService{core{txManager: txManager, logger: logger}}
}

func bandMemberRepo(f repository.Factory) repository.Crud[entity.BandMember] { return f.BandMembers() }

// bandMemberRefs verifies both sides of a membership exist.
func bandMemberRefs(b *entity.BandMember) refCheck {
	return func(ctx context.Context, f repository.Factory) error {
		if _, err := f.Artists().FindByID(ctx, b.ArtistID); err != nil {
			return err
		}
		_, err := f.Persons().FindByID(ctx, b.PersonID)

		return err
	}
}

func (srv *bandMemberService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateBandMemberInput) (*entity.BandMember, error) {
	srv.log(ctx).Info("Creating band member", slog.Any("artistID", input.ArtistID), slog.Any("personID", input.PersonID))

	member := &entity.BandMember{ArtistID: input.ArtistID, PersonID: input.PersonID}
	if err := createCatalog(ctx, &srv.core, actor, authz.PermManageBandMembers, bandMemberRepo, member, member.Validate, bandMemberRefs(member)); err != nil {
		return nil, err
	}

	return member, nil
}

func (srv *bandMemberService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.BandMember, error) {
	return getCatalog(ctx, &srv.core, actor, authz.PermGetBandMembers, bandMemberRepo, id)
}

func (srv *bandMemberService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.BandMember], error) {
	return listCatalog(ctx, &srv.core, actor, authz.PermGetBandMembers, bandMemberRepo, q)
}

func (srv *bandMemberService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateBandMemberInput) (*entity.BandMember, error) {
	srv.log(ctx).Info("Updating band member", slog.Any("bandMemberID", id))

	return updateCatalog(ctx, &srv.core, actor, authz.PermManageBandMembers, bandMemberRepo, id,
		func(b *entity.BandMember) error {
			if input.ArtistID != nil {
				b.ArtistID = *input.ArtistID
			}
			if input.PersonID != nil {
				b.PersonID = *input.PersonID
			}

			return nil
		},
		func(b *entity.BandMember) error { return b.Validate() },
		func(b *entity.BandMember) refCheck {
			if input.ArtistID == nil && input.PersonID == nil {
				return nil
			}

			return bandMemberRefs(b)
		},
	)
}

func (srv *bandMemberService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting band member", slog.Any("bandMemberID", id))

	// Memberships have no dependents; the cascade is a plain delete.
	return deleteCatalog(ctx, &srv.core, actor, authz.PermManageBandMembers, bandMemberRepo, id,
		func(ctx context.Context, f repository.Factory, id uuid.UUID) error {
			return f.BandMembers().Delete(ctx, id)
		})
}

// genreService implements the GenreUsecase interface.
type genreService struct {
	core
}

// NewGenreService is the constructor for genreService.
func NewGenreService(txManager repository.TransactionManager, logger *slog.Logger) usecase.GenreUsecase {
	return &genreService{core{txManager: txManager, logger: logger}}
}

func genreRepo(f repository.Factory) repository.Crud[entity.Genre] { return f.Genres() }

func (srv *genreService) Create(ctx context.Context, actor authz.Actor, input *usecase.CreateGenreInput) (*entity.Genre, error) {
	srv.log(ctx).Info("Creating genre", slog.String("name", input.Name))

	genre := &entity.Genre{Name: input.Name}
	if err := createCatalog(ctx, &srv.core, actor, authz.PermManageGenres, genreRepo, genre, genre.Validate, nil); err != nil {
		return nil, err
	}

	return genre, nil
}

func (srv *genreService) Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Genre, error) {
	return getCatalog(ctx, &srv.core, actor, authz.PermGetGenres, genreRepo, id)
}

func (srv *genreService) List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Genre], error) {
	return listCatalog(ctx, &srv.core, actor, authz.PermGetGenres, genreRepo, q)
}

func (srv *genreService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *usecase.UpdateGenreInput) (*entity.Genre, error) {
	srv.log(ctx).Info("Updating genre", slog.Any("genreID", id))

	return updateCatalog(ctx, &srv.core, actor, authz.PermManageGenres, genreRepo, id,
		func(g *entity.Genre) error {
			if input.Name != nil {
				g.Name = *input.Name
			}

			return nil
		},
		func(g *entity.Genre) error { return g.Validate() },
		nil,
	)
}

func (srv *genreService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting genre", slog.Any("genreID", id))

	return deleteCatalog(ctx, &srv.core, actor, authz.PermManageGenres, genreRepo, id, deleteGenreCascade)
}
