package postgres

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/domain/repository"
	"groove/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// labelRepository implements repository.LabelRepository using GORM.
type labelRepository struct {
	crud[model.LabelModel, entity.Label]
}

// NewLabelRepository is the constructor for labelRepository.
func NewLabelRepository(db *gorm.DB) repository.LabelRepository {
	return &labelRepository{crud[model.LabelModel, entity.Label]{
		db:       db,
		toEntity: toLabelDomain,
		toModel:  fromLabelDomain,
		columns: map[string]string{
			"name":    "name",
			"country": "country",
		},
		notFound: repository.ErrLabelNotFound,
	}}
}

func toLabelDomain(data *model.LabelModel) *entity.Label {
	if data == nil {
		return nil
	}

	return &entity.Label{
		ID:        data.ID,
		Name:      data.Name,
		Country:   data.Country,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromLabelDomain(data *entity.Label) *model.LabelModel {
	if data == nil {
		return nil
	}

	return &model.LabelModel{
		ID:        data.ID,
		Name:      data.Name,
		Country:   data.Country,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// artistRepository implements repository.ArtistRepository using GORM.
type artistRepository struct {
	crud[model.ArtistModel, entity.Artist]
}

// NewArtistRepository is the constructor for artistRepository.
func NewArtistRepository(db *gorm.DB) repository.ArtistRepository {
	return &artistRepository{crud[model.ArtistModel, entity.Artist]{
		db:       db,
		toEntity: toArtistDomain,
		toModel:  fromArtistDomain,
		columns: map[string]string{
			"name":    "name",
			"country": "country",
			"labelId": "label_id",
		},
		notFound: repository.ErrArtistNotFound,
	}}
}

// FindByLabelID retrieves all artists signed to a label.
func (repo *artistRepository) FindByLabelID(ctx context.Context, labelID uuid.UUID) ([]*entity.Artist, error) {
	return findAllBy(ctx, &repo.crud, "label_id", labelID)
}

func toArtistDomain(data *model.ArtistModel) *entity.Artist {
	if data == nil {
		return nil
	}

	return &entity.Artist{
		ID:        data.ID,
		Name:      data.Name,
		Country:   data.Country,
		LabelID:   data.LabelID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromArtistDomain(data *entity.Artist) *model.ArtistModel {
	if data == nil {
		return nil
	}

	return &model.ArtistModel{
		ID:        data.ID,
		Name:      data.Name,
		Country:   data.Country,
		LabelID:   data.LabelID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// personRepository implements repository.PersonRepository using GORM.
type personRepository struct {
	crud[model.PersonModel, entity.Person]
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{crud[model.PersonModel, entity.Person]{
		db:       db,
		toEntity: toPersonDomain,
		toModel:  fromPersonDomain,
		columns: map[string]string{
			"name":        "name",
			"nationality": "nationality",
			"gender":      "gender",
			"alive":       "alive",
		},
		notFound: repository.ErrPersonNotFound,
	}}
}

func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:          data.ID,
		Name:        data.Name,
		DateOfBirth: data.DateOfBirth,
		Alive:       data.Alive,
		Nationality: data.Nationality,
		Gender:      data.Gender,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	return &model.PersonModel{
		ID:          data.ID,
		Name:        data.Name,
		DateOfBirth: data.DateOfBirth,
		Alive:       data.Alive,
		Nationality: data.Nationality,
		Gender:      data.Gender,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// bandMemberRepository implements repository.BandMemberRepository using GORM.
type bandMemberRepository struct {
	crud[model.BandMemberModel, entity.BandMember]
}

// NewBandMemberRepository is the constructor for bandMemberRepository.
func NewBandMemberRepository(db *gorm.DB) repository.BandMemberRepository {
	return &bandMemberRepository{crud[model.BandMemberModel, entity.BandMember]{
		db:       db,
		toEntity: toBandMemberDomain,
		toModel:  fromBandMemberDomain,
		columns: map[string]string{
			"artistId": "artist_id",
			"personId": "person_id",
		},
		notFound: repository.ErrBandMemberNotFound,
	}}
}

// DeleteByArtistID removes all memberships of an artist.
func (repo *bandMemberRepository) DeleteByArtistID(ctx context.Context, artistID uuid.UUID) error {
	return deleteAllBy(ctx, &repo.crud, "artist_id", artistID)
}

// DeleteByPersonID removes all memberships referencing a person.
func (repo *bandMemberRepository) DeleteByPersonID(ctx context.Context, personID uuid.UUID) error {
	return deleteAllBy(ctx, &repo.crud, "person_id", personID)
}

func toBandMemberDomain(data *model.BandMemberModel) *entity.BandMember {
	if data == nil {
		return nil
	}

	return &entity.BandMember{
		ID:        data.ID,
		ArtistID:  data.ArtistID,
		PersonID:  data.PersonID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBandMemberDomain(data *entity.BandMember) *model.BandMemberModel {
	if data == nil {
		return nil
	}

	return &model.BandMemberModel{
		ID:        data.ID,
		ArtistID:  data.ArtistID,
		PersonID:  data.PersonID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// recordRepository implements repository.RecordRepository using GORM.
type recordRepository struct {
	crud[model.RecordModel, entity.Record]
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{crud[model.RecordModel, entity.Record]{
		db:       db,
		toEntity: toRecordDomain,
		toModel:  fromRecordDomain,
		columns: map[string]string{
			"name":        "name",
			"artistId":    "artist_id",
			"labelId":     "label_id",
			"releaseYear": "release_year",
			"country":     "country",
			"language":    "language",
			"recordType":  "record_type",
		},
		notFound: repository.ErrRecordNotFound,
	}}
}

// FindByArtistID retrieves all records released by an artist.
func (repo *recordRepository) FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Record, error) {
	return findAllBy(ctx, &repo.crud, "artist_id", artistID)
}

// FindByLabelID retrieves all records released on a label.
func (repo *recordRepository) FindByLabelID(ctx context.Context, labelID uuid.UUID) ([]*entity.Record, error) {
	return findAllBy(ctx, &repo.crud, "label_id", labelID)
}

func toRecordDomain(data *model.RecordModel) *entity.Record {
	if data == nil {
		return nil
	}

	return &entity.Record{
		ID:             data.ID,
		ArtistID:       data.ArtistID,
		LabelID:        data.LabelID,
		Name:           data.Name,
		ReleaseYear:    data.ReleaseYear,
		Country:        data.Country,
		Duration:       data.Duration,
		Language:       data.Language,
		RecordType:     entity.RecordType(data.RecordType),
		NumberOfTracks: data.NumberOfTracks,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromRecordDomain(data *entity.Record) *model.RecordModel {
	if data == nil {
		return nil
	}

	return &model.RecordModel{
		ID:             data.ID,
		ArtistID:       data.ArtistID,
		LabelID:        data.LabelID,
		Name:           data.Name,
		ReleaseYear:    data.ReleaseYear,
		Country:        data.Country,
		Duration:       data.Duration,
		Language:       data.Language,
		RecordType:     string(data.RecordType),
		NumberOfTracks: data.NumberOfTracks,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// genreRepository implements repository.GenreRepository using GORM.
type genreRepository struct {
	crud[model.GenreModel, entity.Genre]
}

// NewGenreRepository is the constructor for genreRepository.
func NewGenreRepository(db *gorm.DB) repository.GenreRepository {
	return &genreRepository{crud[model.GenreModel, entity.Genre]{
		db:       db,
		toEntity: toGenreDomain,
		toModel:  fromGenreDomain,
		columns: map[string]string{
			"name": "name",
		},
		notFound: repository.ErrGenreNotFound,
	}}
}

func toGenreDomain(data *model.GenreModel) *entity.Genre {
	if data == nil {
		return nil
	}

	return &entity.Genre{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromGenreDomain(data *entity.Genre) *model.GenreModel {
	if data == nil {
		return nil
	}

	return &model.GenreModel{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// recordGenreRepository implements repository.RecordGenreRepository using GORM.
type recordGenreRepository struct {
	crud[model.RecordGenreModel, entity.RecordGenre]
}

// NewRecordGenreRepository is the constructor for recordGenreRepository.
func NewRecordGenreRepository(db *gorm.DB) repository.RecordGenreRepository {
	return &recordGenreRepository{crud[model.RecordGenreModel, entity.RecordGenre]{
		db:       db,
		toEntity: toRecordGenreDomain,
		toModel:  fromRecordGenreDomain,
		columns: map[string]string{
			"genreId":  "genre_id",
			"recordId": "record_id",
		},
		notFound: repository.ErrRecordGenreNotFound,
	}}
}

// DeleteByRecordID removes all genre links of a record.
func (repo *recordGenreRepository) DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error {
	return deleteAllBy(ctx, &repo.crud, "record_id", recordID)
}

// DeleteByGenreID removes all record links of a genre.
func (repo *recordGenreRepository) DeleteByGenreID(ctx context.Context, genreID uuid.UUID) error {
	return deleteAllBy(ctx, &repo.crud, "genre_id", genreID)
}

func toRecordGenreDomain(data *model.RecordGenreModel) *entity.RecordGenre {
	if data == nil {
		return nil
	}

	return &entity.RecordGenre{
		ID:        data.ID,
		GenreID:   data.GenreID,
		RecordID:  data.RecordID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRecordGenreDomain(data *entity.RecordGenre) *model.RecordGenreModel {
	if data == nil {
		return nil
	}

	return &model.RecordGenreModel{
		ID:        data.ID,
		GenreID:   data.GenreID,
		RecordID:  data.RecordID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
