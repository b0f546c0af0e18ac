package impl

import (
	"context"
	"testing"

	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRecordInput(artistID, labelID uuid.UUID) *usecase.CreateRecordInput {
	return &usecase.CreateRecordInput{
		ArtistID:       artistID,
		LabelID:        labelID,
		Name:           "Kind of Blue",
		ReleaseYear:    1959,
		Country:        "US",
		Duration:       "45:44",
		Language:       "instrumental",
		RecordType:     "LP",
		NumberOfTracks: 5,
	}
}

func TestRecordService_Create_Success(t *testing.T) {
	fx := newTestFixtures()
	service := NewRecordService(fx.txManager, fx.logger)

	artistID := uuid.New()
	labelID := uuid.New()

	fx.factory.ArtistRepo.On("FindByID", mock.Anything, artistID).
		Return(&entity.Artist{ID: artistID}, nil)
	fx.factory.LabelRepo.On("FindByID", mock.Anything, labelID).
		Return(&entity.Label{ID: labelID}, nil)
	fx.factory.RecordRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Record")).Return(nil)

	record, err := service.Create(context.Background(), adminActor(), validRecordInput(artistID, labelID))

	require.NoError(t, err)
	assert.Equal(t, "Kind of Blue", record.Name)
	assert.Equal(t, entity.RecordTypeLP, record.RecordType)
	fx.factory.RecordRepo.AssertExpectations(t)
}

func TestRecordService_Create_RejectsBadDuration(t *testing.T) {
	fx := newTestFixtures()
	service := NewRecordService(fx.txManager, fx.logger)

	input := validRecordInput(uuid.New(), uuid.New())
	input.Duration = "45:74"

	_, err := service.Create(context.Background(), adminActor(), input)

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

// Minutes are two free digits while seconds are bounded at 59, so "61:10" is a
// valid duration and "12:75" is not.
func TestRecordService_Create_DurationBoundary(t *testing.T) {
	fx := newTestFixtures()
	service := NewRecordService(fx.txManager, fx.logger)

	artistID := uuid.New()
	labelID := uuid.New()

	fx.factory.ArtistRepo.On("FindByID", mock.Anything, artistID).
		Return(&entity.Artist{ID: artistID}, nil)
	fx.factory.LabelRepo.On("FindByID", mock.Anything, labelID).
		Return(&entity.Label{ID: labelID}, nil)
	fx.factory.RecordRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Record")).Return(nil)

	longSide := validRecordInput(artistID, labelID)
	longSide.Duration = "61:10"
	record, err := service.Create(context.Background(), adminActor(), longSide)
	require.NoError(t, err)
	assert.Equal(t, "61:10", record.Duration)

	badSeconds := validRecordInput(artistID, labelID)
	badSeconds.Duration = "12:75"
	_, err = service.Create(context.Background(), adminActor(), badSeconds)
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestRecordService_Create_ForbiddenForUserRole(t *testing.T) {
	fx := newTestFixtures()
	service := NewRecordService(fx.txManager, fx.logger)

	_, err := service.Create(context.Background(), userActor(), validRecordInput(uuid.New(), uuid.New()))

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestRecordService_Delete_CascadesToGenreLinksAndAlbums(t *testing.T) {
	fx := newTestFixtures()
	service := NewRecordService(fx.txManager, fx.logger)

	recordID := uuid.New()
	albumID := uuid.New()

	fx.factory.RecordRepo.On("FindByID", mock.Anything, recordID).
		Return(&entity.Record{ID: recordID}, nil)
	fx.factory.RecordGenreRepo.On("DeleteByRecordID", mock.Anything, recordID).Return(nil)
	fx.factory.AlbumRepo.On("FindByRecordID", mock.Anything, recordID).
		Return([]*entity.Album{{ID: albumID, RecordID: recordID}}, nil)
	fx.factory.CartItemRepo.On("DeleteByAlbumID", mock.Anything, albumID).Return(nil)
	fx.factory.OrderItemRepo.On("DeleteByAlbumID", mock.Anything, albumID).Return(nil)
	fx.factory.AlbumRepo.On("Delete", mock.Anything, albumID).Return(nil)
	fx.factory.RecordRepo.On("Delete", mock.Anything, recordID).Return(nil)

	err := service.Delete(context.Background(), adminActor(), recordID)

	require.NoError(t, err)
	fx.factory.AlbumRepo.AssertExpectations(t)
	fx.factory.CartItemRepo.AssertExpectations(t)
	fx.factory.OrderItemRepo.AssertExpectations(t)
}

func TestRecordGenreService_Create_MissingGenre(t *testing.T) {
	fx := newTestFixtures()
	service := NewRecordGenreService(fx.txManager, fx.logger)

	genreID := uuid.New()
	recordID := uuid.New()

	fx.factory.GenreRepo.On("FindByID", mock.Anything, genreID).Return(nil, repository.ErrGenreNotFound)

	_, err := service.Create(context.Background(), adminActor(), &usecase.CreateRecordGenreInput{
		GenreID:  genreID,
		RecordID: recordID,
	})

	requireAppError(t, err, domainerrors.ErrNotFound)
}

func TestRecordGenreService_List_AllowedForUserRole(t *testing.T) {
	fx := newTestFixtures()
	service := NewRecordGenreService(fx.txManager, fx.logger)

	page := &repository.Page[entity.RecordGenre]{Results: []*entity.RecordGenre{}, Page: 1, Limit: 10}
	fx.factory.RecordGenreRepo.On("Find", mock.Anything, mock.AnythingOfType("repository.Query")).Return(page, nil)

	got, err := service.List(context.Background(), userActor(), repository.Query{})

	require.NoError(t, err)
	assert.Equal(t, page, got)
}
