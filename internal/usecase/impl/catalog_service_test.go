package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	mockRepo "groove/internal/mocks/repository"
	"groove/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testFixtures holds the shared dependencies for service tests: a factory of
// repository doubles and a transaction manager that runs against it directly.
type testFixtures struct {
	factory   *mockRepo.MockFactory
	txManager *mockRepo.MockTransactionManager
	logger    *slog.Logger
}

func newTestFixtures() testFixtures {
	factory := mockRepo.NewMockFactory()

	return testFixtures{
		factory:   factory,
		txManager: &mockRepo.MockTransactionManager{Factory: factory},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func adminActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
}

func userActor() authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: entity.RoleUser}
}

// requireAppError asserts err maps onto the given sentinel of the error taxonomy.
func requireAppError(t *testing.T, err error, want *domainerrors.BaseError) {
	t.Helper()
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an application error, got %v", err)
	assert.Equal(t, want.HTTPCode(), appErr.HTTPCode())
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}

func TestLabelService_Create_Success(t *testing.T) {
	fx := newTestFixtures()
	service := NewLabelService(fx.txManager, fx.logger)

	ctx := context.Background()
	input := &usecase.CreateLabelInput{Name: "Blue Note", Country: "US"}

	fx.factory.LabelRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Label")).Return(nil)

	label, err := service.Create(ctx, adminActor(), input)

	require.NoError(t, err)
	assert.Equal(t, "Blue Note", label.Name)
	assert.Equal(t, "US", label.Country)
	fx.factory.LabelRepo.AssertExpectations(t)
}

func TestLabelService_Create_ForbiddenForUserRole(t *testing.T) {
	fx := newTestFixtures()
	service := NewLabelService(fx.txManager, fx.logger)

	_, err := service.Create(context.Background(), userActor(), &usecase.CreateLabelInput{Name: "Blue Note", Country: "US"})

	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestLabelService_Create_MissingName(t *testing.T) {
	fx := newTestFixtures()
	service := NewLabelService(fx.txManager, fx.logger)

	_, err := service.Create(context.Background(), adminActor(), &usecase.CreateLabelInput{Country: "US"})

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestLabelService_Get_AllowedForUserRole(t *testing.T) {
	fx := newTestFixtures()
	service := NewLabelService(fx.txManager, fx.logger)

	labelID := uuid.New()
	expected := &entity.Label{ID: labelID, Name: "Stax", Country: "US"}

	fx.factory.LabelRepo.On("FindByID", mock.Anything, labelID).Return(expected, nil)

	label, err := service.Get(context.Background(), userActor(), labelID)

	require.NoError(t, err)
	assert.Equal(t, expected, label)
}

func TestLabelService_Get_NotFound(t *testing.T) {
	fx := newTestFixtures()
	service := NewLabelService(fx.txManager, fx.logger)

	labelID := uuid.New()
	fx.factory.LabelRepo.On("FindByID", mock.Anything, labelID).Return(nil, repository.ErrLabelNotFound)

	_, err := service.Get(context.Background(), userActor(), labelID)

	requireAppError(t, err, domainerrors.ErrNotFound)
}

func TestLabelService_List_ReturnsPage(t *testing.T) {
	fx := newTestFixtures()
	service := NewLabelService(fx.txManager, fx.logger)

	page := &repository.Page[entity.Label]{
		Results:      []*entity.Label{{Name: "Motown", Country: "US"}},
		Page:         1,
		Limit:        10,
		TotalPages:   1,
		TotalResults: 1,
	}
	fx.factory.LabelRepo.On("Find", mock.Anything, mock.AnythingOfType("repository.Query")).Return(page, nil)

	got, err := service.List(context.Background(), userActor(), repository.Query{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestLabelService_Delete_CascadesToArtistsAndRecords(t *testing.T) {
	fx := newTestFixtures()
	service := NewLabelService(fx.txManager, fx.logger)

	labelID := uuid.New()
	artistID := uuid.New()
	recordID := uuid.New()


	fx.factory.LabelRepo.On("FindByID", mock.Anything, labelID).
		Return(&entity.Label{ID: labelID, Name: "Verve", Country: "US"}, nil)
	fx.factory.ArtistRepo.On("FindByLabelID", mock.Anything, labelID).
		Return([]*entity.Artist{{ID: artistID, LabelID: labelID}}, nil)
	fx.factory.BandMemberRepo.On("DeleteByArtistID", mock.Anything, artistID).Return(nil)
	fx.factory.RecordRepo.On("FindByArtistID", mock.Anything, artistID).
		Return([]*entity.Record{{ID: recordID, ArtistID: artistID, LabelID: labelID}}, nil)
	fx.factory.RecordGenreRepo.On("DeleteByRecordID", mock.Anything, recordID).Return(nil)
	fx.factory.AlbumRepo.On("FindByRecordID", mock.Anything, recordID).Return([]*entity.Album{}, nil)
	fx.factory.RecordRepo.On("Delete", mock.Anything, recordID).Return(nil)
	fx.factory.ArtistRepo.On("Delete", mock.Anything, artistID).Return(nil)
	fx.factory.RecordRepo.On("FindByLabelID", mock.Anything, labelID).Return([]*entity.Record{}, nil)
	fx.factory.LabelRepo.On("Delete", mock.Anything, labelID).Return(nil)

	err := service.Delete(context.Background(), adminActor(), labelID)

	require.NoError(t, err)
	fx.factory.LabelRepo.AssertExpectations(t)
	fx.factory.ArtistRepo.AssertExpectations(t)
	fx.factory.RecordRepo.AssertExpectations(t)
}

func TestArtistService_Create_MissingLabel(t *testing.T) {
	fx := newTestFixtures()
	service := NewArtistService(fx.txManager, fx.logger)

	labelID := uuid.New()
	fx.factory.LabelRepo.On("FindByID", mock.Anything, labelID).Return(nil, repository.ErrLabelNotFound)

	_, err := service.Create(context.Background(), adminActor(), &usecase.CreateArtistInput{
		Name:    "The Meters",
		Country: "US",
		LabelID: labelID,
	})

	requireAppError(t, err, domainerrors.ErrNotFound)
}

func TestArtistService_Update_PatchesOnlyGivenFields(t *testing.T) {
	fx := newTestFixtures()
	service := NewArtistService(fx.txManager, fx.logger)

	artistID := uuid.New()
	existing := &entity.Artist{ID: artistID, Name: "Old Name", Country: "US", LabelID: uuid.New()}
	newName := "New Name"

	fx.factory.ArtistRepo.On("FindByID", mock.Anything, artistID).Return(existing, nil)
	fx.factory.ArtistRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Artist")).Return(nil)

	artist, err := service.Update(context.Background(), adminActor(), artistID, &usecase.UpdateArtistInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "New Name", artist.Name)
	assert.Equal(t, "US", artist.Country)
}

func TestGenreService_Create_RejectsUnknownName(t *testing.T) {
	fx := newTestFixtures()
	service := NewGenreService(fx.txManager, fx.logger)

	_, err := service.Create(context.Background(), adminActor(), &usecase.CreateGenreInput{Name: "polka"})

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestGenreService_Delete_RemovesRecordLinks(t *testing.T) {
	fx := newTestFixtures()
	service := NewGenreService(fx.txManager, fx.logger)

	genreID := uuid.New()
	fx.factory.GenreRepo.On("FindByID", mock.Anything, genreID).
		Return(&entity.Genre{ID: genreID, Name: "jazz"}, nil)
	fx.factory.RecordGenreRepo.On("DeleteByGenreID", mock.Anything, genreID).Return(nil)
	fx.factory.GenreRepo.On("Delete", mock.Anything, genreID).Return(nil)

	err := service.Delete(context.Background(), adminActor(), genreID)

	require.NoError(t, err)
	fx.factory.RecordGenreRepo.AssertExpectations(t)
}

func TestBandMemberService_Create_ChecksBothReferences(t *testing.T) {
	fx := newTestFixtures()
	service := NewBandMemberService(fx.txManager, fx.logger)

	artistID := uuid.New()
	personID := uuid.New()

	fx.factory.ArtistRepo.On("FindByID", mock.Anything, artistID).
		Return(&entity.Artist{ID: artistID}, nil)
	fx.factory.PersonRepo.On("FindByID", mock.Anything, personID).
		Return(&entity.Person{ID: personID}, nil)
	fx.factory.BandMemberRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.BandMember")).Return(nil)

	member, err := service.Create(context.Background(), adminActor(), &usecase.CreateBandMemberInput{
		ArtistID: artistID,
		PersonID: personID,
	})

	require.NoError(t, err)
	assert.Equal(t, artistID, member.ArtistID)
	assert.Equal(t, personID, member.PersonID)
}

func TestPersonService_Delete_CascadesToMemberships(t *testing.T) {
	fx := newTestFixtures()
	service := NewPersonService(fx.txManager, fx.logger)

	personID := uuid.New()
	fx.factory.PersonRepo.On("FindByID", mock.Anything, personID).
		Return(&entity.Person{ID: personID, Name: "Art Neville"}, nil)
	fx.factory.BandMemberRepo.On("DeleteByPersonID", mock.Anything, personID).Return(nil)
	fx.factory.PersonRepo.On("Delete", mock.Anything, personID).Return(nil)

	err := service.Delete(context.Background(), adminActor(), personID)

	require.NoError(t, err)
	fx.factory.BandMemberRepo.AssertExpectations(t)
}
