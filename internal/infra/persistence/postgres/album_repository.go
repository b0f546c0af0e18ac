package postgres

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/domain/repository"
	"groove/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// albumRepository implements repository.AlbumRepository using GORM.
type albumRepository struct {
	crud[model.AlbumModel, entity.Album]
}

// NewAlbumRepository is the constructor for albumRepository.
func NewAlbumRepository(db *gorm.DB) repository.AlbumRepository {
	return &albumRepository{crud[model.AlbumModel, entity.Album]{
		db:       db,
		toEntity: toAlbumDomain,
		toModel:  fromAlbumDomain,
		columns: map[string]string{
			"userId":   "user_id",
			"recordId": "record_id",
			"year":     "year",
			"new":      "new",
			"type":     "type",
			"price":    "price",
			"stock":    "stock",
		},
		notFound: repository.ErrAlbumNotFound,
	}}
}

// FindByUserID retrieves all albums listed by a seller.
func (repo *albumRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Album, error) {
	return findAllBy(ctx, &repo.crud, "user_id", userID)
}

// FindByRecordID retrieves all albums listed for a record.
func (repo *albumRepository) FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]*entity.Album, error) {
	return findAllBy(ctx, &repo.crud, "record_id", recordID)
}

func toAlbumDomain(data *model.AlbumModel) *entity.Album {
	if data == nil {
		return nil
	}

	return &entity.Album{
		ID:          data.ID,
		UserID:      data.UserID,
		RecordID:    data.RecordID,
		Description: data.Description,
		Stock:       data.Stock,
		Year:        data.Year,
		New:         data.New,
		Price:       data.Price,
		Type:        entity.AlbumType(data.Type),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAlbumDomain(data *entity.Album) *model.AlbumModel {
	if data == nil {
		return nil
	}

	return &model.AlbumModel{
		ID:          data.ID,
		UserID:      data.UserID,
		RecordID:    data.RecordID,
		Description: data.Description,
		Stock:       data.Stock,
		Year:        data.Year,
		New:         data.New,
		Price:       data.Price,
		Type:        string(data.Type),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
