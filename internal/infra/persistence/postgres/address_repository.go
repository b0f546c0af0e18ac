package postgres

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/domain/repository"
	"groove/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userAddressRepository implements repository.UserAddressRepository using GORM.
type userAddressRepository struct {
	crud[model.UserAddressModel, entity.UserAddress]
}

// NewUserAddressRepository is the constructor for userAddressRepository.
func NewUserAddressRepository(db *gorm.DB) repository.UserAddressRepository {
	return &userAddressRepository{crud[model.UserAddressModel, entity.UserAddress]{
		db:       db,
		toEntity: toUserAddressDomain,
		toModel:  fromUserAddressDomain,
		columns: map[string]string{
			"userId":  "user_id",
			"city":    "city",
			"state":   "state",
			"country": "country",
		},
		notFound: repository.ErrUserAddressNotFound,
	}}
}

// DeleteByUserID removes all addresses of a user.
func (repo *userAddressRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return deleteAllBy(ctx, &repo.crud, "user_id", userID)
}

func toUserAddressDomain(data *model.UserAddressModel) *entity.UserAddress {
	if data == nil {
		return nil
	}

	return &entity.UserAddress{
		ID:           data.ID,
		UserID:       data.UserID,
		StreetName:   data.StreetName,
		StreetNumber: data.StreetNumber,
		PostalCode:   data.PostalCode,
		City:         data.City,
		State:        data.State,
		Country:      data.Country,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserAddressDomain(data *entity.UserAddress) *model.UserAddressModel {
	if data == nil {
		return nil
	}

	return &model.UserAddressModel{
		ID:           data.ID,
		UserID:       data.UserID,
		StreetName:   data.StreetName,
		StreetNumber: data.StreetNumber,
		PostalCode:   data.PostalCode,
		City:         data.City,
		State:        data.State,
		Country:      data.Country,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
