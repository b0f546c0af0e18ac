package handler

import (
	"groove/internal/domain/entity"
	"groove/internal/usecase"
)

// AlbumHandler serves the album listing endpoints.
type AlbumHandler struct {
	crudHandler[entity.Album, usecase.CreateAlbumInput, usecase.UpdateAlbumInput]
}

// NewAlbumHandler creates a new AlbumHandler.
func NewAlbumHandler(albumUsecase usecase.AlbumUsecase) *AlbumHandler {
	return &AlbumHandler{crudHandler[entity.Album, usecase.CreateAlbumInput, usecase.UpdateAlbumInput]{uc: albumUsecase}}
}
