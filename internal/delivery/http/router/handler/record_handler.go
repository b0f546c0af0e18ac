package handler

import (
	"groove/internal/domain/entity"
	"groove/internal/usecase"
)

// RecordHandler serves the record endpoints.
type RecordHandler struct {
	crudHandler[entity.Record, usecase.CreateRecordInput, usecase.UpdateRecordInput]
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordUsecase usecase.RecordUsecase) *RecordHandler {
	return &RecordHandler{crudHandler[entity.Record, usecase.CreateRecordInput, usecase.UpdateRecordInput]{uc: recordUsecase}}
}

// RecordGenreHandler serves the record-to-genre link endpoints.
type RecordGenreHandler struct {
	crudHandler[entity.RecordGenre, usecase.CreateRecordGenreInput, usecase.UpdateRecordGenreInput]
}

// NewRecordGenreHandler creates a new RecordGenreHandler.
func NewRecordGenreHandler(recordGenreUsecase usecase.RecordGenreUsecase) *RecordGenreHandler {
	return &RecordGenreHandler{crudHandler[entity.RecordGenre, usecase.CreateRecordGenreInput, usecase.UpdateRecordGenreInput]{uc: recordGenreUsecase}}
}
