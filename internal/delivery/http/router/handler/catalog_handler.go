package handler

import (
	"groove/internal/domain/entity"
	"groove/internal/usecase"
)

// LabelHandler serves the record label endpoints.
type LabelHandler struct {
	crudHandler[entity.Label, usecase.CreateLabelInput, usecase.UpdateLabelInput]
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labelUsecase usecase.LabelUsecase) *LabelHandler {
	return &LabelHandler{crudHandler[entity.Label, usecase.CreateLabelInput, usecase.UpdateLabelInput]{uc: labelUsecase}}
}

// ArtistHandler serves the artist endpoints.
type ArtistHandler struct {
	crudHandler[entity.Artist, usecase.CreateArtistInput, usecase.UpdateArtistInput]
}

// NewArtistHandler creates a new ArtistHandler.
func NewArtistHandler(artistUsecase usecase.ArtistUsecase) *ArtistHandler {
	return &ArtistHandler{crudHandler[entity.Artist, usecase.CreateArtistInput, usecase.UpdateArtistInput]{uc: artistUsecase}}
}

// PersonHandler serves the person endpoints.
type PersonHandler struct {
	crudHandler[entity.Person, usecase.CreatePersonInput, usecase.UpdatePersonInput]
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(personUsecase usecase.PersonUsecase) *PersonHandler {
	return &PersonHandler{crudHandler[entity.Person, usecase.CreatePersonInput, usecase.UpdatePersonInput]{uc: personUsecase}}
}

// BandMemberHandler serves the band membership endpoints.
type BandMemberHandler struct {
	crudHandler[entity.BandMember, usecase.CreateBandMemberInput, usecase.UpdateBandMemberInput]
}

// NewBandMemberHandler creates a new BandMemberHandler.
func NewBandMemberHandler(bandMemberUsecase usecase.BandMemberUsecase) *BandMemberHandler {
	return &BandMemberHandler{crudHandler[entity.BandMember, usecase.CreateBandMemberInput, usecase.UpdateBandMemberInput]{uc: bandMemberUsecase}}
}

// GenreHandler serves the genre endpoints.
type GenreHandler struct {
	crudHandler[entity.Genre, usecase.CreateGenreInput, usecase.UpdateGenreInput]
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(genreUsecase usecase.GenreUsecase) *GenreHandler {
	return &GenreHandler{crudHandler[entity.Genre, usecase.CreateGenreInput, usecase.UpdateGenreInput]{uc: genreUsecase}}
}
