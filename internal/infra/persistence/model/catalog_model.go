package model

import (
	"time"

	"github.com/google/uuid"
)

// LabelModel mirrors the 'labels' table.
type LabelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	Country   string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LabelModel) TableName() string {
	return "labels"
}

// ArtistModel mirrors the 'artists' table. An artist name is unique per country.
type ArtistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_artists_name_country"`
	Country   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_artists_name_country"`
	LabelID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtistModel) TableName() string {
	return "artists"
}

// PersonModel mirrors the 'persons' table.
type PersonModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	DateOfBirth time.Time `gorm:"not null"`
	Alive       bool      `gorm:"not null;default:true"`
	Nationality string    `gorm:"type:varchar(100);not null"`
	Gender      string    `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "persons"
}

// BandMemberModel mirrors the 'band_members' table, joining artists and persons.
type BandMemberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ArtistID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_band_members_artist_person"`
	PersonID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_band_members_artist_person"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BandMemberModel) TableName() string {
	return "band_members"
}

// RecordModel mirrors the 'records' table. The five-column unique index keeps
// one row per pressing of a release.
type RecordModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ArtistID       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_records_release"`
	LabelID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_records_release"`
	ReleaseYear    int       `gorm:"not null;uniqueIndex:idx_records_release"`
	Country        string    `gorm:"type:varchar(100)"`
	Duration       string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_records_release"`
	Language       string    `gorm:"type:varchar(50)"`
	RecordType     string    `gorm:"type:varchar(20);not null"`
	NumberOfTracks int       `gorm:"not null;uniqueIndex:idx_records_release"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecordModel) TableName() string {
	return "records"
}

// GenreModel mirrors the 'genres' table.
type GenreModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GenreModel) TableName() string {
	return "genres"
}

// RecordGenreModel mirrors the 'record_genres' table, joining records and genres.
type RecordGenreModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GenreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_record_genres_genre_record"`
	RecordID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_record_genres_genre_record"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecordGenreModel) TableName() string {
	return "record_genres"
}
