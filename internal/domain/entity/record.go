package entity

import (
	"regexp"
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// RecordType classifies a release.
type RecordType string

const (
	RecordTypeLP          RecordType = "LP"
	RecordTypeEP          RecordType = "EP"
	RecordTypeSingle      RecordType = "single"
	RecordTypeCompilation RecordType = "compilation"
	RecordTypeLive        RecordType = "live"
	RecordTypeSoundtrack  RecordType = "soundtrack"
)

// IsValid checks if the RecordType is a valid value.
func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeLP, RecordTypeEP, RecordTypeSingle, RecordTypeCompilation, RecordTypeLive, RecordTypeSoundtrack:
		return true
	default:
		return false
	}
}

// durationPattern matches "mm:ss" with seconds below 60. Minutes are two free
// digits, so values like "61:10" are accepted on purpose.
var durationPattern = regexp.MustCompile(`^\d{2}:[0-5]\d$`)

// Record is a release by an artist on a label. Albums are the sellable copies
// of a record; record-genre links classify it.
type Record struct {
	ID             uuid.UUID  `json:"id"`
	ArtistID       uuid.UUID  `json:"artistId"`
	LabelID        uuid.UUID  `json:"labelId"`
	Name           string     `json:"name"`
	ReleaseYear    int        `json:"releaseYear"`
	Country        string     `json:"country"`
	Duration       string     `json:"duration"` // "mm:ss"
	Language       string     `json:"language"`
	RecordType     RecordType `json:"recordType"`
	NumberOfTracks int        `json:"numberOfTracks"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (r *Record) Validate() error {
	if r.ArtistID == uuid.Nil {
		return errors.New("artistId is required")
	}
	if r.LabelID == uuid.Nil {
		return errors.New("labelId is required")
	}
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.ReleaseYear > time.Now().Year() {
		return errors.New("releaseYear must not be in the future")
	}
	if r.ReleaseYear <= 0 {
		return errors.New("releaseYear is required")
	}
	if !durationPattern.MatchString(r.Duration) {
		return errors.New("duration must match the mm:ss pattern")
	}
	if !r.RecordType.IsValid() {
		return errors.Errorf("recordType %q is not a known record type", r.RecordType)
	}
	if r.NumberOfTracks < 1 {
		return errors.New("numberOfTracks must be at least 1")
	}

	return nil
}
