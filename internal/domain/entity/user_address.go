package entity

import (
	"regexp"
	"slices"
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// BrazilianStates is the closed list of accepted state codes (UF).
var BrazilianStates = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS",
	"MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC",
	"SP", "SE", "TO",
}

// Countries is the closed list of accepted shipping countries.
var Countries = []string{
	"Brazil", "Argentina", "Chile", "Uruguay", "Paraguay", "United States",
	"Canada", "Mexico", "United Kingdom", "Ireland", "France", "Germany",
	"Spain", "Portugal", "Italy", "Netherlands", "Japan",
}

// postalCodePatterns maps a country to its postal code format. Countries
// without an entry fall back to requiring a non-empty code.
var postalCodePatterns = map[string]*regexp.Regexp{
	"Brazil":         regexp.MustCompile(`^\d{5}-?\d{3}$`),
	"United States":  regexp.MustCompile(`^\d{5}(-\d{4})?$`),
	"United Kingdom": regexp.MustCompile(`^[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2}$`),
	"Japan":          regexp.MustCompile(`^\d{3}-?\d{4}$`),
}

// UserAddress is a shipping address registered by a user.
type UserAddress struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	StreetName   string    `json:"streetName"`
	StreetNumber string    `json:"streetNumber"`
	PostalCode   string    `json:"postalCode"`
	City         string    `json:"city"`
	State        string    `json:"state"` // Two-letter UF code from BrazilianStates.
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (a *UserAddress) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("userId is required")
	}
	if a.StreetName == "" {
		return errors.New("streetName is required")
	}
	if a.StreetNumber == "" {
		return errors.New("streetNumber is required")
	}
	if a.City == "" {
		return errors.New("city is required")
	}
	if !slices.Contains(BrazilianStates, a.State) {
		return errors.Errorf("state %q is not a known state code", a.State)
	}
	if !slices.Contains(Countries, a.Country) {
		return errors.Errorf("country %q is not in the accepted country list", a.Country)
	}
	if pattern, ok := postalCodePatterns[a.Country]; ok {
		if !pattern.MatchString(a.PostalCode) {
			return errors.Errorf("postalCode %q does not match the %s format", a.PostalCode, a.Country)
		}
	} else if a.PostalCode == "" {
		return errors.New("postalCode is required")
	}

	return nil
}
