package models

import "github.com/google/uuid"

// Hotel is one row of the hotel inventory.
type Hotel struct {
	ID          uuid.UUID `json:"id" yaml:"id" db:"id"`
	Name        string    `json:"name" yaml:"name" db:"name"`
	Region      string    `json:"region" yaml:"region" db:"region"`
	City        string    `json:"city" yaml:"city" db:"city"`
	CountryCode string    `json:"country_code" yaml:"country_code" db:"country_code"`
	Location    LatLng    `json:"location" yaml:"location"`
	Rating      float64   `json:"rating" yaml:"rating" db:"rating"`
}

// Place is a gazetteer entry used to geocode area names.
type Place struct {
	ID          uuid.UUID `json:"id" yaml:"id" db:"id"`
	Name        string    `json:"name" yaml:"name" db:"name"`
	Region      string    `json:"region" yaml:"region" db:"region"`
	Country     string    `json:"country" yaml:"country" db:"country"`
	CountryCode string    `json:"country_code" yaml:"country_code" db:"country_code"`
	Location    LatLng    `json:"location" yaml:"location"`
	Population  int       `json:"population" yaml:"population" db:"population"`
}
