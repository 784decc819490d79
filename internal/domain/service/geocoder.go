package service

import (
	"context"
	"errors"

	"github.com/paulmach/orb"
)

// ErrNoGeocodeMatch is returned when the provider found nothing for the address.
var ErrNoGeocodeMatch = errors.New("no geocode match")

// GeocodeResult is the first match returned by a geocoding provider.
type GeocodeResult struct {
	Coordinates      orb.Point // Longitude first, latitude second.
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
}

// Geocoder resolves postal addresses and zip codes to coordinates.
type Geocoder interface {
	// Geocode returns the first match for the address, or ErrNoGeocodeMatch.
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}
