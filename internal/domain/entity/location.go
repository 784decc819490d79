package entity

import "github.com/paulmach/orb"

// LocationTypePoint is the only geometry type stored for a bootcamp location.
const LocationTypePoint = "Point"

var nullIsland = orb.Point{0, 0}

// Location is the geocoded form of an address.
type Location struct {
	Type             string    // Always LocationTypePoint.
	Coordinates      orb.Point // Longitude first, latitude second.
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
}

// Lng returns the longitude of the location.
func (l *Location) Lng() float64 {
	return l.Coordinates.Lon()
}

// Lat returns the latitude of the location.
func (l *Location) Lat() float64 {
	return l.Coordinates.Lat()
}
