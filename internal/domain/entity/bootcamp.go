// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// DefaultPhoto is the placeholder file name stored for bootcamps without an uploaded photo.
const DefaultPhoto = "no-image.jpg"

// Bootcamp is the core entity for a training provider.
type Bootcamp struct {
	ID            string    // Opaque, store-generated identifier.
	Name          string    // Unique display name, at most 50 characters.
	Slug          string    // URL-safe form of Name, derived on every save.
	Description   string    // Free text, at most 500 characters.
	Website       string    // http(s) URL.
	Phone         string    // Contact phone number.
	Email         string    // Contact email.
	Address       string    // Raw address the location is derived from.
	Location      *Location // Geocoded location, derived from Address.
	Careers       []Career  // Non-empty set of career tracks.
	AverageRating *float64  // 1..10 when present.
	AverageCost   *float64
	Photo         string // File name of the uploaded photo.
	Housing       bool
	JobAssistance bool
	JobGuarantee  bool
	AcceptGi      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Courses is only filled when the caller asked for the reverse lookup.
	Courses []*Course
}

// HasCoordinates reports whether the bootcamp carries a geocoded point.
func (b *Bootcamp) HasCoordinates() bool {
	return b.Location != nil && !b.Location.Coordinates.Equal(nullIsland)
}

// Summary returns the reduced view embedded into populated courses.
func (b *Bootcamp) Summary() *BootcampSummary {
	return &BootcampSummary{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
	}
}

// BootcampSummary is the subset of a bootcamp attached to a course when it is populated.
type BootcampSummary struct {
	ID          string
	Name        string
	Description string
}
