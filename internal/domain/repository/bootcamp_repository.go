// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/query"

	"github.com/paulmach/orb"
)

// Domain-specific errors shared by every store implementation.
var (
	// ErrBootcampNotFound is returned when a bootcamp is not found.
	ErrBootcampNotFound = errors.New("bootcamp not found")
	// ErrDuplicateKey is returned when a unique field already holds the value.
	ErrDuplicateKey = errors.New("duplicate key")
)

// BootcampRepository defines the persistence operations for bootcamps.
type BootcampRepository interface {
	// Create persists a new bootcamp and fills its generated ID and timestamps.
	Create(ctx context.Context, bootcamp *entity.Bootcamp) error

	// FindByID retrieves a bootcamp by its ID. Unknown or malformed IDs yield ErrBootcampNotFound.
	FindByID(ctx context.Context, id string) (*entity.Bootcamp, error)

	// FindByIDs retrieves the bootcamps with the given IDs in no particular order.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Bootcamp, error)

	// Find runs a filtered, sorted, projected and paginated listing.
	Find(ctx context.Context, q *query.Query) ([]*entity.Bootcamp, error)

	// Count returns how many bootcamps match the conditions, ignoring pagination.
	Count(ctx context.Context, conditions []query.Condition) (int64, error)

	// FindWithinRadius returns bootcamps located inside the spherical cap around center.
	// radius is an angular distance in radians.
	FindWithinRadius(ctx context.Context, center orb.Point, radius float64) ([]*entity.Bootcamp, error)

	// Update overwrites the stored bootcamp with the entity's fields.
	Update(ctx context.Context, bootcamp *entity.Bootcamp) error

	// UpdatePhoto records the photo file name without touching other fields.
	UpdatePhoto(ctx context.Context, id, photo string) error

	// Delete removes a bootcamp by its ID.
	Delete(ctx context.Context, id string) error
}
