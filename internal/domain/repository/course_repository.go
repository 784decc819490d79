package repository

import (
	"context"
	"errors"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/query"
)

// ErrCourseNotFound is returned when a course is not found.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository defines the persistence operations for courses.
type CourseRepository interface {
	// Create persists a new course and fills its generated ID and timestamps.
	Create(ctx context.Context, course *entity.Course) error

	// FindByID retrieves a course by its ID. Unknown or malformed IDs yield ErrCourseNotFound.
	FindByID(ctx context.Context, id string) (*entity.Course, error)

	// Find runs a filtered, sorted, projected and paginated listing.
	Find(ctx context.Context, q *query.Query) ([]*entity.Course, error)

	// Count returns how many courses match the conditions, ignoring pagination.
	Count(ctx context.Context, conditions []query.Condition) (int64, error)

	// FindByBootcampIDs retrieves every course owned by one of the bootcamps.
	FindByBootcampIDs(ctx context.Context, bootcampIDs []string) ([]*entity.Course, error)

	// Update overwrites the stored course with the entity's fields.
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes a course by its ID.
	Delete(ctx context.Context, id string) error

	// DeleteByBootcamp removes every course of a bootcamp and returns how many were removed.
	DeleteByBootcamp(ctx context.Context, bootcampID string) (int64, error)
}
