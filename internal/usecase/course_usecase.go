package usecase

import (
	"context"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/query"
)

// CreateCourseInput defines the data required to add a course to a bootcamp.
type CreateCourseInput struct {
	BootcampID           string
	Title                string
	Description          string
	Weeks                string
	Tuition              *float64 // Required; nil when missing from the request.
	MinimumSkill         string
	ScholarshipAvailable bool
}

// UpdateCourseInput carries only the fields present in the request; nil means untouched.
type UpdateCourseInput struct {
	Title                *string
	Description          *string
	Weeks                *string
	Tuition              *float64
	MinimumSkill         *string
	ScholarshipAvailable *bool
}

// CourseList is one page of courses.
type CourseList struct {
	Courses    []*entity.Course
	Total      int64
	Pagination query.Pagination
}

// CourseUsecase defines the course operations exposed to the delivery layer.
type CourseUsecase interface {
	// ListCourses lists every course; populate=bootcamp is implied.
	ListCourses(ctx context.Context, q *query.Query) (*CourseList, error)
	// ListBootcampCourses lists the courses of one bootcamp without joining it.
	ListBootcampCourses(ctx context.Context, bootcampID string, q *query.Query) (*CourseList, error)
	GetCourse(ctx context.Context, id string) (*entity.Course, error)
	CreateCourse(ctx context.Context, input *CreateCourseInput) (*entity.Course, error)
	UpdateCourse(ctx context.Context, id string, input *UpdateCourseInput) (*entity.Course, error)
	// DeleteCourse removes the course and returns it.
	DeleteCourse(ctx context.Context, id string) (*entity.Course, error)
}
