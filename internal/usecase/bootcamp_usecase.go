// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/query"
)

// --- Input DTOs ---

// CreateBootcampInput defines the data required to create a bootcamp.
type CreateBootcampInput struct {
	Name          string
	Description   string
	Website       string
	Phone         string
	Email         string
	Address       string
	Careers       []string
	AverageRating *float64
	AverageCost   *float64
	Housing       bool
	JobAssistance bool
	JobGuarantee  bool
	AcceptGi      bool
}

// UpdateBootcampInput carries only the fields present in the request; nil means untouched.
type UpdateBootcampInput struct {
	Name          *string
	Description   *string
	Website       *string
	Phone         *string
	Email         *string
	Address       *string
	Careers       []string
	AverageRating *float64
	AverageCost   *float64
	Housing       *bool
	JobAssistance *bool
	JobGuarantee  *bool
	AcceptGi      *bool
}

// RadiusInput locates bootcamps around a zip code.
type RadiusInput struct {
	Zipcode  string
	Distance float64
}

// UploadPhotoInput describes one uploaded bootcamp photo.
type UploadPhotoInput struct {
	BootcampID  string
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// --- Output DTOs ---

// BootcampList is one page of bootcamps.
type BootcampList struct {
	Bootcamps  []*entity.Bootcamp
	Total      int64
	Pagination query.Pagination
}

// BootcampUsecase defines the bootcamp operations exposed to the delivery layer.
type BootcampUsecase interface {
	ListBootcamps(ctx context.Context, q *query.Query) (*BootcampList, error)
	GetBootcamp(ctx context.Context, id string) (*entity.Bootcamp, error)
	CreateBootcamp(ctx context.Context, input *CreateBootcampInput) (*entity.Bootcamp, error)
	UpdateBootcamp(ctx context.Context, id string, input *UpdateBootcampInput) (*entity.Bootcamp, error)
	// DeleteBootcamp removes the bootcamp and its courses, returning the removed bootcamp.
	DeleteBootcamp(ctx context.Context, id string) (*entity.Bootcamp, error)
	GetBootcampsInRadius(ctx context.Context, input *RadiusInput) ([]*entity.Bootcamp, error)
	// UploadPhoto stores the photo and returns the file name recorded on the bootcamp.
	UploadPhoto(ctx context.Context, input *UploadPhotoInput) (string, error)
}
