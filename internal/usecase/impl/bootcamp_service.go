// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path"
	"strings"

	"bootcamper/config"
	deliverycontext "bootcamper/internal/delivery/context"
	"bootcamper/internal/domain/entity"
	domainerrors "bootcamper/internal/domain/errors"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/domain/repository"
	"bootcamper/internal/domain/service"
	"bootcamper/internal/domain/validation"
	"bootcamper/internal/usecase"
	"bootcamper/internal/util"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	earthRadiusMiles = 3963.2
	earthRadiusKm    = 6378.1

	photoFilePrefix = "photo_"
)

// bootcampService implements the BootcampUsecase interface.
type bootcampService struct {
	txManager     repository.TransactionManager
	bootcampRepo  repository.BootcampRepository
	courseRepo    repository.CourseRepository
	geocoder      service.Geocoder
	photoStorage  service.PhotoStorage
	geocodePolicy string
	earthRadius   float64
	maxPhotoSize  int64
	logger        *slog.Logger
}

// BootcampServiceParams holds dependencies for BootcampService, injected by Fx.
type BootcampServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BootcampRepo repository.BootcampRepository
	CourseRepo   repository.CourseRepository
	Geocoder     service.Geocoder
	PhotoStorage service.PhotoStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// bootcampRules mirrors the writable bootcamp fields with their constraints.
type bootcampRules struct {
	Name          string   `json:"name" validate:"required,max=50"`
	Description   string   `json:"description" validate:"required,max=500"`
	Website       string   `json:"website" validate:"omitempty,http_url"`
	Phone         string   `json:"phone" validate:"max=20"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Address       string   `json:"address" validate:"required"`
	Careers       []string `json:"careers" validate:"required,min=1,dive,career"`
	AverageRating *float64 `json:"averageRating" validate:"omitempty,min=1,max=10"`
	AverageCost   *float64 `json:"averageCost" validate:"omitempty,min=0"`
}

// NewBootcampService is the constructor for bootcampService.
func NewBootcampService(params BootcampServiceParams) (usecase.BootcampUsecase, error) {
	srv := &bootcampService{
		txManager:     params.TxManager,
		bootcampRepo:  params.BootcampRepo,
		courseRepo:    params.CourseRepo,
		geocoder:      params.Geocoder,
		photoStorage:  params.PhotoStorage,
		geocodePolicy: config.GeocodeAlways,
		earthRadius:   earthRadiusMiles,
		logger:        params.Logger,
	}

	if cfg := params.Config.Geocoder; cfg != nil {
		if cfg.Policy != "" {
			srv.geocodePolicy = cfg.Policy
		}
		if strings.EqualFold(cfg.DistanceUnit, "km") {
			srv.earthRadius = earthRadiusKm
		}
	}

	if cfg := params.Config.Upload; cfg != nil {
		maxSize, err := cfg.MaxFileSizeBytes()
		if err != nil {
			return nil, err
		}
		srv.maxPhotoSize = maxSize
	}

	return srv, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bootcampService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBootcamps runs the translated query and attaches courses when they were requested.
func (srv *bootcampService) ListBootcamps(ctx context.Context, q *query.Query) (*usecase.BootcampList, error) {
	if q == nil {
		q = query.New()
	}

	bootcamps, err := srv.bootcampRepo.Find(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bootcamps")
	}

	total, err := srv.bootcampRepo.Count(ctx, q.Conditions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count bootcamps")
	}

	if q.Populates(query.PopulateCourses) {
		if err := srv.attachCourses(ctx, bootcamps); err != nil {
			return nil, err
		}
	}

	return &usecase.BootcampList{
		Bootcamps:  bootcamps,
		Total:      total,
		Pagination: query.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (srv *bootcampService) attachCourses(ctx context.Context, bootcamps []*entity.Bootcamp) error {
	if len(bootcamps) == 0 {
		return nil
	}

	ids := make([]string, 0, len(bootcamps))
	for _, b := range bootcamps {
		ids = append(ids, b.ID)
	}

	courses, err := srv.courseRepo.FindByBootcampIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to find courses of bootcamps")
	}

	byBootcamp := make(map[string][]*entity.Course, len(bootcamps))
	for _, c := range courses {
		byBootcamp[c.BootcampID] = append(byBootcamp[c.BootcampID], c)
	}

	for _, b := range bootcamps {
		b.Courses = byBootcamp[b.ID]
		if b.Courses == nil {
			b.Courses = []*entity.Course{}
		}
	}

	return nil
}

// GetBootcamp returns one bootcamp by its ID.
func (srv *bootcampService) GetBootcamp(ctx context.Context, id string) (*entity.Bootcamp, error) {
	bootcamp, err := srv.bootcampRepo.FindByID(ctx, id)
	if err != nil {
		return nil, bootcampLookupError(err, id)
	}

	return bootcamp, nil
}

// CreateBootcamp validates the input, derives slug and location, then persists the bootcamp.
func (srv *bootcampService) CreateBootcamp(ctx context.Context, input *usecase.CreateBootcampInput) (*entity.Bootcamp, error) {
	bootcamp := &entity.Bootcamp{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Website:       input.Website,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
		Careers:       entity.CareersFromStrings(input.Careers),
		AverageRating: input.AverageRating,
		AverageCost:   input.AverageCost,
		Photo:         entity.DefaultPhoto,
		Housing:       input.Housing,
		JobAssistance: input.JobAssistance,
		JobGuarantee:  input.JobGuarantee,
		AcceptGi:      input.AcceptGi,
	}

	if err := validateBootcamp(bootcamp); err != nil {
		return nil, err
	}

	bootcamp.Slug = slug.Make(bootcamp.Name)
	if err := srv.locate(ctx, bootcamp); err != nil {
		return nil, err
	}

	if err := srv.bootcampRepo.Create(ctx, bootcamp); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrDuplicateField
		}

		return nil, errors.Wrap(err, "failed to create bootcamp")
	}

	srv.log(ctx).Info("Bootcamp created", slog.String("bootcampID", bootcamp.ID), slog.String("slug", bootcamp.Slug))

	return bootcamp, nil
}

// UpdateBootcamp merges the present fields into the stored bootcamp and saves it again.
func (srv *bootcampService) UpdateBootcamp(ctx context.Context, id string, input *usecase.UpdateBootcampInput) (*entity.Bootcamp, error) {
	bootcamp, err := srv.bootcampRepo.FindByID(ctx, id)
	if err != nil {
		return nil, bootcampLookupError(err, id)
	}

	addressChanged := applyBootcampUpdate(bootcamp, input)
	if err := validateBootcamp(bootcamp); err != nil {
		return nil, err
	}

	bootcamp.Slug = slug.Make(bootcamp.Name)
	if srv.geocodePolicy != config.GeocodeOnChange || addressChanged || !bootcamp.HasCoordinates() {
		if err := srv.locate(ctx, bootcamp); err != nil {
			return nil, err
		}
	}

	if err := srv.bootcampRepo.Update(ctx, bootcamp); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrDuplicateField
		}

		return nil, bootcampLookupError(err, id)
	}

	return bootcamp, nil
}

func applyBootcampUpdate(b *entity.Bootcamp, input *usecase.UpdateBootcampInput) bool {
	addressChanged := false

	if input.Name != nil {
		b.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		b.Description = *input.Description
	}
	if input.Website != nil {
		b.Website = *input.Website
	}
	if input.Phone != nil {
		b.Phone = *input.Phone
	}
	if input.Email != nil {
		b.Email = *input.Email
	}
	if input.Address != nil {
		addressChanged = *input.Address != b.Address
		b.Address = *input.Address
	}
	if input.Careers != nil {
		b.Careers = entity.CareersFromStrings(input.Careers)
	}
	if input.AverageRating != nil {
		b.AverageRating = input.AverageRating
	}
	if input.AverageCost != nil {
		b.AverageCost = input.AverageCost
	}
	if input.Housing != nil {
		b.Housing = *input.Housing
	}
	if input.JobAssistance != nil {
		b.JobAssistance = *input.JobAssistance
	}
	if input.JobGuarantee != nil {
		b.JobGuarantee = *input.JobGuarantee
	}
	if input.AcceptGi != nil {
		b.AcceptGi = *input.AcceptGi
	}

	return addressChanged
}

func validateBootcamp(b *entity.Bootcamp) error {
	return validation.Struct(&bootcampRules{
		Name:          b.Name,
		Description:   b.Description,
		Website:       b.Website,
		Phone:         b.Phone,
		Email:         b.Email,
		Address:       b.Address,
		Careers:       entity.CareerStrings(b.Careers),
		AverageRating: b.AverageRating,
		AverageCost:   b.AverageCost,
	})
}

// locate geocodes the bootcamp address and overwrites its location with the first match.
func (srv *bootcampService) locate(ctx context.Context, b *entity.Bootcamp) error {
	result, err := srv.geocode(ctx, b.Address)
	if err != nil {
		return err
	}

	b.Location = &entity.Location{
		Type:             entity.LocationTypePoint,
		Coordinates:      result.Coordinates,
		FormattedAddress: result.FormattedAddress,
		Street:           result.Street,
		City:             result.City,
		State:            result.State,
		Zipcode:          result.Zipcode,
		Country:          result.Country,
	}

	return nil
}

func (srv *bootcampService) geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	result, err := srv.geocoder.Geocode(ctx, address)
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, service.ErrNoGeocodeMatch):
		return nil, domainerrors.ErrGeocodeFailed.WithMessagef("No location found for address %s", address)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, errors.Wrap(err, "geocoding interrupted")
	default:
		srv.log(ctx).Warn("Geocoding failed", slog.String("address", address), slog.Any("error", err))

		return nil, domainerrors.ErrGeocodeFailed.WithDetails(err.Error())
	}
}

// DeleteBootcamp removes the bootcamp's courses first and then the bootcamp itself.
func (srv *bootcampService) DeleteBootcamp(ctx context.Context, id string) (*entity.Bootcamp, error) {
	bootcamp, err := srv.bootcampRepo.FindByID(ctx, id)
	if err != nil {
		return nil, bootcampLookupError(err, id)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.CourseRepo().DeleteByBootcamp(ctx, bootcamp.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete courses of bootcamp")
		}
		srv.log(ctx).Info("Courses removed with bootcamp", slog.String("bootcampID", bootcamp.ID), slog.Int64("courses", removed))

		if err := repoFactory.BootcampRepo().Delete(ctx, bootcamp.ID); err != nil {
			return errors.Wrap(err, "failed to delete bootcamp")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete bootcamp", slog.String("bootcampID", id), slog.Any("error", err))

		return nil, bootcampLookupError(err, id)
	}

	return bootcamp, nil
}

// GetBootcampsInRadius geocodes the zip code and converts the distance into an angular radius.
func (srv *bootcampService) GetBootcampsInRadius(ctx context.Context, input *usecase.RadiusInput) ([]*entity.Bootcamp, error) {
	if strings.TrimSpace(input.Zipcode) == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessagef("zipcode: is required")
	}
	if input.Distance < 0 || math.IsNaN(input.Distance) || math.IsInf(input.Distance, 0) {
		return nil, domainerrors.ErrValidationFailed.WithMessagef("distance: must be a non-negative number")
	}

	result, err := srv.geocode(ctx, input.Zipcode)
	if err != nil {
		return nil, err
	}

	radius := input.Distance / srv.earthRadius
	bootcamps, err := srv.bootcampRepo.FindWithinRadius(ctx, result.Coordinates, radius)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find bootcamps within radius")
	}

	return bootcamps, nil
}

// UploadPhoto checks the file, stores it as photo_<id><ext> and records the name on the bootcamp.
func (srv *bootcampService) UploadPhoto(ctx context.Context, input *usecase.UploadPhotoInput) (string, error) {
	bootcamp, err := srv.bootcampRepo.FindByID(ctx, input.BootcampID)
	if err != nil {
		return "", bootcampLookupError(err, input.BootcampID)
	}

	if input.Content == nil || input.FileName == "" {
		return "", domainerrors.ErrFileMissing
	}
	if !strings.HasPrefix(input.ContentType, "image/") {
		return "", domainerrors.ErrFileNotImage
	}
	if srv.maxPhotoSize > 0 && input.Size > srv.maxPhotoSize {
		return "", domainerrors.ErrFileTooLarge.WithMessagef("Please upload an image less than %s", util.FormatBytes(srv.maxPhotoSize))
	}

	name := fmt.Sprintf("%s%s%s", photoFilePrefix, bootcamp.ID, path.Ext(input.FileName))
	if err := srv.photoStorage.Save(ctx, name, input.ContentType, input.Content); err != nil {
		srv.log(ctx).Error("Failed to store bootcamp photo", slog.String("bootcampID", bootcamp.ID), slog.Any("error", err))

		return "", domainerrors.ErrFileUploadFailed.WithDetails(err.Error())
	}

	if err := srv.bootcampRepo.UpdatePhoto(ctx, bootcamp.ID, name); err != nil {
		return "", bootcampLookupError(err, bootcamp.ID)
	}

	srv.log(ctx).Info("Bootcamp photo uploaded",
		slog.String("bootcampID", bootcamp.ID),
		slog.String("photo", name),
		slog.String("size", util.FormatBytes(input.Size)),
	)

	return name, nil
}

// bootcampLookupError turns the repository sentinel into the user-facing 404 naming the id.
func bootcampLookupError(err error, id string) error {
	if errors.Is(err, repository.ErrBootcampNotFound) {
		return domainerrors.ErrBootcampNotFound.WithMessagef("Bootcamp is not exist with id of %s", id)
	}

	return errors.Wrap(err, "failed to load bootcamp")
}
