package impl

import (
	"context"
	"math"
	"strings"
	"testing"

	"bootcamper/config"
	"bootcamper/internal/domain/entity"
	domainerrors "bootcamper/internal/domain/errors"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/domain/repository"
	"bootcamper/internal/domain/service"
	mockRepo "bootcamper/internal/mocks/repository"
	mockSvc "bootcamper/internal/mocks/service"
	"bootcamper/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bootcampServiceFixtures holds all test dependencies for bootcamp service tests.
type bootcampServiceFixtures struct {
	service      usecase.BootcampUsecase
	txManager    *mockRepo.MockTransactionManager
	bootcampRepo *mockRepo.MockBootcampRepository
	courseRepo   *mockRepo.MockCourseRepository
	geocoder     *mockSvc.MockGeocoder
	photoStorage *mockSvc.MockPhotoStorage
}

func createTestBootcampService(t *testing.T, cfg *config.Config) bootcampServiceFixtures {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	bootcampRepo := mockRepo.NewMockBootcampRepository(t)
	courseRepo := mockRepo.NewMockCourseRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	photoStorage := mockSvc.NewMockPhotoStorage(t)

	svc, err := NewBootcampService(BootcampServiceParams{
		TxManager:    txManager,
		BootcampRepo: bootcampRepo,
		CourseRepo:   courseRepo,
		Geocoder:     geocoder,
		PhotoStorage: photoStorage,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})
	require.NoError(t, err)

	return bootcampServiceFixtures{
		service:      svc,
		txManager:    txManager,
		bootcampRepo: bootcampRepo,
		courseRepo:   courseRepo,
		geocoder:     geocoder,
		photoStorage: photoStorage,
	}
}

func bostonMatch() *service.GeocodeResult {
	return &service.GeocodeResult{
		Coordinates:      orb.Point{-71.104028, 42.350846},
		FormattedAddress: "233 Bay State Rd, Boston, MA 02215-1405, US",
		Street:           "233 Bay State Rd",
		City:             "Boston",
		State:            "MA",
		Zipcode:          "02215-1405",
		Country:          "US",
	}
}

func validCreateInput() *usecase.CreateBootcampInput {
	return &usecase.CreateBootcampInput{
		Name:        "Devworks Bootcamp",
		Description: "Devworks is a full stack JavaScript Bootcamp",
		Website:     "https://devworks.com",
		Phone:       "(111) 111-1111",
		Email:       "enroll@devworks.com",
		Address:     "233 Bay State Rd Boston MA 02215",
		Careers:     []string{"Web Development", "UI/UX", "Business"},
		Housing:     true,
	}
}

func storedBootcamp() *entity.Bootcamp {
	match := bostonMatch()

	return &entity.Bootcamp{
		ID:          "5d713995b721c3bb38c1f5d0",
		Name:        "Devworks Bootcamp",
		Slug:        "devworks-bootcamp",
		Description: "Devworks is a full stack JavaScript Bootcamp",
		Address:     "233 Bay State Rd Boston MA 02215",
		Careers:     []entity.Career{entity.CareerWebDevelopment},
		Photo:       entity.DefaultPhoto,
		Location: &entity.Location{
			Type:             entity.LocationTypePoint,
			Coordinates:      match.Coordinates,
			FormattedAddress: match.FormattedAddress,
		},
	}
}

func TestBootcampService_CreateBootcamp_Success(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	input := validCreateInput()

	fx.geocoder.EXPECT().Geocode(ctx, input.Address).Return(bostonMatch(), nil)
	fx.bootcampRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Bootcamp")).
		Run(func(ctx context.Context, bootcamp *entity.Bootcamp) {
			bootcamp.ID = "5d713995b721c3bb38c1f5d0"
		}).
		Return(nil)

	bootcamp, err := fx.service.CreateBootcamp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "5d713995b721c3bb38c1f5d0", bootcamp.ID)
	assert.Equal(t, "devworks-bootcamp", bootcamp.Slug)
	assert.Equal(t, entity.DefaultPhoto, bootcamp.Photo)
	require.NotNil(t, bootcamp.Location)
	assert.Equal(t, entity.LocationTypePoint, bootcamp.Location.Type)
	assert.Equal(t, orb.Point{-71.104028, 42.350846}, bootcamp.Location.Coordinates)
	assert.NotEmpty(t, bootcamp.Location.FormattedAddress)
	assert.True(t, bootcamp.HasCoordinates())
}

func TestBootcampService_CreateBootcamp_ValidationFailed(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	input := validCreateInput()
	input.Name = strings.Repeat("x", 51)
	input.Careers = []string{"Cooking"}

	bootcamp, err := fx.service.CreateBootcamp(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, bootcamp)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "name: must be at most 50 characters")
	assert.Contains(t, err.Error(), "careers[0]")
}

func TestBootcampService_CreateBootcamp_GeocodeNoMatch(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	input := validCreateInput()

	fx.geocoder.EXPECT().Geocode(ctx, input.Address).Return(nil, service.ErrNoGeocodeMatch)

	bootcamp, err := fx.service.CreateBootcamp(ctx, input)

	require.Error(t, err)
	assert.Nil(t, bootcamp)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeFailed))
}

func TestBootcampService_CreateBootcamp_ProviderError(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	input := validCreateInput()

	fx.geocoder.EXPECT().Geocode(ctx, input.Address).Return(nil, errors.New("quota exceeded"))

	_, err := fx.service.CreateBootcamp(ctx, input)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "quota exceeded", appErr.Details())
}

func TestBootcampService_CreateBootcamp_DuplicateName(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	input := validCreateInput()

	fx.geocoder.EXPECT().Geocode(ctx, input.Address).Return(bostonMatch(), nil)
	fx.bootcampRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Bootcamp")).
		Return(errors.Wrap(repository.ErrDuplicateKey, "name"))

	_, err := fx.service.CreateBootcamp(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateField))
}

func TestBootcampService_ListBootcamps_Pagination(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	q := query.New()
	q.Page = 2
	q.Limit = 5
	q.Where(query.BootcampAverageCost, query.OpGte, 1000.0)

	fx.bootcampRepo.EXPECT().Find(ctx, q).Return([]*entity.Bootcamp{storedBootcamp()}, nil)
	fx.bootcampRepo.EXPECT().Count(ctx, q.Conditions).Return(int64(11), nil)

	list, err := fx.service.ListBootcamps(ctx, q)

	require.NoError(t, err)
	assert.Len(t, list.Bootcamps, 1)
	assert.Equal(t, int64(11), list.Total)
	require.NotNil(t, list.Pagination.Next)
	require.NotNil(t, list.Pagination.Prev)
	assert.Equal(t, query.PageRef{Page: 3, Limit: 5}, *list.Pagination.Next)
	assert.Equal(t, query.PageRef{Page: 1, Limit: 5}, *list.Pagination.Prev)
	assert.Nil(t, list.Bootcamps[0].Courses)
}

func TestBootcampService_ListBootcamps_PopulatesCourses(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	q := query.New()
	q.Populate = []string{query.PopulateCourses}

	withCourses := storedBootcamp()
	withoutCourses := storedBootcamp()
	withoutCourses.ID = "5d725a037b292f5f8ceff787"

	fx.bootcampRepo.EXPECT().Find(ctx, q).Return([]*entity.Bootcamp{withCourses, withoutCourses}, nil)
	fx.bootcampRepo.EXPECT().Count(ctx, q.Conditions).Return(int64(2), nil)
	fx.courseRepo.EXPECT().
		FindByBootcampIDs(ctx, []string{withCourses.ID, withoutCourses.ID}).
		Return([]*entity.Course{
			{ID: "c1", Title: "Front End Web Development", BootcampID: withCourses.ID},
			{ID: "c2", Title: "Full Stack Web Development", BootcampID: withCourses.ID},
		}, nil)

	list, err := fx.service.ListBootcamps(ctx, q)

	require.NoError(t, err)
	assert.Len(t, list.Bootcamps[0].Courses, 2)
	assert.NotNil(t, list.Bootcamps[1].Courses)
	assert.Empty(t, list.Bootcamps[1].Courses)
	assert.Nil(t, list.Pagination.Next)
	assert.Nil(t, list.Pagination.Prev)
}

func TestBootcampService_GetBootcamp_NotFound(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	fx.bootcampRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrBootcampNotFound)

	_, err := fx.service.GetBootcamp(ctx, "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBootcampNotFound))
	assert.Equal(t, "Bootcamp is not exist with id of missing", err.Error())
}

func TestBootcampService_UpdateBootcamp_OnChangeSkipsGeocode(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeOnChange))

	ctx := context.Background()
	existing := storedBootcamp()
	fx.bootcampRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.bootcampRepo.EXPECT().Update(ctx, existing).Return(nil)

	updated, err := fx.service.UpdateBootcamp(ctx, existing.ID, &usecase.UpdateBootcampInput{
		Name:         ptr("Devworks Academy"),
		JobGuarantee: ptr(true),
	})

	require.NoError(t, err)
	assert.Equal(t, "Devworks Academy", updated.Name)
	assert.Equal(t, "devworks-academy", updated.Slug)
	assert.True(t, updated.JobGuarantee)
	// Untouched fields survive the merge.
	assert.Equal(t, "Devworks is a full stack JavaScript Bootcamp", updated.Description)
	assert.Equal(t, []entity.Career{entity.CareerWebDevelopment}, updated.Careers)
}

func TestBootcampService_UpdateBootcamp_OnChangeGeocodesNewAddress(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeOnChange))

	ctx := context.Background()
	existing := storedBootcamp()
	newAddress := "45 Upper College Rd Kingston RI 02881"
	moved := &service.GeocodeResult{Coordinates: orb.Point{-71.525909, 41.483657}, FormattedAddress: "45 Upper College Rd, Kingston, RI 02881-2003, US"}

	fx.bootcampRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.geocoder.EXPECT().Geocode(ctx, newAddress).Return(moved, nil)
	fx.bootcampRepo.EXPECT().Update(ctx, existing).Return(nil)

	updated, err := fx.service.UpdateBootcamp(ctx, existing.ID, &usecase.UpdateBootcampInput{Address: &newAddress})

	require.NoError(t, err)
	assert.Equal(t, moved.Coordinates, updated.Location.Coordinates)
	assert.Equal(t, moved.FormattedAddress, updated.Location.FormattedAddress)
}

func TestBootcampService_UpdateBootcamp_AlwaysRegeocodes(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	existing := storedBootcamp()

	fx.bootcampRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.geocoder.EXPECT().Geocode(ctx, existing.Address).Return(bostonMatch(), nil)
	fx.bootcampRepo.EXPECT().Update(ctx, existing).Return(nil)

	_, err := fx.service.UpdateBootcamp(ctx, existing.ID, &usecase.UpdateBootcampInput{Housing: ptr(false)})

	require.NoError(t, err)
}

func TestBootcampService_UpdateBootcamp_EmptyCareersRejected(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	existing := storedBootcamp()
	fx.bootcampRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	_, err := fx.service.UpdateBootcamp(ctx, existing.ID, &usecase.UpdateBootcampInput{Careers: []string{}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBootcampService_DeleteBootcamp_CascadesCourses(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	existing := storedBootcamp()

	fx.bootcampRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txCourseRepo := mockRepo.NewMockCourseRepository(t)
			txBootcampRepo := mockRepo.NewMockBootcampRepository(t)

			mockFactory.EXPECT().CourseRepo().Return(txCourseRepo)
			mockFactory.EXPECT().BootcampRepo().Return(txBootcampRepo)
			txCourseRepo.EXPECT().DeleteByBootcamp(ctx, existing.ID).Return(int64(4), nil)
			txBootcampRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

			return fn(mockFactory)
		})

	removed, err := fx.service.DeleteBootcamp(ctx, existing.ID)

	require.NoError(t, err)
	assert.Equal(t, existing, removed)
}

func TestBootcampService_DeleteBootcamp_CascadeFailureKeepsBootcamp(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	existing := storedBootcamp()

	fx.bootcampRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txCourseRepo := mockRepo.NewMockCourseRepository(t)

			// BootcampRepo is never requested when the cascade fails.
			mockFactory.EXPECT().CourseRepo().Return(txCourseRepo)
			txCourseRepo.EXPECT().DeleteByBootcamp(ctx, existing.ID).Return(int64(0), errors.New("connection reset"))

			return fn(mockFactory)
		})

	removed, err := fx.service.DeleteBootcamp(ctx, existing.ID)

	require.Error(t, err)
	assert.Nil(t, removed)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBootcampService_DeleteBootcamp_NotFound(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	fx.bootcampRepo.EXPECT().FindByID(ctx, "nope").Return(nil, repository.ErrBootcampNotFound)

	_, err := fx.service.DeleteBootcamp(ctx, "nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBootcampNotFound))
}

func TestBootcampService_GetBootcampsInRadius(t *testing.T) {
	tests := []struct {
		name   string
		unit   string
		radius float64
	}{
		{name: "miles", unit: "mi", radius: 100 / 3963.2},
		{name: "kilometres", unit: "km", radius: 100 / 6378.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(config.GeocodeAlways)
			cfg.Geocoder.DistanceUnit = tt.unit
			fx := createTestBootcampService(t, cfg)

			ctx := context.Background()
			center := bostonMatch()
			fx.geocoder.EXPECT().Geocode(ctx, "02118").Return(center, nil)
			fx.bootcampRepo.EXPECT().
				FindWithinRadius(ctx, center.Coordinates, mock.MatchedBy(func(radius float64) bool {
					return math.Abs(radius-tt.radius) < 1e-12
				})).
				Return([]*entity.Bootcamp{storedBootcamp()}, nil)

			bootcamps, err := fx.service.GetBootcampsInRadius(ctx, &usecase.RadiusInput{Zipcode: "02118", Distance: 100})

			require.NoError(t, err)
			assert.Len(t, bootcamps, 1)
		})
	}
}

func TestBootcampService_GetBootcampsInRadius_NegativeDistance(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	_, err := fx.service.GetBootcampsInRadius(context.Background(), &usecase.RadiusInput{Zipcode: "02118", Distance: -1})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBootcampService_UploadPhoto_Success(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	existing := storedBootcamp()
	content := strings.NewReader("fake-jpeg")

	fx.bootcampRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.photoStorage.EXPECT().Save(ctx, "photo_5d713995b721c3bb38c1f5d0.jpg", "image/jpeg", content).Return(nil)
	fx.bootcampRepo.EXPECT().UpdatePhoto(ctx, existing.ID, "photo_5d713995b721c3bb38c1f5d0.jpg").Return(nil)

	name, err := fx.service.UploadPhoto(ctx, &usecase.UploadPhotoInput{
		BootcampID:  existing.ID,
		FileName:    "campus.jpg",
		ContentType: "image/jpeg",
		Size:        int64(content.Len()),
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "photo_5d713995b721c3bb38c1f5d0.jpg", name)
}

func TestBootcampService_UploadPhoto_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		input       *usecase.UploadPhotoInput
		expectedErr error
		message     string
	}{
		{
			name:        "missing file",
			input:       &usecase.UploadPhotoInput{},
			expectedErr: domainerrors.ErrFileMissing,
			message:     "Please upload a file",
		},
		{
			name: "not an image",
			input: &usecase.UploadPhotoInput{
				FileName:    "notes.pdf",
				ContentType: "application/pdf",
				Size:        10,
				Content:     strings.NewReader("%PDF"),
			},
			expectedErr: domainerrors.ErrFileNotImage,
			message:     "Please upload an image file",
		},
		{
			name: "too large",
			input: &usecase.UploadPhotoInput{
				FileName:    "huge.png",
				ContentType: "image/png",
				Size:        1000001,
				Content:     strings.NewReader("png"),
			},
			expectedErr: domainerrors.ErrFileTooLarge,
			message:     "Please upload an image less than 1.0 MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

			ctx := context.Background()
			existing := storedBootcamp()
			tt.input.BootcampID = existing.ID
			fx.bootcampRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

			_, err := fx.service.UploadPhoto(ctx, tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr))
			assert.Equal(t, tt.message, err.Error())
			// Neither Save nor UpdatePhoto ran, so the stored photo is unchanged.
			assert.Equal(t, entity.DefaultPhoto, existing.Photo)
		})
	}
}

func TestBootcampService_UploadPhoto_StorageFailure(t *testing.T) {
	fx := createTestBootcampService(t, newTestConfig(config.GeocodeAlways))

	ctx := context.Background()
	existing := storedBootcamp()

	fx.bootcampRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.photoStorage.EXPECT().
		Save(ctx, "photo_5d713995b721c3bb38c1f5d0.png", "image/png", mock.Anything).
		Return(errors.New("disk full"))

	_, err := fx.service.UploadPhoto(ctx, &usecase.UploadPhotoInput{
		BootcampID:  existing.ID,
		FileName:    "a.png",
		ContentType: "image/png",
		Size:        3,
		Content:     strings.NewReader("png"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFileUploadFailed))
}

func TestNewBootcampService_InvalidUploadSize(t *testing.T) {
	cfg := newTestConfig(config.GeocodeAlways)
	cfg.Upload.MaxFileSize = "lots"

	_, err := NewBootcampService(BootcampServiceParams{Config: cfg, Logger: newDiscardLogger()})

	require.Error(t, err)
}
