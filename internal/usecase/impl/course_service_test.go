package impl

import (
	"context"
	"testing"

	"bootcamper/internal/domain/entity"
	domainerrors "bootcamper/internal/domain/errors"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/domain/repository"
	mockRepo "bootcamper/internal/mocks/repository"
	"bootcamper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type courseServiceFixtures struct {
	service      usecase.CourseUsecase
	courseRepo   *mockRepo.MockCourseRepository
	bootcampRepo *mockRepo.MockBootcampRepository
}

func createTestCourseService(t *testing.T) courseServiceFixtures {
	t.Helper()

	courseRepo := mockRepo.NewMockCourseRepository(t)
	bootcampRepo := mockRepo.NewMockBootcampRepository(t)

	return courseServiceFixtures{
		service: NewCourseService(CourseServiceParams{
			CourseRepo:   courseRepo,
			BootcampRepo: bootcampRepo,
			Logger:       newDiscardLogger(),
		}),
		courseRepo:   courseRepo,
		bootcampRepo: bootcampRepo,
	}
}

func storedCourse() *entity.Course {
	return &entity.Course{
		ID:           "5d725a4a7b292f5f8ceff789",
		Title:        "Front End Web Development",
		Description:  "This course will provide you with all of the essentials",
		Weeks:        "8",
		Tuition:      8000,
		MinimumSkill: entity.SkillBeginner,
		BootcampID:   "5d713995b721c3bb38c1f5d0",
	}
}

func TestCourseService_ListCourses_PopulatesBootcamp(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	q := query.New()
	q.Select = []string{query.CourseTitle}

	first := storedCourse()
	second := storedCourse()
	second.ID = "5d725a4a7b292f5f8ceff790"

	fx.courseRepo.EXPECT().
		Find(ctx, mock.MatchedBy(func(got *query.Query) bool {
			// The join key is loaded even though only the title was selected.
			return assert.ObjectsAreEqual([]string{query.CourseTitle, query.CourseBootcamp}, got.Select)
		})).
		Return([]*entity.Course{first, second}, nil)
	fx.courseRepo.EXPECT().Count(ctx, q.Conditions).Return(int64(2), nil)
	fx.bootcampRepo.EXPECT().
		FindByIDs(ctx, []string{first.BootcampID}).
		Return([]*entity.Bootcamp{{ID: first.BootcampID, Name: "Devworks Bootcamp", Description: "Full stack"}}, nil)

	list, err := fx.service.ListCourses(ctx, q)

	require.NoError(t, err)
	require.Len(t, list.Courses, 2)
	for _, c := range list.Courses {
		require.NotNil(t, c.Bootcamp)
		assert.Equal(t, "Devworks Bootcamp", c.Bootcamp.Name)
	}
	// The caller's query is left untouched.
	assert.Equal(t, []string{query.CourseTitle}, q.Select)
}

func TestCourseService_ListBootcampCourses_ScopesToBootcamp(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	q := query.New()
	q.Where(query.CourseBootcamp, query.OpEq, "someone-else")
	q.Where(query.CourseTuition, query.OpLt, 10000.0)

	expected := []query.Condition{
		{Field: query.CourseTuition, Op: query.OpLt, Value: 10000.0},
		{Field: query.CourseBootcamp, Op: query.OpEq, Value: "5d713995b721c3bb38c1f5d0"},
	}

	fx.courseRepo.EXPECT().
		Find(ctx, mock.MatchedBy(func(got *query.Query) bool {
			return assert.ObjectsAreEqual(expected, got.Conditions)
		})).
		Return([]*entity.Course{storedCourse()}, nil)
	fx.courseRepo.EXPECT().Count(ctx, expected).Return(int64(1), nil)

	list, err := fx.service.ListBootcampCourses(ctx, "5d713995b721c3bb38c1f5d0", q)

	require.NoError(t, err)
	require.Len(t, list.Courses, 1)
	assert.Nil(t, list.Courses[0].Bootcamp)
	assert.Len(t, q.Conditions, 2)
}

func TestCourseService_GetCourse(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	course := storedCourse()

	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.bootcampRepo.EXPECT().
		FindByIDs(ctx, []string{course.BootcampID}).
		Return([]*entity.Bootcamp{{ID: course.BootcampID, Name: "Devworks Bootcamp"}}, nil)

	got, err := fx.service.GetCourse(ctx, course.ID)

	require.NoError(t, err)
	require.NotNil(t, got.Bootcamp)
	assert.Equal(t, course.BootcampID, got.Bootcamp.ID)
}

func TestCourseService_GetCourse_NotFound(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	fx.courseRepo.EXPECT().FindByID(ctx, "abc").Return(nil, repository.ErrCourseNotFound)

	_, err := fx.service.GetCourse(ctx, "abc")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCourseNotFound))
	assert.Equal(t, "Course is not exist with id of abc", err.Error())
}

func TestCourseService_CreateCourse(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	input := &usecase.CreateCourseInput{
		BootcampID:   "5d713995b721c3bb38c1f5d0",
		Title:        "Full Stack Web Development",
		Description:  "In this course you will learn full stack web development",
		Weeks:        "12",
		Tuition:      ptr(10000.0),
		MinimumSkill: "intermediate",
	}

	fx.bootcampRepo.EXPECT().FindByID(ctx, input.BootcampID).Return(&entity.Bootcamp{ID: input.BootcampID}, nil)
	fx.courseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Course")).
		Run(func(ctx context.Context, course *entity.Course) {
			course.ID = "new-course"
		}).
		Return(nil)

	course, err := fx.service.CreateCourse(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new-course", course.ID)
	assert.Equal(t, entity.SkillIntermediate, course.MinimumSkill)
	assert.Equal(t, input.BootcampID, course.BootcampID)
}

func TestCourseService_CreateCourse_MissingBootcamp(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	fx.bootcampRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrBootcampNotFound)

	_, err := fx.service.CreateCourse(ctx, &usecase.CreateCourseInput{BootcampID: "gone", Title: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBootcampNotFound))
	assert.Equal(t, "Bootcamp is not exist with id of gone", err.Error())
}

func TestCourseService_CreateCourse_InvalidSkill(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	fx.bootcampRepo.EXPECT().FindByID(ctx, "b1").Return(&entity.Bootcamp{ID: "b1"}, nil)

	_, err := fx.service.CreateCourse(ctx, &usecase.CreateCourseInput{
		BootcampID:   "b1",
		Title:        "Course",
		Description:  "Desc",
		Weeks:        "4",
		Tuition:      ptr(-1.0),
		MinimumSkill: "expert",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "tuition")
	assert.Contains(t, err.Error(), "minimumSkill")
}

func TestCourseService_CreateCourse_TuitionRequired(t *testing.T) {
	tests := []struct {
		name    string
		tuition *float64
		wantErr bool
	}{
		{name: "missing", tuition: nil, wantErr: true},
		{name: "free course", tuition: ptr(0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCourseService(t)

			ctx := context.Background()
			fx.bootcampRepo.EXPECT().FindByID(ctx, "b1").Return(&entity.Bootcamp{ID: "b1"}, nil)
			if !tt.wantErr {
				fx.courseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Course")).Return(nil)
			}

			course, err := fx.service.CreateCourse(ctx, &usecase.CreateCourseInput{
				BootcampID:   "b1",
				Title:        "Course",
				Description:  "Desc",
				Weeks:        "4",
				Tuition:      tt.tuition,
				MinimumSkill: "beginner",
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
				assert.Contains(t, err.Error(), "tuition: is required")

				return
			}
			require.NoError(t, err)
			assert.Zero(t, course.Tuition)
		})
	}
}

func TestCourseService_UpdateCourse_KeepsBootcamp(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	course := storedCourse()

	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.courseRepo.EXPECT().Update(ctx, course).Return(nil)

	updated, err := fx.service.UpdateCourse(ctx, course.ID, &usecase.UpdateCourseInput{
		Tuition:              ptr(12000.0),
		ScholarshipAvailable: ptr(true),
	})

	require.NoError(t, err)
	assert.Equal(t, 12000.0, updated.Tuition)
	assert.True(t, updated.ScholarshipAvailable)
	assert.Equal(t, "Front End Web Development", updated.Title)
	assert.Equal(t, "5d713995b721c3bb38c1f5d0", updated.BootcampID)
}

func TestCourseService_DeleteCourse(t *testing.T) {
	fx := createTestCourseService(t)

	ctx := context.Background()
	course := storedCourse()

	fx.courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	fx.courseRepo.EXPECT().Delete(ctx, course.ID).Return(nil)

	removed, err := fx.service.DeleteCourse(ctx, course.ID)

	require.NoError(t, err)
	assert.Equal(t, course, removed)
}
