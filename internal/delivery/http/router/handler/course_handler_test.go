package handler

import (
	"context"
	"net/http"
	"testing"

	"bootcamper/internal/domain/entity"
	domainerrors "bootcamper/internal/domain/errors"
	"bootcamper/internal/domain/query"
	mockUsecase "bootcamper/internal/mocks/usecase"
	"bootcamper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCourseTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockCourseUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockCourseUsecase(t)
	h := NewCourseHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.GET("/api/courses", h.ListCourses)
	e.GET("/api/courses/:courseId", h.GetCourse)
	e.PATCH("/api/courses/:courseId", h.UpdateCourse)
	e.DELETE("/api/courses/:courseId", h.DeleteCourse)
	e.GET("/api/bootcamps/:bootcampId/courses", h.ListBootcampCourses)
	e.POST("/api/bootcamps/:bootcampId/courses", h.CreateCourse)

	return e, uc
}

func sampleCourse() *entity.Course {
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

func TestCourseHandler_ListCourses_PopulatedBootcampSurvivesSelect(t *testing.T) {
	e, uc := newCourseTestServer(t)

	course := sampleCourse()
	course.Bootcamp = &entity.BootcampSummary{ID: course.BootcampID, Name: "Devworks Bootcamp", Description: "Full stack"}

	uc.EXPECT().
		ListCourses(mock.Anything, mock.AnythingOfType("*query.Query")).
		Return(&usecase.CourseList{Courses: []*entity.Course{course}, Total: 1}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/courses?select=title", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"count": 1,
		"pagination": {},
		"data": [{
			"_id": "5d725a4a7b292f5f8ceff789",
			"title": "Front End Web Development",
			"bootcamp": {"_id": "5d713995b721c3bb38c1f5d0", "name": "Devworks Bootcamp", "description": "Full stack"}
		}]
	}`, rec.Body.String())
}

func TestCourseHandler_ListBootcampCourses_KeepsBootcampID(t *testing.T) {
	e, uc := newCourseTestServer(t)

	uc.EXPECT().
		ListBootcampCourses(mock.Anything, "5d713995b721c3bb38c1f5d0", mock.MatchedBy(func(q *query.Query) bool {
			return assert.ObjectsAreEqual([]query.Condition{{Field: "tuition", Op: query.OpLte, Value: 9000.0}}, q.Conditions)
		})).
		Return(&usecase.CourseList{Courses: []*entity.Course{sampleCourse()}, Total: 1}, nil)

	rec := serveJSON(e, http.MethodGet, "/api/bootcamps/5d713995b721c3bb38c1f5d0/courses?tuition[lte]=9000", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "5d713995b721c3bb38c1f5d0", data[0].(map[string]any)["bootcamp"])
}

func TestCourseHandler_GetCourse_NotFound(t *testing.T) {
	e, uc := newCourseTestServer(t)

	uc.EXPECT().
		GetCourse(mock.Anything, "nope").
		Return(nil, domainerrors.ErrCourseNotFound.WithMessagef("Course is not exist with id of %s", "nope"))

	rec := serveJSON(e, http.MethodGet, "/api/courses/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Course is not exist with id of nope", decodeBody(t, rec)["error"])
}

func TestCourseHandler_CreateCourse_UsesPathBootcamp(t *testing.T) {
	e, uc := newCourseTestServer(t)

	uc.EXPECT().
		CreateCourse(mock.Anything, mock.AnythingOfType("*usecase.CreateCourseInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.CreateCourseInput) (*entity.Course, error) {
			assert.Equal(t, "5d713995b721c3bb38c1f5d0", input.BootcampID)
			assert.Equal(t, "intermediate", input.MinimumSkill)
			require.NotNil(t, input.Tuition)
			assert.Equal(t, 8000.0, *input.Tuition)

			course := sampleCourse()
			course.MinimumSkill = entity.SkillIntermediate

			return course, nil
		})

	rec := serveJSON(e, http.MethodPost, "/api/bootcamps/5d713995b721c3bb38c1f5d0/courses", `{
		"title": "Front End Web Development",
		"description": "This course will provide you with all of the essentials",
		"weeks": "8",
		"tuition": 8000,
		"minimumSkill": "intermediate",
		"bootcamp": "someone-else"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "intermediate", decodeBody(t, rec)["data"].(map[string]any)["minimumSkill"])
}

func TestCourseHandler_CreateCourse_MissingBootcamp(t *testing.T) {
	e, uc := newCourseTestServer(t)

	uc.EXPECT().
		CreateCourse(mock.Anything, mock.AnythingOfType("*usecase.CreateCourseInput")).
		Return(nil, domainerrors.ErrBootcampNotFound.WithMessagef("Bootcamp is not exist with id of %s", "gone"))

	rec := serveJSON(e, http.MethodPost, "/api/bootcamps/gone/courses", `{"title": "x"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Bootcamp is not exist with id of gone", decodeBody(t, rec)["error"])
}

func TestCourseHandler_UpdateCourse(t *testing.T) {
	e, uc := newCourseTestServer(t)

	updated := sampleCourse()
	updated.Tuition = 12000

	uc.EXPECT().
		UpdateCourse(mock.Anything, updated.ID, mock.AnythingOfType("*usecase.UpdateCourseInput")).
		Run(func(ctx context.Context, id string, input *usecase.UpdateCourseInput) {
			require.NotNil(t, input.Tuition)
			assert.Equal(t, 12000.0, *input.Tuition)
			assert.Nil(t, input.Title)
		}).
		Return(updated, nil)

	rec := serveJSON(e, http.MethodPatch, "/api/courses/"+updated.ID, `{"tuition": 12000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12000.0, decodeBody(t, rec)["data"].(map[string]any)["tuition"])
}

func TestCourseHandler_DeleteCourse(t *testing.T) {
	e, uc := newCourseTestServer(t)

	removed := sampleCourse()
	uc.EXPECT().DeleteCourse(mock.Anything, removed.ID).Return(removed, nil)

	rec := serveJSON(e, http.MethodDelete, "/api/courses/"+removed.ID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, removed.Title, decodeBody(t, rec)["data"].(map[string]any)["title"])
}
