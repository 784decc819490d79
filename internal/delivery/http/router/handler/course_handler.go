package handler

import (
	"log/slog"
	"net/http"

	"bootcamper/internal/delivery/http/response"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createCourseRequest struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Weeks                string   `json:"weeks"`
	Tuition              *float64 `json:"tuition"`
	MinimumSkill         string   `json:"minimumSkill"`
	ScholarshipAvailable bool     `json:"scholarshipAvailable"`
}

// updateCourseRequest has no bootcamp key; a course never moves between bootcamps.
type updateCourseRequest struct {
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	Weeks                *string  `json:"weeks"`
	Tuition              *float64 `json:"tuition"`
	MinimumSkill         *string  `json:"minimumSkill"`
	ScholarshipAvailable *bool    `json:"scholarshipAvailable"`
}

// CourseHandler holds dependencies for course-related handlers.
type CourseHandler struct {
	uc     usecase.CourseUsecase
	logger *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler, injected by Fx.
func NewCourseHandler(uc usecase.CourseUsecase, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCourses handles GET /courses; every course carries its bootcamp summary.
func (h *CourseHandler) ListCourses(c echo.Context) error {
	q, err := query.Parse(c.QueryParams(), query.CourseSchema)
	if err != nil {
		return errors.WithStack(err)
	}

	list, err := h.uc.ListCourses(c.Request().Context(), q)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.renderList(c, list, q, query.CourseBootcamp)
}

// ListBootcampCourses handles GET /bootcamps/:bootcampId/courses.
func (h *CourseHandler) ListBootcampCourses(c echo.Context) error {
	q, err := query.Parse(c.QueryParams(), query.CourseSchema)
	if err != nil {
		return errors.WithStack(err)
	}

	list, err := h.uc.ListBootcampCourses(c.Request().Context(), c.Param("bootcampId"), q)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.renderList(c, list, q)
}

func (h *CourseHandler) renderList(c echo.Context, list *usecase.CourseList, q *query.Query, keep ...string) error {
	items, err := response.Project(response.NewCourseResponses(list.Courses), q.Select, keep...)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, items, len(list.Courses), &list.Pagination)
}

// GetCourse handles GET /courses/:courseId.
func (h *CourseHandler) GetCourse(c echo.Context) error {
	course, err := h.uc.GetCourse(c.Request().Context(), c.Param("courseId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewCourseResponse(course))
}

// CreateCourse handles POST /bootcamps/:bootcampId/courses.
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(err)
	}

	course, err := h.uc.CreateCourse(c.Request().Context(), &usecase.CreateCourseInput{
		BootcampID:           c.Param("bootcampId"),
		Title:                req.Title,
		Description:          req.Description,
		Weeks:                req.Weeks,
		Tuition:              req.Tuition,
		MinimumSkill:         req.MinimumSkill,
		ScholarshipAvailable: req.ScholarshipAvailable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, response.NewCourseResponse(course))
}

// UpdateCourse handles PATCH /courses/:courseId.
func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(err)
	}

	course, err := h.uc.UpdateCourse(c.Request().Context(), c.Param("courseId"), &usecase.UpdateCourseInput{
		Title:                req.Title,
		Description:          req.Description,
		Weeks:                req.Weeks,
		Tuition:              req.Tuition,
		MinimumSkill:         req.MinimumSkill,
		ScholarshipAvailable: req.ScholarshipAvailable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewCourseResponse(course))
}

// DeleteCourse handles DELETE /courses/:courseId and returns the removed course.
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	course, err := h.uc.DeleteCourse(c.Request().Context(), c.Param("courseId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.NewCourseResponse(course))
}
