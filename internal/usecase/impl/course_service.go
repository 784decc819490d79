package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "bootcamper/internal/delivery/context"
	"bootcamper/internal/domain/entity"
	domainerrors "bootcamper/internal/domain/errors"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/domain/repository"
	"bootcamper/internal/domain/validation"
	"bootcamper/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// courseService implements the CourseUsecase interface.
type courseService struct {
	courseRepo   repository.CourseRepository
	bootcampRepo repository.BootcampRepository
	logger       *slog.Logger
}

// CourseServiceParams holds dependencies for CourseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	CourseRepo   repository.CourseRepository
	BootcampRepo repository.BootcampRepository
	Logger       *slog.Logger
}

type courseRules struct {
	Title        string   `json:"title" validate:"required,max=100"`
	Description  string   `json:"description" validate:"required,max=500"`
	Weeks        string   `json:"weeks" validate:"required"`
	Tuition      *float64 `json:"tuition" validate:"required,gte=0"`
	MinimumSkill string   `json:"minimumSkill" validate:"required,skill"`
	BootcampID   string   `json:"bootcamp" validate:"required"`
}

// NewCourseService is the constructor for courseService.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		courseRepo:   params.CourseRepo,
		bootcampRepo: params.BootcampRepo,
		logger:       params.Logger,
	}
}

func (srv *courseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCourses lists courses with their bootcamp summary attached.
func (srv *courseService) ListCourses(ctx context.Context, q *query.Query) (*usecase.CourseList, error) {
	if q == nil {
		q = query.New()
	}

	// The join key has to be loaded even when the caller projected it away.
	storeQuery := *q
	if len(q.Select) > 0 && !slices.Contains(q.Select, query.CourseBootcamp) {
		storeQuery.Select = append(slices.Clone(q.Select), query.CourseBootcamp)
	}

	list, err := srv.list(ctx, &storeQuery)
	if err != nil {
		return nil, err
	}

	if err := srv.attachBootcamps(ctx, list.Courses); err != nil {
		return nil, err
	}

	return list, nil
}

// ListBootcampCourses lists the courses of one bootcamp; the path id overrides any bootcamp filter.
func (srv *courseService) ListBootcampCourses(ctx context.Context, bootcampID string, q *query.Query) (*usecase.CourseList, error) {
	if q == nil {
		q = query.New()
	}

	scoped := *q
	scoped.Conditions = make([]query.Condition, 0, len(q.Conditions)+1)
	for _, c := range q.Conditions {
		if c.Field != query.CourseBootcamp {
			scoped.Conditions = append(scoped.Conditions, c)
		}
	}
	scoped.Where(query.CourseBootcamp, query.OpEq, bootcampID)

	return srv.list(ctx, &scoped)
}

func (srv *courseService) list(ctx context.Context, q *query.Query) (*usecase.CourseList, error) {
	courses, err := srv.courseRepo.Find(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find courses")
	}

	total, err := srv.courseRepo.Count(ctx, q.Conditions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count courses")
	}

	return &usecase.CourseList{
		Courses:    courses,
		Total:      total,
		Pagination: query.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (srv *courseService) attachBootcamps(ctx context.Context, courses []*entity.Course) error {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		if c.BootcampID != "" && !slices.Contains(ids, c.BootcampID) {
			ids = append(ids, c.BootcampID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	bootcamps, err := srv.bootcampRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to find bootcamps of courses")
	}

	summaries := make(map[string]*entity.BootcampSummary, len(bootcamps))
	for _, b := range bootcamps {
		summaries[b.ID] = b.Summary()
	}
	for _, c := range courses {
		c.Bootcamp = summaries[c.BootcampID]
	}

	return nil
}

// GetCourse returns one course with its bootcamp summary.
func (srv *courseService) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, courseLookupError(err, id)
	}

	if err := srv.attachBootcamps(ctx, []*entity.Course{course}); err != nil {
		return nil, err
	}

	return course, nil
}

// CreateCourse adds a course to an existing bootcamp.
func (srv *courseService) CreateCourse(ctx context.Context, input *usecase.CreateCourseInput) (*entity.Course, error) {
	if _, err := srv.bootcampRepo.FindByID(ctx, input.BootcampID); err != nil {
		return nil, bootcampLookupError(err, input.BootcampID)
	}

	course := &entity.Course{
		Title:                strings.TrimSpace(input.Title),
		Description:          input.Description,
		Weeks:                input.Weeks,
		MinimumSkill:         entity.Skill(input.MinimumSkill),
		ScholarshipAvailable: input.ScholarshipAvailable,
		BootcampID:           input.BootcampID,
	}
	if input.Tuition != nil {
		course.Tuition = *input.Tuition
	}
	if err := validateCourse(course, input.Tuition); err != nil {
		return nil, err
	}

	if err := srv.courseRepo.Create(ctx, course); err != nil {
		// The bootcamp may have been removed since the lookup.
		if errors.Is(err, repository.ErrBootcampNotFound) {
			return nil, bootcampLookupError(err, input.BootcampID)
		}

		return nil, errors.Wrap(err, "failed to create course")
	}

	srv.log(ctx).Info("Course created", slog.String("courseID", course.ID), slog.String("bootcampID", course.BootcampID))

	return course, nil
}

// UpdateCourse merges the present fields into the stored course. The owning bootcamp never changes.
func (srv *courseService) UpdateCourse(ctx context.Context, id string, input *usecase.UpdateCourseInput) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, courseLookupError(err, id)
	}

	if input.Title != nil {
		course.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Weeks != nil {
		course.Weeks = *input.Weeks
	}
	if input.Tuition != nil {
		course.Tuition = *input.Tuition
	}
	if input.MinimumSkill != nil {
		course.MinimumSkill = entity.Skill(*input.MinimumSkill)
	}
	if input.ScholarshipAvailable != nil {
		course.ScholarshipAvailable = *input.ScholarshipAvailable
	}

	if err := validateCourse(course, &course.Tuition); err != nil {
		return nil, err
	}

	if err := srv.courseRepo.Update(ctx, course); err != nil {
		return nil, courseLookupError(err, id)
	}

	return course, nil
}

// DeleteCourse removes the course and returns it.
func (srv *courseService) DeleteCourse(ctx context.Context, id string) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, courseLookupError(err, id)
	}

	if err := srv.courseRepo.Delete(ctx, course.ID); err != nil {
		return nil, courseLookupError(err, id)
	}

	return course, nil
}

// validateCourse checks c; tuition is nil when the request left it out.
func validateCourse(c *entity.Course, tuition *float64) error {
	return validation.Struct(&courseRules{
		Title:        c.Title,
		Description:  c.Description,
		Weeks:        c.Weeks,
		Tuition:      tuition,
		MinimumSkill: string(c.MinimumSkill),
		BootcampID:   c.BootcampID,
	})
}

func courseLookupError(err error, id string) error {
	if errors.Is(err, repository.ErrCourseNotFound) {
		return domainerrors.ErrCourseNotFound.WithMessagef("Course is not exist with id of %s", id)
	}

	return errors.Wrap(err, "failed to load course")
}
