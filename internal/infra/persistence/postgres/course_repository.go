package postgres

import (
	"context"
	"time"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/domain/repository"
	"bootcamper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository returns the course store backed by the courses table.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	if !isUUID(course.BootcampID) {
		return repository.ErrBootcampNotFound
	}

	m := fromCourseDomain(course)
	m.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, "failed to create course")
	}

	course.ID = m.ID
	course.CreatedAt = m.CreatedAt
	course.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *courseRepository) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	if !isUUID(id) {
		return nil, repository.ErrCourseNotFound
	}

	var m model.CourseModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, translateError(err, "failed to find course by id")
	}

	return toCourseDomain(&m), nil
}

func (repo *courseRepository) Find(ctx context.Context, q *query.Query) ([]*entity.Course, error) {
	scoped, ok := courseColumns.apply(repo.db.WithContext(ctx).Model(&model.CourseModel{}), q)
	if !ok {
		return []*entity.Course{}, nil
	}

	var models []*model.CourseModel
	if err := scoped.Find(&models).Error; err != nil {
		return nil, translateError(err, "failed to list courses")
	}

	return toCourseDomains(models), nil
}

func (repo *courseRepository) Count(ctx context.Context, conditions []query.Condition) (int64, error) {
	exprs, ok := courseColumns.where(conditions)
	if !ok {
		return 0, nil
	}

	db := repo.db.WithContext(ctx).Model(&model.CourseModel{})
	if len(exprs) > 0 {
		db = db.Clauses(clause.Where{Exprs: exprs})
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, translateError(err, "failed to count courses")
	}

	return total, nil
}

func (repo *courseRepository) FindByBootcampIDs(ctx context.Context, bootcampIDs []string) ([]*entity.Course, error) {
	valid, ok := validIDs(toAnySlice(bootcampIDs))
	if !ok {
		return nil, nil
	}

	var models []*model.CourseModel
	err := repo.db.WithContext(ctx).
		Where("bootcamp_id IN ?", valid).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, translateError(err, "failed to list courses by bootcamp")
	}

	return toCourseDomains(models), nil
}

func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	if !isUUID(course.ID) {
		return repository.ErrCourseNotFound
	}

	m := fromCourseDomain(course)
	m.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).Model(&model.CourseModel{ID: m.ID}).
		Select("*").Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error, "failed to update course")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	course.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *courseRepository) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return repository.ErrCourseNotFound
	}

	result := repo.db.WithContext(ctx).Delete(&model.CourseModel{ID: id})
	if result.Error != nil {
		return translateError(result.Error, "failed to delete course")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

func (repo *courseRepository) DeleteByBootcamp(ctx context.Context, bootcampID string) (int64, error) {
	if !isUUID(bootcampID) {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Where("bootcamp_id = ?", bootcampID).Delete(&model.CourseModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, "failed to delete bootcamp courses")
	}

	return result.RowsAffected, nil
}
