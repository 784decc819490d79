package postgres

import (
	"context"
	"time"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/domain/repository"
	"bootcamper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bootcampRepository struct {
	db *gorm.DB
}

// NewBootcampRepository returns the bootcamp store backed by the bootcamps table.
func NewBootcampRepository(db *gorm.DB) repository.BootcampRepository {
	return &bootcampRepository{db: db}
}

func (repo *bootcampRepository) Create(ctx context.Context, bootcamp *entity.Bootcamp) error {
	m := fromBootcampDomain(bootcamp)
	m.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, "failed to create bootcamp")
	}

	bootcamp.ID = m.ID
	bootcamp.CreatedAt = m.CreatedAt
	bootcamp.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *bootcampRepository) FindByID(ctx context.Context, id string) (*entity.Bootcamp, error) {
	if !isUUID(id) {
		return nil, repository.ErrBootcampNotFound
	}

	var m model.BootcampModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBootcampNotFound
		}

		return nil, translateError(err, "failed to find bootcamp by id")
	}

	return toBootcampDomain(&m), nil
}

func (repo *bootcampRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Bootcamp, error) {
	valid, ok := validIDs(toAnySlice(ids))
	if !ok {
		return nil, nil
	}

	var models []*model.BootcampModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", valid).Find(&models).Error; err != nil {
		return nil, translateError(err, "failed to find bootcamps by ids")
	}

	return toBootcampDomains(models), nil
}

func (repo *bootcampRepository) Find(ctx context.Context, q *query.Query) ([]*entity.Bootcamp, error) {
	scoped, ok := bootcampColumns.apply(repo.db.WithContext(ctx).Model(&model.BootcampModel{}), q)
	if !ok {
		return []*entity.Bootcamp{}, nil
	}

	var models []*model.BootcampModel
	if err := scoped.Find(&models).Error; err != nil {
		return nil, translateError(err, "failed to list bootcamps")
	}

	return toBootcampDomains(models), nil
}

func (repo *bootcampRepository) Count(ctx context.Context, conditions []query.Condition) (int64, error) {
	exprs, ok := bootcampColumns.where(conditions)
	if !ok {
		return 0, nil
	}

	db := repo.db.WithContext(ctx).Model(&model.BootcampModel{})
	if len(exprs) > 0 {
		db = db.Clauses(clause.Where{Exprs: exprs})
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, translateError(err, "failed to count bootcamps")
	}

	return total, nil
}

// FindWithinRadius narrows candidates with a bounding box, then keeps the ones
// whose great-circle distance lies inside the radius.
func (repo *bootcampRepository) FindWithinRadius(ctx context.Context, center orb.Point, radius float64) ([]*entity.Bootcamp, error) {
	meters := radius * orb.EarthRadius
	bound := geo.NewBoundAroundPoint(center, meters)

	var models []*model.BootcampModel
	err := repo.db.WithContext(ctx).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Find(&models).Error
	if err != nil {
		return nil, translateError(err, "failed to find bootcamps within radius")
	}

	out := make([]*entity.Bootcamp, 0, len(models))
	for _, m := range models {
		b := toBootcampDomain(m)
		if b.Location != nil && geo.DistanceHaversine(center, b.Location.Coordinates) <= meters {
			out = append(out, b)
		}
	}

	return out, nil
}

func (repo *bootcampRepository) Update(ctx context.Context, bootcamp *entity.Bootcamp) error {
	if !isUUID(bootcamp.ID) {
		return repository.ErrBootcampNotFound
	}

	m := fromBootcampDomain(bootcamp)
	m.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).Model(&model.BootcampModel{ID: m.ID}).
		Select("*").Omit("id", "created_at", "Courses").
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error, "failed to update bootcamp")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBootcampNotFound
	}

	bootcamp.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *bootcampRepository) UpdatePhoto(ctx context.Context, id, photo string) error {
	if !isUUID(id) {
		return repository.ErrBootcampNotFound
	}

	result := repo.db.WithContext(ctx).Model(&model.BootcampModel{ID: id}).Update("photo", photo)
	if result.Error != nil {
		return translateError(result.Error, "failed to update bootcamp photo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBootcampNotFound
	}

	return nil
}

func (repo *bootcampRepository) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return repository.ErrBootcampNotFound
	}

	result := repo.db.WithContext(ctx).Delete(&model.BootcampModel{ID: id})
	if result.Error != nil {
		return translateError(result.Error, "failed to delete bootcamp")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBootcampNotFound
	}

	return nil
}

func toAnySlice(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}

	return out
}
