package mongodb

import (
	"context"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type courseRepository struct {
	coll *mongo.Collection
}

// NewCourseRepository returns the course store backed by the courses collection.
func NewCourseRepository(db *mongo.Database) repository.CourseRepository {
	return &courseRepository{coll: db.Collection(courseCollection)}
}

func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	doc := fromCourseEntity(course)
	doc.ID = bson.NewObjectID()
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return translateError(err, "failed to create course")
	}

	course.ID = doc.ID.Hex()
	course.CreatedAt = doc.CreatedAt
	course.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *courseRepository) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.ErrCourseNotFound
	}

	var doc courseDocument
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, translateError(err, "failed to find course by id")
	}

	return doc.toEntity(), nil
}

func (repo *courseRepository) Find(ctx context.Context, q *query.Query) ([]*entity.Course, error) {
	filter, ok := buildFilter(q.Conditions)
	if !ok {
		return []*entity.Course{}, nil
	}

	cursor, err := repo.coll.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, translateError(err, "failed to list courses")
	}

	return repo.decode(ctx, cursor)
}

func (repo *courseRepository) Count(ctx context.Context, conditions []query.Condition) (int64, error) {
	filter, ok := buildFilter(conditions)
	if !ok {
		return 0, nil
	}

	total, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, translateError(err, "failed to count courses")
	}

	return total, nil
}

func (repo *courseRepository) FindByBootcampIDs(ctx context.Context, bootcampIDs []string) ([]*entity.Course, error) {
	filter, ok := buildFilter([]query.Condition{{Field: query.CourseBootcamp, Op: query.OpIn, Value: toAnySlice(bootcampIDs)}})
	if !ok {
		return nil, nil
	}

	opts := options.Find().SetSort(buildSort([]query.SortField{{Field: query.FieldCreatedAt}}))
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translateError(err, "failed to list courses by bootcamp")
	}

	return repo.decode(ctx, cursor)
}

func (repo *courseRepository) decode(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Course, error) {
	courses, err := decodeAll(ctx, cursor, (*courseDocument).toEntity)
	if err != nil {
		return nil, translateError(err, "failed to decode courses")
	}

	return courses, nil
}

func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	oid, ok := objectID(course.ID)
	if !ok {
		return repository.ErrCourseNotFound
	}

	doc := fromCourseEntity(course)
	doc.UpdatedAt = now()

	result, err := repo.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, doc)
	if err != nil {
		return translateError(err, "failed to update course")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCourseNotFound
	}

	course.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *courseRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.ErrCourseNotFound
	}

	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return translateError(err, "failed to delete course")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

func (repo *courseRepository) DeleteByBootcamp(ctx context.Context, bootcampID string) (int64, error) {
	oid, ok := objectID(bootcampID)
	if !ok {
		return 0, nil
	}

	result, err := repo.coll.DeleteMany(ctx, bson.D{{Key: "bootcamp", Value: oid}})
	if err != nil {
		return 0, translateError(err, "failed to delete bootcamp courses")
	}

	return result.DeletedCount, nil
}
