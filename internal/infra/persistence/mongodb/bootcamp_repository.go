package mongodb

import (
	"context"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/query"
	"bootcamper/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type bootcampRepository struct {
	coll *mongo.Collection
}

// NewBootcampRepository returns the bootcamp store backed by the bootcamps collection.
func NewBootcampRepository(db *mongo.Database) repository.BootcampRepository {
	return &bootcampRepository{coll: db.Collection(bootcampCollection)}
}

func (repo *bootcampRepository) Create(ctx context.Context, bootcamp *entity.Bootcamp) error {
	doc := fromBootcampEntity(bootcamp)
	doc.ID = bson.NewObjectID()
	doc.CreatedAt = now()
	doc.UpdatedAt = doc.CreatedAt

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return translateError(err, "failed to create bootcamp")
	}

	bootcamp.ID = doc.ID.Hex()
	bootcamp.CreatedAt = doc.CreatedAt
	bootcamp.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *bootcampRepository) FindByID(ctx context.Context, id string) (*entity.Bootcamp, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.ErrBootcampNotFound
	}

	var doc bootcampDocument
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrBootcampNotFound
		}

		return nil, translateError(err, "failed to find bootcamp by id")
	}

	return doc.toEntity(), nil
}

func (repo *bootcampRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Bootcamp, error) {
	filter, ok := buildFilter([]query.Condition{{Field: query.IDField, Op: query.OpIn, Value: toAnySlice(ids)}})
	if !ok {
		return nil, nil
	}

	return repo.find(ctx, filter, nil)
}

func (repo *bootcampRepository) Find(ctx context.Context, q *query.Query) ([]*entity.Bootcamp, error) {
	filter, ok := buildFilter(q.Conditions)
	if !ok {
		return []*entity.Bootcamp{}, nil
	}

	return repo.find(ctx, filter, q)
}

func (repo *bootcampRepository) Count(ctx context.Context, conditions []query.Condition) (int64, error) {
	filter, ok := buildFilter(conditions)
	if !ok {
		return 0, nil
	}

	total, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, translateError(err, "failed to count bootcamps")
	}

	return total, nil
}

func (repo *bootcampRepository) FindWithinRadius(ctx context.Context, center orb.Point, radius float64) ([]*entity.Bootcamp, error) {
	return repo.find(ctx, withinRadius(center, radius), nil)
}

func (repo *bootcampRepository) find(ctx context.Context, filter bson.D, q *query.Query) ([]*entity.Bootcamp, error) {
	var cursor *mongo.Cursor
	var err error
	if q != nil {
		cursor, err = repo.coll.Find(ctx, filter, findOptions(q))
	} else {
		cursor, err = repo.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, translateError(err, "failed to list bootcamps")
	}

	bootcamps, err := decodeAll(ctx, cursor, (*bootcampDocument).toEntity)
	if err != nil {
		return nil, translateError(err, "failed to decode bootcamps")
	}

	return bootcamps, nil
}

func (repo *bootcampRepository) Update(ctx context.Context, bootcamp *entity.Bootcamp) error {
	oid, ok := objectID(bootcamp.ID)
	if !ok {
		return repository.ErrBootcampNotFound
	}

	doc := fromBootcampEntity(bootcamp)
	doc.UpdatedAt = now()

	result, err := repo.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, doc)
	if err != nil {
		return translateError(err, "failed to update bootcamp")
	}
	if result.MatchedCount == 0 {
		return repository.ErrBootcampNotFound
	}

	bootcamp.UpdatedAt = doc.UpdatedAt

	return nil
}

func (repo *bootcampRepository) UpdatePhoto(ctx context.Context, id, photo string) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.ErrBootcampNotFound
	}

	result, err := repo.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "photo", Value: photo},
			{Key: "updatedAt", Value: now()},
		}}},
	)
	if err != nil {
		return translateError(err, "failed to update bootcamp photo")
	}
	if result.MatchedCount == 0 {
		return repository.ErrBootcampNotFound
	}

	return nil
}

func (repo *bootcampRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.ErrBootcampNotFound
	}

	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return translateError(err, "failed to delete bootcamp")
	}
	if result.DeletedCount == 0 {
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
