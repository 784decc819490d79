package mongodb

import (
	"context"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository returns the user store backed by the users collection.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(userCollection)}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.D{{Key: "_id", Value: oid}}, "failed to find user by id")
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}}, "failed to find user by email")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D, details string) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, translateError(err, details)
	}

	return doc.toEntity(), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := fromUserEntity(user)
	doc.ID = bson.NewObjectID()
	doc.CreatedAt = now()

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return translateError(err, "failed to create user")
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt

	return nil
}
