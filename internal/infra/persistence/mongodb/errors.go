package mongodb

import (
	"context"

	domainerrors "bootcamper/internal/domain/errors"
	"bootcamper/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func translateError(err error, details string) error {
	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(repository.ErrDuplicateKey, details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func decodeAll[D any, E any](ctx context.Context, cursor *mongo.Cursor, toEntity func(*D) *E) ([]*E, error) {
	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*E, 0, len(docs))
	for i := range docs {
		out = append(out, toEntity(&docs[i]))
	}

	return out, nil
}
