package mongodb

import (
	"context"

	"bootcamper/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// sequentialTransactionManager runs the callback against the shared collections.
// Standalone servers have no multi-document transactions, so a failure part way
// through leaves earlier writes in place.
type sequentialTransactionManager struct {
	factory *repositoryFactory
}

type repositoryFactory struct {
	bootcamps repository.BootcampRepository
	courses   repository.CourseRepository
}

func (f *repositoryFactory) BootcampRepo() repository.BootcampRepository {
	return f.bootcamps
}

func (f *repositoryFactory) CourseRepo() repository.CourseRepository {
	return f.courses
}

// NewTransactionManager builds the transaction manager for the mongo store.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &sequentialTransactionManager{
		factory: &repositoryFactory{
			bootcamps: NewBootcampRepository(db),
			courses:   NewCourseRepository(db),
		},
	}
}

func (tm *sequentialTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(tm.factory)
}
