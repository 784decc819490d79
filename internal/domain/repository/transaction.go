package repository

import "context"

// TransactionManager groups several repository calls into one logical operation.
// Stores without multi-document transactions run the callback sequentially.
type TransactionManager interface {
	// Execute runs fn with repositories bound to the same unit of work.
	// If fn returns an error, the unit of work is rolled back where the store supports it.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific unit of work.
type RepositoryFactory interface {
	// BootcampRepo returns a BootcampRepository bound to the current unit of work.
	BootcampRepo() BootcampRepository

	// CourseRepo returns a CourseRepository bound to the current unit of work.
	CourseRepo() CourseRepository
}
