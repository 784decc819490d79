// Package persistence selects the store backend named by storage.driver.
package persistence

import (
	"log/slog"

	"bootcamper/config"
	"bootcamper/internal/domain/repository"
	"bootcamper/internal/infra/persistence/mongodb"
	"bootcamper/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies for the store backend
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes the repositories of the selected backend to the graph.
type Repositories struct {
	fx.Out

	Bootcamps repository.BootcampRepository
	Courses   repository.CourseRepository
	Users     repository.UserRepository
	TxManager repository.TransactionManager
}

// New connects only the configured backend.
func New(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver
	params.Logger.Info("Opening store", slog.String("driver", driver))

	switch driver {
	case config.StorageMongo:
		db, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Bootcamps: mongodb.NewBootcampRepository(db),
			Courses:   mongodb.NewCourseRepository(db),
			Users:     mongodb.NewUserRepository(db),
			TxManager: mongodb.NewTransactionManager(db),
		}, nil
	case config.StoragePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Bootcamps: postgres.NewBootcampRepository(db),
			Courses:   postgres.NewCourseRepository(db),
			Users:     postgres.NewUserRepository(db),
			TxManager: postgres.NewTransactionManager(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
