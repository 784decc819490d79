package postgres

import (
	domainerrors "bootcamper/internal/domain/errors"
	"bootcamper/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateError maps driver errors onto repository errors. The dialector
// runs with TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
func translateError(err error, details string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Wrap(repository.ErrDuplicateKey, details)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Wrap(repository.ErrBootcampNotFound, details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
