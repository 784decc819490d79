package postgres

import (
	"context"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/domain/repository"
	"bootcamper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if !isUUID(id) {
		return nil, repository.ErrUserNotFound
	}

	return repo.first(ctx, "failed to find user by id", "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by email", "email = ?", email)
}

func (repo *userRepository) first(ctx context.Context, details, condition string, args ...any) (*entity.User, error) {
	var m model.UserModel
	if err := repo.db.WithContext(ctx).Where(condition, args...).First(&m).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, translateError(err, details)
	}

	return toUserDomain(&m), nil
}

// Create persists a new user and fills its generated ID and creation time.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := fromUserDomain(user)
	m.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, "failed to create user")
	}

	user.ID = m.ID
	user.CreatedAt = m.CreatedAt

	return nil
}
