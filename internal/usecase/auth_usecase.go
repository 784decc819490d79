package usecase

import (
	"context"

	"bootcamper/internal/domain/entity"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput is a user together with a freshly issued token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines registration, login and caller lookup.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// Me returns the user identified by a validated token subject.
	Me(ctx context.Context, userID string) (*entity.User, error)
}
