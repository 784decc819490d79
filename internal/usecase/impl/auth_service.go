package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bootcamper/internal/delivery/context"
	"bootcamper/internal/domain/entity"
	domainerrors "bootcamper/internal/domain/errors"
	"bootcamper/internal/domain/repository"
	"bootcamper/internal/domain/service"
	"bootcamper/internal/domain/validation"
	"bootcamper/internal/usecase"
	"bootcamper/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is a valid bcrypt hash at the default cost that no login password matches.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

type registerRules struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role"`
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account with a hashed password and signs a token for it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	user := &entity.User{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		Role:     entity.RoleOrDefault(entity.Role(input.Role)),
	}

	if err := validation.Struct(&registerRules{
		Username: user.Username,
		Email:    user.Email,
		Password: input.Password,
		Role:     user.Role.String(),
	}); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.String("email", user.Email), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrDuplicateField
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID), slog.Any("role", user.Role))

	return srv.issue(ctx, user)
}

// Login checks the credentials without revealing which of them was wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))
		// Spend the same bcrypt work as a real mismatch so response time does not reveal the email.
		srv.hasher.Check(input.Password, dummyPasswordHash)

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(ctx, user)
}

func (srv *authService) issue(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to sign token", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed
	}

	srv.log(ctx).Debug("Token issued",
		slog.String("userID", user.ID),
		slog.String("expiresIn", util.FormatDuration(srv.tokenService.TokenDuration())),
	)

	// The hash never leaves the usecase layer.
	user.PasswordHash = ""

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// Me resolves the user a validated token was issued for.
func (srv *authService) Me(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WithMessagef("User is not exist with id of %s", userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
