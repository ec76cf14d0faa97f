package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/loanlink-service/internal/auth"
	"github.com/spec-kit/loanlink-service/internal/domain"
	"github.com/spec-kit/loanlink-service/internal/repository"
	apperrors "github.com/spec-kit/loanlink-service/pkg/util"
)

// UserService coordinates registration, login, and admin account management.
type UserService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, tokens *auth.TokenManager, bcryptCost int) *UserService {
	return &UserService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a new account. The email must be unused; the role
// defaults to borrower when not supplied.
func (s *UserService) Register(ctx context.Context, name, email, password, roleValue string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("User already exists", map[string]any{"email": email})
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.MapError(err)
	}

	role := domain.RoleBorrower
	if roleValue != "" {
		parsed, ok := domain.ParseRole(roleValue)
		if !ok {
			return nil, apperrors.NewInvalidInput("unknown role", map[string]any{"role": roleValue})
		}
		role = parsed
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Suspended:    false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflict("User already exists", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Login verifies credentials and issues a signed role-bearing token.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid email or password")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid email or password")
	}
	if user.Suspended {
		return nil, "", time.Time{}, apperrors.NewForbidden("account suspended")
	}

	token, exp, err := s.tokens.GenerateToken(user.Email, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// GetByEmail returns a single account.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("user", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateRole sets the role field on an account.
func (s *UserService) UpdateRole(ctx context.Context, idHex, roleValue string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperrors.NewInvalidInput("invalid user id", map[string]any{"id": idHex})
	}
	role, ok := domain.ParseRole(roleValue)
	if !ok {
		return apperrors.NewInvalidInput("unknown role", map[string]any{"role": roleValue})
	}

	matched, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return apperrors.MapError(err)
	}
	if matched == 0 {
		return apperrors.NewNotFound("user", map[string]any{"id": idHex})
	}
	return nil
}

// SetSuspension sets the suspended flag and reason. Repeating the same
// suspension is a no-op, not an error.
func (s *UserService) SetSuspension(ctx context.Context, idHex string, suspended bool, reason string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return apperrors.NewInvalidInput("invalid user id", map[string]any{"id": idHex})
	}

	matched, err := s.users.SetSuspension(ctx, id, suspended, reason)
	if err != nil {
		return apperrors.MapError(err)
	}
	if matched == 0 {
		return apperrors.NewNotFound("user", map[string]any{"id": idHex})
	}
	return nil
}
