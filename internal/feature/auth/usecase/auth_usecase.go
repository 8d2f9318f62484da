package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"vuttr_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum password length.
	minPasswordLength = 4

	// bcryptCost is the work factor used for password hashing.
	bcryptCost = 12
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when a
	// user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// ListAll retrieves every registered user.
	ListAll(ctx context.Context) ([]entity.User, error)
}

// TokenIssuer mints the signed credential assertion returned on signup and
// login. Defined here so the usecase does not depend on the token package.
type TokenIssuer interface {
	// Issue creates a signed token asserting the given user identity.
	Issue(userID, email string) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	issuer TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, issuer TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		issuer: issuer,
	}
}

// normalizeEmail lowercases and trims the email so that uniqueness and
// lookups are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new user with a hashed password and returns the
// created user together with a freshly issued credential token.
func (u *authUsecase) Signup(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	if len(password) < minPasswordLength {
		return nil, "", ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     name,
		Email:    normalizeEmail(email),
		Password: string(hashed),
		ToolIDs:  []string{},
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns the user together with a signed
// credential token. A bcrypt comparison runs even when the user does not
// exist, so the response time does not reveal which part failed.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path when the
	// user is missing (timing-attack mitigation).
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// ListUsers returns every registered user. Password hashes stay on the
// entity; the transport layer is responsible for not serializing them.
func (u *authUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.ListAll(ctx)
}
