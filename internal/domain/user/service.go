package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todopro-server/internal/utils/platformerrors"
)

const minPasswordLength = 6

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// RegisterParams contains the data needed to create an account.
type RegisterParams struct {
	Email    string
	Name     string
	Password string
}

// Service defines the interface for account business logic.
type Service interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByPublicID(ctx context.Context, publicID string) (*User, error)
}

// DefaultService implements the Service interface.
type DefaultService struct {
	repo   Repository
	tokens TokenIssuer
}

// NewService creates a new user service.
func NewService(repo Repository, tokens TokenIssuer) Service {
	return &DefaultService{repo: repo, tokens: tokens}
}

// Register creates a new account with a bcrypt hashed password.
func (s *DefaultService) Register(ctx context.Context, params RegisterParams) (*User, error) {
	email := strings.TrimSpace(params.Email)
	name := strings.TrimSpace(params.Name)

	if email == "" || name == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "email and name are required", nil,
			"c1a4f0d2-9b1e-4f07-8a63-2f5d1c8e0b11")
	}
	if len(params.Password) < minPasswordLength {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "password must be at least 6 characters", nil,
			"d2b5e1c3-0c2f-4a18-9b74-3a6e2d9f1c22")
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to check email")
	}
	if existing != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeConflict, "email already registered", nil,
			"e3c6f2d4-1d30-4b29-8c85-4b7f3e0a2d33")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeInternal, "failed to hash password", err,
			"f4d7e3c5-2e41-4c3a-9d96-5c8a4f1b3e44")
	}

	account := &User{
		PublicID:     uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create user")
	}
	return account, nil
}

// Login verifies credentials and returns a signed access token. Unknown
// email and wrong password produce the same error so callers cannot probe
// which accounts exist.
func (s *DefaultService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeUnauthorized, "Incorrect email or password", nil,
			"a5e8f4d6-3f52-4d4b-8ea7-6d9b5a2c4f55")
	}

	token, err := s.tokens.Issue(account.PublicID, account.Email)
	if err != nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeInternal, "failed to issue token", err,
			"b6f9a5e7-4a63-4e5c-9fb8-7e0c6b3d5a66")
	}
	return token, nil
}

// GetByPublicID fetches an account by its public identifier.
func (s *DefaultService) GetByPublicID(ctx context.Context, publicID string) (*User, error) {
	return s.repo.FindByPublicID(ctx, publicID)
}

func (s *DefaultService) authenticate(ctx context.Context, email, password string) (*User, error) {
	account, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return account, nil
}
