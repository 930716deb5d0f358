package user_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"todopro-server/internal/domain/user"
	"todopro-server/internal/utils/platformerrors"
)

// MockRepository is a func-field mock of user.Repository.
type MockRepository struct {
	CreateFunc         func(ctx context.Context, u *user.User) error
	FindByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	FindByPublicIDFunc func(ctx context.Context, publicID string) (*user.User, error)
}

func (m *MockRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, notFoundErr(ctx)
}

func (m *MockRepository) FindByPublicID(ctx context.Context, publicID string) (*user.User, error) {
	if m.FindByPublicIDFunc != nil {
		return m.FindByPublicIDFunc(ctx, publicID)
	}
	return nil, notFoundErr(ctx)
}

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(userID, email string) (string, error) {
	return s.token, s.err
}

func notFoundErr(ctx context.Context) error {
	return platformerrors.NewError(ctx, platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound, "User not found", nil, "test-not-found")
}

func TestService_Register(t *testing.T) {
	repo := &MockRepository{}
	svc := user.NewService(repo, stubIssuer{token: "tok"})

	account, err := svc.Register(context.Background(), user.RegisterParams{
		Email:    "  alice@example.com ",
		Name:     "Alice",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if account.Email != "alice@example.com" {
		t.Errorf("Email = %q, want trimmed email", account.Email)
	}
	if account.PublicID == "" {
		t.Error("PublicID should be assigned")
	}
	if account.PasswordHash == "secret1" {
		t.Error("password must not be stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret1")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
}

func TestService_Register_Validation(t *testing.T) {
	svc := user.NewService(&MockRepository{}, stubIssuer{token: "tok"})

	tests := []struct {
		name   string
		params user.RegisterParams
	}{
		{"missing email", user.RegisterParams{Name: "Alice", Password: "secret1"}},
		{"missing name", user.RegisterParams{Email: "a@b.com", Password: "secret1"}},
		{"short password", user.RegisterParams{Email: "a@b.com", Name: "Alice", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.params)
			if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
				t.Errorf("Register() error = %v, want validation error", err)
			}
		})
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := &MockRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{Email: email}, nil
		},
	}
	svc := user.NewService(repo, stubIssuer{token: "tok"})

	_, err := svc.Register(context.Background(), user.RegisterParams{
		Email:    "a@b.com",
		Name:     "Alice",
		Password: "secret1",
	})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
		t.Errorf("Register() error = %v, want conflict error", err)
	}
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := &user.User{
		PublicID:     "user-123",
		Email:        "a@b.com",
		PasswordHash: string(hash),
	}
	repo := &MockRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, notFoundErr(ctx)
		},
	}
	svc := user.NewService(repo, stubIssuer{token: "signed-token"})

	token, err := svc.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token != "signed-token" {
		t.Errorf("Login() token = %q, want %q", token, "signed-token")
	}
}

func TestService_Login_UniformRejection(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := &user.User{
		PublicID:     "user-123",
		Email:        "a@b.com",
		PasswordHash: string(hash),
	}
	repo := &MockRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, notFoundErr(ctx)
		},
	}
	svc := user.NewService(repo, stubIssuer{token: "tok"})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@b.com", "secret1"},
		{"wrong password", "a@b.com", "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized) {
				t.Fatalf("Login() error = %v, want unauthorized error", err)
			}
			var platformErr *platformerrors.PlatformError
			if !errors.As(err, &platformErr) {
				t.Fatal("expected a platform error")
			}
			if platformErr.Message != "Incorrect email or password" {
				t.Errorf("Message = %q, want the uniform rejection", platformErr.Message)
			}
		})
	}
}
