package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"carehub/internal/domain"
)

type mockHasher struct{}

func (m *mockHasher) GenerateSalt() (string, error) { return "salt", nil }

func (m *mockHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (m *mockHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return errors.New("mismatch")
	}
	return nil
}

type mockIssuer struct{}

func (m *mockIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	return "token-for-" + userID, nil
}

func newAuthFixture(t *testing.T, users *mockUserRepo) domain.AuthService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuthService(users, &mockHasher{}, &mockIssuer{}, time.Hour, nil, logger)
}

func TestAuthService_SignUpRejectsInvalidInput(t *testing.T) {
	svc := newAuthFixture(t, &mockUserRepo{})
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"malformed email", "not-an-email", "longenough"},
		{"double at", "jane@@example.com", "longenough"},
		{"short password", "jane@example.com", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.email, tt.password, "Jane", "Doe")
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	users := &mockUserRepo{byEmail: map[string]*domain.User{
		"jane@example.com": {
			ID:           "u2",
			Email:        "jane@example.com",
			PasswordHash: "salt:longenough",
			PasswordSalt: "salt",
		},
	}}
	svc := newAuthFixture(t, users)
	ctx := context.Background()

	token, user, err := svc.Login(ctx, "Jane@Example.com", "longenough")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token != "token-for-u2" || user.ID != "u2" {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, user)
	}

	if _, _, err := svc.Login(ctx, "jane@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "longenough"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}
