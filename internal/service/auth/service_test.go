package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	adminrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/admin"
)

type stubRepo struct {
	user *adminrepo.User
	err  error
}

func (s *stubRepo) GetByEmail(_ context.Context, _ string) (*adminrepo.User, error) {
	return s.user, s.err
}

func TestLoginAndVerify(t *testing.T) {
	hash, err := HashPassword("sup3rsecret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubRepo{user: &adminrepo.User{ID: "a1", Email: "admin@jove.test", PasswordHash: hash}}
	svc := New(repo, "test-secret", time.Hour)

	token, err := svc.Login(context.Background(), "admin@jove.test", "sup3rsecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	adminID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if adminID != "a1" {
		t.Fatalf("expected admin a1, got %q", adminID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := HashPassword("right")
	repo := &stubRepo{user: &adminrepo.User{ID: "a1", PasswordHash: hash}}
	svc := New(repo, "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), "admin@jove.test", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := New(&stubRepo{err: domain.ErrNotFound}, "test-secret", time.Hour)
	_, err := svc.Login(context.Background(), "ghost@jove.test", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	hash, _ := HashPassword("pw")
	repo := &stubRepo{user: &adminrepo.User{ID: "a1", PasswordHash: hash}}
	svc := New(repo, "test-secret", -time.Minute)

	token, err := svc.Login(context.Background(), "admin@jove.test", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for expired token, got %v", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	hash, _ := HashPassword("pw")
	repo := &stubRepo{user: &adminrepo.User{ID: "a1", PasswordHash: hash}}
	issuer := New(repo, "secret-a", time.Hour)
	verifier := New(repo, "secret-b", time.Hour)

	token, err := issuer.Login(context.Background(), "admin@jove.test", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for foreign signature, got %v", err)
	}
}
