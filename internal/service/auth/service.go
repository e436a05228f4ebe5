package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	adminrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/admin"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so
// login responses don't leak which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo     repo
	secret   []byte
	tokenTTL time.Duration
}

type repo interface {
	GetByEmail(ctx context.Context, email string) (*adminrepo.User, error)
}

func New(r repo, secret string, tokenTTL time.Duration) *Service {
	return &Service{repo: r, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Login verifies an admin's credentials and issues a signed bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a bearer token and returns the admin user ID it carries.
func (s *Service) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidCredentials
	}
	return sub, nil
}

// TokenTTLSeconds reports the issued token lifetime for login responses.
func (s *Service) TokenTTLSeconds() int {
	return int(s.tokenTTL.Seconds())
}

// HashPassword is used by seeding/admin tooling to store credentials.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
