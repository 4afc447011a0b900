// Package auth implements the login gate: bcrypt credential checks, HS256 tokens and
// a per-client login attempt limiter.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/repository"
)

// DefaultTTL is the token lifetime when none is configured
const DefaultTTL = 8 * time.Hour

// UserStore is the account storage used by the gate
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (repository.User, error)
	Upsert(ctx context.Context, u *repository.User) error
}

// UserInfo is the public part of an account returned on login
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Claims are the token claims, user fields sit next to the registered ones
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Service issues and verifies tokens for stored users
type Service struct {
	users     UserStore
	secret    []byte
	ttl       time.Duration
	now       func() time.Time
	dummyHash []byte
}

// NewService creates the gate. The secret is required, a zero ttl means DefaultTTL.
func NewService(users UserStore, secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	// compared against for unknown emails
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &Service{users: users, secret: []byte(secret), ttl: ttl, now: time.Now, dummyHash: dummy}, nil
}

// Login checks the credentials and returns a signed token with the user info.
// Unknown email and wrong password both give ErrUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (string, UserInfo, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return "", UserInfo{}, fmt.Errorf("load user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return "", UserInfo{}, fmt.Errorf("%w: email or password invalid", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		log.Printf("[DEBUG] failed login for user %d", u.ID)
		return "", UserInfo{}, fmt.Errorf("%w: email or password invalid", domain.ErrUnauthorized)
	}

	info := UserInfo{ID: u.ID, Email: u.Email, Name: u.Name}
	token, err := s.Issue(info)
	if err != nil {
		return "", UserInfo{}, err
	}
	log.Printf("[INFO] user %d logged in", u.ID)
	return token, info, nil
}

// Issue signs a token for the user
func (s *Service) Issue(u UserInfo) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify parses a token, only HS256 signatures made with the service secret are accepted
func (s *Service) Verify(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: token not provided", domain.ErrUnauthorized)
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token: %w", domain.ErrUnauthorized, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	return claims, nil
}

// AddUser creates or resets an account with a bcrypt hash of password
func (s *Service) AddUser(ctx context.Context, email, name, password string) (UserInfo, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return UserInfo{}, fmt.Errorf("%w: email and password are required", domain.ErrInvalidArgument)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return UserInfo{}, err
	}
	u := repository.User{Email: email, Name: strings.TrimSpace(name), PasswordHash: hash}
	if err := s.users.Upsert(ctx, &u); err != nil {
		return UserInfo{}, err
	}
	return UserInfo{ID: u.ID, Email: u.Email, Name: u.Name}, nil
}

// HashPassword returns the bcrypt hash of password at the default cost
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
