package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/smimonitor/noticias/pkg/domain"
)

// User is an account of the auth service
type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"nome"`
	PasswordHash string    `db:"senha_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserRepository handles auth service accounts
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *sqlx.DB) *UserRepository {
	return &UserRepository{db: database}
}

// GetByEmail retrieves a user, emails are compared lower-cased
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, "SELECT id, email, nome, senha_hash, created_at FROM usuarios WHERE email = ?",
		normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return User{}, fmt.Errorf("get user %q: %w", email, err)
	}
	return u, nil
}

// Upsert creates the user or replaces name and password hash of an existing one
func (r *UserRepository) Upsert(ctx context.Context, u *User) error {
	u.Email = normalizeEmail(u.Email)
	query := `
		INSERT INTO usuarios (email, nome, senha_hash) VALUES (:email, :nome, :senha_hash)
		ON CONFLICT(email) DO UPDATE SET nome = excluded.nome, senha_hash = excluded.senha_hash
	`
	if _, err := r.db.NamedExecContext(ctx, query, u); err != nil {
		return fmt.Errorf("upsert user %q: %w", u.Email, err)
	}
	if err := r.db.GetContext(ctx, &u.ID, "SELECT id FROM usuarios WHERE email = ?", u.Email); err != nil {
		return fmt.Errorf("get user id %q: %w", u.Email, err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
