// AngelaMos | 2026
// repository.go

package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gardenly/go-backend/internal/core"
)

const (
	usernameConstraint = "users_pkey"
	emailConstraint    = "users_email_key"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	EmailTakenByOther(
		ctx context.Context,
		email, username string,
	) (bool, error)
	UpdateProfile(
		ctx context.Context,
		username, firstName, lastName, email string,
	) error
	Delete(ctx context.Context, username string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create inserts the row and lets the store's uniqueness constraints act as
// the authoritative guard: a violation surfaces as ErrUsernameTaken or
// ErrEmailTaken, never as a racy pre-check.
func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Email,
	)
	if err != nil {
		if conflictErr := duplicateKeyError(err); conflictErr != nil {
			return fmt.Errorf("create user: %w", conflictErr)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	query := `
		SELECT username, password_hash, first_name, last_name, email,
		       created_at, updated_at
		FROM users
		WHERE username = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) EmailTakenByOther(
	ctx context.Context,
	email, username string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND username != $2)`

	var taken bool
	if err := r.db.GetContext(ctx, &taken, query, email, username); err != nil {
		return false, fmt.Errorf("check email owner: %w", err)
	}

	return taken, nil
}

func (r *repository) UpdateProfile(
	ctx context.Context,
	username, firstName, lastName, email string,
) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, updated_at = NOW()
		WHERE username = $1`

	result, err := r.db.ExecContext(
		ctx,
		query,
		username,
		firstName,
		lastName,
		email,
	)
	if err != nil {
		if conflictErr := duplicateKeyError(err); conflictErr != nil {
			return fmt.Errorf("update profile: %w", conflictErr)
		}
		return fmt.Errorf("update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update profile: %w", core.ErrNotFound)
	}

	return nil
}

// Delete removes the row physically; there is no soft delete.
func (r *repository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = $1`

	result, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}

	return nil
}

func duplicateKeyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	switch pgErr.ConstraintName {
	case usernameConstraint:
		return ErrUsernameTaken
	case emailConstraint:
		return ErrEmailTaken
	default:
		return core.ErrDuplicateKey
	}
}
