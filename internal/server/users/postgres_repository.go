package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// conflict, raised when two registrations race on the same username.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userName string) (bool, error) {

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, userName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}

	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	query :=
		`INSERT INTO users (id, username, password_hash, password_salt, created_at)
         VALUES ($1, $2, $3, $4, $5)
		 `

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.UserName, user.PasswordHash, user.PasswordSalt, user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorUsernameTaken
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, userName string) (*User, error) {

	query :=
		`SELECT id, username, password_hash, password_salt, created_at FROM users
		 WHERE username = $1
		 `

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, userName).Scan(
		&user.ID, &user.UserName, &user.PasswordHash, &user.PasswordSalt, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}

	return user, nil
}
