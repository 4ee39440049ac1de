// Package db selects and wires the account storage backend.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authgate/internal/server/users"
)

// RepositoryManager owns the storage backend and hands out repositories.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
}
