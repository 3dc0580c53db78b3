// Package db assembles the concrete PostgreSQL repositories behind a single
// manager. Services receive only the repository interfaces; this package is
// the one place that knows the storage engine.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/miniblog/internal/server/images"
	"github.com/dmitrijs2005/miniblog/internal/server/posts"
	"github.com/dmitrijs2005/miniblog/internal/server/users"
)

// RepositoryManager hands out repository implementations bound to one
// database connection.
type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Posts() posts.Repository
	Images() images.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
