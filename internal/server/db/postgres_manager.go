package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/miniblog/internal/server/images"
	"github.com/dmitrijs2005/miniblog/internal/server/migrations"
	"github.com/dmitrijs2005/miniblog/internal/server/posts"
	"github.com/dmitrijs2005/miniblog/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db     *sql.DB
	users  users.Repository
	posts  posts.Repository
	images images.Repository
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:     db,
		users:  users.NewPostgresRepository(db),
		posts:  posts.NewPostgresRepository(db),
		images: images.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Posts() posts.Repository {
	return m.posts
}

func (m *PostgresRepositoryManager) Images() images.Repository {
	return m.images
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
