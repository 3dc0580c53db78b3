package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/miniblog/internal/common"
	"github.com/dmitrijs2005/miniblog/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, title, content, author_id, published, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, post *Post) (*Post, error) {

	query :=
		`INSERT INTO posts (title, content, author_id, published)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	created := *post
	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.AuthorID, post.Published).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	query := `SELECT ` + selectColumns + ` FROM posts WHERE id = $1`

	post := &Post{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.Published, &post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error) {
	query := `SELECT ` + selectColumns + ` FROM posts WHERE author_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanAll(rows)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Post, error) {
	query := `SELECT ` + selectColumns + ` FROM posts ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanAll(rows)
}

func (r *PostgresRepository) Update(ctx context.Context, post *Post) (*Post, error) {

	query :=
		`UPDATE posts
		 SET title = $2, content = $3, published = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at
		 `

	updated := *post
	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, post.Published).
		Scan(&updated.CreatedAt, &updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {

	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) (int64, error) {

	res, err := r.db.ExecContext(ctx, `DELETE FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

func scanAll(rows *sql.Rows) ([]*Post, error) {
	var result []*Post
	for rows.Next() {
		post := &Post{}
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.Published, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
