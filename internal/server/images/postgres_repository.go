package images

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

func (r *PostgresRepository) Create(ctx context.Context, image *Image) (*Image, error) {

	query :=
		`INSERT INTO images (filename, storage_key, content_type, file_size, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, uploaded_at
		 `

	created := *image
	err := r.db.QueryRowContext(ctx, query,
		image.Filename, image.StorageKey, image.ContentType, image.FileSize, image.UserID).
		Scan(&created.ID, &created.UploadedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Image, error) {
	query :=
		`SELECT id, filename, storage_key, content_type, file_size, user_id, uploaded_at
		 FROM images
		 WHERE id = $1
		 `

	image := &Image{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&image.ID, &image.Filename, &image.StorageKey, &image.ContentType, &image.FileSize, &image.UserID, &image.UploadedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return image, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*Image, error) {
	query :=
		`SELECT id, filename, storage_key, content_type, file_size, user_id, uploaded_at
		 FROM images
		 WHERE user_id = $1
		 ORDER BY uploaded_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Image
	for rows.Next() {
		image := &Image{}
		err := rows.Scan(&image.ID, &image.Filename, &image.StorageKey, &image.ContentType, &image.FileSize, &image.UserID, &image.UploadedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {

	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}
