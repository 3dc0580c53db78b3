package posts

import (
	"context"
)

// Repository abstracts persistence of posts. Lookup misses are reported
// with common.ErrNotFound; implementations return snapshots only.
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error)
	ListAll(ctx context.Context) ([]*Post, error)
	Update(ctx context.Context, post *Post) (*Post, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}
