package images

import (
	"context"
)

// Repository abstracts persistence of image metadata. Lookup misses are
// reported with common.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, image *Image) (*Image, error)
	GetByID(ctx context.Context, id int64) (*Image, error)
	ListByUser(ctx context.Context, userID int64) ([]*Image, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
