package users

import (
	"context"
)

// Repository abstracts persistence of users. Implementations return entity
// snapshots and never leak storage-specific types.
//
// Lookups report a miss with common.ErrNotFound; callers treat it as the
// absent value, not as a failure. Create and Update surface
// common.ErrConflict when a uniqueness invariant (email, username) would be
// violated.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
