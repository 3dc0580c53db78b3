package users

import "time"

// User is an immutable snapshot of an identity record. ID is zero until the
// repository assigns one on the first successful write; CreatedAt is set by
// the persistence layer and never changes afterwards.
//
// HashedPassword holds the opaque bcrypt digest, never a plaintext password.
type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	PhoneNumber    string
	IsActive       bool
	IsAdmin        bool
	CreatedAt      time.Time
}
