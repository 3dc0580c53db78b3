package posts

import "time"

// Post is an immutable snapshot of a content record. ID is zero until the
// repository assigns one; CreatedAt and UpdatedAt are maintained by the
// persistence layer. AuthorID references a User by value; the foreign key is
// enforced by the database, not here.
type Post struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
