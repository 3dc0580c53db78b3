package images

import "time"

// Image is the metadata record for an uploaded file. The bytes themselves
// live in the object store under StorageKey; the database only tracks
// ownership and descriptive fields.
type Image struct {
	ID          int64
	Filename    string
	StorageKey  string
	ContentType string
	FileSize    int64
	UserID      int64
	UploadedAt  time.Time
}
