package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Blob is a media payload handed to the blob store: raw bytes plus the
// content type reported by the uploader.
type Blob struct {
	Data        []byte
	ContentType string
}

// BlobStore abstracts the object storage used for user media (avatars,
// covers). Implementations return a stable public URL for every stored
// object; Delete accepts the same URL back.
type BlobStore interface {
	// Upload stores the blob under a freshly generated key and returns its
	// public URL.
	Upload(ctx context.Context, blob Blob) (string, error)

	// Delete removes the object a previous Upload returned url for.
	// Deleting an unknown URL returns ErrNotManagedURL.
	Delete(ctx context.Context, url string) error
}
