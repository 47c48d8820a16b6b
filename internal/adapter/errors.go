package adapter

import "errors"

var (
	// ErrEmptyBlob is returned when an upload is attempted with no payload.
	ErrEmptyBlob = errors.New("empty blob payload")

	// ErrNotManagedURL is returned when a delete is requested for a URL that
	// does not point into this store's public base.
	ErrNotManagedURL = errors.New("url is not managed by this blob store")
)
