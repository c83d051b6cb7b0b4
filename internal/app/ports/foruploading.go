package ports

import (
	"context"
	"errors"
)

var (
	ErrNilPointerRequest error = errors.New("received nil pointer as request")
	ErrFilenameMissing   error = errors.New("empty or missing filename given")
)

// ForUploadingRequest describes one object to publish to remote
// storage.
type ForUploadingRequest struct {
	// Key or name of the target object. If empty, defaults to the
	// basename of From.
	Key string
	// From is the local path to upload from.
	From string
	// ContentType of the object. If empty the adapter should detect it
	// from the file content.
	ContentType string
}

// ForUploading publishes generated feeds and their media to a remote
// store (the default adapter targets Amazon S3).
type ForUploading interface {
	Upload(ctx context.Context, request *ForUploadingRequest) error
}
