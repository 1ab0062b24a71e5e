// Package storage abstracts the S3-compatible object store that holds
// rendered receipt PDFs. Implementations stream bodies and never touch local
// disk.
package storage

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"
)

// ErrObjectNotFound is returned when a key does not exist in the bucket.
var ErrObjectNotFound = errors.New("object not found")

// PutObjectOptions describe an upload. Size is the exact byte count, or -1
// when unknown.
type PutObjectOptions struct {
	Size               int64
	ContentType        string
	ContentDisposition string
	Metadata           map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object store used by the receipt service.
type Storage interface {
	// Put uploads r under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get streams an object together with its info. Callers close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a credential-free download URL valid for expiry.
	// A non-empty filename is forced as the attachment name.
	PresignGet(ctx context.Context, key string, expiry time.Duration, filename string) (string, error)
	// Ping reports whether the bucket is reachable.
	Ping(ctx context.Context) error
}

// AttachmentDisposition builds a Content-Disposition value that makes
// browsers save the body as filename.
func AttachmentDisposition(filename string) string {
	return "attachment; filename=" + strconv.Quote(filename)
}
