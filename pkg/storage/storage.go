package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStore is the boundary to the managed blob store. Uploads and
// deletes are synchronous and bounded by the SDK's own timeout policy;
// there is no application-level retry.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, public bool) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
