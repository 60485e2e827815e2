// Package metadata implements the local key/value store the session is
// persisted to. Values are opaque byte slices; a missing key reads back as
// (nil, nil) so callers can distinguish "absent" from a storage failure.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
