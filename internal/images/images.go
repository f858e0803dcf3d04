// Package images hosts product pictures. The storefront only depends on the
// narrow Store interface; the backing service (S3-compatible object storage)
// is a collaborator, not part of the core.
package images

import (
	"context"
	"io"
)

type Store interface {
	Upload(ctx context.Context, contentType string, body io.Reader) (url string, err error)
}
