package ports

import (
	"context"

	"github.com/podserve/podcastify/internal/app/model"
)

// ForRendering serializes a resolved feed into RSS 2.0 with the iTunes
// namespace. Output must be deterministic: the same feed renders to
// byte-identical XML.
type ForRendering interface {
	Render(ctx context.Context, feed *model.Feed) ([]byte, error)
}
