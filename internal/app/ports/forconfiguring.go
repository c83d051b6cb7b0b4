package ports

import (
	"context"

	"github.com/podserve/podcastify/internal/app/model"
)

// ForConfiguring discovers show configuration documents and loads them
// into validated models. ctx should/could hold an slog.Logger set with
// logger.WithLogger or logger.WithDefaultLogger.
type ForConfiguring interface {
	// Discover returns every show configuration found under the
	// configured root, sorted by filename. A missing root yields an
	// empty slice, not an error.
	Discover(ctx context.Context) ([]model.ConfigRef, error)
	// Load parses and validates one show document. Errors carry show
	// and field context.
	Load(ctx context.Context, ref model.ConfigRef) (*model.Show, error)
}
