package ports

import (
	"context"
	"errors"
	"time"
)

// ports.ErrNoDuration is returned by ForProbing adapters when the
// playing time of a media file can not be determined. Callers are
// expected to omit the duration and carry on.
var ErrNoDuration error = errors.New("duration unavailable")

// ForProbing resolves the playing time of a media file. Implementations
// must honor ctx cancellation and deadlines since probing may invoke an
// external tool.
type ForProbing interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
}
