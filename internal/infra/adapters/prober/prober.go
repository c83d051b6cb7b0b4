package prober

import (
	"context"
	"errors"
	"time"

	"github.com/podserve/podcastify/internal/app/ports"
	"github.com/podserve/podcastify/internal/infra/adapters/logger"
)

type chain struct {
	probes []ports.ForProbing
}

// NewChain returns a probe trying each given probe in order, returning
// the first successful duration. Failures roll up into the final error
// when every probe declines.
func NewChain(probes ...ports.ForProbing) ports.ForProbing {
	return &chain{probes: probes}
}

func (c *chain) Duration(ctx context.Context, path string) (time.Duration, error) {
	l := logger.FromContext(ctx)
	var errs []error
	for _, p := range c.probes {
		d, err := p.Duration(ctx, path)
		if err == nil {
			return d, nil
		}
		l.Debug("Duration probe failed, trying next", "file", path, "error", err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return 0, ports.ErrNoDuration
	}
	return 0, errors.Join(errs...)
}

type noop struct{}

// NewNoop returns a probe that never resolves a duration. Used when
// probing is disabled and as a test double.
func NewNoop() ports.ForProbing {
	return noop{}
}

func (noop) Duration(ctx context.Context, path string) (time.Duration, error) {
	return 0, ports.ErrNoDuration
}
