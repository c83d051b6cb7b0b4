package prober

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alfg/mp4"
	"github.com/podserve/podcastify/internal/app/ports"
	"github.com/sa6mwa/mp3duration"
)

type native struct{}

// NewNative returns a probe decoding durations in-process: mp3 frames
// via mp3duration, mp4 containers (m4a, m4b, mp4) via their moov/mvhd
// box. No external tool required.
func NewNative() ports.ForProbing {
	return native{}
}

func (native) Duration(ctx context.Context, path string) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		di, err := mp3duration.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("mp3 duration of %q: %w", path, err)
		}
		return di.TimeDuration, nil
	case ".m4a", ".m4b", ".mp4":
		return mp4Duration(path)
	default:
		return 0, fmt.Errorf("%w: no native reader for %q", ports.ErrNoDuration, filepath.Ext(path))
	}
}

func mp4Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	m, err := mp4.OpenFromReader(f, info.Size())
	if err != nil {
		return 0, err
	}
	if m == nil || m.Moov == nil || m.Moov.Mvhd == nil {
		return 0, fmt.Errorf("%s does not contain a Moov Mvhd box (maybe not an mp4?)", path)
	}
	// The mvhd duration is expressed in movie-timescale units, not
	// milliseconds. Timescales of 600 and 44100 are common.
	mvhd := m.Moov.Mvhd
	if mvhd.Timescale == 0 {
		return 0, fmt.Errorf("%s has a zero mvhd timescale", path)
	}
	return time.Duration(mvhd.Duration) * time.Second / time.Duration(mvhd.Timescale), nil
}
