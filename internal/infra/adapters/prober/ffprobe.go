// prober contains the duration probing adapters implementing the
// ports.ForProbing interface: an ffprobe subprocess probe, pure-Go
// mp3/mp4 readers and a chain combining them.
package prober

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/podserve/podcastify/internal/app/ports"
)

// DefaultTimeout bounds one ffprobe invocation. A hung probe must not
// stall the rest of the run.
const DefaultTimeout = 30 * time.Second

type ffprobe struct {
	binary  string
	timeout time.Duration
}

// NewFFprobe returns a probe invoking the ffprobe binary as a
// subprocess. An empty binary defaults to "ffprobe" resolved via PATH,
// a non-positive timeout defaults to DefaultTimeout.
func NewFFprobe(binary string, timeout time.Duration) ports.ForProbing {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ffprobe{binary: binary, timeout: timeout}
}

func (p *ffprobe) Duration(ctx context.Context, path string) (time.Duration, error) {
	if _, err := exec.LookPath(p.binary); err != nil {
		return 0, fmt.Errorf("probe tool unavailable: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=nw=1:nk=1",
		"--", path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", p.binary, path, err)
	}
	return ParseFFprobeOutput(out)
}

// ParseFFprobeOutput converts the single-value ffprobe duration output
// into a time.Duration. Exported for testing without a real ffprobe
// binary.
func ParseFFprobeOutput(out []byte) (time.Duration, error) {
	s := strings.TrimSpace(string(out))
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable ffprobe duration %q: %w", s, err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative ffprobe duration %q", s)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
