package uploader

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/podserve/podcastify/internal/app/ports"
)

func TestUploadRequestGuards(t *testing.T) {
	u := New("", "", "test-bucket")
	ctx := context.Background()

	if err := u.Upload(ctx, nil); !errors.Is(err, ports.ErrNilPointerRequest) {
		t.Errorf("nil request: err = %v, want ErrNilPointerRequest", err)
	}
	if err := u.Upload(ctx, &ports.ForUploadingRequest{Key: "feed.xml"}); !errors.Is(err, ports.ErrFilenameMissing) {
		t.Errorf("empty From: err = %v, want ErrFilenameMissing", err)
	}
	if err := u.Upload(ctx, &ports.ForUploadingRequest{
		From: filepath.Join(t.TempDir(), "does-not-exist.xml"),
	}); err == nil {
		t.Error("missing source file: expected error")
	}
}
