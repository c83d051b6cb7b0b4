package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/podserve/podcastify/internal/app/model"
	"github.com/podserve/podcastify/internal/infra/adapters/logger"
)

// Extensions picked up by auto-discovery.
var audioExtensions = map[string]bool{
	".mp3": true,
	".m4a": true,
	".m4b": true,
}

// Resolve produces the final ordered episode records for one show:
// the validated explicit list when the config declares episodes, an
// auto-discovery scan of the media directory otherwise. The two are
// never merged.
func (g *Generator) Resolve(ctx context.Context, show *model.Show, mediaDir string) ([]model.Item, error) {
	if len(show.Episodes) > 0 {
		return g.resolveDeclared(ctx, show, mediaDir)
	}
	return g.discover(ctx, show, mediaDir)
}

// resolveDeclared keeps config list order. A missing media directory
// fails the whole show rather than publishing an empty feed; a single
// declared file missing on disk skips that episode with a warning.
// Episodes are never invented.
func (g *Generator) resolveDeclared(ctx context.Context, show *model.Show, mediaDir string) ([]model.Item, error) {
	l := logger.FromContext(ctx)
	if _, err := os.Stat(mediaDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("media directory missing for show %s: %s (create it and place audio files there)", show.Name, mediaDir)
		}
		return nil, fmt.Errorf("unable to access media directory for show %s: %w", show.Name, err)
	}
	items := make([]model.Item, 0, len(show.Episodes))
	for i := range show.Episodes {
		ep := show.Episodes[i]
		base := mediaBasename(ep.File)
		if base == "" {
			l.Warn("Episode file resolves to no basename, skipping",
				"show", show.Name, "file", ep.File)
			continue
		}
		mediaPath := filepath.Join(mediaDir, base)
		fi, err := os.Stat(mediaPath)
		if err != nil {
			l.Warn("Declared episode file missing, skipping",
				"show", show.Name, "file", base, "error", err)
			continue
		}
		items = append(items, g.enrich(ctx, show, ep, base, mediaPath, fi))
	}
	return items, nil
}

// discover scans the media directory for audio files, ordered
// lexicographically by filename for deterministic output. An empty
// directory yields a valid zero-item feed; a missing directory fails
// the show.
func (g *Generator) discover(ctx context.Context, show *model.Show, mediaDir string) ([]model.Item, error) {
	entries, err := os.ReadDir(mediaDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("media directory missing for show %s: %s (create it and place audio files there)", show.Name, mediaDir)
		}
		return nil, fmt.Errorf("unable to scan media directory for show %s: %w", show.Name, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	items := make([]model.Item, 0, len(names))
	for _, name := range names {
		fi, err := os.Stat(filepath.Join(mediaDir, name))
		if err != nil {
			continue
		}
		ep := model.Episode{File: name}
		items = append(items, g.enrich(ctx, show, ep, name, filepath.Join(mediaDir, name), fi))
	}
	return items, nil
}

// mediaBasename strips any directory components from a declared file
// reference. Resolution is always relative to the show's media
// directory, which rules out traversal by construction.
func mediaBasename(file string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(file), "\\", "/")
	base := path.Base(cleaned)
	if base == "." || base == ".." || base == "/" {
		return ""
	}
	return base
}

// humanizeTitle turns a filename stem into a presentable default title.
func humanizeTitle(basename string) string {
	stem := strings.TrimSuffix(basename, filepath.Ext(basename))
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	if len(words) == 0 {
		return stem
	}
	return strings.Join(words, " ")
}

func escapePathSegment(s string) string {
	return url.PathEscape(s)
}
