package generator

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/podserve/podcastify/internal/app/model"
	"github.com/podserve/podcastify/internal/infra/adapters/logger"
)

const defaultMIMEType = "audio/mpeg"

// SetLimit mutates mimetype's package-global read limit, so set it
// once instead of on every detection.
func init() {
	mimetype.SetLimit(1024 * 1024)
}

// enrich merges one declared (or discovered) episode entry with
// everything derived from its media file into a final record.
// Derivation failures degrade gracefully: a failed duration probe omits
// the element, a bad pub_date falls back to the file mtime.
func (g *Generator) enrich(ctx context.Context, show *model.Show, ep model.Episode, basename, mediaPath string, fi fs.FileInfo) model.Item {
	l := logger.FromContext(ctx)

	item := model.Item{
		Filename:     basename,
		Path:         mediaPath,
		Title:        ep.Title,
		Description:  ep.Description,
		Summary:      ep.Summary,
		Subtitle:     ep.Subtitle,
		Author:       ep.AuthorName,
		Explicit:     ep.Explicit.Or(show.Explicit.Bool()),
		Season:       ep.Season,
		Number:       ep.Number,
		Type:         ep.Type,
		EnclosureURL: joinURL(g.settings.BaseURL, show.Name, basename),
		Length:       fi.Size(),
	}
	if item.Title == "" {
		item.Title = humanizeTitle(basename)
	}
	if item.Summary == "" {
		item.Summary = item.Description
	}
	if item.Author == "" {
		item.Author = show.EffectiveAuthor()
	}

	item.GUID = ep.GUID
	if item.GUID == "" {
		item.GUID = DeriveGUID(show.Name, basename)
	}

	item.PubDate, item.PubDateFromFile = resolvePubDate(ctx, ep.PubDate, fi.ModTime(), basename)

	if ep.Duration.Duration > 0 {
		item.Duration = ep.Duration.Duration
		item.HasDuration = true
	} else if d, err := g.probe.Duration(ctx, mediaPath); err != nil {
		l.Warn("Could not determine duration, omitting",
			"show", show.Name, "file", basename, "error", err)
	} else {
		item.Duration = d
		item.HasDuration = true
	}

	item.MIMEType = detectMIME(mediaPath)
	item.ImageURL = g.resolveImageURL(ctx, show.Name, ep.Image)
	return item
}

// Channel applies defaults and image resolution to the channel half of
// the feed. lastBuildDate is the newest item publish time so that
// unchanged inputs keep producing byte-identical feeds.
func (g *Generator) Channel(ctx context.Context, show *model.Show, mediaDir string, items []model.Item) model.Channel {
	ch := model.Channel{
		Name:        show.Name,
		Title:       show.Title,
		Link:        show.Link,
		Description: show.Description,
		Subtitle:    show.Subtitle,
		Summary:     show.Summary,
		Language:    show.Language,
		Author:      show.EffectiveAuthor(),
		OwnerName:   show.EffectiveAuthor(),
		OwnerEmail:  show.AuthorEmail,
		Explicit:    show.Explicit.Bool(),
		Categories:  show.Categories,
		Type:        show.Type,
		Block:       show.Block,
		Complete:    show.Complete,
		NewFeedURL:  show.NewFeedURL,
	}
	if ch.Title == "" {
		ch.Title = show.Name
	}
	if ch.Link == "" {
		ch.Link = g.settings.BaseURL
	}
	if ch.Language == "" {
		ch.Language = model.DefaultLanguage
	}
	if ch.Summary == "" {
		ch.Summary = ch.Description
	}
	ch.ImageURL = g.resolveImageURL(ctx, show.Name, show.Image)
	for i := range items {
		if items[i].PubDate.After(ch.LastBuildDate) {
			ch.LastBuildDate = items[i].PubDate
		}
	}
	return ch
}

// DeriveGUID is the stable fallback GUID: the SHA-1 of
// "<show-name>/<basename>". Deterministic across runs and unique
// within one feed as long as basenames are.
func DeriveGUID(showName, basename string) string {
	sum := sha1.Sum([]byte(showName + "/" + basename))
	return hex.EncodeToString(sum[:])
}

// resolvePubDate parses a declared RFC-3339/ISO-8601 timestamp, falling
// back to the media file's modification time on absence or parse
// failure. The second return value reports whether the fallback was
// used.
func resolvePubDate(ctx context.Context, declared string, mtime time.Time, basename string) (time.Time, bool) {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return mtime.UTC(), true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, declared); err == nil {
			return t.UTC(), false
		}
	}
	logger.FromContext(ctx).Warn("Invalid pub_date, using file modification time",
		"file", basename, "pub_date", declared)
	return mtime.UTC(), true
}

// resolveImageURL passes absolute URLs through unchanged and resolves
// anything else as a basename inside the show's media directory. A
// referenced local image that does not exist is omitted with a warning.
func (g *Generator) resolveImageURL(ctx context.Context, showName, image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	base := path.Base(strings.ReplaceAll(image, "\\", "/"))
	local := filepath.Join(g.settings.PublicRoot, showName, base)
	if _, err := os.Stat(local); err != nil {
		logger.FromContext(ctx).Warn("Image file not found, omitting",
			"show", showName, "image", local)
		return ""
	}
	return joinURL(g.settings.BaseURL, showName, base)
}

func detectMIME(mediaPath string) string {
	mt, err := mimetype.DetectFile(mediaPath)
	if err != nil {
		return defaultMIMEType
	}
	// DetectFile returns "application/octet-stream; charset=..." style
	// values for unknown content; keep the bare media type.
	t := mt.String()
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if t == "" || t == "application/octet-stream" {
		return defaultMIMEType
	}
	return t
}
