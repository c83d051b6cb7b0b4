// Package generator is the feed-generation engine: it turns one show's
// configuration and media directory into an iTunes-compatible RSS
// document, and orchestrates doing so for every discovered show.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/podserve/podcastify/internal/app/humanreadable"
	"github.com/podserve/podcastify/internal/app/model"
	"github.com/podserve/podcastify/internal/app/ports"
	"github.com/podserve/podcastify/internal/infra/adapters/logger"
)

// Settings is the explicit process-level configuration handed to the
// pipeline. The generator never reads the environment itself.
type Settings struct {
	// ConfigsRoot holds the <name>-podcast.yaml documents.
	ConfigsRoot string
	// PublicRoot holds one media subdirectory per show and receives
	// the generated <name>.xml feeds.
	PublicRoot string
	// OutputRoot overrides where feeds are written. Empty means
	// PublicRoot.
	OutputRoot string
	// BaseURL is the public base used to build absolute enclosure and
	// image URLs.
	BaseURL string
	// DryRun renders and diffs without writing or uploading.
	DryRun bool
}

func (s Settings) outputRoot() string {
	if s.OutputRoot != "" {
		return s.OutputRoot
	}
	return s.PublicRoot
}

// Generator wires the ports together. Uploader may be nil when remote
// publication is not requested.
type Generator struct {
	settings Settings
	configs  ports.ForConfiguring
	probe    ports.ForProbing
	renderer ports.ForRendering
	uploader ports.ForUploading
}

func New(settings Settings, configs ports.ForConfiguring, probe ports.ForProbing, renderer ports.ForRendering, uploader ports.ForUploading) *Generator {
	return &Generator{
		settings: settings,
		configs:  configs,
		probe:    probe,
		renderer: renderer,
		uploader: uploader,
	}
}

// RunReport summarizes one generation run.
type RunReport struct {
	Attempted int
	Succeeded int
	Failed    []string
}

// OK reports whether the run should exit zero: every run with at least
// one successful show passes, as does a run that found nothing to do.
func (r RunReport) OK() bool {
	return r.Attempted == 0 || r.Succeeded > 0
}

// Run discovers every show configuration and processes each one
// independently. A failing show is logged and counted; it never aborts
// the remaining shows.
func (g *Generator) Run(ctx context.Context) (RunReport, error) {
	l := logger.FromContext(ctx)
	var report RunReport

	refs, err := g.configs.Discover(ctx)
	if err != nil {
		return report, err
	}
	if len(refs) == 0 {
		l.Info("No podcast configurations found",
			"configs", g.settings.ConfigsRoot, "media", g.settings.PublicRoot)
		return report, nil
	}
	l.Info("Found podcast configurations", "count", len(refs))

	for _, ref := range refs {
		report.Attempted++
		if err := g.processShow(ctx, ref); err != nil {
			l.Error("Feed generation failed", "show", ref.Name, "error", err)
			report.Failed = append(report.Failed, ref.Name)
			continue
		}
		report.Succeeded++
	}
	l.Info("Processing complete", "succeeded", report.Succeeded, "total", report.Attempted)
	return report, nil
}

// processShow runs the per-show pipeline: load config, resolve
// episodes, render, write, optionally upload.
func (g *Generator) processShow(ctx context.Context, ref model.ConfigRef) error {
	l := logger.FromContext(ctx)

	show, err := g.configs.Load(ctx, ref)
	if err != nil {
		return err
	}

	mediaDir := filepath.Join(g.settings.PublicRoot, show.Name)
	items, err := g.Resolve(ctx, show, mediaDir)
	if err != nil {
		return err
	}

	feed := &model.Feed{
		Channel: g.Channel(ctx, show, mediaDir, items),
		Items:   items,
	}
	out, err := g.renderer.Render(ctx, feed)
	if err != nil {
		return fmt.Errorf("show %s: render: %w", show.Name, err)
	}

	outPath := filepath.Join(g.settings.outputRoot(), show.Name+".xml")
	wrote, err := g.write(ctx, outPath, out)
	if err != nil {
		return err
	}

	var mediaBytes int64
	for i := range items {
		mediaBytes += items[i].Length
	}
	l.Info("Published feed", "show", show.Name, "episodes", len(items),
		"media", humanreadable.IEC(mediaBytes), "feed", outPath)

	if g.uploader != nil && wrote {
		if err := g.upload(ctx, show.Name, outPath, items); err != nil {
			return err
		}
	}
	return nil
}

// write stores the rendered feed, skipping the write when the file is
// unchanged. Returns whether new content was (or would be) written.
func (g *Generator) write(ctx context.Context, path string, content []byte) (bool, error) {
	l := logger.FromContext(ctx)

	existing, err := os.ReadFile(path)
	if err == nil {
		if bytes.Equal(existing, content) {
			l.Info("Feed unchanged, skipping write", "feed", path)
			return false, nil
		}
		edits := myers.ComputeEdits(span.URIFromPath(path), string(existing), string(content))
		diff := fmt.Sprint(gotextdiff.ToUnified(path, path+".new", string(existing), edits))
		l.Debug("Feed changed", "diff", "\n"+diff)
	}

	if g.settings.DryRun {
		l.Info("Dry run, not writing feed", "feed", path, "bytes", len(content))
		return true, nil
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, fmt.Errorf("unable to write feed %s: %w", path, err)
	}
	return true, nil
}

// upload publishes the feed and every referenced media file.
func (g *Generator) upload(ctx context.Context, name, feedPath string, items []model.Item) error {
	if g.settings.DryRun {
		return nil
	}
	if err := g.uploader.Upload(ctx, &ports.ForUploadingRequest{
		Key:         name + ".xml",
		From:        feedPath,
		ContentType: "text/xml",
	}); err != nil {
		return fmt.Errorf("show %s: upload feed: %w", name, err)
	}
	for i := range items {
		if err := g.uploader.Upload(ctx, &ports.ForUploadingRequest{
			Key:         name + "/" + items[i].Filename,
			From:        items[i].Path,
			ContentType: items[i].MIMEType,
		}); err != nil {
			return fmt.Errorf("show %s: upload %s: %w", name, items[i].Filename, err)
		}
	}
	return nil
}

// joinURL builds the public URL of a file in a show's media directory.
func joinURL(baseURL, show, basename string) string {
	return strings.TrimRight(baseURL, "/") + "/" + show + "/" + escapePathSegment(basename)
}
