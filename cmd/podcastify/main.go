package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/podserve/podcastify/internal/app/generator"
	"github.com/podserve/podcastify/internal/app/model"
	"github.com/podserve/podcastify/internal/app/ports"
	"github.com/podserve/podcastify/internal/infra/adapters/asker"
	"github.com/podserve/podcastify/internal/infra/adapters/configurator"
	"github.com/podserve/podcastify/internal/infra/adapters/logger"
	"github.com/podserve/podcastify/internal/infra/adapters/prober"
	"github.com/podserve/podcastify/internal/infra/adapters/renderer"
	"github.com/podserve/podcastify/internal/infra/adapters/uploader"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigsRoot = "podcasts"
	defaultPublicRoot  = "public"
	defaultBaseURL     = "http://localhost:8080"
)

func main() {
	app := &cli.App{
		Name:  "podcastify",
		Usage: "Generate iTunes-compatible podcast RSS feeds from directories of MP3 files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "configs",
				Aliases: []string{"c"},
				Value:   defaultConfigsRoot,
				Usage:   "Directory holding the <name>-podcast.yaml show configurations",
				EnvVars: []string{"PODCASTS_ROOT"},
			},
			&cli.StringFlag{
				Name:    "public",
				Aliases: []string{"p"},
				Value:   defaultPublicRoot,
				Usage:   "Directory with one media subdirectory per show, also receives the generated feeds",
				EnvVars: []string{"PUBLIC_ROOT"},
			},
			&cli.StringFlag{
				Name:    "base-url",
				Aliases: []string{"b"},
				Value:   defaultBaseURL,
				Usage:   "Public base URL used to build absolute enclosure and image URLs",
				EnvVars: []string{"PUBLIC_BASE_URL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "Generate RSS feeds for every discovered show configuration",
				Action:  generate,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Usage: "Write feeds here instead of the public root",
					},
					&cli.StringFlag{
						Name:  "ffprobe",
						Value: "ffprobe",
						Usage: "Path to the ffprobe binary used for duration probing",
					},
					&cli.DurationFlag{
						Name:  "probe-timeout",
						Value: prober.DefaultTimeout,
						Usage: "Timeout for one duration probe invocation",
					},
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Usage:   "Render and diff without writing or uploading anything",
					},
					&cli.BoolFlag{
						Name:    "upload",
						Aliases: []string{"u"},
						Usage:   "Upload generated feeds and media to the S3 bucket",
					},
					&cli.StringFlag{
						Name:  "bucket",
						Usage: "S3 bucket to publish to (required with --upload)",
					},
					&cli.StringFlag{
						Name:  "aws-profile",
						Usage: "AWS credentials profile",
					},
					&cli.StringFlag{
						Name:  "aws-region",
						Usage: "AWS region of the bucket",
					},
				},
			},
			{
				Name:      "init",
				Usage:     "Scaffold a new show configuration interactively",
				ArgsUsage: "<show-name>",
				Action:    initShow,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing configuration without asking",
					},
				},
			},
		},
	}

	ctx := logger.WithDefaultLogger(context.Background())
	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.FromContext(ctx).Error("Fatal", "error", err)
		os.Exit(1)
	}
}

func generate(c *cli.Context) error {
	ctx := c.Context
	settings := generator.Settings{
		ConfigsRoot: c.String("configs"),
		PublicRoot:  c.String("public"),
		OutputRoot:  c.String("output"),
		BaseURL:     c.String("base-url"),
		DryRun:      c.Bool("dry-run"),
	}

	rend, err := renderer.New()
	if err != nil {
		return err
	}

	probe := prober.NewChain(
		prober.NewFFprobe(c.String("ffprobe"), c.Duration("probe-timeout")),
		prober.NewNative(),
	)

	var up ports.ForUploading
	if c.Bool("upload") {
		bucket := strings.TrimSpace(c.String("bucket"))
		if bucket == "" {
			return cli.Exit("--upload requires --bucket", 1)
		}
		up = uploader.New(c.String("aws-profile"), c.String("aws-region"), bucket)
	}

	g := generator.New(settings, configurator.New(settings.ConfigsRoot), probe, rend, up)
	report, err := g.Run(ctx)
	if err != nil {
		return err
	}
	if !report.OK() {
		return cli.Exit(fmt.Sprintf("all %d show(s) failed", report.Attempted), 1)
	}
	return nil
}

func initShow(c *cli.Context) error {
	ctx := c.Context
	l := logger.FromContext(ctx)

	if c.Args().Len() != 1 {
		return cli.Exit("specify exactly one show name, e.g: podcastify init myshow", 1)
	}
	name := c.Args().First()
	if !model.ValidShowName(name) {
		return fmt.Errorf("show name %q is not filesystem-safe", name)
	}

	ask := asker.New(false, c.Bool("force"))
	show := &model.Show{
		Name:        name,
		Title:       ask.Input(ctx, "Podcast title:", name),
		AuthorName:  ask.Input(ctx, "Author name:", ""),
		AuthorEmail: ask.Input(ctx, "Author email:", ""),
		Description: ask.Input(ctx, "Description:", ""),
		Language:    ask.Input(ctx, "Language code:", model.DefaultLanguage),
	}
	if category := ask.Input(ctx, "iTunes category:", "Technology"); category != "" {
		show.Categories = model.CategoryList{{Name: category}}
	}
	show.Explicit = model.ExplicitValue(ask.Ask(ctx, "Explicit content?"))

	configPath := filepath.Join(c.String("configs"), name+"-podcast.yaml")
	if _, err := os.Stat(configPath); err == nil {
		if !ask.Ask(ctx, "%s exists, overwrite?", configPath) {
			l.Info("Keeping existing configuration", "path", configPath)
			return nil
		}
	}

	if err := os.MkdirAll(c.String("configs"), 0755); err != nil {
		return err
	}
	out, err := yaml.Marshal(show)
	if err != nil {
		return fmt.Errorf("unable to marshal configuration: %w", err)
	}
	if err := os.WriteFile(configPath, out, 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", configPath, err)
	}

	mediaDir := filepath.Join(c.String("public"), name)
	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		return err
	}
	l.Info("Scaffolded show", "config", configPath, "media", mediaDir)
	l.Info("Place audio files in the media directory and run: podcastify generate")
	return nil
}
