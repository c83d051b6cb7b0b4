// configurator is the file-based adapter for discovering and loading
// show configuration documents. It implements the ports.ForConfiguring
// interface.
package configurator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/podserve/podcastify/internal/app/model"
	"github.com/podserve/podcastify/internal/app/ports"
	"github.com/podserve/podcastify/internal/infra/adapters/logger"
	"gopkg.in/yaml.v3"
)

// Show documents are named <name>-podcast.yaml (or .yml); the prefix
// becomes the show name.
var configSuffixes = []string{"-podcast.yaml", "-podcast.yml"}

// New returns a configurator rooted at configsRoot that satisfies the
// ports.ForConfiguring port interface.
func New(configsRoot string) ports.ForConfiguring {
	return &forConfiguring{root: configsRoot}
}

type forConfiguring struct {
	root string
}

func (c *forConfiguring) Discover(ctx context.Context) ([]model.ConfigRef, error) {
	l := logger.FromContext(ctx)
	entries, err := os.ReadDir(c.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Warn("Podcasts directory not found", "path", c.root)
			return nil, nil
		}
		return nil, fmt.Errorf("unable to read configs root %s: %w", c.root, err)
	}
	var refs []model.ConfigRef
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := showName(entry.Name())
		if !ok {
			continue
		}
		refs = append(refs, model.ConfigRef{
			Name: name,
			Path: filepath.Join(c.root, entry.Name()),
		})
	}
	return refs, nil
}

func (c *forConfiguring) Load(ctx context.Context, ref model.ConfigRef) (*model.Show, error) {
	l := logger.FromContext(ctx)
	raw, err := os.ReadFile(ref.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config for show %s: %w", ref.Name, err)
	}

	show, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", ref.Name, err)
	}

	// The filename convention wins over a conflicting name field, same
	// as it decides which media subdirectory the show reads from.
	if show.Name != "" && show.Name != ref.Name {
		l.Warn("Config name differs from filename-derived name",
			"config", show.Name, "derived", ref.Name, "using", ref.Name)
	}
	show.Name = ref.Name

	if strings.TrimSpace(show.Language) == "" {
		show.Language = model.DefaultLanguage
	}

	if err := show.Validate(); err != nil {
		return nil, err
	}
	return show, nil
}

// decode accepts both the flat document shape and the nested one where
// channel metadata lives under a podcast key with episodes remaining at
// the top level.
func decode(raw []byte) (*model.Show, error) {
	var doc struct {
		Podcast  *model.Show     `yaml:"podcast"`
		Episodes []model.Episode `yaml:"episodes"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("malformed config: %w", err)
	}
	if doc.Podcast != nil {
		show := doc.Podcast
		if len(show.Episodes) == 0 {
			show.Episodes = doc.Episodes
		}
		return show, nil
	}
	var show model.Show
	if err := yaml.Unmarshal(raw, &show); err != nil {
		return nil, fmt.Errorf("malformed config: %w", err)
	}
	return &show, nil
}

func showName(filename string) (string, bool) {
	for _, suffix := range configSuffixes {
		if strings.HasSuffix(filename, suffix) {
			name := strings.TrimSuffix(filename, suffix)
			if name != "" {
				return name, true
			}
		}
	}
	return "", false
}
