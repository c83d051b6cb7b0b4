package model

import (
	"errors"
	"fmt"
	"strings"
)

// Episode is one explicitly declared episode entry in a show document.
// Only file is required; every other field has a derived default.
type Episode struct {
	File        string   `yaml:"file"`
	Title       string   `yaml:"title,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Summary     string   `yaml:"summary,omitempty"`
	Subtitle    string   `yaml:"subtitle,omitempty"`
	PubDate     string   `yaml:"pub_date,omitempty"`
	Image       string   `yaml:"image,omitempty"`
	Explicit    Explicit `yaml:"explicit,omitempty"`
	AuthorName  string   `yaml:"author-name,omitempty"`
	Season      int      `yaml:"season,omitempty"`
	Number      int      `yaml:"episode,omitempty"`
	Type        string   `yaml:"episode_type,omitempty"`
	GUID        string   `yaml:"guid,omitempty"`
	Duration    Duration `yaml:"duration_hms,omitempty"`
}

// Validate checks the declared entry. File resolution against the
// media directory happens later in the resolver; here we only reject
// shapes that can never resolve.
func (e *Episode) Validate() error {
	if strings.TrimSpace(e.File) == "" {
		return errors.New("file is required")
	}
	switch e.Type {
	case "", "full", "trailer", "bonus":
	default:
		return fmt.Errorf("episode_type must be full, trailer or bonus, not %q", e.Type)
	}
	if e.Season < 0 || e.Number < 0 {
		return errors.New("season and episode numbers must not be negative")
	}
	return nil
}
