package model

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultLanguage is used when a show document omits the language code.
const DefaultLanguage = "en"

// ConfigRef points at one discovered show configuration document. Name
// is derived from the filename convention <name>-podcast.yaml and
// doubles as the media subdirectory and output feed basename.
type ConfigRef struct {
	Name string
	Path string
}

// Show is one podcast's channel configuration as declared in its YAML
// document. Episodes may be listed explicitly; when absent or empty the
// media directory is scanned instead.
type Show struct {
	Name        string       `yaml:"name,omitempty"`
	Title       string       `yaml:"title"`
	AuthorName  string       `yaml:"author-name,omitempty"`
	AuthorEmail string       `yaml:"author-email,omitempty"`
	// Author is a deprecated alias for author-name.
	Author      string       `yaml:"author,omitempty"`
	Subtitle    string       `yaml:"subtitle,omitempty"`
	Summary     string       `yaml:"summary,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Language    string       `yaml:"language,omitempty"`
	Link        string       `yaml:"link,omitempty"`
	Explicit    Explicit     `yaml:"explicit,omitempty"`
	Image       string       `yaml:"image,omitempty"`
	Categories  CategoryList `yaml:"categories,omitempty"`
	Type        string       `yaml:"type,omitempty"`
	Block       bool         `yaml:"block,omitempty"`
	Complete    bool         `yaml:"complete,omitempty"`
	NewFeedURL  string       `yaml:"new_feed_url,omitempty"`
	Episodes    []Episode    `yaml:"episodes,omitempty"`
}

// EffectiveAuthor resolves the author-name field with fallback to the
// deprecated author alias.
func (s *Show) EffectiveAuthor() string {
	if strings.TrimSpace(s.AuthorName) != "" {
		return s.AuthorName
	}
	return s.Author
}

var showNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidShowName reports whether name is non-empty and safe to use as a
// directory name and feed file basename.
func ValidShowName(name string) bool {
	return showNameRe.MatchString(name) && name != "." && name != ".."
}

// Validate checks the invariants a loaded show must satisfy. Field
// context is included in the returned error so the operator can find
// the offending document.
func (s *Show) Validate() error {
	if !ValidShowName(s.Name) {
		return fmt.Errorf("show name %q is empty or not filesystem-safe", s.Name)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("show %s: title is required", s.Name)
	}
	switch s.Type {
	case "", "episodic", "serial":
	default:
		return fmt.Errorf("show %s: type must be episodic or serial, not %q", s.Name, s.Type)
	}
	for i := range s.Episodes {
		if err := s.Episodes[i].Validate(); err != nil {
			return fmt.Errorf("show %s: episode %d: %w", s.Name, i+1, err)
		}
	}
	return nil
}
