package model

import "time"

// Channel is the fully resolved channel half of one feed. All defaults
// and inheritance rules have been applied and image references have
// been turned into absolute URLs.
type Channel struct {
	Name          string
	Title         string
	Link          string
	Description   string
	Subtitle      string
	Summary       string
	Language      string
	Author        string
	OwnerName     string
	OwnerEmail    string
	Explicit      bool
	ImageURL      string
	Categories    []Category
	Type          string
	Block         bool
	Complete      bool
	NewFeedURL    string
	LastBuildDate time.Time
}

// Item is one fully resolved episode record: declared metadata merged
// with everything derived from the media file. Duration carries its own
// known-flag since probing is allowed to fail.
type Item struct {
	Filename        string
	Path            string
	Title           string
	Description     string
	Summary         string
	Subtitle        string
	Author          string
	GUID            string
	PubDate         time.Time
	PubDateFromFile bool
	Explicit        bool
	ImageURL        string
	EnclosureURL    string
	Length          int64
	MIMEType        string
	Duration        time.Duration
	HasDuration     bool
	Season          int
	Number          int
	Type            string
}

// Feed is the renderer input: one resolved channel and its ordered
// episode records.
type Feed struct {
	Channel Channel
	Items   []Item
}
