package model

import "encoding/xml"

// NamespaceItunes is the iTunes podcast extension namespace emitted on
// every generated feed.
const NamespaceItunes = "http://www.itunes.com/dtds/podcast-1.0.dtd"

// RSS mirrors the generated feed document. Used to re-parse rendered
// output in round-trip tests and by anyone validating a published feed.
type RSS struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel RSSChannel `xml:"channel"`
}

type RSSChannel struct {
	Title         string        `xml:"title"`
	Link          string        `xml:"link"`
	Description   string        `xml:"description"`
	Language      string        `xml:"language"`
	Generator     string        `xml:"generator"`
	LastBuildDate string        `xml:"lastBuildDate"`
	Explicit      string        `xml:"explicit"`
	Author        string        `xml:"author"`
	Subtitle      string        `xml:"subtitle"`
	Summary       string        `xml:"summary"`
	Image         RSSImage      `xml:"image"`
	Owner         RSSOwner      `xml:"owner"`
	Categories    []RSSCategory `xml:"category"`
	Type          string        `xml:"type"`
	Block         string        `xml:"block"`
	Complete      string        `xml:"complete"`
	NewFeedURL    string        `xml:"new-feed-url"`
	Items         []RSSItem     `xml:"item"`
}

type RSSImage struct {
	Href string `xml:"href,attr"`
}

type RSSOwner struct {
	Name  string `xml:"name"`
	Email string `xml:"email"`
}

// RSSCategory nests one level for main/sub category trees.
type RSSCategory struct {
	Text string       `xml:"text,attr"`
	Sub  *RSSCategory `xml:"category"`
}

type RSSGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink string `xml:"isPermaLink,attr"`
}

type RSSEnclosure struct {
	URL    string `xml:"url,attr"`
	Length int64  `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

type RSSItem struct {
	GUID        RSSGUID      `xml:"guid"`
	Title       string       `xml:"title"`
	Description string       `xml:"description"`
	PubDate     string       `xml:"pubDate"`
	Enclosure   RSSEnclosure `xml:"enclosure"`
	Explicit    string       `xml:"explicit"`
	Author      string       `xml:"author"`
	Duration    string       `xml:"duration"`
	Subtitle    string       `xml:"subtitle"`
	Summary     string       `xml:"summary"`
	Image       RSSImage     `xml:"image"`
	Season      int          `xml:"season"`
	Number      int          `xml:"episode"`
	EpisodeType string       `xml:"episodeType"`
}
