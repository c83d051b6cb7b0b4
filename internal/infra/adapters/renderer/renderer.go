// renderer serializes resolved feeds into RSS 2.0 with the iTunes
// namespace using an embedded Go template. Implements the
// ports.ForRendering interface.
package renderer

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/xml"
	"strings"
	"text/template"
	"time"

	"github.com/podserve/podcastify/internal/app/model"
	"github.com/podserve/podcastify/internal/app/ports"
	"github.com/sa6mwa/mp3duration"
)

// Generator is the fixed value of the feed's generator element.
const Generator = "podcastify"

//go:embed template.rss
var rssTemplate string

type forRendering struct {
	tmpl *template.Template
}

// New parses the embedded RSS template and returns a renderer
// satisfying the ports.ForRendering port interface.
func New() (ports.ForRendering, error) {
	t, err := template.New("template.rss").Funcs(mkFuncMap()).Parse(rssTemplate)
	if err != nil {
		return nil, err
	}
	return &forRendering{tmpl: t}, nil
}

func (r *forRendering) Render(_ context.Context, feed *model.Feed) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := r.tmpl.Execute(buf, feed); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func mkFuncMap() template.FuncMap {
	return template.FuncMap{
		"xml": escapeXML,
		"rfc822": func(t time.Time) string {
			return t.UTC().Format(time.RFC1123Z)
		},
		"yesno": func(b bool) string {
			if b {
				return "yes"
			}
			return "no"
		},
		"hms": func(d time.Duration) string {
			return mp3duration.FormatDuration(d)
		},
		"markdown": MarkdownToHTML,
		"generator": func() string {
			return Generator
		},
	}
}

// escapeXML escapes s for use in element text and attribute values.
func escapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
