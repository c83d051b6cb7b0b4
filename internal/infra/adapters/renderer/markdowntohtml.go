package renderer

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	mdp "github.com/gomarkdown/markdown/parser"
)

// MarkdownToHTML renders md as HTML for use inside description and
// summary CDATA sections. The closing CDATA sequence is split so the
// output can never terminate the section early.
func MarkdownToHTML(md string) string {
	p := mdp.NewWithExtensions(mdp.CommonExtensions | mdp.AutoHeadingIDs | mdp.NoEmptyLineBeforeBlock)
	doc := p.Parse([]byte(md))
	r := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank,
	})
	out := strings.TrimSpace(string(markdown.Render(doc, r)))
	return strings.ReplaceAll(out, "]]>", "]]]]><![CDATA[>")
}
