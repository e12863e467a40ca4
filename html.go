package spacedeck

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var inlinePolicy = newInlinePolicy()

func newInlinePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "code", "br", "small")
	return p
}

// InlineHTML sanitizes the small set of inline markup that bullets may carry.
// Everything else is stripped, text is kept.
func InlineHTML(s string) template.HTML {
	return template.HTML(inlinePolicy.Sanitize(s))
}

// PlainText strips all markup, used by the terminal and static outlines.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(bluemonday.StrictPolicy().Sanitize(s)))
}
