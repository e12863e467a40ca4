package spacedeck

import (
	"html/template"
	"regexp"
	"strings"

	blackfriday "github.com/russross/blackfriday/v2"
)

const mardownExtensions = blackfriday.NoIntraEmphasis | blackfriday.Tables | blackfriday.FencedCode |
	blackfriday.Strikethrough | blackfriday.SpaceHeadings | blackfriday.HeadingIDs |
	blackfriday.BackslashLineBreak | blackfriday.DefinitionLists

var (
	lineBreak = regexp.MustCompile(`\r?\n`)
	h1Prefix  = regexp.MustCompile(`^#\s+`)
	h2Prefix  = regexp.MustCompile(`^##\s+`)
	liPrefix  = regexp.MustCompile(`^-\s+`)

	escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

const (
	fenceMarker = "```"
	codeOpen    = "<pre><code>"
	codeClose   = "</code></pre>"
)

// RenderMarkdown converts the small markdown subset used by prompt files
// (headings, dash lists, fenced code, paragraphs) into HTML. Only &, < and >
// are escaped. An unterminated fence is closed at the end of the input.
func RenderMarkdown(src string) string {
	lines := lineBreak.Split(src, -1)
	out := make([]string, 0, len(lines)+2)
	inCode := false

	for _, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), fenceMarker) {
			inCode = !inCode
			if inCode {
				out = append(out, codeOpen)
			} else {
				out = append(out, codeClose)
			}
			continue
		}
		if inCode {
			out = append(out, escaper.Replace(ln))
			continue
		}
		switch {
		case h1Prefix.MatchString(ln):
			out = append(out, "<h1>"+escaper.Replace(h1Prefix.ReplaceAllString(ln, ""))+"</h1>")
		case h2Prefix.MatchString(ln):
			out = append(out, "<h2>"+escaper.Replace(h2Prefix.ReplaceAllString(ln, ""))+"</h2>")
		case liPrefix.MatchString(ln):
			out = append(out, "<li>"+escaper.Replace(liPrefix.ReplaceAllString(ln, ""))+"</li>")
		case strings.TrimSpace(ln) == "":
			out = append(out, "<br/>")
		default:
			out = append(out, "<p>"+escaper.Replace(ln)+"</p>")
		}
	}
	if inCode {
		out = append(out, codeClose)
	}
	return strings.Join(wrapListItems(out), "\n")
}

// wrapListItems puts each run of consecutive list items into one list.
// Escaped lines never start with "<li>", so code blocks are left alone.
func wrapListItems(out []string) []string {
	item := make([]bool, len(out))
	for i, ln := range out {
		item[i] = strings.HasPrefix(ln, "<li>")
	}
	for i := range out {
		if !item[i] {
			continue
		}
		if i == 0 || !item[i-1] {
			out[i] = "<ul>" + out[i]
		}
		if i == len(out)-1 || !item[i+1] {
			out[i] += "</ul>"
		}
	}
	return out
}

// LooksLikeHostDocument reports whether fetched content is a whole HTML page,
// which is what a dev server answers for files it does not have.
func LooksLikeHostDocument(content string) bool {
	lower := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(lower, "<!doctype") || strings.Contains(lower, "<html")
}

// RenderNotes renders full markdown, used for presenter notes.
func RenderNotes(input []byte) template.HTML {
	out := blackfriday.Run(input,
		blackfriday.WithExtensions(
			mardownExtensions,
		),
	)
	return template.HTML(out)
}
