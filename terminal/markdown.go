package terminal

import (
	"fmt"
	"strings"

	"github.com/connctd/spacedeck"
)

var inlineMarkdown = strings.NewReplacer(
	"<code>", "`", "</code>", "`",
	"<b>", "**", "</b>", "**",
	"<strong>", "**", "</strong>", "**",
	"<i>", "_", "</i>", "_",
	"<em>", "_", "</em>", "_",
)

func bullet(s string) string {
	return spacedeck.PlainText(inlineMarkdown.Replace(s))
}

// SlideMarkdown renders a slide view as markdown for glamour. References are
// numbered so they can be opened with the digit keys.
func SlideMarkdown(v spacedeck.SlideView) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s\n\n", v.Title)
	if v.Subtitle != "" {
		fmt.Fprintf(b, "## %s\n\n", v.Subtitle)
	}
	if v.Body != "" {
		fmt.Fprintf(b, "%s\n\n", v.Body)
	}
	for _, item := range v.Bullets {
		fmt.Fprintf(b, "- %s\n", bullet(string(item)))
	}
	if len(v.Bullets) > 0 {
		b.WriteString("\n")
	}

	switch v.Variant {
	case spacedeck.VariantPlaceholder:
		fmt.Fprintf(b, "> %s\n\n", v.Placeholder)
	case spacedeck.VariantCards:
		for _, c := range v.Cards {
			fmt.Fprintf(b, "### %s %s\n\n%s\n\n", c.Icon, c.Title, c.Text)
		}
	case spacedeck.VariantCarousel:
		c := v.Carousel
		for i, it := range c.Items {
			marker := " "
			if it.Active {
				marker = "●"
			}
			fmt.Fprintf(b, "%s %d. %s  `%s`\n", marker, i+1, it.Alt, it.Src)
		}
		b.WriteString("\n")
		if c.Current.Caption != "" {
			fmt.Fprintf(b, "_%s_\n\n", c.Current.Caption)
		}
		if c.Missing {
			b.WriteString("> Imagens não encontradas. Rode: spacedeck prepare\n\n")
		}
	case spacedeck.VariantDocument:
		fmt.Fprintf(b, "📄 **%s** `%s`\n\n", v.Document.Label, v.Document.Href)
	case spacedeck.VariantSegments:
		for _, seg := range v.Segments {
			state := "`" + seg.Src + "`"
			if !seg.Available {
				state = "não encontrado (" + seg.Src + ")"
			}
			fmt.Fprintf(b, "- 🎬 **%s** %s\n", seg.Label, state)
		}
		b.WriteString("\n")
	case spacedeck.VariantVideo:
		fmt.Fprintf(b, "🎬 `%s`\n\n", v.Video.Src)
	}

	if img := v.Image; img != nil {
		if img.Missing {
			fmt.Fprintf(b, "🖼  _Imagem sugerida: %s_\n\n", img.Recommend)
		} else {
			fmt.Fprintf(b, "🖼  %s `%s`\n\n", img.Alt, img.Src)
		}
	}
	for _, btn := range v.Buttons {
		fmt.Fprintf(b, "▶ **%s** `%s`\n\n", btn.Label, btn.Href)
	}

	if len(v.References) > 0 {
		b.WriteString("---\n\n**Referências (repo):**\n\n")
		for i, ref := range v.References {
			if i < 9 && !ref.Inert() {
				fmt.Fprintf(b, "- [%d] `%s`\n", i+1, ref.Path)
			} else {
				fmt.Fprintf(b, "- `%s`\n", ref.Path)
			}
		}
	}
	return b.String()
}

// PrimaryAction is what enter opens on a slide: its document, prompt,
// script or image.
func PrimaryAction(v spacedeck.SlideView) (spacedeck.Action, bool) {
	switch {
	case v.Document != nil:
		return v.Document.Action, true
	case v.Carousel != nil && v.Carousel.Prompt != nil:
		return v.Carousel.Prompt.Action, true
	case v.Carousel != nil:
		return v.Carousel.Open, true
	case len(v.Segments) > 0 && v.Segments[0].Script != nil:
		return v.Segments[0].Script.Action, true
	case len(v.Buttons) > 0:
		return v.Buttons[len(v.Buttons)-1].Action, true
	case v.Image != nil && v.Image.Zoomable && !v.Image.Missing:
		return v.Image.Zoom, true
	}
	return spacedeck.Action{}, false
}
