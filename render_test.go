package spacedeck

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderOne(t *testing.T, r *Renderer, s Slide, carousel int) string {
	t.Helper()
	deck, err := NewDeck("t", []Slide{s})
	require.NoError(t, err)
	out, err := r.RenderSlide(context.Background(), deck.Slide(0), carousel)
	require.NoError(t, err)
	return string(out)
}

func TestRenderGenericSlide(t *testing.T) {
	r := NewRenderer(newMemSource(map[string]string{"/prints/a.png": "png"}))
	out := renderOne(t, r, Slide{
		ID:           "g",
		Title:        "Generic",
		Subtitle:     "Sub",
		Body:         "Body text",
		Bullets:      []string{"use <code>check</code><script>alert(1)</script>"},
		References:   []string{"prompts/01/a.md", "prompts/*.md", "video/demo.mp4"},
		Image:        &Image{Src: "/prints/a.png", Alt: "A"},
		ImageButton:  "Ver imagem",
		PromptButton: &Link{Src: "b.md"},
	}, 0)

	assert.Contains(t, out, `<h2 class="slide-title">Generic</h2>`)
	assert.Contains(t, out, `<h3 class="slide-subtitle">Sub</h3>`)
	assert.Contains(t, out, "<code>check</code>")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Ver imagem")
	assert.Contains(t, out, "Abrir Prompt")
	assert.Contains(t, out, `href="/prompts/b.md"`)
	assert.Contains(t, out, `class="zoomable" src="/prints/a.png"`)

	assert.Contains(t, out, "Referências (repo):")
	assert.Contains(t, out, `class="ref-chip inert"`)
	assert.Contains(t, out, `href="/media/demo.mp4" target="_blank"`)
	assert.Contains(t, out, "open-markdown")
}

func TestRenderImageRightWithoutImage(t *testing.T) {
	r := NewRenderer(nil)
	out := renderOne(t, r, Slide{ID: "i", Title: "Split", Layout: LayoutImageRight}, 0)
	assert.Contains(t, out, "slide-split")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "image-fallback")
}

func TestRenderMissingImageFallsBack(t *testing.T) {
	r := NewRenderer(newMemSource(map[string]string{}))
	out := renderOne(t, r, Slide{
		ID: "c", Title: "Cover", Layout: LayoutCover,
		Image: &Image{Src: "/prints/x.png", Recommend: "print_screens/x.png"},
	}, 0)
	assert.Contains(t, out, "Imagem sugerida: print_screens/x.png")
	assert.NotContains(t, out, "<img")

	out = renderOne(t, r, Slide{ID: "f", Title: "Full", Layout: LayoutImageFull, Image: &Image{Src: "/prints/y.png"}}, 0)
	assert.Contains(t, out, "Imagem sugerida: /prints/y.png")
}

func TestRenderCarousel(t *testing.T) {
	s := Slide{
		ID:    "car",
		Title: "Carousel",
		Carousel: &Carousel{
			Items:  []CarouselItem{{Src: "/prints/a.png", Alt: "A"}, {Src: "/prints/b.png", Alt: "B", Caption: "Bee"}},
			Prompt: &Link{Src: "/prompts/p.md", Title: "Prompt"},
		},
	}
	r := NewRenderer(newMemSource(map[string]string{"/prints/a.png": "png"}))
	out := renderOne(t, r, s, 1)
	assert.Contains(t, out, `src="/prints/b.png"`)
	assert.Contains(t, out, "Bee")
	assert.Equal(t, 2, strings.Count(out, `<button class="dot`))
	assert.Equal(t, 1, strings.Count(out, "dot active"))
	assert.Contains(t, out, "Ver Prompt Consolidado")
	assert.NotContains(t, out, "Imagens não encontradas")

	r = NewRenderer(newMemSource(map[string]string{}))
	out = renderOne(t, r, s, 7)
	assert.Contains(t, out, `src="/prints/a.png"`, "out of range selection shows the first item")
	assert.Contains(t, out, "Imagens não encontradas")
}

func TestRenderSegments(t *testing.T) {
	r := NewRenderer(newMemSource(map[string]string{"/media/part1.mp4": "mp4"}))
	out := renderOne(t, r, Slide{
		ID: "seg", Title: "Segments",
		Segments: &Segments{Script: &Link{Src: "/prompts/roteiro.md", Title: "Roteiro"}},
	}, 0)
	assert.Equal(t, 4, strings.Count(out, `class="segment-card"`))
	assert.Equal(t, 1, strings.Count(out, "<video"))
	assert.Equal(t, 3, strings.Count(out, "Arquivo não encontrado"))
	assert.Equal(t, 4, strings.Count(out, "Ver roteiro"))
}

func TestRenderExternalLinks(t *testing.T) {
	r := NewRenderer(nil)
	out := renderOne(t, r, Slide{
		ID:         "ext",
		Title:      "Links",
		Links:      []Link{{Src: "https://gamma.app/docs/meta", Title: "Slides no Gamma"}},
		References: []string{"https://www.perplexity.ai"},
	}, 0)
	assert.Equal(t, 2, strings.Count(out, "open-external"))
	assert.Contains(t, out, "Slides no Gamma")
	assert.Contains(t, out, `href="https://gamma.app/docs/meta"`)
	assert.Contains(t, out, `href="https://www.perplexity.ai"`)
}

func TestRenderDocumentCardsVideoPlaceholder(t *testing.T) {
	r := NewRenderer(nil)

	out := renderOne(t, r, Slide{ID: "d", Title: "Doc", Document: &DocumentBody{Src: "/docs/a.pdf", Label: "Abrir"}}, 0)
	assert.Contains(t, out, `href="/docs/a.pdf"`)
	assert.Contains(t, out, "open-pdf")

	out = renderOne(t, r, Slide{ID: "k", Title: "Cards", Cards: []Card{{Title: "One", Text: "first", Icon: "🚀"}}}, 0)
	assert.Contains(t, out, `<div class="card-ttl">One</div>`)
	assert.Contains(t, out, "🚀")

	out = renderOne(t, r, Slide{ID: "v", Title: "Video", Video: &Video{Src: "/media/30s.mp4"}, Image: &Image{Src: "/prints/p.png"}}, 0)
	assert.Contains(t, out, `poster="/prints/p.png"`)
	assert.Contains(t, out, `src="/media/30s.mp4"`)

	out = renderOne(t, r, Slide{ID: "p", Title: "Soon", Placeholder: "Em breve"}, 0)
	assert.Contains(t, out, "<p>Em breve</p>")
}

func TestRenderStage(t *testing.T) {
	src := newMemSource(map[string]string{"/prompts/a.md": "# Heading\n- one"})
	c := newTestController(t, src)
	r := NewRenderer(src)
	ctx := context.Background()

	out, err := r.RenderStage(ctx, c.State())
	require.NoError(t, err)
	page := string(out)
	assert.Contains(t, page, "1 / 3")
	assert.Contains(t, page, "disabled>&larr; Anterior")
	assert.NotContains(t, page, "class=\"overlay")

	c.ToggleOverview()
	c.OpenMarkdown("/prompts/a.md", "Prompt A")
	c.Wait()
	c.ZoomIn()
	out, err = r.RenderStage(ctx, c.State())
	require.NoError(t, err)
	page = string(out)
	assert.Contains(t, page, "overview-grid")
	assert.Contains(t, page, "thumb active")
	assert.Contains(t, page, "Prompt A")
	assert.Contains(t, page, "<h1>Heading</h1>")
	assert.Contains(t, page, "scale(1.1)")

	c.OpenImage("/prints/a.png", "")
	out, err = r.RenderStage(ctx, c.State())
	require.NoError(t, err)
	assert.Contains(t, string(out), `class="fullimg-image" src="/prints/a.png"`)
}

func TestRenderStageBanner(t *testing.T) {
	c := newTestController(t, newMemSource(map[string]string{}))
	c.Mount(context.Background())
	c.Wait()
	defer c.Unmount()

	out, err := NewRenderer(nil).RenderStage(context.Background(), c.State())
	require.NoError(t, err)
	assert.Contains(t, string(out), msgAssetsMissing)
	assert.Contains(t, string(out), "dismiss-banner")
}

func TestRenderPresentationAndIndex(t *testing.T) {
	c := newTestController(t, nil)
	r := NewRenderer(nil)

	out, err := r.RenderPresentation(context.Background(), c.State())
	require.NoError(t, err)
	page := string(out)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `data-socket="/ws"`)
	assert.Contains(t, page, "/static/present.js")

	out, err = r.RenderIndex("Deck")
	require.NoError(t, err)
	assert.Contains(t, string(out), `href="/present"`)
	assert.Contains(t, string(out), `href="/landing"`)
}

func TestRenderLandingAndNotes(t *testing.T) {
	r := NewRenderer(nil)
	docs := make([]Document, 6)
	for i := range docs {
		docs[i] = Document{Title: "Doc", Path: "p", Content: "<b>raw</b>"}
	}
	out, err := r.RenderLanding(LandingPage{Docs: docs})
	require.NoError(t, err)
	page := string(out)
	assert.Equal(t, 6, strings.Count(page, `class="code-block"`))
	assert.Contains(t, page, "&lt;b&gt;raw&lt;/b&gt;")
	assert.Contains(t, page, "Orquestração de Código")
	assert.Contains(t, page, "80 ms")

	out, err = r.RenderLanding(LandingPage{Err: "Falha ao carregar a.md"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `<div class="warn">Falha ao carregar a.md</div>`)
	assert.NotContains(t, string(out), `class="code-block"`)

	out, err = r.RenderNotesPage("Notas", RenderNotes([]byte("# Fala")), "")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Fala</h1>")
}
