package spacedeck

import (
	"fmt"
	"html/template"
)

const (
	zoomDefault = 10
	zoomMin     = 6
	zoomMax     = 20

	msgHostDocument = "Arquivo não encontrado no public. Rode: spacedeck prepare"
)

// MarkdownOverlay shows a fetched markdown file, scaled in tenths.
type MarkdownOverlay struct {
	Open    bool
	Src     string
	Title   string
	Loading bool
	Err     string
	Content string
	Zoom    int

	generation uint64
}

func (m *MarkdownOverlay) open(src, title string) uint64 {
	m.generation++
	*m = MarkdownOverlay{
		Open:       true,
		Src:        src,
		Title:      title,
		Loading:    true,
		Zoom:       zoomDefault,
		generation: m.generation,
	}
	return m.generation
}

func (m *MarkdownOverlay) close() {
	m.generation++
	*m = MarkdownOverlay{generation: m.generation}
}

// resolve applies a fetch result unless it belongs to an earlier open.
func (m *MarkdownOverlay) resolve(gen uint64, content string, err error) bool {
	if !m.Open || gen != m.generation {
		return false
	}
	m.Loading = false
	switch {
	case err != nil:
		m.Err = fmt.Sprintf("Falha ao carregar %s", m.Src)
		m.Content = ""
	case LooksLikeHostDocument(content):
		m.Err = msgHostDocument
		m.Content = ""
	default:
		m.Err = ""
		m.Content = content
	}
	return true
}

func (m *MarkdownOverlay) zoomIn() bool {
	if !m.Open || m.Zoom >= zoomMax {
		return false
	}
	m.Zoom++
	return true
}

func (m *MarkdownOverlay) zoomOut() bool {
	if !m.Open || m.Zoom <= zoomMin {
		return false
	}
	m.Zoom--
	return true
}

func (m MarkdownOverlay) Scale() float64 {
	return float64(m.Zoom) / 10
}

func (m MarkdownOverlay) ScaleString() string {
	return fmt.Sprintf("%.1f", m.Scale())
}

func (m MarkdownOverlay) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Src
}

func (m MarkdownOverlay) HTML() template.HTML {
	return template.HTML(RenderMarkdown(m.Content))
}

type ImageOverlay struct {
	Open bool
	Src  string
	Alt  string
}

func (i ImageOverlay) DisplayTitle() string {
	if i.Alt != "" {
		return i.Alt
	}
	return "Imagem"
}

// DocumentOverlay embeds a PDF. The source is probed on open; Missing is set
// when the probe fails.
type DocumentOverlay struct {
	Open    bool
	Src     string
	Title   string
	Loading bool
	Missing bool

	generation uint64
}

func (d *DocumentOverlay) open(src, title string) uint64 {
	d.generation++
	*d = DocumentOverlay{Open: true, Src: src, Title: title, Loading: true, generation: d.generation}
	return d.generation
}

func (d *DocumentOverlay) close() {
	d.generation++
	*d = DocumentOverlay{generation: d.generation}
}

func (d *DocumentOverlay) resolve(gen uint64, exists bool) bool {
	if !d.Open || gen != d.generation {
		return false
	}
	d.Loading = false
	d.Missing = !exists
	return true
}

func (d DocumentOverlay) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return "Documento"
}

type ExternalOverlay struct {
	Open  bool
	URL   string
	Title string
}

func (e ExternalOverlay) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.URL
}
