package spacedeck

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gobuffalo/packr/v2"
)

var staticBox = packr.New("static", "./web/static")

// ServeStatic serves the embedded stylesheet and page script.
func ServeStatic() http.Handler {
	return http.FileServer(staticBox)
}

// EmitStatic writes the embedded static files into destDir.
func EmitStatic(destDir string) error {
	if err := os.MkdirAll(destDir, 0777); err != nil {
		return err
	}
	for _, f := range staticBox.List() {
		fPath := filepath.Join(destDir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(fPath), 0777); err != nil {
			return err
		}
		data, err := staticBox.Find(f)
		if err != nil {
			return err
		}
		if err := os.WriteFile(fPath, data, 0666); err != nil {
			return err
		}
	}
	return nil
}

type staticSlide struct {
	Title      string
	Background string
	SlideHTML  template.HTML
	Position   int
	Total      int
	PrevHref   string
	NextHref   string
}

type staticPageLink struct {
	Href  string
	Title string
}

func staticSlideFile(i int) string {
	return fmt.Sprintf("slide-%02d.html", i+1)
}

// RenderStatic exports the deck as plain pages: an overview index and one
// page per slide linked to its neighbours. Overlays need the live server,
// so references stay ordinary links.
func (r *Renderer) RenderStatic(ctx context.Context, deck *Deck, destDir string) error {
	if err := EmitStatic(filepath.Join(destDir, "static")); err != nil {
		return fmt.Errorf("emitting static files: %w", err)
	}

	pages := make([]staticPageLink, 0, deck.Len())
	for i := 0; i < deck.Len(); i++ {
		s := deck.Slide(i)
		slideHTML, err := r.RenderSlide(ctx, s, 0)
		if err != nil {
			return fmt.Errorf("rendering slide %s: %w", s.ID, err)
		}
		page := staticSlide{
			Title:      deck.Title,
			Background: s.Background.Class(),
			SlideHTML:  slideHTML,
			Position:   i + 1,
			Total:      deck.Len(),
		}
		if i > 0 {
			page.PrevHref = staticSlideFile(i - 1)
		}
		if i < deck.Len()-1 {
			page.NextHref = staticSlideFile(i + 1)
		}
		out, err := r.execute("static-slide", page)
		if err != nil {
			return fmt.Errorf("rendering slide %s: %w", s.ID, err)
		}
		if err := os.WriteFile(filepath.Join(destDir, staticSlideFile(i)), out, 0666); err != nil {
			return err
		}
		pages = append(pages, staticPageLink{Href: staticSlideFile(i), Title: s.Title})
	}

	out, err := r.execute("static-index", struct {
		Title string
		Pages []staticPageLink
	}{deck.Title, pages})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(destDir, "index.html"), out, 0666)
}
