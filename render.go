package spacedeck

import (
	"bytes"
	"context"
	"html/template"
	"strings"
)

var Version = "undefined"

type ImageView struct {
	Src       string
	Alt       string
	Recommend string
	Missing   bool
	Zoomable  bool
	Zoom      Action
}

type VideoView struct {
	Src    string
	Poster string
}

type ButtonView struct {
	Label  string
	Href   string
	Action Action
}

type CarouselItemView struct {
	CarouselItem
	Active bool
	Select Action
}

type CarouselView struct {
	Current CarouselItem
	Items   []CarouselItemView
	Open    Action
	Prev    Action
	Next    Action
	Missing bool
	Prompt  *ButtonView
}

type SegmentView struct {
	Segment
	Available bool
	Script    *ButtonView
}

// SlideView is the visual tree of one slide, ready for the templates.
type SlideView struct {
	Variant     Variant
	ID          string
	Title       string
	Subtitle    string
	Body        string
	Bullets     []template.HTML
	Image       *ImageView
	Video       *VideoView
	Cards       []Card
	Placeholder string
	Carousel    *CarouselView
	Document    *ButtonView
	Segments    []SegmentView
	Buttons     []ButtonView
	References  []Reference
	Background  Background
}

// Renderer turns slides and presentation state into HTML. Image sources are
// probed so missing files degrade to a text hint.
type Renderer struct {
	tmpl   *template.Template
	prober Prober
}

func NewRenderer(prober Prober) *Renderer {
	return &Renderer{
		tmpl:   DefaultRenderer(),
		prober: prober,
	}
}

func (r *Renderer) exists(ctx context.Context, src string) bool {
	if r.prober == nil {
		return true
	}
	return r.prober.Exists(ctx, src)
}

func (r *Renderer) image(ctx context.Context, img *Image, zoomable bool) *ImageView {
	if img == nil {
		return nil
	}
	v := &ImageView{
		Src:       img.Src,
		Alt:       img.Alt,
		Recommend: img.Recommend,
		Missing:   !r.exists(ctx, img.Src),
		Zoomable:  zoomable,
		Zoom:      OpenImage(img.Src, img.Alt),
	}
	if v.Recommend == "" {
		v.Recommend = img.Src
	}
	return v
}

func markdownButton(l *Link, fallbackTitle string) *ButtonView {
	if l == nil {
		return nil
	}
	title := l.Title
	if title == "" {
		title = fallbackTitle
	}
	src := l.Src
	if !strings.HasPrefix(src, "/prompts") {
		src = "/prompts/" + strings.TrimPrefix(src, "/")
	}
	return &ButtonView{Label: title, Href: src, Action: OpenMarkdown(src, title)}
}

// View builds the visual tree for a slide. carousel is the selected item of
// the slide's carousel, if it has one.
func (r *Renderer) View(ctx context.Context, s *Slide, carousel int) SlideView {
	v := SlideView{
		Variant:    Classify(s),
		ID:         s.ID,
		Title:      s.Title,
		Subtitle:   s.Subtitle,
		Body:       s.Body,
		References: ResolveReferences(s.References),
		Background: s.Background,
	}
	for _, b := range s.Bullets {
		v.Bullets = append(v.Bullets, InlineHTML(b))
	}

	switch v.Variant {
	case VariantCover:
		v.Image = r.image(ctx, s.Image, false)
	case VariantImageRight, VariantImageFull:
		v.Image = r.image(ctx, s.Image, true)
	case VariantPlaceholder:
		v.Placeholder = s.Placeholder
	case VariantCarousel:
		v.Carousel = r.carousel(ctx, s, carousel)
	case VariantDocument:
		label := s.Document.Label
		if label == "" {
			label = "Abrir documento"
		}
		v.Document = &ButtonView{Label: label, Href: s.Document.Src, Action: OpenDocument(s.Document.Src, s.Document.Title)}
	case VariantSegments:
		script := markdownButton(s.Segments.Script, "Roteiro")
		for _, seg := range s.Segments.Items {
			sv := SegmentView{Segment: seg, Available: r.exists(ctx, seg.Src)}
			if script != nil {
				sv.Script = &ButtonView{Label: "Ver roteiro", Href: script.Href, Action: script.Action}
			}
			v.Segments = append(v.Segments, sv)
		}
	case VariantCards:
		v.Cards = s.Cards
	case VariantVideo:
		v.Video = &VideoView{Src: s.Video.Src, Poster: s.Video.Poster}
		if v.Video.Poster == "" && s.Image != nil {
			v.Video.Poster = s.Image.Src
		}
	case VariantGeneric:
		if s.ImageButton != "" && s.Image != nil {
			v.Buttons = append(v.Buttons, ButtonView{
				Label:  s.ImageButton,
				Href:   s.Image.Src,
				Action: OpenImage(s.Image.Src, s.Image.Alt),
			})
		}
		if b := markdownButton(s.PromptButton, "Abrir Prompt"); b != nil {
			v.Buttons = append(v.Buttons, *b)
		}
		for _, l := range s.Links {
			title := l.Title
			if title == "" {
				title = l.Src
			}
			v.Buttons = append(v.Buttons, ButtonView{Label: title, Href: l.Src, Action: OpenExternal(l.Src, l.Title)})
		}
		v.Image = r.image(ctx, s.Image, true)
	}
	return v
}

func (r *Renderer) carousel(ctx context.Context, s *Slide, selected int) *CarouselView {
	items := s.Carousel.Items
	if selected < 0 || selected >= len(items) {
		selected = 0
	}
	cur := items[selected]
	cv := &CarouselView{
		Current: cur,
		Open:    OpenImage(cur.Src, cur.Alt),
		Prev:    Action{Kind: ActionCarouselPrev, Slide: s.ID},
		Next:    Action{Kind: ActionCarouselNext, Slide: s.ID},
		Missing: !r.exists(ctx, items[0].Src),
		Prompt:  markdownButton(s.Carousel.Prompt, "Ver Prompt Consolidado"),
	}
	if cv.Prompt != nil {
		cv.Prompt.Label = "Ver Prompt Consolidado"
	}
	for i, it := range items {
		cv.Items = append(cv.Items, CarouselItemView{
			CarouselItem: it,
			Active:       i == selected,
			Select:       Action{Kind: ActionCarouselSelect, Slide: s.ID, Index: i},
		})
	}
	return cv
}

func (r *Renderer) execute(name string, data interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := r.tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) RenderSlide(ctx context.Context, s *Slide, carousel int) (template.HTML, error) {
	v := r.View(ctx, s, carousel)
	out, err := r.execute("slide-"+v.Variant.String(), v)
	return template.HTML(out), err
}

type stageData struct {
	State      State
	SlideHTML  template.HTML
	Background string
}

func (r *Renderer) stage(ctx context.Context, st State) (*stageData, error) {
	slideHTML, err := r.RenderSlide(ctx, st.Slide, st.CarouselIndex)
	if err != nil {
		return nil, err
	}
	return &stageData{
		State:      st,
		SlideHTML:  slideHTML,
		Background: st.Slide.Background.Class(),
	}, nil
}

// RenderStage renders the dynamic part of the presentation page.
func (r *Renderer) RenderStage(ctx context.Context, st State) ([]byte, error) {
	data, err := r.stage(ctx, st)
	if err != nil {
		return nil, err
	}
	return r.execute("stage", data)
}

// RenderPresentation renders the whole presentation page for a state.
func (r *Renderer) RenderPresentation(ctx context.Context, st State) ([]byte, error) {
	data, err := r.stage(ctx, st)
	if err != nil {
		return nil, err
	}
	return r.execute("present", data)
}

func (r *Renderer) RenderLanding(page LandingPage) ([]byte, error) {
	return r.execute("landing", page)
}

type notesPage struct {
	Title string
	HTML  template.HTML
	Err   string
}

func (r *Renderer) RenderNotesPage(title string, notes template.HTML, errMsg string) ([]byte, error) {
	return r.execute("notes", notesPage{Title: title, HTML: notes, Err: errMsg})
}

func (r *Renderer) RenderIndex(title string) ([]byte, error) {
	return r.execute("index", struct{ Title, Version string }{title, Version})
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"op": func(kind string) string {
			return Action{Kind: ActionKind(kind)}.JSON()
		},
		"goto": func(i int) string {
			return Action{Kind: ActionGoto, Index: i}.JSON()
		},
	}
}

// DefaultRenderer parses the built-in templates.
func DefaultRenderer() *template.Template {
	var err error
	tmpl := template.New("main").Funcs(templateFuncs())
	tmpl.Delims("[[", "]]")
	for _, tmplStr := range []string{
		partialsTmpl, slideTmpls, overlayTmpls, stageTmpl,
		presentTmpl, landingTmpl, notesTmpl, indexTmpl, staticTmpls,
	} {
		tmpl, err = tmpl.Parse(tmplStr)
		if err != nil {
			panic(err)
		}
	}
	return tmpl
}
