package spacedeck

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSlideID = errors.New("duplicate slide id")
	ErrEmptyDeck        = errors.New("deck has no slides")
	ErrAmbiguousBody    = errors.New("slide declares more than one bespoke body")
)

type Layout int

const (
	LayoutContent Layout = iota
	LayoutCover
	LayoutImageRight
	LayoutImageFull
)

var layoutNames = map[Layout]string{
	LayoutContent:    "content",
	LayoutCover:      "cover",
	LayoutImageRight: "imageRight",
	LayoutImageFull:  "imageFull",
}

func (l Layout) String() string {
	return layoutNames[l]
}

func ParseLayout(s string) (Layout, error) {
	if s == "" {
		return LayoutContent, nil
	}
	for l, name := range layoutNames {
		if name == s {
			return l, nil
		}
	}
	return LayoutContent, fmt.Errorf("unknown layout %q", s)
}

func (l *Layout) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseLayout(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

type Background int

const (
	BackgroundGradient Background = iota
	BackgroundStars
	BackgroundGrid
)

var backgroundNames = map[Background]string{
	BackgroundGradient: "gradient",
	BackgroundStars:    "stars",
	BackgroundGrid:     "grid",
}

func (b Background) String() string {
	return backgroundNames[b]
}

// Class is the CSS class of the presentation container for this background.
func (b Background) Class() string {
	return "bg-" + b.String()
}

func ParseBackground(s string) (Background, error) {
	if s == "" {
		return BackgroundGradient, nil
	}
	for b, name := range backgroundNames {
		if name == s {
			return b, nil
		}
	}
	return BackgroundGradient, fmt.Errorf("unknown background %q", s)
}

func (b *Background) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseBackground(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

type Image struct {
	Src       string `yaml:"src"`
	Alt       string `yaml:"alt"`
	Recommend string `yaml:"recommend"`
}

type Video struct {
	Src    string `yaml:"src"`
	Poster string `yaml:"poster"`
}

type Card struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Icon  string `yaml:"icon"`
}

// Link is a titled asset reference, used for prompt buttons and bespoke bodies.
type Link struct {
	Src   string `yaml:"src"`
	Title string `yaml:"title"`
}

type CarouselItem struct {
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
}

type Carousel struct {
	Items  []CarouselItem `yaml:"items"`
	Prompt *Link          `yaml:"prompt"`
}

// DocumentBody is a PDF shown as the slide body.
type DocumentBody struct {
	Src   string `yaml:"src"`
	Title string `yaml:"title"`
	Label string `yaml:"label"`
}

type Segment struct {
	Src   string `yaml:"src"`
	Label string `yaml:"label"`
}

type Segments struct {
	Items  []Segment `yaml:"items"`
	Script *Link     `yaml:"script"`
}

// DefaultSegments are the four video parts copied by the preparation step.
var DefaultSegments = []Segment{
	{Src: "/media/part1.mp4", Label: "Parte 1"},
	{Src: "/media/part2.mp4", Label: "Parte 2"},
	{Src: "/media/part3.mp4", Label: "Parte 3"},
	{Src: "/media/part4.mp4", Label: "Parte 4"},
}

type Slide struct {
	ID           string     `yaml:"id"`
	Title        string     `yaml:"title"`
	Subtitle     string     `yaml:"subtitle"`
	Body         string     `yaml:"body"`
	Bullets      []string   `yaml:"bullets"`
	References   []string   `yaml:"references"`
	Image        *Image     `yaml:"image"`
	ImageButton  string     `yaml:"image_button"`
	Video        *Video     `yaml:"video"`
	Cards        []Card     `yaml:"cards"`
	PromptButton *Link      `yaml:"prompt_button"`
	// Links are external pages opened in the embedded viewer.
	Links        []Link     `yaml:"links"`
	Layout       Layout     `yaml:"layout"`
	Background   Background `yaml:"background"`

	// Bespoke bodies. At most one is set.
	Placeholder string        `yaml:"placeholder"`
	Carousel    *Carousel     `yaml:"carousel"`
	Document    *DocumentBody `yaml:"document"`
	Segments    *Segments     `yaml:"segments"`
}

func (s *Slide) bespokeBodies() int {
	n := 0
	if s.Placeholder != "" {
		n++
	}
	if s.Carousel != nil {
		n++
	}
	if s.Document != nil {
		n++
	}
	if s.Segments != nil {
		n++
	}
	return n
}

// Variant is the closed set of slide layouts the renderer knows how to draw.
type Variant int

const (
	VariantGeneric Variant = iota
	VariantCover
	VariantImageRight
	VariantImageFull
	VariantPlaceholder
	VariantCarousel
	VariantDocument
	VariantSegments
	VariantCards
	VariantVideo
)

var variantNames = [...]string{
	VariantGeneric:     "generic",
	VariantCover:       "cover",
	VariantImageRight:  "image-right",
	VariantImageFull:   "image-full",
	VariantPlaceholder: "placeholder",
	VariantCarousel:    "carousel",
	VariantDocument:    "document",
	VariantSegments:    "segments",
	VariantCards:       "cards",
	VariantVideo:       "video",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "generic"
}

// Classify picks the variant for a slide. The first match wins.
func Classify(s *Slide) Variant {
	switch {
	case s.Layout == LayoutCover:
		return VariantCover
	case s.Layout == LayoutImageRight:
		return VariantImageRight
	case s.Layout == LayoutImageFull && s.Image != nil:
		return VariantImageFull
	case s.Placeholder != "":
		return VariantPlaceholder
	case s.Carousel != nil:
		return VariantCarousel
	case s.Document != nil:
		return VariantDocument
	case s.Segments != nil:
		return VariantSegments
	case len(s.Cards) > 0:
		return VariantCards
	case s.Video != nil:
		return VariantVideo
	}
	return VariantGeneric
}

type Deck struct {
	Title  string
	Slides []Slide

	index map[string]int
}

// NewDeck validates the slides and indexes them by id.
func NewDeck(title string, slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}
	d := &Deck{
		Title:  title,
		Slides: slides,
		index:  make(map[string]int, len(slides)),
	}
	for i := range slides {
		s := &slides[i]
		if s.ID == "" {
			return nil, fmt.Errorf("slide %d: missing id", i+1)
		}
		if prev, exists := d.index[s.ID]; exists {
			return nil, fmt.Errorf("slide %d: %w %q (first used by slide %d)", i+1, ErrDuplicateSlideID, s.ID, prev+1)
		}
		if s.bespokeBodies() > 1 {
			return nil, fmt.Errorf("slide %q: %w", s.ID, ErrAmbiguousBody)
		}
		if s.Segments != nil && len(s.Segments.Items) == 0 {
			s.Segments.Items = append([]Segment(nil), DefaultSegments...)
		}
		if s.Carousel != nil && len(s.Carousel.Items) == 0 {
			return nil, fmt.Errorf("slide %q: carousel without items", s.ID)
		}
		d.index[s.ID] = i
	}
	return d, nil
}

func (d *Deck) Len() int {
	return len(d.Slides)
}

func (d *Deck) Slide(i int) *Slide {
	return &d.Slides[i]
}

// Lookup returns the position of the slide with the given id.
func (d *Deck) Lookup(id string) (int, bool) {
	i, ok := d.index[id]
	return i, ok
}

func (d *Deck) Titles() []string {
	titles := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		titles[i] = s.Title
	}
	return titles
}
