package spacedeck

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"path"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Key names follow KeyboardEvent.key.
const (
	KeyLeft    = "ArrowLeft"
	KeyRight   = "ArrowRight"
	KeySpace   = " "
	KeyEscape  = "Escape"
	KeyZoomIn  = "+"
	KeyZoomOut = "-"
)

const (
	DefaultProbePath = "/prints/github.png"

	msgAssetsMissing = "Imagens não encontradas. Rode: spacedeck prepare"
)

var (
	ErrSlideOutOfRange = errors.New("slide index out of range")
	ErrUnknownAction   = errors.New("unknown action")
	ErrMarkdownPath    = errors.New("path outside the markdown directories")
	errNoSource        = errors.New("no asset source configured")
)

// MarkdownPrefixes are the public directories the markdown viewer reads from.
var MarkdownPrefixes = []string{"/prompts/", "/notes/"}

func markdownAllowed(src string) bool {
	clean := path.Clean("/" + src)
	for _, p := range MarkdownPrefixes {
		if strings.HasPrefix(clean, p) {
			return true
		}
	}
	return false
}

// FullscreenController is the host's fullscreen capability. The controller
// asks it to toggle and learns the actual state from the subscription.
type FullscreenController interface {
	Toggle() error
	Subscribe(fn func(active bool)) (unsubscribe func())
}

// ClipboardWriter is the host's clipboard capability.
type ClipboardWriter interface {
	WriteText(text string) error
}

type nopFullscreen struct{}

func (nopFullscreen) Toggle() error { return nil }

func (nopFullscreen) Subscribe(func(bool)) func() { return func() {} }

type ControllerOptions struct {
	Fullscreen FullscreenController
	Source     Source
	// ProbePath is checked once per mount; empty disables the probe.
	ProbePath string
	Log       logrus.FieldLogger
}

// State is a snapshot of the presentation for rendering.
type State struct {
	Title         string
	Index         int
	Total         int
	Slide         *Slide
	Titles        []string
	Overview      bool
	Fullscreen    bool
	Banner        string
	CarouselIndex int

	Markdown MarkdownOverlay
	Image    ImageOverlay
	Document DocumentOverlay
	External ExternalOverlay
}

func (s State) Position() int { return s.Index + 1 }
func (s State) First() bool   { return s.Index == 0 }
func (s State) Last() bool    { return s.Index == s.Total-1 }

// Controller holds the navigation and overlay state of one mounted
// presentation.
type Controller struct {
	deck      *Deck
	fs        FullscreenController
	src       Source
	probePath string
	log       logrus.FieldLogger

	mu          sync.Mutex
	idx         int
	overview    bool
	fullscreen  bool
	banner      string
	carousel    map[string]int
	markdown    MarkdownOverlay
	image       ImageOverlay
	document    DocumentOverlay
	external    ExternalOverlay
	onChange    func()
	ctx         context.Context
	cancel      context.CancelFunc
	mounted     bool
	unsubscribe func()

	wg sync.WaitGroup
}

func NewController(deck *Deck, opts ControllerOptions) *Controller {
	c := &Controller{
		deck:      deck,
		fs:        opts.Fullscreen,
		src:       opts.Source,
		probePath: opts.ProbePath,
		log:       opts.Log,
		carousel:  map[string]int{},
		ctx:       context.Background(),
		cancel:    func() {},
	}
	if c.fs == nil {
		c.fs = nopFullscreen{}
	}
	if c.log == nil {
		l := logrus.New()
		l.Out = ioutil.Discard
		c.log = l
	}
	return c
}

func (c *Controller) Deck() *Deck {
	return c.deck
}

// OnChange registers fn to run after every effective state change. fn runs
// without the controller lock held, possibly on a background goroutine.
func (c *Controller) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Controller) update(fn func() bool) bool {
	c.mu.Lock()
	changed := fn()
	notify := c.onChange
	c.mu.Unlock()
	if changed && notify != nil {
		notify()
	}
	return changed
}

// Mount subscribes to fullscreen changes and probes the asset directory once.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.banner = ""
	c.ctx, c.cancel = context.WithCancel(ctx)
	probeCtx := c.ctx
	c.mu.Unlock()

	unsubscribe := c.fs.Subscribe(c.FullscreenChanged)
	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()

	c.probeAssets(probeCtx)
}

// Unmount cancels background work, drops the fullscreen subscription and
// waits for in-flight fetches to finish.
func (c *Controller) Unmount() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	cancel, unsubscribe := c.cancel, c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	cancel()
	if unsubscribe != nil {
		unsubscribe()
	}
	c.wg.Wait()
}

// Wait blocks until background probes and fetches have been applied.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) context() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx
}

func (c *Controller) probeAssets(ctx context.Context) {
	if c.src == nil || c.probePath == "" {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if c.src.Exists(ctx, c.probePath) {
			return
		}
		c.log.WithField("path", c.probePath).Warn("presentation assets missing")
		c.update(func() bool {
			c.banner = msgAssetsMissing
			return true
		})
	}()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	slide := c.deck.Slide(c.idx)
	return State{
		Title:         c.deck.Title,
		Index:         c.idx,
		Total:         c.deck.Len(),
		Slide:         slide,
		Titles:        c.deck.Titles(),
		Overview:      c.overview,
		Fullscreen:    c.fullscreen,
		Banner:        c.banner,
		CarouselIndex: c.carousel[slide.ID],
		Markdown:      c.markdown,
		Image:         c.image,
		Document:      c.document,
		External:      c.external,
	}
}

func (c *Controller) Prev() {
	c.update(func() bool {
		if c.idx == 0 {
			return false
		}
		c.idx--
		return true
	})
}

func (c *Controller) Next() {
	c.update(func() bool {
		if c.idx >= c.deck.Len()-1 {
			return false
		}
		c.idx++
		return true
	})
}

// Goto jumps to slide i and closes the overview.
func (c *Controller) Goto(i int) error {
	if i < 0 || i >= c.deck.Len() {
		return fmt.Errorf("%w: %d", ErrSlideOutOfRange, i)
	}
	c.update(func() bool {
		c.idx = i
		c.overview = false
		return true
	})
	return nil
}

func (c *Controller) ToggleOverview() {
	c.update(func() bool {
		c.overview = !c.overview
		return true
	})
}

func (c *Controller) CloseOverview() {
	c.update(func() bool {
		if !c.overview {
			return false
		}
		c.overview = false
		return true
	})
}

// ToggleFullscreen asks the host to switch modes. The flag itself only
// changes when the host reports back through FullscreenChanged.
func (c *Controller) ToggleFullscreen() {
	if err := c.fs.Toggle(); err != nil {
		c.log.WithError(err).Warn("fullscreen toggle failed")
	}
}

func (c *Controller) FullscreenChanged(active bool) {
	c.update(func() bool {
		if c.fullscreen == active {
			return false
		}
		c.fullscreen = active
		return true
	})
}

func (c *Controller) DismissBanner() {
	c.update(func() bool {
		if c.banner == "" {
			return false
		}
		c.banner = ""
		return true
	})
}

// HandleKey applies a key press and reports whether the key is bound.
func (c *Controller) HandleKey(key string) bool {
	switch key {
	case KeyLeft:
		c.Prev()
	case KeyRight, KeySpace:
		c.Next()
	case "f", "F":
		c.ToggleFullscreen()
	case "o", "O":
		c.ToggleOverview()
	case KeyEscape:
		c.update(func() bool {
			changed := c.markdown.Open || c.image.Open
			if c.markdown.Open {
				c.markdown.close()
			}
			c.image = ImageOverlay{}
			return changed
		})
	case KeyZoomIn:
		c.ZoomIn()
	case KeyZoomOut:
		c.ZoomOut()
	default:
		return false
	}
	return true
}

func (c *Controller) OpenMarkdown(src, title string) {
	var gen uint64
	c.update(func() bool {
		gen = c.markdown.open(src, title)
		return true
	})
	if !markdownAllowed(src) {
		c.log.WithField("src", src).Warn("refusing markdown outside the markdown directories")
		c.update(func() bool { return c.markdown.resolve(gen, "", ErrMarkdownPath) })
		return
	}
	if c.src == nil {
		c.update(func() bool { return c.markdown.resolve(gen, "", errNoSource) })
		return
	}
	ctx := c.context()
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		content, err := c.src.Fetch(ctx, src)
		if err != nil {
			c.log.WithError(err).WithField("src", src).Warn("markdown fetch failed")
		}
		if !c.update(func() bool { return c.markdown.resolve(gen, content, err) }) {
			c.log.WithField("src", src).Debug("discarding stale markdown fetch")
		}
	}()
}

func (c *Controller) CloseMarkdown() {
	c.update(func() bool {
		if !c.markdown.Open {
			return false
		}
		c.markdown.close()
		return true
	})
}

func (c *Controller) ZoomIn() {
	c.update(c.markdown.zoomIn)
}

func (c *Controller) ZoomOut() {
	c.update(c.markdown.zoomOut)
}

func (c *Controller) OpenImage(src, alt string) {
	c.update(func() bool {
		c.image = ImageOverlay{Open: true, Src: src, Alt: alt}
		return true
	})
}

func (c *Controller) CloseImage() {
	c.update(func() bool {
		if !c.image.Open {
			return false
		}
		c.image = ImageOverlay{}
		return true
	})
}

func (c *Controller) OpenDocument(src, title string) {
	var gen uint64
	c.update(func() bool {
		gen = c.document.open(src, title)
		return true
	})
	if c.src == nil {
		c.update(func() bool { return c.document.resolve(gen, false) })
		return
	}
	ctx := c.context()
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		exists := c.src.Exists(ctx, src)
		if !exists {
			c.log.WithField("src", src).Warn("document missing")
		}
		c.update(func() bool { return c.document.resolve(gen, exists) })
	}()
}

func (c *Controller) CloseDocument() {
	c.update(func() bool {
		if !c.document.Open {
			return false
		}
		c.document.close()
		return true
	})
}

func (c *Controller) OpenExternal(url, title string) {
	c.update(func() bool {
		c.external = ExternalOverlay{Open: true, URL: url, Title: title}
		return true
	})
}

func (c *Controller) CloseExternal() {
	c.update(func() bool {
		if !c.external.Open {
			return false
		}
		c.external = ExternalOverlay{}
		return true
	})
}

func (c *Controller) carouselSize(slideID string) (int, error) {
	i, ok := c.deck.Lookup(slideID)
	if !ok {
		return 0, fmt.Errorf("unknown slide %q", slideID)
	}
	s := c.deck.Slide(i)
	if s.Carousel == nil {
		return 0, fmt.Errorf("slide %q has no carousel", slideID)
	}
	return len(s.Carousel.Items), nil
}

// CarouselStep moves the carousel of a slide by delta, wrapping around.
func (c *Controller) CarouselStep(slideID string, delta int) error {
	n, err := c.carouselSize(slideID)
	if err != nil {
		return err
	}
	c.update(func() bool {
		c.carousel[slideID] = ((c.carousel[slideID]+delta)%n + n) % n
		return true
	})
	return nil
}

func (c *Controller) CarouselSelect(slideID string, i int) error {
	n, err := c.carouselSize(slideID)
	if err != nil {
		return err
	}
	if i < 0 || i >= n {
		return fmt.Errorf("carousel item %d out of range", i)
	}
	c.update(func() bool {
		c.carousel[slideID] = i
		return true
	})
	return nil
}

// Dispatch applies an action raised by the rendered page.
func (c *Controller) Dispatch(a Action) error {
	switch a.Kind {
	case ActionOpenMarkdown:
		c.OpenMarkdown(a.Src, a.Title)
	case ActionOpenImage:
		c.OpenImage(a.Src, a.Title)
	case ActionOpenDocument:
		c.OpenDocument(a.Src, a.Title)
	case ActionOpenExternal:
		c.OpenExternal(a.Src, a.Title)
	case ActionCloseMarkdown:
		c.CloseMarkdown()
	case ActionCloseImage:
		c.CloseImage()
	case ActionCloseDocument:
		c.CloseDocument()
	case ActionCloseExternal:
		c.CloseExternal()
	case ActionZoomIn:
		c.ZoomIn()
	case ActionZoomOut:
		c.ZoomOut()
	case ActionPrev:
		c.Prev()
	case ActionNext:
		c.Next()
	case ActionGoto:
		return c.Goto(a.Index)
	case ActionToggleOverview:
		c.ToggleOverview()
	case ActionCloseOverview:
		c.CloseOverview()
	case ActionToggleFullscreen:
		c.ToggleFullscreen()
	case ActionDismissBanner:
		c.DismissBanner()
	case ActionCarouselPrev:
		return c.CarouselStep(a.Slide, -1)
	case ActionCarouselNext:
		return c.CarouselStep(a.Slide, 1)
	case ActionCarouselSelect:
		return c.CarouselSelect(a.Slide, a.Index)
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, a.Kind)
	}
	return nil
}
