package spacedeck

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
	pongWait     = pingInterval * 2
	shutdownWait = 15 * time.Second
)

// NotesPath is the public path of the presenter notes.
const NotesPath = "/notes/presenter_notes.md"

// PublicPrefixes are served straight from the public directory.
var PublicPrefixes = []string{"/prints/", "/media/", "/prompts/", "/docs/", "/notes/"}

type ServerOptions struct {
	Addr string
	// PublicDir is served under PublicPrefixes. Empty disables file serving.
	PublicDir string
	// Source backs probes and fetches. Defaults to a DirSource on PublicDir.
	Source    Source
	ProbePath string
	Log       logrus.FieldLogger
}

type PresentationServer struct {
	ctx        context.Context
	httpServer *http.Server
	router     *mux.Router
	renderer   *Renderer
	opts       ServerOptions
	log        logrus.FieldLogger
	wsUpgrader websocket.Upgrader

	deckLock *sync.RWMutex
	deck     *Deck

	sessionsLock *sync.Mutex
	sessions     map[string]*session
}

func NewPresentationServer(ctx context.Context, deck *Deck, opts ServerOptions) (*PresentationServer, error) {
	if deck == nil {
		return nil, ErrEmptyDeck
	}
	if opts.Source == nil {
		opts.Source = NewDirSource(opts.PublicDir)
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}

	p := &PresentationServer{
		ctx:          ctx,
		httpServer:   &http.Server{Addr: opts.Addr},
		renderer:     NewRenderer(opts.Source),
		opts:         opts,
		log:          opts.Log,
		wsUpgrader:   websocket.Upgrader{},
		deckLock:     &sync.RWMutex{},
		deck:         deck,
		sessionsLock: &sync.Mutex{},
		sessions:     map[string]*session{},
	}

	r := mux.NewRouter()
	r.Methods(http.MethodGet).Path("/").HandlerFunc(p.serveIndex)
	r.Methods(http.MethodGet).Path("/present").HandlerFunc(p.servePresent)
	r.Methods(http.MethodGet).Path("/landing").HandlerFunc(p.serveLanding)
	r.Methods(http.MethodGet).Path("/notes").HandlerFunc(p.serveNotes)
	r.Path("/ws").HandlerFunc(p.serveSocket)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", ServeStatic()))
	if opts.PublicDir != "" {
		files := http.FileServer(http.Dir(opts.PublicDir))
		for _, prefix := range PublicPrefixes {
			r.PathPrefix(prefix).Handler(files)
		}
	}
	p.router = r
	p.httpServer.Handler = r

	return p, nil
}

func (p *PresentationServer) Handler() http.Handler {
	return p.router
}

func (p *PresentationServer) Deck() *Deck {
	p.deckLock.RLock()
	defer p.deckLock.RUnlock()
	return p.deck
}

// Reload swaps the deck and tells every connected page to reload.
func (p *PresentationServer) Reload(deck *Deck) {
	p.deckLock.Lock()
	p.deck = deck
	p.deckLock.Unlock()

	p.sessionsLock.Lock()
	defer p.sessionsLock.Unlock()
	for _, s := range p.sessions {
		s.queue(wsMessage{Type: msgReload})
	}
	p.log.WithField("sessions", len(p.sessions)).Info("deck reloaded")
}

func (p *PresentationServer) writeHTML(w http.ResponseWriter, page []byte, err error) {
	if err != nil {
		p.log.WithError(err).Error("rendering page failed")
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (p *PresentationServer) serveIndex(w http.ResponseWriter, r *http.Request) {
	page, err := p.renderer.RenderIndex(p.Deck().Title)
	p.writeHTML(w, page, err)
}

// servePresent renders the first slide so the page is usable before the
// socket connects.
func (p *PresentationServer) servePresent(w http.ResponseWriter, r *http.Request) {
	ctrl := NewController(p.Deck(), ControllerOptions{})
	page, err := p.renderer.RenderPresentation(r.Context(), ctrl.State())
	p.writeHTML(w, page, err)
}

func (p *PresentationServer) serveLanding(w http.ResponseWriter, r *http.Request) {
	landing := BuildLanding(r.Context(), p.opts.Source)
	if landing.Err != "" {
		p.log.Warn(landing.Err)
	}
	page, err := p.renderer.RenderLanding(landing)
	p.writeHTML(w, page, err)
}

func (p *PresentationServer) serveNotes(w http.ResponseWriter, r *http.Request) {
	var errMsg string
	content, err := p.opts.Source.Fetch(r.Context(), NotesPath)
	if err == nil && LooksLikeHostDocument(content) {
		err = ErrAssetNotFound
	}
	if err != nil {
		p.log.WithError(err).WithField("src", NotesPath).Warn("presenter notes unavailable")
		errMsg = "Falha ao carregar " + NotesPath
		content = ""
	}
	page, err := p.renderer.RenderNotesPage("Notas do apresentador", RenderNotes([]byte(content)), errMsg)
	p.writeHTML(w, page, err)
}

func (p *PresentationServer) serveSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := p.wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		p.log.WithError(err).Debug("websocket upgrade failed")
		return
	}
	s := newSession(ws, p.renderer, p.log)
	s.ctrl = NewController(p.Deck(), ControllerOptions{
		Fullscreen: s,
		Source:     p.opts.Source,
		ProbePath:  p.opts.ProbePath,
		Log:        s.log,
	})

	p.sessionsLock.Lock()
	p.sessions[s.id] = s
	p.sessionsLock.Unlock()
	defer func() {
		p.sessionsLock.Lock()
		delete(p.sessions, s.id)
		p.sessionsLock.Unlock()
	}()

	s.run(p.ctx)
}

// Sessions returns the number of connected presentation pages.
func (p *PresentationServer) Sessions() int {
	p.sessionsLock.Lock()
	defer p.sessionsLock.Unlock()
	return len(p.sessions)
}

func (p *PresentationServer) Close() error {
	p.sessionsLock.Lock()
	for _, s := range p.sessions {
		s.close()
	}
	p.sessionsLock.Unlock()

	ctx, cancel := context.WithTimeout(p.ctx, shutdownWait)
	defer cancel()
	return p.httpServer.Shutdown(ctx)
}

func (p *PresentationServer) Run() {
	go func() {
		if err := p.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			p.log.WithError(err).Error("http server stopped")
		}
	}()
}
