package spacedeck

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	msgKey              = "key"
	msgAction           = "action"
	msgFullscreenChange = "fullscreenchange"
	msgState            = "state"
	msgFullscreen       = "fullscreen"
	msgReload           = "reload"

	maxMessageSize = 64 * 1024
	queueSize      = 16
)

// wsMessage is the envelope of the control channel in both directions.
type wsMessage struct {
	Type   string  `json:"type"`
	Key    string  `json:"key,omitempty"`
	Action *Action `json:"action,omitempty"`
	Active bool    `json:"active,omitempty"`
	HTML   string  `json:"html,omitempty"`
}

// session is one mounted presentation page. It owns a controller and acts
// as its fullscreen capability by relaying requests to the page.
type session struct {
	id       string
	conn     *websocket.Conn
	ctrl     *Controller
	renderer *Renderer
	log      logrus.FieldLogger

	out   chan wsMessage
	dirty chan struct{}

	subsLock *sync.Mutex
	subs     map[int]func(bool)
	nextSub  int

	closeOnce sync.Once
}

func newSession(conn *websocket.Conn, renderer *Renderer, log logrus.FieldLogger) *session {
	id := uuid.New().String()
	return &session{
		id:       id,
		conn:     conn,
		renderer: renderer,
		log:      log.WithField("session", id),
		out:      make(chan wsMessage, queueSize),
		dirty:    make(chan struct{}, 1),
		subsLock: &sync.Mutex{},
		subs:     map[int]func(bool){},
	}
}

// Toggle asks the page to enter or leave fullscreen.
func (s *session) Toggle() error {
	s.queue(wsMessage{Type: msgFullscreen})
	return nil
}

func (s *session) Subscribe(fn func(active bool)) func() {
	s.subsLock.Lock()
	defer s.subsLock.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subsLock.Lock()
		delete(s.subs, id)
		s.subsLock.Unlock()
	}
}

func (s *session) fullscreenChanged(active bool) {
	s.subsLock.Lock()
	fns := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsLock.Unlock()
	for _, fn := range fns {
		fn(active)
	}
}

func (s *session) queue(msg wsMessage) {
	select {
	case s.out <- msg:
	default:
		s.log.WithField("type", msg.Type).Warn("send queue full, dropping message")
	}
}

// markDirty schedules a state push. Pending pushes collapse into one.
func (s *session) markDirty() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

func (s *session) run(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	s.log.Info("presentation mounted")
	s.ctrl.OnChange(s.markDirty)
	s.ctrl.Mount(ctx)
	s.markDirty()

	written := make(chan struct{})
	go func() {
		defer close(written)
		s.writePump(ctx)
	}()

	s.readPump(ctx)
	cancel()
	s.ctrl.Unmount()
	<-written
	s.close()
	s.log.Info("presentation unmounted")
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		s.conn.Close()
	})
}

func (s *session) readPump(ctx context.Context) {
	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		msg := wsMessage{}
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.WithError(err).Warn("control channel closed")
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
		s.handle(msg)
	}
}

func (s *session) handle(msg wsMessage) {
	switch msg.Type {
	case msgKey:
		if !s.ctrl.HandleKey(msg.Key) {
			s.log.WithField("key", msg.Key).Debug("unbound key")
		}
	case msgAction:
		if msg.Action == nil {
			s.log.Debug("action message without action")
			return
		}
		if err := s.ctrl.Dispatch(*msg.Action); err != nil {
			s.log.WithError(err).WithField("action", msg.Action.String()).Warn("action rejected")
		}
	case msgFullscreenChange:
		s.fullscreenChanged(msg.Active)
	default:
		s.log.WithField("type", msg.Type).Debug("unknown message type")
	}
}

func (s *session) write(msg wsMessage) error {
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(msg)
}

// writePump is the only writer of the connection.
func (s *session) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer s.close()
	for {
		select {
		case <-ctx.Done():
			s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case <-s.dirty:
			html, err := s.renderer.RenderStage(ctx, s.ctrl.State())
			if err != nil {
				s.log.WithError(err).Error("rendering state failed")
				continue
			}
			if err := s.write(wsMessage{Type: msgState, HTML: string(html)}); err != nil {
				s.log.WithError(err).Debug("state write failed")
				return
			}
		case msg := <-s.out:
			if err := s.write(msg); err != nil {
				s.log.WithError(err).Debug("write failed")
				return
			}
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeWait)); err != nil {
				s.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
