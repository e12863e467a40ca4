package terminal

import (
	"sync"

	"github.com/atotto/clipboard"
)

// fullscreen maps the controller's fullscreen capability to the terminal's
// alternate screen. Toggle requests are picked up by the program loop.
type fullscreen struct {
	mu       sync.Mutex
	active   bool
	subs     map[int]func(bool)
	next     int
	requests chan struct{}
}

func newFullscreen(active bool) *fullscreen {
	return &fullscreen{
		active:   active,
		subs:     map[int]func(bool){},
		requests: make(chan struct{}, 1),
	}
}

func (f *fullscreen) Toggle() error {
	select {
	case f.requests <- struct{}{}:
	default:
	}
	return nil
}

func (f *fullscreen) Subscribe(fn func(active bool)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.next
	f.next++
	f.subs[id] = fn
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *fullscreen) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

func (f *fullscreen) set(active bool) {
	f.mu.Lock()
	f.active = active
	fns := make([]func(bool), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(active)
	}
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
