package spacedeck

import (
	"encoding/json"
	"fmt"
)

type ActionKind string

const (
	ActionOpenMarkdown ActionKind = "open-markdown"
	ActionOpenImage    ActionKind = "open-image"
	ActionOpenDocument ActionKind = "open-pdf"
	ActionOpenExternal ActionKind = "open-external"

	ActionCloseMarkdown ActionKind = "close-markdown"
	ActionCloseImage    ActionKind = "close-image"
	ActionCloseDocument ActionKind = "close-pdf"
	ActionCloseExternal ActionKind = "close-external"

	ActionZoomIn  ActionKind = "zoom-in"
	ActionZoomOut ActionKind = "zoom-out"

	ActionPrev             ActionKind = "prev"
	ActionNext             ActionKind = "next"
	ActionGoto             ActionKind = "goto"
	ActionToggleOverview   ActionKind = "toggle-overview"
	ActionCloseOverview    ActionKind = "close-overview"
	ActionToggleFullscreen ActionKind = "toggle-fullscreen"
	ActionDismissBanner    ActionKind = "dismiss-banner"

	ActionCarouselPrev   ActionKind = "carousel-prev"
	ActionCarouselNext   ActionKind = "carousel-next"
	ActionCarouselSelect ActionKind = "carousel-select"
)

// Action is a user intent raised by the rendered page: the open-* hooks of
// slides and references, navigation buttons and overlay controls.
type Action struct {
	Kind  ActionKind `json:"kind"`
	Src   string     `json:"src,omitempty"`
	Title string     `json:"title,omitempty"`
	Slide string     `json:"slide,omitempty"`
	Index int        `json:"index,omitempty"`
}

// JSON is the encoded form embedded in data-op attributes.
func (a Action) JSON() string {
	buf, err := json.Marshal(a)
	if err != nil {
		return "{}"
	}
	return string(buf)
}

func (a Action) String() string {
	if a.Src != "" {
		return fmt.Sprintf("%s(%s)", a.Kind, a.Src)
	}
	return string(a.Kind)
}

func OpenMarkdown(src, title string) Action {
	return Action{Kind: ActionOpenMarkdown, Src: src, Title: title}
}

func OpenImage(src, alt string) Action {
	return Action{Kind: ActionOpenImage, Src: src, Title: alt}
}

func OpenDocument(src, title string) Action {
	return Action{Kind: ActionOpenDocument, Src: src, Title: title}
}

func OpenExternal(url, title string) Action {
	return Action{Kind: ActionOpenExternal, Src: url, Title: title}
}
