package terminal

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connctd/spacedeck"
)

type memSource map[string]string

func (m memSource) Exists(ctx context.Context, p string) bool {
	_, ok := m[p]
	return ok
}

func (m memSource) Fetch(ctx context.Context, p string) (string, error) {
	c, ok := m[p]
	if !ok {
		return "", spacedeck.ErrAssetNotFound
	}
	return c, nil
}

type recordingClipboard struct {
	text string
}

func (r *recordingClipboard) WriteText(text string) error {
	r.text = text
	return nil
}

func testDeck(t *testing.T) *spacedeck.Deck {
	deck, err := spacedeck.NewDeck("Workshop", []spacedeck.Slide{
		{
			ID:         "intro",
			Title:      "Intro",
			Bullets:    []string{"Rode <code>spacedeck prepare</code>"},
			References: []string{"prompts/01/a.md", "prompts/*.md"},
		},
		{
			ID:    "gallery",
			Title: "Gallery",
			Carousel: &spacedeck.Carousel{Items: []spacedeck.CarouselItem{
				{Src: "/prints/a.png", Alt: "A"},
				{Src: "/prints/b.png", Alt: "B"},
			}},
		},
		{ID: "end", Title: "End"},
	})
	require.NoError(t, err)
	return deck
}

func newTestModel(t *testing.T, clip spacedeck.ClipboardWriter) Model {
	src := memSource{
		"/prompts/a.md": "# A\n\ncontent",
		"/prints/a.png": "png",
	}
	return NewModel(testDeck(t), Options{Source: src, Clipboard: clip, Style: "notty"})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.state.Index)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.state.Index)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 2, m.state.Index)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.state.Index)
	assert.Contains(t, m.View(), "Slide 3/3")
}

func TestOverviewCursor(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, runes("o"))
	require.True(t, m.state.Overview)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.state.Overview)
	assert.Equal(t, 2, m.state.Index)
}

func TestDigitOpensReference(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, runes("1"))
	m.ctrl.Wait()
	m = update(t, m, stateChangedMsg{})

	md := m.state.Markdown
	require.True(t, md.Open)
	assert.Equal(t, "/prompts/a.md", md.Src)
	assert.Equal(t, "# A\n\ncontent", md.Content)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.state.Markdown.Open)
	assert.Equal(t, 0, m.state.Index)

	m = update(t, m, runes("2"))
	assert.Contains(t, m.status, "não tem link")
	assert.False(t, m.state.Markdown.Open)
}

func TestCopy(t *testing.T) {
	clip := &recordingClipboard{}
	m := newTestModel(t, clip)

	m = update(t, m, runes("y"))
	assert.Equal(t, "prompts/01/a.md\nprompts/*.md", clip.text)

	m = update(t, m, runes("1"))
	m.ctrl.Wait()
	m = update(t, m, stateChangedMsg{})
	m = update(t, m, runes("y"))
	assert.Equal(t, "# A\n\ncontent", clip.text)
	assert.Equal(t, "Copiado", m.status)
}

func TestCarouselKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, runes("["))
	assert.Equal(t, 1, m.state.CarouselIndex)
	m = update(t, m, runes("]"))
	assert.Equal(t, 0, m.state.CarouselIndex)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.state.Image.Open)
	assert.Equal(t, "/prints/a.png", m.state.Image.Src)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.state.Image.Open)
}

func TestKeysPassThroughOpenOverlay(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.state.Image.Open)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.state.Index)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.state.Index)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 2, m.state.Index)

	m = update(t, m, runes("f"))
	select {
	case <-m.fs.requests:
	default:
		t.Fatal("expected a fullscreen request")
	}

	m.ctrl.OpenExternal("https://gamma.app", "Gamma")
	m = update(t, m, runes("o"))
	assert.True(t, m.state.Overview)
	assert.Equal(t, 2, m.cursor)
}

func TestFullscreenRoundTrip(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, runes("f"))
	select {
	case <-m.fs.requests:
	default:
		t.Fatal("expected a fullscreen request")
	}
	assert.False(t, m.ctrl.State().Fullscreen)

	m.ctrl.Mount(context.Background())
	defer m.ctrl.Unmount()
	m = update(t, m, fullscreenRequestMsg{})
	assert.True(t, m.fs.Active())
	assert.True(t, m.ctrl.State().Fullscreen)
}

func TestSlideMarkdown(t *testing.T) {
	deck := testDeck(t)
	v := spacedeck.NewRenderer(nil).View(context.Background(), deck.Slide(0), 0)
	out := SlideMarkdown(v)
	assert.Contains(t, out, "# Intro")
	assert.Contains(t, out, "- Rode `spacedeck prepare`")
	assert.Contains(t, out, "- [1] `prompts/01/a.md`")
	assert.Contains(t, out, "- `prompts/*.md`")
}
