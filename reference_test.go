package spacedeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReference(t *testing.T) {
	cases := []struct {
		path string
		href string
		kind ActionKind
	}{
		{"prompts/01-iniciacao/001_prompt.md", "/prompts/001_prompt.md", ActionOpenMarkdown},
		{"notes/todo.TXT", "/prompts/todo.TXT", ActionOpenMarkdown},
		{"print_screens/claude.PNG", "/prints/claude.PNG", ActionOpenImage},
		{"img/photo.jpeg", "/prints/photo.jpeg", ActionOpenImage},
		{"projeto/slides/deck.pdf", "/docs/deck.pdf", ActionOpenDocument},
		{"video.mp4", "/media/video.mp4", ""},
		{"prompts/*.md", "", ""},
		{"app/main.go", "", ""},
		{"README", "", ""},
		{"https://gamma.app/docs/meta", "https://gamma.app/docs/meta", ActionOpenExternal},
		{"HTTP://example.com/slides.pdf", "HTTP://example.com/slides.pdf", ActionOpenExternal},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			ref := ResolveReference(c.path)
			assert.Equal(t, c.path, ref.Path)
			assert.Equal(t, c.href, ref.Href)
			if c.kind == "" {
				assert.Nil(t, ref.Action)
				return
			}
			require.NotNil(t, ref.Action)
			assert.Equal(t, c.kind, ref.Action.Kind)
			assert.Equal(t, c.href, ref.Action.Src)
		})
	}
}

func TestReferenceModes(t *testing.T) {
	assert.True(t, ResolveReference("prompts/*.md").Inert())
	assert.False(t, ResolveReference("prompts/*.md").NewTab())
	assert.True(t, ResolveReference("media/demo.mp4").NewTab())
	assert.False(t, ResolveReference("a.md").NewTab())
	assert.False(t, ResolveReference("https://gamma.app").NewTab())
	assert.Nil(t, ResolveReferences(nil))
}
