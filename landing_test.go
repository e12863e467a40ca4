package spacedeck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func landingFiles() map[string]string {
	files := map[string]string{}
	for _, d := range LandingDocuments {
		files["/prompts/"+d.File] = "# " + d.Title
	}
	return files
}

func TestLoadDocuments(t *testing.T) {
	docs, err := LoadDocuments(context.Background(), newMemSource(landingFiles()), LandingDocuments)
	require.NoError(t, err)
	require.Len(t, docs, 6)
	for i, d := range docs {
		assert.Equal(t, LandingDocuments[i].Title, d.Title)
		assert.Equal(t, LandingDocuments[i].Path, d.Path)
		assert.Equal(t, "# "+d.Title, d.Content)
	}

	page := LandingPage{Docs: docs}
	assert.Len(t, page.Featured(), 4)
	assert.Len(t, page.Rest(), 2)
}

func TestLoadDocumentsAllOrNothing(t *testing.T) {
	files := landingFiles()
	delete(files, "/prompts/veo3_video_roteiro.md")

	docs, err := LoadDocuments(context.Background(), newMemSource(files), LandingDocuments)
	assert.Nil(t, docs)
	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, "veo3_video_roteiro.md", docErr.File)
	assert.True(t, errors.Is(err, ErrAssetNotFound))

	page := BuildLanding(context.Background(), newMemSource(files))
	assert.Empty(t, page.Docs)
	assert.Equal(t, "Falha ao carregar veo3_video_roteiro.md", page.Err)
}

func TestLoadDocumentsRejectsHostDocument(t *testing.T) {
	files := landingFiles()
	files["/prompts/003_pesquisa_desafio_ai_ml.md"] = "<!DOCTYPE html><html></html>"
	page := BuildLanding(context.Background(), newMemSource(files))
	assert.Equal(t, "Falha ao carregar 003_pesquisa_desafio_ai_ml.md", page.Err)
}

func TestLandingPageShortList(t *testing.T) {
	page := LandingPage{Docs: []Document{{Title: "a"}}}
	assert.Len(t, page.Featured(), 1)
	assert.Nil(t, page.Rest())
}
