package spacedeck

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DocumentSpec names a prompt document shown on the landing page. File is
// looked up under /prompts/, Path is the repository path shown as caption.
type DocumentSpec struct {
	Title string
	File  string
	Path  string
}

// Document is a loaded DocumentSpec.
type Document struct {
	Title   string
	Path    string
	Content string
}

var LandingDocuments = []DocumentSpec{
	{Title: "Prompt Inicial — Meta Projeto", File: "001_prompt_inicial_meta_projeto.md", Path: "prompts/01-iniciacao/001_prompt_inicial_meta_projeto.md"},
	{Title: "Pesquisa do Desafio (AI/ML)", File: "003_pesquisa_desafio_ai_ml.md", Path: "prompts/02-planejamento/003_pesquisa_desafio_ai_ml.md"},
	{Title: "Prompts Multi‑IAs (Research)", File: "004_prompts_multiplas_ias_research.md", Path: "prompts/03-desenvolvimento/004_prompts_multiplas_ias_research.md"},
	{Title: "Síntese Final (Research)", File: "005_prompt_sintese_final_research.md", Path: "prompts/03-desenvolvimento/005_prompt_sintese_final_research.md"},
	{Title: "Slides (gamma.app)", File: "gamma_meta_projeto_prompt.md", Path: "projeto/apresentacao/slides/gamma_meta_projeto_prompt.md"},
	{Title: "Roteiro de Vídeo (Veo3)", File: "veo3_video_roteiro.md", Path: "projeto/apresentacao/video/veo3_video_roteiro.md"},
}

type Feature struct {
	Image string
	Alt   string
	Title string
	Text  string
}

type Stat struct {
	Value string
	Label string
}

var landingFeatures = []Feature{
	{"/prints/claude.png", "Claude", "Orquestração de Código", "Refino e integração entre camadas com agentes contextuais."},
	{"/prints/perplexity.png", "Perplexity", "Pesquisa com Fontes", "Coleta estruturada com evidências para corpus e RAG."},
	{"/prints/gemini.png", "Gemini", "Síntese Rápida", "Resumo e revisão com alternativas gratuitas quando possível."},
	{"/prints/veo3.png", "Veo3", "Mídia em Segundos", "Vídeos curtos com roteiro e pós‑produção integrada."},
}

var landingStats = []Stat{
	{"98%", "acurácia (proj.)"},
	{"60%", "menos dados"},
	{"80 ms", "latência de inferência"},
}

const featuredDocuments = 4

// DocumentError reports the landing document that failed to load. Its
// message is the one shown on the page.
type DocumentError struct {
	File string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("Falha ao carregar %s", e.File)
}

func (e *DocumentError) Unwrap() error { return e.Err }

type LandingPage struct {
	Docs []Document
	Err  string
}

func (l LandingPage) Featured() []Document {
	if len(l.Docs) <= featuredDocuments {
		return l.Docs
	}
	return l.Docs[:featuredDocuments]
}

func (l LandingPage) Rest() []Document {
	if len(l.Docs) <= featuredDocuments {
		return nil
	}
	return l.Docs[featuredDocuments:]
}

func (l LandingPage) Features() []Feature { return landingFeatures }

func (l LandingPage) Stats() []Stat { return landingStats }

// LoadDocuments fetches all specs concurrently. Either every document loads
// or none is returned.
func LoadDocuments(ctx context.Context, f Fetcher, specs []DocumentSpec) ([]Document, error) {
	docs := make([]Document, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			content, err := f.Fetch(gctx, "/prompts/"+spec.File)
			if err != nil {
				return &DocumentError{File: spec.File, Err: err}
			}
			if LooksLikeHostDocument(content) {
				return &DocumentError{File: spec.File, Err: ErrAssetNotFound}
			}
			docs[i] = Document{Title: spec.Title, Path: spec.Path, Content: content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// BuildLanding loads the landing documents and turns a failure into the
// page warning.
func BuildLanding(ctx context.Context, f Fetcher) LandingPage {
	docs, err := LoadDocuments(ctx, f, LandingDocuments)
	if err != nil {
		return LandingPage{Err: err.Error()}
	}
	return LandingPage{Docs: docs}
}
