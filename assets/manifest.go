// Package assets copies the files the presentation expects from a project
// repository into the public directory.
package assets

import "path"

// Entry maps a file in the repository to its public path. Both are slash
// separated and relative.
type Entry struct {
	Src string
	Dst string
}

func prints(names ...string) []Entry {
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, Entry{Src: "print_screens/" + n, Dst: "prints/" + n})
	}
	return out
}

func prompts(srcs ...string) []Entry {
	out := make([]Entry, 0, len(srcs))
	for _, s := range srcs {
		out = append(out, Entry{Src: s, Dst: "prompts/" + path.Base(s)})
	}
	return out
}

// DefaultManifest is the workshop asset list.
func DefaultManifest() []Entry {
	var m []Entry
	m = append(m, prints(
		"claude.png", "chatgpt.png", "gemini.png", "perplexity.png", "github.png",
		"veo3.png", "veo3-2.png", "capcut.png", "canva.png", "linkedin.png", "desafio.png",
	)...)
	m = append(m, Entry{Src: "projeto/apresentacao/video/30s.mp4", Dst: "media/30s.mp4"})
	for _, part := range []string{"part1.mp4", "part2.mp4", "part3.mp4", "part4.mp4"} {
		m = append(m, Entry{Src: "projeto/apresentacao/video/video_partes/" + part, Dst: "media/" + part})
	}
	m = append(m, prompts(
		"prompts/01-iniciacao/001_prompt_inicial_meta_projeto.md",
		"prompts/02-planejamento/002_analise_perfil_desafios_nasa.md",
		"prompts/02-planejamento/003_pesquisa_desafio_ai_ml.md",
		"prompts/03-desenvolvimento/004_prompts_multiplas_ias_research.md",
		"prompts/03-desenvolvimento/005_prompt_sintese_final_research.md",
		"prompts/03-desenvolvimento/prompts_prontos_para_executar.md",
		"projeto/apresentacao/slides/gamma_meta_projeto_prompt.md",
		"projeto/apresentacao/video/veo3_video_roteiro.md",
		"contexto/workshop-ia/recomendacoes_desafios_2025.md",
		"contexto/workshop-ia/contexto_completo_desafio_ai_ml.md",
		"contexto/workshop-ia/analise_release_workshop.md",
		"contexto/resultado-multi-ais/sintese_estrategica_final.md",
		"contexto/metodologia/guia_execucao_prompts.md",
		"projeto/apresentacao/mapa_narrativo_repo.md",
		"projeto/apresentacao/apresentacao_script_fala_workshop_ia.md",
		"projeto/apresentacao/demo_runbook_meta_projeto.md",
		"projeto/solucao/nasa_space_apps_exoplanet_ai_paper.md",
		"app/docs/architecture_overview.md",
		"app/tasks.md",
	)...)
	m = append(m,
		Entry{Src: "projeto/apresentacao/apresentacao_script_fala_workshop_ia.md", Dst: "notes/presenter_notes.md"},
		Entry{Src: "projeto/apresentacao/slides/NASA-Space-Apps-2025-AI-Solution-for-Exoplanet-Discovery.pdf", Dst: "docs/NASA-Space-Apps-2025-AI-Solution-for-Exoplanet-Discovery.pdf"},
		Entry{Src: "contexto/Resume_Achcar_Guilherme_07_2025.pdf", Dst: "docs/Resume_Achcar_Guilherme_07_2025.pdf"},
	)
	return m
}
