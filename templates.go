package spacedeck

var partialsTmpl = `
[[ define "head" ]]<!DOCTYPE html>
<html lang="pt-BR">
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>[[ . ]]</title>
		<link rel="stylesheet" href="/static/present.css">
	</head>
[[ end ]]

[[ define "bullets" ]][[ if . ]]
<ul class="slide-bullets">
	[[ range . ]]<li>[[ . ]]</li>
	[[ end ]]
</ul>
[[ end ]][[ end ]]

[[ define "image" ]][[ if .Missing ]]
<div class="image-fallback">Imagem sugerida: [[ .Recommend ]]</div>
[[ else if .Zoomable ]]
<img class="zoomable" src="[[ .Src ]]" alt="[[ .Alt ]]" data-op="[[ .Zoom.JSON ]]">
[[ else ]]
<img src="[[ .Src ]]" alt="[[ .Alt ]]">
[[ end ]][[ end ]]

[[ define "button" ]]<a class="btn" href="[[ .Href ]]" data-op="[[ .Action.JSON ]]">[[ .Label ]]</a>[[ end ]]

[[ define "refs" ]][[ if . ]]
<div class="slide-refs">
	<strong>Referências (repo):</strong>
	<ul>
	[[ range . ]]
		<li>
		[[ if .Inert ]]<span class="ref-chip inert"><code>[[ .Path ]]</code></span>
		[[ else if .NewTab ]]<a class="ref-chip" href="[[ .Href ]]" target="_blank" rel="noreferrer"><code>[[ .Path ]]</code></a>
		[[ else ]]<a class="ref-chip" href="[[ .Href ]]" title="Abrir" data-op="[[ .Action.JSON ]]"><code>[[ .Path ]]</code></a>
		[[ end ]]
		</li>
	[[ end ]]
	</ul>
</div>
[[ end ]][[ end ]]

[[ define "heading" ]]
<h2 class="slide-title">[[ .Title ]]</h2>
[[ if .Subtitle ]]<h3 class="slide-subtitle">[[ .Subtitle ]]</h3>[[ end ]]
[[ end ]]
`

var slideTmpls = `
[[ define "slide-cover" ]]
<div class="slide slide-cover">
	<div class="cover-text">
		<h1 class="slide-title">[[ .Title ]]</h1>
		[[ if .Subtitle ]]<h3 class="slide-subtitle">[[ .Subtitle ]]</h3>[[ end ]]
		[[ template "bullets" .Bullets ]]
	</div>
	[[ with .Image ]]<div class="cover-image">[[ template "image" . ]]</div>[[ end ]]
	[[ template "refs" .References ]]
</div>
[[ end ]]

[[ define "slide-image-right" ]]
<div class="slide slide-split">
	<div class="split-left">
		[[ template "heading" . ]]
		[[ if .Body ]]<p class="slide-body">[[ .Body ]]</p>[[ end ]]
		[[ template "bullets" .Bullets ]]
		[[ template "refs" .References ]]
	</div>
	<div class="split-right">[[ with .Image ]][[ template "image" . ]][[ end ]]</div>
</div>
[[ end ]]

[[ define "slide-image-full" ]]
<div class="slide slide-image-full">
	[[ template "image" .Image ]]
	<div class="image-caption">
		<h2>[[ .Title ]]</h2>
		[[ if .Subtitle ]]<p>[[ .Subtitle ]]</p>[[ end ]]
	</div>
	[[ template "refs" .References ]]
</div>
[[ end ]]

[[ define "slide-placeholder" ]]
<div class="slide">
	<h2 class="slide-title">[[ .Title ]]</h2>
	<div class="card"><p>[[ .Placeholder ]]</p></div>
	[[ template "refs" .References ]]
</div>
[[ end ]]

[[ define "slide-carousel" ]]
<div class="slide">
	<h2 class="slide-title">[[ .Title ]]</h2>
	[[ with .Carousel ]]
	<div class="carousel">
		<div class="carousel-stage">
			<button class="nav" data-op="[[ .Prev.JSON ]]">&lsaquo;</button>
			<div class="frame zoomable" data-op="[[ .Open.JSON ]]">
				<img src="[[ .Current.Src ]]" alt="[[ .Current.Alt ]]">
				[[ if .Current.Caption ]]<div class="caption">[[ .Current.Caption ]]</div>[[ end ]]
			</div>
			<button class="nav" data-op="[[ .Next.JSON ]]">&rsaquo;</button>
		</div>
		<div class="dots">
			[[ range .Items ]]<button class="dot[[ if .Active ]] active[[ end ]]" title="[[ .Alt ]]" data-op="[[ .Select.JSON ]]"></button>[[ end ]]
		</div>
		[[ if .Missing ]]<div class="present-toast">Imagens não encontradas. Rode: spacedeck prepare</div>[[ end ]]
	</div>
	[[ with .Prompt ]]<div class="carousel-actions">[[ template "button" . ]]</div>[[ end ]]
	[[ end ]]
	[[ template "refs" .References ]]
</div>
[[ end ]]

[[ define "slide-document" ]]
<div class="slide">
	<h2 class="slide-title">[[ .Title ]]</h2>
	[[ template "bullets" .Bullets ]]
	<div class="card card-action">[[ template "button" .Document ]]</div>
	[[ template "refs" .References ]]
</div>
[[ end ]]

[[ define "slide-segments" ]]
<div class="slide">
	<h2 class="slide-title">[[ .Title ]]</h2>
	<div class="segments">
		<div class="segments-grid">
		[[ range .Segments ]]
			<div class="segment-card">
				<div class="seg-header">
					<div class="seg-title">[[ .Label ]]</div>
					[[ with .Script ]]<a class="seg-prompt" href="[[ .Href ]]" data-op="[[ .Action.JSON ]]">[[ .Label ]]</a>[[ end ]]
				</div>
				[[ if .Available ]]
				<video controls preload="metadata"><source src="[[ .Src ]]" type="video/mp4"></video>
				[[ else ]]
				<div class="image-fallback">Arquivo não encontrado ([[ .Src ]]). Rode: spacedeck prepare</div>
				[[ end ]]
			</div>
		[[ end ]]
		</div>
	</div>
	[[ template "refs" .References ]]
</div>
[[ end ]]

[[ define "slide-cards" ]]
<div class="slide">
	<h2 class="slide-title">[[ .Title ]]</h2>
	<div class="card-grid">
	[[ range .Cards ]]
		<div class="card-pro">
			[[ if .Icon ]]<div class="card-icn" aria-hidden="true">[[ .Icon ]]</div>[[ end ]]
			<div class="card-ttl">[[ .Title ]]</div>
			<div class="card-txt">[[ .Text ]]</div>
		</div>
	[[ end ]]
	</div>
	[[ template "refs" .References ]]
</div>
[[ end ]]

[[ define "slide-video" ]]
<div class="slide">
	[[ template "heading" . ]]
	<div class="slide-video">
		<video controls preload="metadata"[[ if .Video.Poster ]] poster="[[ .Video.Poster ]]"[[ end ]]>
			<source src="[[ .Video.Src ]]" type="video/mp4">
		</video>
	</div>
	[[ template "bullets" .Bullets ]]
	[[ template "refs" .References ]]
</div>
[[ end ]]

[[ define "slide-generic" ]]
<div class="slide">
	[[ template "heading" . ]]
	[[ if .Body ]]<p class="slide-body">[[ .Body ]]</p>[[ end ]]
	[[ template "bullets" .Bullets ]]
	[[ range .Buttons ]]<div class="card card-action">[[ template "button" . ]]</div>[[ end ]]
	[[ with .Image ]]<div class="slide-image">[[ template "image" . ]]</div>[[ end ]]
	[[ template "refs" .References ]]
</div>
[[ end ]]
`

var overlayTmpls = `
[[ define "overlay-markdown" ]][[ if .Open ]]
<div class="overlay" data-op="[[ op "close-markdown" ]]">
	<div class="overlay-card" data-stop>
		<div class="overlay-header">
			<div class="title">[[ .DisplayTitle ]]</div>
			<div class="actions">
				<button data-op="[[ op "zoom-out" ]]">-</button>
				<button data-op="[[ op "zoom-in" ]]">+</button>
				<button data-op="[[ op "close-markdown" ]]">Fechar</button>
			</div>
		</div>
		[[ if .Err ]]
		<div class="prompt-error">[[ .Err ]]</div>
		[[ else if .Loading ]]
		<div class="overlay-body">Carregando…</div>
		[[ else ]]
		<div class="overlay-body" style="transform: scale([[ .ScaleString ]]); transform-origin: 0 0">
			<div class="markdown">[[ .HTML ]]</div>
		</div>
		[[ end ]]
	</div>
</div>
[[ end ]][[ end ]]

[[ define "overlay-image" ]][[ if .Open ]]
<div class="overlay-fullimg" data-op="[[ op "close-image" ]]">
	<div class="fullimg-bar" data-stop>
		<div class="title">[[ .DisplayTitle ]]</div>
		<button class="btn" data-op="[[ op "close-image" ]]">Fechar</button>
	</div>
	<img class="fullimg-image" src="[[ .Src ]]" alt="[[ .Alt ]]" data-stop>
</div>
[[ end ]][[ end ]]

[[ define "overlay-document" ]][[ if .Open ]]
<div class="overlay" data-op="[[ op "close-pdf" ]]">
	<div class="overlay-card" data-stop>
		<div class="overlay-header">
			<div class="title">[[ .DisplayTitle ]]</div>
			<div class="actions">
				<a class="btn" href="[[ .Src ]]" target="_blank" rel="noreferrer">Abrir em nova aba</a>
				<button class="btn" data-op="[[ op "close-pdf" ]]">Fechar</button>
			</div>
		</div>
		<div class="overlay-body overlay-embed">
		[[ if .Loading ]]
			Carregando…
		[[ else if .Missing ]]
			<div class="prompt-error">Documento não encontrado ([[ .Src ]]). Rode: spacedeck prepare</div>
		[[ else ]]
			<object data="[[ .Src ]]" type="application/pdf" width="100%" height="100%">
				<div class="embed-fallback">
					Não foi possível embutir o PDF. <a href="[[ .Src ]]" target="_blank" rel="noreferrer">Clique aqui</a> para abrir em nova aba.
				</div>
			</object>
		[[ end ]]
		</div>
	</div>
</div>
[[ end ]][[ end ]]

[[ define "overlay-external" ]][[ if .Open ]]
<div class="overlay" data-op="[[ op "close-external" ]]">
	<div class="overlay-card" data-stop>
		<div class="overlay-header">
			<div class="title">[[ .DisplayTitle ]]</div>
			<div class="actions">
				<a class="btn" href="[[ .URL ]]" target="_blank" rel="noreferrer">Abrir em nova aba</a>
				<button class="btn" data-op="[[ op "close-external" ]]">Fechar</button>
			</div>
		</div>
		<div class="overlay-body overlay-embed">
			<iframe src="[[ .URL ]]" title="[[ .DisplayTitle ]]"></iframe>
			<div class="embed-hint">Se o site bloquear a incorporação, use “Abrir em nova aba”.</div>
		</div>
	</div>
</div>
[[ end ]][[ end ]]

[[ define "overview" ]]
<div class="overlay" data-op="[[ op "close-overview" ]]">
	<div class="overlay-card" data-stop>
		<div class="overlay-header">
			<div class="title">Overview</div>
			<button data-op="[[ op "close-overview" ]]">Fechar</button>
		</div>
		<div class="overview-grid">
		[[ range $i, $t := .Titles ]]
			<button class="thumb[[ if eq $i $.Index ]] active[[ end ]]" data-op="[[ goto $i ]]"><div class="thumb-title">[[ $t ]]</div></button>
		[[ end ]]
		</div>
	</div>
</div>
[[ end ]]
`

var stageTmpl = `
[[ define "stage" ]]
<div class="present-container [[ .Background ]][[ if .State.Fullscreen ]] is-full[[ end ]]">
	<header class="present-header">
		<div class="brand">[[ .State.Title ]]</div>
		<nav class="present-nav">
			<button class="btn" data-op="[[ op "toggle-overview" ]]">Overview</button>
			<button class="btn" data-op="[[ op "toggle-fullscreen" ]]">Tela cheia</button>
			<a href="/landing">Landing</a>
		</nav>
	</header>
	<main class="present-main">
		[[ .SlideHTML ]]
	</main>
	<footer class="present-footer">
		<div class="progress">[[ .State.Position ]] / [[ .State.Total ]]</div>
		<div class="controls">
			<button data-op="[[ op "prev" ]]"[[ if .State.First ]] disabled[[ end ]]>&larr; Anterior</button>
			<button data-op="[[ op "next" ]]"[[ if .State.Last ]] disabled[[ end ]]>Próximo &rarr;</button>
		</div>
		<div class="tip">Dica: use ← → ou espaço para navegar</div>
	</footer>
	[[ with .State.Banner ]]
	<div class="present-toast" role="status">[[ . ]] <button class="toast-close" data-op="[[ op "dismiss-banner" ]]">&times;</button></div>
	[[ end ]]
	[[ if .State.Overview ]][[ template "overview" .State ]][[ end ]]
	[[ template "overlay-markdown" .State.Markdown ]]
	[[ template "overlay-document" .State.Document ]]
	[[ template "overlay-external" .State.External ]]
	[[ template "overlay-image" .State.Image ]]
</div>
[[ end ]]
`

var presentTmpl = `
[[ define "present" ]][[ template "head" .State.Title ]]
	<body>
		<div id="root" data-socket="/ws">
			[[ template "stage" . ]]
		</div>
		<script src="/static/present.js"></script>
	</body>
</html>
[[ end ]]
`

var landingTmpl = `
[[ define "code-block" ]]
<div class="code-block">
	<div class="code-block-header">
		<span>[[ .Title ]]</span>
		<button data-copy>Copiar</button>
	</div>
	<pre><code>[[ .Content ]]</code></pre>
	<div class="code-block-path">[[ .Path ]]</div>
</div>
[[ end ]]

[[ define "landing" ]][[ template "head" "IA de Ponta a Ponta" ]]
	<body>
	<div class="landing">
		<header class="landing-header">
			<div class="brand">IA de Ponta a Ponta</div>
			<nav>
				<a href="/">App</a>
				<a href="/present">Slider</a>
			</nav>
		</header>

		<section class="hero">
			<div class="hero-text">
				<h1>Do Prompt ao Produto</h1>
				<p>Uma jornada real de desenvolvimento guiada por IAs — do raciocínio aos entregáveis. Prompts versionados, decisões rastreáveis e integração contínua.</p>
				<div class="hero-ctas">
					<a class="btn primary" href="/present">Ver Slider</a>
					<a class="btn" href="/media/30s.mp4" target="_blank">Ver Vídeo 30s</a>
				</div>
			</div>
			<div class="hero-art"><img src="/prints/github.png" alt="Repo"></div>
		</section>

		<section class="features">
		[[ range .Features ]]
			<div class="feature">
				<img src="[[ .Image ]]" alt="[[ .Alt ]]">
				<h3>[[ .Title ]]</h3>
				<p>[[ .Text ]]</p>
			</div>
		[[ end ]]
		</section>

		<section class="prompts">
			<div class="prompts-header">
				<h2>Prompts que movem o projeto</h2>
				<p>Todos versionados, com contexto e rastreabilidade.</p>
			</div>
			[[ with .Err ]]<div class="warn">[[ . ]]</div>[[ end ]]
			<div class="prompt-grid">[[ range .Featured ]][[ template "code-block" . ]][[ end ]]</div>
			<div class="prompt-grid full">[[ range .Rest ]][[ template "code-block" . ]][[ end ]]</div>
		</section>

		<section class="stats">
		[[ range .Stats ]]<div class="stat"><div class="num">[[ .Value ]]</div><div class="label">[[ .Label ]]</div></div>[[ end ]]
		</section>

		<section class="cta">
			<h2>Prontos para o Hackathon</h2>
			<p>Forme o time, siga as 5 fases e foque na demo. Em 48 horas é possível.</p>
			<div class="hero-ctas">
				<a class="btn primary" href="/present">Abrir Apresentação</a>
				<a class="btn" href="/prompts/001_prompt_inicial_meta_projeto.md" target="_blank">Ver Prompt Inicial</a>
			</div>
		</section>

		<footer class="landing-footer">
			<div>Workshop IA & Dados — NASA Space Apps SJRP 2025</div>
			<div><a href="/">Voltar ao app</a></div>
		</footer>
	</div>
	<script src="/static/present.js"></script>
	</body>
</html>
[[ end ]]
`

var notesTmpl = `
[[ define "notes" ]][[ template "head" .Title ]]
	<body>
		<div class="notes">
			<header class="landing-header"><div class="brand">[[ .Title ]]</div><nav><a href="/present">Slider</a></nav></header>
			[[ if .Err ]]<div class="warn">[[ .Err ]]</div>[[ else ]]<article class="markdown">[[ .HTML ]]</article>[[ end ]]
		</div>
	</body>
</html>
[[ end ]]
`

var indexTmpl = `
[[ define "index" ]][[ template "head" .Title ]]
	<body>
		<div class="landing">
			<header class="landing-header">
				<div class="brand">[[ .Title ]]</div>
				<nav>
					<a href="/present">Abrir modo apresentação</a>
					<a href="/landing">Abrir landing</a>
					<a href="/notes">Notas do apresentador</a>
				</nav>
			</header>
			<footer class="landing-footer"><div>spacedeck [[ .Version ]]</div></footer>
		</div>
	</body>
</html>
[[ end ]]
`

var staticTmpls = `
[[ define "static-head" ]]<!DOCTYPE html>
<html lang="pt-BR">
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>[[ . ]]</title>
		<link rel="stylesheet" href="static/present.css">
	</head>
[[ end ]]

[[ define "static-slide" ]][[ template "static-head" .Title ]]
	<body>
		<div class="present-container [[ .Background ]]">
			<header class="present-header">
				<div class="brand">[[ .Title ]]</div>
				<nav class="present-nav"><a class="btn" href="index.html">Overview</a></nav>
			</header>
			<main class="present-main">
				[[ .SlideHTML ]]
			</main>
			<footer class="present-footer">
				<div class="progress">[[ .Position ]] / [[ .Total ]]</div>
				<div class="controls">
					[[ if .PrevHref ]]<a class="btn" href="[[ .PrevHref ]]">&larr; Anterior</a>[[ end ]]
					[[ if .NextHref ]]<a class="btn" href="[[ .NextHref ]]">Próximo &rarr;</a>[[ end ]]
				</div>
			</footer>
		</div>
	</body>
</html>
[[ end ]]

[[ define "static-index" ]][[ template "static-head" .Title ]]
	<body>
		<div class="present-container bg-gradient">
			<header class="present-header"><div class="brand">[[ .Title ]]</div></header>
			<main class="present-main">
				<div class="overview-grid">
				[[ range .Pages ]]
					<a class="thumb" href="[[ .Href ]]"><div class="thumb-title">[[ .Title ]]</div></a>
				[[ end ]]
				</div>
			</main>
		</div>
	</body>
</html>
[[ end ]]
`
