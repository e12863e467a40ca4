// Package terminal presents a deck in the terminal, driving the same
// controller as the browser view.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/connctd/spacedeck"
)

type Options struct {
	Source    spacedeck.Source
	ProbePath string
	Clipboard spacedeck.ClipboardWriter
	Log       logrus.FieldLogger
	// AltScreen starts in fullscreen.
	AltScreen bool
	// Style is a glamour standard style name. Empty detects the terminal
	// background.
	Style string
}

type stateChangedMsg struct{}

type fullscreenRequestMsg struct{}

type Model struct {
	ctrl     *spacedeck.Controller
	views    *spacedeck.Renderer
	fs       *fullscreen
	clip     spacedeck.ClipboardWriter
	changes  chan struct{}
	style    string
	renderer *glamour.TermRenderer
	progress progress.Model
	viewport viewport.Model

	width   int
	height  int
	cursor  int
	slide   string
	view    spacedeck.SlideView
	state   spacedeck.State
	status  string
	lastDoc string
}

// NewModel wires a controller to a terminal model. The controller is not
// mounted.
func NewModel(deck *spacedeck.Deck, opts Options) Model {
	fs := newFullscreen(opts.AltScreen)
	changes := make(chan struct{}, 1)
	m := Model{
		fs:       fs,
		clip:     opts.Clipboard,
		changes:  changes,
		views:    spacedeck.NewRenderer(opts.Source),
		style:    opts.Style,
		progress: progress.New(progress.WithDefaultGradient()),
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
	m.ctrl = spacedeck.NewController(deck, spacedeck.ControllerOptions{
		Fullscreen: fs,
		Source:     opts.Source,
		ProbePath:  opts.ProbePath,
		Log:        opts.Log,
	})
	m.ctrl.OnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	m.renderer = m.newRenderer(76)
	m = m.refresh()
	return m
}

func (m Model) Controller() *spacedeck.Controller {
	return m.ctrl
}

func (m Model) newRenderer(wrap int) *glamour.TermRenderer {
	opt := glamour.WithAutoStyle()
	if m.style != "" {
		opt = glamour.WithStandardStyle(m.style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil
	}
	return r
}

func (m Model) markdown(src string) string {
	if m.renderer == nil {
		return src
	}
	out, err := m.renderer.Render(src)
	if err != nil {
		return "Error rendering markdown: " + err.Error()
	}
	return out
}

func waitFor(ch <-chan struct{}, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return msg
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitFor(m.changes, stateChangedMsg{}),
		waitFor(m.fs.requests, fullscreenRequestMsg{}),
		m.progress.SetPercent(m.percent()),
	)
}

func (m Model) percent() float64 {
	if m.state.Total == 0 {
		return 0
	}
	return float64(m.state.Position()) / float64(m.state.Total)
}

// refresh pulls the controller state and re-renders what changed.
func (m Model) refresh() Model {
	m.state = m.ctrl.State()
	m.view = m.views.View(context.Background(), m.state.Slide, m.state.CarouselIndex)
	m.slide = m.markdown(SlideMarkdown(m.view))

	md := m.state.Markdown
	doc := fmt.Sprintf("%s|%v|%s|%s", md.Src, md.Loading, md.Err, md.Content)
	if md.Open && doc != m.lastDoc {
		m.viewport.SetContent(m.markdown(md.Content))
		m.viewport.GotoTop()
	}
	m.lastDoc = doc
	if !md.Open {
		m.lastDoc = ""
	}
	return m
}

func keyName(msg tea.KeyMsg) string {
	switch msg.String() {
	case "left", "h":
		return spacedeck.KeyLeft
	case "right", "l":
		return spacedeck.KeyRight
	case " ":
		return spacedeck.KeySpace
	case "esc":
		return spacedeck.KeyEscape
	}
	return msg.String()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer = m.newRenderer(msg.Width - 4)
		m.progress.Width = msg.Width - 4
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		m.lastDoc = ""
		return m.refresh(), nil

	case stateChangedMsg:
		m = m.refresh()
		return m, tea.Batch(waitFor(m.changes, stateChangedMsg{}), m.progress.SetPercent(m.percent()))

	case fullscreenRequestMsg:
		active := !m.fs.Active()
		m.fs.set(active)
		screen := tea.ExitAltScreen
		if active {
			screen = tea.EnterAltScreen
		}
		return m, tea.Batch(screen, waitFor(m.fs.requests, fullscreenRequestMsg{}))

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}
	m.status = ""
	st := m.state

	switch {
	case st.Markdown.Open:
		switch key {
		case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case "y":
			return m.copy(), nil
		}
		m.ctrl.HandleKey(keyName(msg))
		return m.refresh(), nil

	case st.Image.Open || st.Document.Open || st.External.Open:
		switch key {
		case "esc":
			m.ctrl.HandleKey(spacedeck.KeyEscape)
			m.ctrl.CloseDocument()
			m.ctrl.CloseExternal()
		case "o", "O":
			m.cursor = st.Index
			m.ctrl.ToggleOverview()
		default:
			m.ctrl.HandleKey(keyName(msg))
		}
		return m.refresh(), nil

	case st.Overview:
		switch key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < st.Total-1 {
				m.cursor++
			}
		case "enter":
			m.ctrl.Goto(m.cursor)
		case "esc", "o", "O":
			m.ctrl.CloseOverview()
		}
		return m.refresh(), nil
	}

	switch key {
	case "o", "O":
		m.cursor = st.Index
		m.ctrl.ToggleOverview()
	case "enter":
		if a, ok := PrimaryAction(m.view); ok {
			m.ctrl.Dispatch(a)
		}
	case "[", "]":
		if st.Slide.Carousel != nil {
			delta := 1
			if key == "[" {
				delta = -1
			}
			m.ctrl.CarouselStep(st.Slide.ID, delta)
		}
	case "b":
		m.ctrl.DismissBanner()
	case "y":
		return m.copy(), nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.status = m.openReference(int(key[0] - '1'))
	default:
		m.ctrl.HandleKey(keyName(msg))
	}
	return m.refresh(), nil
}

func (m Model) openReference(i int) string {
	if i >= len(m.view.References) {
		return ""
	}
	ref := m.view.References[i]
	switch {
	case ref.Inert():
		return fmt.Sprintf("%s não tem link", ref.Path)
	case ref.NewTab():
		return fmt.Sprintf("Abrir no navegador: %s", ref.Href)
	}
	if err := m.ctrl.Dispatch(*ref.Action); err != nil {
		return err.Error()
	}
	return ""
}

func (m Model) copy() Model {
	if m.clip == nil {
		m.status = "Área de transferência indisponível"
		return m
	}
	text := m.state.Markdown.Content
	if !m.state.Markdown.Open || text == "" {
		paths := make([]string, 0, len(m.view.References))
		for _, r := range m.view.References {
			paths = append(paths, r.Path)
		}
		text = strings.Join(paths, "\n")
	}
	if text == "" {
		m.status = "Nada para copiar"
		return m
	}
	if err := m.clip.WriteText(text); err != nil {
		m.status = "Falha ao copiar: " + err.Error()
		return m
	}
	m.status = "Copiado"
	return m
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	bannerStyle = lipgloss.NewStyle().Background(lipgloss.Color("124")).Foreground(lipgloss.Color("15")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
)

func (m Model) body() string {
	st := m.state
	switch {
	case st.Markdown.Open:
		md := st.Markdown
		header := titleStyle.Render(md.DisplayTitle()) + fmt.Sprintf(" zoom %sx  (esc fecha, y copia)", md.ScaleString())
		switch {
		case md.Err != "":
			return header + "\n\n" + errorStyle.Render(md.Err)
		case md.Loading:
			return header + "\n\nCarregando…"
		}
		return header + "\n" + m.viewport.View()
	case st.Image.Open:
		return boxStyle.Render(fmt.Sprintf("%s\n\n%s", titleStyle.Render(st.Image.DisplayTitle()), st.Image.Src))
	case st.Document.Open:
		d := st.Document
		line := d.Src
		switch {
		case d.Loading:
			line = "Carregando…"
		case d.Missing:
			line = errorStyle.Render(fmt.Sprintf("Documento não encontrado (%s). Rode: spacedeck prepare", d.Src))
		}
		return boxStyle.Render(fmt.Sprintf("%s\n\n%s", titleStyle.Render(d.DisplayTitle()), line))
	case st.External.Open:
		return boxStyle.Render(fmt.Sprintf("%s\n\n%s", titleStyle.Render(st.External.DisplayTitle()), st.External.URL))
	case st.Overview:
		b := &strings.Builder{}
		b.WriteString(titleStyle.Render("Overview") + "\n\n")
		for i, t := range st.Titles {
			line := fmt.Sprintf("  %2d. %s", i+1, t)
			if i == m.cursor {
				line = cursorStyle.Render(fmt.Sprintf("> %2d. %s", i+1, t))
			}
			b.WriteString(line + "\n")
		}
		return b.String()
	}
	return m.slide
}

func (m Model) View() string {
	contentHeight := m.height - 2
	lines := strings.Split(strings.TrimRight(m.body(), "\n"), "\n")
	if contentHeight > 0 && len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}
	content := strings.Join(lines, "\n")
	if len(lines) < contentHeight {
		content += strings.Repeat("\n", contentHeight-len(lines))
	}

	left := fmt.Sprintf("Slide %d/%d", m.state.Position(), m.state.Total)
	right := m.state.Title
	if m.status != "" {
		right = m.status
	}
	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	statusStyle := lipgloss.NewStyle().
		Width(m.width).
		Background(lipgloss.Color("240")).
		Foreground(lipgloss.Color("15")).
		Padding(0, 1)
	status := statusStyle.Render(left + strings.Repeat(" ", gap) + right)
	if m.state.Banner != "" {
		status = bannerStyle.Width(m.width).Render(m.state.Banner + "  (b fecha)")
	}
	return content + "\n" + status + "\n" + m.progress.View()
}

// Run presents the deck until the user quits or ctx is done.
func Run(ctx context.Context, deck *spacedeck.Deck, opts Options) error {
	m := NewModel(deck, opts)
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	m.ctrl.Mount(ctx)
	defer m.ctrl.Unmount()
	m.ctrl.FullscreenChanged(opts.AltScreen)

	_, err := tea.NewProgram(m, programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
