// ============================================================================
// ecmarkdown - Markup Rendering Toolkit
// ============================================================================
//
// Package:     explorer
// Description: Bubbletea model for browsing the tokens, tree and HTML
//              of one ecmarkdown source
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	"github.com/msto63/ecmarkdown/foundation/utils/stringx"
	"github.com/msto63/ecmarkdown/internal/render"
)

// View selects what the content panel shows
type View int

const (
	ViewHTML View = iota
	ViewTree
	ViewTokens
	ViewNonTerminals
)

var viewTitles = [...]string{
	ViewHTML:         "HTML",
	ViewTree:         "Tree",
	ViewTokens:       "Tokens",
	ViewNonTerminals: "Nonterminals",
}

func (v View) String() string {
	return viewTitles[v]
}

// Config holds explorer configuration
type Config struct {
	// Path is the file to explore. When empty, Source is shown and
	// watching is disabled.
	Path   string
	Source string
	Name   string

	Service *render.Service

	// WatchInterval enables watching the file. Changes arrive as file
	// system events; when no watcher can be created the file is polled
	// at this interval. Zero disables watching.
	WatchInterval time.Duration
}

// Model is the main Bubbletea model for the explorer
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	loading  bool
	watching bool
	err      error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Document state
	view    View
	doc     *Document
	modTime time.Time

	// Watch state. watcher is nil when polling.
	watcher  *fileWatcher
	watchGen int

	cfg Config
}

// New creates a new explorer model
func New(cfg Config) Model {
	if cfg.Service == nil {
		cfg.Service = render.NewService(render.DefaultConfig(), nil)
	}
	if cfg.Name == "" {
		cfg.Name = stringx.FirstNonBlank(cfg.Path, "<stdin>")
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	m := Model{
		spinner:  sp,
		loading:  true,
		watching: cfg.Path != "" && cfg.WatchInterval > 0,
		cfg:      cfg,
	}
	if m.watching {
		if fw, err := newFileWatcher(cfg.Path); err == nil {
			m.watcher = fw
		}
	}
	return m
}

// Close stops the file watcher. It is safe to call more than once.
func (m Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.load,
		m.tick(),
		m.waitForChange(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 5 // title panel + tab bar
		footerHeight := 2 // status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.doc = msg.doc
			m.modTime = msg.modTime
		}
		m.updateViewportContent()

	case tickMsg:
		if m.watching && msg.gen == m.watchGen {
			cmds = append(cmds, m.checkChanged, m.tick())
		}

	case fileEventMsg:
		if m.watching && msg.err == nil {
			cmds = append(cmds, m.checkChanged)
		}
		cmds = append(cmds, m.waitForChange())

	case changedMsg:
		if msg.changed && !m.loading {
			m.loading = true
			cmds = append(cmds, m.spinner.Tick, m.load)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Close()
		return m, tea.Quit

	case tea.KeyTab:
		return m.switchView((m.view + 1) % View(len(viewTitles))), nil

	case tea.KeyShiftTab:
		return m.switchView((m.view + View(len(viewTitles)) - 1) % View(len(viewTitles))), nil

	case tea.KeyRunes:
		switch key := string(msg.Runes); key {
		case "q":
			m.Close()
			return m, tea.Quit

		case "1", "2", "3", "4":
			n, _ := strconv.Atoi(key)
			return m.switchView(View(n - 1)), nil

		case "r":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.load)

		case "w":
			if m.cfg.Path == "" || m.cfg.WatchInterval <= 0 {
				return m, nil
			}
			m.watching = !m.watching
			m.watchGen++
			return m, m.tick()

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

func (m Model) switchView(v View) Model {
	m.view = v
	m.updateViewportContent()
	m.viewport.GotoTop()
	return m
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading explorer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	mode := string(m.cfg.Service.Config().Mode)
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render(m.cfg.Name+" ("+mode+")"),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderTabBar() string {
	tabs := make([]string, len(viewTitles))
	for i, title := range viewTitles {
		tabs[i] = RenderTab(fmt.Sprintf("%d %s", i+1, title), View(i) == m.view)
	}
	return TabBarStyle.Width(m.width - 2).Render(strings.Join(tabs, " "))
}

func (m Model) renderContent() string {
	style := PanelStyle
	if m.err != nil || (m.doc != nil && m.doc.Err != nil && m.view != ViewTokens) {
		style = ErrorPanelStyle
	}
	return style.Width(m.width - 2).Height(m.viewport.Height).Render(m.viewport.View())
}

func (m Model) renderStatusBar() string {
	var left string
	if m.doc != nil {
		left = HelpDescStyle.Render(fmt.Sprintf("%d tokens  %d nonterminals",
			len(m.doc.Tokens), len(m.doc.NonTerminals)))
	}

	var right string
	switch {
	case m.loading:
		right = m.spinner.View() + " Loading..."
	case m.err != nil:
		right = ErrorStyle.Render("read failed")
	case m.doc != nil && m.doc.Err != nil:
		right = ErrorStyle.Render("syntax error")
	case m.doc != nil && m.doc.Cached:
		right = StatusOKStyle.Render("ok (cached)")
	default:
		right = StatusOKStyle.Render("ok")
	}
	if m.watching {
		right = StatusWatchStyle.Render("watching") + "  " + right
	}

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if space < 2 {
		space = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", space) + right)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-4/Tab", "View"),
		RenderKeyHint("r", "Reload"),
	}
	if m.cfg.Path != "" && m.cfg.WatchInterval > 0 {
		items = append(items, RenderKeyHint("w", "Watch"))
	}
	items = append(items,
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	)
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent fills the viewport for the current view
func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	if m.err != nil {
		return ErrorStyle.Render("error: ") + m.err.Error()
	}
	if m.doc == nil {
		return ""
	}
	if m.doc.Err != nil && m.view != ViewTokens {
		return m.renderSyntaxError()
	}

	switch m.view {
	case ViewHTML:
		return m.doc.HTML
	case ViewTree:
		return m.doc.Tree
	case ViewTokens:
		return m.renderTokens()
	case ViewNonTerminals:
		if len(m.doc.NonTerminals) == 0 {
			return HelpDescStyle.Render("no nonterminals referenced")
		}
		return strings.Join(m.doc.NonTerminals, "\n")
	}
	return ""
}

func (m Model) renderTokens() string {
	var b strings.Builder
	for i, tok := range m.doc.Tokens {
		contents := strconv.Quote(stringx.Truncate(tok.Contents, 40, "..."))
		b.WriteString(PositionStyle.Render(fmt.Sprintf("%-8s", m.doc.Positions[i])))
		b.WriteString(" ")
		b.WriteString(TokenTypeStyle.Render(fmt.Sprintf("%-12s", tok.Type)))
		b.WriteString(" ")
		b.WriteString(contents)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSyntaxError() string {
	se := m.doc.Err

	var b strings.Builder
	b.WriteString(ErrorStyle.Render("error: "))
	b.WriteString(se.Message)
	b.WriteString("\n")
	b.WriteString(PositionStyle.Render(fmt.Sprintf("at %s:%d:%d", m.doc.Name, se.Line, se.Column)))
	b.WriteString("\n\n")

	if line, ok := sourceLine(m.doc.Source, se.Line); ok {
		col := se.Column - 1
		if col > len(line) {
			col = len(line)
		}
		if col < 0 {
			col = 0
		}
		b.WriteString(stringx.ExpandTabs(line, 4))
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", len([]rune(stringx.ExpandTabs(line[:col], 4)))))
		b.WriteString(CaretStyle.Render("^"))
		b.WriteString("\n")
	}
	return b.String()
}

// load reads and analyzes the source
func (m Model) load() tea.Msg {
	src := m.cfg.Source
	var modTime time.Time

	if m.cfg.Path != "" {
		info, err := os.Stat(m.cfg.Path)
		if err != nil {
			return loadedMsg{err: readError(err, m.cfg.Path)}
		}
		data, err := os.ReadFile(m.cfg.Path)
		if err != nil {
			return loadedMsg{err: readError(err, m.cfg.Path)}
		}
		src = string(data)
		modTime = info.ModTime()
	}

	doc, err := Analyze(context.Background(), m.cfg.Service, m.cfg.Name, src)
	return loadedMsg{doc: doc, modTime: modTime, err: err}
}

// checkChanged compares the file modification time with the loaded one
func (m Model) checkChanged() tea.Msg {
	info, err := os.Stat(m.cfg.Path)
	if err != nil {
		return changedMsg{}
	}
	return changedMsg{modTime: info.ModTime(), changed: !info.ModTime().Equal(m.modTime)}
}

// tick schedules the next poll when no watcher is available
func (m Model) tick() tea.Cmd {
	if !m.watching || m.watcher != nil {
		return nil
	}
	gen := m.watchGen
	return tea.Tick(m.cfg.WatchInterval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

// waitForChange waits for the next file event. It is re-armed after
// every event and stays armed while watching is toggled off.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.wait()
}

func readError(err error, path string) error {
	code := mderror.CodeIO
	if os.IsNotExist(err) {
		code = mderror.CodeNotFound
	}
	return mderror.Wrap(err, "failed to read source").
		WithCode(code).
		WithOperation("explorer.load").
		WithDetail("path", path)
}

// Run starts the explorer TUI
func Run(cfg Config, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	m := New(cfg)
	defer m.Close()

	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}
