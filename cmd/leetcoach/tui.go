package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leetcoach/client/catalog"
	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/judge"
	"github.com/leetcoach/client/present"
	"github.com/leetcoach/client/session"
)

type tab int

const (
	tabProblems tab = iota
	tabEditor
	tabResults
	tabSolutions
	tabChat
)

var tabNames = []string{"Problems", "Editor", "Results", "Solutions", "Chat"}

type model struct {
	app   *app
	tab   tab
	snap  session.Snapshot
	watch <-chan session.Snapshot

	deck        []domain.Problem
	cursor      int
	loadingDeck bool
	picking     bool

	editor    textarea.Model
	chatInput textinput.Model
	spinner   spinner.Model
	// scrollable body of the results and solutions tabs
	pane viewport.Model

	// sends in flight; input stays disabled while non-zero
	chatPending int

	solution        *domain.Solution
	solutionFor     string
	loadingSol      bool
	feedback        *domain.Feedback
	loadingFeedback bool

	status string
	err    error
	width  int
	height int
}

func newModel(a *app) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	ed := textarea.New()
	ed.ShowLineNumbers = true
	ed.Placeholder = "Select a problem to start coding"
	ed.SetWidth(80)
	ed.SetHeight(16)

	ti := textinput.New()
	ti.Placeholder = "Ask the coach about your approach..."
	ti.Prompt = "> "
	ti.CharLimit = 2000
	ti.Width = 70
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9b59b6"))

	return model{
		app:         a,
		tab:         tabProblems,
		snap:        a.store.Snapshot(),
		watch:       a.watch(),
		editor:      ed,
		chatInput:   ti,
		spinner:     s,
		pane:        viewport.New(80, 16),
		loadingDeck: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.watch), m.app.randomize(), m.spinner.Tick)
}

func (m model) busy() bool {
	return m.loadingDeck || m.picking || m.app.orch.Running() || m.app.orch.Submitting() ||
		m.chatPending > 0 || m.loadingSol || m.loadingFeedback
}

func (m model) focusTab(t tab) (model, tea.Cmd) {
	if m.tab != t {
		m.pane.GotoTop()
	}
	m.tab = t
	m.editor.Blur()
	m.chatInput.Blur()
	switch t {
	case tabEditor:
		return m, m.editor.Focus()
	case tabChat:
		if m.chatPending == 0 {
			return m, m.chatInput.Focus()
		}
	}
	return m, nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	nm := next.(model)
	nm.pane.SetContent(nm.paneContent())
	return nm, cmd
}

func (m model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if msg.Width > 4 {
			m.editor.SetWidth(msg.Width - 4)
		}
		if msg.Height > 12 {
			m.editor.SetHeight(msg.Height - 12)
		}
		if msg.Width > 2 && msg.Height > 8 {
			m.pane.Width = msg.Width - 2
			m.pane.Height = msg.Height - 8
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		snap := session.Snapshot(msg)
		if snap.Version > m.snap.Version {
			m.snap = snap
		}
		m.syncEditor()
		return m, waitForSnapshot(m.watch)

	case deckMsg:
		m.loadingDeck = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "Failed to load problems"
			return m, nil
		}
		m.deck = msg.problems
		m.cursor = 0
		m.status = fmt.Sprintf("Loaded %d problems", len(m.deck))
		return m, nil

	case pickedMsg:
		m.picking = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "Problem unavailable, showing a placeholder"
		} else {
			m.err = nil
			m.status = "Loaded " + msg.problem.Title
		}
		p := msg.problem
		m.app.orch.SelectProblem(&p)
		m.feedback = nil
		m.syncEditor()
		return m.focusTab(tabEditor)

	case runDoneMsg:
		m.status, m.err = dispatchStatus("Run", judge.Dispatch(msg))
		if msg.Status == judge.Dispatched && !msg.Stale {
			m.tab = tabResults
		}
		return m, nil

	case submitDoneMsg:
		m.status, m.err = dispatchStatus("Submission", judge.Dispatch(msg))
		if msg.Status == judge.Dispatched && msg.Err == nil && !msg.Stale {
			m.feedback = nil
			m.tab = tabResults
		}
		return m, nil

	case chatDoneMsg:
		m.chatPending--
		if msg.Err != nil {
			m.err = msg.Err
		}
		if m.chatPending == 0 && m.tab == tabChat {
			return m, m.chatInput.Focus()
		}
		return m, nil

	case solutionMsg:
		m.loadingSol = false
		if msg.err != nil {
			m.err = msg.err
			m.solution = nil
			return m, nil
		}
		sol := msg.solution
		m.solution = &sol
		m.solutionFor = msg.submissionID
		return m, nil

	case feedbackMsg:
		m.loadingFeedback = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		fb := msg.feedback
		m.feedback = &fb
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		return m.focusTab((m.tab + 1) % tab(len(tabNames)))
	case "shift+tab":
		return m.focusTab((m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames)))
	}

	switch m.tab {
	case tabProblems:
		return m.problemsKey(msg)
	case tabEditor:
		return m.editorKey(msg)
	case tabResults:
		return m.resultsKey(msg)
	case tabSolutions:
		return m.solutionsKey(msg)
	case tabChat:
		return m.chatKey(msg)
	}
	return m, nil
}

// numberTab handles the digit shortcuts on tabs without text entry.
func (m model) numberTab(key string) (model, tea.Cmd, bool) {
	if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(tabNames) {
		nm, cmd := m.focusTab(tab(key[0] - '1'))
		return nm, cmd, true
	}
	return m, nil, false
}

func (m model) problemsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if nm, cmd, ok := m.numberTab(msg.String()); ok {
		return nm, cmd
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.deck)-1 {
			m.cursor++
		}
	case "r":
		if !m.loadingDeck {
			m.loadingDeck = true
			m.status = "Randomizing problems..."
			return m, tea.Batch(m.app.randomize(), m.spinner.Tick)
		}
	case "enter":
		if m.picking || len(m.deck) == 0 {
			return m, nil
		}
		m.picking = true
		card := catalog.CardOf(m.deck[m.cursor])
		m.status = "Loading " + card.Title + "..."
		return m, tea.Batch(m.app.pick(card), m.spinner.Tick)
	}
	return m, nil
}

func (m model) editorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		if m.app.orch.Running() {
			return m, nil
		}
		m.status = "Running..."
		return m, tea.Batch(m.app.run(), m.spinner.Tick)
	case "ctrl+s":
		if m.app.orch.Submitting() {
			return m, nil
		}
		m.status = "Submitting..."
		return m, tea.Batch(m.app.submit(), m.spinner.Tick)
	case "ctrl+l":
		next := domain.LangPython
		if m.app.store.SelectedLanguage() == domain.LangPython {
			next = domain.LangCpp
		}
		m.app.orch.SwitchLanguage(next)
		m.syncEditor()
		m.status = "Language: " + present.LanguageLabel(next)
		return m, nil
	case "esc":
		return m.focusTab(tabProblems)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != m.app.store.Code() {
		m.app.orch.Edit(m.editor.Value())
	}
	return m, cmd
}

func (m model) resultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if nm, cmd, ok := m.numberTab(msg.String()); ok {
		return nm, cmd
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "f":
		sub := m.snap.CurrentSubmission
		if sub == nil || m.loadingFeedback {
			return m, nil
		}
		m.loadingFeedback = true
		return m, tea.Batch(m.app.generateFeedback(sub.ID), m.spinner.Tick)
	}
	return m.scroll(msg)
}

func (m model) solutionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if nm, cmd, ok := m.numberTab(msg.String()); ok {
		return nm, cmd
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "l":
		if m.loadingSol {
			return m, nil
		}
		m.loadingSol = true
		return m, tea.Batch(m.app.loadSolution(m.app.store.Snapshot()), m.spinner.Tick)
	}
	return m.scroll(msg)
}

func (m model) scroll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.pane.SetContent(m.paneContent())
	var cmd tea.Cmd
	m.pane, cmd = m.pane.Update(msg)
	return m, cmd
}

func (m model) chatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.focusTab(tabProblems)
	case "ctrl+x":
		m.app.relay.Clear()
		return m, nil
	case "enter":
		if m.chatPending > 0 {
			return m, nil
		}
		text := m.chatInput.Value()
		m.chatInput.Reset()
		m.chatPending++
		m.chatInput.Blur()
		return m, tea.Batch(m.app.sendChat(text), m.spinner.Tick)
	}
	if m.chatPending > 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// syncEditor pulls the buffer from the store when it was changed by
// something other than typing, e.g. a problem or language switch.
func (m *model) syncEditor() {
	code := m.app.store.Code()
	if m.editor.Value() != code {
		m.editor.SetValue(code)
	}
}

func dispatchStatus(what string, d judge.Dispatch) (string, error) {
	switch {
	case d.Status == judge.Skipped:
		return what + " skipped: select a problem and write some code first", nil
	case d.Status == judge.Busy:
		return what + " already in progress", nil
	case d.Stale:
		return what + " finished for a previous problem, result discarded", nil
	case d.Err != nil:
		return what + " failed", d.Err
	}
	return what + " finished", nil
}
