package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leetcoach/client/gate"
	"github.com/leetcoach/client/present"
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e056fd")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95a5a6")).Padding(0, 1)
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db")).Bold(true)
)

func (m model) View() string {
	var b strings.Builder

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = inactiveTabStyle.Render(label)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("  ")
	b.WriteString(present.MutedStyle.Render(present.LanguageLabel(m.snap.SelectedLanguage)))
	b.WriteString("\n\n")

	switch m.tab {
	case tabProblems:
		b.WriteString(m.problemsView())
	case tabEditor:
		b.WriteString(present.RenderProblemHeader(m.snap.CurrentProblem))
		b.WriteString("\n\n")
		b.WriteString(m.editor.View())
	case tabResults, tabSolutions:
		b.WriteString(m.pane.View())
	case tabChat:
		b.WriteString(m.chatView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(present.MutedStyle.Render(m.help()))
	return b.String()
}

func (m model) problemsView() string {
	if m.loadingDeck && len(m.deck) == 0 {
		return m.spinner.View() + " Loading problems..."
	}
	if len(m.deck) == 0 {
		return present.MutedStyle.Render("No problems loaded. Press r to try again.")
	}
	var b strings.Builder
	for i, p := range m.deck {
		pointer := "  "
		title := p.Title
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
			title = cursorStyle.Render(title)
		}
		fmt.Fprintf(&b, "%s%s  %s  %s\n", pointer, title, present.Difficulty(p.Difficulty), present.MutedStyle.Render(p.Category))
	}
	return b.String()
}

// paneContent is what the scrollable pane shows on the current tab.
func (m model) paneContent() string {
	switch m.tab {
	case tabResults:
		return m.resultsView()
	case tabSolutions:
		return m.solutionsView()
	}
	return ""
}

func (m model) resultsView() string {
	view := present.Results(m.snap)
	out := present.RenderOutcome(view)
	if m.feedback != nil {
		var b strings.Builder
		b.WriteString(out)
		b.WriteString("\n")
		b.WriteString(present.TitleStyle.Render("Feedback"))
		b.WriteString("\n")
		for _, s := range m.feedback.SummaryBullets {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		for _, s := range m.feedback.SuggestedImprovements {
			fmt.Fprintf(&b, "* %s\n", s)
		}
		if m.feedback.ComplexityNotes != "" {
			fmt.Fprintf(&b, "%s\n", m.feedback.ComplexityNotes)
		}
		out = b.String()
	}
	return out
}

func (m model) solutionsView() string {
	if !gate.Open(m.snap) {
		return present.PaneStyle.Render(present.LockedNotice)
	}
	if m.loadingSol {
		return m.spinner.View() + " Loading solution..."
	}
	sub := m.snap.CurrentSubmission
	if m.solution == nil || sub == nil || m.solutionFor != sub.ID {
		return present.MutedStyle.Render("Solutions unlocked. Press enter to load the reference solution.")
	}
	return present.RenderSolution(*m.solution)
}

func (m model) chatView() string {
	var b strings.Builder
	b.WriteString(present.RenderChat(m.snap.ChatMessages))
	if m.chatPending > 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" Coach is thinking...\n")
	}
	b.WriteString(m.chatInput.View())
	return b.String()
}

func (m model) statusLine() string {
	var parts []string
	if m.busy() {
		parts = append(parts, m.spinner.View())
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if m.err != nil {
		parts = append(parts, present.ErrorStyle.Render(m.err.Error()))
	}
	return strings.Join(parts, " ")
}

func (m model) help() string {
	switch m.tab {
	case tabProblems:
		return "up/down select  enter open  r randomize  1-5 tabs  ctrl+t next tab  q quit"
	case tabEditor:
		return "ctrl+r run  ctrl+s submit  ctrl+l language  esc problems  ctrl+t next tab"
	case tabResults:
		return "f feedback  up/down scroll  1-5 tabs  ctrl+t next tab  q quit"
	case tabSolutions:
		return "enter load solution  up/down scroll  1-5 tabs  ctrl+t next tab  q quit"
	case tabChat:
		return "enter send  ctrl+x clear  esc problems  ctrl+t next tab"
	}
	return ""
}
