package present

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leetcoach/client/domain"
)

var (
	green  = lipgloss.Color("#27ae60")
	red    = lipgloss.Color("#e74c3c")
	yellow = lipgloss.Color("#f1c40f")
	orange = lipgloss.Color("#e67e22")
	gray   = lipgloss.Color("#95a5a6")
	blue   = lipgloss.Color("#3498db")
	violet = lipgloss.Color("#e056fd")

	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(blue)
	AccentStyle = lipgloss.NewStyle().Foreground(violet)
	MutedStyle  = lipgloss.NewStyle().Foreground(gray)
	ErrorStyle  = lipgloss.NewStyle().Foreground(red)
	PaneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(gray).Padding(0, 1)
)

func verdictColor(v domain.Verdict) lipgloss.Color {
	switch v {
	case domain.VerdictAccepted:
		return green
	case domain.VerdictWrongAnswer:
		return red
	case domain.VerdictTimeout:
		return yellow
	case domain.VerdictRuntimeError, domain.VerdictCompileError:
		return orange
	}
	return gray
}

func difficultyColor(d domain.Difficulty) lipgloss.Color {
	switch d {
	case domain.DifficultyEasy:
		return green
	case domain.DifficultyMedium:
		return yellow
	case domain.DifficultyHard:
		return red
	}
	return gray
}

func testStatusColor(s string) lipgloss.Color {
	switch domain.TestStatus(s) {
	case domain.TestPass:
		return green
	case domain.TestFail:
		return red
	}
	return orange
}

func Verdict(v domain.Verdict) string {
	return lipgloss.NewStyle().Bold(true).Foreground(verdictColor(v)).Render(VerdictLabel(v))
}

func Difficulty(d domain.Difficulty) string {
	return lipgloss.NewStyle().Foreground(difficultyColor(d)).Render(string(d))
}

// RenderOutcome draws the results pane body: summary, per-test table and
// whatever compiler, runtime or error output came back.
func RenderOutcome(view ResultsView) string {
	if view.Kind == NoResults {
		return MutedStyle.Render(view.Banner)
	}
	o := view.Outcome
	var b strings.Builder
	fmt.Fprintln(&b, MutedStyle.Render(view.Banner))
	fmt.Fprintf(&b, "%s  passed %s  runtime %s  memory %s\n",
		Verdict(o.Verdict),
		PassedLabel(o),
		RuntimeLabel(o.RuntimeMs),
		MemoryLabel(o.MemoryKb))

	if o.Details == nil {
		return b.String()
	}
	rows := TestRows(o.Details)
	if len(rows) > 0 {
		fmt.Fprintln(&b)
		for _, r := range rows {
			status := lipgloss.NewStyle().Foreground(testStatusColor(r.Status)).Render(fmt.Sprintf("%-5s", r.Status))
			fmt.Fprintf(&b, "#%-2d %s in=%s expected=%s actual=%s (%s)\n",
				r.Case, status, r.Input, r.Expected, r.Actual, r.Runtime)
		}
	}
	for _, section := range []struct {
		title string
		body  string
	}{
		{"Compilation Output", o.Details.CompilationOutput},
		{"Runtime Output", o.Details.RuntimeOutput},
		{"Error", o.Details.Error},
	} {
		if section.body == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", TitleStyle.Render(section.title), section.body)
	}
	return b.String()
}

func RenderProblemHeader(p *domain.Problem) string {
	if p == nil {
		return MutedStyle.Render("Select a problem to start coding")
	}
	return fmt.Sprintf("%s  %s  %s  %s\n\n%s",
		TitleStyle.Render(p.Title),
		Difficulty(p.Difficulty),
		MutedStyle.Render(p.Category),
		MutedStyle.Render(fmt.Sprintf("%d public tests", p.TestsPublicCount)),
		p.Prompt)
}

func RenderSolution(s domain.Solution) string {
	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n\n%s\n%s\n\n%s\n%s\n",
		TitleStyle.Render("Explanation"), s.Explanation,
		TitleStyle.Render("Complexity"), s.Complexity,
		TitleStyle.Render("Python"), s.PythonSolution,
		TitleStyle.Render("C++"), s.CppSolution)
}

func RenderChat(msgs []domain.ChatMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		fmt.Fprintf(&b, "%s %s\n%s %s\n\n",
			AccentStyle.Render("you:"), m.UserMessage,
			TitleStyle.Render("coach:"), m.CoachResponse)
	}
	return b.String()
}

const LockedNotice = "Solutions Locked\n\nSolutions are locked until you make your first submission. This encourages you to think through the problem yourself first."
