package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leetcoach/client/catalog"
	"github.com/leetcoach/client/chat"
	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/gate"
	"github.com/leetcoach/client/judge"
	"github.com/leetcoach/client/session"
)

type feedbackSource interface {
	GenerateFeedback(ctx context.Context, submissionID string) (domain.Feedback, error)
}

// app bundles the session components the terminal model drives.
type app struct {
	ctx       context.Context
	store     *session.Store
	orch      *judge.Orchestrator
	relay     *chat.Relay
	catalog   *catalog.Catalog
	solutions *gate.Loader
	feedback  feedbackSource
}

type snapshotMsg session.Snapshot

type deckMsg struct {
	problems []domain.Problem
	err      error
}

type pickedMsg struct {
	problem domain.Problem
	err     error
}

type runDoneMsg judge.Dispatch

type submitDoneMsg judge.Dispatch

type chatDoneMsg chat.Outcome

type solutionMsg struct {
	submissionID string
	solution     domain.Solution
	err          error
}

type feedbackMsg struct {
	feedback domain.Feedback
	err      error
}

func (a *app) watch() <-chan session.Snapshot {
	return a.store.Watch(a.ctx)
}

func waitForSnapshot(ch <-chan session.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func (a *app) randomize() tea.Cmd {
	return func() tea.Msg {
		problems, err := a.catalog.Randomize(a.ctx, catalog.DefaultCategories, catalog.DefaultDifficulty)
		return deckMsg{problems: problems, err: err}
	}
}

func (a *app) pick(card catalog.Card) tea.Cmd {
	return func() tea.Msg {
		p, err := a.catalog.Pick(a.ctx, card)
		return pickedMsg{problem: p, err: err}
	}
}

func (a *app) run() tea.Cmd {
	return func() tea.Msg {
		return runDoneMsg(a.orch.RunCurrent(a.ctx))
	}
}

func (a *app) submit() tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg(a.orch.SubmitCurrent(a.ctx))
	}
}

func (a *app) sendChat(text string) tea.Cmd {
	return func() tea.Msg {
		return chatDoneMsg(a.relay.SendCurrent(a.ctx, text))
	}
}

func (a *app) loadSolution(snap session.Snapshot) tea.Cmd {
	subID := ""
	if snap.CurrentSubmission != nil {
		subID = snap.CurrentSubmission.ID
	}
	return func() tea.Msg {
		sol, err := a.solutions.Load(a.ctx, snap)
		return solutionMsg{submissionID: subID, solution: sol, err: err}
	}
}

func (a *app) generateFeedback(submissionID string) tea.Cmd {
	return func() tea.Msg {
		fb, err := a.feedback.GenerateFeedback(a.ctx, submissionID)
		return feedbackMsg{feedback: fb, err: err}
	}
}
