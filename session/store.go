// Package session holds the client-visible application state. The Store is
// a plain container: every mutator replaces one field wholesale and
// notifies subscribers, and none of them enforces consistency between
// fields. Keeping the buffer in step with the problem and language is the
// caller's job (see package judge).
package session

import (
	"context"
	"slices"
	"sync"

	"github.com/leetcoach/client/domain"
)

// Snapshot is a copy of the store at one point in time. Version grows by
// one with every mutation, so observers receiving snapshots out of order
// can drop stale ones.
type Snapshot struct {
	Version           uint64
	CurrentProblem    *domain.Problem
	CurrentSubmission *domain.Submission
	CurrentRunResult  *domain.RunResult
	ChatMessages      []domain.ChatMessage
	SelectedLanguage  domain.Language
	Code              string
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

type Store struct {
	lock    sync.Mutex
	state   Snapshot
	subs    []subscriber
	nextSub int
}

func NewStore(lang domain.Language) *Store {
	return &Store{
		state: Snapshot{
			SelectedLanguage: lang,
			ChatMessages:     []domain.ChatMessage{},
		},
	}
}

func (s *Store) Snapshot() Snapshot {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.copyState()
}

func (s *Store) copyState() Snapshot {
	snap := s.state
	snap.ChatMessages = slices.Clone(s.state.ChatMessages)
	return snap
}

// Subscribe registers fn to be called after every mutation, on the
// mutating goroutine and before the mutator returns. fn must not block.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.lock.Lock()
	defer s.lock.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.lock.Lock()
		defer s.lock.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

// Watch streams snapshots until ctx is done. When the reader falls behind
// the oldest buffered snapshot is dropped.
func (s *Store) Watch(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 10)
	var lock sync.Mutex
	closed := false

	unsubscribe := s.Subscribe(func(snap Snapshot) {
		lock.Lock()
		defer lock.Unlock()
		if closed {
			return
		}
		for {
			select {
			case ch <- snap:
				return
			default:
				select {
				case <-ch:
				default:
				}
			}
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		lock.Lock()
		defer lock.Unlock()
		closed = true
		close(ch)
	}()
	return ch
}

// update applies fn under the lock and then notifies subscribers outside
// of it, so that a subscriber may read the store.
func (s *Store) update(fn func(st *Snapshot)) {
	s.Apply(func(st *Snapshot) bool {
		fn(st)
		return true
	})
}

// Apply runs fn against the live state under the store lock and publishes
// the result as a single mutation. When fn returns false nothing is
// published and Version does not move. fn must replace fields wholesale
// (never append to ChatMessages in place) and must not keep st.
func (s *Store) Apply(fn func(st *Snapshot) bool) bool {
	s.lock.Lock()
	if !fn(&s.state) {
		s.lock.Unlock()
		return false
	}
	s.state.Version++
	snap := s.copyState()
	subs := slices.Clone(s.subs)
	s.lock.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
	return true
}

// SetRunResultFor stores r only while problemID is the active problem.
// The check and the write happen under one lock.
func (s *Store) SetRunResultFor(problemID string, r *domain.RunResult) bool {
	r = clonePtr(r)
	return s.Apply(func(st *Snapshot) bool {
		if !isActive(st, problemID) {
			return false
		}
		st.CurrentRunResult = r
		return true
	})
}

// SetSubmissionFor is SetRunResultFor for the current submission.
func (s *Store) SetSubmissionFor(problemID string, sub *domain.Submission) bool {
	sub = clonePtr(sub)
	return s.Apply(func(st *Snapshot) bool {
		if !isActive(st, problemID) {
			return false
		}
		st.CurrentSubmission = sub
		return true
	})
}

func isActive(st *Snapshot, problemID string) bool {
	return st.CurrentProblem != nil && st.CurrentProblem.ID == problemID
}

// SetCurrentProblem accepts nil for "no active problem".
func (s *Store) SetCurrentProblem(p *domain.Problem) {
	p = clonePtr(p)
	s.update(func(st *Snapshot) { st.CurrentProblem = p })
}

// SetCurrentSubmission accepts nil for "no submission".
func (s *Store) SetCurrentSubmission(sub *domain.Submission) {
	sub = clonePtr(sub)
	s.update(func(st *Snapshot) { st.CurrentSubmission = sub })
}

func (s *Store) SetCurrentRunResult(r *domain.RunResult) {
	r = clonePtr(r)
	s.update(func(st *Snapshot) { st.CurrentRunResult = r })
}

func (s *Store) AddChatMessage(m domain.ChatMessage) {
	s.update(func(st *Snapshot) {
		// never append in place: earlier snapshots may share the array
		st.ChatMessages = append(slices.Clip(st.ChatMessages), m)
	})
}

func (s *Store) SetSelectedLanguage(lang domain.Language) {
	s.update(func(st *Snapshot) { st.SelectedLanguage = lang })
}

func (s *Store) SetCode(code string) {
	s.update(func(st *Snapshot) { st.Code = code })
}

func (s *Store) ClearChat() {
	s.update(func(st *Snapshot) { st.ChatMessages = []domain.ChatMessage{} })
}

func (s *Store) CurrentProblem() *domain.Problem {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state.CurrentProblem
}

func (s *Store) CurrentSubmission() *domain.Submission {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state.CurrentSubmission
}

func (s *Store) SelectedLanguage() domain.Language {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state.SelectedLanguage
}

func (s *Store) Code() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state.Code
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
