package judge

import (
	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/session"
)

// SelectProblem makes p the active problem (nil clears it). The buffer is
// reset to p's starter code for the selected language and results from the
// previous problem are discarded. Observers see one mutation.
func (o *Orchestrator) SelectProblem(p *domain.Problem) {
	var active *domain.Problem
	if p != nil {
		c := *p
		active = &c
	}
	o.store.Apply(func(st *session.Snapshot) bool {
		st.CurrentProblem = active
		st.CurrentRunResult = nil
		st.CurrentSubmission = nil
		st.Code = active.Starter(st.SelectedLanguage)
		return true
	})
}

// SwitchLanguage selects lang. While a problem is active the buffer is
// reset to lang's starter code and edits made under the previous language
// are discarded. Selecting the current language again does nothing.
func (o *Orchestrator) SwitchLanguage(lang domain.Language) {
	o.store.Apply(func(st *session.Snapshot) bool {
		if st.SelectedLanguage == lang {
			return false
		}
		st.SelectedLanguage = lang
		if st.CurrentProblem != nil {
			st.Code = st.CurrentProblem.Starter(lang)
		}
		return true
	})
}

// Edit replaces the buffer with the editor's text.
func (o *Orchestrator) Edit(code string) {
	o.store.SetCode(code)
}
