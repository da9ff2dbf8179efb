package playground

import "sync"

// Store owns the ViewState. All mutation goes through whole-slice
// replacement inside one critical section, so a reader never observes a
// half-written composite (history swapped but references not, a session
// with fields from two updates, and so on). Readers get copies.
type Store struct {
	mu    sync.RWMutex
	state ViewState
}

// NewStore returns a Store with empty collections and the "all" tab
// active, the state a fresh client starts from.
func NewStore() *Store {
	return &Store{
		state: ViewState{
			Cases:     map[string]Case{},
			ActiveTab: TabAll,
		},
	}
}

// View returns a copy of the full ViewState. Slices and maps are
// cloned so callers can hold the snapshot across an await boundary.
func (s *Store) View() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Current returns a copy of the current session, or nil.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.state.CurrentSession)
}

// Draft returns the current form draft.
func (s *Store) Draft() Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Draft
}

// SetDraft replaces the form draft.
func (s *Store) SetDraft(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = d
}

// SetCurrent replaces the current session.
func (s *Store) SetCurrent(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentSession = &sess
}

// ReplaceLists swaps the history and references slices together.
func (s *Store) ReplaceLists(history []Session, references []Reference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.History = history
	s.state.References = references
}

// ReplaceCases swaps the preset catalog.
func (s *Store) ReplaceCases(cases map[string]Case) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cases == nil {
		cases = map[string]Case{}
	}
	s.state.Cases = cases
}

// SetTab sets the active history tab.
func (s *Store) SetTab(tab HistoryTab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveTab = tab
}

// SelectCase records the selected preset id ("" for none). The id may
// go stale if the catalog reloads afterwards; that is tolerated.
func (s *Store) SelectCase(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedCaseID = id
}

// SetGenerating toggles the pending-generation flag.
func (s *Store) SetGenerating(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Generating = v
}

// Generating reports the pending-generation flag.
func (s *Store) Generating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Generating
}

// MarkCurrentLiked sets the liked flag on the current session if its id
// matches. Called only after the backend confirmed the toggle.
func (s *Store) MarkCurrentLiked(sessionID string, liked bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.state.CurrentSession
	if cur == nil || cur.ID != sessionID {
		return false
	}
	next := *cur
	next.Liked = liked
	s.state.CurrentSession = &next
	return true
}

func cloneState(st ViewState) ViewState {
	out := st
	out.CurrentSession = cloneSession(st.CurrentSession)
	if st.History != nil {
		out.History = append([]Session(nil), st.History...)
	}
	if st.References != nil {
		out.References = append([]Reference(nil), st.References...)
	}
	out.Cases = make(map[string]Case, len(st.Cases))
	for id, c := range st.Cases {
		out.Cases[id] = c
	}
	return out
}

func cloneSession(s *Session) *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Prompts != nil {
		out.Prompts = make(map[string]string, len(s.Prompts))
		for k, v := range s.Prompts {
			out.Prompts[k] = v
		}
	}
	if s.ChecklistQuestions != nil {
		out.ChecklistQuestions = append([]string(nil), s.ChecklistQuestions...)
	}
	if s.Notes != nil {
		out.Notes = append([]string(nil), s.Notes...)
	}
	if s.Tags != nil {
		out.Tags = append([]string(nil), s.Tags...)
	}
	return &out
}
