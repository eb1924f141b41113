package render

// State is the visible state of a display surface.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateError   State = "error"
	StateResults State = "results"
)

// Snapshot is a presenter that keeps only the latest state, for surfaces
// that draw once per request (HTTP pages and JSON responses).
type Snapshot struct {
	State   State
	Message string
	View    *View
	History []string
}

// ShowIdle clears the result area.
func (s *Snapshot) ShowIdle() {
	s.State, s.Message, s.View = StateIdle, "", nil
}

// ShowLoading marks a lookup in progress.
func (s *Snapshot) ShowLoading() {
	s.State, s.Message, s.View = StateLoading, "", nil
}

// ShowError replaces the result area with msg.
func (s *Snapshot) ShowError(msg string) {
	s.State, s.Message, s.View = StateError, msg, nil
}

// ShowResults replaces the result area with v.
func (s *Snapshot) ShowResults(v View) {
	s.State, s.Message, s.View = StateResults, "", &v
}

// ShowHistory replaces the recent-search list.
func (s *Snapshot) ShowHistory(words []string) {
	s.History = append(make([]string, 0, len(words)), words...)
}
