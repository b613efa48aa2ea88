package model

// MoveOutcome is the per-file result of executing an Assignment.
type MoveOutcome string

const (
	OutcomeMoved   MoveOutcome = "moved"
	OutcomeSkipped MoveOutcome = "skipped"
	OutcomeFailed  MoveOutcome = "failed"
)

// MoveResult describes what happened to a single file.
type MoveResult struct {
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Outcome  MoveOutcome `json:"outcome"`
	Reason   string      `json:"reason,omitempty"`
}

// MoveReport aggregates the results of one move batch.
type MoveReport struct {
	Results []MoveResult `json:"results"`
	Moved   int          `json:"moved"`
	Skipped int          `json:"skipped"`
	Failed  int          `json:"failed"`
}

// Add appends r and updates the counters.
func (m *MoveReport) Add(r MoveResult) {
	m.Results = append(m.Results, r)
	switch r.Outcome {
	case OutcomeMoved:
		m.Moved++
	case OutcomeSkipped:
		m.Skipped++
	case OutcomeFailed:
		m.Failed++
	}
}
