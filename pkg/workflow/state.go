package workflow

import (
	"sync"

	"content-variation-be/internal/entity"
)

// Wizard steps. The step field is the single source of truth for which
// actions are currently legal.
const (
	StepUpload    = 1
	StepConfigure = 2
	StepOutput    = 3
)

const (
	MaxImages             = 10
	MinVariationCount     = 1
	MaxVariationCount     = 20
	DefaultVariationCount = 3
)

// State is the aggregate workflow state for one session. It is mutated only
// through the named transitions on Session; nothing else writes fields.
type State struct {
	Step           int                      `json:"step"`
	Images         []string                 `json:"images"`
	Slides         []entity.ConfiguredSlide `json:"slides"`
	Analysis       *entity.AnalysisResult   `json:"analysis"`
	PainPoint      entity.PainPointConfig   `json:"pain_point"`
	Tone           entity.ToneConfig        `json:"tone"`
	Brand          string                   `json:"brand"`
	VariationCount int                      `json:"variation_count"`
	CompiledPrompt *string                  `json:"compiled_prompt"`
	IsLoading      bool                     `json:"is_loading"`
	Error          *string                  `json:"error"`
}

// Session is one client's active workflow held in memory. It only crosses
// into shared storage through an explicit project/prompt save. The same
// session pointer is shared between concurrent handlers, so every transition
// takes the mutex and outside readers must go through Snapshot.
type Session struct {
	ID    string `json:"id"`
	State State  `json:"state"`

	mu sync.Mutex
}

func initialState() State {
	return State{
		Step:           StepUpload,
		Images:         []string{},
		Slides:         []entity.ConfiguredSlide{},
		Analysis:       nil,
		PainPoint:      entity.PainPointConfig{},
		Tone:           entity.ToneConfig{Mode: entity.ToneMatched},
		Brand:          "",
		VariationCount: DefaultVariationCount,
		CompiledPrompt: nil,
		IsLoading:      false,
		Error:          nil,
	}
}

// NewSession creates a session in the documented initial shape.
func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		State: initialState(),
	}
}

// Snapshot returns a copy of the current state, safe to read while other
// handlers keep mutating the session.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.State
}

// ClampVariationCount forces n into the permitted [1,20] range so an
// out-of-range request can never produce an out-of-range stored value.
func ClampVariationCount(n int) int {
	if n < MinVariationCount {
		return MinVariationCount
	}
	if n > MaxVariationCount {
		return MaxVariationCount
	}
	return n
}
