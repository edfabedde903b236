package forms

import (
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"kiisuite/app/registry"

	"github.com/samber/do"
)

// FormState is a snapshot of one tool's form: field values plus the date the
// form was last touched. The assistant only ever shallow-merges into it; it
// never removes or validates fields.
type FormState struct {
	Fields      map[string]string
	LastUpdated string
}

// Service is the host-side form store. Everything lives in memory for the
// lifetime of the process; Save Draft and Export PDF remain stubs.
type Service struct {
	mu     sync.RWMutex
	states map[string]*FormState
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		states: make(map[string]*FormState),
	}, nil
}

// Apply shallow-merges a partial update into the tool's form and stamps
// LastUpdated with the current date. Empty updates are ignored so the stamp
// only moves when something actually changed.
func (s *Service) Apply(toolID string, partial map[string]string) {
	if len(partial) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.stateLocked(toolID)
	for field, value := range partial {
		state.Fields[field] = value
	}
	state.LastUpdated = time.Now().Format("2006-01-02")

	slog.Info("Form updated",
		"tool", toolID,
		"fields", len(partial))
}

// SetField writes a single field, used for manual edits from the form panel.
func (s *Service) SetField(toolID, field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.stateLocked(toolID)
	state.Fields[field] = value
	state.LastUpdated = time.Now().Format("2006-01-02")
}

// Snapshot returns a copy of the tool's current form state.
func (s *Service) Snapshot(toolID string) FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[strings.ToLower(toolID)]
	if !ok {
		return FormState{Fields: map[string]string{}}
	}

	fields := make(map[string]string, len(state.Fields))
	for field, value := range state.Fields {
		fields[field] = value
	}

	return FormState{
		Fields:      fields,
		LastUpdated: state.LastUpdated,
	}
}

// Completion returns the percentage of the tool's question-list fields that
// hold a non-blank value. Tools without a question list report 0.
func (s *Service) Completion(toolID string) int {
	questions := registry.Get(toolID).Questions
	if len(questions) == 0 {
		return 0
	}

	snapshot := s.Snapshot(toolID)

	filled := 0
	for _, question := range questions {
		if strings.TrimSpace(snapshot.Fields[question.Field]) != "" {
			filled++
		}
	}

	return int(math.Round(float64(filled) / float64(len(questions)) * 100))
}

// SaveDraft is a host-side stub: drafts are not persisted.
func (s *Service) SaveDraft(toolID string) {
	slog.Info("Save draft requested (not implemented)", "tool", toolID)
}

// ExportPDF is a host-side stub: export is not implemented.
func (s *Service) ExportPDF(toolID string) {
	slog.Info("PDF export requested (not implemented)", "tool", toolID)
}

func (s *Service) stateLocked(toolID string) *FormState {
	key := strings.ToLower(toolID)

	state, ok := s.states[key]
	if !ok {
		state = &FormState{Fields: make(map[string]string)}
		s.states[key] = state
	}

	return state
}
