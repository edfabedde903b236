package assistant

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"kiisuite/app/registry"
	"kiisuite/app/service/extract"
	"kiisuite/app/service/forms"
	"kiisuite/app/service/queue"
	"kiisuite/app/service/stats"

	"github.com/elliotchance/pie/v2"
	"github.com/google/uuid"
)

const closingResponse = "Great! You've provided comprehensive information. Is there anything else you'd like to add or modify?"

// Session drives one tool's conversation: it owns the visible transcript and
// the typing flag, and orchestrates extract -> merge -> confirm -> ask-next
// on every submitted utterance.
//
// A new Submit while a reply is still pending is not rejected; the deferred
// replies simply interleave in scheduling order, each one appended under the
// transcript lock.
type Session struct {
	id     uuid.UUID
	toolID string

	extractSvc *extract.Service
	formsSvc   *forms.Service
	queueSvc   *queue.Service
	scheduler  Scheduler

	delayBase   time.Duration
	delayJitter time.Duration

	mu       sync.Mutex
	messages []Message
	nextID   int64
	typing   bool
}

func NewSession(
	toolID string,
	extractSvc *extract.Service,
	formsSvc *forms.Service,
	queueSvc *queue.Service,
	scheduler Scheduler,
	delayBase, delayJitter time.Duration,
) *Session {
	return &Session{
		id:          uuid.New(),
		toolID:      strings.ToLower(strings.TrimSpace(toolID)),
		extractSvc:  extractSvc,
		formsSvc:    formsSvc,
		queueSvc:    queueSvc,
		scheduler:   scheduler,
		delayBase:   delayBase,
		delayJitter: delayJitter,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) ToolID() string {
	return s.toolID
}

// Start seeds the transcript with the tool's welcome message. It only acts
// on an empty transcript, so calling it again is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.messages) > 0 {
		return
	}

	s.appendLocked(RoleAssistant, registry.Welcome(s.toolID))
}

// Submit records a user utterance and schedules the assistant reply after a
// short randomized delay. Blank input is rejected silently: no message is
// appended and no state changes.
func (s *Session) Submit(utterance string) {
	text := strings.TrimSpace(utterance)
	if text == "" {
		return
	}

	s.mu.Lock()
	s.appendLocked(RoleUser, text)
	s.typing = true
	s.mu.Unlock()

	s.scheduler.Schedule(replyDelay(s.delayBase, s.delayJitter), func() {
		s.reply(text)
	})
}

// Transcript returns a copy of the messages so far.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Message, len(s.messages))
	copy(result, s.messages)

	return result
}

func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.typing
}

// NextQuestion returns the prompt for the first question-list field that is
// absent or blank in the form state, or the closing line when everything is
// filled. The scan is recomputed on every call; the lists are short.
func (s *Session) NextQuestion(form forms.FormState) string {
	questions := registry.Get(s.toolID).Questions

	idx := pie.FindFirstUsing(questions, func(q registry.Question) bool {
		return strings.TrimSpace(form.Fields[q.Field]) == ""
	})
	if idx < 0 {
		return closingResponse
	}

	return questions[idx].Prompt
}

func (s *Session) reply(text string) {
	response := s.generateResponse(text)

	s.mu.Lock()
	message := s.appendLocked(RoleAssistant, response)
	s.typing = false
	s.mu.Unlock()

	slog.Debug("Assistant replied",
		"session", s.id,
		"tool", s.toolID,
		"message", message.ID)

	s.queueSvc.Add(queue.Event{
		SessionID: s.id,
		ToolID:    s.toolID,
		MessageID: message.ID,
	})
}

func (s *Session) generateResponse(text string) string {
	extracted := s.extractSvc.Extract(text, s.toolID)
	if len(extracted) > 0 {
		s.formsSvc.Apply(s.toolID, extracted)

		return fmt.Sprintf("Perfect! I've updated your %s form with:\n\n%s\n\n%s",
			strings.ToUpper(s.toolID),
			s.confirmations(extracted),
			s.NextQuestion(s.formsSvc.Snapshot(s.toolID)))
	}

	input := strings.ToLower(text)

	switch {
	case strings.Contains(input, "help") || strings.Contains(input, "how"):
		return registry.Help(s.toolID)
	case strings.Contains(input, "start") || strings.Contains(input, "begin"):
		return fmt.Sprintf("Let's start your %s analysis! First, what's the title or name of your project? I'll automatically fill in the form as you provide information.", strings.ToUpper(s.toolID))
	case strings.Contains(input, "example") || strings.Contains(input, "sample"):
		return registry.Example(s.toolID)
	case strings.Contains(input, "what") && strings.Contains(input, "next"):
		return s.NextQuestion(s.formsSvc.Snapshot(s.toolID))
	}

	if response, ok := s.statsResponse(input); ok {
		return response
	}

	for _, topic := range registry.Get(s.toolID).Topics {
		if strings.Contains(input, topic.Keyword) {
			return topic.Response
		}
	}

	return fmt.Sprintf("I'm here to help you fill out your %s form. You can tell me about your project, problem, goals, or any other details, and I'll automatically update the form fields. What would you like to share?", strings.ToUpper(s.toolID))
}

// confirmations enumerates the filled fields, one check line each, in the
// tool's question order so the block reads top to bottom like the form.
func (s *Session) confirmations(extracted map[string]string) string {
	var lines []string

	seen := make(map[string]bool, len(extracted))
	for _, question := range registry.Get(s.toolID).Questions {
		if value, ok := extracted[question.Field]; ok {
			lines = append(lines, confirmationLine(question.Field, value))
			seen[question.Field] = true
		}
	}

	var rest []string
	for field := range extracted {
		if !seen[field] {
			rest = append(rest, field)
		}
	}
	for _, field := range pie.Sort(rest) {
		lines = append(lines, confirmationLine(field, extracted[field]))
	}

	return strings.Join(lines, "\n")
}

func confirmationLine(field, value string) string {
	return fmt.Sprintf("✓ %s: %q", registry.Label(field), value)
}

// statsResponse answers "calculate statistics" style requests on the
// histogram tool from whatever has been pasted into its data field.
func (s *Session) statsResponse(input string) (string, bool) {
	if s.toolID != "histogram" {
		return "", false
	}
	if !strings.Contains(input, "calculate") && !strings.Contains(input, "statistic") {
		return "", false
	}

	form := s.formsSvc.Snapshot(s.toolID)
	values := stats.ParsePoints(form.Fields["dataPoints"])

	desc, ok := stats.Describe(values)
	if !ok {
		return "I don't see any data points yet. Paste your measurements into the data panel (one value per line) and ask me again!", true
	}

	return fmt.Sprintf("Here are the descriptive statistics for your %d data points:\n\n"+
		"Mean: %v\nMedian: %v\nStd Dev: %v\nMin: %v\nMax: %v\nRange: %v\nQ1: %v\nQ3: %v\nIQR: %v",
		desc.Count, desc.Mean, desc.Median, desc.StdDev,
		desc.Min, desc.Max, desc.Range, desc.Q1, desc.Q3, desc.IQR), true
}

func (s *Session) appendLocked(role Role, text string) Message {
	s.nextID++
	message := Message{
		ID:        s.nextID,
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, message)

	return message
}
