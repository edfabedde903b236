package queue

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/do"
)

const bufferSize = 64

var _ do.Shutdownable = (*Service)(nil)

// Service fans assistant replies out to the UI. Delivery is best-effort: the
// UI re-reads the full transcript on every event, so a dropped event only
// delays a redraw until the next one.
type Service struct {
	queue chan Event
}

// Event signals that a session appended an assistant message.
type Event struct {
	SessionID uuid.UUID
	ToolID    string
	MessageID int64
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		queue: make(chan Event, bufferSize),
	}, nil
}

func (s *Service) Add(event Event) {
	defer func() {
		if r := recover(); r != nil {

		}
	}()

	select {
	case s.queue <- event:
	default:
		slog.Warn("reply event queue is full")
	}
}

func (s *Service) Channel() <-chan Event {
	return s.queue
}

func (s *Service) Shutdown() error {
	close(s.queue)

	return nil
}
