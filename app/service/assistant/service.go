package assistant

import (
	"strings"
	"sync"
	"time"

	"kiisuite/app/config"
	"kiisuite/app/service/extract"
	"kiisuite/app/service/forms"
	"kiisuite/app/service/queue"

	"github.com/samber/do"
)

// Service hands out one Session per tool and keeps them for the lifetime of
// the process, so switching tools in the UI and coming back resumes the same
// conversation.
type Service struct {
	cfg        *config.Config
	extractSvc *extract.Service
	formsSvc   *forms.Service
	queueSvc   *queue.Service
	scheduler  Scheduler

	mu       sync.Mutex
	sessions map[string]*Session
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:        do.MustInvoke[*config.Config](di),
		extractSvc: do.MustInvoke[*extract.Service](di),
		formsSvc:   do.MustInvoke[*forms.Service](di),
		queueSvc:   do.MustInvoke[*queue.Service](di),
		scheduler:  timerScheduler{},
		sessions:   make(map[string]*Session),
	}, nil
}

// Session returns the tool's session, creating and starting it on first use.
func (s *Service) Session(toolID string) *Session {
	toolID = strings.ToLower(strings.TrimSpace(toolID))

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[toolID]
	if !ok {
		session = NewSession(
			toolID,
			s.extractSvc,
			s.formsSvc,
			s.queueSvc,
			s.scheduler,
			time.Duration(s.cfg.Assistant.ReplyDelayMs)*time.Millisecond,
			time.Duration(s.cfg.Assistant.ReplyJitterMs)*time.Millisecond,
		)
		session.Start()
		s.sessions[toolID] = session
	}

	return session
}
