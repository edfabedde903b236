package extract

import (
	"log/slog"

	"kiisuite/app/registry"

	"github.com/samber/do"
)

// Service turns a free-text utterance into a partial field update for the
// active tool. Extraction is pure: same text and tool id always produce the
// same map.
type Service struct{}

func New(_ *do.Injector) (*Service, error) {
	return &Service{}, nil
}

// Extract applies every rule of the tool's registry independently against
// the full text. A single utterance may populate many fields at once; only
// fields whose rule matched with a non-empty capture are present.
func (s *Service) Extract(text, toolID string) map[string]string {
	extracted := make(map[string]string)

	if text == "" {
		return extracted
	}

	for field, rule := range registry.Get(toolID).Patterns {
		if value, ok := rule.Match(text); ok {
			extracted[field] = value
		}
	}

	if len(extracted) > 0 {
		slog.Debug("Extracted fields from utterance",
			"tool", toolID,
			"fields", len(extracted))
	}

	return extracted
}
