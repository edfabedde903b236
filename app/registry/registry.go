package registry

import (
	"fmt"
	"strings"
)

// Question pairs a form field with the prompt that asks for it. The declared
// order of a tool's question list is the traversal order for "what's next".
type Question struct {
	Field  string
	Prompt string
}

// Topic is a keyword-triggered guidance response, checked in declared order
// when an utterance produced no field extractions.
type Topic struct {
	Keyword  string
	Response string
}

type ToolConfig struct {
	ID        string
	Title     string
	Patterns  map[string]Rule
	Questions []Question
	Topics    []Topic
	Welcome   string
	Help      string
	Example   string
}

// Get returns the config for a tool id, matched case-insensitively.
// Unknown ids yield a zero config: extraction finds nothing and prompting
// falls back to the generic texts. This is deliberate degradation, not an
// error.
func Get(toolID string) ToolConfig {
	cfg, ok := tools[strings.ToLower(strings.TrimSpace(toolID))]
	if !ok {
		return ToolConfig{ID: strings.ToLower(strings.TrimSpace(toolID))}
	}

	return cfg
}

// Tools returns the suite in menu order.
func Tools() []ToolConfig {
	result := make([]ToolConfig, 0, len(toolOrder))
	for _, id := range toolOrder {
		result = append(result, tools[id])
	}

	return result
}

// Welcome returns the tool's welcome message, or the generic one with the
// tool name interpolated.
func Welcome(toolID string) string {
	if cfg := Get(toolID); cfg.Welcome != "" {
		return cfg.Welcome
	}

	return fmt.Sprintf("Hi! I'm Kii, your %s assistant. I can help you fill out the form and guide you through the process. What would you like to work on?", displayName(toolID))
}

func Help(toolID string) string {
	if cfg := Get(toolID); cfg.Help != "" {
		return cfg.Help
	}

	return fmt.Sprintf("I can help you complete your %s form by extracting information from our conversation and automatically filling in the fields. Just tell me about your project and I'll guide you through each step!", displayName(toolID))
}

func Example(toolID string) string {
	if cfg := Get(toolID); cfg.Example != "" {
		return cfg.Example
	}

	return fmt.Sprintf("You can provide information naturally, like: 'My project is about improving efficiency. The current state shows 30%% waste. We want to achieve 15%% waste reduction...' I'll extract the relevant details and fill in your %s form automatically.", displayName(toolID))
}

// Label returns the human label used in confirmation lines, falling back to
// the raw field name.
func Label(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}

	return field
}

func displayName(toolID string) string {
	if cfg := Get(toolID); cfg.Title != "" {
		return cfg.Title
	}

	return strings.ToLower(strings.TrimSpace(toolID))
}
