package registry

import (
	"regexp"
	"strings"
)

// Rule extracts a field value from free text. Each alternative is a label
// phrase (a small regexp fragment, so "members?" style plurals work); the
// value is everything after the label up to the next period or end of input.
type Rule struct {
	alternatives []string
	re           *regexp.Regexp
}

func NewRule(alternatives ...string) Rule {
	return Rule{
		alternatives: alternatives,
		re:           regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `)(?:\s*:?\s*)(.*?)(?:\.|$)`),
	}
}

// linkingVerb is dropped from the front of a capture so that "title is X"
// and "title: X" both yield X.
var linkingVerb = regexp.MustCompile(`(?i)^(?:is|are|was|were)\s+`)

func (r Rule) Alternatives() []string {
	return r.alternatives
}

// Match returns the trimmed capture and whether it is non-empty.
// An empty capture never counts as a match, so blank values cannot
// overwrite fields that were already filled.
func (r Rule) Match(text string) (string, bool) {
	groups := r.re.FindStringSubmatch(text)
	if groups == nil {
		return "", false
	}

	value := strings.TrimSpace(linkingVerb.ReplaceAllString(strings.TrimSpace(groups[1]), ""))
	if value == "" {
		return "", false
	}

	return value, true
}
