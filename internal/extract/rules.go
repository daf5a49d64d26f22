package extract

import (
	"regexp"
	"strings"
)

// Source selects which side of the call record a rule scans.
type Source int

const (
	FromSummary Source = iota
	FromTranscript
)

// CaptureRule is one step of an extraction cascade: a compiled pattern, the
// capture group holding the candidate value, and an exclusion filter that can
// veto the match. Rules run in declaration order and the first surviving
// match wins; a vetoed match fails the whole rule unless Scan is set, in
// which case the rule walks every match and keeps the first survivor.
type CaptureRule struct {
	Name    string
	Source  Source
	Pattern *regexp.Regexp
	Group   int
	Scan    bool
	Exclude func(string) bool
}

// Apply runs the rule against the call record.
func (r CaptureRule) Apply(summary, transcript string) (string, bool) {
	text := summary
	if r.Source == FromTranscript {
		text = transcript
	}

	if r.Scan {
		for _, m := range r.Pattern.FindAllStringSubmatch(text, -1) {
			if v, ok := r.accept(m); ok {
				return v, true
			}
		}
		return "", false
	}

	m := r.Pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return r.accept(m)
}

func (r CaptureRule) accept(match []string) (string, bool) {
	candidate := strings.TrimSpace(match[r.Group])
	if candidate == "" {
		return "", false
	}
	if r.Exclude != nil && r.Exclude(candidate) {
		return "", false
	}
	return candidate, true
}

// runCascade tries each rule in order; no further rules run after a success.
func runCascade(rules []CaptureRule, summary, transcript string) (string, bool) {
	for _, rule := range rules {
		if v, ok := rule.Apply(summary, transcript); ok {
			return v, true
		}
	}
	return "", false
}
