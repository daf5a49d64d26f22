package extract

import (
	"regexp"
	"strings"
)

// excludedNames vetoes candidates no rule may return: weekday and month
// names, generic sentence tokens, and deployment false positives (the
// assistant introduces itself as Sarah; the prompt's worked example books
// for Sam).
var excludedNames = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},

	"january": {}, "february": {}, "march": {}, "april": {}, "may": {},
	"june": {}, "july": {}, "august": {}, "september": {}, "october": {},
	"november": {}, "december": {},

	"the": {}, "a": {}, "an": {}, "customer": {}, "ai": {}, "user": {},
	"called": {}, "he": {}, "she": {}, "they": {}, "his": {}, "her": {},
	"their": {}, "it": {}, "new": {}, "thanks": {}, "thank": {},
	"please": {}, "hello": {}, "appointment": {}, "booking": {},
	"haircut": {}, "beard": {}, "trim": {},

	"sarah": {}, "sam": {}, "barbershop": {},
}

func isExcludedName(s string) bool {
	_, ok := excludedNames[strings.ToLower(s)]
	return ok
}

// nameRules is the extraction cascade for the customer name, highest
// precedence first. Summaries open with either the customer as subject
// ("James successfully booked…") or a reference clause ("…for the user,
// James"); bookings made on behalf of a child name the child in a dependent
// clause, which outranks everything else. The transcript self-identification
// rules only run when no summary rule survives.
var nameRules = []CaptureRule{
	{
		Name:    "child_clause",
		Source:  FromSummary,
		Pattern: regexp.MustCompile(`for (?:their|his|her) (?:son|daughter|child),?\s+([A-Z][a-z]+)`),
		Group:   1,
		Exclude: isExcludedName,
	},
	{
		Name:    "leading_subject",
		Source:  FromSummary,
		Pattern: regexp.MustCompile(`^([A-Z][a-z]+)\s+(?:successfully|called)`),
		Group:   1,
		Exclude: isExcludedName,
	},
	{
		Name:    "user_reference",
		Source:  FromSummary,
		Pattern: regexp.MustCompile(`\b(?:[Tt]he\s+)?[Uu]ser,?\s+([A-Z][a-z]+)`),
		Group:   1,
		Exclude: isExcludedName,
	},
	{
		Name:    "for_reference",
		Source:  FromSummary,
		Pattern: regexp.MustCompile(`\bfor\s+([A-Z][a-z]+)\b`),
		Group:   1,
		Exclude: isExcludedName,
	},
	{
		Name:    "capitalized_guess",
		Source:  FromSummary,
		Pattern: regexp.MustCompile(`\b([A-Z][a-z]+)\b`),
		Group:   1,
		Scan:    true,
		Exclude: isExcludedName,
	},
	{
		Name:    "self_identification",
		Source:  FromTranscript,
		Pattern: regexp.MustCompile(`(?:[Mm]y name is|I'm|I am|[Cc]all me|[Tt]his is)\s+([A-Z][a-z]+)`),
		Group:   1,
		Exclude: isExcludedName,
	},
	{
		Name:    "name_contraction",
		Source:  FromTranscript,
		Pattern: regexp.MustCompile(`[Nn]ame'?s?\s+([A-Z][a-z]+)`),
		Group:   1,
		Exclude: isExcludedName,
	},
}

// ExtractName returns the customer (or child's) name, or nil when no rule
// yields a candidate that survives the exclusion filter.
func ExtractName(summary, transcript string) *string {
	if v, ok := runCascade(nameRules, summary, transcript); ok {
		return &v
	}
	return nil
}
